// This file is part of Stereohud.
//
// Stereohud is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Stereohud is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Stereohud.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"testing"

	"github.com/stereohud/stereohud/curated"
	"github.com/stereohud/stereohud/test"
)

func TestMatching(t *testing.T) {
	e := curated.Errorf("error: value = %d", 10)

	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, "error: value = %d"))
	test.ExpectFailure(t, curated.Is(e, "error: value = %s"))

	// uncurated errors never match
	u := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(u))
	test.ExpectFailure(t, curated.Is(u, "plain error"))

	// nor does nil
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, "error: value = %d"))
}

func TestChaining(t *testing.T) {
	e := curated.Errorf("error: value = %d", 10)
	f := curated.Errorf("fatal: %v", e)

	// Is() only matches the outermost pattern. Has() searches the chain
	test.ExpectFailure(t, curated.Is(f, "error: value = %d"))
	test.ExpectSuccess(t, curated.Has(f, "error: value = %d"))
	test.ExpectSuccess(t, curated.Has(f, "fatal: %v"))
}

func TestNormalisation(t *testing.T) {
	// duplicate adjacent message parts are removed when the error message is
	// built
	e := curated.Errorf("hud: %v", curated.Errorf("hud: %v", "bad dimensions"))
	test.ExpectEquality(t, e.Error(), "hud: bad dimensions")
}
