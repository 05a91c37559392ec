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

package limiter_test

import (
	"testing"
	"time"

	"github.com/stereohud/stereohud/performance/limiter"
	"github.com/stereohud/stereohud/test"
)

func TestNewFPSLimiter(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectFailure(t, err)

	_, err = limiter.NewFPSLimiter(-1)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewFPSLimiter(60)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, lim != nil)
}

func TestWaitPacing(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(100)
	test.DemandSuccess(t, err)

	// ten frames at 100fps should take roughly a tenth of a second. allow
	// generous slack for scheduler jitter
	start := time.Now()
	for i := 0; i < 10; i++ {
		lim.Wait()
	}
	elapsed := time.Since(start)

	test.ExpectSuccess(t, elapsed >= 50*time.Millisecond)
	test.ExpectSuccess(t, elapsed < time.Second)
}
