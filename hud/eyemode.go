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

package hud

import (
	"strings"

	"github.com/stereohud/stereohud/curated"
)

// EyeMode specifies which eye(s) the overlay is composited over
type EyeMode int

// List of valid EyeMode values. NeitherEye means the widget still accepts
// metric updates and redraws but is outside the render pipeline, adding
// nothing to render costs
const (
	LeftEye EyeMode = iota
	RightEye
	BothEyes
	NeitherEye
)

func (m EyeMode) String() string {
	switch m {
	case LeftEye:
		return "left"
	case RightEye:
		return "right"
	case BothEyes:
		return "both"
	case NeitherEye:
		return "neither"
	}
	return "unknown"
}

// ParseEyeMode converts a string to an EyeMode. Matching is case-insensitive
func ParseEyeMode(s string) (EyeMode, error) {
	switch strings.ToLower(s) {
	case "left":
		return LeftEye, nil
	case "right":
		return RightEye, nil
	case "both":
		return BothEyes, nil
	case "neither", "none":
		return NeitherEye, nil
	}
	return NeitherEye, curated.Errorf("hud: unrecognised eye mode (%s)", s)
}
