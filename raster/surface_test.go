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

package raster_test

import (
	"image/color"
	"testing"

	"github.com/stereohud/stereohud/raster"
	"github.com/stereohud/stereohud/test"
)

func TestSurfaceCreation(t *testing.T) {
	s, err := raster.NewSurface(640, 480)
	test.DemandSuccess(t, err)

	w, h := s.Size()
	test.ExpectEquality(t, w, 640)
	test.ExpectEquality(t, h, 480)

	img := s.Image()
	test.ExpectEquality(t, img.Bounds().Dx(), 640)
	test.ExpectEquality(t, img.Bounds().Dy(), 480)

	// invalid dimensions are rejected
	_, err = raster.NewSurface(0, 480)
	test.ExpectFailure(t, err)
	_, err = raster.NewSurface(640, -1)
	test.ExpectFailure(t, err)
}

func TestClearTransparency(t *testing.T) {
	s, err := raster.NewSurface(32, 32)
	test.DemandSuccess(t, err)

	s.SetColor(color.RGBA{R: 255, A: 255})
	s.SetStrokeWidth(4)
	s.Line(0, 16, 32, 16)

	// the stroke must have touched the pixel under the line
	_, _, _, a := s.Image().At(16, 16).RGBA()
	test.ExpectInequality(t, a, uint32(0))

	// and Clear() must erase it back to full transparency
	s.Clear()
	_, _, _, a = s.Image().At(16, 16).RGBA()
	test.ExpectEquality(t, a, uint32(0))
}

func TestTextMeasurement(t *testing.T) {
	s, err := raster.NewSurface(256, 64)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, s.FontSize(), raster.DefaultFontSize)

	w := s.MeasureText("Frames Per Second")
	test.ExpectSuccess(t, w > 0)

	// a longer string is wider
	test.ExpectSuccess(t, s.MeasureText("60 ") > s.MeasureText("0 "))

	// spacing scales with font size
	spacing := s.FontSpacing()
	test.ExpectSuccess(t, spacing > 0)
	s.SetFontSize(raster.DefaultFontSize * 2)
	test.ExpectSuccess(t, s.FontSpacing() > spacing)
	test.ExpectSuccess(t, s.MeasureText("60 ") > w/6)
}

func TestPolyline(t *testing.T) {
	s, err := raster.NewSurface(64, 64)
	test.DemandSuccess(t, err)

	// a single point polyline draws nothing
	s.SetColor(color.RGBA{R: 255, A: 255})
	s.SetStrokeWidth(2)
	s.Polyline([]raster.Point{{X: 32, Y: 32}})
	_, _, _, a := s.Image().At(32, 32).RGBA()
	test.ExpectEquality(t, a, uint32(0))

	// two or more points stroke the path
	s.Polyline([]raster.Point{{X: 0, Y: 32}, {X: 63, Y: 32}})
	_, _, _, a = s.Image().At(32, 32).RGBA()
	test.ExpectInequality(t, a, uint32(0))
}
