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
	"testing"

	"github.com/stereohud/stereohud/test"
)

func TestChartPoints(t *testing.T) {
	h, _ := newTestHUD(t, NeitherEye)

	// empty history charts nothing
	test.ExpectEquality(t, len(h.chartPoints(0, 0)), 0)

	// 30 pushes chart exactly 21 points
	for i := 1; i <= 30; i++ {
		h.UpdateParams(float32(i*10), 0, 0, 0, 0)
	}
	pts := h.chartPoints(0, 600)
	test.DemandEquality(t, len(pts), 21)

	// points are spaced chartStep raster units apart
	for i := 1; i < len(pts); i++ {
		test.ExpectEquality(t, pts[i].X-pts[i-1].X, float64(chartStep))
	}

	// y is inverted and scaled: the last sample (300fps) draws highest
	test.ExpectEquality(t, pts[20].Y, 600-300*chartScale)
	test.ExpectEquality(t, pts[0].Y, 600-100*chartScale)
	test.ExpectSuccess(t, pts[20].Y < pts[0].Y)
}

func TestRedrawPublishes(t *testing.T) {
	h, _ := newTestHUD(t, BothEyes)

	// construction publishes the initial (blank) overlay texture
	tex := h.Material().Texture("u_overlay")
	test.DemandSuccess(t, tex != nil)
	gen := tex.Generation()

	// a redraw without a resize reuses the texture and its image binding
	h.UpdateParams(60, 512, 45.5, 3, 7)
	h.UpdateHUD()
	test.ExpectEquality(t, h.Material().Texture("u_overlay"), tex)
	test.ExpectEquality(t, tex.Generation(), gen)
}

func TestRedrawEmptyHistory(t *testing.T) {
	h, _ := newTestHUD(t, BothEyes)

	// a redraw with no samples must not panic and must still clear the
	// updated flag
	h.UpdateHUD()
	test.ExpectFailure(t, h.IsUpdated())

	h.UpdateParams(60, 512, 45.5, 3, 7)
	h.Clear()
	h.UpdateHUD()
	test.ExpectFailure(t, h.IsUpdated())
}

func TestCanvasResize(t *testing.T) {
	h, _ := newTestHUD(t, BothEyes)

	old := h.Material().Texture("u_overlay")
	test.DemandSuccess(t, old != nil)

	test.ExpectSuccess(t, h.SetCanvasWidthHeight(800, 600))
	test.ExpectEquality(t, h.CanvasWidth(), 800)
	test.ExpectEquality(t, h.CanvasHeight(), 600)

	// the redraw after a resize produces a raster of exactly the new
	// dimensions and publishes a fresh texture
	h.UpdateParams(60, 512, 45.5, 3, 7)
	h.UpdateHUD()

	tex := h.Material().Texture("u_overlay")
	test.DemandSuccess(t, tex != nil)
	test.ExpectInequality(t, tex, old)

	pix := tex.Image().Pixels()
	test.ExpectEquality(t, pix.Bounds().Dx(), 800)
	test.ExpectEquality(t, pix.Bounds().Dy(), 600)

	// invalid dimensions are rejected and leave the canvas alone
	test.ExpectFailure(t, h.SetCanvasWidthHeight(0, 600))
	test.ExpectEquality(t, h.CanvasWidth(), 800)
}

func TestRedrawDrawsChart(t *testing.T) {
	h, _ := newTestHUD(t, BothEyes)

	for i := 0; i < 21; i++ {
		h.UpdateParams(30, 512, 45.5, 3, 7)
	}
	h.UpdateHUD()

	// a flat 30fps polyline lies 90 raster units above the horizontal axis.
	// check a pixel in the middle of the chart region is the chart color
	pix := h.Material().Texture("u_overlay").Image().Pixels()

	xOffset := h.width/2 - 210
	yOffset := h.width/2 + 210

	r, _, _, a := pix.At(xOffset+50, yOffset-90).RGBA()
	test.ExpectInequality(t, a, uint32(0))
	test.ExpectSuccess(t, r > 0)
}
