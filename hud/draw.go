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
	"fmt"
	"image/color"

	"github.com/stereohud/stereohud/raster"
	"github.com/stereohud/stereohud/texture"
)

// chart geometry. samples are spaced chartStep raster units apart and scaled
// by chartScale vertically
const (
	chartStep   = 10.0
	chartScale  = 3.0
	chartWidth  = 200.0
	chartHeight = 200.0
)

var (
	axisColor  = color.RGBA{B: 255, A: 255}
	chartColor = color.RGBA{R: 255, A: 255}
)

// chartPoints builds the polyline for the last min(maxFPSEntries, len(fps))
// samples. y is inverted so that a higher frame-rate draws higher up the
// canvas
func (h *HUD) chartPoints(xOffset float64, yOffset float64) []raster.Point {
	show := min(maxFPSEntries, len(h.fps))
	pts := make([]raster.Point, 0, show)
	for i := len(h.fps) - show; i < len(h.fps); i++ {
		pts = append(pts, raster.Point{
			X: xOffset + float64(i)*chartStep,
			Y: yOffset - float64(h.fps[i])*chartScale,
		})
	}
	return pts
}

// UpdateHUD redraws the overlay canvas and republishes it as the overlay
// texture. The updated flag is cleared whether or not there was anything to
// chart.
//
// With an empty sample history the chart polyline and the FPS text line are
// skipped; nothing guarantees a sample has arrived before the first redraw
func (h *HUD) UpdateHUD() {
	h.surface.Clear()

	xOffset := float64(h.width)/2.0 - 210.0
	yOffset := float64(h.width)/2.0 + 210.0

	// chart axes
	h.surface.SetColor(axisColor)
	h.surface.SetStrokeWidth(2)
	h.surface.Line(xOffset, yOffset-chartHeight, xOffset, yOffset)
	h.surface.Line(xOffset, yOffset, xOffset+chartWidth, yOffset)

	// frame-rate polyline
	if len(h.fps) > 0 {
		h.surface.SetColor(chartColor)
		h.surface.SetStrokeWidth(1)
		h.surface.Polyline(h.chartPoints(xOffset, yOffset))
	}

	// title and axis labels
	h.surface.SetColor(h.textColor)
	spacing := h.surface.FontSpacing()
	yOffset += spacing / 3.0
	h.surface.Text("Frames Per Second", xOffset+20.0, yOffset-chartHeight)
	h.surface.Text("0", xOffset-h.surface.MeasureText("0 "), yOffset)
	h.surface.Text("60", xOffset-h.surface.MeasureText("60 "), yOffset-180.0)

	// current metric values
	xOffset = float64(h.width)/2.0 + 50.0
	yOffset = float64(h.height)/2.0 + 20.0

	if len(h.fps) > 0 {
		h.surface.Text(fmt.Sprintf("FPS : %.2f", h.fps[len(h.fps)-1]), xOffset, yOffset)
	}
	yOffset += spacing
	h.surface.Text(fmt.Sprintf("Mem : %d", h.availMem), xOffset, yOffset)
	yOffset += spacing
	h.surface.Text(fmt.Sprintf("Temp : %.1f", h.cpuTemp), xOffset, yOffset)
	yOffset += spacing
	h.surface.Text(fmt.Sprintf("CPU : %d", h.cpuLevel), xOffset, yOffset)
	yOffset += spacing
	h.surface.Text(fmt.Sprintf("GPU : %d", h.gpuLevel), xOffset, yOffset)

	h.publish()

	h.updated = false
}

// publish makes the canvas pixels available as the overlay texture. The
// texture and image pair is reused whenever possible: the texture is only
// created when missing and the image binding only replaced when the bound
// image cannot accept the pixel data in place
func (h *HUD) publish() {
	if h.tex == nil {
		h.tex = texture.NewTexture()
	}

	replaced := false
	if img := h.tex.Image(); img != nil {
		replaced = img.Replace(h.surface.Image())
	}

	if !replaced {
		h.tex.SetImage(texture.NewBitmapImage(h.surface.Image()))
		h.mat.SetTexture(overlaySampler, h.tex)
	}
}
