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

// Package raster provides the offscreen drawing surface used by overlay
// widgets. Drawing and text rasterization is done with the gg package and a
// truetype face built from the embedded Go font.
package raster

import (
	"image"
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/stereohud/stereohud/curated"
)

// DefaultFontSize is the size text is drawn at unless changed with
// SetFontSize()
const DefaultFontSize = 12.0

// Point is a single coordinate on the surface
type Point struct {
	X float64
	Y float64
}

// the shared truetype font used by every surface. parsed on first use
var fontOnce sync.Once
var fontRegular *truetype.Font
var fontErr error

// Surface is a fixed-size RGBA raster with a drawing context. Surfaces are
// not safe for concurrent use
type Surface struct {
	width  int
	height int

	dc       *gg.Context
	face     font.Face
	fontSize float64
}

// NewSurface is the preferred method of initialisation for the Surface type
func NewSurface(width int, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf("raster: invalid surface dimensions (%dx%d)", width, height)
	}

	fontOnce.Do(func() {
		fontRegular, fontErr = truetype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, curated.Errorf("raster: %v", fontErr)
	}

	s := &Surface{
		width:  width,
		height: height,
		dc:     gg.NewContext(width, height),
	}
	s.SetFontSize(DefaultFontSize)
	s.Clear()

	return s, nil
}

// Size returns the width and height of the surface
func (s *Surface) Size() (width int, height int) {
	return s.width, s.height
}

// Clear erases the surface to full transparency
func (s *Surface) Clear() {
	s.dc.SetColor(color.RGBA{})
	s.dc.Clear()
}

// SetColor sets the color used by subsequent drawing operations
func (s *Surface) SetColor(c color.Color) {
	s.dc.SetColor(c)
}

// SetStrokeWidth sets the line width used by subsequent stroke operations
func (s *Surface) SetStrokeWidth(w float64) {
	s.dc.SetLineWidth(w)
}

// Line strokes a straight line between two points
func (s *Surface) Line(x1 float64, y1 float64, x2 float64, y2 float64) {
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
}

// Polyline strokes a connected series of line segments through the supplied
// points. Fewer than two points draws nothing
func (s *Surface) Polyline(pts []Point) {
	if len(pts) < 2 {
		return
	}
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.Stroke()
}

// Text draws a string with its baseline origin at the supplied coordinates
func (s *Surface) Text(str string, x float64, y float64) {
	s.dc.DrawString(str, x, y)
}

// MeasureText returns the advance width of the string at the current font
// size
func (s *Surface) MeasureText(str string) float64 {
	w, _ := s.dc.MeasureString(str)
	return w
}

// FontSpacing returns the recommended vertical distance between baselines of
// successive lines of text
func (s *Surface) FontSpacing() float64 {
	m := s.face.Metrics()
	return float64(m.Height) / 64
}

// SetFontSize rebuilds the font face at the new size
func (s *Surface) SetFontSize(size float64) {
	s.fontSize = size
	s.face = truetype.NewFace(fontRegular, &truetype.Options{Size: size})
	s.dc.SetFontFace(s.face)
}

// FontSize returns the current font size
func (s *Surface) FontSize() float64 {
	return s.fontSize
}

// Image returns the pixel data backing the surface
func (s *Surface) Image() *image.RGBA {
	return s.dc.Image().(*image.RGBA)
}
