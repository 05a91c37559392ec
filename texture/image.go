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

package texture

import (
	"image"
)

// Image is the pixel data bound to a Texture. Whether the pixel data can be
// swapped for new data without rebinding is a property of the image decided
// at construction, not something callers discover by inspecting the concrete
// type
type Image interface {
	// Pixels returns the current pixel data. May be nil for an image that has
	// not been given any data
	Pixels() *image.RGBA

	// Replace swaps the backing pixel data for the supplied data. Returns
	// false if the image does not support replacement, in which case the
	// caller should bind a new Image to the Texture
	Replace(pix *image.RGBA) bool
}

// BitmapImage is an Image with mutable backing pixels. Replacement succeeds
// so long as the dimensions of the new pixel data match, meaning the texture
// storage on the rendering device can be updated in place
type BitmapImage struct {
	pixels *image.RGBA
}

// NewBitmapImage is the preferred method of initialisation for the
// BitmapImage type
func NewBitmapImage(pix *image.RGBA) *BitmapImage {
	return &BitmapImage{pixels: pix}
}

// Pixels implements the Image interface
func (b *BitmapImage) Pixels() *image.RGBA {
	return b.pixels
}

// Replace implements the Image interface. Fails if the dimensions of the new
// pixel data differ from the current data, because the device-side storage
// would need reallocating
func (b *BitmapImage) Replace(pix *image.RGBA) bool {
	if pix == nil || b.pixels == nil {
		return false
	}
	if !pix.Bounds().Eq(b.pixels.Bounds()) {
		return false
	}
	b.pixels = pix
	return true
}

// StaticImage is an Image whose pixel data is fixed at construction. Used for
// overlay content that never changes, a watermark for instance
type StaticImage struct {
	pixels *image.RGBA
}

// NewStaticImage is the preferred method of initialisation for the
// StaticImage type
func NewStaticImage(pix *image.RGBA) *StaticImage {
	return &StaticImage{pixels: pix}
}

// Pixels implements the Image interface
func (s *StaticImage) Pixels() *image.RGBA {
	return s.pixels
}

// Replace implements the Image interface. Always refuses
func (s *StaticImage) Replace(_ *image.RGBA) bool {
	return false
}
