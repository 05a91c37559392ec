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

// Package texture defines the texture and image objects shared between the
// widgets that produce pixel data and the rendering backend that uploads it.
//
// A Texture is a single image binding plus a generation count. The generation
// increases whenever a new Image object is bound, telling the backend that
// device-side storage must be recreated rather than updated in place.
package texture

// Texture is a bindable image. The zero value is not usable, use NewTexture()
type Texture struct {
	image      Image
	generation int
}

// NewTexture is the preferred method of initialisation for the Texture type
func NewTexture() *Texture {
	return &Texture{}
}

// Image returns the currently bound image. May be nil
func (t *Texture) Image() Image {
	return t.image
}

// SetImage binds a new image to the texture, advancing the generation
func (t *Texture) SetImage(img Image) {
	t.image = img
	t.generation++
}

// Generation returns the number of times an image has been bound to the
// texture. A rendering backend compares this against the generation it last
// uploaded to decide between recreating device storage and updating it in
// place
func (t *Texture) Generation() int {
	return t.generation
}
