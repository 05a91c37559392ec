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

package glrig

import (
	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/stereohud/stereohud/texture"
)

// per-texture upload state. generation and dimensions decide whether device
// storage must be recreated or can be updated in place
type uploadEntry struct {
	id         uint32
	generation int
	width      int32
	height     int32
}

// Uploader owns the device-side storage for textures produced by widgets.
// Storage is recreated only when a texture's image binding or dimensions
// change; pixel-only updates go through the cheaper sub-image path
type Uploader struct {
	entries map[*texture.Texture]*uploadEntry
}

// NewUploader is the preferred method of initialisation for the Uploader type
func NewUploader() *Uploader {
	return &Uploader{
		entries: make(map[*texture.Texture]*uploadEntry),
	}
}

// Destroy releases all device-side storage owned by the Uploader
func (u *Uploader) Destroy() {
	for _, e := range u.entries {
		gl.DeleteTextures(1, &e.id)
	}
	clear(u.entries)
}

// Upload makes sure the device-side storage for the texture reflects its
// current pixel data, returning the GL texture id. Returns zero for a
// texture with no image or no pixel data
func (u *Uploader) Upload(t *texture.Texture) uint32 {
	img := t.Image()
	if img == nil || img.Pixels() == nil {
		return 0
	}

	pix := img.Pixels()
	width := int32(pix.Bounds().Dx())
	height := int32(pix.Bounds().Dy())

	e, ok := u.entries[t]
	if !ok {
		e = &uploadEntry{generation: -1}
		gl.GenTextures(1, &e.id)
		gl.BindTexture(gl.TEXTURE_2D, e.id)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		u.entries[t] = e
	}

	gl.BindTexture(gl.TEXTURE_2D, e.id)

	if e.generation != t.Generation() || e.width != width || e.height != height {
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, width, height, 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(pix.Pix))
		e.generation = t.Generation()
		e.width = width
		e.height = height
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			0, 0, width, height,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(pix.Pix))
	}

	return e.id
}
