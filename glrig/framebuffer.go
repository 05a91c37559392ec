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
)

// Target is an offscreen framebuffer the scene is rendered into before
// composition. The backing texture is sampled by the post effect shaders
type Target struct {
	fbo     uint32
	texture uint32

	width  int32
	height int32
}

// NewTarget is the preferred method of initialisation for the Target type
func NewTarget() *Target {
	t := &Target{}
	gl.GenFramebuffers(1, &t.fbo)
	return t
}

// Destroy releases the framebuffer and its backing texture
func (t *Target) Destroy() {
	if t.texture != 0 {
		gl.DeleteTextures(1, &t.texture)
	}
	gl.DeleteFramebuffers(1, &t.fbo)
}

// Setup the target for the specified dimensions. The backing texture is only
// recreated when the dimensions change. Returns true if any previous texture
// data has been lost.
//
// Dimensions of zero or less leave the target untouched
func (t *Target) Setup(width int32, height int32) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if t.width == width && t.height == height {
		return false
	}

	changed := t.width != 0 || t.height != 0

	t.width = width
	t.height = height

	if t.texture != 0 {
		gl.DeleteTextures(1, &t.texture)
	}
	gl.GenTextures(1, &t.texture)
	gl.BindTexture(gl.TEXTURE_2D, t.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, width, height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(make([]uint8, width*height*4)))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.texture, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	return changed
}

// Dimensions returns the width and height of the target
func (t *Target) Dimensions() (width int32, height int32) {
	return t.width, t.height
}

// Texture returns the id of the target's backing texture
func (t *Target) Texture() uint32 {
	return t.texture
}

// Begin redirects rendering into the target
func (t *Target) Begin() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.Viewport(0, 0, t.width, t.height)
}

// End restores rendering to the default framebuffer
func (t *Target) End() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Clear the target to the supplied color. Must be bracketed by Begin()/End()
func (t *Target) Clear(r float32, g float32, b float32) {
	gl.ClearColor(r, g, b, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
