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

	"github.com/stereohud/stereohud/rig"
)

// a fullscreen quad as two triangles. three position floats then two
// texcoord floats per vertex
var quadVertices = []float32{
	-1.0, -1.0, 0.0, 0.0, 0.0,
	1.0, -1.0, 0.0, 1.0, 0.0,
	1.0, 1.0, 0.0, 1.0, 1.0,
	-1.0, -1.0, 0.0, 0.0, 0.0,
	1.0, 1.0, 0.0, 1.0, 1.0,
	-1.0, 1.0, 0.0, 0.0, 1.0,
}

const quadStride = 5 * 4

// attribute and uniform locations for a single post effect program
type programLocations struct {
	position int32
	texcoord int32
	texture  int32
	overlay  int32
}

// Compositor applies a camera's post effects to the rendered scene by
// drawing a fullscreen quad per effect into the active viewport
type Compositor struct {
	vao uint32
	vbo uint32

	uploader  *Uploader
	locations map[uint32]programLocations
}

// NewCompositor is the preferred method of initialisation for the Compositor
// type
func NewCompositor() *Compositor {
	c := &Compositor{
		uploader:  NewUploader(),
		locations: make(map[uint32]programLocations),
	}

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	return c
}

// Destroy releases all device-side resources owned by the Compositor
func (c *Compositor) Destroy() {
	c.uploader.Destroy()
	gl.DeleteBuffers(1, &c.vbo)
	gl.DeleteVertexArrays(1, &c.vao)
}

func (c *Compositor) programLocations(program uint32) programLocations {
	if locs, ok := c.locations[program]; ok {
		return locs
	}
	locs := programLocations{
		position: gl.GetAttribLocation(program, gl.Str("a_position"+"\x00")),
		texcoord: gl.GetAttribLocation(program, gl.Str("a_texcoord"+"\x00")),
		texture:  gl.GetUniformLocation(program, gl.Str("u_texture"+"\x00")),
		overlay:  gl.GetUniformLocation(program, gl.Str("u_overlay"+"\x00")),
	}
	c.locations[program] = locs
	return locs
}

// Composite draws the scene texture into the viewport, applying the camera's
// post effects in order. A camera with no post effects still has its scene
// texture presented through the fallback program
func (c *Compositor) Composite(cam *rig.Camera, sceneTexture uint32, fallback uint32) {
	effects := cam.PostEffects()

	if len(effects) == 0 {
		c.draw(fallback, sceneTexture, 0)
		return
	}

	for _, m := range effects {
		sh := m.Shader()
		if sh == nil || sh.Program == 0 {
			continue
		}

		var overlay uint32
		if t := m.Texture("u_overlay"); t != nil {
			overlay = c.uploader.Upload(t)
		}

		c.draw(sh.Program, sceneTexture, overlay)
	}
}

func (c *Compositor) draw(program uint32, sceneTexture uint32, overlay uint32) {
	locs := c.programLocations(program)

	gl.UseProgram(program)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, sceneTexture)
	gl.Uniform1i(locs.texture, 0)

	if locs.overlay >= 0 {
		gl.ActiveTexture(gl.TEXTURE1)
		gl.BindTexture(gl.TEXTURE_2D, overlay)
		gl.Uniform1i(locs.overlay, 1)
	}

	gl.BindVertexArray(c.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)

	gl.EnableVertexAttribArray(uint32(locs.position))
	gl.VertexAttribPointerWithOffset(uint32(locs.position), 3, gl.FLOAT, false, quadStride, 0)
	if locs.texcoord >= 0 {
		gl.EnableVertexAttribArray(uint32(locs.texcoord))
		gl.VertexAttribPointerWithOffset(uint32(locs.texcoord), 2, gl.FLOAT, false, quadStride, uintptr(3*4))
	}

	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}
