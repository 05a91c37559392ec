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

package rig

import (
	"github.com/stereohud/stereohud/texture"
)

// Material pairs a shader with the named textures its samplers consume. A
// material attached to a camera as a post effect is applied by the rendering
// backend during frame composition
type Material struct {
	shader   *Shader
	textures map[string]*texture.Texture
}

// NewMaterial is the preferred method of initialisation for the Material type
func NewMaterial(shader *Shader) *Material {
	return &Material{
		shader:   shader,
		textures: make(map[string]*texture.Texture),
	}
}

// Shader returns the material's shader
func (m *Material) Shader() *Shader {
	return m.shader
}

// SetTexture binds a texture to the named sampler
func (m *Material) SetTexture(sampler string, t *texture.Texture) {
	m.textures[sampler] = t
}

// Texture returns the texture bound to the named sampler. May be nil
func (m *Material) Texture(sampler string) *texture.Texture {
	return m.textures[sampler]
}
