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

// Package shaders embeds the GLSL sources used during frame composition.
package shaders

import _ "embed"

// PostEffectQuadVertexShader positions the fullscreen quad that post effect
// fragments are applied to
//
//go:embed "posteffect_quad.vert"
var PostEffectQuadVertexShader []byte

// HUDConsoleFragShader composites the HUD overlay texture over the rendered
// scene
//
//go:embed "hud_console.frag"
var HUDConsoleFragShader []byte

// PassthroughFragShader presents the scene texture unchanged. Used for eyes
// with no post effects attached
//
//go:embed "passthrough.frag"
var PassthroughFragShader []byte
