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

// Package rig models the host engine surfaces the overlay widget needs: a
// render context with a main scene, a stereo camera rig whose cameras carry
// post-effect lists, materials with named texture bindings, and a shader
// registry.
//
// The registry is owned by the Context and handed to widgets at construction.
// There is deliberately no process-wide shader cache; an engine restart means
// a new Context and with it a new registry.
package rig

// Context is the render context handed to widgets at construction
type Context struct {
	mainScene *Scene
	shaders   *ShaderRegistry
}

// NewContext is the preferred method of initialisation for the Context type.
// The context starts with an empty main scene
func NewContext(shaders *ShaderRegistry) *Context {
	return &Context{
		mainScene: NewScene(),
		shaders:   shaders,
	}
}

// MainScene returns the context's current main scene
func (c *Context) MainScene() *Scene {
	return c.mainScene
}

// SetMainScene replaces the context's main scene
func (c *Context) SetMainScene(s *Scene) {
	c.mainScene = s
}

// Shaders returns the context's shader registry
func (c *Context) Shaders() *ShaderRegistry {
	return c.shaders
}
