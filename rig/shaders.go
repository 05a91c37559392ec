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
	"sync"

	"github.com/stereohud/stereohud/curated"
)

// Shader is a compiled-or-pending shader program. Program is the device-side
// handle and is zero when the registry has no compiler, headless operation
// for instance
type Shader struct {
	Name     string
	Vertex   []byte
	Fragment []byte
	Program  uint32
}

// Compiler turns GLSL source into a device-side program handle. Implemented
// by the rendering backend
type Compiler interface {
	Compile(vertex []byte, fragment []byte) (uint32, error)
}

// ShaderRegistry compiles and caches shader programs by name. Widgets that
// share a shader, multiple overlay instances for example, receive the same
// compiled program from Register().
//
// The registry is safe for concurrent registration. Everything else in this
// package assumes single-threaded use from the render loop
type ShaderRegistry struct {
	crit sync.Mutex

	compiler Compiler
	shaders  map[string]*Shader
}

// NewShaderRegistry is the preferred method of initialisation for the
// ShaderRegistry type. A nil compiler is allowed; registered shaders then
// carry their source but no program handle
func NewShaderRegistry(compiler Compiler) *ShaderRegistry {
	return &ShaderRegistry{
		compiler: compiler,
		shaders:  make(map[string]*Shader),
	}
}

// Register compiles the shader source under the given name, or returns the
// previously compiled shader if the name is already registered
func (r *ShaderRegistry) Register(name string, vertex []byte, fragment []byte) (*Shader, error) {
	r.crit.Lock()
	defer r.crit.Unlock()

	if sh, ok := r.shaders[name]; ok {
		return sh, nil
	}

	sh := &Shader{
		Name:     name,
		Vertex:   vertex,
		Fragment: fragment,
	}

	if r.compiler != nil {
		var err error
		sh.Program, err = r.compiler.Compile(vertex, fragment)
		if err != nil {
			return nil, curated.Errorf("shaders: %s: %v", name, err)
		}
	}

	r.shaders[name] = sh
	return sh, nil
}

// Lookup returns the shader registered under the given name
func (r *ShaderRegistry) Lookup(name string) (*Shader, bool) {
	r.crit.Lock()
	defer r.crit.Unlock()

	sh, ok := r.shaders[name]
	return sh, ok
}
