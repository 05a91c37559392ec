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
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/stereohud/stereohud/curated"
)

// Compiler compiles GLSL source into program handles. It implements the
// rig.Compiler interface.
//
// All functions must be called from the thread that owns the GL context
type Compiler struct{}

// Compile implements the rig.Compiler interface
func (c Compiler) Compile(vertex []byte, fragment []byte) (uint32, error) {
	vertHandle, err := compileShader(gl.VERTEX_SHADER, vertex)
	if err != nil {
		return 0, curated.Errorf("glrig: vertex: %v", err)
	}
	defer gl.DeleteShader(vertHandle)

	fragHandle, err := compileShader(gl.FRAGMENT_SHADER, fragment)
	if err != nil {
		return 0, curated.Errorf("glrig: fragment: %v", err)
	}
	defer gl.DeleteShader(fragHandle)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertHandle)
	gl.AttachShader(handle, fragHandle)
	gl.LinkProgram(handle)

	var isLinked int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &isLinked)
	if isLinked == 0 {
		defer gl.DeleteProgram(handle)
		return 0, curated.Errorf("glrig: link: %s", programInfoLog(handle))
	}

	return handle, nil
}

func compileShader(shaderType uint32, source []byte) (uint32, error) {
	handle := gl.CreateShader(shaderType)

	csource, free := gl.Strs(string(source) + "\x00")
	defer free()
	gl.ShaderSource(handle, 1, csource, nil)

	gl.CompileShader(handle)

	var isCompiled int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == 0 {
		defer gl.DeleteShader(handle)
		return 0, curated.Errorf("%s", shaderInfoLog(handle))
	}

	return handle, nil
}

// shaderInfoLog returns the most recent log generated by the shader compiler
func shaderInfoLog(handle uint32) string {
	var logLength int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return "unknown error"
	}

	// the log length includes the NULL character
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(handle, logLength, &logLength, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

// programInfoLog returns the most recent log generated by the program linker
func programInfoLog(handle uint32) string {
	var logLength int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return "unknown error"
	}

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(handle, logLength, &logLength, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}
