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

package playmode

import (
	"runtime"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/stereohud/stereohud/curated"
)

const windowTitle = "Stereohud"

// platform wraps the SDL window and its OpenGL context
type platform struct {
	window    *sdl.Window
	glContext sdl.GLContext
}

// newPlatform is the preferred method of initialisation for the platform type
func newPlatform(width int32, height int32) (*platform, error) {
	// the GL context is bound to the creating thread
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("playmode: %v", err)
	}

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	plt := &platform{}

	plt.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height, sdl.WINDOW_OPENGL)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("playmode: %v", err)
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		plt.destroy()
		return nil, curated.Errorf("playmode: %v", err)
	}

	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		plt.destroy()
		return nil, curated.Errorf("playmode: %v", err)
	}

	// vsync off. frame pacing is handled by the limiter
	_ = sdl.GLSetSwapInterval(0)

	err = gl.Init()
	if err != nil {
		plt.destroy()
		return nil, curated.Errorf("playmode: %v", err)
	}

	return plt, nil
}

// drawableSize returns the size of the window's drawable area in pixels
func (plt *platform) drawableSize() (int32, int32) {
	return plt.window.GLGetDrawableSize()
}

// swap the front and back buffers
func (plt *platform) swap() {
	plt.window.GLSwap()
}

// destroy releases the GL context, the window and the SDL subsystem
func (plt *platform) destroy() {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}
	if plt.window != nil {
		_ = plt.window.Destroy()
		plt.window = nil
	}
	sdl.Quit()
}
