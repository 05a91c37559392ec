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

// Package glrig is the OpenGL 3.2 rendering backend for the rig
// abstractions: shader compilation, texture upload, an offscreen render
// target, and the per-eye post effect compositor.
//
// Everything in this package must be called from the thread that owns the GL
// context, normally the main thread.
package glrig
