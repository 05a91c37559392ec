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

// Scene is a renderable scene with a stereo camera rig
type Scene struct {
	rig *CameraRig
}

// NewScene is the preferred method of initialisation for the Scene type
func NewScene() *Scene {
	return &Scene{
		rig: &CameraRig{
			left:  &Camera{},
			right: &Camera{},
		},
	}
}

// CameraRig returns the scene's stereo camera rig
func (s *Scene) CameraRig() *CameraRig {
	return s.rig
}

// CameraRig is a pair of cameras, one per eye
type CameraRig struct {
	left  *Camera
	right *Camera
}

// Left returns the camera for the left eye
func (r *CameraRig) Left() *Camera {
	return r.left
}

// Right returns the camera for the right eye
func (r *CameraRig) Right() *Camera {
	return r.right
}

// Camera is a single eye's camera. It carries an ordered list of post effects
// that the rendering backend applies after the scene has been drawn
type Camera struct {
	postEffects []*Material
}

// AddPostEffect appends a post effect to the camera. Adding an effect that is
// already attached is a no-op
func (c *Camera) AddPostEffect(m *Material) {
	for _, e := range c.postEffects {
		if e == m {
			return
		}
	}
	c.postEffects = append(c.postEffects, m)
}

// RemovePostEffect detaches a post effect from the camera. Removing an effect
// that is not attached is a no-op
func (c *Camera) RemovePostEffect(m *Material) {
	for i, e := range c.postEffects {
		if e == m {
			c.postEffects = append(c.postEffects[:i], c.postEffects[i+1:]...)
			return
		}
	}
}

// PostEffects returns the camera's post effects in application order
func (c *Camera) PostEffects() []*Material {
	return c.postEffects
}
