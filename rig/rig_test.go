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

package rig_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stereohud/stereohud/rig"
	"github.com/stereohud/stereohud/test"
)

func TestPostEffects(t *testing.T) {
	cam := &rig.Camera{}
	a := rig.NewMaterial(nil)
	b := rig.NewMaterial(nil)

	cam.AddPostEffect(a)
	cam.AddPostEffect(b)
	test.ExpectEquality(t, len(cam.PostEffects()), 2)

	// adding an attached effect again is a no-op
	cam.AddPostEffect(a)
	test.ExpectEquality(t, len(cam.PostEffects()), 2)

	// ordering is preserved on removal
	cam.RemovePostEffect(a)
	test.DemandEquality(t, len(cam.PostEffects()), 1)
	test.ExpectEquality(t, cam.PostEffects()[0], b)

	// removing a detached effect is a no-op
	cam.RemovePostEffect(a)
	test.ExpectEquality(t, len(cam.PostEffects()), 1)
}

type countingCompiler struct {
	count atomic.Int32
}

func (c *countingCompiler) Compile(_ []byte, _ []byte) (uint32, error) {
	return uint32(c.count.Add(1)), nil
}

func TestRegistryCompilesOnce(t *testing.T) {
	compiler := &countingCompiler{}
	reg := rig.NewShaderRegistry(compiler)

	// many concurrent registrations of the same name must result in exactly
	// one compilation
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sh, err := reg.Register("hud", []byte("vert"), []byte("frag"))
			test.ExpectSuccess(t, err)
			test.ExpectEquality(t, sh.Program, uint32(1))
		}()
	}
	wg.Wait()

	test.ExpectEquality(t, compiler.count.Load(), int32(1))

	sh, ok := reg.Lookup("hud")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, sh.Name, "hud")
}

func TestRegistryWithoutCompiler(t *testing.T) {
	reg := rig.NewShaderRegistry(nil)

	sh, err := reg.Register("hud", []byte("vert"), []byte("frag"))
	test.DemandSuccess(t, err)

	// no compiler means no program handle but source is retained
	test.ExpectEquality(t, sh.Program, uint32(0))
	test.ExpectEquality(t, string(sh.Vertex), "vert")
	test.ExpectEquality(t, string(sh.Fragment), "frag")
}

func TestContextScene(t *testing.T) {
	ctx := rig.NewContext(rig.NewShaderRegistry(nil))
	test.ExpectSuccess(t, ctx.MainScene() != nil)
	test.ExpectSuccess(t, ctx.MainScene().CameraRig().Left() != ctx.MainScene().CameraRig().Right())

	s := rig.NewScene()
	ctx.SetMainScene(s)
	test.ExpectEquality(t, ctx.MainScene(), s)
}
