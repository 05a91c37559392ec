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

package hud

import (
	"image/color"
	"testing"

	"github.com/stereohud/stereohud/rig"
	"github.com/stereohud/stereohud/test"
)

func newTestHUD(t *testing.T, mode EyeMode) (*HUD, *rig.Context) {
	t.Helper()
	ctx := rig.NewContext(rig.NewShaderRegistry(nil))
	h, err := New(ctx, mode)
	test.DemandSuccess(t, err)
	return h, ctx
}

func TestSampleHistory(t *testing.T) {
	h, _ := newTestHUD(t, NeitherEye)

	// history length is min(calls so far, capacity)
	for i := 1; i <= 30; i++ {
		h.UpdateParams(float32(i*10), 0, 0, 0, 0)
		want := i
		if want > maxFPSEntries {
			want = maxFPSEntries
		}
		test.ExpectEquality(t, len(h.fps), want)
	}

	// 30 pushes of [10,20,...,300] keep only the last 21 values, in
	// chronological order
	test.DemandEquality(t, len(h.fps), 21)
	for i, v := range h.fps {
		test.ExpectEquality(t, v, float32((i+10)*10))
	}
	test.ExpectEquality(t, h.fps[0], float32(100))
	test.ExpectEquality(t, h.fps[20], float32(300))
}

func TestUpdatedFlag(t *testing.T) {
	h, _ := newTestHUD(t, NeitherEye)

	test.ExpectFailure(t, h.IsUpdated())

	h.UpdateParams(60, 512, 45.5, 3, 7)
	test.ExpectSuccess(t, h.IsUpdated())

	h.UpdateHUD()
	test.ExpectFailure(t, h.IsUpdated())

	// any interleaving: updates set the flag, redraw clears it
	h.UpdateParams(59, 512, 45.5, 3, 7)
	h.UpdateParams(58, 512, 45.5, 3, 7)
	test.ExpectSuccess(t, h.IsUpdated())
	h.UpdateHUD()
	test.ExpectFailure(t, h.IsUpdated())
}

func TestClear(t *testing.T) {
	h, _ := newTestHUD(t, NeitherEye)

	h.UpdateParams(60, 512, 45.5, 3, 7)
	test.DemandEquality(t, len(h.fps), 1)

	h.Clear()

	// the history empties but the latest readings and the updated flag are
	// untouched
	test.ExpectEquality(t, len(h.fps), 0)
	test.ExpectEquality(t, h.availMem, 512)
	test.ExpectEquality(t, h.cpuTemp, float32(45.5))
	test.ExpectEquality(t, h.cpuLevel, 3)
	test.ExpectEquality(t, h.gpuLevel, 7)
	test.ExpectSuccess(t, h.IsUpdated())
}

func attachedCount(cameras *rig.CameraRig, h *HUD) int {
	n := 0
	for _, m := range cameras.Left().PostEffects() {
		if m == h.mat {
			n++
		}
	}
	for _, m := range cameras.Right().PostEffects() {
		if m == h.mat {
			n++
		}
	}
	return n
}

func TestEyeModes(t *testing.T) {
	h, ctx := newTestHUD(t, BothEyes)
	cameras := ctx.MainScene().CameraRig()

	test.ExpectEquality(t, h.EyeMode(), BothEyes)
	test.ExpectEquality(t, attachedCount(cameras, h), 2)

	h.SetEyeMode(NeitherEye)
	test.ExpectEquality(t, attachedCount(cameras, h), 0)

	h.SetEyeMode(LeftEye)
	test.ExpectEquality(t, attachedCount(cameras, h), 1)
	test.ExpectEquality(t, len(cameras.Right().PostEffects()), 0)

	// switching directly between modes never leaves the overlay attached to
	// more cameras than the new mode specifies
	h.SetEyeMode(RightEye)
	test.ExpectEquality(t, attachedCount(cameras, h), 1)
	test.ExpectEquality(t, len(cameras.Left().PostEffects()), 0)

	h.SetEyeMode(BothEyes)
	h.SetEyeMode(BothEyes)
	test.ExpectEquality(t, attachedCount(cameras, h), 2)
}

func TestEyeModeParsing(t *testing.T) {
	for _, mode := range []EyeMode{LeftEye, RightEye, BothEyes, NeitherEye} {
		m, err := ParseEyeMode(mode.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, m, mode)
	}

	_, err := ParseEyeMode("middle")
	test.ExpectFailure(t, err)
}

func TestTextSettings(t *testing.T) {
	h, _ := newTestHUD(t, NeitherEye)

	test.ExpectEquality(t, h.TextColor(), color.RGBA{B: 255, A: 255})
	test.ExpectEquality(t, h.TextSize(), float32(1))

	h.SetTextColor(color.RGBA{G: 255, A: 255})
	test.ExpectEquality(t, h.TextColor(), color.RGBA{G: 255, A: 255})

	h.SetTextSize(2)
	test.ExpectEquality(t, h.TextSize(), float32(2))
}

func TestConstruction(t *testing.T) {
	_, err := New(nil, BothEyes)
	test.ExpectFailure(t, err)

	ctx := rig.NewContext(rig.NewShaderRegistry(nil))
	_, err = NewInScene(ctx, BothEyes, nil)
	test.ExpectFailure(t, err)

	// two widgets on one context share the registered shader
	a, err := New(ctx, LeftEye)
	test.DemandSuccess(t, err)
	b, err := New(ctx, RightEye)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a.Material().Shader(), b.Material().Shader())
}
