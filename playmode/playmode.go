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

// Package playmode runs the overlay in a side-by-side stereo window. A
// placeholder scene is rendered into an offscreen target and composited to
// the left and right halves of the window; the overlay widget is fed with
// live host metrics and composited over whichever eye(s) it is attached to.
package playmode

import (
	"context"
	"time"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/stereohud/stereohud/curated"
	"github.com/stereohud/stereohud/glrig"
	"github.com/stereohud/stereohud/hud"
	"github.com/stereohud/stereohud/logger"
	"github.com/stereohud/stereohud/metrics"
	"github.com/stereohud/stereohud/performance/limiter"
	"github.com/stereohud/stereohud/rig"
	"github.com/stereohud/stereohud/shaders"
)

// the registry name of the shader used for cameras with no post effects
const fallbackShaderName = "passthrough"

// Config collects the tweakable parameters of the play loop
type Config struct {
	EyeMode hud.EyeMode

	// canvas dimensions of zero leave the widget at its defaults
	CanvasWidth  int
	CanvasHeight int

	// text size as a multiple of the default. zero leaves the widget at its
	// default
	TextSize float32

	WindowWidth  int32
	WindowHeight int32

	// how often host metrics are sampled and pushed into the widget
	SampleInterval time.Duration

	// frames per second the render loop is limited to
	FPSCap int
}

// Play runs the stereo window until it is closed or escape is pressed
func Play(cfg Config) error {
	if cfg.SampleInterval <= 0 {
		cfg.SampleInterval = time.Second
	}
	if cfg.FPSCap <= 0 {
		cfg.FPSCap = 60
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		cfg.WindowWidth = 1280
		cfg.WindowHeight = 720
	}

	plt, err := newPlatform(cfg.WindowWidth, cfg.WindowHeight)
	if err != nil {
		return err
	}
	defer plt.destroy()

	registry := rig.NewShaderRegistry(glrig.Compiler{})
	rigCtx := rig.NewContext(registry)

	fallback, err := registry.Register(fallbackShaderName,
		shaders.PostEffectQuadVertexShader, shaders.PassthroughFragShader)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	h, err := hud.New(rigCtx, cfg.EyeMode)
	if err != nil {
		return err
	}

	if cfg.CanvasWidth > 0 && cfg.CanvasHeight > 0 {
		err = h.SetCanvasWidthHeight(cfg.CanvasWidth, cfg.CanvasHeight)
		if err != nil {
			return err
		}
	}
	if cfg.TextSize > 0 {
		h.SetTextSize(cfg.TextSize)
	}

	target := glrig.NewTarget()
	defer target.Destroy()

	compositor := glrig.NewCompositor()
	defer compositor.Destroy()

	lim, err := limiter.NewFPSLimiter(cfg.FPSCap)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	readings := metrics.NewSampler().Stream(ctx, cfg.SampleInterval)
	counter := metrics.NewFPSCounter()

	logger.Logf(logger.Allow, "playmode", "eye mode: %s", cfg.EyeMode)

	rg := rigCtx.MainScene().CameraRig()

	for {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			}
		}

		select {
		case r := <-readings:
			h.UpdateParams(counter.Rate(), r.AvailMem, r.CPUTemp, r.CPULevel, r.GPULevel)
		default:
		}

		if h.IsUpdated() {
			h.UpdateHUD()
		}

		winW, winH := plt.drawableSize()
		eyeW := winW / 2

		// placeholder scene. one render shared by both eyes
		target.Setup(eyeW, winH)
		target.Begin()
		target.Clear(0.1, 0.1, 0.15)
		target.End()

		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.ClearColor(0.0, 0.0, 0.0, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.Viewport(0, 0, eyeW, winH)
		compositor.Composite(rg.Left(), target.Texture(), fallback.Program)

		gl.Viewport(eyeW, 0, eyeW, winH)
		compositor.Composite(rg.Right(), target.Texture(), fallback.Program)

		plt.swap()
		counter.Tick()
		lim.Wait()
	}
}
