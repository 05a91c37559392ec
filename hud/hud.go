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

// Package hud implements an on-screen performance overlay for a stereo
// render pipeline. The widget keeps a short history of frame-rate samples
// and the most recent memory, temperature and CPU/GPU load readings; on
// demand it redraws a line chart and text block into an offscreen raster and
// publishes the raster as the overlay texture composited over the scene for
// the configured eye(s).
//
// The widget is a state holder plus a draw routine. Feed it with
// UpdateParams(), poll IsUpdated() from the render loop and call UpdateHUD()
// when a redraw is due. All methods must be called from the same goroutine,
// normally the render loop.
package hud

import (
	"image/color"

	"github.com/stereohud/stereohud/curated"
	"github.com/stereohud/stereohud/raster"
	"github.com/stereohud/stereohud/rig"
	"github.com/stereohud/stereohud/shaders"
	"github.com/stereohud/stereohud/texture"
)

// number of frame-rate samples kept for the chart
const maxFPSEntries = 21

// default canvas dimensions
const (
	defaultWidth  = 1024
	defaultHeight = 1024
)

// the registry name of the overlay's post effect shader and the sampler the
// overlay texture is bound to
const (
	shaderName     = "hud_console"
	overlaySampler = "u_overlay"
)

var defaultTextColor = color.RGBA{B: 255, A: 255}

// HUD is the performance overlay widget. Use New() or NewInScene() for
// initialisation
type HUD struct {
	ctx   *rig.Context
	scene *rig.Scene
	mat   *rig.Material

	eyeMode EyeMode

	textColor color.RGBA
	textSize  float32

	// the most recent frame-rate samples in chronological order. never
	// longer than maxFPSEntries
	fps []float32

	// latest single-slot metric readings
	availMem int
	cpuTemp  float32
	cpuLevel int
	gpuLevel int

	// whether metric updates have arrived since the last redraw
	updated bool

	surface *raster.Surface
	tex     *texture.Texture

	width  int
	height int
}

// New creates a HUD attached to the context's main scene
func New(ctx *rig.Context, mode EyeMode) (*HUD, error) {
	if ctx == nil {
		return nil, curated.Errorf("hud: %v", "nil render context")
	}
	return NewInScene(ctx, mode, ctx.MainScene())
}

// NewInScene creates a HUD attached to an explicit scene. Useful when the
// overlay is created before the scene becomes the context's main scene
func NewInScene(ctx *rig.Context, mode EyeMode, scene *rig.Scene) (*HUD, error) {
	if ctx == nil {
		return nil, curated.Errorf("hud: %v", "nil render context")
	}
	if scene == nil {
		return nil, curated.Errorf("hud: %v", "nil scene")
	}

	sh, err := ctx.Shaders().Register(shaderName, shaders.PostEffectQuadVertexShader, shaders.HUDConsoleFragShader)
	if err != nil {
		return nil, curated.Errorf("hud: %v", err)
	}

	h := &HUD{
		ctx:    ctx,
		scene:  scene,
		mat:    rig.NewMaterial(sh),
		width:  defaultWidth,
		height: defaultHeight,
	}

	h.surface, err = raster.NewSurface(h.width, h.height)
	if err != nil {
		return nil, curated.Errorf("hud: %v", err)
	}

	h.setEyeMode(mode, scene.CameraRig())
	h.publish()
	h.SetTextColor(defaultTextColor)
	h.SetTextSize(1)

	return h, nil
}

// Material returns the material the overlay is rendered with. The rendering
// backend finds the same material in the post-effect list of whichever
// cameras the eye mode selects
func (h *HUD) Material() *rig.Material {
	return h.mat
}

// TextColor returns the current text color
func (h *HUD) TextColor() color.RGBA {
	return h.textColor
}

// SetTextColor sets the color used for the metric text block and axis labels
func (h *HUD) SetTextColor(c color.RGBA) {
	h.textColor = c
}

// TextSize returns the current text size as a multiple of the default size
func (h *HUD) TextSize() float32 {
	return h.textSize
}

// SetTextSize sets the text size as a multiple of the default size
func (h *HUD) SetTextSize(size float32) {
	h.textSize = size
	h.surface.SetFontSize(raster.DefaultFontSize * float64(size))
}

// EyeMode returns the current eye mode
func (h *HUD) EyeMode() EyeMode {
	return h.eyeMode
}

// SetEyeMode changes which eye(s) the overlay is composited over. The
// overlay is always detached from both cameras before being reattached
// according to the new mode, so switching between any two modes never leaves
// the overlay attached to more cameras than the mode specifies
func (h *HUD) SetEyeMode(mode EyeMode) {
	h.setEyeMode(mode, h.scene.CameraRig())
}

func (h *HUD) setEyeMode(mode EyeMode, cameras *rig.CameraRig) {
	h.eyeMode = mode

	left := cameras.Left()
	right := cameras.Right()

	// remove from both (even if not present) and add back as required
	left.RemovePostEffect(h.mat)
	right.RemovePostEffect(h.mat)

	if mode == LeftEye || mode == BothEyes {
		left.AddPostEffect(h.mat)
	}
	if mode == RightEye || mode == BothEyes {
		right.AddPostEffect(h.mat)
	}
}

// CanvasWidth returns the width of the overlay canvas
func (h *HUD) CanvasWidth() int {
	return h.width
}

// CanvasHeight returns the height of the overlay canvas
func (h *HUD) CanvasHeight() int {
	return h.height
}

// SetCanvasWidthHeight reallocates the overlay canvas at the new dimensions.
// The cached texture is invalidated; the next redraw publishes a fresh image
// binding
func (h *HUD) SetCanvasWidthHeight(width int, height int) error {
	surface, err := raster.NewSurface(width, height)
	if err != nil {
		return curated.Errorf("hud: %v", err)
	}

	h.width = width
	h.height = height
	h.surface = surface
	h.surface.SetFontSize(raster.DefaultFontSize * float64(h.textSize))
	h.tex = nil

	return nil
}

// UpdateParams pushes a new round of metric readings into the widget: a
// frame-rate sample, available memory, CPU temperature, and CPU/GPU load
// levels. The frame-rate sample joins the chart history, evicting the oldest
// sample once the history is full; the other readings overwrite the previous
// values. Values are recorded as given, there is no range validation
func (h *HUD) UpdateParams(fps float32, mem int, temp float32, cpu int, gpu int) {
	h.fps = append(h.fps, fps)
	if len(h.fps) > maxFPSEntries {
		h.fps = h.fps[1:]
	}

	h.availMem = mem
	h.cpuTemp = temp
	h.cpuLevel = cpu
	h.gpuLevel = gpu

	h.updated = true
}

// IsUpdated returns true if metric updates have arrived since the last call
// to UpdateHUD()
func (h *HUD) IsUpdated() bool {
	return h.updated
}

// Clear empties the frame-rate history. The latest metric readings and the
// updated flag are left alone
func (h *HUD) Clear() {
	h.fps = h.fps[:0]
}
