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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/stereohud/stereohud/curated"
	"github.com/stereohud/stereohud/hud"
	"github.com/stereohud/stereohud/metrics"
	"github.com/stereohud/stereohud/rig"
)

// the rate the redraw throughput is reported against
const targetRedrawRate = 60.0

// Check measures overlay redraw throughput. A HUD is driven as fast as
// possible for the specified duration, fed with real host metrics, with no
// rendering backend attached. The result, along with the last round of
// metric readings, is written to output.
//
// Will optionally generate profiling information.
func Check(output io.Writer, profile Profile, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	rigCtx := rig.NewContext(rig.NewShaderRegistry(nil))
	h, err := hud.New(rigCtx, hud.BothEyes)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	sampler := metrics.NewSampler()
	counter := metrics.NewFPSCounter()

	var reading metrics.Reading
	var rate float32
	var numFrames int

	runner := func() error {
		end := time.Now().Add(dur)
		var lastSample time.Time

		for time.Now().Before(end) {
			// host readings and the redraw rate are refreshed once a second.
			// the redraw itself runs uncapped
			if time.Since(lastSample) >= time.Second {
				r, err := sampler.Snapshot(context.Background())
				if err == nil {
					reading = r
				}
				rate = counter.Rate()
				lastSample = time.Now()
			}

			counter.Tick()
			h.UpdateParams(rate, reading.AvailMem, reading.CPUTemp, reading.CPULevel, reading.GPULevel)
			h.UpdateHUD()
			numFrames++
		}

		return nil
	}

	err = RunProfiler(profile, "check", runner)
	if err != nil {
		return err
	}

	fps, accuracy := CalcFPS(numFrames, dur.Seconds(), targetRedrawRate)
	fmt.Fprintf(output, "%d redraws in %v\n", numFrames, dur)
	fmt.Fprintf(output, "%.2f redraws/sec (%.1f%% of %.0ffps target)\n", fps, accuracy, targetRedrawRate)
	fmt.Fprintf(output, "mem: %dMB  temp: %.1f  cpu: %d  gpu: %d\n",
		reading.AvailMem, reading.CPUTemp, reading.CPULevel, reading.GPULevel)

	return nil
}
