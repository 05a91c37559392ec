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

// Package metrics gathers the host readings shown by the overlay: available
// memory, CPU temperature and CPU/GPU load levels. Memory, CPU and
// temperature come from gopsutil; the GPU level is a best-effort nvidia-smi
// query refreshed on a slower cadence.
package metrics

import (
	"context"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/stereohud/stereohud/curated"
	"github.com/stereohud/stereohud/logger"
)

// Reading is one round of host metrics in the units the overlay displays
type Reading struct {
	// available memory in megabytes
	AvailMem int

	// CPU temperature in degrees celsius. zero when no sensor is readable
	CPUTemp float32

	// load levels quantized to 0-10
	CPULevel int
	GPULevel int
}

// how often the GPU is queried. much slower than the main sampling cadence
// because the query execs an external process
const gpuRefresh = 2 * time.Second

// Sampler produces Readings. Not safe for concurrent use
type Sampler struct {
	// previous GPU query result and when it was taken
	gpuLevel    int
	gpuRefresh  time.Time
	gpuDisabled bool
}

// NewSampler is the preferred method of initialisation for the Sampler type
func NewSampler() *Sampler {
	return &Sampler{}
}

// Snapshot gathers a Reading. Partial failure is tolerated: a sensor that
// cannot be read leaves its field at zero and the error is logged rather
// than returned. An error is only returned when no reading at all could be
// taken
func (s *Sampler) Snapshot(ctx context.Context) (Reading, error) {
	var r Reading
	var ok bool

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		logger.Log(logger.Allow, "metrics", err)
	} else {
		r.AvailMem = int(vm.Available / (1 << 20))
		ok = true
	}

	if pct, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		logger.Log(logger.Allow, "metrics", err)
	} else if len(pct) > 0 {
		r.CPULevel = quantizeLevel(pct[0])
		ok = true
	}

	if temps, err := host.SensorsTemperaturesWithContext(ctx); err != nil {
		logger.Log(logger.Allow, "metrics", err)
	} else {
		r.CPUTemp = cpuTemperature(temps)
	}

	r.GPULevel = s.gpu(ctx)

	if !ok {
		return Reading{}, curated.Errorf("metrics: %v", "no host readings available")
	}

	return r, nil
}

// Stream emits a Reading at the given interval until the context is done
func (s *Sampler) Stream(ctx context.Context, interval time.Duration) <-chan Reading {
	ch := make(chan Reading)
	go func() {
		defer close(ch)
		tck := time.NewTicker(interval)
		defer tck.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-tck.C:
				r, err := s.Snapshot(ctx)
				if err != nil {
					continue
				}
				select {
				case ch <- r:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch
}

// gpu returns the cached GPU level, refreshing it when stale. A query
// failure disables further queries for the life of the sampler
func (s *Sampler) gpu(ctx context.Context) int {
	if s.gpuDisabled {
		return 0
	}
	if time.Since(s.gpuRefresh) < gpuRefresh {
		return s.gpuLevel
	}

	level, err := queryGPULevel(ctx)
	if err != nil {
		logger.Log(logger.Allow, "metrics", err)
		s.gpuDisabled = true
		return 0
	}

	s.gpuLevel = level
	s.gpuRefresh = time.Now()
	return s.gpuLevel
}

// quantizeLevel converts a percentage to a 0-10 load level
func quantizeLevel(pct float64) int {
	if pct <= 0 {
		return 0
	}
	if pct >= 100 {
		return 10
	}
	return int(pct/10.0 + 0.5)
}

// cpuTemperature picks the most plausible CPU sensor from the host's
// temperature sensors. CPU package sensors are preferred over anything else
func cpuTemperature(temps []host.TemperatureStat) float32 {
	if len(temps) == 0 {
		return 0
	}

	for _, t := range temps {
		key := strings.ToLower(t.SensorKey)
		for _, pfx := range []string{"coretemp_packageid0", "k10temp_tctl", "cpu_thermal", "cpu-thermal"} {
			if strings.HasPrefix(key, pfx) {
				return float32(t.Temperature)
			}
		}
	}

	for _, t := range temps {
		if strings.Contains(strings.ToLower(t.SensorKey), "cpu") {
			return float32(t.Temperature)
		}
	}

	return float32(temps[0].Temperature)
}
