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

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate.
//
// A new FPSLimiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewFPSLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		renderFrame()
//	}
package limiter

import (
	"time"

	"github.com/stereohud/stereohud/curated"
)

// this is a simple attempt at frame rate limiting. only any good if base
// performance of the machine is well above the required rate

// FPSLimiter will trigger at the set frames per second
type FPSLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	tick chan bool
}

// NewFPSLimiter is the preferred method of initialisation for the FPSLimiter
// type
func NewFPSLimiter(framesPerSecond int) (*FPSLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf("limiter: invalid rate (%d)", framesPerSecond)
	}

	lim := &FPSLimiter{}
	lim.SetLimit(framesPerSecond)
	lim.tick = make(chan bool)

	// run ticker concurrently. the sleep period is adjusted by the ticker's
	// own drift
	go func() {
		adjustedSecondsPerFrame := lim.secondsPerFrame
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjustedSecondsPerFrame)
			nt := time.Now()
			adjustedSecondsPerFrame -= nt.Sub(t) - lim.secondsPerFrame
			t = nt
		}
	}()

	return lim, nil
}

// SetLimit changes the rate at which the FPSLimiter triggers
func (lim *FPSLimiter) SetLimit(framesPerSecond int) {
	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Duration(float64(time.Second) / float64(framesPerSecond))
}

// Wait will block until the next trigger
func (lim *FPSLimiter) Wait() {
	<-lim.tick
}

// HasWaited returns true if time has already elapsed and false if it is
// still yet to happen
func (lim *FPSLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// the default case means the channel receive doesn't block
		return false
	}
}
