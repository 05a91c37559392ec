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

package metrics

import (
	"time"
)

// FPSCounter accumulates frame ticks and converts them to a frame-rate on
// demand. Not safe for concurrent use
type FPSCounter struct {
	frames int
	since  time.Time

	// replaced in tests
	now func() time.Time
}

// NewFPSCounter is the preferred method of initialisation for the FPSCounter
// type
func NewFPSCounter() *FPSCounter {
	c := &FPSCounter{now: time.Now}
	c.since = c.now()
	return c
}

// Tick records the completion of a frame
func (c *FPSCounter) Tick() {
	c.frames++
}

// Rate returns the frame-rate accumulated since the previous call to Rate()
// and starts a new accumulation period. Returns zero for a period too short
// to be meaningful
func (c *FPSCounter) Rate() float32 {
	now := c.now()
	elapsed := now.Sub(c.since).Seconds()
	if elapsed <= 0 {
		return 0
	}

	rate := float32(float64(c.frames) / elapsed)
	c.frames = 0
	c.since = now
	return rate
}
