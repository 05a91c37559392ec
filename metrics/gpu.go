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
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/stereohud/stereohud/curated"
)

// how long a GPU query is allowed to run before being abandoned
const gpuQueryTimeout = 400 * time.Millisecond

// queryGPULevel asks nvidia-smi for the current GPU utilization and
// quantizes it to a 0-10 level. The first available GPU is used
func queryGPULevel(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, gpuQueryTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "nvidia-smi",
		"--query-gpu=utilization.gpu",
		"--format=csv,noheader,nounits").Output()
	if err != nil {
		return 0, curated.Errorf("gpu: %v", err)
	}

	return parseGPUQuery(string(out))
}

// parseGPUQuery extracts the utilization of the first GPU from nvidia-smi
// csv output
func parseGPUQuery(out string) (int, error) {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return 0, curated.Errorf("gpu: %v", "empty query result")
	}

	pct, err := strconv.ParseFloat(strings.TrimSpace(lines[0]), 64)
	if err != nil {
		return 0, curated.Errorf("gpu: %v", err)
	}

	return quantizeLevel(pct), nil
}
