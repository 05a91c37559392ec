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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stereohud/stereohud/hud"
	"github.com/stereohud/stereohud/logger"
	"github.com/stereohud/stereohud/performance"
	"github.com/stereohud/stereohud/playmode"
	"github.com/stereohud/stereohud/statsview"
	"github.com/stereohud/stereohud/version"
)

var rootCmd = &cobra.Command{
	Use:          "stereohud",
	Short:        "Performance overlay for stereo render pipelines",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if log, _ := cmd.Flags().GetBool("log"); log {
			logger.SetEcho(os.Stdout, true)
		}
		return loadConfig(cmd)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the stereo window with the overlay attached",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if sv, _ := cmd.Flags().GetBool("statsview"); sv {
			if !statsview.Available() {
				return fmt.Errorf("no statsview in this build (include statsview build tag)")
			}
			statsview.Launch(os.Stdout)
		}

		mode, err := hud.ParseEyeMode(viper.GetString("eyes"))
		if err != nil {
			return err
		}

		return playmode.Play(playmode.Config{
			EyeMode:        mode,
			CanvasWidth:    viper.GetInt("canvas.width"),
			CanvasHeight:   viper.GetInt("canvas.height"),
			TextSize:       float32(viper.GetFloat64("textsize")),
			WindowWidth:    int32(viper.GetInt("window.width")),
			WindowHeight:   int32(viper.GetInt("window.height")),
			SampleInterval: viper.GetDuration("interval"),
			FPSCap:         viper.GetInt("fps"),
		})
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Measure overlay redraw throughput without a window",
	RunE: func(cmd *cobra.Command, _ []string) error {
		duration, _ := cmd.Flags().GetString("duration")

		profileArg, _ := cmd.Flags().GetString("profile")
		var profile performance.Profile
		switch profileArg {
		case "none":
			profile = performance.ProfileNone
		case "cpu":
			profile = performance.ProfileCPU
		case "mem":
			profile = performance.ProfileMem
		case "both":
			profile = performance.ProfileBoth
		default:
			return fmt.Errorf("unrecognised profile (%s)", profileArg)
		}

		return performance.Check(os.Stdout, profile, duration)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		vers, revision, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, vers)
		if !release {
			fmt.Printf("  %s\n", revision)
		}
	},
}

// loadConfig reads the optional config file and binds the root flags over it.
// Flags given on the command line win over config file values
func loadConfig(cmd *cobra.Command) error {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "stereohud"))
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("stereohud")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	for _, f := range []string{"eyes", "textsize", "interval", "fps"} {
		if err := viper.BindPFlag(f, cmd.Root().PersistentFlags().Lookup(f)); err != nil {
			return err
		}
	}
	for cfg, f := range map[string]string{
		"canvas.width":  "canvas-width",
		"canvas.height": "canvas-height",
		"window.width":  "window-width",
		"window.height": "window-height",
	} {
		if err := viper.BindPFlag(cfg, cmd.Root().PersistentFlags().Lookup(f)); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("eyes", "both", "eye(s) the overlay is composited over (left|right|both|neither)")
	pf.Int("canvas-width", 0, "overlay canvas width in pixels (0 for default)")
	pf.Int("canvas-height", 0, "overlay canvas height in pixels (0 for default)")
	pf.Float64("textsize", 1.0, "text size as a multiple of the default")
	pf.Int("window-width", 1280, "window width in pixels")
	pf.Int("window-height", 720, "window height in pixels")
	pf.Duration("interval", time.Second, "how often host metrics are sampled")
	pf.Int("fps", 60, "frame rate the render loop is limited to")
	pf.Bool("log", false, "echo log entries to stdout")

	runCmd.Flags().Bool("statsview", false, "run a statsview HTTP server alongside the window")

	checkCmd.Flags().String("duration", "5s", "how long to run the throughput measurement")
	checkCmd.Flags().String("profile", "none", "profiling information to generate (none|cpu|mem|both)")

	rootCmd.AddCommand(runCmd, checkCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(10)
	}
}
