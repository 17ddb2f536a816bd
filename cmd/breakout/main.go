// breakout is a breakout game rendered straight onto a Linux framebuffer, with a
// terminal preview and an SSH server for play without one.
//
// Usage:
//
//	breakout play                  - Play on the framebuffer (/dev/fb0)
//	breakout play --display tui    - Play in the terminal
//	breakout list                  - List display backends
//	breakout history               - Show finished runs
//	breakout serve                 - Start SSH server for remote play
//	breakout config                - Print the effective configuration
//
// Global flags:
//
//	--config <path>        - Game config YAML
//	--seed <value>         - RNG seed for block colors and noise
//	--frame-delay <dur>    - Fixed delay between frames
//	--db <path>            - Run history database (default: ~/.breakout/runs.db)
//	--verbose              - Debug logging
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fb-breakout/internal/config"

	// Import display backends to register them
	_ "github.com/vovakirdan/fb-breakout/internal/platform/fbdev"
	_ "github.com/vovakirdan/fb-breakout/internal/platform/headless"
)

var (
	// Global flags
	flagConfig     string
	flagSeed       uint64
	flagFrameDelay time.Duration
	flagDBPath     string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout on a raw pixel surface",
	Long: `Breakout renders a ball, a paddle and a wall of blocks straight into a
pixel buffer: the Linux framebuffer, an in-memory image, or a terminal preview.

Available commands:
  play     - Play a game
  list     - Show display backends
  history  - View finished runs
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  breakout play
  breakout play --display tui
  breakout play --display headless --out last.png --duration 5s
  breakout serve --ssh :2222
  breakout history`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, or random based on time)")
	rootCmd.PersistentFlags().DurationVar(&flagFrameDelay, "frame-delay", 0, "Delay between frames (0 = config value)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig resolves the configuration and applies command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFrameDelay > 0 {
		cfg.Render.FrameDelay = flagFrameDelay
	}
	return cfg, nil
}

// resolveSeed picks the --seed flag, then the config seed, then the clock.
func resolveSeed(cfg config.Config) uint64 {
	switch {
	case flagSeed != 0:
		return flagSeed
	case cfg.Render.Seed != 0:
		return cfg.Render.Seed
	default:
		return uint64(time.Now().UnixNano()) //#nosec G115 -- any value is a valid seed
	}
}

// currentUser names the local player in the run history.
func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
