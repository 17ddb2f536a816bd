package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fb-breakout/internal/config"
	"github.com/vovakirdan/fb-breakout/internal/core"
	"github.com/vovakirdan/fb-breakout/internal/games/breakout"
	"github.com/vovakirdan/fb-breakout/internal/platform"
	"github.com/vovakirdan/fb-breakout/internal/platform/evdev"
	"github.com/vovakirdan/fb-breakout/internal/platform/tui"
	"github.com/vovakirdan/fb-breakout/internal/registry"
	"github.com/vovakirdan/fb-breakout/internal/storage"
)

var (
	flagDisplay  string
	flagDevice   string
	flagInput    string
	flagOut      string
	flagDuration time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on the chosen display.

Controls:
  A/Left     - Accelerate paddle left
  D/Right    - Accelerate paddle right
  Q/Esc      - Quit

The paddle keeps its speed; each key press or repeat changes it by the
configured acceleration. The game is lost when the ball reaches the floor.

Displays:
  fbdev      - Linux framebuffer, keys from an evdev keyboard (default)
  headless   - No screen; --out writes the final frame as PNG
  tui        - Terminal preview

Examples:
  breakout play
  breakout play --device /dev/fb1 --input /dev/input/event3
  breakout play --display tui
  breakout play --display headless --out last.png --duration 10s`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDisplay, "display", "fbdev", "Display backend (see 'breakout list', or tui)")
	playCmd.Flags().StringVar(&flagDevice, "device", "", "Framebuffer device (default /dev/fb0)")
	playCmd.Flags().StringVar(&flagInput, "input", "", "Keyboard event device for fbdev, or 'none'")
	playCmd.Flags().StringVar(&flagOut, "out", "", "PNG file for the final frame (headless)")
	playCmd.Flags().DurationVar(&flagDuration, "duration", 0, "Stop after this long (0 = until the game ends)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	seed := resolveSeed(cfg)

	// Open run history; the game works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if flagDisplay == "tui" {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.Run(tui.Session{
			Config: cfg,
			Seed:   seed,
			Player: currentUser(),
			Store:  store,
			Logger: logger,
		}, width, height)
	}

	if !registry.Exists(flagDisplay) {
		return fmt.Errorf("unknown display %q, run 'breakout list' to see available displays", flagDisplay)
	}

	path := flagDevice
	if flagDisplay == "headless" {
		path = flagOut
	}
	display, err := registry.Create(flagDisplay, registry.Options{Path: path, Logger: logger})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := display.Close(); cerr != nil {
			logger.Warn("could not close display", "error", cerr)
		}
	}()

	if sz, ok := display.(platform.Sizer); ok {
		if w, h := sz.Size(); w != cfg.Screen.Width || h != cfg.Screen.Height {
			logger.Warn("display resolution differs from config, frames are clipped",
				"display", fmt.Sprintf("%dx%d", w, h),
				"config", fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height),
			)
		}
	}

	input, closeInput, err := openInput(flagDisplay, flagInput)
	if err != nil {
		return err
	}
	defer closeInput()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if flagDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagDuration)
		defer cancel()
	}

	loop := newLoop(cfg, seed, display, input, logger)
	if err := loop.Run(ctx); err != nil {
		return err
	}

	st := loop.Stats()
	result := st.Result()
	if st.Outcome == breakout.InProgress && !st.Quit {
		result = "quit" // stopped by signal or --duration
	}
	logger.Info("session finished", "result", result, "frames", st.Frames, "destroyed", st.Destroyed)

	if store != nil {
		_, err := store.SaveRun(storage.Run{
			Player:    currentUser(),
			Display:   flagDisplay,
			Outcome:   result,
			Destroyed: st.Destroyed,
			Frames:    st.Frames,
			Elapsed:   st.Elapsed,
			Seed:      seed,
		})
		if err != nil {
			logger.Warn("could not save run", "error", err)
		}
	}
	return nil
}

func newLoop(cfg config.Config, seed uint64, display platform.Display, input platform.Input, logger *log.Logger) *platform.Loop {
	game := breakout.New(cfg, seed)
	surface := core.NewSurface(cfg.Screen.Width, cfg.Screen.Height, seed)
	return platform.NewLoop(game, surface, display, input, core.NewMonotonicClock(), cfg.Render.FrameDelay, logger)
}

// openInput opens the keyboard for the framebuffer. Other displays run without
// input. Failing to open a requested keyboard is fatal.
func openInput(display, path string) (platform.Input, func(), error) {
	nop := func() {}
	if display != "fbdev" || path == "none" {
		return platform.NullInput{}, nop, nil
	}

	kbd, err := evdev.Open(path)
	if err != nil {
		return nil, nop, fmt.Errorf("%w (use --input none to play without a keyboard)", err)
	}
	return kbd, func() {
		//nolint:errcheck // best-effort close on exit
		kbd.Close()
	}, nil
}
