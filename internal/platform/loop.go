package platform

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fb-breakout/internal/core"
	"github.com/vovakirdan/fb-breakout/internal/games/breakout"
)

// Stats summarizes a loop run.
type Stats struct {
	Frames    int
	Elapsed   float64 // seconds since Init
	Destroyed int
	Outcome   breakout.Outcome
	Quit      bool // stopped by a quit key rather than an outcome
}

// Loop drives one play session: poll input, update, resolve collisions, check the
// outcome, render and present, then sleep for the fixed frame delay.
// It is strictly sequential and owns the surface while running.
type Loop struct {
	game       *breakout.Game
	surface    *core.Surface
	display    Display
	input      Input
	clock      core.Clock
	frameDelay time.Duration
	logger     *log.Logger

	timer       breakout.FrameTimer
	start       float64
	frames      int
	initialized bool
	quit        bool
	vsyncWarned bool
}

// NewLoop creates a loop. A nil input polls nothing, a nil clock uses the
// monotonic clock, and a nil logger discards output.
func NewLoop(game *breakout.Game, surface *core.Surface, display Display, input Input,
	clock core.Clock, frameDelay time.Duration, logger *log.Logger,
) *Loop {
	if input == nil {
		input = NullInput{}
	}
	if clock == nil {
		clock = core.NewMonotonicClock()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		game:       game,
		surface:    surface,
		display:    display,
		input:      input,
		clock:      clock,
		frameDelay: frameDelay,
		logger:     logger,
	}
}

// Game returns the session's game.
func (l *Loop) Game() *breakout.Game {
	return l.game
}

// Surface returns the surface the loop renders into.
func (l *Loop) Surface() *core.Surface {
	return l.surface
}

// Init paints the level and presents it. It must be called once before Step.
func (l *Loop) Init() error {
	l.game.RenderInitial(l.surface)
	if err := l.present(); err != nil {
		return err
	}
	l.start = l.clock.Now()
	l.initialized = true
	l.logger.Debug("level loaded",
		"blocks", l.game.Blocks().CountAlive(),
		"width", l.surface.Width(),
		"height", l.surface.Height(),
	)
	return nil
}

// Done reports whether the loop has stopped, either on a terminal outcome or a
// quit key.
func (l *Loop) Done() bool {
	return l.quit || l.game.Outcome() != breakout.InProgress
}

// Step runs one iteration. The frame that produces a terminal outcome is still
// rendered and presented; afterwards Step does nothing.
func (l *Loop) Step() error {
	if !l.initialized {
		return fmt.Errorf("platform: step before init")
	}
	if l.Done() {
		return nil
	}

	action := core.MapKey(l.input.LatestKey())
	if action == core.ActionQuit {
		l.quit = true
		l.logger.Info("quit requested", "frames", l.frames)
		return nil
	}
	l.game.ApplyAction(action)

	l.game.Update(l.timer.Delta(l.clock.Now()))
	if res := l.game.Collide(l.surface); res.Block {
		l.logger.Debug("block destroyed", "row", res.Row, "col", res.Col)
	}
	outcome := l.game.CheckOutcome()

	l.game.Render(l.surface)
	if err := l.present(); err != nil {
		return err
	}
	l.frames++

	if outcome != breakout.InProgress {
		st := l.Stats()
		l.logger.Info("game over",
			"outcome", outcome,
			"frames", st.Frames,
			"elapsed", fmt.Sprintf("%.2fs", st.Elapsed),
			"destroyed", st.Destroyed,
		)
	}
	return nil
}

// Run initializes the loop if needed and steps it until the outcome is terminal,
// a quit key is read or ctx is cancelled. Cancellation is not an error.
func (l *Loop) Run(ctx context.Context) error {
	if !l.initialized {
		if err := l.Init(); err != nil {
			return err
		}
	}

	for !l.Done() {
		if err := l.Step(); err != nil {
			return err
		}
		if l.Done() {
			break
		}
		if l.frameDelay > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(l.frameDelay):
			}
		} else if ctx.Err() != nil {
			return nil
		}
	}
	return nil
}

// Stats returns the counters of the run so far.
func (l *Loop) Stats() Stats {
	var elapsed float64
	if l.initialized {
		elapsed = l.clock.Now() - l.start
	}
	return Stats{
		Frames:    l.frames,
		Elapsed:   elapsed,
		Destroyed: l.game.Destroyed(),
		Outcome:   l.game.Outcome(),
		Quit:      l.quit,
	}
}

// present waits for the vertical blank, when the display supports it, and then
// copies the frame so the copy lands outside the scan-out.
func (l *Loop) present() error {
	if vs, ok := l.display.(VSyncer); ok {
		if err := vs.WaitVSync(); err != nil && !l.vsyncWarned {
			l.vsyncWarned = true
			l.logger.Warn("vsync unavailable, continuing without it", "error", err)
		}
	}
	if err := l.display.Present(l.surface); err != nil {
		return fmt.Errorf("platform: present: %w", err)
	}
	return nil
}

// Result names how the run ended: "quit" when stopped by a quit key, otherwise
// the outcome.
func (s Stats) Result() string {
	if s.Quit {
		return "quit"
	}
	return s.Outcome.String()
}
