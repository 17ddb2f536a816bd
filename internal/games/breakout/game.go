package breakout

import (
	"math/rand/v2"

	"github.com/vovakirdan/fb-breakout/internal/config"
	"github.com/vovakirdan/fb-breakout/internal/core"
)

// Outcome is the status of a play session. Lost and Won are terminal.
type Outcome int

const (
	InProgress Outcome = iota
	Lost
	Won
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Previous holds the positions from before the last Update, used only to compute
// what the next render has to erase.
type Previous struct {
	BallCenter core.Point
	PaddleX    float64
}

// Game owns all mutable simulation state. It is created once per session, mutated
// in place by Update and Collide, and read by the render pass.
type Game struct {
	ball    Ball
	paddle  Paddle
	blocks  *BlockGrid
	outcome Outcome
	prev    Previous

	grid    core.GridMapper
	screenW int
	screenH int

	background  core.Color
	ballColor   core.Color
	paddleColor core.Color
	noise       int
	accel       float64
	rng         *rand.Rand // block colors

	ticks     int
	destroyed int

	// WinCondition decides when the session is won. It is nil by default, so the
	// outcome check never produces Won on its own.
	WinCondition func(blocks *BlockGrid) bool
}

// New creates a game from the configuration: ball centered horizontally at a fixed
// offset from the bottom, paddle centered at the bottom margin, and the configured
// band of rows filled with blocks. seed drives the per-block colors.
func New(cfg config.Config, seed uint64) *Game {
	w, h := cfg.Screen.Width, cfg.Screen.Height

	blocks := NewBlockGrid(cfg.Grid.Rows, cfg.Grid.Cols)
	blocks.FillRows(cfg.Grid.BlockRowStart, cfg.Grid.BlockRowEnd)

	g := &Game{
		ball: Ball{
			Center:   core.Pt(float64(w)*0.5, float64(h)-cfg.Ball.StartOffsetY),
			Radius:   cfg.Ball.Radius,
			Velocity: core.Pt(0, cfg.Ball.InitialSpeedY),
		},
		paddle: Paddle{
			LevelY: h - cfg.Paddle.Margin,
			Width:  cfg.Paddle.Width,
			Length: cfg.Paddle.Length,
			X:      float64(w)*0.5 - float64(cfg.Paddle.Length)/2,
		},
		blocks:      blocks,
		outcome:     InProgress,
		grid:        core.NewGridMapper(w, h, cfg.Grid.Rows, cfg.Grid.Cols),
		screenW:     w,
		screenH:     h,
		background:  cfg.Colors.Background.Core(),
		ballColor:   cfg.Colors.Ball.Core(),
		paddleColor: cfg.Colors.Paddle.Core(),
		noise:       cfg.Render.NoiseAmplitude,
		accel:       cfg.Paddle.Accel,
		rng:         rand.New(rand.NewPCG(seed, seed^0x517cc1b727220a95)), //#nosec G404 -- cosmetic colors
	}
	g.prev = Previous{BallCenter: g.ball.Center, PaddleX: g.paddle.X}
	return g
}

// Ball returns a copy of the ball state.
func (g *Game) Ball() Ball {
	return g.ball
}

// Paddle returns a copy of the paddle state.
func (g *Game) Paddle() Paddle {
	return g.paddle
}

// Blocks returns the block grid.
func (g *Game) Blocks() *BlockGrid {
	return g.blocks
}

// Outcome returns the current outcome.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Previous returns the positions recorded by the last Update.
func (g *Game) Previous() Previous {
	return g.prev
}

// Grid returns the mapper between block cells and screen pixels.
func (g *Game) Grid() core.GridMapper {
	return g.grid
}

// Destroyed returns how many blocks have been destroyed so far.
func (g *Game) Destroyed() int {
	return g.destroyed
}

// ApplyAction applies one input sample. Left and right change the paddle speed by
// the configured acceleration; anything else is ignored. There is no friction, so
// the speed only changes on explicit key detections.
func (g *Game) ApplyAction(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.paddle.SpeedX -= g.accel
	case core.ActionRight:
		g.paddle.SpeedX += g.accel
	}
}

// HandleKey maps a raw key code and applies it.
func (g *Game) HandleKey(code core.KeyCode) {
	g.ApplyAction(core.MapKey(code))
}

// CheckOutcome updates and returns the outcome. The ball touching the floor loses
// the game. Won is only reported when WinCondition is set and returns true.
func (g *Game) CheckOutcome() Outcome {
	if g.outcome != InProgress {
		return g.outcome
	}
	if g.ball.Center.Y+g.ball.Radius+2 > float64(g.screenH) {
		g.outcome = Lost
		return g.outcome
	}
	if g.WinCondition != nil && g.WinCondition(g.blocks) {
		g.outcome = Won
	}
	return g.outcome
}
