package breakout

import "github.com/vovakirdan/fb-breakout/internal/core"

// RenderInitial paints the level: background, every block with a random color and
// the configured noise, then the ball and paddle.
func (g *Game) RenderInitial(dst *core.Surface) {
	dst.FillAll(g.background)

	for row := range g.blocks.Rows {
		for col := range g.blocks.Cols {
			if !g.blocks.Has(row, col) {
				continue
			}
			dst.FillRect(g.grid.Cell(row, col), g.blockColor(), g.noise)
		}
	}

	dst.FillCircle(g.ball.Center, g.ball.Radius, g.ballColor)
	dst.FillRect(g.paddle.Corners(g.paddle.X), g.paddleColor, 0)
}

// blockColor picks a random, reasonably bright block color.
func (g *Game) blockColor() core.Color {
	return core.RGBA(
		uint8(64+g.rng.IntN(192)), //#nosec G115 -- < 256
		uint8(64+g.rng.IntN(192)), //#nosec G115 -- < 256
		uint8(64+g.rng.IntN(192)), //#nosec G115 -- < 256
		0,
	)
}

// Render draws one frame. Only the pixels vacated by the ball are erased; the
// paddle is erased at its previous position when it moved and then repainted.
func (g *Game) Render(dst *core.Surface) {
	dst.EraseAnnulus(g.prev.BallCenter, g.ball.Center, g.ball.Radius, g.background)
	if g.prev.PaddleX != g.paddle.X {
		dst.FillRect(g.paddle.Corners(g.prev.PaddleX), g.background, 0)
	}

	dst.FillCircle(g.ball.Center, g.ball.Radius, g.ballColor)
	dst.FillRect(g.paddle.Corners(g.paddle.X), g.paddleColor, 0)
}
