package game

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar    = '='
	BallChar      = '●'
	BrickChar     = '█'
	LifeFullChar  = '●'
	LifeEmptyChar = '○'
)

// Render draws the current game state to the screen, projecting the pixel
// playfield onto the cell buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.phase {
	case PhaseMainMenu:
		g.renderMainMenu(dst)
		return
	case PhaseControls:
		g.renderControls(dst)
		return
	}

	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// cellX projects a playfield x-coordinate to a screen column.
func (g *Game) cellX(dst *core.Screen, x float64) int {
	return int(x * float64(dst.Width()) / g.cfg.Field.Width)
}

// cellY projects a playfield y-coordinate to a screen row.
func (g *Game) cellY(dst *core.Screen, y float64) int {
	return int(y * float64(dst.Height()) / g.cfg.Field.Height)
}

// renderBricks draws every live brick as a colored run of cells, brightness
// scaled by remaining hit points.
func (g *Game) renderBricks(dst *core.Screen) {
	for i := range g.bricks {
		brick := &g.bricks[i]
		if brick.Destroyed {
			continue
		}

		color := brick.Color()
		x0 := g.cellX(dst, brick.Rect.X)
		x1 := g.cellX(dst, brick.Rect.Right())
		y0 := g.cellY(dst, brick.Rect.Y)
		y1 := core.Max(g.cellY(dst, brick.Rect.Bottom()), y0+1)

		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				dst.SetColored(x, y, BrickChar, color)
			}
		}
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	y := g.cellY(dst, g.paddle.Y)
	x0 := g.cellX(dst, g.paddle.X)
	x1 := core.Max(g.cellX(dst, g.paddle.X+g.paddle.Width), x0+1)
	for x := x0; x < x1; x++ {
		dst.SetColored(x, y, PaddleChar, core.ColorPaddle)
	}
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen) {
	x := g.cellX(dst, g.ball.Pos.X())
	y := g.cellY(dst, g.ball.Pos.Y())
	dst.SetColored(x, y, BallChar, core.ColorWhite)
}

// renderHUD draws the score, level, and life indicators.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Level: %d", g.level))

	// Life indicators at the bottom-right: full circles for remaining lives,
	// empty for spent ones.
	total := g.InitialLives()
	startX := dst.Width() - total - 1
	for i := 0; i < total; i++ {
		ch := LifeEmptyChar
		color := core.ColorDimGray
		if i < g.lives {
			ch = LifeFullChar
			color = core.ColorWhite
		}
		dst.SetColored(startX+i, dst.Height()-1, ch, color)
	}
}

// renderOverlay draws phase-specific overlays over the playfield.
func (g *Game) renderOverlay(dst *core.Screen) {
	midY := dst.Height() / 2

	switch g.phase {
	case PhaseBallOnPaddle:
		dst.DrawTextCenteredColored(dst.Height()-2, "Press SPACE to launch", core.ColorGray)

	case PhasePaused:
		dst.DrawTextCenteredColored(midY-2, "PAUSED", core.ColorCyan)
		dst.DrawTextCentered(midY, "P - Resume")
		dst.DrawTextCenteredColored(midY+1, "H - Controls", core.ColorCyan)

	case PhaseLevelComplete:
		dst.DrawTextCenteredColored(midY-1, fmt.Sprintf("Level %d Complete!", g.level), core.ColorGreen)
		dst.DrawTextCentered(midY+1, fmt.Sprintf("Get ready for level %d...", g.level+1))

	case PhaseGameOver:
		dst.DrawTextCenteredColored(midY-2, "GAME OVER", core.ColorRed)
		dst.DrawTextCentered(midY, fmt.Sprintf("Final Score: %d", g.score))
		dst.DrawTextCenteredColored(midY+2, "Press SPACE to play again", core.ColorGray)

	case PhaseVictory:
		dst.DrawTextCenteredColored(midY-2, "YOU WIN!", core.ColorYellow)
		dst.DrawTextCentered(midY, fmt.Sprintf("Final Score: %d", g.score))
		dst.DrawTextCenteredColored(midY+2, "Press SPACE to play again", core.ColorGray)
	}
}

// renderMainMenu draws the title screen.
func (g *Game) renderMainMenu(dst *core.Screen) {
	midY := dst.Height() / 2
	dst.DrawTextCenteredColored(midY-4, "B R E A K O U T", core.ColorYellow)
	dst.DrawTextCentered(midY-1, "Press SPACE to start")
	dst.DrawTextCenteredColored(midY+1, "Press H for controls", core.ColorCyan)
	dst.DrawTextCenteredColored(midY+3, "ESC to quit", core.ColorDimGray)
}

// renderControls draws the key reference card.
func (g *Game) renderControls(dst *core.Screen) {
	lines := []string{
		"CONTROLS",
		"",
		"A / Left   - move paddle left",
		"D / Right  - move paddle right",
		"Space      - start / launch ball",
		"P          - pause / resume",
		"H          - toggle this screen",
		"Esc        - back (here) / quit (elsewhere)",
	}

	startY := dst.Height()/2 - len(lines)/2
	for i, line := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorCyan
		}
		dst.DrawTextCenteredColored(startY+i, line, color)
	}
}
