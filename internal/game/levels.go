package game

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// parseHexColor converts a "#rrggbb" string to a core.Color. Malformed
// strings fall back to white so a bad config row stays visible.
func parseHexColor(s string) core.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return core.ColorWhite
	}
	return core.RGB(r, g, b)
}

// buildBricks constructs the brick grid for the given 1-based level. The grid
// is centered horizontally in the field. Every level beyond the first adds
// one hit point to each row's base, and a brick's point value is its row base
// points times its initial hit points, so tougher bricks are worth
// proportionally more. The whole batch is discarded and rebuilt on every
// level transition.
func buildBricks(cfg config.Config, level int) []Brick {
	bc := cfg.Bricks
	extraHP := core.Max(0, level-1)

	totalGridWidth := float64(bc.Cols)*bc.Width + float64(bc.Cols-1)*bc.Padding
	gridStartX := (cfg.Field.Width - totalGridWidth) / 2

	bricks := make([]Brick, 0, len(bc.Rows)*bc.Cols)
	for row, spec := range bc.Rows {
		hp := spec.HitPoints + extraHP
		color := parseHexColor(spec.Color)

		for col := 0; col < bc.Cols; col++ {
			x := gridStartX + float64(col)*(bc.Width+bc.Padding)
			y := bc.TopOffset + float64(row)*(bc.Height+bc.Padding)

			bricks = append(bricks, Brick{
				Rect:      core.NewRectF(x, y, bc.Width, bc.Height),
				BaseColor: color,
				HP:        hp,
				MaxHP:     hp,
				Points:    spec.Points * hp,
			})
		}
	}
	return bricks
}

// countAlive returns the number of non-destroyed bricks.
func countAlive(bricks []Brick) int {
	count := 0
	for i := range bricks {
		if !bricks[i].Destroyed {
			count++
		}
	}
	return count
}
