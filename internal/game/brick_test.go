package game

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestBrickDamageLifecycle(t *testing.T) {
	b := Brick{
		Rect:      core.NewRectF(0, 0, 68, 22),
		BaseColor: core.RGB(220, 45, 45),
		HP:        2,
		MaxHP:     2,
		Points:    120,
	}

	b.Hit()
	if b.Destroyed {
		t.Error("brick with 2 HP should survive one hit")
	}
	if b.HP != 1 {
		t.Errorf("HP after first hit = %d, want 1", b.HP)
	}

	b.Hit()
	if !b.Destroyed {
		t.Error("brick should be destroyed after second hit")
	}
	if b.HP != 0 {
		t.Errorf("HP after destruction = %d, want 0", b.HP)
	}

	// A destroyed brick ignores further hits.
	b.Hit()
	if b.HP != 0 || !b.Destroyed {
		t.Error("hit on destroyed brick should be a no-op")
	}
}

func TestBrickPointsFixedAtConstruction(t *testing.T) {
	cfg := config.Default()
	bricks := buildBricks(cfg, 2) // Level 2: every row gains one hit point

	top := bricks[0]
	if top.MaxHP != 2 {
		t.Fatalf("top row MaxHP at level 2 = %d, want 2", top.MaxHP)
	}
	// Point value is base points × initial hit points, fixed at construction.
	wantPoints := cfg.Bricks.Rows[0].Points * 2
	if top.Points != wantPoints {
		t.Errorf("top row points = %d, want %d", top.Points, wantPoints)
	}

	top.Hit()
	if top.Points != wantPoints {
		t.Errorf("points changed after damage: %d, want %d", top.Points, wantPoints)
	}
}

func TestBrickColorBrightness(t *testing.T) {
	b := Brick{
		BaseColor: core.RGB(200, 100, 50),
		HP:        2,
		MaxHP:     2,
	}

	full := b.Color()
	b.Hit()
	damaged := b.Color()

	// Full health renders at (essentially) full brightness.
	if absInt(int(full.R)-int(b.BaseColor.R)) > 1 ||
		absInt(int(full.G)-int(b.BaseColor.G)) > 1 ||
		absInt(int(full.B)-int(b.BaseColor.B)) > 1 {
		t.Errorf("full-health color = %v, want base %v", full, b.BaseColor)
	}

	// Damage dims the color but never to black.
	if int(damaged.R) >= int(full.R) {
		t.Errorf("damaged brick should be dimmer: damaged %v, full %v", damaged, full)
	}
	if damaged.R == 0 && damaged.G == 0 && damaged.B == 0 {
		t.Error("damaged brick should never render black")
	}
}

func TestBuildBricksGrid(t *testing.T) {
	cfg := config.Default()
	bricks := buildBricks(cfg, 1)

	wantCount := len(cfg.Bricks.Rows) * cfg.Bricks.Cols
	if len(bricks) != wantCount {
		t.Fatalf("brick count = %d, want %d", len(bricks), wantCount)
	}

	// The grid is centered: symmetric margins on both sides.
	first := bricks[0].Rect
	lastInRow := bricks[cfg.Bricks.Cols-1].Rect
	leftMargin := first.X
	rightMargin := cfg.Field.Width - lastInRow.Right()
	if diff := leftMargin - rightMargin; diff > floatTolerance || diff < -floatTolerance {
		t.Errorf("grid not centered: left margin %v, right margin %v", leftMargin, rightMargin)
	}

	// At level 1 every brick starts at its row base hit points.
	for i := range bricks {
		if bricks[i].HP != bricks[i].MaxHP {
			t.Fatalf("brick %d HP %d != MaxHP %d", i, bricks[i].HP, bricks[i].MaxHP)
		}
		if bricks[i].Destroyed {
			t.Fatalf("brick %d should start alive", i)
		}
	}

	if countAlive(bricks) != wantCount {
		t.Errorf("countAlive = %d, want %d", countAlive(bricks), wantCount)
	}
}
