// Package breakout implements the paddle-and-ball brick breaker variant.
package breakout

import (
	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
)

// ParseLayout builds the brick wall from an ASCII map.
// Characters:
//
//	'#' = brick worth the configured points
//	'1'-'9' = brick worth digit * points
//	'.' or ' ' = empty
//
// Bricks are numbered in reading order, starting at 0. Column c of row r sits
// at (c*width, top + r*height).
func ParseLayout(cfg config.BreakoutBricks, field config.FieldConfig) ([]engine.Brick, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, engine.Invalid("bricks", "size must be positive, got %vx%v", cfg.Width, cfg.Height)
	}
	if cfg.Points < 0 {
		return nil, engine.Invalid("bricks.points", "must not be negative, got %d", cfg.Points)
	}

	var bricks []engine.Brick
	for row, line := range cfg.Layout {
		for col, ch := range []byte(line) {
			var points int
			switch {
			case ch == '.' || ch == ' ':
				continue
			case ch == '#':
				points = cfg.Points
			case ch >= '1' && ch <= '9':
				points = int(ch-'0') * cfg.Points
			default:
				return nil, engine.Invalid("bricks.layout", "row %d: unknown glyph %q", row, ch)
			}

			pos := core.V(float64(col)*cfg.Width, cfg.Top+float64(row)*cfg.Height)
			if pos.X+cfg.Width > field.Width || pos.Y+cfg.Height > field.Height {
				return nil, engine.Invalid("bricks.layout", "row %d column %d lies outside the field", row, col)
			}

			bricks = append(bricks, engine.Brick{
				ID:     len(bricks),
				Body:   engine.Body{Pos: pos, W: cfg.Width, H: cfg.Height},
				Points: points,
			})
		}
	}

	if len(bricks) == 0 {
		return nil, engine.Invalid("bricks.layout", "has no bricks")
	}
	return bricks, nil
}
