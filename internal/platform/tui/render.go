package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var brickColors = []core.Color{core.ColorRed, core.ColorYellow, core.ColorGreen, core.ColorCyan, core.ColorBlue, core.ColorMagenta}

// Frame is the driver-side state drawn on top of a snapshot.
type Frame struct {
	Title    string
	TickRate int
	Cursor   int // highlighted card, -1 for none
	Paused   bool
	Footer   string
}

// board maps field units to screen cells inside the border box.
type board struct {
	x0, y0 int
	sx, sy float64
	w, h   int
}

func newBoard(scr *core.Screen, f engine.Field) board {
	// One row for the HUD, one for the footer, two for the border.
	w := scr.Width() - 2
	h := scr.Height() - 4
	b := board{x0: 1, y0: 2, w: max(w, 0), h: max(h, 0)}
	if f.W > 0 {
		b.sx = float64(b.w) / f.W
	}
	if f.H > 0 {
		b.sy = float64(b.h) / f.H
	}
	return b
}

// cells returns the inclusive cell span covered by r, at least one cell wide.
func (b board) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X * b.sx))
	y0 = int(math.Floor(r.Y * b.sy))
	x1 = max(int(math.Ceil(r.Right()*b.sx))-1, x0)
	y1 = max(int(math.Ceil(r.Bottom()*b.sy))-1, y0)
	return core.Clamp(x0, 0, b.w-1), core.Clamp(y0, 0, b.h-1),
		core.Clamp(x1, 0, b.w-1), core.Clamp(y1, 0, b.h-1)
}

func (b board) fill(scr *core.Screen, r core.Rect, ch rune, c core.Color) {
	x0, y0, x1, y1 := b.cells(r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			scr.SetColor(b.x0+x, b.y0+y, ch, c)
		}
	}
}

func (b board) point(scr *core.Screen, p core.Vec2, ch rune, c core.Color) {
	x := core.Clamp(int(p.X*b.sx), 0, b.w-1)
	y := core.Clamp(int(p.Y*b.sy), 0, b.h-1)
	scr.SetColor(b.x0+x, b.y0+y, ch, c)
}

// Draw projects a snapshot onto the screen buffer.
func Draw(scr *core.Screen, snap engine.Snapshot, f Frame) {
	scr.Clear()
	if scr.Width() < 4 || scr.Height() < 5 {
		scr.DrawText(0, 0, "too small")
		return
	}

	scr.DrawText(0, 0, hud(snap, f))
	scr.DrawBox(0, 1, scr.Width(), scr.Height()-2)
	if f.Footer != "" {
		scr.DrawText(0, scr.Height()-1, f.Footer)
	}

	b := newBoard(scr, snap.Field)
	if b.w == 0 || b.h == 0 {
		return
	}

	for _, e := range snap.Entities {
		switch e.Kind {
		case engine.EntityBrick:
			row := 0
			if e.Bounds.H > 0 {
				row = int(e.Bounds.Y / e.Bounds.H)
			}
			b.fill(scr, e.Bounds, '█', brickColors[row%len(brickColors)])
		case engine.EntityPaddle:
			b.fill(scr, e.Bounds, '▀', core.ColorCyan)
		case engine.EntityBall:
			b.point(scr, e.Bounds.Center(), 'o', core.ColorYellow)
		case engine.EntityFood:
			b.point(scr, e.Bounds.Center(), '*', core.ColorRed)
		case engine.EntitySnakeBody:
			b.fill(scr, e.Bounds, 'o', core.ColorGreen)
		case engine.EntitySnakeHead:
			b.fill(scr, e.Bounds, '@', core.ColorGreen)
		case engine.EntityCard:
			drawCard(scr, b, e, e.ID == f.Cursor)
		}
	}

	switch {
	case snap.State == engine.StateMenu:
		overlay(scr, strings.ToUpper(f.Title), "press space to start")
	case f.Paused:
		overlay(scr, "PAUSED", "p to resume")
	case snap.State == engine.StateGameOver && snap.Won:
		overlay(scr, "YOU WIN", fmt.Sprintf("score %d  r: restart  q: quit", snap.Score))
	case snap.State == engine.StateGameOver:
		overlay(scr, "GAME OVER", fmt.Sprintf("score %d  r: restart  q: quit", snap.Score))
	}
}

func drawCard(scr *core.Screen, b board, e engine.Entity, selected bool) {
	x0, y0, x1, y1 := b.cells(e.Bounds)
	color := core.ColorBlue
	face := '▒'
	switch {
	case e.Matched:
		color, face = core.ColorGray, ' '
	case e.Revealed:
		color, face = core.ColorYellow, ' '
	}
	b.fill(scr, e.Bounds, face, color)

	label := "?"
	if e.Label != "" {
		label = e.Label
	}
	cy := b.y0 + (y0+y1)/2
	cx := b.x0 + (x0+x1)/2 - (len([]rune(label))-1)/2
	for i, r := range label {
		scr.SetColor(cx+i, cy, r, color)
	}

	if selected {
		scr.SetColor(b.x0+x0-1, cy, '[', core.ColorMagenta)
		scr.SetColor(b.x0+x1+1, cy, ']', core.ColorMagenta)
	}
}

func hud(snap engine.Snapshot, f Frame) string {
	parts := []string{strings.ToUpper(f.Title), fmt.Sprintf("score %d", snap.Score)}
	if snap.Lives > 0 {
		parts = append(parts, fmt.Sprintf("lives %d", snap.Lives))
	}
	if snap.TimeRemaining != engine.Untimed && f.TickRate > 0 {
		secs := (snap.TimeRemaining + f.TickRate - 1) / f.TickRate
		parts = append(parts, fmt.Sprintf("time %ds", secs))
	}
	if snap.Moves > 0 {
		parts = append(parts, fmt.Sprintf("moves %d", snap.Moves))
	}
	return strings.Join(parts, "  ")
}

func overlay(scr *core.Screen, title, hint string) {
	y := scr.Height() / 2
	scr.DrawTextCentered(y-1, " "+title+" ")
	scr.DrawTextCentered(y+1, " "+hint+" ")
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
