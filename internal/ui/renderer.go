package ui

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/game"
)

const (
	BlockChar = '\u2588' // █
	HelpText  = "W/S: player 1 | Up/Down: player 2 | SPACE: start | ESC: quit"
)

var (
	courtStyle  = tcell.StyleDefault.Background(tcell.ColorBlack)
	lineStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorDarkGray)
	statusStyle = tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
)

// Renderer draws the playfield scaled onto the terminal.
// Row 0 holds the caption and the last row the key help; the court fills the rows between.
type Renderer struct {
	screen  *Screen
	caption string
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// court returns the terminal area used for the playfield
func (r *Renderer) court() (x, y, w, h int) {
	screenW, screenH := r.screen.Size()
	h = screenH - 2
	if h < 1 {
		h = 1
	}
	return 0, 1, screenW, h
}

// Clear paints an empty court with a dashed center line
func (r *Renderer) Clear() {
	x, y, w, h := r.court()
	r.screen.FillRect(x, y, w, h, courtStyle, ' ')

	centerX := x + w/2
	for dy := 0; dy < h; dy += 2 {
		r.screen.SetCell(centerX, y+dy, lineStyle, '|')
	}
}

// FillRect draws a playfield rectangle; every rectangle covers at least one cell
func (r *Renderer) FillRect(rect game.Rect, c color.Color) {
	cx, cy, cw, ch := r.CellRect(rect)
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.FromImageColor(c))
	r.screen.FillRect(cx, cy, cw, ch, style, BlockChar)
}

// CellRect converts a playfield rectangle to terminal cells
func (r *Renderer) CellRect(rect game.Rect) (x, y, w, h int) {
	ox, oy, cw, ch := r.court()
	x0, x1 := scaleSpan(rect.X, rect.W, game.Width, cw)
	y0, y1 := scaleSpan(rect.Y, rect.H, game.Height, ch)
	return ox + x0, oy + y0, x1 - x0, y1 - y0
}

// scaleSpan maps [pos, pos+size) from a field of length field onto cells cells,
// clamped to the available cells
func scaleSpan(pos, size, field, cells int) (int, int) {
	start := pos * cells / field
	end := (pos + size) * cells / field
	if end <= start {
		end = start + 1
	}
	if start < 0 {
		start = 0
	}
	if end > cells {
		end = cells
	}
	if start >= end {
		start = end - 1
	}
	return start, end
}

// SetCaption shows the caption in the top status bar
func (r *Renderer) SetCaption(caption string) {
	r.caption = caption
}

// Present draws the status bars and flushes the frame to the terminal
func (r *Renderer) Present() {
	screenW, screenH := r.screen.Size()

	r.screen.FillRect(0, 0, screenW, 1, statusStyle, ' ')
	r.screen.DrawText((screenW-len(r.caption))/2, 0, r.caption, statusStyle.Bold(true))

	helpStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.screen.FillRect(0, screenH-1, screenW, 1, tcell.StyleDefault, ' ')
	r.screen.DrawText(1, screenH-1, HelpText, helpStyle)

	r.screen.Show()
}
