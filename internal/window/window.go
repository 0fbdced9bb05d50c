package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/diegok/pong/internal/game"
)

const HelpText = "Player 1: W/S  |  Player 2: Arrows  |  SPACE: start  |  ESC: quit"

// keyBindings maps game keys to keyboard keys
var keyBindings = map[game.Key]ebiten.Key{
	game.KeyP1Up:   ebiten.KeyW,
	game.KeyP1Down: ebiten.KeyS,
	game.KeyP2Up:   ebiten.KeyArrowUp,
	game.KeyP2Down: ebiten.KeyArrowDown,
	game.KeyStart:  ebiten.KeySpace,
	game.KeyQuit:   ebiten.KeyEscape,
}

type drawCmd struct {
	rect  game.Rect
	color color.Color
}

// Frontend implements the game collaborators on top of an ebiten window
type Frontend struct {
	cmds     []drawCmd
	caption  string
	onUpdate func() bool
	face     text.Face
}

// New creates a frontend. onUpdate runs once per ebiten tick and returns
// false when the window should close.
func New(onUpdate func() bool) *Frontend {
	return &Frontend{
		onUpdate: onUpdate,
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
}

// Run opens the window and blocks until the game is over or the window is closed
func (f *Frontend) Run() error {
	ebiten.SetWindowSize(game.Width, game.Height)
	ebiten.SetWindowTitle(game.Title)
	ebiten.SetTPS(game.TickRate)
	return ebiten.RunGame(f)
}

// Update implements ebiten.Game
func (f *Frontend) Update() error {
	if !f.onUpdate() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game
func (f *Frontend) Draw(screen *ebiten.Image) {
	screen.Fill(game.BackgroundColor)

	for _, c := range f.cmds {
		r := c.rect
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.color, false)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, game.Height-20)
	op.ColorScale.ScaleWithColor(color.Gray{Y: 0x80})
	text.Draw(screen, HelpText, f.face, op)
}

// Layout implements ebiten.Game
func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.Width, game.Height
}

// Clear drops the rectangles of the previous frame
func (f *Frontend) Clear() {
	f.cmds = f.cmds[:0]
}

// FillRect queues a rectangle for the next Draw
func (f *Frontend) FillRect(r game.Rect, c color.Color) {
	f.cmds = append(f.cmds, drawCmd{rect: r, color: c})
}

// SetCaption updates the window title
func (f *Frontend) SetCaption(caption string) {
	if caption == f.caption {
		return
	}
	f.caption = caption
	ebiten.SetWindowTitle(caption)
}

// Pressed returns the start/quit keys pressed this tick
func (f *Frontend) Pressed() []game.Key {
	var keys []game.Key
	for _, k := range []game.Key{game.KeyQuit, game.KeyStart} {
		if inpututil.IsKeyJustPressed(keyBindings[k]) {
			keys = append(keys, k)
		}
	}
	return keys
}

// Held reports whether the key bound to k is down
func (f *Frontend) Held(k game.Key) bool {
	key, ok := keyBindings[k]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(key)
}

// FPS returns ebiten's measured frame rate
func (f *Frontend) FPS() float64 {
	return ebiten.ActualFPS()
}
