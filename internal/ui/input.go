package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/game"
)

// HoldTicks is how long a movement key counts as held after its last key event
// (~133ms at 60Hz). Terminals report presses and auto-repeats but no releases.
const HoldTicks = 8

// KeyFromEvent converts a key event to a game key
func KeyFromEvent(key tcell.Key, r rune) game.Key {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.KeyQuit
	case tcell.KeyEnter:
		return game.KeyStart
	case tcell.KeyUp:
		return game.KeyP2Up
	case tcell.KeyDown:
		return game.KeyP2Down
	case tcell.KeyRune:
		switch r {
		case ' ':
			return game.KeyStart
		case 'q', 'Q':
			return game.KeyQuit
		case 'w', 'W':
			return game.KeyP1Up
		case 's', 'S':
			return game.KeyP1Down
		}
	}
	return game.KeyNone
}

func isMovementKey(k game.Key) bool {
	switch k {
	case game.KeyP1Up, game.KeyP1Down, game.KeyP2Up, game.KeyP2Down:
		return true
	}
	return false
}

// KeyTracker turns terminal key events into the held/pressed view the game needs
type KeyTracker struct {
	pressed []game.Key
	held    map[game.Key]int
}

func NewKeyTracker() *KeyTracker {
	return &KeyTracker{held: make(map[game.Key]int)}
}

// HandleEvent records a terminal event. Returns the game key, if any.
func (t *KeyTracker) HandleEvent(ev tcell.Event) game.Key {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return game.KeyNone
	}

	k := KeyFromEvent(kev.Key(), kev.Rune())
	switch {
	case k == game.KeyNone:
	case isMovementKey(k):
		t.held[k] = HoldTicks
		t.releaseOpposite(k)
	default:
		t.pressed = append(t.pressed, k)
	}
	return k
}

// releaseOpposite drops the other direction of the same player; a new
// direction means the old key was let go
func (t *KeyTracker) releaseOpposite(k game.Key) {
	switch k {
	case game.KeyP1Up:
		delete(t.held, game.KeyP1Down)
	case game.KeyP1Down:
		delete(t.held, game.KeyP1Up)
	case game.KeyP2Up:
		delete(t.held, game.KeyP2Down)
	case game.KeyP2Down:
		delete(t.held, game.KeyP2Up)
	}
}

// Pressed returns and clears the discrete presses since the last call
func (t *KeyTracker) Pressed() []game.Key {
	p := t.pressed
	t.pressed = nil
	return p
}

// Held reports whether k had a key event within the hold window
func (t *KeyTracker) Held(k game.Key) bool {
	return t.held[k] > 0
}

// Advance ages the held keys by one tick
func (t *KeyTracker) Advance() {
	for k, n := range t.held {
		if n <= 1 {
			delete(t.held, k)
			continue
		}
		t.held[k] = n - 1
	}
}
