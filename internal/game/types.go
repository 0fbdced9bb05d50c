package game

import "image/color"

// Phase is the coarse game state
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// Key identifies a logical game key, independent of the frontend
type Key int

const (
	KeyNone Key = iota
	KeyP1Up
	KeyP1Down
	KeyP2Up
	KeyP2Down
	KeyStart
	KeyQuit
)

// Cue identifies a short sound effect
type Cue int

const (
	CuePaddle Cue = iota
	CueWall
	CueScore
)

func (c Cue) String() string {
	switch c {
	case CuePaddle:
		return "paddle"
	case CueWall:
		return "wall"
	case CueScore:
		return "score"
	}
	return "unknown"
}

// Rect is an axis-aligned rectangle in playfield coordinates
type Rect struct {
	X, Y int
	W, H int
}

// Renderer draws playfield rectangles
type Renderer interface {
	Clear()
	FillRect(r Rect, c color.Color)
}

// Audio plays cues without waiting for them to finish
type Audio interface {
	Play(c Cue)
}

// Input exposes discrete presses (drained once per tick) and held-key state
type Input interface {
	Pressed() []Key
	Held(k Key) bool
}

// Display shows a status caption
type Display interface {
	SetCaption(caption string)
}

// Clock reports the measured frame rate, for display only
type Clock interface {
	FPS() float64
}
