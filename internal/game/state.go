package game

import (
	"crypto/rand"
	"math/big"
)

// Playfield and entity geometry, in pixels
const (
	Width  = 960
	Height = 540

	PaddleWidth  = 20
	PaddleHeight = 100
	PaddleSpeed  = 7
	Paddle1X     = 20
	Paddle2X     = 920
	PaddleStartY = (Height - PaddleHeight) / 2
	PaddleMaxY   = Height - PaddleHeight

	BallSize  = 20
	BallSpeed = 5
	CenterX   = (Width - BallSize) / 2
	CenterY   = (Height - BallSize) / 2

	TickRate   = 60
	PauseTicks = TickRate // 1 second pause after a score
	WinScore   = 15
)

// SignSource yields -1 or +1
type SignSource interface {
	Sign() int
}

// CryptoSigns draws signs from crypto/rand
type CryptoSigns struct{}

func (CryptoSigns) Sign() int {
	n, err := rand.Int(rand.Reader, big.NewInt(2))
	if err != nil || n.Int64() == 0 {
		return -1
	}
	return 1
}

// State is the complete simulation state, mutated in place every tick
type State struct {
	Paddle1Y int
	Paddle2Y int
	Ball     Ball
	Score1   int
	Score2   int
	Phase    Phase
	// Winner is 1 or 2 once a player reached WinScore, 0 otherwise
	Winner     int
	PauseTicks int
	Tick       int
}

// NewState creates a state with centered paddles and a centered ball launched in a random direction
func NewState(signs SignSource) *State {
	return &State{
		Paddle1Y: PaddleStartY,
		Paddle2Y: PaddleStartY,
		Ball: Ball{
			X:  CenterX,
			Y:  CenterY,
			DX: signs.Sign(),
			DY: signs.Sign(),
		},
		Phase: PhaseNotStarted,
	}
}

// Paused reports whether the post-score cooldown is running
func (s *State) Paused() bool {
	return s.PauseTicks > 0
}

func (s *State) startPause() {
	s.PauseTicks = PauseTicks
}

// Paddle1 returns the left paddle rectangle
func (s *State) Paddle1() Rect {
	return Rect{X: Paddle1X, Y: s.Paddle1Y, W: PaddleWidth, H: PaddleHeight}
}

// Paddle2 returns the right paddle rectangle
func (s *State) Paddle2() Rect {
	return Rect{X: Paddle2X, Y: s.Paddle2Y, W: PaddleWidth, H: PaddleHeight}
}
