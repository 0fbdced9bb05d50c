package game

// InputMode selects how held keys map to paddle moves
type InputMode int

const (
	// InputIndependent evaluates each player separately
	InputIndependent InputMode = iota
	// InputLegacy honors only the first held key of P1 down, P1 up, P2 down, P2 up
	InputLegacy
)

// Direction is a vertical paddle move
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = -1
	DirDown Direction = 1
)

// KeyDirection resolves a player's held keys; down wins over up
func KeyDirection(held func(Key) bool, down, up Key) Direction {
	if held(down) {
		return DirDown
	}
	if held(up) {
		return DirUp
	}
	return DirNone
}

// MovePaddle applies one tick of movement, clamped to [0, PaddleMaxY].
// A move that would cross an edge stops on the edge instead of being skipped,
// so the paddle can reach y=PaddleMaxY even though it is not a multiple of PaddleSpeed.
func MovePaddle(y int, dir Direction) int {
	y += int(dir) * PaddleSpeed
	if y < 0 {
		y = 0
	}
	if y > PaddleMaxY {
		y = PaddleMaxY
	}
	return y
}

// MovePaddles maps the held-key state onto both paddles
func MovePaddles(s *State, held func(Key) bool, mode InputMode) {
	d1 := KeyDirection(held, KeyP1Down, KeyP1Up)
	d2 := KeyDirection(held, KeyP2Down, KeyP2Up)

	if mode == InputLegacy && d1 != DirNone {
		d2 = DirNone
	}

	s.Paddle1Y = MovePaddle(s.Paddle1Y, d1)
	s.Paddle2Y = MovePaddle(s.Paddle2Y, d2)
}
