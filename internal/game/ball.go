package game

// Ball is the ball's top-left position and its per-axis direction signs.
// DX and DY are always exactly -1 or +1.
type Ball struct {
	X, Y   int
	DX, DY int
}

// Rect returns the ball rectangle
func (b *Ball) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: BallSize, H: BallSize}
}

// Move advances the ball by one tick
func (b *Ball) Move() {
	b.Y += b.DY * BallSpeed
	b.X += b.DX * BallSpeed
}

// Center puts the ball back in the middle of the playfield, keeping its direction
func (b *Ball) Center() {
	b.X = CenterX
	b.Y = CenterY
}

// BounceWall forces the vertical direction away from a touched wall.
// Returns true when a wall was touched.
func (b *Ball) BounceWall() bool {
	if b.Y <= 0 {
		b.DY = 1
		return true
	}
	if b.Y > Height-BallSize {
		b.DY = -1
		return true
	}
	return false
}

// BounceOffPaddle reverses the horizontal direction and re-randomizes the vertical one.
// DY is multiplied by a random sign, so it keeps its sign half of the time.
func (b *Ball) BounceOffPaddle(signs SignSource) {
	b.DX *= -1
	b.DY *= signs.Sign()
}

// TouchesPaddle reports whether the ball overlaps either paddle's hitting edge
func TouchesPaddle(b Ball, p1Y, p2Y int) bool {
	if b.X <= Paddle1X+PaddleWidth && p1Y <= b.Y && b.Y <= p1Y+PaddleHeight {
		return true
	}
	return b.X+BallSize >= Paddle2X && p2Y <= b.Y && b.Y <= p2Y+PaddleHeight
}

// Scorer returns which player scores with the ball at its position, or 0
func Scorer(b Ball) int {
	if b.X <= Paddle1X {
		return 2
	}
	if b.X > Paddle2X {
		return 1
	}
	return 0
}

// ResolveBall runs the ball part of a tick. All checks read the position the ball
// had at the start of the tick; the translation comes last. Returns the player who
// scored, or 0.
func ResolveBall(s *State, audio Audio, signs SignSource) int {
	b := &s.Ball

	if b.BounceWall() {
		audio.Play(CueWall)
	}

	switch Scorer(*b) {
	case 1:
		b.Center()
		audio.Play(CueScore)
		s.Score1++
		return 1
	case 2:
		b.Center()
		audio.Play(CueScore)
		s.Score2++
		return 2
	}

	if TouchesPaddle(*b, s.Paddle1Y, s.Paddle2Y) {
		audio.Play(CuePaddle)
		b.BounceOffPaddle(signs)
		// A random sign must not point the ball back into the wall it touches
		b.BounceWall()
	}

	b.Move()
	return 0
}
