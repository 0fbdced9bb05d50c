package game

import (
	"fmt"
	"image/color"
	"log/slog"
)

const Title = "PONG"

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	PaddleColor     = color.RGBA{255, 255, 255, 255}
	BallColor       = PaddleColor
)

// Options configures a Game. Zero values pick the defaults.
type Options struct {
	Signs     SignSource
	InputMode InputMode
	Logger    *slog.Logger
}

// Game drives the simulation one tick at a time against its collaborators
type Game struct {
	state    *State
	signs    SignSource
	mode     InputMode
	log      *slog.Logger
	renderer Renderer
	audio    Audio
	input    Input
	display  Display
	clock    Clock
}

// New creates a game in the NotStarted phase
func New(r Renderer, a Audio, in Input, d Display, c Clock, opts Options) *Game {
	if opts.Signs == nil {
		opts.Signs = CryptoSigns{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Game{
		state:    NewState(opts.Signs),
		signs:    opts.Signs,
		mode:     opts.InputMode,
		log:      opts.Logger,
		renderer: r,
		audio:    a,
		input:    in,
		display:  d,
		clock:    c,
	}
}

// State returns a copy of the current simulation state
func (g *Game) State() State {
	return *g.state
}

// Done reports whether the driver should stop ticking
func (g *Game) Done() bool {
	return g.state.Phase == PhaseEnded
}

// Winner returns 1 or 2 after a win, 0 otherwise (including a quit)
func (g *Game) Winner() int {
	return g.state.Winner
}

// Tick advances the game by one frame
func (g *Game) Tick() {
	s := g.state
	if s.Phase == PhaseEnded {
		return
	}

	// Discrete presses are handled first; quit and start both end the tick
	for _, k := range g.input.Pressed() {
		switch k {
		case KeyQuit:
			g.log.Info("quit requested", "phase", s.Phase.String(), "score1", s.Score1, "score2", s.Score2)
			s.Phase = PhaseEnded
			return
		case KeyStart:
			if s.Phase == PhaseNotStarted {
				g.log.Info("game started")
				s.Phase = PhasePlaying
				return
			}
		}
	}

	if s.Phase == PhaseNotStarted {
		g.display.SetCaption(Title + " - Press SPACE to start!")
		return
	}

	s.Tick++
	g.display.SetCaption(fmt.Sprintf("%s - %d:%d - %d FPS", Title, s.Score1, s.Score2, int(g.clock.FPS())))
	g.draw()

	if s.Paused() {
		s.PauseTicks--
		return
	}

	MovePaddles(s, g.input.Held, g.mode)

	scorer := ResolveBall(s, g.audio, g.signs)
	if scorer != 0 {
		g.log.Debug("point scored", "player", scorer, "score1", s.Score1, "score2", s.Score2, "tick", s.Tick)
	}

	if winner := CheckWinner(s); winner != 0 {
		g.log.Info("game won", "player", winner, "score1", s.Score1, "score2", s.Score2)
		g.display.SetCaption(fmt.Sprintf("%s - Player %d wins!", Title, winner))
		return
	}

	if scorer != 0 {
		s.startPause()
	}
}

// draw paints the positions computed at the end of the previous tick
func (g *Game) draw() {
	g.renderer.Clear()
	g.renderer.FillRect(g.state.Paddle1(), PaddleColor)
	g.renderer.FillRect(g.state.Paddle2(), PaddleColor)
	g.renderer.FillRect(g.state.Ball.Rect(), BallColor)
}
