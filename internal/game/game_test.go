package game

import (
	"math/rand"
	"testing"
)

func TestGame_NotStartedIgnoresInput(t *testing.T) {
	h := newHarness(Options{})
	h.input.held[KeyP1Down] = true
	before := h.game.State()

	h.game.Tick()

	after := h.game.State()
	if after != before {
		t.Errorf("expected no simulation before start, state changed from %+v to %+v", before, after)
	}
	if h.display.caption != "PONG - Press SPACE to start!" {
		t.Errorf("unexpected caption %q", h.display.caption)
	}
	if h.renderer.clears != 0 {
		t.Errorf("expected no rendering before start, got %d clears", h.renderer.clears)
	}
}

func TestGame_StartSignal(t *testing.T) {
	h := newHarness(Options{})
	h.input.pressed = []Key{KeyStart}
	ball := h.game.State().Ball

	h.game.Tick()

	s := h.game.State()
	if s.Phase != PhasePlaying {
		t.Fatalf("expected phase playing, got %v", s.Phase)
	}
	if s.Ball != ball {
		t.Errorf("expected the start tick to skip simulation, ball moved to %+v", s.Ball)
	}

	h.game.Tick()
	if got := h.game.State().Ball; got.X != CenterX+5 || got.Y != CenterY+5 {
		t.Errorf("expected ball at (%d,%d), got (%d,%d)", CenterX+5, CenterY+5, got.X, got.Y)
	}
}

func TestGame_QuitFromAnyPhase(t *testing.T) {
	for _, phase := range []Phase{PhaseNotStarted, PhasePlaying} {
		h := newHarness(Options{})
		h.game.state.Phase = phase
		h.input.pressed = []Key{KeyQuit}

		h.game.Tick()

		if !h.game.Done() {
			t.Errorf("phase %v: expected quit to end the game", phase)
		}
		if h.game.Winner() != 0 {
			t.Errorf("phase %v: expected no winner on quit, got %d", phase, h.game.Winner())
		}
	}
}

func TestGame_QuitBeatsStartInSameTick(t *testing.T) {
	h := newHarness(Options{})
	h.input.pressed = []Key{KeyQuit, KeyStart}

	h.game.Tick()

	if !h.game.Done() {
		t.Error("expected quit to end the game")
	}
}

func TestGame_PlayingTickDrawsAndCaptions(t *testing.T) {
	h := playing(Options{})
	s := h.game.State()

	h.game.Tick()

	if h.renderer.clears != 1 {
		t.Errorf("expected one clear, got %d", h.renderer.clears)
	}
	want := []Rect{s.Paddle1(), s.Paddle2(), s.Ball.Rect()}
	if len(h.renderer.rects) != len(want) {
		t.Fatalf("expected %d rects, got %d", len(want), len(h.renderer.rects))
	}
	for i := range want {
		if h.renderer.rects[i] != want[i] {
			t.Errorf("rect %d: expected %+v, got %+v", i, want[i], h.renderer.rects[i])
		}
	}
	if h.display.caption != "PONG - 0:0 - 60 FPS" {
		t.Errorf("unexpected caption %q", h.display.caption)
	}
}

func TestGame_ScorePausesThenResumes(t *testing.T) {
	h := playing(Options{})
	h.game.state.Ball = Ball{X: Paddle1X, Y: CenterY, DX: -1, DY: 1}

	h.game.Tick()

	s := h.game.State()
	if s.Score2 != 1 {
		t.Fatalf("expected player 2 to score, got %d:%d", s.Score1, s.Score2)
	}
	if !s.Paused() {
		t.Fatal("expected a pause after the score")
	}

	h.input.held[KeyP1Down] = true
	for i := 0; i < PauseTicks; i++ {
		h.game.Tick()
	}
	s = h.game.State()
	if s.Ball.X != CenterX || s.Ball.Y != CenterY {
		t.Errorf("expected ball frozen at center during pause, got (%d,%d)", s.Ball.X, s.Ball.Y)
	}
	if s.Paddle1Y != PaddleStartY {
		t.Errorf("expected paddles frozen during pause, got y=%d", s.Paddle1Y)
	}
	if s.Paused() {
		t.Fatalf("expected pause to be over, %d ticks left", s.PauseTicks)
	}

	h.game.Tick()
	s = h.game.State()
	if s.Ball.X != CenterX-5 || s.Ball.Y != CenterY+5 {
		t.Errorf("expected ball to resume to (%d,%d), got (%d,%d)", CenterX-5, CenterY+5, s.Ball.X, s.Ball.Y)
	}
	if s.Paddle1Y != PaddleStartY+PaddleSpeed {
		t.Errorf("expected paddle1 to move after pause, got y=%d", s.Paddle1Y)
	}
}

func TestGame_QuitDuringPause(t *testing.T) {
	h := playing(Options{})
	h.game.state.PauseTicks = PauseTicks
	h.input.pressed = []Key{KeyQuit}

	h.game.Tick()

	if !h.game.Done() {
		t.Error("expected quit to end the game during a pause")
	}
}

func TestGame_Player1WinsAtThreshold(t *testing.T) {
	h := playing(Options{})
	h.game.state.Score1 = WinScore - 1
	h.game.state.Ball = Ball{X: Paddle2X + 5, Y: CenterY, DX: 1, DY: 1}

	h.game.Tick()

	s := h.game.State()
	if s.Score1 != WinScore {
		t.Errorf("expected score1=%d, got %d", WinScore, s.Score1)
	}
	if s.Phase != PhaseEnded || !h.game.Done() {
		t.Errorf("expected game to end, phase %v", s.Phase)
	}
	if h.game.Winner() != 1 {
		t.Errorf("expected player 1 to win, got %d", h.game.Winner())
	}
	if h.display.caption != "PONG - Player 1 wins!" {
		t.Errorf("unexpected caption %q", h.display.caption)
	}

	// Ended is terminal
	h.game.Tick()
	if h.game.State() != s {
		t.Error("expected no further ticks after the game ended")
	}
}

func TestGame_NoWinBeforeThreshold(t *testing.T) {
	h := playing(Options{})
	h.game.state.Score2 = WinScore - 2
	h.game.state.Ball = Ball{X: Paddle1X, Y: CenterY, DX: -1, DY: 1}

	h.game.Tick()

	if h.game.Done() {
		t.Errorf("expected game to continue at %d:%d", h.game.State().Score1, h.game.State().Score2)
	}
}

func TestGame_LegacyInputMode(t *testing.T) {
	h := playing(Options{InputMode: InputLegacy})
	h.input.held[KeyP1Down] = true
	h.input.held[KeyP2Down] = true

	h.game.Tick()

	s := h.game.State()
	if s.Paddle1Y != PaddleStartY+PaddleSpeed {
		t.Errorf("expected paddle1 to move, got y=%d", s.Paddle1Y)
	}
	if s.Paddle2Y != PaddleStartY {
		t.Errorf("expected paddle2 to be starved, got y=%d", s.Paddle2Y)
	}
}

func TestGame_Invariants(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	signs := &randSigns{r: r}
	h := playing(Options{Signs: signs})
	keys := []Key{KeyP1Up, KeyP1Down, KeyP2Up, KeyP2Down}

	for i := 0; i < 20000 && !h.game.Done(); i++ {
		for _, k := range keys {
			h.input.held[k] = r.Intn(3) == 0
		}
		before := h.game.State()

		h.game.Tick()

		s := h.game.State()
		for _, y := range []int{s.Paddle1Y, s.Paddle2Y} {
			if y < 0 || y > PaddleMaxY {
				t.Fatalf("tick %d: paddle y %d out of range", i, y)
			}
		}
		if (s.Ball.DX != 1 && s.Ball.DX != -1) || (s.Ball.DY != 1 && s.Ball.DY != -1) {
			t.Fatalf("tick %d: invalid direction (%d,%d)", i, s.Ball.DX, s.Ball.DY)
		}
		gained := (s.Score1 - before.Score1) + (s.Score2 - before.Score2)
		if gained < 0 || gained > 1 {
			t.Fatalf("tick %d: score changed by %d", i, gained)
		}
		if gained == 1 && (s.Ball.X != CenterX || s.Ball.Y != CenterY) {
			t.Fatalf("tick %d: ball not centered after score: (%d,%d)", i, s.Ball.X, s.Ball.Y)
		}
		if s.Phase == PhaseEnded && s.Score1 < WinScore && s.Score2 < WinScore {
			t.Fatalf("tick %d: ended at %d:%d", i, s.Score1, s.Score2)
		}
	}
}

type randSigns struct {
	r *rand.Rand
}

func (s *randSigns) Sign() int {
	if s.r.Intn(2) == 0 {
		return -1
	}
	return 1
}
