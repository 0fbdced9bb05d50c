package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/audio"
	"github.com/diegok/pong/internal/config"
	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/ui"
	"github.com/diegok/pong/internal/window"
)

// WinLinger is how long the winner caption stays up before exiting
const WinLinger = time.Second

// session is the part of game.Game the driver loops need
type session interface {
	Tick()
	Done() bool
	Winner() int
	State() game.State
}

type sessionFactory func(r game.Renderer, a game.Audio, in game.Input, d game.Display, c game.Clock, opts game.Options) session

func newGameSession(r game.Renderer, a game.Audio, in game.Input, d game.Display, c game.Clock, opts game.Options) session {
	return game.New(r, a, in, d, c, opts)
}

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	audio   game.Audio
	newGame sessionFactory
	final   game.State
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, log *slog.Logger) *App {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &App{cfg: cfg, log: log, newGame: newGameSession}
}

// lingerTicks converts a linger duration to update ticks, rounding down
func lingerTicks(d time.Duration) int {
	return int(d * game.TickRate / time.Second)
}

// Run sets up audio and the configured frontend, then plays one game.
// It returns when the game ends, a quit key is pressed or ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Mute {
		a.audio = audio.Silent{}
	} else {
		player, err := audio.New(audio.Options{SfxDir: a.cfg.SfxDir, Logger: a.log})
		if err != nil {
			return fmt.Errorf("failed to initialize audio: %w", err)
		}
		defer player.Close()
		a.audio = player
	}

	a.log.Info("starting", "frontend", a.cfg.Frontend, "mute", a.cfg.Mute, "legacy_input", a.cfg.LegacyInput)

	switch a.cfg.Frontend {
	case config.FrontendWindow:
		return a.runWindow(ctx)
	default:
		screen, err := ui.InitScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize screen: %w", err)
		}
		defer screen.Fini()
		return a.runTerminal(ctx, screen)
	}
}

// Final returns the game state at the moment the game stopped
func (a *App) Final() game.State {
	return a.final
}

func (a *App) options() game.Options {
	opts := game.Options{Logger: a.log}
	if a.cfg.LegacyInput {
		opts.InputMode = game.InputLegacy
	}
	return opts
}

// runTerminal drives the game at TickRate on a tcell screen.
func (a *App) runTerminal(ctx context.Context, screen *ui.Screen) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := ui.NewRenderer(screen)
	keys := ui.NewKeyTracker()
	clock := ui.NewFrameClock(game.TickRate)
	g := a.newGame(renderer, a.audio, keys, renderer, clock, a.options())
	defer func() { a.final = g.State() }()

	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / game.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.log.Info("interrupted")
			return nil

		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			keys.HandleEvent(ev)

		case now := <-ticker.C:
			clock.Mark(now)
			g.Tick()
			keys.Advance()
			renderer.Present()

			if g.Done() {
				if g.Winner() != 0 {
					a.lingerTerminal(ctx, events)
				}
				return nil
			}
		}
	}
}

// lingerTerminal keeps the winner caption up for WinLinger, cut short by a quit key
func (a *App) lingerTerminal(ctx context.Context, events <-chan tcell.Event) {
	timer := time.NewTimer(WinLinger)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			return
		case ev := <-events:
			if kev, ok := ev.(*tcell.EventKey); ok && ui.KeyFromEvent(kev.Key(), kev.Rune()) == game.KeyQuit {
				return
			}
		}
	}
}

// windowLoop is the per-update step of the window frontend
type windowLoop struct {
	ctx       context.Context
	log       *slog.Logger
	game      session
	pressed   func() []game.Key
	linger    int
	maxLinger int
}

// step advances the game by one update and returns false when the window should close.
// After a win it keeps the window open with the winner caption for maxLinger updates.
func (l *windowLoop) step() bool {
	if l.ctx.Err() != nil {
		l.log.Info("interrupted")
		return false
	}
	if !l.game.Done() {
		l.game.Tick()
		return true
	}
	for _, k := range l.pressed() {
		if k == game.KeyQuit {
			return false
		}
	}
	if l.game.Winner() != 0 && l.linger < l.maxLinger {
		l.linger++
		return true
	}
	return false
}

// runWindow drives the game from ebiten's update loop.
func (a *App) runWindow(ctx context.Context) error {
	loop := &windowLoop{ctx: ctx, log: a.log, maxLinger: lingerTicks(WinLinger)}
	frontend := window.New(loop.step)
	loop.pressed = frontend.Pressed
	loop.game = a.newGame(frontend, a.audio, frontend, frontend, frontend, a.options())
	defer func() { a.final = loop.game.State() }()

	if err := frontend.Run(); err != nil {
		return fmt.Errorf("window closed with error: %w", err)
	}
	return nil
}
