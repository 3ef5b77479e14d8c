// Package tui runs a session in the terminal with tcell.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/ratato/game"
	"github.com/pthm-cable/ratato/palette"
	"github.com/pthm-cable/ratato/telemetry"
)

// frameInterval paces the terminal loop at about 60 FPS.
const frameInterval = 16 * time.Millisecond

// FrameFunc receives every rendered snapshot and the events drained with it.
type FrameFunc func(s *game.Snapshot, events []telemetry.Event)

// App drives a game from terminal input.
type App struct {
	screen tcell.Screen
	game   *game.Game
	ground *palette.Ground
	keys   *keyState

	// OnFrame is called once per frame after the simulation advanced.
	OnFrame FrameFunc
}

// New creates an app on an initialized screen.
func New(screen tcell.Screen, g *game.Game, seed int64) *App {
	return &App{
		screen: screen,
		game:   g,
		ground: palette.NewGround(seed),
		keys:   newKeyState(),
	}
}

// NewScreen creates and initializes the terminal screen.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}

// Run loops until the user quits. The caller owns screen.Fini.
func (a *App) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				a.keys.handle(ev, time.Now())
			case *tcell.EventResize:
				a.screen.Sync()
			}
			if a.keys.quit {
				return
			}
		case now := <-ticker.C:
			a.frame(now)
		}
	}
}

// frame applies input, advances the simulation and redraws.
func (a *App) frame(now time.Time) {
	a.game.Apply(a.keys.take(now))
	a.game.Frame(now)

	snap := a.game.Snapshot()
	events := a.game.DrainEvents()
	if a.OnFrame != nil {
		a.OnFrame(&snap, events)
	}
	draw(a.screen, a.ground, &snap)
}
