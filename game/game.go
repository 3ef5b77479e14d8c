// Package game runs one survival session: it owns every simulation
// subsystem and advances them once per tick.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/catalog"
	"github.com/pthm-cable/ratato/config"
	"github.com/pthm-cable/ratato/highscore"
	"github.com/pthm-cable/ratato/systems"
	"github.com/pthm-cable/ratato/telemetry"
)

// storeTimeout bounds every high score load or save.
const storeTimeout = 2 * time.Second

// maxQueuedEvents caps the event queue when nobody drains it.
const maxQueuedEvents = 512

// Options configures a session.
type Options struct {
	Character string // Empty selects player.default_character
	Seed      int64
	Store     highscore.Store          // Nil keeps the score in memory
	Output    *telemetry.OutputManager // Nil disables CSV output
	LogStats  bool
	RunID     string

	// StatsCallback receives every flushed telemetry window.
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the complete session state.
type Game struct {
	cfg       *config.Config
	opts      Options
	character *catalog.Character
	store     highscore.Store

	world     *ecs.World
	rng       *rand.Rand
	arena     *systems.Arena
	director  *systems.SpawnDirector
	particles *systems.ParticleSystem
	registry  *systems.SystemRegistry

	// Telemetry
	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	bookmarks *telemetry.BookmarkDetector

	// Input
	move r2.Vec

	// State
	tick          int
	kills         int
	phase         int
	paused        bool
	gameOver      bool
	offers        []systems.Option
	chestOpen     bool               // offers holds an applied chest reward
	chests        [][]systems.Option // Chest claims not yet shown
	pendingLevels int
	events        []telemetry.Event

	highScore    int
	newHighScore bool

	// Frame timing
	lastFrame time.Time
	reanchor  bool
	startedAt time.Time
}

// New creates a session. The high score is read from opts.Store; a failed
// read is logged and treated as zero.
func New(cfg *config.Config, opts Options) (*Game, error) {
	key := opts.Character
	if key == "" {
		key = cfg.Player.DefaultCharacter
	}
	ch, ok := catalog.LookupCharacter(key)
	if !ok {
		return nil, fmt.Errorf("unknown character %q", key)
	}
	if opts.RunID == "" {
		opts.RunID = telemetry.NewRunID()
	}

	g := &Game{
		cfg:       cfg,
		opts:      opts,
		character: ch,
		store:     opts.Store,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		registry:  systems.NewSystemRegistry(),
		perf:      telemetry.NewPerfCollector(int(cfg.Screen.TargetFPS)),
	}
	if g.store == nil {
		g.store = &highscore.MemoryStore{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	best, err := g.store.Load(ctx)
	if err != nil {
		slog.Error("failed to load high score", "error", err)
	}
	g.highScore = best

	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Step advances the simulation by dt seconds, clamped to loop.max_delta.
// It does nothing while paused, awaiting a selection, or after game over.
func (g *Game) Step(dt float64) {
	if !g.Running() || dt <= 0 {
		return
	}
	dt = min(dt, g.cfg.Loop.MaxDelta)
	g.tick++

	g.perf.StartTick()
	g.simulationStep(dt)
	g.perf.EndTick()

	if g.arena.Player.HP <= 0 {
		g.endSession()
	}
}

// Frame advances by the wall time since the previous frame. The first
// frame after any suspension only re-anchors the baseline.
func (g *Game) Frame(now time.Time) {
	g.perf.RecordFrame()
	if !g.Running() {
		g.reanchor = true
		return
	}
	if g.reanchor || g.lastFrame.IsZero() {
		g.lastFrame = now
		g.reanchor = false
		return
	}
	dt := now.Sub(g.lastFrame).Seconds()
	g.lastFrame = now
	g.Step(dt)
}

// Running reports whether ticks currently advance.
func (g *Game) Running() bool {
	return !g.paused && !g.gameOver && g.offers == nil
}

// SetMoveDirection sets the movement input. Vectors longer than 1 are
// normalized by the player system.
func (g *Game) SetMoveDirection(dir r2.Vec) {
	g.move = dir
}

// TogglePause flips the explicit pause flag.
func (g *Game) TogglePause() {
	if g.gameOver {
		return
	}
	g.paused = !g.paused
	g.reanchor = true
}

// Paused reports the explicit pause flag.
func (g *Game) Paused() bool {
	return g.paused
}

// GameOver reports whether the session has ended.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// AwaitingSelection reports whether a level-up offer is open.
func (g *Game) AwaitingSelection() bool {
	return g.offers != nil
}

// Offers returns the currently offered options, or nil.
func (g *Game) Offers() []systems.Option {
	return g.offers
}

// Select commits offer i. A chest claim accepts any index, since its
// rewards were applied on pickup. Further queued offers open right away.
func (g *Game) Select(i int) bool {
	if g.offers == nil || i < 0 || i >= len(g.offers) {
		return false
	}
	if g.chestOpen {
		slog.Info("chest_claimed", "rewards", len(g.offers))
	} else {
		o := g.offers[i]
		systems.ApplyOption(g.arena.Player, o)
		slog.Info("option_selected", "kind", o.Kind.String(), "key", o.Key, "level", o.Level)
		g.pendingLevels--
	}

	g.offers = nil
	g.openOffers()
	g.reanchor = true
	return true
}

// ChestOpen reports whether the open offer is a chest claim.
func (g *Game) ChestOpen() bool {
	return g.offers != nil && g.chestOpen
}

// Restart discards all session state and starts over with the same
// character. The high score carries over.
func (g *Game) Restart() {
	if err := g.reset(); err != nil {
		slog.Error("failed to restart", "error", err)
	}
}

// DrainEvents returns and clears the queued events.
func (g *Game) DrainEvents() []telemetry.Event {
	if len(g.events) == 0 {
		return nil
	}
	out := make([]telemetry.Event, len(g.events))
	copy(out, g.events)
	g.events = g.events[:0]
	return out
}

// Kills returns the session kill count.
func (g *Game) Kills() int {
	return g.kills
}

// Elapsed returns session seconds.
func (g *Game) Elapsed() float64 {
	return g.arena.Elapsed
}

// Tick returns the number of simulated ticks.
func (g *Game) Tick() int {
	return g.tick
}

// Level returns the player level.
func (g *Game) Level() int {
	return g.arena.Player.Level
}

// HighScore returns the best kill count, including this session once it beats it.
func (g *Game) HighScore() int {
	return g.highScore
}

// Config returns the session config.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Registry returns the tick stage registry.
func (g *Game) Registry() *systems.SystemRegistry {
	return g.registry
}

// Perf returns the tick timing collector.
func (g *Game) Perf() *telemetry.PerfCollector {
	return g.perf
}

// emit queues an event and folds it into telemetry.
func (g *Game) emit(ev telemetry.Event) {
	g.collector.Record(ev)
	if len(g.events) >= maxQueuedEvents {
		n := copy(g.events, g.events[len(g.events)/2:])
		g.events = g.events[:n]
	}
	g.events = append(g.events, ev)
}
