package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/components"
	"github.com/pthm-cable/ratato/systems"
	"github.com/pthm-cable/ratato/telemetry"
)

// reset rebuilds every subsystem for a fresh session.
func (g *Game) reset() error {
	director, err := systems.NewSpawnDirector(g.cfg)
	if err != nil {
		return err
	}

	g.world = ecs.NewWorld()
	player := components.NewPlayer(g.character, &g.cfg.Player)
	g.arena = systems.NewArena(g.cfg, g.rng, player, g.world)
	g.director = director
	g.particles = systems.NewParticleSystem(&g.cfg.Particles, g.rng)
	g.collector = telemetry.NewCollector(g.cfg.Telemetry.StatsWindow)
	g.bookmarks = telemetry.NewBookmarkDetector(10)
	g.installHooks()

	g.move = r2.Vec{}
	g.tick = 0
	g.kills = 0
	g.phase = 0
	g.paused = false
	g.gameOver = false
	g.offers = nil
	g.chests = nil
	g.chestOpen = false
	g.pendingLevels = 0
	g.events = g.events[:0]
	g.newHighScore = false
	g.lastFrame = time.Time{}
	g.reanchor = true
	g.startedAt = time.Now()

	g.spawnInitialWorld()
	g.logSessionStarted()
	return nil
}

// spawnInitialWorld places obstacles and the starting drops.
func (g *Game) spawnInitialWorld() {
	a := g.arena
	a.PlaceObstacles()

	d := g.cfg.Drops
	initial := []struct {
		kind  components.PickupKind
		count int
	}{
		{components.PickupHealth, d.Initial.Health},
		{components.PickupIce, d.Initial.Ice},
		{components.PickupSpeed, d.Initial.Speed},
	}
	for _, it := range initial {
		for range it.count {
			a.Pickups.Spawn(it.kind, a.SafePlacement(d.PickupRadius), d.PickupRadius, 0)
		}
	}
}

// installHooks routes combat outcomes to rewards, particles and events.
func (g *Game) installHooks() {
	a := g.arena
	a.Hooks = systems.Hooks{
		Killed: g.onKill,
		EnemyHit: func(e *components.Enemy, applied float64, weapon string) {
			g.particles.EmitHit(e.Pos)
			g.emit(telemetry.NewEnemyHitEvent(a.Elapsed, e, applied, weapon))
		},
		PlayerHit: func(src systems.DamageSource, res systems.DamageResult) {
			g.emit(telemetry.NewPlayerHitEvent(a.Elapsed, res.Applied, src.String(), res.Evaded))
		},
		Detonated: func(pos r2.Vec, radius float64) {
			g.particles.EmitBlast(pos, radius)
			g.emit(telemetry.Event{Type: telemetry.EventDetonation, Time: a.Elapsed, Amount: radius})
		},
	}
}

// onKill grants the reward for an enemy. Arena.Kill calls it exactly
// once per enemy.
func (g *Game) onKill(e *components.Enemy) {
	a := g.arena
	d := g.cfg.Drops
	luck := a.Player.Luck

	if e.Kind == components.KindBoss {
		a.Pickups.Spawn(components.PickupChest, e.Pos, d.PickupRadius*2, 0)
		slog.Info("boss_defeated", "elapsed", a.Elapsed, "kills", g.kills+1)
	} else {
		a.Pickups.Spawn(components.PickupGem, e.Pos, d.PickupRadius, e.XP)
	}

	g.kills++
	a.Player.Currency++
	g.particles.EmitDeath(e.Pos)
	g.emit(telemetry.NewKillEvent(a.Elapsed, e))

	if a.Rng.Float64() < d.HealthChance*luck {
		a.Pickups.Spawn(components.PickupHealth, e.Pos, d.PickupRadius, 0)
	}

	// One roll covers the buff drops, so at most one appears.
	roll := a.Rng.Float64()
	buffs := []struct {
		kind   components.PickupKind
		chance float64
	}{
		{components.PickupBomb, d.BombChance},
		{components.PickupExplosive, d.ExplosiveChance},
		{components.PickupIce, d.IceChance},
		{components.PickupSpeed, d.SpeedChance},
	}
	var acc float64
	for _, b := range buffs {
		acc += b.chance * luck
		if roll < acc {
			a.Pickups.Spawn(b.kind, e.Pos, d.PickupRadius, 0)
			break
		}
	}
}

// applyPickup applies a collected pickup to the player.
func (g *Game) applyPickup(c systems.Collected) {
	a := g.arena
	p := a.Player
	g.emit(telemetry.NewPickupEvent(a.Elapsed, c.Kind, c.Value))

	switch c.Kind {
	case components.PickupGem:
		if n := systems.GainXP(p, c.Value, &g.cfg.Progression); n > 0 {
			g.pendingLevels += n
			for i := range n {
				lvl := p.Level - n + i + 1
				slog.Info("level_up", "level", lvl, "elapsed", a.Elapsed)
				g.emit(telemetry.Event{Type: telemetry.EventLevelUp, Time: a.Elapsed, Amount: float64(lvl)})
			}
		}
	case components.PickupHealth:
		p.Heal(g.cfg.Drops.HealthHeal)
	case components.PickupExplosive:
		p.Buffs.Explosive = g.cfg.Buffs.Explosive
	case components.PickupIce:
		a.ApplyIce()
	case components.PickupSpeed:
		p.Buffs.Speed = g.cfg.Buffs.Speed
	case components.PickupBomb:
		a.Bomb()
	case components.PickupChest:
		g.openChest()
	}
}

// openChest applies a chest and queues its rewards for the player to
// claim. The session stays suspended until the claim is selected.
func (g *Game) openChest() {
	a := g.arena
	r := systems.OpenChest(a.Player, &g.cfg.Progression, a.Rng)
	switch {
	case r.Evolved != nil:
		slog.Info("weapon_evolved", "weapon", r.Evolved.BaseKey, "into", r.Evolved.Key(), "elapsed", a.Elapsed)
		g.emit(telemetry.Event{Type: telemetry.EventEvolve, Time: a.Elapsed, Label: r.Evolved.Key()})
	case len(r.Upgrades) > 0:
		keys := make([]string, len(r.Upgrades))
		for i, o := range r.Upgrades {
			keys[i] = o.Key
		}
		slog.Info("chest_upgrades", "upgrades", keys)
	default:
		slog.Info("chest_currency", "amount", r.Currency)
	}
	g.chests = append(g.chests, r.Options())
}

// openOffers publishes the next pending offer. Chest claims go before
// queued level-ups.
func (g *Game) openOffers() {
	if g.offers != nil {
		return
	}
	if len(g.chests) > 0 {
		g.offers = g.chests[0]
		g.chests = g.chests[1:]
		g.chestOpen = true
		return
	}
	g.chestOpen = false
	if g.pendingLevels <= 0 {
		return
	}
	g.offers = systems.GenerateOffers(g.arena.Player, &g.cfg.Progression, g.arena.Rng)
	if len(g.offers) == 0 {
		g.offers = nil
		g.pendingLevels = 0
	}
}

// endSession moves to the terminal state and persists the high score.
func (g *Game) endSession() {
	g.gameOver = true
	g.move = r2.Vec{}
	a := g.arena

	if g.kills > g.highScore {
		g.highScore = g.kills
		g.newHighScore = true
		g.saveHighScore()
	}

	g.logGameOver()
	g.emit(telemetry.Event{Type: telemetry.EventGameOver, Time: a.Elapsed, Amount: float64(g.kills)})

	if err := g.opts.Output.WriteSummary(g.summary()); err != nil {
		slog.Error("failed to write run summary", "error", err)
	}
}

func (g *Game) saveHighScore() {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := g.store.Save(ctx, g.highScore); err != nil {
		slog.Error("failed to save high score", "error", err)
		return
	}
	slog.Info("high_score_saved", "kills", g.highScore)
}

// summary builds the run summary for output.
func (g *Game) summary() telemetry.RunSummary {
	p := g.arena.Player
	s := telemetry.RunSummary{
		RunID:        g.opts.RunID,
		Character:    g.character.Key,
		Seed:         g.opts.Seed,
		StartedAt:    g.startedAt,
		WallSeconds:  time.Since(g.startedAt).Seconds(),
		SimSeconds:   g.arena.Elapsed,
		Ticks:        g.tick,
		Kills:        g.kills,
		Level:        p.Level,
		Currency:     p.Currency,
		HighScore:    g.highScore,
		NewHighScore: g.newHighScore,
	}
	for _, w := range p.Weapons {
		s.Weapons = append(s.Weapons, w.Key())
	}
	s.Passives = append(s.Passives, p.PassiveKeys...)
	return s
}
