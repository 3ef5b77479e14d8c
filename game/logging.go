package game

import (
	"log/slog"
	"time"
)

// logSessionStarted logs the session configuration.
func (g *Game) logSessionStarted() {
	p := g.arena.Player
	weapons := make([]string, len(p.Weapons))
	for i, w := range p.Weapons {
		weapons[i] = w.Key()
	}
	slog.Info("session_started",
		"run_id", g.opts.RunID,
		"character", g.character.Key,
		"seed", g.opts.Seed,
		"weapons", weapons,
		"obstacles", len(g.arena.Obstacles),
		"high_score", g.highScore,
	)
}

// logGameOver logs the final session state.
func (g *Game) logGameOver() {
	p := g.arena.Player
	slog.Info("game_over",
		"run_id", g.opts.RunID,
		"elapsed", g.arena.Elapsed,
		"ticks", g.tick,
		"kills", g.kills,
		"level", p.Level,
		"currency", p.Currency,
		"high_score", g.highScore,
		"new_high_score", g.newHighScore,
	)
}

// logPerfStats logs the slowest tick stages by display name.
func (g *Game) logPerfStats() {
	stats := g.perf.Stats()
	attrs := []any{
		"tick", g.tick,
		"avg_tick", stats.AvgTickDuration.Round(time.Microsecond).String(),
	}
	for _, id := range g.registry.IDs() {
		avg, ok := stats.PhaseAvg[id]
		if !ok {
			continue
		}
		attrs = append(attrs, g.registry.GetName(id), avg.Round(time.Microsecond).String())
	}
	slog.Info("perf_breakdown", attrs...)
}
