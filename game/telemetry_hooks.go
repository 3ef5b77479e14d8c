package game

import (
	"log/slog"

	"github.com/pthm-cable/ratato/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry() {
	a := g.arena
	if !g.collector.ShouldFlush(a.Elapsed) {
		return
	}

	stats := g.collector.Flush(a.Elapsed, g.sample())
	perfStats := g.perf.Stats()

	if g.opts.StatsCallback != nil {
		g.opts.StatsCallback(stats)
	}

	if g.opts.LogStats {
		stats.LogStats()
		perfStats.LogStats()
		g.logPerfStats()
	}

	out := g.opts.Output
	if err := out.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := out.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range g.bookmarks.Check(stats) {
		if g.opts.LogStats {
			bm.LogBookmark()
		}
		if err := out.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

// sample collects the end-of-window state.
func (g *Game) sample() telemetry.Sample {
	a := g.arena
	s := telemetry.Sample{
		Tick:    g.tick,
		Level:   a.Player.Level,
		Phase:   g.phase,
		HPRatio: a.Player.HP / a.Player.MaxHP,
	}
	for _, e := range a.Enemies {
		if e.Alive() {
			s.EnemyHP = append(s.EnemyHP, e.HP)
		}
	}
	s.LiveEnemies = len(s.EnemyHP)
	return s
}
