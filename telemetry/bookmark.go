package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType names a notable moment.
type BookmarkType string

const (
	BookmarkKillSpike   BookmarkType = "kill_spike"
	BookmarkDamageSpike BookmarkType = "damage_spike"
	BookmarkNearDeath   BookmarkType = "near_death"
	BookmarkBossKill    BookmarkType = "boss_kill"
	BookmarkPowerSpike  BookmarkType = "power_spike"
)

// Bookmark is one row of bookmarks.csv.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int          `csv:"tick"`
	SimTimeSec  float64      `csv:"sim_time"`
	Description string       `csv:"description"`
}

func (b Bookmark) LogBookmark() {
	slog.Info("bookmark", "type", string(b.Type), "tick", b.Tick, "sim_time", b.SimTimeSec, "description", b.Description)
}

const (
	spikeFactor     = 2.0
	minKillSpike    = 10
	minDamageSpike  = 50
	nearDeathRatio  = 0.15
	nearDeathRearm  = 0.5
	powerSpikeLevel = 3
)

// spike flags a window whose metric exceeds spikeFactor times the rolling
// mean and a floor.
type spike struct {
	kind   BookmarkType
	floor  float64
	metric func(WindowStats) float64
	format string // current, factor, mean
}

var spikes = []spike{
	{BookmarkKillSpike, minKillSpike, func(s WindowStats) float64 { return float64(s.Kills) },
		"Kills %.0f are %.1fx average (%.1f)"},
	{BookmarkDamageSpike, minDamageSpike, func(s WindowStats) float64 { return s.DamageTaken },
		"Damage taken %.0f is %.1fx average (%.0f)"},
}

// BookmarkDetector compares each window against a short rolling history.
type BookmarkDetector struct {
	ring   []WindowStats
	filled int
	next   int

	nearDeath bool // Latched until HP recovers
}

// NewBookmarkDetector keeps at least three windows of history.
func NewBookmarkDetector(size int) *BookmarkDetector {
	return &BookmarkDetector{ring: make([]WindowStats, max(size, 3))}
}

// Check returns the bookmarks triggered by stats, then records it.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var out []Bookmark
	at := func(t BookmarkType, format string, args ...any) {
		out = append(out, Bookmark{
			Type: t, Tick: stats.WindowEndTick, SimTimeSec: stats.SimTimeSec,
			Description: fmt.Sprintf(format, args...),
		})
	}

	if past := bd.ring[:bd.filled]; len(past) >= 2 {
		for _, sp := range spikes {
			var sum float64
			for _, h := range past {
				sum += sp.metric(h)
			}
			mean := sum / float64(len(past))
			if v := sp.metric(stats); mean > 0 && v >= sp.floor && v > spikeFactor*mean {
				at(sp.kind, sp.format, v, v/mean, mean)
			}
		}
	}

	switch {
	case bd.nearDeath:
		if stats.PlayerHPRatio > nearDeathRearm {
			bd.nearDeath = false
		}
	case stats.MinHPRatio > 0 && stats.MinHPRatio < nearDeathRatio:
		bd.nearDeath = true
		at(BookmarkNearDeath, "HP dropped to %.0f%%", stats.MinHPRatio*100)
	}

	if stats.KillsBoss > 0 {
		at(BookmarkBossKill, "%d boss kill(s) at level %d", stats.KillsBoss, stats.Level)
	}
	if stats.Evolutions > 0 || stats.LevelUps >= powerSpikeLevel {
		at(BookmarkPowerSpike, "%d level-ups, %d evolution(s)", stats.LevelUps, stats.Evolutions)
	}

	bd.ring[bd.next] = stats
	bd.next = (bd.next + 1) % len(bd.ring)
	bd.filled = min(bd.filled+1, len(bd.ring))
	return out
}
