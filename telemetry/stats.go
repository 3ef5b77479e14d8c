package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int     `csv:"-"`
	WindowEndTick   int     `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// State at window end
	Level       int `csv:"level"`
	Phase       int `csv:"phase"`
	LiveEnemies int `csv:"live_enemies"`

	// Kills during window
	Kills          int `csv:"kills"`
	KillsDefault   int `csv:"kills_default"`
	KillsFast      int `csv:"kills_fast"`
	KillsTank      int `csv:"kills_tank"`
	KillsDetonator int `csv:"kills_detonator"`
	KillsRanged    int `csv:"kills_ranged"`
	KillsBoss      int `csv:"kills_boss"`

	// Combat
	Hits        int     `csv:"hits"`
	DamageDealt float64 `csv:"damage_dealt"`
	DPS         float64 `csv:"dps"`
	PlayerHits  int     `csv:"player_hits"`
	DamageTaken float64 `csv:"damage_taken"`
	Evades      int     `csv:"evades"`
	EvadeRate   float64 `csv:"evade_rate"`

	// Progression
	XPGained    float64 `csv:"xp_gained"`
	LevelUps    int     `csv:"level_ups"`
	Pickups     int     `csv:"pickups"`
	Bosses      int     `csv:"bosses"`
	Detonations int     `csv:"detonations"`
	Evolutions  int     `csv:"evolutions"`

	PlayerHPRatio float64 `csv:"player_hp_ratio"`
	MinHPRatio    float64 `csv:"min_hp_ratio"`

	// Enemy HP distribution (sampled at window end)
	EnemyHPMean float64 `csv:"enemy_hp_mean"`
	EnemyHPP10  float64 `csv:"enemy_hp_p10"`
	EnemyHPP50  float64 `csv:"enemy_hp_p50"`
	EnemyHPP90  float64 `csv:"enemy_hp_p90"`
}

// ComputeHPStats calculates mean and empirical percentiles from HP values.
// Returns zeros for an empty slice.
func ComputeHPStats(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartTick),
		slog.Int("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("level", s.Level),
		slog.Int("phase", s.Phase),
		slog.Int("live_enemies", s.LiveEnemies),
		slog.Int("kills", s.Kills),
		slog.Int("kills_boss", s.KillsBoss),
		slog.Float64("dps", s.DPS),
		slog.Float64("damage_taken", s.DamageTaken),
		slog.Float64("evade_rate", s.EvadeRate),
		slog.Float64("xp_gained", s.XPGained),
		slog.Int("level_ups", s.LevelUps),
		slog.Float64("min_hp_ratio", s.MinHPRatio),
		slog.Float64("enemy_hp_p50", s.EnemyHPP50),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"level", s.Level,
		"phase", s.Phase,
		"live_enemies", s.LiveEnemies,
		"kills", s.Kills,
		"kills_default", s.KillsDefault,
		"kills_fast", s.KillsFast,
		"kills_tank", s.KillsTank,
		"kills_detonator", s.KillsDetonator,
		"kills_ranged", s.KillsRanged,
		"kills_boss", s.KillsBoss,
		"hits", s.Hits,
		"damage_dealt", s.DamageDealt,
		"dps", s.DPS,
		"player_hits", s.PlayerHits,
		"damage_taken", s.DamageTaken,
		"evades", s.Evades,
		"evade_rate", s.EvadeRate,
		"xp_gained", s.XPGained,
		"level_ups", s.LevelUps,
		"pickups", s.Pickups,
		"bosses", s.Bosses,
		"detonations", s.Detonations,
		"evolutions", s.Evolutions,
		"player_hp_ratio", s.PlayerHPRatio,
		"min_hp_ratio", s.MinHPRatio,
		"enemy_hp_mean", s.EnemyHPMean,
		"enemy_hp_p10", s.EnemyHPP10,
		"enemy_hp_p50", s.EnemyHPP50,
		"enemy_hp_p90", s.EnemyHPP90,
	)
}
