package telemetry

import (
	"log/slog"
	"time"
)

// Phase identifies a timed stage of the simulation step.
type Phase uint8

// Phases in tick order.
const (
	PhasePlayer Phase = iota
	PhaseSpawn
	PhaseEnemies
	PhaseSpatialGrid
	PhaseWeapons
	PhasePersistent
	PhaseProjectiles
	PhaseZones
	PhaseParticles
	PhaseCollision
	PhasePickups
	PhaseCleanup
	PhaseTelemetry
	phaseCount
)

var phaseNames = [phaseCount]string{
	PhasePlayer:      "player",
	PhaseSpawn:       "spawn",
	PhaseEnemies:     "enemies",
	PhaseSpatialGrid: "spatial_grid",
	PhaseWeapons:     "weapons",
	PhasePersistent:  "persistent",
	PhaseProjectiles: "projectiles",
	PhaseZones:       "zones",
	PhaseParticles:   "particles",
	PhaseCollision:   "collision",
	PhasePickups:     "pickups",
	PhaseCleanup:     "cleanup",
	PhaseTelemetry:   "telemetry",
}

// String returns the phase key used in stats maps and CSV columns.
func (p Phase) String() string {
	if p < phaseCount {
		return phaseNames[p]
	}
	return "unknown"
}

// Phases lists every phase in tick order.
func Phases() []Phase {
	out := make([]Phase, phaseCount)
	for i := range out {
		out[i] = Phase(i)
	}
	return out
}

// tickSample is the timing of one tick, split by phase.
type tickSample struct {
	total  time.Duration
	phases [phaseCount]time.Duration
}

// PerfCollector keeps a ring of recent tick timings. It is not safe for
// concurrent use.
type PerfCollector struct {
	ring  []tickSample
	next  int
	count int

	cur        tickSample
	tickStart  time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector averages over the last window ticks (60 when window < 1).
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{ring: make([]tickSample, window)}
}

// StartTick begins timing a tick.
func (p *PerfCollector) StartTick() {
	p.cur = tickSample{}
	p.tickStart = time.Now()
	p.inPhase = false
}

// StartPhase closes the running phase, if any, and starts ph.
func (p *PerfCollector) StartPhase(ph Phase) {
	now := time.Now()
	p.closePhase(now)
	p.phase = ph
	p.phaseStart = now
	p.inPhase = ph < phaseCount
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.inPhase {
		p.cur.phases[p.phase] += now.Sub(p.phaseStart)
	}
	p.inPhase = false
}

// EndTick closes the tick and stores it in the ring.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.cur.total = now.Sub(p.tickStart)

	p.ring[p.next] = p.cur
	p.next = (p.next + 1) % len(p.ring)
	p.count = min(p.count+1, len(p.ring))
}

// RecordFrame measures the wall time between rendered frames.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats aggregates the ring. Phase maps are keyed by Phase.String and
// only hold phases that ran.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // Share of the average tick, in percent

	TicksPerSecond float64

	FrameDuration time.Duration
	FPS           float64
}

// Stats computes the window averages.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.frame,
	}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.count == 0 {
		return s
	}

	var sum tickSample
	for i, ts := range p.ring[:p.count] {
		sum.total += ts.total
		for ph, d := range ts.phases {
			sum.phases[ph] += d
		}
		if i == 0 || ts.total < s.MinTickDuration {
			s.MinTickDuration = ts.total
		}
		s.MaxTickDuration = max(s.MaxTickDuration, ts.total)
	}

	n := time.Duration(p.count)
	s.AvgTickDuration = sum.total / n
	if s.AvgTickDuration > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTickDuration)
	}
	for ph, d := range sum.phases {
		if d == 0 {
			continue
		}
		name := Phase(ph).String()
		s.PhaseAvg[name] = d / n
		if s.AvgTickDuration > 0 {
			s.PhasePct[name] = float64(d/n) / float64(s.AvgTickDuration) * 100
		}
	}
	return s
}

// LogStats logs the window with every phase above 0.1% of the tick.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, ph := range Phases() {
		if pct := s.PhasePct[ph.String()]; pct > 0.1 {
			attrs = append(attrs, ph.String()+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, ph := range Phases() {
		if pct, ok := s.PhasePct[ph.String()]; ok {
			attrs = append(attrs, slog.Float64(ph.String()+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one row of perf.csv.
type PerfStatsCSV struct {
	WindowEnd      int     `csv:"window_end"`
	AvgTickUS      int64   `csv:"avg_tick_us"`
	MinTickUS      int64   `csv:"min_tick_us"`
	MaxTickUS      int64   `csv:"max_tick_us"`
	TicksPerSec    float64 `csv:"ticks_per_sec"`
	FPS            float64 `csv:"fps"`
	PlayerPct      float64 `csv:"player_pct"`
	SpawnPct       float64 `csv:"spawn_pct"`
	EnemiesPct     float64 `csv:"enemies_pct"`
	SpatialGridPct float64 `csv:"spatial_grid_pct"`
	WeaponsPct     float64 `csv:"weapons_pct"`
	PersistentPct  float64 `csv:"persistent_pct"`
	ProjectilesPct float64 `csv:"projectiles_pct"`
	ZonesPct       float64 `csv:"zones_pct"`
	ParticlesPct   float64 `csv:"particles_pct"`
	CollisionPct   float64 `csv:"collision_pct"`
	PickupsPct     float64 `csv:"pickups_pct"`
	CleanupPct     float64 `csv:"cleanup_pct"`
	TelemetryPct   float64 `csv:"telemetry_pct"`
}

// ToCSV flattens s for perf.csv.
func (s PerfStats) ToCSV(windowEnd int) PerfStatsCSV {
	pct := func(ph Phase) float64 { return s.PhasePct[ph.String()] }
	return PerfStatsCSV{
		WindowEnd:      windowEnd,
		AvgTickUS:      s.AvgTickDuration.Microseconds(),
		MinTickUS:      s.MinTickDuration.Microseconds(),
		MaxTickUS:      s.MaxTickDuration.Microseconds(),
		TicksPerSec:    s.TicksPerSecond,
		FPS:            s.FPS,
		PlayerPct:      pct(PhasePlayer),
		SpawnPct:       pct(PhaseSpawn),
		EnemiesPct:     pct(PhaseEnemies),
		SpatialGridPct: pct(PhaseSpatialGrid),
		WeaponsPct:     pct(PhaseWeapons),
		PersistentPct:  pct(PhasePersistent),
		ProjectilesPct: pct(PhaseProjectiles),
		ZonesPct:       pct(PhaseZones),
		ParticlesPct:   pct(PhaseParticles),
		CollisionPct:   pct(PhaseCollision),
		PickupsPct:     pct(PhasePickups),
		CleanupPct:     pct(PhaseCleanup),
		TelemetryPct:   pct(PhaseTelemetry),
	}
}
