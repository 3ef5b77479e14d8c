package telemetry

import (
	"testing"
	"time"
)

// tick records one tick with the given phase durations.
func tick(pc *PerfCollector, phases map[Phase]time.Duration) {
	pc.StartTick()
	for _, ph := range Phases() {
		if d, ok := phases[ph]; ok {
			pc.StartPhase(ph)
			time.Sleep(d)
		}
	}
	pc.EndTick()
}

func TestPerfCollectorTracksPhases(t *testing.T) {
	pc := NewPerfCollector(10)
	for range 5 {
		tick(pc, map[Phase]time.Duration{
			PhaseSpatialGrid: 100 * time.Microsecond,
			PhaseWeapons:     200 * time.Microsecond,
		})
	}

	stats := pc.Stats()
	if stats.AvgTickDuration <= 0 || stats.TicksPerSecond <= 0 {
		t.Fatalf("avg=%v tps=%v, want positive", stats.AvgTickDuration, stats.TicksPerSecond)
	}
	for _, ph := range []Phase{PhaseSpatialGrid, PhaseWeapons} {
		if _, ok := stats.PhaseAvg[ph.String()]; !ok {
			t.Errorf("%s missing from PhaseAvg", ph)
		}
	}
	if _, ok := stats.PhaseAvg[PhaseZones.String()]; ok {
		t.Error("a phase that never ran was reported")
	}
	if stats.MinTickDuration > stats.AvgTickDuration || stats.AvgTickDuration > stats.MaxTickDuration {
		t.Errorf("min %v, avg %v, max %v out of order", stats.MinTickDuration, stats.AvgTickDuration, stats.MaxTickDuration)
	}
}

func TestPerfCollectorRingWraps(t *testing.T) {
	pc := NewPerfCollector(5)
	for range 12 {
		tick(pc, map[Phase]time.Duration{PhaseEnemies: 0})
	}
	if pc.count != 5 {
		t.Errorf("count = %d, want window size 5", pc.count)
	}
	if pc.next != 12%5 {
		t.Errorf("next = %d, want %d", pc.next, 12%5)
	}
}

func TestPerfCollectorPercentages(t *testing.T) {
	pc := NewPerfCollector(10)
	for range 5 {
		tick(pc, map[Phase]time.Duration{
			PhasePlayer:    10 * time.Microsecond,
			PhaseCollision: 500 * time.Microsecond,
		})
	}

	stats := pc.Stats()
	fast := stats.PhasePct[PhasePlayer.String()]
	slow := stats.PhasePct[PhaseCollision.String()]
	if slow <= fast {
		t.Errorf("collision %.1f%% should exceed player %.1f%%", slow, fast)
	}
	if total := fast + slow; total > 100.0001 {
		t.Errorf("phase shares sum to %.2f%%", total)
	}
	if row := stats.ToCSV(42); row.WindowEnd != 42 || row.CollisionPct != slow {
		t.Errorf("csv row = %+v", row)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	stats := NewPerfCollector(0).Stats()
	if stats.AvgTickDuration != 0 || stats.TicksPerSecond != 0 {
		t.Error("empty collector reported timings")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("phase maps must be non-nil")
	}
}

func TestPerfCollectorFrameTiming(t *testing.T) {
	pc := NewPerfCollector(10)
	pc.RecordFrame()
	time.Sleep(16 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration < 15*time.Millisecond {
		t.Errorf("frame duration = %v, want >= 15ms", stats.FrameDuration)
	}
	if stats.FPS <= 0 || stats.FPS > 70 {
		t.Errorf("fps = %v", stats.FPS)
	}
}

func TestPhaseNames(t *testing.T) {
	seen := map[string]bool{}
	for _, ph := range Phases() {
		name := ph.String()
		if name == "" || name == "unknown" || seen[name] {
			t.Errorf("phase %d has bad name %q", ph, name)
		}
		seen[name] = true
	}
	if Phase(200).String() != "unknown" {
		t.Error("out of range phase should be unknown")
	}
}
