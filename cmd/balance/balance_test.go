package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/ratato/config"
	"github.com/pthm-cable/ratato/game"
	"github.com/pthm-cable/ratato/telemetry"
)

func loadDefaults(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestNormalizeRoundTrip(t *testing.T) {
	pv := NewParamVector(loadDefaults(t))
	def := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(def))
	for i := range def {
		if math.Abs(back[i]-def[i]) > 1e-9 {
			t.Errorf("%s: %v != %v", pv.Specs[i].Name, back[i], def[i])
		}
	}
}

func TestClampBounds(t *testing.T) {
	pv := NewParamVector(loadDefaults(t))
	low := make([]float64, pv.Dim())
	high := make([]float64, pv.Dim())
	for i := range high {
		low[i] = -1e9
		high[i] = 1e9
	}
	lc, hc := pv.Clamp(low), pv.Clamp(high)
	for i, spec := range pv.Specs {
		if lc[i] != spec.Min || hc[i] != spec.Max {
			t.Errorf("%s clamped to [%v,%v], want [%v,%v]", spec.Name, lc[i], hc[i], spec.Min, spec.Max)
		}
	}
}

func TestApplyToConfig(t *testing.T) {
	base := loadDefaults(t)
	cfg := loadDefaults(t)
	pv := NewParamVector(base)

	pv.ApplyToConfig(cfg, []float64{2, 0.5, 200, 3})

	if cfg.Enemies.HPScale != 2 {
		t.Errorf("hp_scale = %v", cfg.Enemies.HPScale)
	}
	for i, p := range cfg.Spawn.Phases {
		if want := base.Spawn.Phases[i].Interval * 0.5; math.Abs(p.Interval-want) > 1e-12 {
			t.Errorf("phase %d interval = %v, want %v", i, p.Interval, want)
		}
	}
	if cfg.Enemies.Boss.Interval != 200 || cfg.Derived.BossEvery != 200 {
		t.Errorf("boss interval = %v / %v", cfg.Enemies.Boss.Interval, cfg.Derived.BossEvery)
	}
	if cfg.Enemies.Ranged.FireInterval != 3 {
		t.Errorf("ranged fire interval = %v", cfg.Enemies.Ranged.FireInterval)
	}
}

func TestScorePrefersTarget(t *testing.T) {
	fe := &FitnessEvaluator{target: 100}
	run := func(elapsed float64) runResult {
		return runResult{
			result:  game.Result{Elapsed: elapsed},
			windows: []telemetry.WindowStats{{MinHPRatio: targetMinHP}},
		}
	}

	onTarget := fe.score([]runResult{run(100), run(100)})
	if onTarget.Fitness > 1e-9 {
		t.Errorf("on-target fitness = %v, want 0", onTarget.Fitness)
	}
	short := fe.score([]runResult{run(50), run(50)})
	spread := fe.score([]runResult{run(50), run(150)})
	if short.Fitness <= onTarget.Fitness || spread.Fitness <= onTarget.Fitness {
		t.Errorf("fitness short=%v spread=%v, want both above %v", short.Fitness, spread.Fitness, onTarget.Fitness)
	}
	if spread.MeanSurvival != 100 {
		t.Errorf("mean survival = %v", spread.MeanSurvival)
	}
}

func TestCV(t *testing.T) {
	if cv(nil) != 0 || cv([]float64{5, 5, 5}) != 0 {
		t.Error("constant series should have zero variation")
	}
	if got := cv([]float64{1, 3}); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("cv = %v, want 0.5", got)
	}
}
