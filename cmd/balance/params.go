package main

import (
	"github.com/pthm-cable/ratato/config"
)

// ParamSpec is one difficulty knob and how it lands in a config.
type ParamSpec struct {
	Name     string
	Path     string // Where the value ends up, for reports
	Min, Max float64
	Default  float64 // Read from the base config

	set func(cfg *config.Config, v float64)
}

// ParamVector is the ordered set of knobs the optimizer searches over.
// CMA-ES works in the unit cube; Normalize and Denormalize map to and from it.
type ParamVector struct {
	Specs []ParamSpec
}

func NewParamVector(base *config.Config) *ParamVector {
	return &ParamVector{Specs: []ParamSpec{
		{
			Name: "hp_scale", Path: "enemies.hp_scale",
			Min: 0.4, Max: 3, Default: base.Enemies.HPScale,
			set: func(cfg *config.Config, v float64) { cfg.Enemies.HPScale = v },
		},
		{
			Name: "interval_scale", Path: "spawn.phases[].interval",
			Min: 0.4, Max: 2.5, Default: 1,
			set: func(cfg *config.Config, v float64) {
				for i := range cfg.Spawn.Phases {
					cfg.Spawn.Phases[i].Interval *= v
				}
			},
		},
		{
			Name: "boss_interval", Path: "enemies.boss.interval",
			Min: 120, Max: 600, Default: base.Enemies.Boss.Interval,
			set: func(cfg *config.Config, v float64) {
				cfg.Enemies.Boss.Interval = v
				cfg.Derived.BossEvery = v
			},
		},
		{
			Name: "ranged_fire_interval", Path: "enemies.ranged.fire_interval",
			Min: 0.8, Max: 6, Default: base.Enemies.Ranged.FireInterval,
			set: func(cfg *config.Config, v float64) { cfg.Enemies.Ranged.FireInterval = v },
		},
	}}
}

func (pv *ParamVector) Dim() int { return len(pv.Specs) }

// each builds a vector by applying fn to every spec and input value.
func (pv *ParamVector) each(in []float64, fn func(s ParamSpec, v float64) float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, s := range pv.Specs {
		var v float64
		if in != nil {
			v = in[i]
		}
		out[i] = fn(s, v)
	}
	return out
}

func (pv *ParamVector) DefaultVector() []float64 {
	return pv.each(nil, func(s ParamSpec, _ float64) float64 { return s.Default })
}

func (pv *ParamVector) Normalize(raw []float64) []float64 {
	return pv.each(raw, func(s ParamSpec, v float64) float64 { return (v - s.Min) / (s.Max - s.Min) })
}

func (pv *ParamVector) Denormalize(unit []float64) []float64 {
	return pv.each(unit, func(s ParamSpec, v float64) float64 { return s.Min + v*(s.Max-s.Min) })
}

func (pv *ParamVector) Clamp(v []float64) []float64 {
	return pv.each(v, func(s ParamSpec, x float64) float64 { return max(s.Min, min(s.Max, x)) })
}

// ApplyToConfig writes the clamped values into cfg. The interval knob
// scales the phase table in place, so cfg must be a fresh load.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	for i, v := range pv.Clamp(values) {
		pv.Specs[i].set(cfg, v)
	}
}
