package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/ratato/config"
	"github.com/pthm-cable/ratato/game"
	"github.com/pthm-cable/ratato/telemetry"
)

// Fitness weights. Survival time dominates; tension rewards runs where
// the player actually gets hurt.
const (
	weightSurvival    = 1.0
	weightConsistency = 0.3
	weightTension     = 0.2

	targetMinHP = 0.35 // Desired mean low point of player HP per window
)

// runResult holds the results from a single headless run.
type runResult struct {
	result  game.Result
	windows []telemetry.WindowStats
}

// Evaluation aggregates one parameter vector across all seeds.
type Evaluation struct {
	Fitness      float64
	MeanSurvival float64
	MeanKills    float64
	MeanLevel    float64
	Tension      float64
}

// FitnessEvaluator runs headless autopilot sessions and scores difficulty.
type FitnessEvaluator struct {
	params     *ParamVector
	configPath string
	target     float64 // Seconds the autopilot should survive
	maxTicks   int
	seeds      []int64
}

// NewFitnessEvaluator creates a new evaluator. Runs are capped at twice
// the target so overly easy settings still finish.
func NewFitnessEvaluator(params *ParamVector, configPath string, target float64, seeds []int64, frameTime float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		configPath: configPath,
		target:     target,
		maxTicks:   int(2 * target / frameTime),
		seeds:      seeds,
	}
}

// Evaluate scores raw parameter values (lower = better). Seeds run in parallel.
func (fe *FitnessEvaluator) Evaluate(x []float64) (Evaluation, error) {
	results := make([]runResult, len(fe.seeds))
	errs := make([]error, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx], errs[idx] = fe.runSimulation(x, s)
		}(i, seed)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return Evaluation{}, err
		}
	}
	return fe.score(results), nil
}

// runSimulation executes a single headless run with a fresh config.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) (runResult, error) {
	cfg, err := config.Load(fe.configPath)
	if err != nil {
		return runResult{}, err
	}
	fe.params.ApplyToConfig(cfg, x)

	var r runResult
	g, err := game.New(cfg, game.Options{
		Seed: seed,
		StatsCallback: func(stats telemetry.WindowStats) {
			r.windows = append(r.windows, stats)
		},
	})
	if err != nil {
		return runResult{}, err
	}
	r.result = game.RunHeadless(g, game.NewAutopilot(g), cfg.Derived.FrameTime, fe.maxTicks)
	return r, nil
}

// score folds per-seed results into an Evaluation.
func (fe *FitnessEvaluator) score(results []runResult) Evaluation {
	var ev Evaluation
	survivals := make([]float64, len(results))
	var lowSum float64
	var lowCount int

	for i, r := range results {
		survivals[i] = r.result.Elapsed
		ev.MeanSurvival += r.result.Elapsed
		ev.MeanKills += float64(r.result.Kills)
		ev.MeanLevel += float64(r.result.Level)
		for _, w := range r.windows {
			lowSum += w.MinHPRatio
			lowCount++
		}
	}
	n := float64(len(results))
	ev.MeanSurvival /= n
	ev.MeanKills /= n
	ev.MeanLevel /= n

	if lowCount > 0 {
		d := (lowSum/float64(lowCount) - targetMinHP) / targetMinHP
		ev.Tension = math.Exp(-d * d)
	}

	survivalErr := (ev.MeanSurvival - fe.target) / fe.target
	spread := cv(survivals)
	ev.Fitness = weightSurvival*survivalErr*survivalErr +
		weightConsistency*spread*spread +
		weightTension*(1-ev.Tension)
	return ev
}

// cv computes the coefficient of variation (std/mean) for a slice of values.
func cv(values []float64) float64 {
	n := float64(len(values))
	if n == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / n
	if mean == 0 {
		return 0
	}
	var sqDiff float64
	for _, v := range values {
		d := v - mean
		sqDiff += d * d
	}
	return math.Sqrt(sqDiff/n) / mean
}
