// Command balance tunes difficulty knobs with CMA-ES so that an autopilot
// player survives for a target duration.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/ratato/config"
)

// evalRecord is one row of balance_log.csv.
type evalRecord struct {
	Eval               int     `csv:"eval"`
	Fitness            float64 `csv:"fitness"`
	MeanSurvival       float64 `csv:"mean_survival"`
	MeanKills          float64 `csv:"mean_kills"`
	MeanLevel          float64 `csv:"mean_level"`
	Tension            float64 `csv:"tension"`
	HPScale            float64 `csv:"hp_scale"`
	IntervalScale      float64 `csv:"interval_scale"`
	BossInterval       float64 `csv:"boss_interval"`
	RangedFireInterval float64 `csv:"ranged_fire_interval"`
}

// evalLog appends evaluations to a CSV file, header first.
type evalLog struct {
	w       io.Writer
	started bool
}

func (l *evalLog) append(rec evalRecord) error {
	rows := []evalRecord{rec}
	if l.started {
		return gocsv.MarshalWithoutHeaders(rows, l.w)
	}
	l.started = true
	return gocsv.Marshal(rows, l.w)
}

// tracker keeps the best point and prints progress.
type tracker struct {
	budget int
	start  time.Time
	evals  int
	best   float64
	bestX  []float64
}

func (t *tracker) observe(ev Evaluation, x []float64) {
	t.evals++
	if t.bestX == nil || ev.Fitness < t.best {
		t.best = ev.Fitness
		t.bestX = x
	}
	elapsed := time.Since(t.start)
	eta := time.Duration(t.budget-t.evals) * (elapsed / time.Duration(t.evals))
	fmt.Printf("[%d/%d] survived %.0fs  kills %.0f  level %.1f  tension %.2f  fitness %.4f  best %.4f  %s elapsed, %s left\n",
		t.evals, t.budget, ev.MeanSurvival, ev.MeanKills, ev.MeanLevel, ev.Tension,
		ev.Fitness, t.best, formatDuration(elapsed), formatDuration(eta))
}

// formatDuration renders d as 1h02m03s, or 2m03s under an hour.
func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	h, m, s := secs/3600, secs/60%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	target := flag.Float64("target", 600, "Seconds the autopilot should survive")
	seeds := flag.Int("seeds", 4, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 120, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	// Sessions log every level-up; only warnings matter here.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	base, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	params := NewParamVector(base)

	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(42 + 1000*i)
	}
	evaluator := NewFitnessEvaluator(params, *configPath, *target, evalSeeds, base.Derived.FrameTime)

	pop := *population
	if pop == 0 {
		pop = 4 + 3*params.Dim()/2
	}

	f, err := os.Create(filepath.Join(*outputDir, "balance_log.csv"))
	if err != nil {
		log.Fatalf("creating balance log: %v", err)
	}
	defer f.Close()
	evals := &evalLog{w: f}
	track := &tracker{budget: *maxEvals, start: time.Now()}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			v := params.Clamp(params.Denormalize(x))
			ev, err := evaluator.Evaluate(v)
			if err != nil {
				log.Fatalf("evaluation failed: %v", err)
			}
			track.observe(ev, v)
			rec := evalRecord{
				Eval: track.evals, Fitness: ev.Fitness,
				MeanSurvival: ev.MeanSurvival, MeanKills: ev.MeanKills, MeanLevel: ev.MeanLevel, Tension: ev.Tension,
				HPScale: v[0], IntervalScale: v[1], BossInterval: v[2], RangedFireInterval: v[3],
			}
			if err := evals.append(rec); err != nil {
				log.Printf("writing log row: %v", err)
			}
			return ev.Fitness
		},
	}

	fmt.Printf("CMA-ES over %d knobs: population %d, %d evaluations, %d seeds each, target %.0fs\n",
		params.Dim(), pop, *maxEvals, *seeds, *target)

	// Seeds already run in parallel inside Evaluate.
	result, err := optimize.Minimize(problem, params.Normalize(params.DefaultVector()),
		&optimize.Settings{FuncEvaluations: *maxEvals},
		&optimize.CmaEsChol{InitStepSize: 0.3, Population: pop})
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}
	best := track.bestX
	if best == nil {
		best = params.Clamp(params.Denormalize(result.X))
	}

	fmt.Printf("\n%d evaluations in %s, best fitness %.4f\n", track.evals, formatDuration(time.Since(track.start)), track.best)
	for i, spec := range params.Specs {
		fmt.Printf("  %-22s %-32s %.4f\n", spec.Name, spec.Path, best[i])
	}

	tuned, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("reloading config: %v", err)
	}
	params.ApplyToConfig(tuned, best)
	out := filepath.Join(*outputDir, "best_config.yaml")
	if err := tuned.WriteYAML(out); err != nil {
		log.Printf("writing best config: %v", err)
		return
	}
	fmt.Printf("best config written to %s\n", out)
}
