package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"github.com/pthm-cable/ratato/config"
)

// RunSummary is written once when a session ends.
type RunSummary struct {
	RunID        string    `json:"run_id"`
	Character    string    `json:"character"`
	Seed         int64     `json:"seed"`
	StartedAt    time.Time `json:"started_at"`
	WallSeconds  float64   `json:"wall_seconds"`
	SimSeconds   float64   `json:"sim_seconds"`
	Ticks        int       `json:"ticks"`
	Kills        int       `json:"kills"`
	Level        int       `json:"level"`
	Currency     int       `json:"currency"`
	Weapons      []string  `json:"weapons"`
	Passives     []string  `json:"passives"`
	HighScore    int       `json:"high_score"`
	NewHighScore bool      `json:"new_high_score"`
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// csvSink appends gocsv rows to one file, writing the header with the
// first batch.
type csvSink struct {
	f       *os.File
	started bool
}

func openSink(dir, name string) (*csvSink, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvSink{f: f}, nil
}

func appendRows[T any](s *csvSink, rows []T) error {
	if s.started {
		return gocsv.MarshalWithoutHeaders(rows, s.f)
	}
	s.started = true
	return gocsv.Marshal(rows, s.f)
}

// OutputManager writes one run's artifacts: telemetry.csv, perf.csv,
// bookmarks.csv, config.yaml and run_summary.json. A nil *OutputManager
// accepts every call and writes nothing.
type OutputManager struct {
	dir       string
	telemetry *csvSink
	perf      *csvSink
	bookmarks *csvSink
}

// NewOutputManager creates dir and its CSV files. An empty dir disables
// output and returns nil.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	for _, it := range []struct {
		dst  **csvSink
		name string
	}{
		{&om.telemetry, "telemetry.csv"},
		{&om.perf, "perf.csv"},
		{&om.bookmarks, "bookmarks.csv"},
	} {
		s, err := openSink(dir, it.name)
		if err != nil {
			om.Close()
			return nil, err
		}
		*it.dst = s
	}
	return om, nil
}

func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := appendRows(om.telemetry, []WindowStats{stats}); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// WritePerf appends the timing window ending at tick windowEnd.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int) error {
	if om == nil {
		return nil
	}
	if err := appendRows(om.perf, []PerfStatsCSV{stats.ToCSV(windowEnd)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

func (om *OutputManager) WriteBookmark(b Bookmark) error {
	if om == nil {
		return nil
	}
	if err := appendRows(om.bookmarks, []Bookmark{b}); err != nil {
		return fmt.Errorf("writing bookmark: %w", err)
	}
	return nil
}

// WriteSummary replaces run_summary.json.
func (om *OutputManager) WriteSummary(s RunSummary) error {
	if om == nil {
		return nil
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding run summary: %w", err)
	}
	return os.WriteFile(filepath.Join(om.dir, "run_summary.json"), data, 0o644)
}

func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes every open file and returns the first error.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var first error
	for _, s := range []*csvSink{om.telemetry, om.perf, om.bookmarks} {
		if s == nil {
			continue
		}
		if err := s.f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
