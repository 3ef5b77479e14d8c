package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.World.Radius != 1500 {
		t.Errorf("world radius = %v, want 1500", cfg.World.Radius)
	}
	if cfg.Loop.MaxDelta != 0.05 {
		t.Errorf("max delta = %v, want 0.05", cfg.Loop.MaxDelta)
	}
	if got := len(cfg.Spawn.Phases); got != 6 {
		t.Fatalf("phase count = %d, want 6", got)
	}
	if cfg.Derived.LastPhaseEnd != 99999 {
		t.Errorf("last phase end = %v, want 99999", cfg.Derived.LastPhaseEnd)
	}
	if cfg.Derived.FrameTime <= 0 {
		t.Errorf("frame time = %v, want > 0", cfg.Derived.FrameTime)
	}
}

func TestEvasionScaleFor(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		source string
		want   float64
	}{
		{"contact", 1.0},
		{"enemy_projectile", 1.0},
		{"detonation", 0.1},
		{"unknown", 1.0},
	}
	for _, tc := range tests {
		t.Run(tc.source, func(t *testing.T) {
			if got := cfg.EvasionScaleFor(tc.source); got != tc.want {
				t.Errorf("EvasionScaleFor(%q) = %v, want %v", tc.source, got, tc.want)
			}
		})
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	overlay := []byte("world:\n  radius: 800\ncombat:\n  evasion_scale:\n    detonation: 0.5\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Radius != 800 {
		t.Errorf("radius = %v, want 800", cfg.World.Radius)
	}
	// Fields absent from the overlay keep their defaults
	if cfg.World.ViewportRadius != 350 {
		t.Errorf("viewport radius = %v, want 350", cfg.World.ViewportRadius)
	}
	if got := cfg.EvasionScaleFor("detonation"); got != 0.5 {
		t.Errorf("detonation scale = %v, want 0.5", got)
	}
}

func TestLoadRejectsEmptyPhaseWindow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	bad := []byte("spawn:\n  phases:\n    - {start: 10, end: 10, interval: 1, cap: 5, kinds: [default]}\n")
	if err := os.WriteFile(path, bad, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty phase window")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Spawn.Phases[0].Cap = 7

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Spawn.Phases[0].Cap != 7 {
		t.Errorf("cap = %d, want 7", loaded.Spawn.Phases[0].Cap)
	}
}
