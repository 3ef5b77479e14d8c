package highscore

import (
	"context"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), "nested", "score.yaml"))

	got, err := s.Load(ctx)
	if err != nil || got != 0 {
		t.Fatalf("Load on missing file = %d, %v; want 0, nil", got, err)
	}

	if err := s.Save(ctx, 42); err != nil {
		t.Fatal(err)
	}
	if got, err := s.Load(ctx); err != nil || got != 42 {
		t.Errorf("Load = %d, %v; want 42", got, err)
	}

	if err := s.Save(ctx, 7); err != nil {
		t.Fatal(err)
	}
	if got, _ := NewFileStore(s.Path()).Load(ctx); got != 7 {
		t.Errorf("reopened Load = %d, want 7", got)
	}
}

func TestFileStoreHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewFileStore(filepath.Join(t.TempDir(), "score.yaml"))
	if err := s.Save(ctx, 1); err == nil {
		t.Error("Save with cancelled context should fail")
	}
}

func TestMemoryStore(t *testing.T) {
	var m MemoryStore
	ctx := context.Background()
	if err := m.Save(ctx, 5); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.Load(ctx); got != 5 || m.Saves() != 1 {
		t.Errorf("Load = %d saves %d", got, m.Saves())
	}
}
