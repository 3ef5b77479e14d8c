package telemetry

import (
	"slices"
	"testing"
)

func bookmarkTypes(bs []Bookmark) []BookmarkType {
	out := make([]BookmarkType, len(bs))
	for i, b := range bs {
		out[i] = b.Type
	}
	return out
}

func calm(w WindowStats) WindowStats {
	w.PlayerHPRatio, w.MinHPRatio = 1, 1
	return w
}

func TestBookmarkSpikes(t *testing.T) {
	tests := []struct {
		name    string
		history []WindowStats
		probe   WindowStats
		want    BookmarkType
		fires   bool
	}{
		{"kill spike", repeat(calm(WindowStats{Kills: 8}), 5), calm(WindowStats{Kills: 30}), BookmarkKillSpike, true},
		{"kills below floor", repeat(calm(WindowStats{Kills: 2}), 5), calm(WindowStats{Kills: 9}), BookmarkKillSpike, false},
		{"no history", nil, calm(WindowStats{Kills: 100}), BookmarkKillSpike, false},
		{"one window of history", repeat(calm(WindowStats{Kills: 5}), 1), calm(WindowStats{Kills: 100}), BookmarkKillSpike, false},
		{"damage spike", repeat(calm(WindowStats{DamageTaken: 40}), 3), calm(WindowStats{DamageTaken: 200}), BookmarkDamageSpike, true},
		{"steady damage", repeat(calm(WindowStats{DamageTaken: 60}), 3), calm(WindowStats{DamageTaken: 100}), BookmarkDamageSpike, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bd := NewBookmarkDetector(10)
			for _, h := range tc.history {
				bd.Check(h)
			}
			got := slices.Contains(bookmarkTypes(bd.Check(tc.probe)), tc.want)
			if got != tc.fires {
				t.Errorf("%s fired = %v, want %v", tc.want, got, tc.fires)
			}
		})
	}
}

func repeat(w WindowStats, n int) []WindowStats {
	out := make([]WindowStats, n)
	for i := range out {
		out[i] = w
		out[i].WindowEndTick = i * 3600
	}
	return out
}

func TestNearDeathLatches(t *testing.T) {
	bd := NewBookmarkDetector(10)
	low := WindowStats{PlayerHPRatio: 0.3, MinHPRatio: 0.05}

	if !slices.Contains(bookmarkTypes(bd.Check(low)), BookmarkNearDeath) {
		t.Fatal("expected near_death")
	}
	if slices.Contains(bookmarkTypes(bd.Check(low)), BookmarkNearDeath) {
		t.Error("near_death repeated before recovery")
	}
	bd.Check(WindowStats{PlayerHPRatio: 0.9, MinHPRatio: 0.6})
	if !slices.Contains(bookmarkTypes(bd.Check(low)), BookmarkNearDeath) {
		t.Error("near_death did not re-arm after recovery")
	}
}

func TestBossAndPowerSpike(t *testing.T) {
	bd := NewBookmarkDetector(10)
	got := bookmarkTypes(bd.Check(calm(WindowStats{WindowEndTick: 90, KillsBoss: 1, Evolutions: 1})))
	for _, want := range []BookmarkType{BookmarkBossKill, BookmarkPowerSpike} {
		if !slices.Contains(got, want) {
			t.Errorf("missing %s in %v", want, got)
		}
	}
	if got := bd.Check(calm(WindowStats{LevelUps: 3})); len(got) != 1 || got[0].Type != BookmarkPowerSpike {
		t.Errorf("three level-ups = %v, want a power spike", bookmarkTypes(got))
	}
}
