package tui

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/ratato/components"
	"github.com/pthm-cable/ratato/game"
	"github.com/pthm-cable/ratato/palette"
)

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHeldKeysDecay(t *testing.T) {
	k := newKeyState()
	t0 := time.Now()
	k.handle(key('w'), t0)
	k.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), t0)

	in := k.take(t0.Add(50 * time.Millisecond))
	if !in.Up || !in.Right || in.Down || in.Left {
		t.Fatalf("input = %+v, want up+right", in)
	}
	if in := k.take(t0.Add(holdWindow + time.Millisecond)); in.Up || in.Right {
		t.Errorf("keys still held after the hold window: %+v", in)
	}
}

func TestOneShotKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want game.Input
	}{
		{"pause", key('p'), game.Input{Select: -1, Pause: true}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.Input{Select: -1, Pause: true}},
		{"restart", key('r'), game.Input{Select: -1, Restart: true}},
		{"select", key('2'), game.Input{Select: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k := newKeyState()
			now := time.Now()
			k.handle(tc.ev, now)
			if got := k.take(now); got != tc.want {
				t.Errorf("take = %+v, want %+v", got, tc.want)
			}
			if got := k.take(now); got != game.NoInput {
				t.Errorf("second take = %+v, want no input", got)
			}
		})
	}
}

func TestQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{key('q'), tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)} {
		k := newKeyState()
		k.handle(ev, time.Now())
		if !k.quit {
			t.Errorf("%v did not request quit", ev.Name())
		}
	}
}

func TestViewRoundTrip(t *testing.T) {
	s := &game.Snapshot{ViewportRadius: 350, Player: game.PlayerView{Circle: game.Circle{X: 100, Y: -40}}}
	v := newView(s, 80, 40)

	col, row, ok := v.cell(100, -40)
	if !ok || col != 40 || row != 20 {
		t.Fatalf("player cell = (%d,%d,%v), want (40,20,true)", col, row, ok)
	}
	x, y := v.world(col, row)
	cellW := 1 / (v.scale * cellAspect)
	if math.Abs(x-100) > cellW || math.Abs(y+40) > 1/v.scale {
		t.Errorf("world(%d,%d) = (%v,%v), want near (100,-40)", col, row, x, y)
	}
	if _, _, ok := v.cell(100+10*350, -40); ok {
		t.Error("far point reported on screen")
	}
}

func TestDrawPlacesEntities(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 40)

	s := &game.Snapshot{
		WorldRadius:    1500,
		ViewportRadius: 350,
		Player:         game.PlayerView{Circle: game.Circle{R: 16}, HPRatio: 1, HP: 100, MaxHP: 100, Level: 1},
		Enemies: []game.EnemyView{
			{Circle: game.Circle{X: 100, R: 14}, Kind: components.KindTank},
		},
	}
	draw(screen, palette.NewGround(1), s)

	if r, _, _, _ := screen.GetContent(40, 20); r != '@' {
		t.Errorf("center = %q, want '@'", r)
	}
	v := newView(s, 80, 40)
	col, row, _ := v.cell(100, 0)
	if r, _, _, _ := screen.GetContent(col, row); r != 'T' {
		t.Errorf("enemy cell = %q, want 'T'", r)
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{0, "░░░░"},
		{0.5, "██░░"},
		{1, "████"},
		{2, "████"},
		{-1, "░░░░"},
	}
	for _, tc := range tests {
		if got := bar(tc.ratio, 4); got != tc.want {
			t.Errorf("bar(%v) = %q, want %q", tc.ratio, got, tc.want)
		}
	}
}
