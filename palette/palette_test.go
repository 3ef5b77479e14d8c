package palette

import (
	"image/color"
	"testing"

	"github.com/pthm-cable/ratato/components"
)

func TestForWraps(t *testing.T) {
	tests := []struct {
		env  int
		want string
	}{
		{0, "Dirt Arena"},
		{1, "Toxic Swamp"},
		{3, "Ice Cave"},
		{4, "Dirt Arena"},
		{-1, "Ice Cave"},
	}
	for _, tc := range tests {
		if got := For(tc.env).Name; got != tc.want {
			t.Errorf("For(%d) = %q, want %q", tc.env, got, tc.want)
		}
	}
}

func TestEnemyColorsDistinctPerKind(t *testing.T) {
	p := For(0)
	if p.Enemy(components.KindBoss) == p.Enemy(components.KindDefault) {
		t.Error("boss and default share a color")
	}
	if got := p.Enemy(components.Kind(200)); got != p.Enemy(components.KindDefault) {
		t.Errorf("unknown kind color = %v, want default", got)
	}
}

func TestBlend(t *testing.T) {
	a := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.RGBA{R: 200, G: 100, B: 0, A: 255}

	if got := Blend(a, b, 0); got != a {
		t.Errorf("Blend(0) = %v, want %v", got, a)
	}
	if got := Blend(a, b, 1); got != b {
		t.Errorf("Blend(1) = %v, want %v", got, b)
	}
	if got := Blend(a, b, 0.5); got.R != 100 || got.B != 100 {
		t.Errorf("Blend(0.5) = %v", got)
	}
	if got := Blend(a, b, 7); got != b {
		t.Errorf("Blend clamps above 1: got %v", got)
	}
}

func TestGroundDeterministic(t *testing.T) {
	g1 := NewGround(42)
	g2 := NewGround(42)
	for _, p := range [][2]float64{{0, 0}, {123.4, -56.7}, {-900, 300}} {
		a, b := g1.Mix(p[0], p[1]), g2.Mix(p[0], p[1])
		if a != b {
			t.Errorf("Mix%v differs across same seed: %v vs %v", p, a, b)
		}
		if a < 0 || a > 1 {
			t.Errorf("Mix%v = %v, want within [0, 1]", p, a)
		}
	}
}

func TestGroundPixelsMaskDisc(t *testing.T) {
	const size = 32
	px := NewGround(1).Pixels(For(0), size, 1500)

	if len(px) != size*size {
		t.Fatalf("len = %d, want %d", len(px), size*size)
	}
	if px[0].A != 0 {
		t.Errorf("corner alpha = %d, want transparent", px[0].A)
	}
	if c := px[(size/2)*size+size/2]; c.A != 255 {
		t.Errorf("center alpha = %d, want opaque", c.A)
	}
}
