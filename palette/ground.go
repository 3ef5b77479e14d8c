package palette

import (
	"image/color"
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Ground generates the mottled arena floor from layered simplex noise.
type Ground struct {
	noise opensimplex.Noise
	scale float64 // Noise cycles per world unit
}

// NewGround creates a floor generator. The same seed always yields the
// same floor.
func NewGround(seed int64) *Ground {
	return &Ground{
		noise: opensimplex.NewNormalized(seed),
		scale: 1.0 / 180,
	}
}

// Mix returns the pebble weight in [0, 1] at world position (x, y).
func (g *Ground) Mix(x, y float64) float64 {
	x *= g.scale
	y *= g.scale
	v := 0.65*g.noise.Eval2(x, y) + 0.35*g.noise.Eval2(x*3.1+17, y*3.1-9)
	// Sharpen toward the extremes so patches read as pebbles.
	v = (v - 0.5) * 1.6
	return max(0, min(1, v+0.5))
}

// Pixels renders a size x size texture covering the world square
// [-radius, radius]^2 in row-major order. Texels outside the disc are
// transparent; the outer rim darkens for depth.
func (g *Ground) Pixels(p Palette, size int, radius float64) []color.RGBA {
	out := make([]color.RGBA, size*size)
	if size <= 0 || radius <= 0 {
		return out
	}
	step := 2 * radius / float64(size)
	for j := range size {
		y := -radius + (float64(j)+0.5)*step
		for i := range size {
			x := -radius + (float64(i)+0.5)*step
			d := math.Hypot(x, y)
			if d > radius {
				continue
			}
			c := Blend(p.Base, p.Pebbles, g.Mix(x, y)*0.6)
			shade := 0.05 + 0.25*(d/radius)
			out[j*size+i] = Blend(c, color.RGBA{A: 255}, shade)
		}
	}
	return out
}
