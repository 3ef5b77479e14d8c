// Package palette holds the per-environment color schemes and the ground
// texture shared by the window and terminal front ends.
package palette

import (
	"image/color"

	"github.com/pthm-cable/ratato/components"
)

// Palette colors one environment.
type Palette struct {
	Name    string
	Base    color.RGBA // Arena floor
	Pebbles color.RGBA // Floor speckle
	Border  color.RGBA // World rim
	Enemies [components.KindBoss + 1]color.RGBA
}

var palettes = []Palette{
	{
		Name:    "Dirt Arena",
		Base:    rgb(0x3b, 0x44, 0x55),
		Pebbles: rgb(0x71, 0x80, 0x96),
		Border:  rgb(0xfb, 0xd3, 0x8d),
		Enemies: [...]color.RGBA{
			rgb(0x48, 0xbb, 0x78), rgb(0xf6, 0xad, 0x55), rgb(0x74, 0x42, 0x10),
			rgb(0xff, 0xc7, 0x00), rgb(0xb7, 0x94, 0xf4), rgb(0x31, 0x82, 0xce),
		},
	},
	{
		Name:    "Toxic Swamp",
		Base:    rgb(0x3d, 0x48, 0x52),
		Pebbles: rgb(0x2c, 0x37, 0x48),
		Border:  rgb(0x9a, 0xe6, 0xb4),
		Enemies: [...]color.RGBA{
			rgb(0x40, 0x9c, 0x13), rgb(0xb9, 0xa5, 0xc8), rgb(0x58, 0x1c, 0x87),
			rgb(0xff, 0x4d, 0x4d), rgb(0xf5, 0x65, 0x65), rgb(0x7f, 0x36, 0x97),
		},
	},
	{
		Name:    "Desert Sands",
		Base:    rgb(0xc3, 0x95, 0x4d),
		Pebbles: rgb(0xa0, 0x7d, 0x3f),
		Border:  rgb(0xe5, 0x3e, 0x3e),
		Enemies: [...]color.RGBA{
			rgb(0x8b, 0x45, 0x13), rgb(0xe5, 0x3e, 0x3e), rgb(0x4a, 0x0e, 0x0e),
			rgb(0xf5, 0x9e, 0x0b), rgb(0x9f, 0x7a, 0xea), rgb(0xf6, 0xad, 0x55),
		},
	},
	{
		Name:    "Ice Cave",
		Base:    rgb(0x58, 0x73, 0x7e),
		Pebbles: rgb(0x80, 0xaf, 0xc0),
		Border:  rgb(0x42, 0x99, 0xe1),
		Enemies: [...]color.RGBA{
			rgb(0xa0, 0xae, 0xc0), rgb(0xff, 0x4d, 0x4d), rgb(0x31, 0x82, 0xce),
			rgb(0xff, 0x4d, 0x4d), rgb(0xed, 0x64, 0xa6), rgb(0x00, 0xcc, 0xff),
		},
	},
}

// Outside is the backdrop beyond the world rim.
var Outside = rgb(0x1a, 0x20, 0x2c)

// Count returns the number of distinct palettes.
func Count() int {
	return len(palettes)
}

// For returns the palette of environment index env. Indices wrap.
func For(env int) Palette {
	n := len(palettes)
	return palettes[((env%n)+n)%n]
}

// Enemy returns the body color for an enemy kind.
func (p Palette) Enemy(kind components.Kind) color.RGBA {
	if int(kind) >= len(p.Enemies) {
		return p.Enemies[components.KindDefault]
	}
	return p.Enemies[kind]
}

// Blend linearly interpolates from a to b by t in [0, 1].
func Blend(a, b color.RGBA, t float64) color.RGBA {
	t = max(0, min(1, t))
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
