package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ratato/camera"
	"github.com/pthm-cable/ratato/palette"
)

// groundTexels is the ground texture edge length.
const groundTexels = 256

// GroundRenderer draws the arena floor as a noise texture stretched over
// the world disc. The texture is rebuilt when the environment changes.
type GroundRenderer struct {
	gen    *palette.Ground
	radius float32

	tex         rl.Texture2D
	env         int
	initialized bool
}

// NewGroundRenderer creates a ground renderer for a world of the given radius.
func NewGroundRenderer(seed int64, worldRadius float32) *GroundRenderer {
	return &GroundRenderer{
		gen:    palette.NewGround(seed),
		radius: worldRadius,
		env:    -1,
	}
}

// Init allocates the texture (must be called after the raylib window is created).
func (g *GroundRenderer) Init() {
	if g.initialized {
		return
	}
	img := rl.GenImageColor(groundTexels, groundTexels, rl.Blank)
	g.tex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(g.tex, rl.FilterBilinear)
	g.initialized = true
}

// Draw renders the floor for environment env.
func (g *GroundRenderer) Draw(env int, cam *camera.Camera) {
	if !g.initialized {
		g.Init()
	}
	if env != g.env {
		g.env = env
		rl.UpdateTexture(g.tex, g.gen.Pixels(palette.For(env), groundTexels, float64(g.radius)))
	}

	s := cam.Scale()
	cx, cy := cam.WorldToScreen(0, 0)
	src := rl.Rectangle{Width: groundTexels, Height: groundTexels}
	dst := rl.Rectangle{X: cx - g.radius*s, Y: cy - g.radius*s, Width: 2 * g.radius * s, Height: 2 * g.radius * s}
	rl.DrawTexturePro(g.tex, src, dst, rl.Vector2{}, 0, rl.White)
}

// Unload frees GPU resources.
func (g *GroundRenderer) Unload() {
	if g.initialized {
		rl.UnloadTexture(g.tex)
		g.initialized = false
		g.env = -1
	}
}
