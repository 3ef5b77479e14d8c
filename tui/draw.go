package tui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/ratato/components"
	"github.com/pthm-cable/ratato/game"
	"github.com/pthm-cable/ratato/palette"
)

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

var enemyGlyphs = map[components.Kind]rune{
	components.KindDefault:   's',
	components.KindFast:      'f',
	components.KindTank:      'T',
	components.KindDetonator: 'D',
	components.KindRanged:    'r',
	components.KindBoss:      'B',
}

var pickupGlyphs = map[components.PickupKind]rune{
	components.PickupGem:       '◆',
	components.PickupHealth:    '+',
	components.PickupExplosive: '!',
	components.PickupIce:       '*',
	components.PickupSpeed:     '»',
	components.PickupBomb:      'Q',
	components.PickupChest:     '$',
}

// view maps world coordinates to terminal cells centered on the player.
type view struct {
	cx, cy float64 // World center
	w, h   int
	scale  float64 // Rows per world unit
}

func newView(s *game.Snapshot, w, h int) view {
	rows := max(1, h-3) // HUD rows
	return view{
		cx:    s.Player.X,
		cy:    s.Player.Y,
		w:     w,
		h:     h,
		scale: float64(rows) / (2 * s.ViewportRadius),
	}
}

// cell returns the terminal cell of a world point and whether it is on screen.
func (v view) cell(x, y float64) (int, int, bool) {
	col := int(math.Floor(float64(v.w)/2 + (x-v.cx)*v.scale*cellAspect))
	row := int(math.Floor(float64(v.h)/2 + (y-v.cy)*v.scale))
	return col, row, col >= 0 && col < v.w && row >= 2 && row < v.h-1
}

// world returns the world point at the center of a cell.
func (v view) world(col, row int) (float64, float64) {
	x := v.cx + (float64(col)+0.5-float64(v.w)/2)/(v.scale*cellAspect)
	y := v.cy + (float64(row)+0.5-float64(v.h)/2)/v.scale
	return x, y
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// draw renders a snapshot onto screen.
func draw(screen tcell.Screen, ground *palette.Ground, s *game.Snapshot) {
	w, h := screen.Size()
	v := newView(s, w, h)
	pal := palette.For(s.Environment)
	screen.Clear()

	drawGround(screen, ground, v, pal, s.WorldRadius)

	base := func(col, row int) tcell.Style {
		_, _, st, _ := screen.GetContent(col, row)
		return st
	}
	put := func(x, y float64, r rune, fg tcell.Color) {
		if col, row, ok := v.cell(x, y); ok {
			screen.SetContent(col, row, r, nil, base(col, row).Foreground(fg))
		}
	}

	for _, o := range s.Obstacles {
		fillCircle(screen, v, o, ' ', tcell.StyleDefault.Background(tcell.NewRGBColor(70, 60, 55)))
	}
	for _, z := range s.Zones {
		fg := tcell.NewRGBColor(255, 120, 40)
		if z.Attract {
			fg = tcell.NewRGBColor(200, 60, 255)
		}
		forCells(v, z.Circle, func(col, row int) {
			screen.SetContent(col, row, '░', nil, base(col, row).Foreground(fg))
		})
	}
	for _, p := range s.Pickups {
		put(p.X, p.Y, pickupGlyphs[p.Kind], tcell.ColorWhite)
	}
	for _, p := range s.Projectiles {
		put(p.X, p.Y, '·', tcell.NewRGBColor(255, 220, 90))
	}
	for _, p := range s.EnemyProjectiles {
		put(p.X, p.Y, 'o', tcell.NewRGBColor(255, 80, 80))
	}
	for _, e := range s.Enemies {
		fg := rgb(pal.Enemy(e.Kind))
		if e.FuseLit {
			fg = tcell.ColorWhite
		}
		put(e.X, e.Y, enemyGlyphs[e.Kind], fg)
	}
	for _, sat := range s.Satellites {
		put(sat.X, sat.Y, 'O', tcell.NewRGBColor(140, 210, 255))
	}
	put(s.Player.X, s.Player.Y, '@', tcell.ColorWhite)

	drawHUD(screen, s, w, h)
	switch {
	case s.GameOver:
		drawGameOver(screen, s, w, h)
	case s.Awaiting:
		drawOffers(screen, s.Offers, s.Chest, w, h)
	case s.Paused:
		drawCentered(screen, h/2, w, " PAUSED  (p to resume) ", tcell.StyleDefault.Reverse(true))
	}
	screen.Show()
}

func drawGround(screen tcell.Screen, ground *palette.Ground, v view, pal palette.Palette, radius float64) {
	outside := tcell.StyleDefault.Background(rgb(palette.Outside))
	rim := tcell.StyleDefault.Background(rgb(pal.Border))
	rimWidth := 1 / v.scale
	for row := 2; row < v.h-1; row++ {
		for col := range v.w {
			x, y := v.world(col, row)
			d2 := x*x + y*y
			switch {
			case d2 > (radius+rimWidth)*(radius+rimWidth):
				screen.SetContent(col, row, ' ', nil, outside)
			case d2 > radius*radius:
				screen.SetContent(col, row, ' ', nil, rim)
			default:
				c := palette.Blend(pal.Base, pal.Pebbles, ground.Mix(x, y)*0.6)
				screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(rgb(c)))
			}
		}
	}
}

// forCells calls fn for every on-screen cell whose center lies in c.
func forCells(v view, c game.Circle, fn func(col, row int)) {
	c0, r0, _ := v.cell(c.X-c.R, c.Y-c.R)
	c1, r1, _ := v.cell(c.X+c.R, c.Y+c.R)
	for row := max(2, r0); row <= min(v.h-2, r1); row++ {
		for col := max(0, c0); col <= min(v.w-1, c1); col++ {
			x, y := v.world(col, row)
			if (x-c.X)*(x-c.X)+(y-c.Y)*(y-c.Y) <= c.R*c.R {
				fn(col, row)
			}
		}
	}
}

func fillCircle(screen tcell.Screen, v view, c game.Circle, r rune, st tcell.Style) {
	forCells(v, c, func(col, row int) {
		screen.SetContent(col, row, r, nil, st)
	})
}

func drawText(screen tcell.Screen, col, row int, text string, st tcell.Style) {
	for _, r := range text {
		screen.SetContent(col, row, r, nil, st)
		col++
	}
}

func drawCentered(screen tcell.Screen, row, w int, text string, st tcell.Style) {
	drawText(screen, max(0, (w-len([]rune(text)))/2), row, text, st)
}

func drawHUD(screen tcell.Screen, s *game.Snapshot, w, h int) {
	p := &s.Player
	st := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	hp := fmt.Sprintf("HP %s %.0f/%.0f", bar(p.HPRatio, 12), p.HP, p.MaxHP)
	if p.Shield > 0 {
		hp += fmt.Sprintf(" +%.0f", p.Shield)
	}
	drawText(screen, 0, 0, hp, st)
	xp := 0.0
	if p.XPToNext > 0 {
		xp = p.XP / p.XPToNext
	}
	drawText(screen, 0, 1, fmt.Sprintf("Lv %d %s  kills %d (best %d)  cheese %d",
		p.Level, bar(xp, 10), s.Kills, s.HighScore, p.Currency), st)

	right := fmt.Sprintf("%s  %s", s.Clock(), palette.For(s.Environment).Name)
	drawText(screen, max(0, w-len(right)), 0, right, st)

	var loadout string
	for _, wv := range s.Player.Weapons {
		loadout += fmt.Sprintf("%s%d ", wv.Icon, wv.Level)
	}
	for _, pv := range s.Player.Passives {
		loadout += fmt.Sprintf("%s%d ", pv.Icon, pv.Level)
	}
	drawText(screen, 0, h-1, loadout, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func bar(ratio float64, width int) string {
	ratio = max(0, min(1, ratio))
	full := int(ratio*float64(width) + 0.5)
	out := make([]rune, width)
	for i := range out {
		out[i] = '░'
		if i < full {
			out[i] = '█'
		}
	}
	return string(out)
}

func drawOffers(screen tcell.Screen, offers []game.OfferView, chest bool, w, h int) {
	st := tcell.StyleDefault.Reverse(true)
	top := h/2 - len(offers) - 1
	title := " LEVEL UP! choose with 1-3 "
	if chest {
		title = " TREASURE CHEST! press 1 to claim "
	}
	drawCentered(screen, top, w, title, st.Foreground(tcell.ColorYellow))
	for i, o := range offers {
		line := fmt.Sprintf(" [%d] %s %s", i+1, o.Icon, o.Name)
		if o.Level > 0 {
			line += fmt.Sprintf(" Lv%d", o.Level)
		}
		drawCentered(screen, top+2+2*i, w, line+" ", st)
		drawCentered(screen, top+3+2*i, w, " "+o.Description+" ", tcell.StyleDefault)
	}
}

func drawGameOver(screen tcell.Screen, s *game.Snapshot, w, h int) {
	st := tcell.StyleDefault.Reverse(true)
	drawCentered(screen, h/2-2, w, " GAME OVER ", st.Foreground(tcell.ColorRed))
	drawCentered(screen, h/2, w, fmt.Sprintf(" survived %s  kills %d  level %d ", s.Clock(), s.Kills, s.Player.Level), st)
	best := fmt.Sprintf(" best %d ", s.HighScore)
	if s.NewHighScore {
		best = fmt.Sprintf(" NEW HIGH SCORE %d! ", s.HighScore)
	}
	drawCentered(screen, h/2+1, w, best, st)
	drawCentered(screen, h/2+3, w, " r restart   q quit ", tcell.StyleDefault)
}
