package game

import (
	"fmt"

	"github.com/pthm-cable/ratato/components"
	"github.com/pthm-cable/ratato/systems"
)

// Circle is a positioned footprint.
type Circle struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r"`
}

// EnemyView is an enemy as seen by front ends.
type EnemyView struct {
	Circle
	Kind    components.Kind `json:"-"`
	Name    string          `json:"kind"`
	HPRatio float64         `json:"hp"`
	FuseLit bool            `json:"fuse,omitempty"`
	Slowed  bool            `json:"slowed,omitempty"`
}

// PickupView is a collectible.
type PickupView struct {
	Circle
	Kind components.PickupKind `json:"-"`
	Name string                `json:"kind"`
}

// ZoneView is a ground zone.
type ZoneView struct {
	Circle
	Weapon  string `json:"weapon"`
	Attract bool   `json:"attract,omitempty"`
}

// AuraView is an active aura ring around the player.
type AuraView struct {
	Weapon string  `json:"weapon"`
	R      float64 `json:"r"`
}

// SwingView is the most recent melee arc while it is visible.
type SwingView struct {
	Angle  float64 `json:"angle"`
	Arc    float64 `json:"arc"`
	R      float64 `json:"r"`
	Fading float64 `json:"fading"` // Seconds left
}

// ParticleView is a cosmetic particle.
type ParticleView struct {
	X     float64              `json:"x"`
	Y     float64              `json:"y"`
	Size  float64              `json:"size"`
	Alpha float64              `json:"alpha"`
	Type  systems.ParticleType `json:"type"`
}

// ItemView is a held weapon or passive.
type ItemView struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Level   int    `json:"level"`
	Evolved bool   `json:"evolved,omitempty"`
}

// OfferView is a level-up option.
type OfferView struct {
	Kind        string  `json:"kind"`
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Level       int     `json:"level,omitempty"`
	Amount      float64 `json:"amount,omitempty"`
}

// PlayerView is the player state.
type PlayerView struct {
	Circle
	FacingX     float64          `json:"facing"`
	HP          float64          `json:"hp"`
	MaxHP       float64          `json:"max_hp"`
	HPRatio     float64          `json:"hp_ratio"`
	Shield      float64          `json:"shield"`
	ShieldRatio float64          `json:"shield_ratio"`
	Level       int              `json:"level"`
	XP          float64          `json:"xp"`
	XPToNext    float64          `json:"xp_to_next"`
	Currency    int              `json:"currency"`
	Buffs       components.Buffs `json:"buffs"`
	Weapons     []ItemView       `json:"weapons"`
	Passives    []ItemView       `json:"passives"`
}

// Snapshot is a read-only copy of the session for rendering. Nothing in it
// aliases simulation state.
type Snapshot struct {
	Tick        int     `json:"tick"`
	Elapsed     float64 `json:"elapsed"`
	Kills       int     `json:"kills"`
	Environment int     `json:"environment"`
	Phase       int     `json:"phase"`

	WorldRadius    float64 `json:"world_radius"`
	ViewportRadius float64 `json:"viewport_radius"`

	Player           PlayerView     `json:"player"`
	Enemies          []EnemyView    `json:"enemies"`
	Projectiles      []Circle       `json:"projectiles"`
	EnemyProjectiles []Circle       `json:"enemy_projectiles"`
	Zones            []ZoneView     `json:"zones"`
	Pickups          []PickupView   `json:"pickups"`
	Obstacles        []Circle       `json:"obstacles"`
	Satellites       []Circle       `json:"satellites"`
	Auras            []AuraView     `json:"auras"`
	Swing            *SwingView     `json:"swing,omitempty"`
	Particles        []ParticleView `json:"-"`

	Awaiting     bool        `json:"awaiting"`
	Chest        bool        `json:"chest,omitempty"` // Offers are chest rewards to claim
	Offers       []OfferView `json:"offers,omitempty"`
	Paused       bool        `json:"paused"`
	GameOver     bool        `json:"game_over"`
	HighScore    int         `json:"high_score"`
	NewHighScore bool        `json:"new_high_score"`
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	a := g.arena
	p := a.Player

	s := Snapshot{
		Tick:           g.tick,
		Elapsed:        a.Elapsed,
		Kills:          g.kills,
		Environment:    g.director.Environment(),
		Phase:          g.phase,
		WorldRadius:    g.cfg.World.Radius,
		ViewportRadius: g.cfg.World.ViewportRadius,
		Awaiting:       g.offers != nil,
		Chest:          g.ChestOpen(),
		Paused:         g.paused,
		GameOver:       g.gameOver,
		HighScore:      g.highScore,
		NewHighScore:   g.newHighScore,
	}

	s.Player = PlayerView{
		Circle:   Circle{X: p.Pos.X, Y: p.Pos.Y, R: p.Radius},
		FacingX:  p.FacingX,
		HP:       p.HP,
		MaxHP:    p.MaxHP,
		HPRatio:  p.HP / p.MaxHP,
		Shield:   p.Shield,
		Level:    p.Level,
		XP:       p.XP,
		XPToNext: p.XPToNext,
		Currency: p.Currency,
		Buffs:    p.Buffs,
	}
	if base := g.character.Stats.Shield; base > 0 {
		s.Player.ShieldRatio = min(1, p.Shield/base)
	}
	for _, w := range p.Weapons {
		s.Player.Weapons = append(s.Player.Weapons, ItemView{
			Key: w.Key(), Name: w.Def.Name, Icon: w.Def.Icon, Level: w.Level, Evolved: w.Evolved,
		})
	}
	for _, key := range p.PassiveKeys {
		pi := p.Passive(key)
		if pi == nil {
			continue
		}
		s.Player.Passives = append(s.Player.Passives, ItemView{
			Key: key, Name: pi.Def.Name, Icon: pi.Def.Icon, Level: pi.Level,
		})
	}

	s.Enemies = make([]EnemyView, 0, len(a.Enemies))
	for _, e := range a.Enemies {
		if !e.Alive() {
			continue
		}
		s.Enemies = append(s.Enemies, EnemyView{
			Circle:  Circle{X: e.Pos.X, Y: e.Pos.Y, R: e.Radius},
			Kind:    e.Kind,
			Name:    e.Kind.String(),
			HPRatio: e.HP / e.MaxHP,
			FuseLit: e.FuseLit,
			Slowed:  e.Slowed,
		})
	}

	s.Projectiles = make([]Circle, 0, len(a.Projectiles))
	for _, pr := range a.Projectiles {
		if !pr.Dead {
			s.Projectiles = append(s.Projectiles, Circle{X: pr.Pos.X, Y: pr.Pos.Y, R: pr.Radius})
		}
	}
	for _, pr := range a.EnemyProjectiles {
		if !pr.Dead {
			s.EnemyProjectiles = append(s.EnemyProjectiles, Circle{X: pr.Pos.X, Y: pr.Pos.Y, R: pr.Radius})
		}
	}

	a.Zones.Each(func(b *components.Body, z *components.Zone) {
		s.Zones = append(s.Zones, ZoneView{
			Circle:  Circle{X: b.Pos.X, Y: b.Pos.Y, R: b.Radius},
			Weapon:  z.Weapon,
			Attract: z.Variant == components.ZoneAttract,
		})
	})
	a.Pickups.Each(func(b *components.Body, pk *components.Pickup) {
		s.Pickups = append(s.Pickups, PickupView{
			Circle: Circle{X: b.Pos.X, Y: b.Pos.Y, R: b.Radius},
			Kind:   pk.Kind,
			Name:   pk.Kind.String(),
		})
	})

	for _, o := range a.Obstacles {
		s.Obstacles = append(s.Obstacles, Circle{X: o.Pos.X, Y: o.Pos.Y, R: o.Radius})
	}
	for _, o := range p.Orbits {
		for i := range o.SatKeys {
			pos := o.Satellite(p.Pos, i)
			s.Satellites = append(s.Satellites, Circle{X: pos.X, Y: pos.Y, R: o.SatRadius})
		}
	}
	for _, au := range p.Auras {
		s.Auras = append(s.Auras, AuraView{Weapon: au.Weapon, R: au.Radius})
	}
	if sw := a.Swing; sw.Remaining > 0 {
		s.Swing = &SwingView{Angle: sw.Angle, Arc: sw.Arc, R: sw.Radius, Fading: sw.Remaining}
	}

	s.Particles = make([]ParticleView, 0, g.particles.Count())
	for _, pt := range g.particles.Particles {
		s.Particles = append(s.Particles, ParticleView{
			X: pt.Pos.X, Y: pt.Pos.Y, Size: pt.Size, Alpha: pt.Life / pt.MaxLife, Type: pt.Type,
		})
	}

	for _, o := range g.offers {
		s.Offers = append(s.Offers, OfferView{
			Kind:        o.Kind.String(),
			Key:         o.Key,
			Name:        o.Name,
			Description: o.Description,
			Icon:        o.Icon,
			Level:       o.Level,
			Amount:      o.Amount,
		})
	}
	return s
}

// Clock formats the elapsed session time as m:ss.
func (s *Snapshot) Clock() string {
	secs := int(s.Elapsed)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
