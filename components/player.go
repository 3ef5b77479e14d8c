package components

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/ratato/catalog"
	"github.com/pthm-cable/ratato/config"
)

// WeaponInstance is a weapon held by the player.
// BaseKey never changes; Def switches to the evolved definition on evolution.
type WeaponInstance struct {
	BaseKey  string
	Level    int
	Evolved  bool
	Cooldown float64 // Seconds until the next activation
	Def      *catalog.Weapon
}

// Stats returns the active stat row.
func (w *WeaponInstance) Stats() catalog.LevelStats {
	if w.Evolved {
		return w.Def.Stats(1)
	}
	return w.Def.Stats(w.Level)
}

// Key returns the key of the active definition.
func (w *WeaponInstance) Key() string {
	return w.Def.Key
}

// PassiveInstance is a passive held by the player.
type PassiveInstance struct {
	Level int
	Def   *catalog.Passive
}

// Buffs holds remaining buff time in seconds.
type Buffs struct {
	Explosive float64
	Ice       float64
	Speed     float64
}

// OrbitGroup is a ring of satellites sharing one rotating angle.
type OrbitGroup struct {
	Weapon       string
	Angle        float64
	AngularSpeed float64 // Radians per second
	Radius       float64
	SatRadius    float64
	Remaining    float64
	Unbounded    bool
	Damage       float64
	Knockback    float64
	Lifesteal    float64
	SatKeys      []string // Per-satellite hit keys; len is the satellite count
}

// Satellite returns the world position of satellite i around center.
func (o *OrbitGroup) Satellite(center r2.Vec, i int) r2.Vec {
	n := len(o.SatKeys)
	a := o.Angle + float64(i)*2*math.Pi/float64(n)
	return r2.Add(center, r2.Vec{X: math.Cos(a) * o.Radius, Y: math.Sin(a) * o.Radius})
}

// AuraState records an active aura for display.
type AuraState struct {
	Weapon string
	Radius float64
}

// Player is the controlled unit.
type Player struct {
	Pos     r2.Vec
	Radius  float64
	FacingX float64 // Last horizontal facing, -1 or 1

	HP      float64
	MaxHP   float64
	Shield  float64
	Armor   float64
	Evasion float64

	Speed           float64
	DamageMult      float64
	FireRate        float64
	AttackRange     float64
	MeleeRange      float64
	ProjectileBonus int
	Bounce          int
	Lifesteal       float64

	Currency int
	Level    int
	XP       float64
	XPToNext float64

	Magnet       float64
	Luck         float64
	Regen        float64 // HP per second
	XPMultiplier float64

	MaxWeapons  int
	MaxPassives int
	Weapons     []*WeaponInstance
	Passives    map[string]*PassiveInstance
	PassiveKeys []string // Acquisition order

	Buffs  Buffs
	Orbits []*OrbitGroup
	Auras  []AuraState
}

// NewPlayer builds a player from a character and the player defaults.
func NewPlayer(ch *catalog.Character, cfg *config.PlayerConfig) *Player {
	s := ch.Stats
	p := &Player{
		Radius:          cfg.Radius,
		FacingX:         1,
		HP:              s.MaxHP,
		MaxHP:           s.MaxHP,
		Shield:          s.Shield,
		Armor:           s.Armor,
		Evasion:         s.Evasion,
		Speed:           s.Speed,
		DamageMult:      s.DamageMult,
		FireRate:        s.FireRate,
		AttackRange:     s.AttackRange,
		MeleeRange:      s.MeleeRange,
		ProjectileBonus: s.ProjectileBonus,
		Bounce:          s.Bounce,
		Lifesteal:       s.Lifesteal,
		Level:           1,
		XPToNext:        cfg.XPToNext,
		Magnet:          cfg.Magnet,
		Luck:            cfg.Luck,
		XPMultiplier:    cfg.XPMultiplier,
		MaxWeapons:      cfg.MaxWeapons,
		MaxPassives:     cfg.MaxPassives,
		Passives:        make(map[string]*PassiveInstance),
	}
	if def, ok := catalog.LookupWeapon(ch.StarterWeapon); ok {
		p.Weapons = append(p.Weapons, &WeaponInstance{BaseKey: def.Key, Level: 1, Def: def})
	}
	return p
}

// Bounds implements Collider.
func (p *Player) Bounds() (r2.Vec, float64) {
	return p.Pos, p.Radius
}

// Weapon returns the held weapon with the given base key.
func (p *Player) Weapon(baseKey string) *WeaponInstance {
	for _, w := range p.Weapons {
		if w.BaseKey == baseKey {
			return w
		}
	}
	return nil
}

// Passive returns the held passive with the given key.
func (p *Player) Passive(key string) *PassiveInstance {
	return p.Passives[key]
}

// Heal adds HP up to MaxHP.
func (p *Player) Heal(amount float64) {
	p.HP = min(p.MaxHP, p.HP+amount)
}

// Orbit returns the live orbit group for a weapon key.
func (p *Player) Orbit(weapon string) *OrbitGroup {
	for _, o := range p.Orbits {
		if o.Weapon == weapon {
			return o
		}
	}
	return nil
}
