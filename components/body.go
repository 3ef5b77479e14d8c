package components

import "gonum.org/v1/gonum/spatial/r2"

// Components in this file are stored in the ark world.

// Body holds the position and footprint of a world entity.
type Body struct {
	Pos    r2.Vec
	Radius float64
}

// PickupKind tags a collectible.
type PickupKind uint8

const (
	PickupGem PickupKind = iota
	PickupHealth
	PickupExplosive
	PickupIce
	PickupSpeed
	PickupBomb
	PickupChest
)

// Pickup is consumed on player contact. Value is the XP of a gem.
type Pickup struct {
	Kind  PickupKind
	Value float64
}

// ZoneVariant selects how a ground zone moves.
type ZoneVariant uint8

const (
	ZoneRandom  ZoneVariant = iota // Stationary at a random offset
	ZoneAttract                    // Drifts toward the player and grows
)

// Zone is a persistent ground damage area.
type Zone struct {
	Variant      ZoneVariant
	HitKey       string // Unique per zone; used for per-enemy tick timers
	Weapon       string
	Damage       float64
	Remaining    float64 // Seconds
	TickInterval float64
	Speed        float64 // Attract only, units per reference frame
	BaseRadius   float64
	MaxRadius    float64
	Growth       float64 // Radius units per second
	Lifesteal    float64
}
