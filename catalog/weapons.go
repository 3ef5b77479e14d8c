// Package catalog holds the static weapon, passive and character tables.
package catalog

// MaxLevel is the highest per-level upgrade a base weapon can reach.
const MaxLevel = 8

// Archetype selects the firing strategy for a weapon.
type Archetype uint8

const (
	ArchetypeNearest Archetype = iota
	ArchetypeFacing
	ArchetypeMelee
	ArchetypeUpward
	ArchetypeSpiral
	ArchetypeOrbit
	ArchetypeAura
	ArchetypeZoneRandom
	ArchetypeZoneAttract
)

var archetypeNames = [...]string{
	ArchetypeNearest:     "nearest",
	ArchetypeFacing:      "facing",
	ArchetypeMelee:       "melee",
	ArchetypeUpward:      "upward",
	ArchetypeSpiral:      "spiral",
	ArchetypeOrbit:       "orbit",
	ArchetypeAura:        "aura",
	ArchetypeZoneRandom:  "zone_random",
	ArchetypeZoneAttract: "zone_attract",
}

func (a Archetype) String() string {
	if int(a) < len(archetypeNames) {
		return archetypeNames[a]
	}
	return "unknown"
}

// IsProjectile reports whether the archetype fires free-flying projectiles.
func (a Archetype) IsProjectile() bool {
	switch a {
	case ArchetypeNearest, ArchetypeFacing, ArchetypeUpward, ArchetypeSpiral:
		return true
	}
	return false
}

// LevelStats is one row of a weapon's stat table.
// Cooldown and Duration are in seconds.
type LevelStats struct {
	Damage    float64
	Amount    int
	Cooldown  float64
	Area      float64
	Speed     float64
	Duration  float64
	Knockback float64
	Pierce    int
	Lifesteal float64
}

// Weapon describes a weapon definition. Base weapons carry MaxLevel rows in
// Levels; evolved weapons carry a single row.
type Weapon struct {
	Key         string
	Name        string
	Description string
	Icon        string
	Archetype   Archetype
	Directional bool // Melee swings follow facing instead of auto-aiming
	Levels      []LevelStats

	RequiredPassive string // Evolution gate
	EvolvesTo       string
}

// Stats returns the stat row for a 1-based level, clamped to the table.
func (w *Weapon) Stats(level int) LevelStats {
	if len(w.Levels) == 0 {
		return LevelStats{}
	}
	i := level - 1
	if i < 0 {
		i = 0
	}
	if i >= len(w.Levels) {
		i = len(w.Levels) - 1
	}
	return w.Levels[i]
}

// Weapon tables. Cooldowns and durations are seconds.
var weapons = []*Weapon{
	{
		Key:         "magicCheese",
		Name:        "Magic Cheese",
		Description: "Fires at the nearest enemy.",
		Icon:        "cheese",
		Archetype:   ArchetypeNearest,
		Levels: []LevelStats{
			{Damage: 10, Amount: 1, Cooldown: 1.0, Area: 1, Speed: 10, Knockback: 2},
			{Damage: 10, Amount: 2, Cooldown: 1.0, Area: 1, Speed: 10, Knockback: 2},
			{Damage: 10, Amount: 2, Cooldown: 0.9, Area: 1, Speed: 10, Knockback: 2},
			{Damage: 15, Amount: 3, Cooldown: 0.9, Area: 1, Speed: 10, Knockback: 2},
			{Damage: 15, Amount: 3, Cooldown: 0.9, Area: 1, Speed: 10, Knockback: 2, Pierce: 1},
			{Damage: 15, Amount: 3, Cooldown: 0.8, Area: 1, Speed: 10, Knockback: 2, Pierce: 1},
			{Damage: 20, Amount: 4, Cooldown: 0.8, Area: 1, Speed: 10, Knockback: 2, Pierce: 1},
			{Damage: 20, Amount: 4, Cooldown: 0.8, Area: 1, Speed: 10, Knockback: 2, Pierce: 2},
		},
		RequiredPassive: "emptyTome",
		EvolvesTo:       "minigunCheese",
	},
	{
		Key:         "dagger",
		Name:        "Dagger",
		Description: "Fires quickly in the faced direction.",
		Icon:        "dagger",
		Archetype:   ArchetypeFacing,
		Levels: []LevelStats{
			{Damage: 6, Amount: 1, Cooldown: 0.3, Area: 1, Speed: 15, Knockback: 1},
			{Damage: 6, Amount: 2, Cooldown: 0.3, Area: 1, Speed: 15, Knockback: 1},
			{Damage: 6, Amount: 3, Cooldown: 0.3, Area: 1, Speed: 15, Knockback: 1},
			{Damage: 9, Amount: 3, Cooldown: 0.3, Area: 1, Speed: 15, Knockback: 1},
			{Damage: 9, Amount: 4, Cooldown: 0.3, Area: 1, Speed: 15, Knockback: 1, Pierce: 1},
			{Damage: 9, Amount: 4, Cooldown: 0.3, Area: 1, Speed: 15, Knockback: 1, Pierce: 1},
			{Damage: 12, Amount: 5, Cooldown: 0.3, Area: 1, Speed: 15, Knockback: 1, Pierce: 1},
			{Damage: 12, Amount: 5, Cooldown: 0.3, Area: 1, Speed: 15, Knockback: 1, Pierce: 2},
		},
		RequiredPassive: "bracer",
		EvolvesTo:       "thousandDaggers",
	},
	{
		Key:         "axe",
		Name:        "Axe",
		Description: "High damage, arcs upward then falls.",
		Icon:        "axe",
		Archetype:   ArchetypeUpward,
		Levels: []LevelStats{
			{Damage: 20, Amount: 1, Cooldown: 1.5, Area: 1.5, Speed: 8, Knockback: 5, Pierce: 99},
			{Damage: 20, Amount: 2, Cooldown: 1.5, Area: 1.5, Speed: 8, Knockback: 5, Pierce: 99},
			{Damage: 30, Amount: 2, Cooldown: 1.5, Area: 1.5, Speed: 8, Knockback: 5, Pierce: 99},
			{Damage: 30, Amount: 2, Cooldown: 1.5, Area: 1.7, Speed: 8, Knockback: 5, Pierce: 99},
			{Damage: 40, Amount: 3, Cooldown: 1.5, Area: 1.7, Speed: 8, Knockback: 5, Pierce: 99},
			{Damage: 40, Amount: 3, Cooldown: 1.5, Area: 1.7, Speed: 8, Knockback: 5, Pierce: 99},
			{Damage: 50, Amount: 3, Cooldown: 1.3, Area: 1.9, Speed: 8, Knockback: 5, Pierce: 99},
			{Damage: 50, Amount: 4, Cooldown: 1.3, Area: 1.9, Speed: 8, Knockback: 5, Pierce: 99},
		},
		RequiredPassive: "candelabrador",
		EvolvesTo:       "deathSpiral",
	},
	{
		Key:         "tailWhip",
		Name:        "Tail Whip",
		Description: "Sweeps horizontally in front of you.",
		Icon:        "whip",
		Archetype:   ArchetypeMelee,
		Directional: true,
		Levels: []LevelStats{
			{Damage: 10, Amount: 1, Cooldown: 1.35, Area: 1.0, Duration: 0.2, Knockback: 3, Pierce: 99},
			{Damage: 10, Amount: 1, Cooldown: 1.35, Area: 1.0, Duration: 0.2, Knockback: 3, Pierce: 99},
			{Damage: 15, Amount: 1, Cooldown: 1.35, Area: 1.0, Duration: 0.2, Knockback: 3, Pierce: 99},
			{Damage: 15, Amount: 1, Cooldown: 1.35, Area: 1.1, Duration: 0.2, Knockback: 3, Pierce: 99},
			{Damage: 20, Amount: 1, Cooldown: 1.35, Area: 1.1, Duration: 0.2, Knockback: 3, Pierce: 99},
			{Damage: 20, Amount: 1, Cooldown: 1.35, Area: 1.2, Duration: 0.2, Knockback: 3, Pierce: 99},
			{Damage: 25, Amount: 1, Cooldown: 1.35, Area: 1.2, Duration: 0.2, Knockback: 3, Pierce: 99},
			{Damage: 30, Amount: 1, Cooldown: 1.35, Area: 1.3, Duration: 0.2, Knockback: 3, Pierce: 99},
		},
		RequiredPassive: "emptyHeart",
		EvolvesTo:       "bloodyTail",
	},
	{
		Key:         "stinkyCheese",
		Name:        "Stinky Cheese",
		Description: "Damages nearby enemies continuously.",
		Icon:        "stink",
		Archetype:   ArchetypeAura,
		Levels: []LevelStats{
			{Damage: 3, Amount: 1, Cooldown: 0.2, Area: 1.0, Knockback: 1},
			{Damage: 3, Amount: 1, Cooldown: 0.2, Area: 1.2, Knockback: 1},
			{Damage: 4, Amount: 1, Cooldown: 0.2, Area: 1.2, Knockback: 1},
			{Damage: 4, Amount: 1, Cooldown: 0.2, Area: 1.4, Knockback: 1},
			{Damage: 5, Amount: 1, Cooldown: 0.2, Area: 1.4, Knockback: 1},
			{Damage: 5, Amount: 1, Cooldown: 0.2, Area: 1.6, Knockback: 1},
			{Damage: 6, Amount: 1, Cooldown: 0.2, Area: 1.6, Knockback: 1},
			{Damage: 7, Amount: 1, Cooldown: 0.2, Area: 1.8, Knockback: 1},
		},
		RequiredPassive: "pummarola",
		EvolvesTo:       "toxicCloud",
	},
	{
		Key:         "orbitingShield",
		Name:        "Orbiting Shield",
		Description: "Satellites circle around you.",
		Icon:        "shield",
		Archetype:   ArchetypeOrbit,
		Levels: []LevelStats{
			{Damage: 10, Amount: 1, Cooldown: 3.0, Area: 1, Speed: 5, Duration: 3.0, Knockback: 2},
			{Damage: 10, Amount: 2, Cooldown: 3.0, Area: 1, Speed: 5, Duration: 3.0, Knockback: 2},
			{Damage: 10, Amount: 2, Cooldown: 3.0, Area: 1, Speed: 6, Duration: 3.0, Knockback: 2},
			{Damage: 15, Amount: 3, Cooldown: 3.0, Area: 1, Speed: 6, Duration: 3.5, Knockback: 2},
			{Damage: 15, Amount: 3, Cooldown: 3.0, Area: 1, Speed: 7, Duration: 3.5, Knockback: 2},
			{Damage: 15, Amount: 4, Cooldown: 3.0, Area: 1, Speed: 7, Duration: 4.0, Knockback: 2},
			{Damage: 20, Amount: 4, Cooldown: 3.0, Area: 1, Speed: 8, Duration: 4.0, Knockback: 2},
			{Damage: 20, Amount: 5, Cooldown: 3.0, Area: 1, Speed: 8, Duration: 4.5, Knockback: 2},
		},
		RequiredPassive: "spellbinder",
		EvolvesTo:       "thunderShield",
	},
	{
		Key:         "molotov",
		Name:        "Molotov",
		Description: "Leaves burning zones on the ground.",
		Icon:        "fire",
		Archetype:   ArchetypeZoneRandom,
		Levels: []LevelStats{
			{Damage: 10, Amount: 1, Cooldown: 2.5, Area: 1.0, Duration: 2.0},
			{Damage: 15, Amount: 1, Cooldown: 2.5, Area: 1.2, Duration: 2.0},
			{Damage: 15, Amount: 1, Cooldown: 2.5, Area: 1.2, Duration: 2.5},
			{Damage: 20, Amount: 1, Cooldown: 2.5, Area: 1.4, Duration: 2.5},
			{Damage: 20, Amount: 2, Cooldown: 2.5, Area: 1.4, Duration: 2.5},
			{Damage: 25, Amount: 2, Cooldown: 2.5, Area: 1.6, Duration: 3.0},
			{Damage: 25, Amount: 2, Cooldown: 2.5, Area: 1.6, Duration: 3.0},
			{Damage: 30, Amount: 3, Cooldown: 2.0, Area: 1.8, Duration: 3.5},
		},
		RequiredPassive: "attractorb",
		EvolvesTo:       "infernoRing",
	},
}

var evolutions = []*Weapon{
	{
		Key: "bloodyTail", Name: "Bloody Tail", Icon: "whip",
		Description: "Heals on every swing.",
		Archetype:   ArchetypeMelee, Directional: true,
		Levels: []LevelStats{{Damage: 50, Amount: 1, Cooldown: 1.0, Area: 1.5, Duration: 0.3, Knockback: 10, Pierce: 99, Lifesteal: 0.1}},
	},
	{
		Key: "minigunCheese", Name: "Minigun Cheese", Icon: "cheese",
		Description: "A relentless stream of cheese.",
		Archetype:   ArchetypeNearest,
		Levels:      []LevelStats{{Damage: 30, Amount: 1, Cooldown: 0.08, Area: 1, Speed: 15, Knockback: 2, Pierce: 3}},
	},
	{
		Key: "thousandDaggers", Name: "Thousand Daggers", Icon: "dagger",
		Description: "Daggers without end.",
		Archetype:   ArchetypeFacing,
		Levels:      []LevelStats{{Damage: 20, Amount: 1, Cooldown: 0.05, Area: 1, Speed: 20, Knockback: 2, Pierce: 4}},
	},
	{
		Key: "deathSpiral", Name: "Death Spiral", Icon: "axe",
		Description: "Axes spiral outward from the center.",
		Archetype:   ArchetypeSpiral,
		Levels:      []LevelStats{{Damage: 60, Amount: 9, Cooldown: 1.0, Area: 2.0, Speed: 10, Duration: 3.0, Knockback: 10, Pierce: 99}},
	},
	{
		Key: "thunderShield", Name: "Thunder Shield", Icon: "shield",
		Description: "Permanent storm of satellites.",
		Archetype:   ArchetypeOrbit,
		Levels:      []LevelStats{{Damage: 30, Amount: 6, Cooldown: 0, Area: 1.2, Speed: 10, Duration: 999.999, Knockback: 5}},
	},
	{
		Key: "toxicCloud", Name: "Toxic Cloud", Icon: "stink",
		Description: "A wide poisonous cloud that drains life.",
		Archetype:   ArchetypeAura,
		Levels:      []LevelStats{{Damage: 15, Amount: 1, Cooldown: 0.15, Area: 2.5, Knockback: 2, Lifesteal: 0.05}},
	},
	{
		Key: "infernoRing", Name: "Inferno Ring", Icon: "fire",
		Description: "Fire zones that chase you and spread.",
		Archetype:   ArchetypeZoneAttract,
		Levels:      []LevelStats{{Damage: 40, Amount: 4, Cooldown: 1.5, Area: 2.0, Speed: 3, Duration: 4.0}},
	},
}

var (
	weaponIndex    = indexWeapons(weapons)
	evolutionIndex = indexWeapons(evolutions)
)

func indexWeapons(list []*Weapon) map[string]*Weapon {
	m := make(map[string]*Weapon, len(list))
	for _, w := range list {
		m[w.Key] = w
	}
	return m
}

// BaseWeapons returns base weapon definitions in stable catalog order.
func BaseWeapons() []*Weapon {
	return weapons
}

// LookupWeapon finds a base or evolved weapon by key.
func LookupWeapon(key string) (*Weapon, bool) {
	if w, ok := weaponIndex[key]; ok {
		return w, true
	}
	w, ok := evolutionIndex[key]
	return w, ok
}

// IsEvolved reports whether key names an evolved weapon.
func IsEvolved(key string) bool {
	_, ok := evolutionIndex[key]
	return ok
}
