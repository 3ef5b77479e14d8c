package catalog

// Stats holds the starting stat block of a character.
type Stats struct {
	MaxHP           float64
	Speed           float64
	DamageMult      float64
	Armor           float64
	Evasion         float64
	ProjectileBonus int
	FireRate        float64
	AttackRange     float64
	Shield          float64
	Bounce          int
	Lifesteal       float64
	MeleeRange      float64
}

// Character is a playable rat with a starter weapon.
type Character struct {
	Key           string
	Name          string
	Description   string
	Stats         Stats
	StarterWeapon string
}

var characters = []*Character{
	{
		Key: "brawler", Name: "Brawler", Description: "Tough and armored, fights up close.",
		Stats:         Stats{MaxHP: 500, Speed: 3.5, DamageMult: 1.0, Armor: 4, FireRate: 1.0, AttackRange: 0.9, Shield: 10, MeleeRange: 3.0},
		StarterWeapon: "tailWhip",
	},
	{
		Key: "sharpshooter", Name: "Sharpshooter", Description: "Hits hard from far away.",
		Stats:         Stats{MaxHP: 160, Speed: 4.0, DamageMult: 1.8, Evasion: 0.05, FireRate: 0.9, AttackRange: 2.0, MeleeRange: 1},
		StarterWeapon: "dagger",
	},
	{
		Key: "fleetfoot", Name: "Fleetfoot", Description: "Very fast, dodges often, shots bounce.",
		Stats:         Stats{MaxHP: 180, Speed: 7.0, DamageMult: 0.9, Evasion: 0.25, FireRate: 1.1, AttackRange: 1.0, Bounce: 2, MeleeRange: 1},
		StarterWeapon: "dagger",
	},
	{
		Key: "swordsman", Name: "Swordsman", Description: "Balanced melee fighter.",
		Stats:         Stats{MaxHP: 320, Speed: 5.0, DamageMult: 1.1, Armor: 1, Evasion: 0.10, ProjectileBonus: 2, FireRate: 1.3, AttackRange: 1.0, Shield: 5, MeleeRange: 3},
		StarterWeapon: "tailWhip",
	},
	{
		Key: "shogun", Name: "Shogun", Description: "Extra projectiles and armor.",
		Stats:         Stats{MaxHP: 280, Speed: 4.3, DamageMult: 1.1, Armor: 2, ProjectileBonus: 3, FireRate: 1.0, AttackRange: 1.0, MeleeRange: 1},
		StarterWeapon: "magicCheese",
	},
	{
		Key: "marksman", Name: "Marksman", Description: "Long range, precise damage.",
		Stats:         Stats{MaxHP: 200, Speed: 4.3, DamageMult: 1.3, Evasion: 0.05, FireRate: 0.9, AttackRange: 2.0, MeleeRange: 1},
		StarterWeapon: "dagger",
	},
	{
		Key: "minigunner", Name: "Minigunner", Description: "Fires constantly.",
		Stats:         Stats{MaxHP: 240, Speed: 4.7, DamageMult: 1.0, ProjectileBonus: 2, FireRate: 1.7, AttackRange: 2.0, MeleeRange: 1},
		StarterWeapon: "magicCheese",
	},
	{
		Key: "pyro", Name: "Pyro", Description: "Sets the ground on fire.",
		Stats:         Stats{MaxHP: 260, Speed: 4.5, DamageMult: 1.1, Evasion: 0.20, ProjectileBonus: 2, FireRate: 1.5, AttackRange: 0.7, MeleeRange: 1},
		StarterWeapon: "molotov",
	},
	{
		Key: "rocketRat", Name: "Rocket Rat", Description: "Slow and devastating.",
		Stats:         Stats{MaxHP: 400, Speed: 3.5, DamageMult: 2.0, Armor: 1, FireRate: 0.8, AttackRange: 1.0, Shield: 15, MeleeRange: 1},
		StarterWeapon: "axe",
	},
}

var characterIndex = func() map[string]*Character {
	m := make(map[string]*Character, len(characters))
	for _, c := range characters {
		m[c.Key] = c
	}
	return m
}()

// Characters returns all playable characters in menu order.
func Characters() []*Character {
	return characters
}

// LookupCharacter finds a character by key.
func LookupCharacter(key string) (*Character, bool) {
	c, ok := characterIndex[key]
	return c, ok
}
