// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	World       WorldConfig       `yaml:"world"`
	Loop        LoopConfig        `yaml:"loop"`
	Player      PlayerConfig      `yaml:"player"`
	Combat      CombatConfig      `yaml:"combat"`
	Enemies     EnemiesConfig     `yaml:"enemies"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Drops       DropsConfig       `yaml:"drops"`
	Buffs       BuffsConfig       `yaml:"buffs"`
	Weapons     WeaponsConfig     `yaml:"weapons"`
	Zones       ZonesConfig       `yaml:"zones"`
	Progression ProgressionConfig `yaml:"progression"`
	Particles   ParticlesConfig   `yaml:"particles"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
	HighScore   HighScoreConfig   `yaml:"highscore"`
	Spectate    SpectateConfig    `yaml:"spectate"`
	Audio       AudioConfig       `yaml:"audio"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the circular arena dimensions.
// The world is a disc of Radius centered on the origin.
type WorldConfig struct {
	Radius         float64             `yaml:"radius"`
	ViewportRadius float64             `yaml:"viewport_radius"`
	GridCellSize   float64             `yaml:"grid_cell_size"`
	Obstacles      ObstaclesConfig     `yaml:"obstacles"`
	SafePlacement  SafePlacementConfig `yaml:"safe_placement"`
}

// ObstaclesConfig controls the static obstacles placed at session start.
type ObstaclesConfig struct {
	Count     int     `yaml:"count"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	Clearance float64 `yaml:"clearance"` // Added to radius during placement search
}

// SafePlacementConfig bounds the search for a free spawn point.
type SafePlacementConfig struct {
	Attempts       int     `yaml:"attempts"`
	ObstacleMargin float64 `yaml:"obstacle_margin"`
}

// LoopConfig holds tick timing parameters.
type LoopConfig struct {
	MaxDelta     float64 `yaml:"max_delta"`     // Seconds; frame deltas are clamped to this
	ReferenceFPS float64 `yaml:"reference_fps"` // Speeds are in units per reference frame
}

// PlayerConfig holds player defaults not covered by the character table.
type PlayerConfig struct {
	Radius           float64 `yaml:"radius"`
	MaxWeapons       int     `yaml:"max_weapons"`
	MaxPassives      int     `yaml:"max_passives"`
	XPToNext         float64 `yaml:"xp_to_next"`
	Magnet           float64 `yaml:"magnet"`
	Luck             float64 `yaml:"luck"`
	XPMultiplier     float64 `yaml:"xp_multiplier"`
	ContactPush      float64 `yaml:"contact_push"` // Enemy push-back after contact damage
	DefaultCharacter string  `yaml:"default_character"`
}

// CombatConfig holds damage pipeline parameters.
type CombatConfig struct {
	SlowFactor           float64            `yaml:"slow_factor"`
	MeleeKnockbackFactor float64            `yaml:"melee_knockback_factor"`
	ExplosiveRadius      float64            `yaml:"explosive_radius"`
	ExplosiveFraction    float64            `yaml:"explosive_fraction"`
	EvasionScale         map[string]float64 `yaml:"evasion_scale"` // Per damage source, keyed by source name
}

// EnemiesConfig holds enemy tuning shared across kinds.
type EnemiesConfig struct {
	HPScale       float64         `yaml:"hp_scale"` // Balance knob applied on top of the HP curve
	SpawnMargin   float64         `yaml:"spawn_margin"`
	SpawnAttempts int             `yaml:"spawn_attempts"`
	WorldMargin   float64         `yaml:"world_margin"`
	Detonator     DetonatorConfig `yaml:"detonator"`
	Ranged        RangedConfig    `yaml:"ranged"`
	Boss          BossConfig      `yaml:"boss"`
}

// DetonatorConfig holds fuse and blast parameters.
type DetonatorConfig struct {
	TriggerRange    float64 `yaml:"trigger_range"`
	Fuse            float64 `yaml:"fuse"` // Seconds
	DamageBase      float64 `yaml:"damage_base"`
	DamagePerFactor float64 `yaml:"damage_per_factor"`
	Radius          float64 `yaml:"radius"`
	Collateral      float64 `yaml:"collateral"` // Fraction of blast damage dealt to other enemies
}

// RangedConfig holds ranged enemy behavior.
type RangedConfig struct {
	PreferredDistance float64 `yaml:"preferred_distance"`
	FireRange         float64 `yaml:"fire_range"`
	FireInterval      float64 `yaml:"fire_interval"`
	ProjectileSpeed   float64 `yaml:"projectile_speed"`
	ProjectileRadius  float64 `yaml:"projectile_radius"`
}

// BossConfig holds boss cadence and scaling.
type BossConfig struct {
	First    float64 `yaml:"first"`    // Seconds until the first boss
	Interval float64 `yaml:"interval"` // Seconds between bosses
	Margin   float64 `yaml:"margin"`   // Distance inside the world edge
	BaseHP   float64 `yaml:"base_hp"`
	BaseXP   float64 `yaml:"base_xp"`
}

// SpawnConfig holds the spawn phase table.
type SpawnConfig struct {
	EnvironmentInterval float64       `yaml:"environment_interval"`
	Environments        int           `yaml:"environments"`
	Phases              []PhaseConfig `yaml:"phases"`
}

// PhaseConfig is one row of the spawn phase table. The window is [Start, End).
type PhaseConfig struct {
	Start    float64  `yaml:"start"`
	End      float64  `yaml:"end"`
	Interval float64  `yaml:"interval"`
	Cap      int      `yaml:"cap"`
	Kinds    []string `yaml:"kinds"`
}

// DropsConfig holds kill-reward drop chances and pickup effects.
type DropsConfig struct {
	HealthChance     float64      `yaml:"health_chance"`
	BombChance       float64      `yaml:"bomb_chance"`
	ExplosiveChance  float64      `yaml:"explosive_chance"`
	IceChance        float64      `yaml:"ice_chance"`
	SpeedChance      float64      `yaml:"speed_chance"`
	HealthHeal       float64      `yaml:"health_heal"`
	BombDamage       float64      `yaml:"bomb_damage"`
	BombBossFraction float64      `yaml:"bomb_boss_fraction"`
	BombPush         float64      `yaml:"bomb_push"`
	GemPull          float64      `yaml:"gem_pull"` // Units per reference frame
	PickupRadius     float64      `yaml:"pickup_radius"`
	Initial          InitialDrops `yaml:"initial"`
}

// InitialDrops lists pickups scattered at session start.
type InitialDrops struct {
	Health int `yaml:"health"`
	Ice    int `yaml:"ice"`
	Speed  int `yaml:"speed"`
}

// BuffsConfig holds buff durations in seconds.
type BuffsConfig struct {
	Explosive     float64 `yaml:"explosive"`
	Ice           float64 `yaml:"ice"`
	Speed         float64 `yaml:"speed"`
	SpeedFireRate float64 `yaml:"speed_fire_rate"`
}

// WeaponsConfig holds archetype geometry shared by all weapons.
type WeaponsConfig struct {
	ProjectileTravel     float64 `yaml:"projectile_travel"`
	MeleeRadius          float64 `yaml:"melee_radius"`
	MeleeArc             float64 `yaml:"melee_arc"` // Full arc in radians
	FacingSpread         float64 `yaml:"facing_spread"`
	UpwardSpread         float64 `yaml:"upward_spread"`
	Gravity              float64 `yaml:"gravity"` // Velocity gain in units per frame, per second
	SpiralPeriod         float64 `yaml:"spiral_period"`
	SpiralCurl           float64 `yaml:"spiral_curl"` // Radians per second
	OrbitRadius          float64 `yaml:"orbit_radius"`
	SatelliteRadius      float64 `yaml:"satellite_radius"`
	OrbitHitCooldown     float64 `yaml:"orbit_hit_cooldown"`
	UnboundedDuration    float64 `yaml:"unbounded_duration"` // Orbit durations at or above this never expire
	AuraRadius           float64 `yaml:"aura_radius"`
	ZoneOffset           float64 `yaml:"zone_offset"`
	ZoneRadius           float64 `yaml:"zone_radius"`
	ZoneAttractGrowth    float64 `yaml:"zone_attract_growth"`     // Fraction of initial radius per second
	ZoneAttractMaxGrowth float64 `yaml:"zone_attract_max_growth"` // Cap as a multiple of initial radius
}

// ZonesConfig holds ground zone damage timing.
type ZonesConfig struct {
	TickInterval float64 `yaml:"tick_interval"`
}

// ProgressionConfig holds leveling and reward parameters.
type ProgressionConfig struct {
	Options               int     `yaml:"options"`
	ThresholdBase         float64 `yaml:"threshold_base"`
	ThresholdPerLevel     float64 `yaml:"threshold_per_level"`
	FallbackHeal          float64 `yaml:"fallback_heal"`
	FallbackCurrency      int     `yaml:"fallback_currency"`
	ChestUpgrades         int     `yaml:"chest_upgrades"`
	ChestFallbackCurrency int     `yaml:"chest_fallback_currency"`
}

// ParticlesConfig holds cosmetic particle parameters.
type ParticlesConfig struct {
	Max   int     `yaml:"max"`
	Burst int     `yaml:"burst"`
	Life  float64 `yaml:"life"`
	Speed float64 `yaml:"speed"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"`
}

// HighScoreConfig holds high score persistence settings.
type HighScoreConfig struct {
	Path  string `yaml:"path"`
	Table string `yaml:"table"`
}

// SpectateConfig holds spectator stream settings.
type SpectateConfig struct {
	BroadcastInterval float64 `yaml:"broadcast_interval"`
}

// AudioConfig holds audio cue settings.
type AudioConfig struct {
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // log2 gain
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	FrameTime    float64 // Seconds per reference frame
	LastPhaseEnd float64 // End of the last phase window
	BossEvery    float64 // Boss interval, never zero
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

func (c *Config) validate() error {
	if c.World.Radius <= 0 {
		return fmt.Errorf("world.radius must be positive, got %v", c.World.Radius)
	}
	if c.World.GridCellSize <= 0 {
		return fmt.Errorf("world.grid_cell_size must be positive, got %v", c.World.GridCellSize)
	}
	if len(c.Spawn.Phases) == 0 {
		return fmt.Errorf("spawn.phases must not be empty")
	}
	for i, p := range c.Spawn.Phases {
		if p.End <= p.Start {
			return fmt.Errorf("spawn.phases[%d]: end %v must be after start %v", i, p.End, p.Start)
		}
		if len(p.Kinds) == 0 {
			return fmt.Errorf("spawn.phases[%d]: kinds must not be empty", i)
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Loop.ReferenceFPS <= 0 {
		c.Loop.ReferenceFPS = 60
	}
	c.Derived.FrameTime = 1 / c.Loop.ReferenceFPS

	// Phase lookup assumes ascending start times
	sort.SliceStable(c.Spawn.Phases, func(i, j int) bool {
		return c.Spawn.Phases[i].Start < c.Spawn.Phases[j].Start
	})
	c.Derived.LastPhaseEnd = c.Spawn.Phases[len(c.Spawn.Phases)-1].End

	c.Derived.BossEvery = c.Enemies.Boss.Interval
	if c.Derived.BossEvery <= 0 {
		c.Derived.BossEvery = 300
	}

	if c.Combat.EvasionScale == nil {
		c.Combat.EvasionScale = map[string]float64{}
	}
	if c.Progression.Options <= 0 {
		c.Progression.Options = 3
	}
}

// EvasionScaleFor returns the evasion multiplier for a damage source name.
// Unknown sources use full evasion.
func (c *Config) EvasionScaleFor(source string) float64 {
	if s, ok := c.Combat.EvasionScale[source]; ok {
		return s
	}
	return 1
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
