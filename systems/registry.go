package systems

import "github.com/pthm-cable/ratato/telemetry"

// Stage describes a timed tick stage for the perf panel and logs.
type Stage struct {
	Phase       telemetry.Phase
	Name        string
	Description string
}

// stages lists every timed stage in tick order.
var stages = []Stage{
	{telemetry.PhasePlayer, "Player", "Regen, buff timers and movement"},
	{telemetry.PhaseSpawn, "Spawn", "Phase selection, enemies and bosses"},
	{telemetry.PhaseEnemies, "Enemies", "Chase, fuse and ranged behavior"},
	{telemetry.PhaseSpatialGrid, "Spatial Grid", "Rebuilds the broad-phase grid"},
	{telemetry.PhaseWeapons, "Weapons", "Cooldowns and firing"},
	{telemetry.PhasePersistent, "Orbit/Aura", "Satellites and aura pulses"},
	{telemetry.PhaseProjectiles, "Projectiles", "Moves player and enemy shots"},
	{telemetry.PhaseZones, "Zones", "Ground zone growth and damage"},
	{telemetry.PhaseParticles, "Particles", "Cosmetic bursts"},
	{telemetry.PhaseCollision, "Collision", "Projectile, contact and enemy fire hits"},
	{telemetry.PhasePickups, "Pickups", "Magnet, collection and offers"},
	{telemetry.PhaseCleanup, "Cleanup", "Compacts dead entities"},
	{telemetry.PhaseTelemetry, "Telemetry", "Window stats and bookmarks"},
}

// SystemRegistry maps phase keys to display names.
type SystemRegistry struct {
	stages []Stage
	byKey  map[string]int
}

// NewSystemRegistry creates a registry of every tick stage.
func NewSystemRegistry() *SystemRegistry {
	r := &SystemRegistry{stages: stages, byKey: make(map[string]int, len(stages))}
	for i, s := range stages {
		r.byKey[s.Phase.String()] = i
	}
	return r
}

// Stages returns the stages in tick order.
func (r *SystemRegistry) Stages() []Stage {
	return r.stages
}

// IDs returns the phase keys in tick order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.stages))
	for i, s := range r.stages {
		ids[i] = s.Phase.String()
	}
	return ids
}

// GetName returns the display name for a phase key, or the key itself.
func (r *SystemRegistry) GetName(key string) string {
	if i, ok := r.byKey[key]; ok {
		return r.stages[i].Name
	}
	return key
}
