// Package telemetry provides run statistics, bookmarking, and structured output.
package telemetry

import "github.com/pthm-cable/ratato/components"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventEnemyHit EventType = iota
	EventKill
	EventPlayerHit
	EventEvade
	EventLevelUp
	EventPickup
	EventBoss
	EventDetonation
	EventEvolve
	EventEnvironment
	EventGameOver
)

var eventTypeNames = [...]string{
	EventEnemyHit:    "enemy_hit",
	EventKill:        "kill",
	EventPlayerHit:   "player_hit",
	EventEvade:       "evade",
	EventLevelUp:     "level_up",
	EventPickup:      "pickup",
	EventBoss:        "boss",
	EventDetonation:  "detonation",
	EventEvolve:      "evolve",
	EventEnvironment: "environment",
	EventGameOver:    "game_over",
}

// String returns the snake_case event name.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// MarshalText encodes the event name for JSON consumers.
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Event represents a single telemetry event.
type Event struct {
	Type EventType `json:"type"`
	Time float64   `json:"time"` // Session seconds

	// Optional fields depending on event type
	Kind   components.Kind `json:"-"`                // Enemy kind for hits and kills
	Amount float64         `json:"amount,omitempty"` // Damage, XP or level
	Label  string          `json:"label,omitempty"`  // Weapon, pickup or evolution key
}

// NewKillEvent creates a kill event.
func NewKillEvent(t float64, e *components.Enemy) Event {
	return Event{Type: EventKill, Time: t, Kind: e.Kind, Amount: e.XP, Label: e.Kind.String()}
}

// NewEnemyHitEvent creates an event for damage dealt to an enemy.
func NewEnemyHitEvent(t float64, e *components.Enemy, applied float64, weapon string) Event {
	return Event{Type: EventEnemyHit, Time: t, Kind: e.Kind, Amount: applied, Label: weapon}
}

// NewPlayerHitEvent creates an event for damage taken. Evaded hits carry
// EventEvade instead.
func NewPlayerHitEvent(t float64, applied float64, source string, evaded bool) Event {
	if evaded {
		return Event{Type: EventEvade, Time: t, Label: source}
	}
	return Event{Type: EventPlayerHit, Time: t, Amount: applied, Label: source}
}

// NewPickupEvent creates a pickup collection event.
func NewPickupEvent(t float64, kind components.PickupKind, value float64) Event {
	return Event{Type: EventPickup, Time: t, Amount: value, Label: kind.String()}
}
