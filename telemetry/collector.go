package telemetry

import "github.com/pthm-cable/ratato/components"

// Sample is the state observed at the end of a window.
type Sample struct {
	Tick        int
	Level       int
	Phase       int
	LiveEnemies int
	HPRatio     float64
	EnemyHP     []float64 // HP of every live enemy
}

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowSec   float64
	windowStart float64
	windowTick  int

	// Event counters for current window
	kills       []int // Indexed by components.Kind
	hits        int
	damageDealt float64
	playerHits  int
	damageTaken float64
	evades      int
	xpGained    float64
	levelUps    int
	pickups     int
	bosses      int
	detonations int
	evolutions  int
	minHPRatio  float64
}

// NewCollector creates a new stats collector.
// windowSec: how long each stats window lasts in session seconds
func NewCollector(windowSec float64) *Collector {
	if windowSec <= 0 {
		windowSec = 60
	}
	return &Collector{
		windowSec:  windowSec,
		kills:      make([]int, components.KindCount()),
		minHPRatio: 1,
	}
}

// Record folds one event into the current window.
func (c *Collector) Record(ev Event) {
	switch ev.Type {
	case EventEnemyHit:
		c.hits++
		c.damageDealt += ev.Amount
	case EventKill:
		if int(ev.Kind) < len(c.kills) {
			c.kills[ev.Kind]++
		}
	case EventPlayerHit:
		c.playerHits++
		c.damageTaken += ev.Amount
	case EventEvade:
		c.evades++
	case EventLevelUp:
		c.levelUps++
	case EventPickup:
		c.pickups++
		if ev.Label == components.PickupGem.String() {
			c.xpGained += ev.Amount
		}
	case EventBoss:
		c.bosses++
	case EventDetonation:
		c.detonations++
	case EventEvolve:
		c.evolutions++
	}
}

// ObserveHP tracks the lowest player HP ratio seen in the window.
func (c *Collector) ObserveHP(ratio float64) {
	c.minHPRatio = min(c.minHPRatio, ratio)
}

// ShouldFlush returns true if enough session time has passed to flush the window.
func (c *Collector) ShouldFlush(elapsed float64) bool {
	return elapsed-c.windowStart >= c.windowSec
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(elapsed float64, s Sample) WindowStats {
	var kills int
	for _, k := range c.kills {
		kills += k
	}
	var evadeRate float64
	if n := c.playerHits + c.evades; n > 0 {
		evadeRate = float64(c.evades) / float64(n)
	}
	var dps float64
	if span := elapsed - c.windowStart; span > 0 {
		dps = c.damageDealt / span
	}

	hpMean, hpP10, hpP50, hpP90 := ComputeHPStats(s.EnemyHP)

	stats := WindowStats{
		WindowStartTick: c.windowTick,
		WindowEndTick:   s.Tick,
		SimTimeSec:      elapsed,

		Level:       s.Level,
		Phase:       s.Phase,
		LiveEnemies: s.LiveEnemies,

		Kills:          kills,
		KillsDefault:   c.kills[components.KindDefault],
		KillsFast:      c.kills[components.KindFast],
		KillsTank:      c.kills[components.KindTank],
		KillsDetonator: c.kills[components.KindDetonator],
		KillsRanged:    c.kills[components.KindRanged],
		KillsBoss:      c.kills[components.KindBoss],

		Hits:        c.hits,
		DamageDealt: c.damageDealt,
		DPS:         dps,
		PlayerHits:  c.playerHits,
		DamageTaken: c.damageTaken,
		Evades:      c.evades,
		EvadeRate:   evadeRate,
		XPGained:    c.xpGained,
		LevelUps:    c.levelUps,
		Pickups:     c.pickups,
		Bosses:      c.bosses,
		Detonations: c.detonations,
		Evolutions:  c.evolutions,

		PlayerHPRatio: s.HPRatio,
		MinHPRatio:    min(c.minHPRatio, s.HPRatio),

		EnemyHPMean: hpMean,
		EnemyHPP10:  hpP10,
		EnemyHPP50:  hpP50,
		EnemyHPP90:  hpP90,
	}

	// Reset for next window
	c.windowStart = elapsed
	c.windowTick = s.Tick
	clear(c.kills)
	c.hits = 0
	c.damageDealt = 0
	c.playerHits = 0
	c.damageTaken = 0
	c.evades = 0
	c.xpGained = 0
	c.levelUps = 0
	c.pickups = 0
	c.bosses = 0
	c.detonations = 0
	c.evolutions = 0
	c.minHPRatio = 1

	return stats
}

// WindowSeconds returns the window length.
func (c *Collector) WindowSeconds() float64 {
	return c.windowSec
}
