package systems

import (
	"github.com/pthm-cable/ratato/catalog"
	"github.com/pthm-cable/ratato/components"
)

// UpdateAuras pulses every aura weapon. Each enemy is re-hit once its own
// timer for the weapon runs out; the timer length is the weapon cooldown.
func (a *Arena) UpdateAuras() {
	p := a.Player
	p.Auras = p.Auras[:0]

	for _, w := range p.Weapons {
		if w.Def.Archetype != catalog.ArchetypeAura {
			continue
		}
		s := EffectiveStats(p, w)
		radius := a.Cfg.Weapons.AuraRadius * s.Area
		key := w.Key()
		p.Auras = append(p.Auras, components.AuraState{Weapon: key, Radius: radius})

		strike := Strike{
			Weapon:    key,
			Damage:    s.Damage,
			Knockback: s.Knockback,
			Lifesteal: s.Lifesteal,
			Origin:    p.Pos,
		}
		for _, e := range a.EnemiesNear(p.Pos, radius) {
			if !e.CanHit(key) || !components.Overlaps(p.Pos, radius, e.Pos, e.Radius) {
				continue
			}
			a.HitEnemy(e, strike)
			e.ArmHit(key, s.Cooldown)
		}
	}
}
