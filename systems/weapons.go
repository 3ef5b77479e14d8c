package systems

import (
	"github.com/pthm-cable/ratato/catalog"
	"github.com/pthm-cable/ratato/components"
	"github.com/pthm-cable/ratato/config"
)

// EffectiveStats applies the player's multipliers to a weapon's stat row.
func EffectiveStats(p *components.Player, w *components.WeaponInstance) catalog.LevelStats {
	s := w.Stats()
	s.Damage *= p.DamageMult
	s.Amount += p.ProjectileBonus
	s.Area *= p.AttackRange
	return s
}

// FireRate returns the combined cooldown speed multiplier.
func FireRate(p *components.Player, cfg *config.Config) float64 {
	rate := p.FireRate
	if p.Buffs.Speed > 0 {
		rate *= cfg.Buffs.SpeedFireRate
	}
	return rate
}

// UpdateWeapons advances cooldowns and fires every weapon that is ready.
// Auras are continuous and handled by UpdateAuras.
func (a *Arena) UpdateWeapons(dt float64) {
	rate := FireRate(a.Player, a.Cfg)
	for _, w := range a.Player.Weapons {
		if w.Def.Archetype == catalog.ArchetypeAura {
			continue
		}
		w.Cooldown -= dt * rate
		if w.Cooldown <= 0 {
			a.Fire(w)
			w.Cooldown = w.Stats().Cooldown
		}
	}
}

// UpdatePersistent advances orbit groups and auras.
func (a *Arena) UpdatePersistent(dt float64) {
	a.UpdateOrbits(dt)
	a.UpdateAuras()
	if a.Swing.Remaining > 0 {
		a.Swing.Remaining -= dt
	}
}
