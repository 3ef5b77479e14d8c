package systems

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/ratato/catalog"
	"github.com/pthm-cable/ratato/components"
	"github.com/pthm-cable/ratato/config"
)

// OptionKind identifies what a level-up option grants.
type OptionKind uint8

const (
	OptionUpgradeWeapon OptionKind = iota
	OptionNewWeapon
	OptionUpgradePassive
	OptionNewPassive
	OptionHeal
	OptionCurrency
	OptionEvolve
)

var optionKindNames = [...]string{
	OptionUpgradeWeapon:  "upgrade_weapon",
	OptionNewWeapon:      "new_weapon",
	OptionUpgradePassive: "upgrade_passive",
	OptionNewPassive:     "new_passive",
	OptionHeal:           "heal",
	OptionCurrency:       "currency",
	OptionEvolve:         "evolve",
}

func (k OptionKind) String() string {
	if int(k) < len(optionKindNames) {
		return optionKindNames[k]
	}
	return "unknown"
}

// Option is one upgrade choice. Level is the level the item reaches.
type Option struct {
	Kind        OptionKind
	Key         string
	Name        string
	Description string
	Icon        string
	Level       int
	Amount      float64 // Heal HP or currency for fallback options
}

// GainXP adds amount scaled by the player's XP multiplier and returns the
// number of levels gained.
func GainXP(p *components.Player, amount float64, cfg *config.ProgressionConfig) int {
	p.XP += amount * p.XPMultiplier
	levels := 0
	for p.XP >= p.XPToNext {
		p.XP -= p.XPToNext
		p.Level++
		p.XPToNext += cfg.ThresholdBase + float64(p.Level)*cfg.ThresholdPerLevel
		levels++
	}
	return levels
}

// Candidates lists every eligible upgrade in catalog order.
func Candidates(p *components.Player) []Option {
	var out []Option
	for _, w := range p.Weapons {
		if !w.Evolved && w.Level < catalog.MaxLevel {
			out = append(out, weaponOption(OptionUpgradeWeapon, w.Def, w.Level+1))
		}
	}
	if len(p.Weapons) < p.MaxWeapons {
		for _, def := range catalog.BaseWeapons() {
			if p.Weapon(def.Key) == nil {
				out = append(out, weaponOption(OptionNewWeapon, def, 1))
			}
		}
	}
	for _, key := range p.PassiveKeys {
		pi := p.Passives[key]
		if pi.Level < pi.Def.MaxLevel {
			out = append(out, passiveOption(OptionUpgradePassive, pi.Def, pi.Level+1))
		}
	}
	if len(p.Passives) < p.MaxPassives {
		for _, def := range catalog.Passives() {
			if p.Passive(def.Key) == nil {
				out = append(out, passiveOption(OptionNewPassive, def, 1))
			}
		}
	}
	return out
}

func weaponOption(kind OptionKind, def *catalog.Weapon, level int) Option {
	return Option{Kind: kind, Key: def.Key, Name: def.Name, Description: def.Description, Icon: def.Icon, Level: level}
}

func passiveOption(kind OptionKind, def *catalog.Passive, level int) Option {
	return Option{Kind: kind, Key: def.Key, Name: def.Name, Description: def.Description, Icon: def.Icon, Level: level}
}

// FallbackOptions are offered when nothing else is eligible.
func FallbackOptions(cfg *config.ProgressionConfig) []Option {
	return []Option{
		{Kind: OptionHeal, Key: "heal", Name: "Cheese Snack", Description: "Restore health.", Icon: "heal", Amount: cfg.FallbackHeal},
		{Kind: OptionCurrency, Key: "gold", Name: "Gold Pouch", Description: "Gain gold.", Icon: "gold", Amount: float64(cfg.FallbackCurrency)},
	}
}

// GenerateOffers shuffles the candidates and keeps the first cfg.Options.
func GenerateOffers(p *components.Player, cfg *config.ProgressionConfig, rng *rand.Rand) []Option {
	opts := Candidates(p)
	if len(opts) == 0 {
		opts = FallbackOptions(cfg)
	}
	rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	if len(opts) > cfg.Options {
		opts = opts[:cfg.Options]
	}
	return opts
}

// ApplyOption commits o. It reports false when o no longer applies.
func ApplyOption(p *components.Player, o Option) bool {
	switch o.Kind {
	case OptionUpgradeWeapon:
		return UpgradeWeapon(p, o.Key)
	case OptionNewWeapon:
		return AddWeapon(p, o.Key)
	case OptionUpgradePassive:
		return UpgradePassive(p, o.Key)
	case OptionNewPassive:
		return AddPassive(p, o.Key)
	case OptionHeal:
		p.Heal(o.Amount)
		return true
	case OptionCurrency:
		p.Currency += int(o.Amount)
		return true
	}
	return false
}

// AddWeapon gives the player a new base weapon at level 1.
func AddWeapon(p *components.Player, key string) bool {
	def, ok := catalog.LookupWeapon(key)
	if !ok || catalog.IsEvolved(key) || p.Weapon(key) != nil || len(p.Weapons) >= p.MaxWeapons {
		return false
	}
	p.Weapons = append(p.Weapons, &components.WeaponInstance{BaseKey: key, Level: 1, Def: def})
	return true
}

// UpgradeWeapon raises a held weapon one level. Evolved weapons and
// weapons at the level cap are left unchanged.
func UpgradeWeapon(p *components.Player, key string) bool {
	w := p.Weapon(key)
	if w == nil || w.Evolved || w.Level >= catalog.MaxLevel {
		return false
	}
	w.Level++
	return true
}

// AddPassive gives the player a new passive and applies its first level.
func AddPassive(p *components.Player, key string) bool {
	def, ok := catalog.LookupPassive(key)
	if !ok || p.Passive(key) != nil || len(p.Passives) >= p.MaxPassives {
		return false
	}
	p.Passives[key] = &components.PassiveInstance{Level: 1, Def: def}
	p.PassiveKeys = append(p.PassiveKeys, key)
	applyPassive(p, def)
	return true
}

// UpgradePassive raises a held passive one level and applies it again.
func UpgradePassive(p *components.Player, key string) bool {
	pi := p.Passive(key)
	if pi == nil || pi.Level >= pi.Def.MaxLevel {
		return false
	}
	pi.Level++
	applyPassive(p, pi.Def)
	return true
}

func applyPassive(p *components.Player, def *catalog.Passive) {
	v := def.Amount
	switch def.Effect {
	case catalog.EffectDamage:
		p.DamageMult += v
	case catalog.EffectArmor:
		p.Armor += v
	case catalog.EffectMaxHPPercent:
		gain := p.MaxHP * v
		p.MaxHP += gain
		p.Heal(gain)
	case catalog.EffectFireRate:
		p.FireRate += v
	case catalog.EffectRange:
		p.AttackRange += v
	case catalog.EffectProjectiles:
		p.ProjectileBonus += int(v)
	case catalog.EffectSpeedMultiplier:
		p.Speed *= v
	case catalog.EffectMagnet:
		p.Magnet += v
	case catalog.EffectLuck:
		p.Luck += v
	case catalog.EffectXP:
		p.XPMultiplier += v
	case catalog.EffectRegen:
		p.Regen += v
	}
}

// EvolveCandidate returns the first held weapon that is maxed, not yet
// evolved, and whose required passive is held.
func EvolveCandidate(p *components.Player) *components.WeaponInstance {
	for _, w := range p.Weapons {
		if w.Evolved || w.Level < catalog.MaxLevel || w.Def.EvolvesTo == "" {
			continue
		}
		if p.Passive(w.Def.RequiredPassive) != nil {
			return w
		}
	}
	return nil
}

// Evolve swaps w to its evolved definition. It cannot be undone.
func Evolve(w *components.WeaponInstance) bool {
	if w.Evolved {
		return false
	}
	def, ok := catalog.LookupWeapon(w.Def.EvolvesTo)
	if !ok {
		return false
	}
	w.Def = def
	w.Evolved = true
	w.Cooldown = 0
	return true
}

// ChestReward describes what a chest granted.
type ChestReward struct {
	Evolved  *components.WeaponInstance
	Upgrades []Option
	Currency int
}

// Options lists what the chest granted as claim entries. They are
// already applied and must not be passed to ApplyOption.
func (r ChestReward) Options() []Option {
	switch {
	case r.Evolved != nil:
		d := r.Evolved.Def
		return []Option{{Kind: OptionEvolve, Key: r.Evolved.Key(), Name: d.Name, Description: d.Description, Icon: d.Icon, Level: r.Evolved.Level}}
	case len(r.Upgrades) > 0:
		return r.Upgrades
	}
	return []Option{{
		Kind: OptionCurrency, Key: "currency", Name: "Bag of Cheese",
		Description: fmt.Sprintf("+%d cheese", r.Currency), Icon: "$", Amount: float64(r.Currency),
	}}
}

// OpenChest evolves the first eligible weapon. Otherwise it grants up to
// cfg.ChestUpgrades random upgrades to held items, or currency when none
// are possible.
func OpenChest(p *components.Player, cfg *config.ProgressionConfig, rng *rand.Rand) ChestReward {
	var r ChestReward
	if w := EvolveCandidate(p); w != nil && Evolve(w) {
		r.Evolved = w
		return r
	}

	for range cfg.ChestUpgrades {
		held := heldUpgrades(p)
		if len(held) == 0 {
			break
		}
		o := held[rng.Intn(len(held))]
		if ApplyOption(p, o) {
			r.Upgrades = append(r.Upgrades, o)
		}
	}
	if len(r.Upgrades) == 0 {
		r.Currency = cfg.ChestFallbackCurrency
		p.Currency += r.Currency
	}
	return r
}

// heldUpgrades lists upgrades for items the player already holds.
func heldUpgrades(p *components.Player) []Option {
	var out []Option
	for _, o := range Candidates(p) {
		if o.Kind == OptionUpgradeWeapon || o.Kind == OptionUpgradePassive {
			out = append(out, o)
		}
	}
	return out
}
