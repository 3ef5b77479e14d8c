package catalog

// Effect identifies the stat a passive modifies.
type Effect uint8

const (
	EffectNone Effect = iota
	EffectDamage
	EffectArmor
	EffectMaxHPPercent
	EffectFireRate
	EffectRange
	EffectProjectiles
	EffectSpeedMultiplier
	EffectMagnet
	EffectLuck
	EffectXP
	EffectRegen
)

// Passive describes a stat item. Each level applies Amount once more.
type Passive struct {
	Key         string
	Name        string
	Description string
	Icon        string
	MaxLevel    int
	Effect      Effect
	Amount      float64
}

var passives = []*Passive{
	{Key: "spinach", Name: "Spinach", Description: "Increases damage by 10%.", Icon: "spinach", MaxLevel: 5, Effect: EffectDamage, Amount: 0.1},
	{Key: "armor", Name: "Armor", Description: "Reduces incoming damage by 1.", Icon: "armor", MaxLevel: 5, Effect: EffectArmor, Amount: 1},
	{Key: "emptyHeart", Name: "Hollow Heart", Description: "Increases max health by 20%.", Icon: "heart", MaxLevel: 5, Effect: EffectMaxHPPercent, Amount: 0.2},
	{Key: "emptyTome", Name: "Empty Tome", Description: "Increases fire rate by 8%.", Icon: "tome", MaxLevel: 5, Effect: EffectFireRate, Amount: 0.08},
	{Key: "candelabrador", Name: "Candelabrador", Description: "Increases area by 10%.", Icon: "candle", MaxLevel: 5, Effect: EffectRange, Amount: 0.1},
	{Key: "bracer", Name: "Bracer", Description: "Strengthens thrown weapons.", Icon: "bracer", MaxLevel: 5},
	{Key: "spellbinder", Name: "Spellbinder", Description: "Binds orbiting magic.", Icon: "spell", MaxLevel: 5},
	{Key: "duplicator", Name: "Duplicator", Description: "Fires one more projectile.", Icon: "ring", MaxLevel: 2, Effect: EffectProjectiles, Amount: 1},
	{Key: "wings", Name: "Wings", Description: "Increases movement speed by 10%.", Icon: "wings", MaxLevel: 5, Effect: EffectSpeedMultiplier, Amount: 1.1},
	{Key: "attractorb", Name: "Attractorb", Description: "Increases pickup range.", Icon: "magnet", MaxLevel: 5, Effect: EffectMagnet, Amount: 30},
	{Key: "clover", Name: "Clover", Description: "Increases luck by 10%.", Icon: "clover", MaxLevel: 5, Effect: EffectLuck, Amount: 0.1},
	{Key: "crown", Name: "Crown", Description: "Increases experience gain by 8%.", Icon: "crown", MaxLevel: 5, Effect: EffectXP, Amount: 0.08},
	{Key: "pummarola", Name: "Pummarola", Description: "Regenerates 0.2 HP per second.", Icon: "tomato", MaxLevel: 5, Effect: EffectRegen, Amount: 0.2},
}

var passiveIndex = func() map[string]*Passive {
	m := make(map[string]*Passive, len(passives))
	for _, p := range passives {
		m[p.Key] = p
	}
	return m
}()

// Passives returns passive definitions in stable catalog order.
func Passives() []*Passive {
	return passives
}

// LookupPassive finds a passive by key.
func LookupPassive(key string) (*Passive, bool) {
	p, ok := passiveIndex[key]
	return p, ok
}
