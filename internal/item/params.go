package item

// Params is the flat record of tunables for one item request. It is
// immutable for the duration of a generation pass; builders and modifier
// strategies derive per-mechanic settings from it.
type Params struct {
	AuraRadius            float64
	DamageInterval        float64
	DamagePerTick         int
	DebuffDuration        float64
	AllowStacking         bool
	DestroyChance         float64
	DestroyChanceIncrease float64
	IdleLifetime          float64
	LifeStealRatio        float64
	LifeStealChance       float64
	Debug                 bool
}

// DefaultParams returns a baseline parameter set suitable for the demo loop.
func DefaultParams() Params {
	return Params{
		AuraRadius:            80,
		DamageInterval:        0.5,
		DamagePerTick:         3,
		DebuffDuration:        3,
		DestroyChance:         0.2,
		DestroyChanceIncrease: 0.1,
		IdleLifetime:          6,
		LifeStealRatio:        0.5,
		LifeStealChance:       1,
	}
}
