package mechanics

import (
	"github.com/dwbrown115/GameServerTestGame-sub004/internal/settings"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

// DefaultRegistry returns the built-in mechanic definitions. The item layer
// indexes it once and instantiates variants by kind.
func DefaultRegistry() contract.Registry {
	return contract.Registry{
		{Kind: contract.KindBounce, New: func(s map[string]any) contract.Mechanic {
			return NewBounce(settings.Settings(s))
		}},
		{Kind: contract.KindDamageOverTime, New: func(s map[string]any) contract.Mechanic {
			return NewDamageOverTime(settings.Settings(s))
		}},
		{Kind: contract.KindDrain, New: func(s map[string]any) contract.Mechanic {
			return NewDrain(settings.Settings(s))
		}},
		{Kind: contract.KindAura, New: func(s map[string]any) contract.Mechanic {
			return NewAura(settings.Settings(s))
		}},
		{Kind: contract.KindRippleOnHit, New: func(s map[string]any) contract.Mechanic {
			return NewRippleOnHit(settings.Settings(s))
		}},
	}
}
