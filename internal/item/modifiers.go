package item

import (
	"github.com/dwbrown115/GameServerTestGame-sub004/internal/mechanics"
	"github.com/dwbrown115/GameServerTestGame-sub004/internal/settings"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

// ModifierStrategy decides whether a secondary mechanic is compatible with
// the built payload and, if so, attaches it with settings derived from the
// item parameters. A refusal is logged and never aborts the build.
type ModifierStrategy interface {
	Kind() contract.Kind
	Apply(g *Generator, payloadID string, params Params) bool
}

func defaultStrategies() map[contract.Kind]ModifierStrategy {
	strategies := map[contract.Kind]ModifierStrategy{}
	for _, strategy := range []ModifierStrategy{
		bounceStrategy{},
		damageOverTimeStrategy{},
		drainStrategy{},
		auraStrategy{},
		rippleStrategy{},
	} {
		strategies[strategy.Kind()] = strategy
	}
	return strategies
}

func payloadKind(g *Generator, payloadID string) (string, bool) {
	payload, ok := g.World().Payload(payloadID)
	if !ok {
		return "", false
	}
	return payload.Kind, true
}

type bounceStrategy struct{}

func (bounceStrategy) Kind() contract.Kind { return contract.KindBounce }

func (bounceStrategy) Apply(g *Generator, payloadID string, params Params) bool {
	kind, ok := payloadKind(g, payloadID)
	if !ok {
		return false
	}
	if kind == PayloadWhip {
		g.Refuse(ownerOf(g, payloadID), contract.KindBounce, kind, "a whip arc cannot bounce")
		return false
	}
	derived := settings.Merge(g.CatalogSettings(string(contract.KindBounce)), settings.Settings{
		"destroyChance":         params.DestroyChance,
		"destroyChanceIncrease": params.DestroyChanceIncrease,
		"idleLifetime":          params.IdleLifetime,
	})
	return g.Attach(payloadID, contract.KindBounce, mechanics.NewBounce(derived))
}

type damageOverTimeStrategy struct{}

func (damageOverTimeStrategy) Kind() contract.Kind { return contract.KindDamageOverTime }

func (damageOverTimeStrategy) Apply(g *Generator, payloadID string, params Params) bool {
	if _, ok := payloadKind(g, payloadID); !ok {
		return false
	}
	derived := settings.Merge(g.CatalogSettings(string(contract.KindDamageOverTime)), settings.Settings{
		"damagePerTick":  params.DamagePerTick,
		"damageInterval": params.DamageInterval,
		"duration":       params.DebuffDuration,
		"allowStacking":  params.AllowStacking,
	})
	return g.Attach(payloadID, contract.KindDamageOverTime, mechanics.NewDamageOverTime(derived))
}

type drainStrategy struct{}

func (drainStrategy) Kind() contract.Kind { return contract.KindDrain }

func (drainStrategy) Apply(g *Generator, payloadID string, params Params) bool {
	if _, ok := payloadKind(g, payloadID); !ok {
		return false
	}
	derived := settings.Merge(g.CatalogSettings(string(contract.KindDrain)), settings.Settings{
		"lifeStealRatio":  params.LifeStealRatio,
		"lifeStealChance": params.LifeStealChance,
	})
	return g.Attach(payloadID, contract.KindDrain, mechanics.NewDrain(derived))
}

type auraStrategy struct{}

func (auraStrategy) Kind() contract.Kind { return contract.KindAura }

func (auraStrategy) Apply(g *Generator, payloadID string, params Params) bool {
	kind, ok := payloadKind(g, payloadID)
	if !ok {
		return false
	}
	if kind == PayloadAura {
		g.Refuse(ownerOf(g, payloadID), contract.KindAura, kind, "aura payload already carries an aura core")
		return false
	}
	derived := settings.Merge(g.CatalogSettings(string(contract.KindAura)), settings.Settings{
		"radius":         params.AuraRadius,
		"damageInterval": params.DamageInterval,
		"damage":         params.DamagePerTick,
	})
	return g.Attach(payloadID, contract.KindAura, mechanics.NewAura(derived))
}

type rippleStrategy struct{}

func (rippleStrategy) Kind() contract.Kind { return contract.KindRippleOnHit }

func (rippleStrategy) Apply(g *Generator, payloadID string, params Params) bool {
	if _, ok := payloadKind(g, payloadID); !ok {
		return false
	}
	derived := g.CatalogSettings(string(contract.KindRippleOnHit))
	if g.Debug() {
		derived = settings.Merge(derived, settings.Settings{"scale": 2.0})
	}
	return g.Attach(payloadID, contract.KindRippleOnHit, mechanics.NewRippleOnHit(derived))
}

func ownerOf(g *Generator, payloadID string) string {
	payload, ok := g.World().Payload(payloadID)
	if !ok {
		return ""
	}
	return payload.OwnerID
}
