package mechanics

import (
	"context"
	"math"

	"github.com/dwbrown115/GameServerTestGame-sub004/internal/settings"
	"github.com/dwbrown115/GameServerTestGame-sub004/logging"
	loggingmechanics "github.com/dwbrown115/GameServerTestGame-sub004/logging/mechanics"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

// Drain converts damage reported by other mechanics into life steal for its
// owner. It is purely event driven: no timers, no colliders.
type Drain struct {
	ctx *contract.Context

	lifeStealRatio  float64
	lifeStealChance float64
	fallbackTag     string
}

// NewDrain normalizes the merged settings into a drain mechanic.
func NewDrain(s settings.Settings) *Drain {
	return &Drain{
		lifeStealRatio:  settings.Float(s, 0, 0, 10, "lifeStealRatio", "ratio"),
		lifeStealChance: settings.Float(s, 1, 0, 1, "lifeStealChance", "chance"),
		fallbackTag:     settings.String(s, "player", "fallbackOwnerTag"),
	}
}

// Initialize binds the attachment context. Called exactly once.
func (d *Drain) Initialize(ctx *contract.Context) {
	d.ctx = ctx
}

// Tick is a no-op; drain only reacts to reported damage.
func (d *Drain) Tick(dt float64) {
	contract.MustInitialized(d.ctx, contract.KindDrain, "Tick")
}

// ReportDamage credits the owner with a heal proportional to the damage that
// landed. A zero ratio or non-positive total is ignored; a chance below one
// gates the credit on a uniform roll (a chance of exactly zero always
// skips). Heals that round to zero are skipped.
func (d *Drain) ReportDamage(total int) {
	contract.MustInitialized(d.ctx, contract.KindDrain, "ReportDamage")
	if total <= 0 || d.lifeStealRatio <= 0 {
		return
	}
	if d.lifeStealChance < 1 {
		if d.lifeStealChance <= 0 {
			return
		}
		if d.ctx.Rand.Float64() > d.lifeStealChance {
			return
		}
	}
	heal := int(math.Round(float64(total) * d.lifeStealRatio))
	if heal == 0 {
		return
	}
	owner, ok := d.resolveOwner()
	if !ok {
		return
	}
	if owner.Heal(heal) {
		loggingmechanics.DrainHealed(context.Background(), d.ctx.Publisher, d.ctx.CurrentTick(),
			logging.EntityRef{ID: d.ctx.OwnerID, Kind: logging.EntityKindActor},
			loggingmechanics.DrainPayload{Reported: total, Healed: heal})
	}
}

// resolveOwner prefers the context owner's healing capability and falls back
// to a tagged lookup when the owner is gone or lacks one. The fallback is a
// deliberate resilience behavior; the tag is configurable rather than
// hardcoded.
func (d *Drain) resolveOwner() (contract.Healable, bool) {
	if owner, ok := d.ctx.World.ResolveHealable(d.ctx.OwnerID); ok {
		return owner, true
	}
	return d.ctx.World.FindTagged(d.fallbackTag)
}
