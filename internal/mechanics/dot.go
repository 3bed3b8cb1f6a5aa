package mechanics

import (
	"github.com/dwbrown115/GameServerTestGame-sub004/internal/settings"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

// DamageOverTime is stateless at the mechanic level: it only knows how to
// apply its configured debuff to a target. The per-target stack state
// lives in the target's debuff controller, independent of which mechanic
// created it.
type DamageOverTime struct {
	ctx *contract.Context

	damagePerTick int
	tickInterval  float64
	duration      float64
	effectID      string
	allowStacking bool

	drain contract.DamageReporter
}

// NewDamageOverTime normalizes the merged settings into a damage-over-time
// mechanic.
func NewDamageOverTime(s settings.Settings) *DamageOverTime {
	return &DamageOverTime{
		damagePerTick: settings.Damage(s, 1, "damagePerTick", "damage"),
		tickInterval:  settings.Interval(s, 0.5, 0, "damageInterval", "interval"),
		duration:      settings.Duration(s, 3, "duration", "debuffDuration"),
		effectID:      settings.String(s, "dot", "effectId", "debuffId"),
		allowStacking: settings.Bool(s, false, "allowStacking", "stacking"),
	}
}

// Initialize binds the attachment context. Called exactly once.
func (d *DamageOverTime) Initialize(ctx *contract.Context) {
	d.ctx = ctx
}

// Tick is a no-op; the target-side controller owns all timed state.
func (d *DamageOverTime) Tick(dt float64) {
	contract.MustInitialized(d.ctx, contract.KindDamageOverTime, "Tick")
}

// SetDrain wires a drain mechanic so each applied stack credits it with the
// damage it deals.
func (d *DamageOverTime) SetDrain(drain contract.DamageReporter) {
	d.drain = drain
}

// EffectID reports the stacking discriminator this mechanic applies under.
func (d *DamageOverTime) EffectID() string {
	return d.effectID
}

// TryApplyTo applies the configured debuff to the damageable entity reachable
// from the given hit reference. It reports false only when no controller
// could be obtained; the caller may retry on a later hit.
func (d *DamageOverTime) TryApplyTo(targetID string) bool {
	contract.MustInitialized(d.ctx, contract.KindDamageOverTime, "TryApplyTo")
	sink, ok := d.ctx.World.Debuffs(targetID)
	if !ok {
		return false
	}
	sink.ApplyStack(d.damagePerTick, d.tickInterval, d.duration, d.effectID, d.allowStacking, d.drain)
	return true
}

// OnPrimaryHit applies the debuff to the target of a landed hit.
func (d *DamageOverTime) OnPrimaryHit(hit contract.HitInfo) bool {
	return d.TryApplyTo(hit.TargetID)
}
