package mechanics

import (
	"github.com/dwbrown115/GameServerTestGame-sub004/internal/settings"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

// Aura periodically damages every actor within its radius around the payload.
// The color is visual metadata carried through to the transport layer;
// rendering itself happens elsewhere.
type Aura struct {
	ctx *contract.Context

	radius   float64
	interval float64
	damage   int
	color    settings.RGBA

	accumulated float64
}

// NewAura normalizes the merged settings into an aura mechanic.
func NewAura(s settings.Settings) *Aura {
	return &Aura{
		radius:   settings.Radius(s, 60, "radius", "auraRadius"),
		interval: settings.Interval(s, 1, 0, "damageInterval", "interval"),
		damage:   settings.Damage(s, 2, "damage", "damagePerTick"),
		color:    settings.Color(s, settings.RGBA{R: 0x6a, G: 0x5a, B: 0xcd, A: 0xff}, "color", "auraColor"),
	}
}

// Initialize binds the attachment context. Called exactly once.
func (a *Aura) Initialize(ctx *contract.Context) {
	a.ctx = ctx
}

// Radius reports the normalized damage radius.
func (a *Aura) Radius() float64 {
	return a.radius
}

// Color reports the normalized aura color.
func (a *Aura) Color() settings.RGBA {
	return a.color
}

// Tick accumulates elapsed time and pulses once per elapsed interval. A large
// delta can produce several pulses in one frame.
func (a *Aura) Tick(dt float64) {
	contract.MustInitialized(a.ctx, contract.KindAura, "Tick")
	if dt < 0 {
		return
	}
	a.accumulated += dt
	for a.accumulated >= a.interval {
		a.accumulated -= a.interval
		a.pulse()
	}
}

func (a *Aura) pulse() {
	if a.damage <= 0 {
		return
	}
	x, y, ok := a.ctx.World.PayloadPosition(a.ctx.PayloadID)
	if !ok {
		return
	}
	for _, target := range a.ctx.World.ActorsWithin(x, y, a.radius, a.ctx.OwnerID) {
		target.ApplyDamage(a.damage)
	}
}
