package mechanics

import (
	"github.com/dwbrown115/GameServerTestGame-sub004/internal/settings"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

// RippleOnHit queues a one-shot ripple visual at the payload position
// whenever a primary hit lands. Fire and forget: the trigger is drained by
// the transport layer and never ticks.
type RippleOnHit struct {
	ctx *contract.Context

	triggerType string
	scale       float64
	color       settings.RGBA
}

// NewRippleOnHit normalizes the merged settings into a ripple mechanic.
func NewRippleOnHit(s settings.Settings) *RippleOnHit {
	return &RippleOnHit{
		triggerType: settings.String(s, "ripple", "triggerType", "rippleType"),
		scale:       settings.Float(s, 1, 0.1, 10, "scale", "rippleScale"),
		color:       settings.Color(s, settings.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, "color", "rippleColor"),
	}
}

// Initialize binds the attachment context. Called exactly once.
func (r *RippleOnHit) Initialize(ctx *contract.Context) {
	r.ctx = ctx
}

// Tick is a no-op; the ripple only reacts to hits.
func (r *RippleOnHit) Tick(dt float64) {
	contract.MustInitialized(r.ctx, contract.KindRippleOnHit, "Tick")
}

// OnPrimaryHit queues the ripple trigger at the payload's current position.
func (r *RippleOnHit) OnPrimaryHit(hit contract.HitInfo) bool {
	contract.MustInitialized(r.ctx, contract.KindRippleOnHit, "OnPrimaryHit")
	x, y, ok := r.ctx.World.PayloadPosition(r.ctx.PayloadID)
	if !ok {
		return false
	}
	r.ctx.World.QueueTrigger(contract.Trigger{
		Type: r.triggerType,
		X:    x,
		Y:    y,
		Params: map[string]float64{
			"scale": r.scale,
			"r":     float64(r.color.R),
			"g":     float64(r.color.G),
			"b":     float64(r.color.B),
			"a":     float64(r.color.A),
		},
	})
	return true
}
