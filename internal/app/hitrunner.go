package app

import (
	"github.com/dwbrown115/GameServerTestGame-sub004/internal/mechanics"
	"github.com/dwbrown115/GameServerTestGame-sub004/internal/world"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

// redirectStep is how far a redirected payload is nudged along its new
// direction when a bounce decision lands.
const redirectStep = 12.0

// hitRunner turns relay contact events into mechanic reactions: it feeds
// hit-reactive mechanics the structured hit record and executes the plain-data
// decision a bounce mechanic returns. Mechanics never mutate the payload
// themselves.
type hitRunner struct {
	world  *world.World
	damage int
}

func newHitRunner(w *world.World, damage int) *hitRunner {
	return &hitRunner{world: w, damage: damage}
}

func (r *hitRunner) OnContact(ev world.ContactEvent) {
	if ev.Phase != world.ContactEnter {
		return
	}
	payload, ok := r.world.Payload(ev.PayloadID)
	if !ok {
		return
	}

	hit := contract.HitInfo{TargetID: ev.OtherID, Damage: r.damage}
	if target, ok := r.world.ResolveDamageable(ev.OtherID); ok && hit.Damage > 0 {
		target.ApplyDamage(hit.Damage)
	}
	for _, m := range payload.Mechanics() {
		if handler, ok := m.(contract.PrimaryHitHandler); ok {
			handler.OnPrimaryHit(hit)
		}
	}

	if m, ok := payload.Mechanic(contract.KindBounce); ok {
		if bounce, ok := m.(*mechanics.Bounce); ok {
			r.execute(payload.ID, bounce.TryHandleHit())
		}
	}
}

func (r *hitRunner) execute(payloadID string, decision mechanics.HitDecision) {
	if !decision.Decided {
		return
	}
	if decision.Destroy {
		r.world.Release(payloadID)
		return
	}
	payload, ok := r.world.Payload(payloadID)
	if !ok {
		return
	}
	payload.X += decision.DirX * redirectStep
	payload.Y += decision.DirY * redirectStep
}
