package mechanics

import (
	"context"

	"github.com/dwbrown115/GameServerTestGame-sub004/logging"
)

const (
	// EventBounceDestroyed is emitted when a bounce roll destroys the payload.
	EventBounceDestroyed logging.EventType = "mechanics.bounce_destroyed"
	// EventIdleReleased is emitted when a bounce payload auto-releases after
	// sustained inactivity.
	EventIdleReleased logging.EventType = "mechanics.idle_released"
	// EventDrainHealed is emitted when a drain mechanic converts reported
	// damage into a heal.
	EventDrainHealed logging.EventType = "mechanics.drain_healed"
)

// BouncePayload captures the state of a bounce decision.
type BouncePayload struct {
	BounceCount   int     `json:"bounceCount"`
	DestroyChance float64 `json:"destroyChance"`
}

// DrainPayload captures a life-steal credit.
type DrainPayload struct {
	Reported int `json:"reported"`
	Healed   int `json:"healed"`
}

// BounceDestroyed publishes a destroy decision event.
func BounceDestroyed(ctx context.Context, pub logging.Publisher, tick uint64, payloadRef logging.EntityRef, payload BouncePayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventBounceDestroyed,
		Tick:     tick,
		Actor:    payloadRef,
		Severity: logging.SeverityDebug,
		Category: logging.CategoryMechanics,
		Payload:  payload,
	})
}

// IdleReleased publishes an idle auto-release event.
func IdleReleased(ctx context.Context, pub logging.Publisher, tick uint64, payloadRef logging.EntityRef, idleSeconds float64) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventIdleReleased,
		Tick:     tick,
		Actor:    payloadRef,
		Severity: logging.SeverityDebug,
		Category: logging.CategoryMechanics,
		Payload:  map[string]float64{"idleSeconds": idleSeconds},
	})
}

// DrainHealed publishes a life-steal heal event.
func DrainHealed(ctx context.Context, pub logging.Publisher, tick uint64, owner logging.EntityRef, payload DrainPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventDrainHealed,
		Tick:     tick,
		Actor:    owner,
		Severity: logging.SeverityDebug,
		Category: logging.CategoryMechanics,
		Payload:  payload,
	})
}
