package debuffs

import (
	"context"

	"github.com/dwbrown115/GameServerTestGame-sub004/logging"
)

const (
	// EventApplied is emitted when a new debuff stack lands on a target.
	EventApplied logging.EventType = "debuffs.applied"
	// EventRefreshed is emitted when a non-stacking application refreshes an
	// existing stack in place.
	EventRefreshed logging.EventType = "debuffs.refreshed"
	// EventExpired is emitted when a stack runs out and is removed.
	EventExpired logging.EventType = "debuffs.expired"
)

// StackPayload captures details about a debuff stack transition.
type StackPayload struct {
	EffectID      string  `json:"effectId"`
	DamagePerTick int     `json:"damagePerTick,omitempty"`
	TickInterval  float64 `json:"tickInterval,omitempty"`
	Duration      float64 `json:"duration,omitempty"`
}

func publish(ctx context.Context, pub logging.Publisher, eventType logging.EventType, tick uint64, target logging.EntityRef, payload StackPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     eventType,
		Tick:     tick,
		Actor:    target,
		Severity: logging.SeverityDebug,
		Category: logging.CategoryDebuffs,
		Payload:  payload,
	})
}

// Applied publishes a stack application event.
func Applied(ctx context.Context, pub logging.Publisher, tick uint64, target logging.EntityRef, payload StackPayload) {
	publish(ctx, pub, EventApplied, tick, target, payload)
}

// Refreshed publishes a refresh-in-place event.
func Refreshed(ctx context.Context, pub logging.Publisher, tick uint64, target logging.EntityRef, payload StackPayload) {
	publish(ctx, pub, EventRefreshed, tick, target, payload)
}

// Expired publishes a stack removal event.
func Expired(ctx context.Context, pub logging.Publisher, tick uint64, target logging.EntityRef, payload StackPayload) {
	publish(ctx, pub, EventExpired, tick, target, payload)
}
