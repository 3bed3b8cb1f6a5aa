package items

import (
	"context"

	"github.com/dwbrown115/GameServerTestGame-sub004/logging"
)

const (
	// EventBuilt is emitted when the generator finishes assembling an item.
	EventBuilt logging.EventType = "items.built"
	// EventModifierRefused is emitted when a modifier strategy vetoes an
	// incompatible combination. The build continues; the refusal is recorded.
	EventModifierRefused logging.EventType = "items.modifier_refused"
)

// BuiltPayload captures details about a completed item build.
type BuiltPayload struct {
	BuildID     string   `json:"buildId"`
	PrimaryKind string   `json:"primaryKind"`
	SubItems    []string `json:"subItems,omitempty"`
	Modifiers   []string `json:"modifiers,omitempty"`
}

// RefusedPayload captures a compatibility veto.
type RefusedPayload struct {
	ModifierKind string `json:"modifierKind"`
	PayloadKind  string `json:"payloadKind"`
	Reason       string `json:"reason"`
}

// Built publishes an item build completion event.
func Built(ctx context.Context, pub logging.Publisher, tick uint64, owner logging.EntityRef, payload BuiltPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventBuilt,
		Tick:     tick,
		Actor:    owner,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryItems,
		Payload:  payload,
	})
}

// ModifierRefused publishes a compatibility refusal event.
func ModifierRefused(ctx context.Context, pub logging.Publisher, tick uint64, owner logging.EntityRef, payload RefusedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventModifierRefused,
		Tick:     tick,
		Actor:    owner,
		Severity: logging.SeverityWarn,
		Category: logging.CategoryItems,
		Payload:  payload,
	})
}
