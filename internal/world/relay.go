package world

import (
	"context"

	"github.com/dwbrown115/GameServerTestGame-sub004/logging"
)

// ContactPhase distinguishes the begin/stay/end notifications forwarded by
// the relay.
type ContactPhase string

const (
	ContactEnter ContactPhase = "enter"
	ContactStay  ContactPhase = "stay"
	ContactExit  ContactPhase = "exit"
)

// ContactEvent is a physical-contact notification on a payload entity,
// rebroadcast upward to whichever listeners declared interest. The relay
// carries only the raw "other" reference; listeners resolve it themselves.
type ContactEvent struct {
	Phase     ContactPhase
	PayloadID string
	OtherID   string
	Tick      uint64
}

// ContactListener receives relayed contact events.
type ContactListener interface {
	OnContact(ev ContactEvent)
}

// ContactListenerFunc adapts a function to the ContactListener interface.
type ContactListenerFunc func(ev ContactEvent)

func (f ContactListenerFunc) OnContact(ev ContactEvent) {
	if f == nil {
		return
	}
	f(ev)
}

// Relay decouples collision detection from mechanic logic: contact events on
// a payload are forwarded to every registered listener. Having no listener is
// not an error.
type Relay struct {
	world     *World
	listeners []ContactListener
}

// Subscribe registers a listener for all relayed contact events.
func (r *Relay) Subscribe(listener ContactListener) {
	if listener == nil {
		return
	}
	r.listeners = append(r.listeners, listener)
}

// Relay returns the world's trigger relay.
func (w *World) Relay() *Relay {
	return &w.relay
}

// EmitContact forwards a contact notification through the relay. In debug
// mode the identity and tag metadata of the other party is logged.
func (w *World) EmitContact(phase ContactPhase, payloadID, otherID string) {
	ev := ContactEvent{Phase: phase, PayloadID: payloadID, OtherID: otherID, Tick: w.tick}
	if w.debug {
		extra := map[string]any{"phase": string(phase), "other": otherID}
		if actor, ok := w.resolveActor(otherID); ok {
			extra["otherTags"] = actor.Tags
		}
		w.publisher.Publish(context.Background(), logging.Event{
			Type:     "relay.contact",
			Tick:     w.tick,
			Actor:    logging.EntityRef{ID: payloadID, Kind: logging.EntityKindPayload},
			Severity: logging.SeverityDebug,
			Category: logging.CategorySystem,
			Extra:    extra,
		})
	}
	for _, listener := range w.relay.listeners {
		listener.OnContact(ev)
	}
}
