package world

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/dwbrown115/GameServerTestGame-sub004/logging"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

// Config bundles world construction options.
type Config struct {
	Seed      string
	Publisher logging.Publisher
	Debug     bool
}

// World owns every live actor, payload entity, and debuff controller. All
// mutation happens on the single simulation goroutine; the transport layer
// copies snapshots out.
type World struct {
	actors   map[string]*Actor
	payloads map[string]*Payload
	debuffs  map[string]*DebuffController

	relay    Relay
	triggers []contract.Trigger

	rng           *rand.Rand
	publisher     logging.Publisher
	debug         bool
	tick          uint64
	nextEntityID  uint64
	nextTriggerID uint64
}

// New constructs an empty world with deterministic RNG streams derived from
// the configured seed.
func New(cfg Config) *World {
	seed := cfg.Seed
	if seed == "" {
		seed = DefaultSeed
	}
	publisher := cfg.Publisher
	if publisher == nil {
		publisher = logging.NopPublisher()
	}
	w := &World{
		actors:    make(map[string]*Actor),
		payloads:  make(map[string]*Payload),
		debuffs:   make(map[string]*DebuffController),
		rng:       NewDeterministicRNG(seed, "mechanics"),
		publisher: publisher,
		debug:     cfg.Debug,
	}
	w.relay.world = w
	return w
}

// Rand exposes the world's mechanic RNG stream.
func (w *World) Rand() *rand.Rand {
	return w.rng
}

// Publisher exposes the structured event publisher.
func (w *World) Publisher() logging.Publisher {
	return w.publisher
}

// Debug reports whether verbose diagnostics are enabled.
func (w *World) Debug() bool {
	return w.debug
}

// CurrentTick reports the frame counter.
func (w *World) CurrentTick() uint64 {
	return w.tick
}

// SpawnActor registers an actor, assigning an ID when empty.
func (w *World) SpawnActor(actor *Actor) *Actor {
	if actor == nil {
		return nil
	}
	if actor.ID == "" {
		w.nextEntityID++
		actor.ID = fmt.Sprintf("actor-%d", w.nextEntityID)
	}
	w.actors[actor.ID] = actor
	return actor
}

// SpawnPayload registers a payload entity, assigning an ID when empty.
func (w *World) SpawnPayload(payload *Payload) *Payload {
	if payload == nil {
		return nil
	}
	if payload.ID == "" {
		w.nextEntityID++
		payload.ID = fmt.Sprintf("payload-%d", w.nextEntityID)
	}
	w.payloads[payload.ID] = payload
	return payload
}

// Actor returns the actor with the given ID.
func (w *World) Actor(id string) (*Actor, bool) {
	actor, ok := w.actors[id]
	return actor, ok
}

// Payload returns the payload entity with the given ID. Released payloads are
// reported as absent.
func (w *World) Payload(id string) (*Payload, bool) {
	payload, ok := w.payloads[id]
	if !ok || payload.released {
		return nil, false
	}
	return payload, true
}

// Attach binds a mechanic to a payload entity: the mechanic is initialized
// exactly once with a freshly created context and ticked every frame until
// the payload is released.
func (w *World) Attach(payloadID string, kind contract.Kind, m contract.Mechanic) bool {
	payload, ok := w.Payload(payloadID)
	if !ok || m == nil {
		return false
	}
	ctx := &contract.Context{
		OwnerID:   payload.OwnerID,
		PayloadID: payload.ID,
		World:     w,
		Rand:      w.rng,
		Publisher: w.publisher,
		Tick:      w.CurrentTick,
		Debug:     w.debug,
	}
	m.Initialize(ctx)
	payload.mechanics = append(payload.mechanics, attachedMechanic{kind: kind, mechanic: m})
	return true
}

// Release requests destruction of a payload entity. The payload stops
// receiving ticks immediately and is pruned at the end of the frame. Calling
// Release on an unknown or already released ID is a no-op.
func (w *World) Release(id string) {
	payload, ok := w.payloads[id]
	if !ok || payload.released {
		return
	}
	payload.released = true
}

// ResolveDamageable walks up from the given entity reference to the nearest
// entity exposing the damage-receiving capability. The attach point of a hit
// may be a child payload whose chain leads to the actual damageable actor.
func (w *World) ResolveDamageable(id string) (contract.Damageable, bool) {
	actor, ok := w.resolveActor(id)
	if !ok {
		return nil, false
	}
	return actor, true
}

// ResolveHealable reports the healing capability of the given entity.
func (w *World) ResolveHealable(id string) (contract.Healable, bool) {
	actor, ok := w.resolveActor(id)
	if !ok {
		return nil, false
	}
	return actor, true
}

func (w *World) resolveActor(id string) (*Actor, bool) {
	current := id
	for depth := 0; depth < 16 && current != ""; depth++ {
		if actor, ok := w.actors[current]; ok {
			return actor, true
		}
		payload, ok := w.payloads[current]
		if !ok {
			return nil, false
		}
		if payload.ParentID != "" {
			current = payload.ParentID
			continue
		}
		current = payload.OwnerID
	}
	return nil, false
}

// FindTagged returns the healing capability of the first actor (by ID order)
// carrying the given tag.
func (w *World) FindTagged(tag string) (contract.Healable, bool) {
	if tag == "" {
		return nil, false
	}
	ids := make([]string, 0, len(w.actors))
	for id := range w.actors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if actor := w.actors[id]; actor.HasTag(tag) {
			return actor, true
		}
	}
	return nil, false
}

// Debuffs obtains (creating lazily) the debuff controller of the damageable
// entity reachable from the given reference.
func (w *World) Debuffs(id string) (contract.DebuffSink, bool) {
	actor, ok := w.resolveActor(id)
	if !ok {
		return nil, false
	}
	controller, ok := w.debuffs[actor.ID]
	if !ok {
		controller = newDebuffController(w, actor)
		w.debuffs[actor.ID] = controller
	}
	return controller, true
}

// DebuffController returns the target's controller without creating one.
func (w *World) DebuffController(actorID string) (*DebuffController, bool) {
	controller, ok := w.debuffs[actorID]
	return controller, ok
}

// PayloadPosition reports the current position of a live payload entity.
func (w *World) PayloadPosition(id string) (float64, float64, bool) {
	payload, ok := w.Payload(id)
	if !ok {
		return 0, 0, false
	}
	return payload.X, payload.Y, true
}

// ActorsWithin returns the damage capability of every actor within the given
// radius of the point, excluding the entity with the given ID. Results are in
// ID order for determinism.
func (w *World) ActorsWithin(x, y, radius float64, excludeID string) []contract.Damageable {
	if radius <= 0 {
		return nil
	}
	ids := make([]string, 0, len(w.actors))
	for id := range w.actors {
		if id == excludeID {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var hits []contract.Damageable
	radiusSq := radius * radius
	for _, id := range ids {
		actor := w.actors[id]
		dx := actor.X - x
		dy := actor.Y - y
		if dx*dx+dy*dy <= radiusSq {
			hits = append(hits, actor)
		}
	}
	return hits
}

// QueueTrigger stages a one-shot visual trigger for the next broadcast drain.
func (w *World) QueueTrigger(t contract.Trigger) {
	if t.Type == "" {
		return
	}
	if t.ID == "" {
		w.nextTriggerID++
		t.ID = fmt.Sprintf("trigger-%d", w.nextTriggerID)
	}
	w.triggers = append(w.triggers, t)
}

// DrainTriggers returns the queued triggers and clears the batch.
func (w *World) DrainTriggers() []contract.Trigger {
	if len(w.triggers) == 0 {
		return nil
	}
	drained := make([]contract.Trigger, len(w.triggers))
	copy(drained, w.triggers)
	w.triggers = w.triggers[:0]
	return drained
}

// Step advances the world by one frame. Mechanics tick first (payloads in ID
// order; relative order across sibling mechanics is not part of the
// contract), then debuff controllers consume the frame's delta.
func (w *World) Step(dt float64) {
	if dt < 0 {
		dt = 0
	}
	w.tick++

	payloadIDs := make([]string, 0, len(w.payloads))
	for id := range w.payloads {
		payloadIDs = append(payloadIDs, id)
	}
	sort.Strings(payloadIDs)
	for _, id := range payloadIDs {
		payload := w.payloads[id]
		if payload.released {
			continue
		}
		for _, att := range payload.mechanics {
			if payload.released {
				break
			}
			att.mechanic.Tick(dt)
		}
	}

	actorIDs := make([]string, 0, len(w.debuffs))
	for id := range w.debuffs {
		actorIDs = append(actorIDs, id)
	}
	sort.Strings(actorIDs)
	for _, id := range actorIDs {
		controller := w.debuffs[id]
		controller.Tick(dt)
		if controller.Empty() {
			delete(w.debuffs, id)
		}
	}

	w.prunePayloads()
}

func (w *World) prunePayloads() {
	for id, payload := range w.payloads {
		if payload.released {
			delete(w.payloads, id)
		}
	}
}

// SnapshotActors returns a copy of every live actor, sorted by ID.
func (w *World) SnapshotActors() []Actor {
	ids := make([]string, 0, len(w.actors))
	for id := range w.actors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	snapshot := make([]Actor, 0, len(ids))
	for _, id := range ids {
		snapshot = append(snapshot, *w.actors[id])
	}
	return snapshot
}

// SnapshotPayloads returns a copy of every live payload entity, sorted by ID.
func (w *World) SnapshotPayloads() []Payload {
	ids := make([]string, 0, len(w.payloads))
	for id, payload := range w.payloads {
		if payload.released {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	snapshot := make([]Payload, 0, len(ids))
	for _, id := range ids {
		copied := *w.payloads[id]
		copied.mechanics = nil
		snapshot = append(snapshot, copied)
	}
	return snapshot
}
