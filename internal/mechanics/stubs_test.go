package mechanics

import (
	"github.com/dwbrown115/GameServerTestGame-sub004/logging"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

// sequenceRand replays a fixed sequence of uniform draws.
type sequenceRand struct {
	values []float64
	next   int
}

func (r *sequenceRand) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

type stubTarget struct {
	id        string
	health    int
	maxHealth int
	damaged   int
	healed    int
}

func (t *stubTarget) ApplyDamage(amount int) bool {
	if amount <= 0 || t.health <= 0 {
		return false
	}
	t.damaged += amount
	t.health -= amount
	if t.health < 0 {
		t.health = 0
	}
	return true
}

func (t *stubTarget) Heal(amount int) bool {
	if amount <= 0 || t.health >= t.maxHealth {
		return false
	}
	t.healed += amount
	t.health += amount
	if t.health > t.maxHealth {
		t.health = t.maxHealth
	}
	return true
}

type appliedStack struct {
	damagePerTick int
	tickInterval  float64
	duration      float64
	effectID      string
	allowStacking bool
	drain         contract.DamageReporter
}

type stubSink struct {
	applied []appliedStack
}

func (s *stubSink) ApplyStack(damagePerTick int, tickInterval, duration float64, effectID string, allowStacking bool, drain contract.DamageReporter) {
	s.applied = append(s.applied, appliedStack{
		damagePerTick: damagePerTick,
		tickInterval:  tickInterval,
		duration:      duration,
		effectID:      effectID,
		allowStacking: allowStacking,
		drain:         drain,
	})
}

// stubWorld is a minimal WorldRef for exercising mechanics in isolation.
type stubWorld struct {
	damageables map[string]*stubTarget
	healables   map[string]*stubTarget
	tagged      map[string]*stubTarget
	sinks       map[string]*stubSink

	payloadX   float64
	payloadY   float64
	hasPayload bool

	within   []contract.Damageable
	released []string
	triggers []contract.Trigger
}

func newStubWorld() *stubWorld {
	return &stubWorld{
		damageables: make(map[string]*stubTarget),
		healables:   make(map[string]*stubTarget),
		tagged:      make(map[string]*stubTarget),
		sinks:       make(map[string]*stubSink),
		hasPayload:  true,
	}
}

func (w *stubWorld) ResolveDamageable(id string) (contract.Damageable, bool) {
	target, ok := w.damageables[id]
	return target, ok
}

func (w *stubWorld) ResolveHealable(id string) (contract.Healable, bool) {
	target, ok := w.healables[id]
	return target, ok
}

func (w *stubWorld) FindTagged(tag string) (contract.Healable, bool) {
	target, ok := w.tagged[tag]
	return target, ok
}

func (w *stubWorld) Debuffs(id string) (contract.DebuffSink, bool) {
	sink, ok := w.sinks[id]
	return sink, ok
}

func (w *stubWorld) PayloadPosition(id string) (float64, float64, bool) {
	if !w.hasPayload {
		return 0, 0, false
	}
	return w.payloadX, w.payloadY, true
}

func (w *stubWorld) ActorsWithin(x, y, radius float64, excludeID string) []contract.Damageable {
	return w.within
}

func (w *stubWorld) Release(id string) {
	w.released = append(w.released, id)
}

func (w *stubWorld) QueueTrigger(t contract.Trigger) {
	w.triggers = append(w.triggers, t)
}

func testContext(w *stubWorld, rand contract.Rand) *contract.Context {
	return &contract.Context{
		OwnerID:   "owner-1",
		PayloadID: "payload-1",
		World:     w,
		Rand:      rand,
		Publisher: logging.NopPublisher(),
	}
}
