package contract

// Kind identifies a mechanic variant. The set is closed: the item layer
// matches kinds exhaustively so compatibility vetoes stay explicit.
type Kind string

const (
	KindBounce         Kind = "bounce"
	KindDamageOverTime Kind = "damage-over-time"
	KindDrain          Kind = "drain"
	KindAura           Kind = "aura"
	KindRippleOnHit    Kind = "ripple-on-hit"
)

// Kinds returns every registered mechanic kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindBounce, KindDamageOverTime, KindDrain, KindAura, KindRippleOnHit}
}

// Damageable is the damage-receiving capability exposed by target entities.
// ApplyDamage reports whether the mutation changed the target's health.
type Damageable interface {
	ApplyDamage(amount int) bool
}

// Healable is the healing capability exposed by owner entities.
type Healable interface {
	Heal(amount int) bool
}

// DamageReporter receives credit for damage dealt on behalf of its owner.
// Damage-over-time stacks report through it so a drain mechanic can convert
// landed damage into life steal.
type DamageReporter interface {
	ReportDamage(total int)
}

// DebuffSink accepts damage-over-time stack applications on behalf of a
// target entity. A nil drain reporter means no life-steal credit.
type DebuffSink interface {
	ApplyStack(damagePerTick int, tickInterval, duration float64, effectID string, allowStacking bool, drain DamageReporter)
}

// HitInfo is the structured primary-hit record handed to mechanics that react
// to landed hits without knowing the attacker's type.
type HitInfo struct {
	TargetID string
	Damage   int
}

// PrimaryHitHandler is implemented by mechanics that react to a landed
// primary hit. The return value reports whether the mechanic acted on it.
type PrimaryHitHandler interface {
	OnPrimaryHit(hit HitInfo) bool
}

// BeamHitSummary describes one resolved beam contact. TotalDamage aggregates
// head and tail contributions; AnchoredTail marks a segmented tail that may
// warrant spawning a follow-up segment.
type BeamHitSummary struct {
	TotalDamage  int
	HeadDamage   int
	TailDamage   int
	HeadHit      bool
	AnchoredTail bool
}

// Trigger is a fire-and-forget visual event queued by mechanics and drained
// by the transport layer once per frame.
type Trigger struct {
	ID     string             `json:"id,omitempty"`
	Type   string             `json:"type"`
	X      float64            `json:"x"`
	Y      float64            `json:"y"`
	Start  int64              `json:"start,omitempty"`
	Params map[string]float64 `json:"params,omitempty"`
}

// Rand is the uniform draw source consumed by stochastic mechanics.
// *math/rand.Rand satisfies it; tests substitute fixed sequences.
type Rand interface {
	Float64() float64
}

// WorldRef is the narrow lookup surface a mechanic may use to reach its
// collaborators. Every resolution tolerates "entity no longer exists" by
// reporting false; references obtained through it are never retained across
// frames.
type WorldRef interface {
	// ResolveDamageable walks up from the given entity reference to the
	// nearest entity exposing the damage-receiving capability.
	ResolveDamageable(id string) (Damageable, bool)
	// ResolveHealable reports the healing capability of the given entity.
	ResolveHealable(id string) (Healable, bool)
	// FindTagged returns the healing capability of the first entity carrying
	// the tag. Used as the drain owner fallback.
	FindTagged(tag string) (Healable, bool)
	// Debuffs obtains (creating if needed) the debuff sink of the damageable
	// entity reachable from the given reference.
	Debuffs(id string) (DebuffSink, bool)
	// PayloadPosition reports the current position of a payload entity.
	PayloadPosition(id string) (x, y float64, ok bool)
	// ActorsWithin returns the damage capability of every actor within the
	// given radius of the point, excluding the entity with the given ID.
	ActorsWithin(x, y, radius float64, excludeID string) []Damageable
	// Release requests destruction of the given payload entity. The call is
	// opaque; delivery of future ticks stops once it takes effect.
	Release(id string)
	// QueueTrigger stages a one-shot visual trigger for the next broadcast.
	QueueTrigger(t Trigger)
}
