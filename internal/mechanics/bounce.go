package mechanics

import (
	"context"
	"math"

	"github.com/dwbrown115/GameServerTestGame-sub004/internal/settings"
	"github.com/dwbrown115/GameServerTestGame-sub004/logging"
	loggingmechanics "github.com/dwbrown115/GameServerTestGame-sub004/logging/mechanics"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

// degenerateDirection is the magnitude below which a sampled redirect vector
// is considered zero and replaced with the fixed fallback axis.
const degenerateDirection = 1e-4

// HitDecision is the plain-data outcome of a bounce roll. The mechanic never
// acts on the payload itself; the caller executes the decision.
type HitDecision struct {
	// Decided is false only for beam hits that carried no damage.
	Decided bool
	// Destroy signals the payload should be destroyed instead of redirected.
	Destroy bool
	// DirX/DirY form the unit-length redirect direction on a bounce decision.
	DirX float64
	DirY float64
	// SpawnSegment signals a beam should spawn a new segment. Output only;
	// set on non-destroy beam decisions whose input had an anchored tail.
	SpawnSegment bool
}

// Bounce probabilistically destroys or redirects its payload on each
// qualifying hit, with the destroy chance escalating per bounce, and
// auto-releases the payload after sustained inactivity.
type Bounce struct {
	ctx *contract.Context

	baseDestroyChance float64
	increasePerBounce float64
	idleLifetime      float64

	bounceCount int
	idleTimer   float64
	released    bool
}

// NewBounce normalizes the merged settings into a bounce mechanic.
func NewBounce(s settings.Settings) *Bounce {
	return &Bounce{
		baseDestroyChance: settings.Float(s, 0.2, 0, 1, "destroyChance", "baseDestroyChance"),
		increasePerBounce: settings.Float(s, 0.1, 0, 1, "destroyChanceIncrease", "increasePerBounce"),
		idleLifetime:      settings.Duration(s, 0, "idleLifetime", "idleTimeout"),
	}
}

// Initialize binds the attachment context. Called exactly once.
func (b *Bounce) Initialize(ctx *contract.Context) {
	b.ctx = ctx
}

// Tick accumulates idle time. Once the idle timer reaches the configured
// lifetime (only when the lifetime is positive) the payload is released
// exactly once; the released guard keeps consecutive frames from re-issuing
// the release before the entity is actually removed.
func (b *Bounce) Tick(dt float64) {
	contract.MustInitialized(b.ctx, contract.KindBounce, "Tick")
	if b.released || dt < 0 {
		return
	}
	b.idleTimer += dt
	if b.idleLifetime > 0 && b.idleTimer >= b.idleLifetime {
		b.released = true
		loggingmechanics.IdleReleased(context.Background(), b.ctx.Publisher, b.ctx.CurrentTick(),
			logging.EntityRef{ID: b.ctx.PayloadID, Kind: logging.EntityKindPayload}, b.idleTimer)
		b.ctx.World.Release(b.ctx.PayloadID)
	}
}

// BounceCount reports how many successful bounces have occurred. The counter
// only ever increases.
func (b *Bounce) BounceCount() int {
	return b.bounceCount
}

// DestroyChance reports the current destroy probability, saturating at 1.
func (b *Bounce) DestroyChance() float64 {
	return clamp01(b.baseDestroyChance + b.increasePerBounce*float64(b.bounceCount))
}

// TryHandleHit resolves a plain hit. A plain hit always produces a decision:
// either destroy, or redirect along a fresh unit-length direction.
func (b *Bounce) TryHandleHit() HitDecision {
	contract.MustInitialized(b.ctx, contract.KindBounce, "TryHandleHit")
	b.idleTimer = 0

	chance := b.DestroyChance()
	roll := b.ctx.Rand.Float64()
	if roll < chance {
		loggingmechanics.BounceDestroyed(context.Background(), b.ctx.Publisher, b.ctx.CurrentTick(),
			logging.EntityRef{ID: b.ctx.PayloadID, Kind: logging.EntityKindPayload},
			loggingmechanics.BouncePayload{BounceCount: b.bounceCount, DestroyChance: chance})
		return HitDecision{Decided: true, Destroy: true}
	}

	dirX, dirY := b.sampleDirection()
	b.bounceCount++
	return HitDecision{Decided: true, DirX: dirX, DirY: dirY}
}

// TryHandleBeamHit resolves a beam hit. A summary whose total damage is not
// positive yields no decision at all, unlike the plain-hit path. Non-destroy
// decisions additionally flag whether the beam should spawn a new segment,
// mirroring the anchored-tail state of the input.
func (b *Bounce) TryHandleBeamHit(summary contract.BeamHitSummary) HitDecision {
	contract.MustInitialized(b.ctx, contract.KindBounce, "TryHandleBeamHit")
	if summary.TotalDamage <= 0 {
		return HitDecision{}
	}
	decision := b.TryHandleHit()
	if !decision.Destroy {
		decision.SpawnSegment = summary.AnchoredTail
	}
	return decision
}

// maxDirectionDraws bounds the rejection loop in sampleDirection.
const maxDirectionDraws = 16

// sampleDirection draws a direction uniformly over the unit circle by
// rejection sampling inside the unit disk: points outside the disk would
// overweight the diagonals after normalization, so they are redrawn. A
// degenerate draw is redrawn too; after bounded retries the fixed +X axis is
// returned so the result is always unit-length.
func (b *Bounce) sampleDirection() (float64, float64) {
	for i := 0; i < maxDirectionDraws; i++ {
		x := b.ctx.Rand.Float64()*2 - 1
		y := b.ctx.Rand.Float64()*2 - 1
		magnitude := math.Sqrt(x*x + y*y)
		if magnitude < degenerateDirection || magnitude > 1 {
			continue
		}
		return x / magnitude, y / magnitude
	}
	return 1, 0
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
