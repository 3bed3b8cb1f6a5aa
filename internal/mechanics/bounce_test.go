package mechanics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwbrown115/GameServerTestGame-sub004/internal/settings"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

func newTestBounce(w *stubWorld, rand contract.Rand, s settings.Settings) *Bounce {
	b := NewBounce(s)
	b.Initialize(testContext(w, rand))
	return b
}

func TestBounceDestroyChanceEscalates(t *testing.T) {
	b := newTestBounce(newStubWorld(), &sequenceRand{values: []float64{0.99, 0.5, 0.5, 0.99, 0.5, 0.5}},
		settings.Settings{"destroyChance": 0.2, "destroyChanceIncrease": 0.3})

	assert.Equal(t, 0.2, b.DestroyChance())

	decision := b.TryHandleHit()
	require.True(t, decision.Decided)
	require.False(t, decision.Destroy)
	assert.Equal(t, 1, b.BounceCount())
	assert.Equal(t, 0.5, b.DestroyChance())

	decision = b.TryHandleHit()
	require.False(t, decision.Destroy)
	assert.InDelta(t, 0.8, b.DestroyChance(), 1e-9)
}

func TestBounceDestroyChanceSaturatesAtOne(t *testing.T) {
	b := newTestBounce(newStubWorld(), &sequenceRand{values: []float64{0.99, 0.5, 0.5}},
		settings.Settings{"destroyChance": 0.9, "destroyChanceIncrease": 0.5})

	decision := b.TryHandleHit()
	require.False(t, decision.Destroy)
	assert.Equal(t, 1.0, b.DestroyChance())
}

func TestBounceRollBelowChanceDestroys(t *testing.T) {
	b := newTestBounce(newStubWorld(), &sequenceRand{values: []float64{0.19}},
		settings.Settings{"destroyChance": 0.2, "destroyChanceIncrease": 0.1})

	decision := b.TryHandleHit()
	require.True(t, decision.Decided)
	assert.True(t, decision.Destroy)
	assert.Equal(t, 0, b.BounceCount())
}

func TestBounceRollEqualToChanceBounces(t *testing.T) {
	b := newTestBounce(newStubWorld(), &sequenceRand{values: []float64{0.2, 0.5, 0.5}},
		settings.Settings{"destroyChance": 0.2, "destroyChanceIncrease": 0.1})

	decision := b.TryHandleHit()
	require.True(t, decision.Decided)
	assert.False(t, decision.Destroy)
	assert.Equal(t, 1, b.BounceCount())
}

func TestBounceRedirectDirectionIsUnitLength(t *testing.T) {
	// draws map to (0.4, 0.2), inside the unit disk
	b := newTestBounce(newStubWorld(), &sequenceRand{values: []float64{0.99, 0.7, 0.6}},
		settings.Settings{"destroyChance": 0.0, "destroyChanceIncrease": 0.0})

	decision := b.TryHandleHit()
	require.False(t, decision.Destroy)
	magnitude := math.Sqrt(decision.DirX*decision.DirX + decision.DirY*decision.DirY)
	assert.InDelta(t, 1.0, magnitude, 1e-9)
}

func TestBounceRejectsDrawsOutsideUnitDisk(t *testing.T) {
	// (0.8, -0.8) has magnitude ~1.13 and must be redrawn, not normalized;
	// the following pair (0.4, 0.2) is accepted
	b := newTestBounce(newStubWorld(), &sequenceRand{values: []float64{0.99, 0.9, 0.1, 0.7, 0.6}},
		settings.Settings{"destroyChance": 0.0, "destroyChanceIncrease": 0.0})

	decision := b.TryHandleHit()
	require.False(t, decision.Destroy)
	want := math.Sqrt(0.4*0.4 + 0.2*0.2)
	assert.InDelta(t, 0.4/want, decision.DirX, 1e-9)
	assert.InDelta(t, 0.2/want, decision.DirY, 1e-9)
}

func TestBounceRedirectAngleIsUniform(t *testing.T) {
	b := NewBounce(settings.Settings{"destroyChance": 0.0, "destroyChanceIncrease": 0.0})
	b.Initialize(testContext(newStubWorld(), rand.New(rand.NewSource(1))))

	// fold the angle mod 90 degrees and compare an axis-adjacent bin with a
	// diagonal-adjacent bin of equal width; square sampling without rejection
	// gives the diagonal bin roughly twice the mass
	const samples = 200000
	axis, diagonal := 0, 0
	for i := 0; i < samples; i++ {
		decision := b.TryHandleHit()
		require.False(t, decision.Destroy)
		angle := math.Mod(math.Atan2(decision.DirY, decision.DirX)+2*math.Pi, math.Pi/2)
		degrees := angle * 180 / math.Pi
		switch {
		case degrees < 5:
			axis++
		case degrees >= 40 && degrees < 45:
			diagonal++
		}
	}
	ratio := float64(diagonal) / float64(axis)
	assert.InDelta(t, 1.0, ratio, 0.1, "diagonal/axis bin ratio = %v (axis=%d diagonal=%d)", ratio, axis, diagonal)
}

func TestBounceDegenerateDirectionFallsBack(t *testing.T) {
	// every draw of 0.5 maps to (0, 0), below the degenerate threshold, so
	// the bounded redraw loop exhausts and the fixed axis is returned
	b := newTestBounce(newStubWorld(), &sequenceRand{values: []float64{0.5}},
		settings.Settings{"destroyChance": 0.0})

	decision := b.TryHandleHit()
	require.False(t, decision.Destroy)
	assert.Equal(t, 1.0, decision.DirX)
	assert.Equal(t, 0.0, decision.DirY)
}

func TestBounceIdleReleaseFiresOnce(t *testing.T) {
	w := newStubWorld()
	b := newTestBounce(w, &sequenceRand{}, settings.Settings{"idleLifetime": 1.0})

	b.Tick(0.6)
	assert.Empty(t, w.released)
	b.Tick(0.6)
	require.Equal(t, []string{"payload-1"}, w.released)

	// further frames before the entity is pruned must not re-issue the release
	b.Tick(0.6)
	b.Tick(0.6)
	assert.Len(t, w.released, 1)
}

func TestBounceZeroIdleLifetimeNeverReleases(t *testing.T) {
	w := newStubWorld()
	b := newTestBounce(w, &sequenceRand{}, settings.Settings{})

	for i := 0; i < 100; i++ {
		b.Tick(1.0)
	}
	assert.Empty(t, w.released)
}

func TestBounceHitResetsIdleTimer(t *testing.T) {
	w := newStubWorld()
	b := newTestBounce(w, &sequenceRand{values: []float64{0.99, 0.5, 0.6}},
		settings.Settings{"idleLifetime": 1.0, "destroyChance": 0.0})

	b.Tick(0.9)
	b.TryHandleHit()
	b.Tick(0.9)
	assert.Empty(t, w.released)
}

func TestBounceBeamHitWithoutDamageYieldsNoDecision(t *testing.T) {
	b := newTestBounce(newStubWorld(), &sequenceRand{values: []float64{0.0}}, settings.Settings{})

	decision := b.TryHandleBeamHit(contract.BeamHitSummary{TotalDamage: 0})
	assert.False(t, decision.Decided)
	assert.Equal(t, 0, b.BounceCount())
}

func TestBounceBeamHitSpawnSegmentMirrorsAnchoredTail(t *testing.T) {
	b := newTestBounce(newStubWorld(), &sequenceRand{values: []float64{0.99, 0.9, 0.1, 0.99, 0.9, 0.1}},
		settings.Settings{"destroyChance": 0.0, "destroyChanceIncrease": 0.0})

	decision := b.TryHandleBeamHit(contract.BeamHitSummary{TotalDamage: 5, AnchoredTail: true})
	require.True(t, decision.Decided)
	assert.True(t, decision.SpawnSegment)

	decision = b.TryHandleBeamHit(contract.BeamHitSummary{TotalDamage: 5, AnchoredTail: false})
	require.True(t, decision.Decided)
	assert.False(t, decision.SpawnSegment)
}

func TestBounceBeamHitDestroyNeverSpawnsSegment(t *testing.T) {
	b := newTestBounce(newStubWorld(), &sequenceRand{values: []float64{0.0}},
		settings.Settings{"destroyChance": 0.5})

	decision := b.TryHandleBeamHit(contract.BeamHitSummary{TotalDamage: 5, AnchoredTail: true})
	require.True(t, decision.Destroy)
	assert.False(t, decision.SpawnSegment)
}

func TestBounceTickBeforeInitializePanics(t *testing.T) {
	b := NewBounce(settings.Settings{})
	assert.PanicsWithValue(t, `mechanic "bounce": Tick before Initialize`,
		func() { b.Tick(0.1) })
	assert.PanicsWithValue(t, `mechanic "bounce": TryHandleHit before Initialize`,
		func() { b.TryHandleHit() })
}

func TestBounceSettingsNormalization(t *testing.T) {
	b := NewBounce(settings.Settings{"destroyChance": 1.8, "destroyChanceIncrease": -0.5, "idleLifetime": -2.0})
	assert.Equal(t, 1.0, b.baseDestroyChance)
	assert.Equal(t, 0.0, b.increasePerBounce)
	assert.Equal(t, 0.0, b.idleLifetime)
}
