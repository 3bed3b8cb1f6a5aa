package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwbrown115/GameServerTestGame-sub004/internal/settings"
)

type recordingDrain struct {
	total int
}

func (d *recordingDrain) ReportDamage(total int) {
	d.total += total
}

func spawnTestTarget(w *World) *Actor {
	return w.SpawnActor(&Actor{ID: "mob-1", Health: 100, MaxHealth: 100})
}

func controllerFor(t *testing.T, w *World, id string) *DebuffController {
	t.Helper()
	sink, ok := w.Debuffs(id)
	require.True(t, ok)
	controller, ok := sink.(*DebuffController)
	require.True(t, ok)
	return controller
}

func TestDebuffTicksAtConfiguredCadence(t *testing.T) {
	w := New(Config{})
	target := spawnTestTarget(w)
	c := controllerFor(t, w, target.ID)

	c.ApplyStack(2, 0.5, 3.0, "dot", false, nil)

	c.Tick(0.4)
	assert.Equal(t, 100, target.Health)
	c.Tick(0.1)
	assert.Equal(t, 98, target.Health)
}

func TestDebuffLargeDeltaAppliesSeveralTicks(t *testing.T) {
	w := New(Config{})
	target := spawnTestTarget(w)
	c := controllerFor(t, w, target.ID)

	c.ApplyStack(2, 0.5, 3.0, "dot", false, nil)

	// 1.2s at a 0.5s cadence is two ticks with ~0.2s left on the accumulator
	c.Tick(1.2)
	assert.Equal(t, 96, target.Health)

	// the residual carries: 0.3 more crosses the next boundary
	c.Tick(0.3)
	assert.Equal(t, 94, target.Health)
}

func TestDebuffRefreshPreservesAccumulator(t *testing.T) {
	w := New(Config{})
	target := spawnTestTarget(w)
	c := controllerFor(t, w, target.ID)

	c.ApplyStack(2, 0.5, 3.0, "dot", false, nil)
	c.Tick(0.4)

	c.ApplyStack(2, 0.5, 3.0, "dot", false, nil)
	require.Equal(t, 1, c.StackCount("dot"))
	assert.Equal(t, 3.0, c.Stacks()[0].Remaining)

	// the pending 0.4s still counts toward the next tick
	c.Tick(0.1)
	assert.Equal(t, 98, target.Health)
}

func TestDebuffStackingAddsIndependentStacks(t *testing.T) {
	w := New(Config{})
	target := spawnTestTarget(w)
	c := controllerFor(t, w, target.ID)

	c.ApplyStack(2, 0.5, 3.0, "dot", true, nil)
	c.ApplyStack(2, 0.5, 3.0, "dot", true, nil)
	require.Equal(t, 2, c.StackCount("dot"))

	c.Tick(0.5)
	assert.Equal(t, 96, target.Health)
}

func TestDebuffDistinctEffectIDsNeverRefreshEachOther(t *testing.T) {
	w := New(Config{})
	target := spawnTestTarget(w)
	c := controllerFor(t, w, target.ID)

	c.ApplyStack(2, 0.5, 3.0, "burn", false, nil)
	c.ApplyStack(3, 0.5, 3.0, "poison", false, nil)
	assert.Equal(t, 1, c.StackCount("burn"))
	assert.Equal(t, 1, c.StackCount("poison"))
}

func TestDebuffExpiresAfterDuration(t *testing.T) {
	w := New(Config{})
	target := spawnTestTarget(w)
	c := controllerFor(t, w, target.ID)

	c.ApplyStack(1, 0.5, 1.0, "dot", false, nil)
	c.Tick(0.5)
	c.Tick(0.5)
	assert.True(t, c.Empty())
}

func TestDebuffZeroDurationExpiresImmediately(t *testing.T) {
	w := New(Config{})
	target := spawnTestTarget(w)
	c := controllerFor(t, w, target.ID)

	c.ApplyStack(5, 0.1, 0.0, "dot", false, nil)

	// the stack is gone before any frame advances
	assert.True(t, c.Empty())
	assert.Zero(t, c.StackCount("dot"))

	c.Tick(1.0)
	assert.Equal(t, 100, target.Health)
}

func TestDebuffNegativeDurationExpiresImmediately(t *testing.T) {
	w := New(Config{})
	target := spawnTestTarget(w)
	c := controllerFor(t, w, target.ID)

	c.ApplyStack(5, 0.1, -2.0, "dot", false, nil)
	assert.True(t, c.Empty())
	c.Tick(1.0)
	assert.Equal(t, 100, target.Health)
}

func TestDebuffNegativeInputsClamped(t *testing.T) {
	w := New(Config{})
	target := spawnTestTarget(w)
	c := controllerFor(t, w, target.ID)

	c.ApplyStack(-5, -1.0, 3.0, "dot", false, nil)
	stack := c.Stacks()[0]
	assert.Equal(t, 0, stack.DamagePerTick)
	assert.Equal(t, settings.IntervalFloor, stack.TickInterval)

	c.Tick(1.0)
	assert.Equal(t, 100, target.Health)
}

func TestDebuffCreditsDrain(t *testing.T) {
	w := New(Config{})
	target := spawnTestTarget(w)
	c := controllerFor(t, w, target.ID)

	drain := &recordingDrain{}
	c.ApplyStack(3, 0.5, 2.0, "dot", false, drain)
	c.Tick(1.0)
	assert.Equal(t, 6, drain.total)
}

func TestDebuffNoDrainCreditWhenTargetDead(t *testing.T) {
	w := New(Config{})
	target := w.SpawnActor(&Actor{ID: "mob-1", Health: 0, MaxHealth: 100})
	c := controllerFor(t, w, target.ID)

	drain := &recordingDrain{}
	c.ApplyStack(3, 0.5, 2.0, "dot", false, drain)
	c.Tick(0.5)
	assert.Zero(t, drain.total)
}

func TestEmptyControllerPrunedByStep(t *testing.T) {
	w := New(Config{})
	target := spawnTestTarget(w)
	c := controllerFor(t, w, target.ID)

	c.ApplyStack(1, 0.5, 0.5, "dot", false, nil)
	w.Step(1.0)

	_, ok := w.DebuffController(target.ID)
	assert.False(t, ok)
}
