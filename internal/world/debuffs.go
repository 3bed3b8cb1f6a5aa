package world

import (
	"context"

	"github.com/dwbrown115/GameServerTestGame-sub004/internal/settings"
	"github.com/dwbrown115/GameServerTestGame-sub004/logging"
	loggingdebuffs "github.com/dwbrown115/GameServerTestGame-sub004/logging/debuffs"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

// DebuffStack is one active damage-over-time effect on a target. Stacks with
// the same effect ID either refresh in place or tick independently, depending
// on the stacking policy of the application that created them.
type DebuffStack struct {
	EffectID      string
	DamagePerTick int
	TickInterval  float64
	Remaining     float64

	// accumulated is the elapsed time since the last applied tick. A refresh
	// leaves it untouched so the tick cadence is undisturbed.
	accumulated float64
	drain       contract.DamageReporter
}

// DebuffController owns the set of debuff stacks for one target entity. It is
// created lazily on the first application and removed by the world once its
// stack set becomes empty. Only ApplyStack and Tick mutate it, both on the
// single simulation goroutine.
type DebuffController struct {
	world  *World
	target *Actor
	stacks []*DebuffStack
}

func newDebuffController(w *World, target *Actor) *DebuffController {
	return &DebuffController{world: w, target: target}
}

// ApplyStack adds a damage-over-time stack to the target. With stacking
// disallowed, an existing stack with the same effect ID has its remaining
// duration refreshed instead; the elapsed-tick accumulator is preserved.
// With stacking allowed a new independent stack is always added. A zero
// duration expires immediately without ticking.
func (c *DebuffController) ApplyStack(damagePerTick int, tickInterval, duration float64, effectID string, allowStacking bool, drain contract.DamageReporter) {
	if c == nil {
		return
	}
	if damagePerTick < 0 {
		damagePerTick = 0
	}
	if tickInterval < settings.IntervalFloor {
		tickInterval = settings.IntervalFloor
	}
	if duration < 0 {
		duration = 0
	}

	payload := loggingdebuffs.StackPayload{
		EffectID:      effectID,
		DamagePerTick: damagePerTick,
		TickInterval:  tickInterval,
		Duration:      duration,
	}

	// a zero-duration application expires on arrival and never joins the
	// live set, so it is not observable between frames
	if duration == 0 {
		loggingdebuffs.Applied(context.Background(), c.publisher(), c.tick(), c.targetRef(), payload)
		c.expire(&DebuffStack{EffectID: effectID})
		return
	}

	if !allowStacking {
		for _, stack := range c.stacks {
			if stack.EffectID == effectID {
				stack.Remaining = duration
				loggingdebuffs.Refreshed(context.Background(), c.publisher(), c.tick(), c.targetRef(), payload)
				return
			}
		}
	}

	c.stacks = append(c.stacks, &DebuffStack{
		EffectID:      effectID,
		DamagePerTick: damagePerTick,
		TickInterval:  tickInterval,
		Remaining:     duration,
		drain:         drain,
	})
	loggingdebuffs.Applied(context.Background(), c.publisher(), c.tick(), c.targetRef(), payload)
}

// Tick advances every live stack by the frame delta. Each time the
// accumulator crosses the tick interval the stack applies its damage and
// consumes the interval's worth of elapsed time, so a large delta can apply
// several ticks in one frame. Stacks whose remaining duration reaches zero
// are removed.
func (c *DebuffController) Tick(dt float64) {
	if c == nil || dt < 0 {
		return
	}
	live := c.stacks[:0]
	for _, stack := range c.stacks {
		if stack.Remaining <= 0 {
			c.expire(stack)
			continue
		}
		stack.accumulated += dt
		for stack.accumulated >= stack.TickInterval {
			stack.accumulated -= stack.TickInterval
			if stack.DamagePerTick > 0 && c.target.ApplyDamage(stack.DamagePerTick) {
				if stack.drain != nil {
					stack.drain.ReportDamage(stack.DamagePerTick)
				}
			}
		}
		stack.Remaining -= dt
		if stack.Remaining <= 0 {
			c.expire(stack)
			continue
		}
		live = append(live, stack)
	}
	for i := len(live); i < len(c.stacks); i++ {
		c.stacks[i] = nil
	}
	c.stacks = live
}

func (c *DebuffController) expire(stack *DebuffStack) {
	loggingdebuffs.Expired(context.Background(), c.publisher(), c.tick(), c.targetRef(), loggingdebuffs.StackPayload{
		EffectID: stack.EffectID,
	})
}

// Empty reports whether the controller has no live stacks left.
func (c *DebuffController) Empty() bool {
	return c == nil || len(c.stacks) == 0
}

// StackCount reports the number of live stacks with the given effect ID.
func (c *DebuffController) StackCount(effectID string) int {
	if c == nil {
		return 0
	}
	count := 0
	for _, stack := range c.stacks {
		if stack.EffectID == effectID {
			count++
		}
	}
	return count
}

// Stacks returns the live stacks. The slice is owned by the controller;
// callers must not mutate it.
func (c *DebuffController) Stacks() []*DebuffStack {
	if c == nil {
		return nil
	}
	return c.stacks
}

func (c *DebuffController) publisher() logging.Publisher {
	if c.world == nil {
		return logging.NopPublisher()
	}
	return c.world.publisher
}

func (c *DebuffController) tick() uint64 {
	if c.world == nil {
		return 0
	}
	return c.world.tick
}

func (c *DebuffController) targetRef() logging.EntityRef {
	if c.target == nil {
		return logging.EntityRef{Kind: logging.EntityKindUnknown}
	}
	return logging.EntityRef{ID: c.target.ID, Kind: logging.EntityKindActor}
}
