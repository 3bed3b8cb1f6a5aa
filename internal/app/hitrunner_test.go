package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwbrown115/GameServerTestGame-sub004/internal/item"
	"github.com/dwbrown115/GameServerTestGame-sub004/internal/mechanics"
	"github.com/dwbrown115/GameServerTestGame-sub004/internal/world"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

func buildDemoProjectile(t *testing.T, w *world.World, params item.Params, modifiers ...contract.Kind) item.BuildResult {
	t.Helper()
	g, err := item.NewGenerator(w, nil, mechanics.DefaultRegistry())
	require.NoError(t, err)
	result, err := g.Build("player-1", item.Instruction{Primary: item.PayloadProjectile, Modifiers: modifiers}, params)
	require.NoError(t, err)
	return result
}

func TestContactAppliesDirectDamageAndDebuff(t *testing.T) {
	w := world.New(world.Config{Seed: "hits"})
	w.SpawnActor(&world.Actor{ID: "player-1", Tags: []string{"player"}, Health: 100, MaxHealth: 100})
	mob := w.SpawnActor(&world.Actor{ID: "mob-1", Health: 100, MaxHealth: 100})

	params := item.DefaultParams()
	params.DestroyChance = 0 // keep the payload alive for the assertion
	params.DestroyChanceIncrease = 0
	params.DamagePerTick = 4
	result := buildDemoProjectile(t, w, params, contract.KindDamageOverTime)

	runner := newHitRunner(w, 4)
	w.Relay().Subscribe(runner)
	w.EmitContact(world.ContactEnter, result.PayloadID, mob.ID)

	assert.Equal(t, 96, mob.Health)

	controller, ok := w.DebuffController(mob.ID)
	require.True(t, ok)
	assert.Equal(t, 1, controller.StackCount("dot"))
}

func TestContactExecutesDestroyDecision(t *testing.T) {
	w := world.New(world.Config{Seed: "hits"})
	w.SpawnActor(&world.Actor{ID: "player-1", Tags: []string{"player"}, Health: 100, MaxHealth: 100})
	mob := w.SpawnActor(&world.Actor{ID: "mob-1", Health: 100, MaxHealth: 100})

	params := item.DefaultParams()
	params.DestroyChance = 1 // every roll destroys
	result := buildDemoProjectile(t, w, params)

	runner := newHitRunner(w, 0)
	w.Relay().Subscribe(runner)
	w.EmitContact(world.ContactEnter, result.PayloadID, mob.ID)
	w.Step(0.1)

	_, ok := w.Payload(result.PayloadID)
	assert.False(t, ok)
}

func TestContactRedirectMovesPayload(t *testing.T) {
	w := world.New(world.Config{Seed: "hits"})
	w.SpawnActor(&world.Actor{ID: "player-1", Tags: []string{"player"}, X: 10, Y: 20, Health: 100, MaxHealth: 100})
	mob := w.SpawnActor(&world.Actor{ID: "mob-1", Health: 100, MaxHealth: 100})

	params := item.DefaultParams()
	params.DestroyChance = 0
	params.DestroyChanceIncrease = 0
	result := buildDemoProjectile(t, w, params)

	runner := newHitRunner(w, 0)
	w.Relay().Subscribe(runner)
	w.EmitContact(world.ContactEnter, result.PayloadID, mob.ID)

	payload, ok := w.Payload(result.PayloadID)
	require.True(t, ok)
	moved := payload.X != 10 || payload.Y != 20
	assert.True(t, moved, "payload should be nudged along the redirect direction")
}

func TestNonEnterPhasesIgnored(t *testing.T) {
	w := world.New(world.Config{Seed: "hits"})
	w.SpawnActor(&world.Actor{ID: "player-1", Tags: []string{"player"}, Health: 100, MaxHealth: 100})
	mob := w.SpawnActor(&world.Actor{ID: "mob-1", Health: 100, MaxHealth: 100})

	result := buildDemoProjectile(t, w, item.DefaultParams())

	runner := newHitRunner(w, 10)
	w.Relay().Subscribe(runner)
	w.EmitContact(world.ContactStay, result.PayloadID, mob.ID)
	w.EmitContact(world.ContactExit, result.PayloadID, mob.ID)

	assert.Equal(t, 100, mob.Health)
}
