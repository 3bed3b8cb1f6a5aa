package item

import (
	"fmt"

	"github.com/dwbrown115/GameServerTestGame-sub004/internal/mechanics"
	"github.com/dwbrown115/GameServerTestGame-sub004/internal/settings"
	"github.com/dwbrown115/GameServerTestGame-sub004/internal/world"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

// Movement modes a builder may configure on its payload. Free-flight payloads
// detach from the parent transform so the external movement driver owns them.
const (
	MovementNone   = "none"
	MovementFollow = "follow"
	MovementFree   = "free"
)

// Builder constructs a primary payload entity with its core mechanic(s) from
// merged settings and item parameters, and appends the new entity to the
// generator's running sub-item list.
type Builder interface {
	Build(g *Generator, owner *world.Actor, instr Instruction, params Params, merged settings.Settings, subItems *[]string) (string, error)
}

func defaultBuilders() map[string]Builder {
	return map[string]Builder{
		PayloadAura:       auraBuilder{},
		PayloadProjectile: projectileBuilder{},
		PayloadWhip:       whipBuilder{},
	}
}

// spawnPayload creates the payload entity at the owner's position as a child
// of the owner, applying the configured movement mode.
func spawnPayload(g *Generator, owner *world.Actor, kind string, merged settings.Settings, defaultMode string, subItems *[]string) *world.Payload {
	payload := g.World().SpawnPayload(&world.Payload{
		Kind:     kind,
		OwnerID:  owner.ID,
		ParentID: owner.ID,
		X:        owner.X,
		Y:        owner.Y,
	})
	if settings.String(merged, defaultMode, "movementMode", "movement") == MovementFree {
		payload.Detach()
	}
	*subItems = append(*subItems, payload.ID)
	return payload
}

type auraBuilder struct{}

func (auraBuilder) Build(g *Generator, owner *world.Actor, instr Instruction, params Params, merged settings.Settings, subItems *[]string) (string, error) {
	layered := settings.Merge(merged, settings.Settings{
		"radius":         params.AuraRadius,
		"damageInterval": params.DamageInterval,
		"damage":         params.DamagePerTick,
	})
	payload := spawnPayload(g, owner, PayloadAura, merged, MovementFollow, subItems)
	if !g.Attach(payload.ID, contract.KindAura, mechanics.NewAura(layered)) {
		return "", fmt.Errorf("item: failed to attach aura core to %s", payload.ID)
	}
	return payload.ID, nil
}

type projectileBuilder struct{}

func (projectileBuilder) Build(g *Generator, owner *world.Actor, instr Instruction, params Params, merged settings.Settings, subItems *[]string) (string, error) {
	layered := settings.Merge(merged, settings.Settings{
		"destroyChance":         params.DestroyChance,
		"destroyChanceIncrease": params.DestroyChanceIncrease,
		"idleLifetime":          params.IdleLifetime,
	})
	payload := spawnPayload(g, owner, PayloadProjectile, merged, MovementFree, subItems)
	if !g.Attach(payload.ID, contract.KindBounce, mechanics.NewBounce(layered)) {
		return "", fmt.Errorf("item: failed to attach bounce core to %s", payload.ID)
	}
	return payload.ID, nil
}

type whipBuilder struct{}

func (whipBuilder) Build(g *Generator, owner *world.Actor, instr Instruction, params Params, merged settings.Settings, subItems *[]string) (string, error) {
	payload := spawnPayload(g, owner, PayloadWhip, merged, MovementFollow, subItems)
	if !g.Attach(payload.ID, contract.KindRippleOnHit, mechanics.NewRippleOnHit(merged)) {
		return "", fmt.Errorf("item: failed to attach ripple core to %s", payload.ID)
	}
	return payload.ID, nil
}
