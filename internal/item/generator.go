package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dwbrown115/GameServerTestGame-sub004/internal/settings"
	"github.com/dwbrown115/GameServerTestGame-sub004/internal/world"
	"github.com/dwbrown115/GameServerTestGame-sub004/logging"
	loggingitems "github.com/dwbrown115/GameServerTestGame-sub004/logging/items"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/catalog"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

// Generator assembles items out of composable mechanics driven by merged
// settings. It owns nothing long-lived: each Build call resolves defaults,
// invokes the builder for the primary payload kind, then applies the modifier
// strategies in instruction order.
type Generator struct {
	world      *world.World
	catalog    *catalog.Resolver
	registry   map[contract.Kind]contract.Definition
	builders   map[string]Builder
	strategies map[contract.Kind]ModifierStrategy
	publisher  logging.Publisher
	debug      bool
}

// BuildResult reports one completed item build.
type BuildResult struct {
	BuildID   string
	OwnerID   string
	PayloadID string
	SubItems  []string
	Applied   []contract.Kind
}

// NewGenerator wires a generator over the given world and settings catalog.
func NewGenerator(w *world.World, resolver *catalog.Resolver, registry contract.Registry) (*Generator, error) {
	if w == nil {
		return nil, fmt.Errorf("item: generator requires a world")
	}
	index, err := registry.Index()
	if err != nil {
		return nil, fmt.Errorf("item: invalid mechanic registry: %w", err)
	}
	return &Generator{
		world:      w,
		catalog:    resolver,
		registry:   index,
		builders:   defaultBuilders(),
		strategies: defaultStrategies(),
		publisher:  w.Publisher(),
		debug:      w.Debug(),
	}, nil
}

// World exposes the generator's world for builders and strategies.
func (g *Generator) World() *world.World {
	return g.world
}

// Publisher exposes the structured event publisher.
func (g *Generator) Publisher() logging.Publisher {
	return g.publisher
}

// Debug reports whether debug-derived settings should be emitted.
func (g *Generator) Debug() bool {
	return g.debug
}

// CatalogSettings returns the merged catalog defaults for the given ID; an
// absent entry yields an empty mapping and every field normalizes to its
// default downstream.
func (g *Generator) CatalogSettings(id string) settings.Settings {
	if g.catalog == nil {
		return settings.Settings{}
	}
	return settings.Settings(g.catalog.SettingsFor(id))
}

// Attach binds a mechanic to a payload through the world, initializing it
// with a fresh context.
func (g *Generator) Attach(payloadID string, kind contract.Kind, m contract.Mechanic) bool {
	return g.world.Attach(payloadID, kind, m)
}

// Refuse records a compatibility veto. Refusals are logged, never raised;
// the build continues with the remaining modifiers.
func (g *Generator) Refuse(ownerID string, modifier contract.Kind, payloadKind, reason string) {
	loggingitems.ModifierRefused(context.Background(), g.publisher, g.world.CurrentTick(),
		logging.EntityRef{ID: ownerID, Kind: logging.EntityKindActor},
		loggingitems.RefusedPayload{
			ModifierKind: string(modifier),
			PayloadKind:  payloadKind,
			Reason:       reason,
		})
}

// Build assembles the item described by the instruction for the given owner
// actor. The returned sub-item list tracks every payload entity spawned by
// the build so the caller can destroy them collectively.
func (g *Generator) Build(ownerID string, instr Instruction, params Params) (BuildResult, error) {
	result := BuildResult{
		BuildID: uuid.NewString(),
		OwnerID: ownerID,
	}

	owner, ok := g.world.Actor(ownerID)
	if !ok {
		return result, fmt.Errorf("item: unknown owner actor %q", ownerID)
	}

	builder, ok := g.builders[instr.Primary]
	if !ok {
		return result, fmt.Errorf("item: no builder for payload kind %q", instr.Primary)
	}

	merged := settings.Merge(g.CatalogSettings(instr.Primary), instr.Overrides)

	payloadID, err := builder.Build(g, owner, instr, params, merged, &result.SubItems)
	if err != nil {
		return result, err
	}
	result.PayloadID = payloadID

	for _, kind := range instr.Modifiers {
		strategy, ok := g.strategies[kind]
		if !ok {
			g.Refuse(ownerID, kind, instr.Primary, "no modifier strategy for kind")
			continue
		}
		if strategy.Apply(g, payloadID, params) {
			result.Applied = append(result.Applied, kind)
		}
	}

	g.wireDrain(payloadID)

	applied := make([]string, 0, len(result.Applied))
	for _, kind := range result.Applied {
		applied = append(applied, string(kind))
	}
	loggingitems.Built(context.Background(), g.publisher, g.world.CurrentTick(),
		logging.EntityRef{ID: ownerID, Kind: logging.EntityKindActor},
		loggingitems.BuiltPayload{
			BuildID:     result.BuildID,
			PrimaryKind: instr.Primary,
			SubItems:    append([]string(nil), result.SubItems...),
			Modifiers:   applied,
		})
	return result, nil
}

// wireDrain links a damage-over-time mechanic to a drain mechanic on the same
// payload so applied stacks credit the drain with the damage they deal. The
// link is independent of the order the two modifiers were applied in.
func (g *Generator) wireDrain(payloadID string) {
	payload, ok := g.world.Payload(payloadID)
	if !ok {
		return
	}
	dotMech, ok := payload.Mechanic(contract.KindDamageOverTime)
	if !ok {
		return
	}
	drainMech, ok := payload.Mechanic(contract.KindDrain)
	if !ok {
		return
	}
	dot, ok := dotMech.(interface {
		SetDrain(contract.DamageReporter)
	})
	if !ok {
		return
	}
	drain, ok := drainMech.(contract.DamageReporter)
	if !ok {
		return
	}
	dot.SetDrain(drain)
}
