package item

import (
	"github.com/dwbrown115/GameServerTestGame-sub004/internal/settings"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

// Payload kinds the builders are keyed by. The set is closed so
// compatibility vetoes can match exhaustively.
const (
	PayloadAura       = "aura"
	PayloadProjectile = "projectile"
	PayloadWhip       = "whip"
)

// Instruction describes one requested item: the primary payload kind, the
// secondary modifier kinds to layer on in order, and per-instruction setting
// overrides applied on top of the catalog defaults. Owned transiently by the
// generator during a single build call.
type Instruction struct {
	Primary   string
	Modifiers []contract.Kind
	Overrides settings.Settings
}
