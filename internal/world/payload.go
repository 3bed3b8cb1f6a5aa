package world

import (
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

// Payload is an entity instance mechanics attach to (projectile, aura zone,
// whip arc). It is owned by the world; mechanics hold only its ID.
type Payload struct {
	ID       string  `json:"id"`
	Kind     string  `json:"kind"`
	OwnerID  string  `json:"owner"`
	ParentID string  `json:"parent,omitempty"`
	Detached bool    `json:"detached,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`

	mechanics []attachedMechanic
	released  bool
}

type attachedMechanic struct {
	kind     contract.Kind
	mechanic contract.Mechanic
}

// Detach severs the payload from its parent transform so free-flight movement
// is not dragged along with the owner. Damage resolution still walks the
// recorded parent chain.
func (p *Payload) Detach() {
	if p == nil {
		return
	}
	p.Detached = true
}

// MechanicKinds lists the kinds attached to the payload in attachment order.
func (p *Payload) MechanicKinds() []contract.Kind {
	if p == nil {
		return nil
	}
	kinds := make([]contract.Kind, 0, len(p.mechanics))
	for _, att := range p.mechanics {
		kinds = append(kinds, att.kind)
	}
	return kinds
}

// Mechanics returns the attached mechanics in attachment order.
func (p *Payload) Mechanics() []contract.Mechanic {
	if p == nil {
		return nil
	}
	out := make([]contract.Mechanic, 0, len(p.mechanics))
	for _, att := range p.mechanics {
		out = append(out, att.mechanic)
	}
	return out
}

// Mechanic returns the first attached mechanic of the given kind.
func (p *Payload) Mechanic(kind contract.Kind) (contract.Mechanic, bool) {
	if p == nil {
		return nil, false
	}
	for _, att := range p.mechanics {
		if att.kind == kind {
			return att.mechanic, true
		}
	}
	return nil, false
}
