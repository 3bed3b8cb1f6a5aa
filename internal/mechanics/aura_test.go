package mechanics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dwbrown115/GameServerTestGame-sub004/internal/settings"
	"github.com/dwbrown115/GameServerTestGame-sub004/mechanics/contract"
)

func TestAuraPulsesOncePerInterval(t *testing.T) {
	w := newStubWorld()
	target := &stubTarget{id: "mob-1", health: 100, maxHealth: 100}
	w.within = []contract.Damageable{target}

	a := NewAura(settings.Settings{"damageInterval": 1.0, "damage": 2})
	a.Initialize(testContext(w, &sequenceRand{}))

	a.Tick(0.5)
	assert.Zero(t, target.damaged)
	a.Tick(0.5)
	assert.Equal(t, 2, target.damaged)
	a.Tick(0.9)
	assert.Equal(t, 2, target.damaged)
	a.Tick(0.1)
	assert.Equal(t, 4, target.damaged)
}

func TestAuraLargeDeltaCatchesUp(t *testing.T) {
	w := newStubWorld()
	target := &stubTarget{id: "mob-1", health: 100, maxHealth: 100}
	w.within = []contract.Damageable{target}

	a := NewAura(settings.Settings{"damageInterval": 1.0, "damage": 2})
	a.Initialize(testContext(w, &sequenceRand{}))

	a.Tick(3.5)
	assert.Equal(t, 6, target.damaged)
}

func TestAuraSkipsPulseWhenPayloadGone(t *testing.T) {
	w := newStubWorld()
	w.hasPayload = false
	target := &stubTarget{id: "mob-1", health: 100, maxHealth: 100}
	w.within = []contract.Damageable{target}

	a := NewAura(settings.Settings{"damageInterval": 1.0})
	a.Initialize(testContext(w, &sequenceRand{}))

	a.Tick(2.0)
	assert.Zero(t, target.damaged)
}

func TestAuraDefaults(t *testing.T) {
	a := NewAura(settings.Settings{})
	assert.Equal(t, 60.0, a.Radius())
	assert.Equal(t, settings.RGBA{R: 0x6a, G: 0x5a, B: 0xcd, A: 0xff}, a.Color())
}

func TestAuraNegativeDeltaIgnored(t *testing.T) {
	w := newStubWorld()
	target := &stubTarget{id: "mob-1", health: 100, maxHealth: 100}
	w.within = []contract.Damageable{target}

	a := NewAura(settings.Settings{"damageInterval": 1.0})
	a.Initialize(testContext(w, &sequenceRand{}))

	a.Tick(-5.0)
	assert.Zero(t, target.damaged)
}
