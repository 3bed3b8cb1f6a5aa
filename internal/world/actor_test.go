package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDamageClampsAtZero(t *testing.T) {
	actor := &Actor{ID: "mob-1", Health: 5, MaxHealth: 10}

	assert.True(t, actor.ApplyDamage(3))
	assert.Equal(t, 2, actor.Health)

	assert.True(t, actor.ApplyDamage(10))
	assert.Equal(t, 0, actor.Health)

	// already dead: no change to report
	assert.False(t, actor.ApplyDamage(1))
	assert.False(t, actor.ApplyDamage(0))
}

func TestHealClampsAtMax(t *testing.T) {
	actor := &Actor{ID: "mob-1", Health: 8, MaxHealth: 10}

	assert.True(t, actor.Heal(5))
	assert.Equal(t, 10, actor.Health)

	assert.False(t, actor.Heal(1))
	assert.False(t, actor.Heal(0))
}

func TestHasTag(t *testing.T) {
	actor := &Actor{ID: "p", Tags: []string{"player", "vip"}}
	assert.True(t, actor.HasTag("player"))
	assert.False(t, actor.HasTag("mob"))
	assert.False(t, (&Actor{}).HasTag("player"))
}
