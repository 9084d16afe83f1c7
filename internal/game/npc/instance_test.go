package npc_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/wayfarer/internal/game/npc"
)

func goblin() *npc.Template {
	return &npc.Template{ID: 1, Name: "Goblin", Health: 30, Strength: 8, Defense: 2, Agility: 6, Loot: []int{1, 3}, Experience: 15}
}

func TestNewMonster_FullHealth(t *testing.T) {
	m := npc.NewMonster(goblin())
	assert.Equal(t, 30, m.MaxHealth)
	assert.Equal(t, 30, m.CurrentHealth)
	assert.True(t, m.IsAlive())
	assert.Equal(t, 8, m.Attributes().Strength)
}

func TestMonster_CloneIsIndependent(t *testing.T) {
	zone := npc.NewMonster(goblin())
	fight := zone.Clone()
	fight.TakeDamage(10)
	fight.Loot[0] = 99

	assert.Equal(t, 30, zone.CurrentHealth, "damage to a clone must not reach the zone copy")
	assert.Equal(t, 1, zone.Loot[0])
}

func TestMonster_TakeDamageFloors(t *testing.T) {
	m := npc.NewMonster(goblin())
	assert.Equal(t, 30, m.TakeDamage(45))
	assert.Equal(t, 0, m.CurrentHealth)
	assert.False(t, m.IsAlive())
}

func TestMonster_HealthDescription(t *testing.T) {
	cases := []struct {
		current int
		want    string
	}{
		{100, "unharmed"},
		{90, "barely scratched"},
		{70, "lightly wounded"},
		{50, "moderately wounded"},
		{25, "heavily wounded"},
		{5, "critically wounded"},
		{0, "dead"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("hp=%d", tc.current), func(t *testing.T) {
			m := npc.Monster{MaxHealth: 100, CurrentHealth: tc.current}
			assert.Equal(t, tc.want, m.HealthDescription())
		})
	}
}

func TestMonster_HealthBar(t *testing.T) {
	m := npc.Monster{MaxHealth: 100, CurrentHealth: 40}
	assert.Equal(t, "[####------]", m.HealthBar(10))
	m.CurrentHealth = 1
	assert.Equal(t, "[#---------]", m.HealthBar(10), "a living monster always shows one cell")
	m.CurrentHealth = 0
	assert.Equal(t, "[----------]", m.HealthBar(10))
}

func TestMonster_HealthPercent_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		limit := rapid.IntRange(1, 1000).Draw(rt, "max")
		cur := rapid.IntRange(0, limit).Draw(rt, "cur")
		width := rapid.IntRange(1, 40).Draw(rt, "width")
		m := npc.Monster{MaxHealth: limit, CurrentHealth: cur}
		pct := m.HealthPercent()
		assert.GreaterOrEqual(rt, pct, 0)
		assert.LessOrEqual(rt, pct, 100)
		assert.Len(rt, m.HealthBar(width), width+2)
	})
}
