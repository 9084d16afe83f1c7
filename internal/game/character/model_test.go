package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/wayfarer/internal/game/character"
	"github.com/cory-johannsen/wayfarer/internal/game/inventory"
	"github.com/cory-johannsen/wayfarer/internal/game/stats"
)

func newPlayer(health, current int) *character.Player {
	return &character.Player{
		Name:          "Aria",
		BaseStats:     stats.Attributes{Health: health, Strength: 10, Defense: 5, Agility: 8},
		CurrentHealth: current,
		ZoneID:        1,
	}
}

func TestPlayer_TotalStatsIncludesEquipment(t *testing.T) {
	p := newPlayer(100, 100)
	_, _ = p.Equipment.Equip(inventory.Item{ID: 2, Name: "Sword", Type: inventory.TypeWeapon, Stats: stats.Attributes{Strength: 3}})
	assert.Equal(t, stats.Attributes{Health: 100, Strength: 13, Defense: 5, Agility: 8}, p.TotalStats())
	assert.Equal(t, 100, p.MaxHealth())
}

func TestPlayer_HealClampsToMax(t *testing.T) {
	p := newPlayer(100, 90)
	assert.Equal(t, 10, p.Heal(30))
	assert.Equal(t, 100, p.CurrentHealth)
}

func TestPlayer_TakeDamageFloorsAtZero(t *testing.T) {
	p := newPlayer(100, 5)
	assert.Equal(t, 5, p.TakeDamage(12))
	assert.Equal(t, 0, p.CurrentHealth)
	assert.False(t, p.IsAlive())
}

func TestPlayer_Respawn(t *testing.T) {
	p := newPlayer(100, 0)
	p.ZoneID = 14
	p.Respawn(1)
	assert.Equal(t, 1, p.CurrentHealth)
	assert.Equal(t, 1, p.ZoneID)
	assert.True(t, p.IsAlive())
}

func TestPlayer_AddKill(t *testing.T) {
	var p character.Player
	assert.Equal(t, 0, p.KillCount(3))
	p.AddKill(3)
	p.AddKill(3)
	p.AddKill(4)
	assert.Equal(t, 2, p.KillCount(3))
	assert.Equal(t, 1, p.KillCount(4))
}

func TestPlayer_HealthInvariant_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		limit := rapid.IntRange(1, 300).Draw(rt, "max")
		p := newPlayer(limit, rapid.IntRange(0, limit).Draw(rt, "current"))
		ops := rapid.SliceOfN(rapid.IntRange(-200, 200), 1, 30).Draw(rt, "ops")
		for _, op := range ops {
			if op >= 0 {
				p.Heal(op)
			} else {
				p.TakeDamage(-op)
			}
			assert.GreaterOrEqual(rt, p.CurrentHealth, 0)
			assert.LessOrEqual(rt, p.CurrentHealth, p.MaxHealth())
		}
	})
}
