package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/wayfarer/internal/game/inventory"
	"github.com/cory-johannsen/wayfarer/internal/game/stats"
)

func TestEquipment_EquipIntoEmptySlot(t *testing.T) {
	var e inventory.Equipment
	displaced, err := e.Equip(sword())
	require.NoError(t, err)
	assert.Nil(t, displaced)
	require.NotNil(t, e.Weapon)
	assert.Equal(t, 2, e.Weapon.ID)
}

func TestEquipment_EquipSwapsOccupant(t *testing.T) {
	var e inventory.Equipment
	_, err := e.Equip(sword())
	require.NoError(t, err)

	axe := inventory.Item{ID: 5, Name: "Axe", Type: inventory.TypeWeapon, Stats: stats.Attributes{Strength: 6}}
	displaced, err := e.Equip(axe)
	require.NoError(t, err)
	require.NotNil(t, displaced)
	assert.Equal(t, 2, displaced.ID)
	assert.Equal(t, 5, e.Weapon.ID)
}

func TestEquipment_EquipRejectsNonEquipable(t *testing.T) {
	var e inventory.Equipment
	_, err := e.Equip(potion())
	assert.ErrorIs(t, err, inventory.ErrNotEquipable)
	assert.Empty(t, e.Items())
}

func TestEquipment_Unequip(t *testing.T) {
	var e inventory.Equipment
	amulet := inventory.Item{ID: 7, Name: "Amulet", Type: inventory.TypeAmulet, Stats: stats.Attributes{Agility: 2}}
	_, err := e.Equip(amulet)
	require.NoError(t, err)

	got, err := e.Unequip(inventory.SlotAmulet)
	require.NoError(t, err)
	assert.Equal(t, 7, got.ID)
	assert.Nil(t, e.Amulet)

	_, err = e.Unequip(inventory.SlotAmulet)
	assert.ErrorIs(t, err, inventory.ErrSlotEmpty)

	_, err = e.Unequip(inventory.Slot("ring"))
	assert.ErrorIs(t, err, inventory.ErrUnknownSlot)
}

func TestEquipment_AggregateBonus(t *testing.T) {
	var e inventory.Equipment
	assert.True(t, e.AggregateBonus().IsZero())

	_, _ = e.Equip(sword())
	_, _ = e.Equip(inventory.Item{ID: 4, Name: "Leather", Type: inventory.TypeArmor, Stats: stats.Attributes{Health: 10, Defense: 2}})
	_, _ = e.Equip(inventory.Item{ID: 7, Name: "Amulet", Type: inventory.TypeAmulet, Stats: stats.Attributes{Agility: 2}})

	assert.Equal(t, stats.Attributes{Health: 10, Strength: 3, Defense: 2, Agility: 2}, e.AggregateBonus())
	assert.Len(t, e.Items(), 3)
}

func TestEquipment_OccupantIsCopy(t *testing.T) {
	var e inventory.Equipment
	_, _ = e.Equip(sword())
	occ := e.Occupant(inventory.SlotWeapon)
	require.NotNil(t, occ)
	occ.Stats.Strength = 100
	assert.Equal(t, 3, e.Weapon.Stats.Strength)
	assert.Nil(t, e.Occupant(inventory.SlotArmor))
}

func TestParseSlot(t *testing.T) {
	s, err := inventory.ParseSlot(" Weapon ")
	require.NoError(t, err)
	assert.Equal(t, inventory.SlotWeapon, s)

	_, err = inventory.ParseSlot("boots")
	assert.ErrorIs(t, err, inventory.ErrUnknownSlot)

	assert.Equal(t, "Amulet", inventory.SlotDisplayName(inventory.SlotAmulet))
	assert.Equal(t, "odd", inventory.SlotDisplayName(inventory.Slot("odd")))
}

func TestEquipment_AggregateBonusTracksOccupants(t *testing.T) {
	types := []inventory.ItemType{inventory.TypeWeapon, inventory.TypeArmor, inventory.TypeAmulet}
	rapid.Check(t, func(rt *rapid.T) {
		var e inventory.Equipment
		n := rapid.IntRange(0, 12).Draw(rt, "equips")
		for i := 0; i < n; i++ {
			it := inventory.Item{
				ID:   i + 1,
				Name: "gear",
				Type: rapid.SampledFrom(types).Draw(rt, "type"),
				Stats: stats.Attributes{
					Health:   rapid.IntRange(-20, 20).Draw(rt, "health"),
					Strength: rapid.IntRange(-5, 5).Draw(rt, "strength"),
					Defense:  rapid.IntRange(-5, 5).Draw(rt, "defense"),
					Agility:  rapid.IntRange(-5, 5).Draw(rt, "agility"),
				},
			}
			_, err := e.Equip(it)
			require.NoError(rt, err)
		}

		var want stats.Attributes
		for _, it := range e.Items() {
			want = want.Add(it.Stats)
		}
		assert.Equal(rt, want, e.AggregateBonus())
	})
}
