package character

import (
	"fmt"

	"github.com/cory-johannsen/wayfarer/internal/game/inventory"
)

// EquipResult describes a successful Equip.
type EquipResult struct {
	Item      inventory.Item
	Slot      inventory.Slot
	Displaced *inventory.Item // previous occupant, now back in the backpack
}

// UseResult describes a successful UseItem.
type UseResult struct {
	Item     inventory.Item
	Healed   int  // health actually restored after clamping
	NoEffect bool // true when the item has no positive health delta; it is kept
}

// Equip moves the backpack item at index into its equipment slot.
//
// Precondition: none; bad input is reported as an error.
// Postcondition: on success the item leaves the backpack, any displaced
// occupant is appended to the backpack, and the health invariant holds.
// Returns inventory.ErrInvalidIndex or inventory.ErrNotEquipable with the
// player unchanged.
func (p *Player) Equip(index int) (EquipResult, error) {
	it, err := p.Inventory.At(index)
	if err != nil {
		return EquipResult{}, err
	}
	slot, ok := it.Slot()
	if !ok {
		return EquipResult{}, fmt.Errorf("%w: %s is a %s", inventory.ErrNotEquipable, it.Name, it.Type)
	}
	if _, err := p.Inventory.RemoveAt(index); err != nil {
		return EquipResult{}, err
	}
	displaced, err := p.Equipment.Equip(it)
	if err != nil {
		p.Inventory.Add(it)
		return EquipResult{}, err
	}
	if displaced != nil {
		p.Inventory.Add(*displaced)
	}
	p.ClampHealth()
	return EquipResult{Item: it, Slot: slot, Displaced: displaced}, nil
}

// Unequip moves the occupant of slot back into the backpack.
//
// Postcondition: on success the slot is empty, the backpack grows by one, and
// the health invariant holds. Returns inventory.ErrSlotEmpty or
// inventory.ErrUnknownSlot with the player unchanged.
func (p *Player) Unequip(slot inventory.Slot) (inventory.Item, error) {
	it, err := p.Equipment.Unequip(slot)
	if err != nil {
		return inventory.Item{}, err
	}
	p.Inventory.Add(it)
	p.ClampHealth()
	return it, nil
}

// UseItem consumes the backpack item at index.
//
// Postcondition: a usable consumable with a positive health delta heals the
// player (capped at MaxHealth) and is removed. One without a positive delta
// leaves the player unchanged and reports NoEffect. Anything else returns
// inventory.ErrNotUsable; a bad index returns inventory.ErrInvalidIndex.
func (p *Player) UseItem(index int) (UseResult, error) {
	it, err := p.Inventory.At(index)
	if err != nil {
		return UseResult{}, err
	}
	if !it.Usable || !it.IsConsumable() {
		return UseResult{}, fmt.Errorf("%w: %s", inventory.ErrNotUsable, it.Name)
	}
	if it.Stats.Health <= 0 {
		return UseResult{Item: it, NoEffect: true}, nil
	}
	if _, err := p.Inventory.RemoveAt(index); err != nil {
		return UseResult{}, err
	}
	healed := p.Heal(it.Stats.Health)
	return UseResult{Item: it, Healed: healed}, nil
}
