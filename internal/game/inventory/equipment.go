package inventory

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/wayfarer/internal/game/stats"
)

// Slot identifies one of the three equipment slots.
type Slot string

const (
	// SlotWeapon holds a weapon item.
	SlotWeapon Slot = "weapon"
	// SlotArmor holds an armor item.
	SlotArmor Slot = "armor"
	// SlotAmulet holds an amulet item.
	SlotAmulet Slot = "amulet"
)

// Slots lists every slot in display order.
var Slots = []Slot{SlotWeapon, SlotArmor, SlotAmulet}

// slotDisplayNames maps every slot identifier to its human-readable label.
var slotDisplayNames = map[Slot]string{
	SlotWeapon: "Weapon",
	SlotArmor:  "Armor",
	SlotAmulet: "Amulet",
}

// SlotDisplayName returns the human-readable label for a slot identifier.
//
// Postcondition: returns the registered label, or the slot itself if not found.
func SlotDisplayName(slot Slot) string {
	if label, ok := slotDisplayNames[slot]; ok {
		return label
	}
	return string(slot)
}

// ParseSlot resolves a case-insensitive slot name.
//
// Postcondition: returns ErrUnknownSlot for anything other than weapon, armor, or amulet.
func ParseSlot(name string) (Slot, error) {
	s := Slot(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := slotDisplayNames[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSlot, name)
	}
	return s, nil
}

// Equipment holds the three optional slots of a character.
//
// Invariant: an occupied slot's item type matches the slot.
type Equipment struct {
	Weapon *Item `yaml:"weapon,omitempty" json:"weapon,omitempty"`
	Armor  *Item `yaml:"armor,omitempty" json:"armor,omitempty"`
	Amulet *Item `yaml:"amulet,omitempty" json:"amulet,omitempty"`
}

func (e *Equipment) slotRef(slot Slot) (**Item, error) {
	switch slot {
	case SlotWeapon:
		return &e.Weapon, nil
	case SlotArmor:
		return &e.Armor, nil
	case SlotAmulet:
		return &e.Amulet, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}
}

// Occupant returns a copy of the item in slot, or nil when the slot is empty
// or unknown.
func (e *Equipment) Occupant(slot Slot) *Item {
	ref, err := e.slotRef(slot)
	if err != nil || *ref == nil {
		return nil
	}
	cp := **ref
	return &cp
}

// Equip places it into the slot matching its type.
//
// Postcondition: on success the slot holds a copy of it and displaced is the
// previous occupant (nil if the slot was empty); returns ErrNotEquipable when
// the item type has no slot, leaving e unchanged.
func (e *Equipment) Equip(it Item) (displaced *Item, err error) {
	slot, ok := it.Slot()
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s", ErrNotEquipable, it.Name, it.Type)
	}
	ref, err := e.slotRef(slot)
	if err != nil {
		return nil, err
	}
	displaced = *ref
	*ref = &it
	return displaced, nil
}

// Unequip empties slot and returns what it held.
//
// Postcondition: returns ErrSlotEmpty or ErrUnknownSlot without changing e.
func (e *Equipment) Unequip(slot Slot) (Item, error) {
	ref, err := e.slotRef(slot)
	if err != nil {
		return Item{}, err
	}
	if *ref == nil {
		return Item{}, fmt.Errorf("%w: %s", ErrSlotEmpty, SlotDisplayName(slot))
	}
	it := **ref
	*ref = nil
	return it, nil
}

// Items returns copies of the occupied slots in display order.
func (e *Equipment) Items() []Item {
	var out []Item
	for _, slot := range Slots {
		if it := e.Occupant(slot); it != nil {
			out = append(out, *it)
		}
	}
	return out
}

// AggregateBonus sums the stat bonuses of every occupied slot.
//
// Postcondition: an empty Equipment yields the zero Attributes.
func (e *Equipment) AggregateBonus() stats.Attributes {
	items := e.Items()
	bonuses := make([]stats.Attributes, len(items))
	for i, it := range items {
		bonuses[i] = it.Stats
	}
	return stats.Sum(bonuses...)
}
