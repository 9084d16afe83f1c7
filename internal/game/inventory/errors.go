package inventory

import "errors"

var (
	// ErrInvalidIndex is returned when a backpack index is out of bounds.
	ErrInvalidIndex = errors.New("invalid inventory index")
	// ErrNotEquipable is returned when equipping an item with no slot.
	ErrNotEquipable = errors.New("item cannot be equipped")
	// ErrNotUsable is returned when using an item that is not a usable consumable.
	ErrNotUsable = errors.New("item cannot be used")
	// ErrSlotEmpty is returned when unequipping an empty slot.
	ErrSlotEmpty = errors.New("equipment slot is empty")
	// ErrUnknownSlot is returned for a slot name outside weapon, armor, amulet.
	ErrUnknownSlot = errors.New("unknown equipment slot")
)
