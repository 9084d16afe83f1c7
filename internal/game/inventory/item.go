// Package inventory defines items, the item catalog, the backpack, and the
// three equipment slots.
package inventory

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/wayfarer/internal/game/stats"
)

// ItemType classifies an item. Only weapon, armor, and amulet items can be
// equipped; only consumable items can be used.
type ItemType string

// ItemType constants.
const (
	TypeConsumable ItemType = "consumable"
	TypeWeapon     ItemType = "weapon"
	TypeArmor      ItemType = "armor"
	TypeAmulet     ItemType = "amulet"
	TypeKey        ItemType = "key"
	TypeQuestItem  ItemType = "quest_item"
	TypeOther      ItemType = "other"
)

// validTypes is the set of valid item types.
var validTypes = map[ItemType]bool{
	TypeConsumable: true,
	TypeWeapon:     true,
	TypeArmor:      true,
	TypeAmulet:     true,
	TypeKey:        true,
	TypeQuestItem:  true,
	TypeOther:      true,
}

// Item is a catalog entry or a backpack entry. Items hold no reference
// fields, so assigning an Item produces an independent copy.
type Item struct {
	ID          int              `yaml:"id" json:"id"`
	Name        string           `yaml:"name" json:"name"`
	Description string           `yaml:"description" json:"description"`
	Value       int              `yaml:"value" json:"value"`
	Type        ItemType         `yaml:"type" json:"type"`
	Usable      bool             `yaml:"usable" json:"usable"`
	Stats       stats.Attributes `yaml:"stats" json:"stats"`
}

// IsEquipable reports whether the item fits an equipment slot.
func (it Item) IsEquipable() bool {
	_, ok := it.Slot()
	return ok
}

// IsConsumable reports whether the item is a consumable.
func (it Item) IsConsumable() bool {
	return it.Type == TypeConsumable
}

// Slot returns the equipment slot matching the item's type.
//
// Postcondition: ok is true iff the type is weapon, armor, or amulet.
func (it Item) Slot() (Slot, bool) {
	switch it.Type {
	case TypeWeapon:
		return SlotWeapon, true
	case TypeArmor:
		return SlotArmor, true
	case TypeAmulet:
		return SlotAmulet, true
	default:
		return "", false
	}
}

// Validate checks that the Item satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (it *Item) Validate() error {
	var errs []error
	if it.ID <= 0 {
		errs = append(errs, errors.New("ID must be > 0"))
	}
	if it.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if !validTypes[it.Type] {
		errs = append(errs, fmt.Errorf("Type must be one of consumable, weapon, armor, amulet, key, quest_item, other; got %q", it.Type))
	}
	if it.Value < 0 {
		errs = append(errs, errors.New("Value must be >= 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item %d validation failed: %v", it.ID, errs)
	}
	return nil
}

type itemsFile struct {
	Items []Item `yaml:"items"`
}

// LoadItemsFromBytes parses a YAML document with a top-level "items" list
// and validates every entry.
//
// Postcondition: returns all items in document order or the first error.
func LoadItemsFromBytes(data []byte) ([]Item, error) {
	var f itemsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("LoadItems: cannot parse items: %w", err)
	}
	for i := range f.Items {
		if err := f.Items[i].Validate(); err != nil {
			return nil, fmt.Errorf("LoadItems: invalid item at index %d: %w", i, err)
		}
	}
	return f.Items, nil
}

// LoadItems reads and parses the items file at path.
//
// Precondition: path is a readable file.
func LoadItems(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadItems: cannot read file %q: %w", path, err)
	}
	return LoadItemsFromBytes(data)
}
