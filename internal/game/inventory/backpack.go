package inventory

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Backpack is the ordered, unbounded list of items a character carries.
// Order is insertion order; displayed indices are positions in it.
type Backpack struct {
	items []Item
}

// NewBackpack returns a Backpack holding copies of items.
func NewBackpack(items ...Item) *Backpack {
	return &Backpack{items: append([]Item(nil), items...)}
}

// Add appends it to the end of the backpack.
//
// Postcondition: Len() grows by one and At(Len()-1) == it.
func (b *Backpack) Add(it Item) {
	b.items = append(b.items, it)
}

// At returns a copy of the item at index.
//
// Postcondition: returns ErrInvalidIndex when index is out of bounds.
func (b *Backpack) At(index int) (Item, error) {
	if index < 0 || index >= len(b.items) {
		return Item{}, fmt.Errorf("%w: %d (have %d items)", ErrInvalidIndex, index, len(b.items))
	}
	return b.items[index], nil
}

// RemoveAt removes and returns the item at index, preserving the order of the rest.
//
// Postcondition: on success Len() shrinks by one; on error the backpack is unchanged.
func (b *Backpack) RemoveAt(index int) (Item, error) {
	it, err := b.At(index)
	if err != nil {
		return Item{}, err
	}
	b.items = append(b.items[:index], b.items[index+1:]...)
	return it, nil
}

// IndexOf returns the index of the first item with the given catalog id, or -1.
func (b *Backpack) IndexOf(itemID int) int {
	for i, it := range b.items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

// RemoveFirst removes the first item with the given catalog id.
//
// Postcondition: ok is false and the backpack is unchanged when no entry matches.
func (b *Backpack) RemoveFirst(itemID int) (Item, bool) {
	i := b.IndexOf(itemID)
	if i < 0 {
		return Item{}, false
	}
	it, _ := b.RemoveAt(i)
	return it, true
}

// Items returns a snapshot copy of all items in the backpack.
//
// Postcondition: returned slice is a copy; mutations do not affect the backpack.
func (b *Backpack) Items() []Item {
	out := make([]Item, len(b.items))
	copy(out, b.items)
	return out
}

// Len returns the number of items carried.
func (b *Backpack) Len() int {
	return len(b.items)
}

// MarshalJSON encodes the backpack as a plain list.
func (b Backpack) MarshalJSON() ([]byte, error) {
	if b.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(b.items)
}

// UnmarshalJSON decodes a plain list.
func (b *Backpack) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &b.items)
}

// MarshalYAML encodes the backpack as a plain list.
func (b Backpack) MarshalYAML() (interface{}, error) {
	if b.items == nil {
		return []Item{}, nil
	}
	return b.items, nil
}

// UnmarshalYAML decodes a plain list.
func (b *Backpack) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&b.items)
}
