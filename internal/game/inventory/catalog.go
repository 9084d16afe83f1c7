package inventory

import (
	"fmt"
	"sort"
)

// Catalog holds every loaded item definition indexed by ID.
//
// Lookups return copies, so callers can mutate what they receive without
// affecting the catalog.
type Catalog struct {
	items map[int]Item
}

// NewCatalog returns a Catalog holding items.
//
// Postcondition: Item(id) finds every entry of items; returns error on a
// duplicate ID.
func NewCatalog(items []Item) (*Catalog, error) {
	c := &Catalog{items: make(map[int]Item, len(items))}
	for _, it := range items {
		if err := c.Register(it); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Register adds it to the catalog.
//
// Postcondition: Item(it.ID) returns (it, true); returns error if it.ID is
// already registered.
func (c *Catalog) Register(it Item) error {
	if _, exists := c.items[it.ID]; exists {
		return fmt.Errorf("inventory: Catalog.Register: item ID %d already registered", it.ID)
	}
	c.items[it.ID] = it
	return nil
}

// Item returns a copy of the item with the given id and whether it was found.
//
// Postcondition: ok is true iff the id is registered.
func (c *Catalog) Item(id int) (Item, bool) {
	it, ok := c.items[id]
	return it, ok
}

// Name returns the display name of the item with the given id, or "" when
// the id is unknown.
func (c *Catalog) Name(id int) string {
	return c.items[id].Name
}

// Len returns the number of registered items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// All returns copies of every item ordered by ID.
func (c *Catalog) All() []Item {
	out := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
