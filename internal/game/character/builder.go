package character

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/wayfarer/internal/game/inventory"
	"github.com/cory-johannsen/wayfarer/internal/game/ruleset"
)

// DefaultName is used when character creation is given a blank name.
const DefaultName = "Unknown"

// Build constructs a new Player from a name and a starting profile.
// The player starts at full health in startZone carrying catalog copies of
// the profile's starter items, in profile order.
//
// Precondition: profile and items must be non-nil.
// Postcondition: Returns a Player ready for play, or a non-nil error when a
// starter item id is missing from the catalog.
func Build(name string, profile *ruleset.Profile, items *inventory.Catalog, startZone int) (*Player, error) {
	if profile == nil {
		return nil, errors.New("profile must not be nil")
	}
	if items == nil {
		return nil, errors.New("item catalog must not be nil")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}

	p := &Player{
		Name:      name,
		BaseStats: profile.Stats,
		ZoneID:    startZone,
		Kills:     make(map[int]int),
	}
	for _, id := range profile.StarterItems {
		it, ok := items.Item(id)
		if !ok {
			return nil, fmt.Errorf("profile %q: starter item %d not in catalog", profile.ID, id)
		}
		p.Inventory.Add(it)
	}
	p.CurrentHealth = p.MaxHealth()
	return p, nil
}
