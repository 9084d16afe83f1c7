package npc

import "github.com/cory-johannsen/wayfarer/internal/game/inventory"

// DropLoot resolves the monster's loot ids against items.
//
// Postcondition: one catalog copy per loot id, in loot order; ids missing
// from the catalog are skipped.
func DropLoot(m *Monster, items *inventory.Catalog) []inventory.Item {
	var out []inventory.Item
	for _, id := range m.Loot {
		if it, ok := items.Item(id); ok {
			out = append(out, it)
		}
	}
	return out
}
