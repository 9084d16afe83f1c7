package session

import (
	"github.com/cory-johannsen/wayfarer/internal/game/inventory"
	"github.com/cory-johannsen/wayfarer/internal/game/progression"
	"github.com/cory-johannsen/wayfarer/internal/game/stats"
)

// Summary is the character sheet view.
type Summary struct {
	Name      string
	Base      stats.Attributes
	Bonus     stats.Attributes
	Total     stats.Attributes
	Health    int
	MaxHealth int
	ZoneID    int
	// ZoneName is empty when the current zone is not loaded.
	ZoneName  string
	Equipment map[inventory.Slot]*inventory.Item
	Kills     []progression.KillSummary
}

// TotalStats returns base stats plus every equipped bonus.
func (s *Session) TotalStats() stats.Attributes {
	return s.player.TotalStats()
}

// Summary returns the character sheet for the player.
func (s *Session) Summary() Summary {
	p := s.player
	sum := Summary{
		Name:      p.Name,
		Base:      p.BaseStats,
		Bonus:     p.Equipment.AggregateBonus(),
		Total:     p.TotalStats(),
		Health:    p.CurrentHealth,
		MaxHealth: p.MaxHealth(),
		ZoneID:    p.ZoneID,
		Equipment: make(map[inventory.Slot]*inventory.Item, len(inventory.Slots)),
		Kills:     progression.Kills(p, s.monsterNames),
	}
	if z, ok := s.world.Zone(p.ZoneID); ok {
		sum.ZoneName = z.Name
	}
	for _, slot := range inventory.Slots {
		sum.Equipment[slot] = p.Equipment.Occupant(slot)
	}
	return sum
}
