// Package progression records what a player gains from defeating monsters.
package progression

import (
	"sort"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wayfarer/internal/game/character"
	"github.com/cory-johannsen/wayfarer/internal/game/inventory"
	"github.com/cory-johannsen/wayfarer/internal/game/npc"
)

// Reward summarises a victory. Experience is reported but not accumulated;
// there is no leveling.
type Reward struct {
	MonsterID   int
	MonsterName string
	Items       []inventory.Item
	Experience  int
	// Kills is the player's kill count for this monster after the victory.
	Kills int
}

// Tracker applies victory bookkeeping to the player.
type Tracker struct {
	items  *inventory.Catalog
	logger *zap.Logger
}

// NewTracker creates a Tracker resolving loot against items.
//
// Precondition: items and logger must be non-nil.
func NewTracker(items *inventory.Catalog, logger *zap.Logger) *Tracker {
	return &Tracker{items: items, logger: logger}
}

// RecordVictory credits p with defeating m: the kill counter for m.ID goes up
// by one and a catalog copy of every known loot id is appended to p's backpack.
//
// Precondition: p and m must be non-nil.
// Postcondition: p.KillCount(m.ID) grows by exactly one.
func (t *Tracker) RecordVictory(p *character.Player, m *npc.Monster) Reward {
	p.AddKill(m.ID)
	drops := npc.DropLoot(m, t.items)
	for _, it := range drops {
		p.Inventory.Add(it)
	}
	reward := Reward{
		MonsterID:   m.ID,
		MonsterName: m.Name,
		Items:       drops,
		Experience:  m.Experience,
		Kills:       p.KillCount(m.ID),
	}
	t.logger.Info("monster defeated",
		zap.String("player", p.Name),
		zap.Int("monster_id", m.ID),
		zap.String("monster", m.Name),
		zap.Int("loot", len(drops)),
		zap.Int("experience", m.Experience),
		zap.Int("kills", reward.Kills),
	)
	return reward
}

// KillSummary is one line of the kill statistics view.
type KillSummary struct {
	MonsterID int
	Name      string
	Count     int
}

// Kills returns p's kill counts ordered by monster id, naming each monster
// through names. Monsters without a known name are skipped.
func Kills(p *character.Player, names map[int]string) []KillSummary {
	var out []KillSummary
	for id, count := range p.Kills {
		name, ok := names[id]
		if !ok || count <= 0 {
			continue
		}
		out = append(out, KillSummary{MonsterID: id, Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MonsterID < out[j].MonsterID })
	return out
}
