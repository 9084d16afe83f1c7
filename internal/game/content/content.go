// Package content loads a complete game content directory and cross-links
// its records into playable zones.
package content

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wayfarer/internal/game/inventory"
	"github.com/cory-johannsen/wayfarer/internal/game/npc"
	"github.com/cory-johannsen/wayfarer/internal/game/quest"
	"github.com/cory-johannsen/wayfarer/internal/game/ruleset"
	"github.com/cory-johannsen/wayfarer/internal/game/world"
)

// File names expected inside a content directory.
const (
	ItemsFile    = "items.yaml"
	QuestsFile   = "quests.yaml"
	NPCsFile     = "npcs.yaml"
	MonstersFile = "monsters.yaml"
	ZonesFile    = "zones.yaml"
	ProfilesDir  = "profiles"
)

// Pack is the fully resolved content of one directory.
type Pack struct {
	Items    *inventory.Catalog
	Quests   map[int]quest.Quest
	NPCs     map[int]npc.NPC
	Monsters map[int]*npc.Template
	// Zones is ordered by id.
	Zones    []*world.Zone
	Profiles []*ruleset.Profile
}

// Load reads every content file under dir and links them.
//
// Precondition: dir must contain the five content files and a profiles directory.
// Postcondition: NPC quest ids and zone occupant ids that do not resolve are
// dropped with a warning; malformed records and duplicate ids are errors.
func Load(dir string, logger *zap.Logger) (*Pack, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	items, err := inventory.LoadItems(filepath.Join(dir, ItemsFile))
	if err != nil {
		return nil, err
	}
	catalog, err := inventory.NewCatalog(items)
	if err != nil {
		return nil, fmt.Errorf("building item catalog: %w", err)
	}

	questList, err := quest.LoadQuests(filepath.Join(dir, QuestsFile))
	if err != nil {
		return nil, err
	}
	quests := make(map[int]quest.Quest, len(questList))
	for _, q := range questList {
		quests[q.ID] = q
	}

	records, err := npc.LoadRecords(filepath.Join(dir, NPCsFile))
	if err != nil {
		return nil, err
	}
	npcs := make(map[int]npc.NPC, len(records))
	for _, rec := range records {
		for _, qid := range rec.Quests {
			if _, ok := quests[qid]; !ok {
				logger.Warn("npc references unknown quest", zap.Int("npc", rec.ID), zap.Int("quest", qid))
			}
		}
		npcs[rec.ID] = npc.FromRecord(rec, quests)
	}

	templates, err := npc.LoadTemplates(filepath.Join(dir, MonstersFile))
	if err != nil {
		return nil, err
	}
	monsters := make(map[int]*npc.Template, len(templates))
	for _, tmpl := range templates {
		monsters[tmpl.ID] = tmpl
	}

	zoneRecords, err := world.LoadRecords(filepath.Join(dir, ZonesFile))
	if err != nil {
		return nil, err
	}
	zones := make([]*world.Zone, 0, len(zoneRecords))
	for _, rec := range zoneRecords {
		z, err := world.BuildZone(rec, npcs, monsters)
		if err != nil {
			return nil, err
		}
		if dropped := len(rec.NPCs) + len(rec.Monsters) - len(z.NPCs) - len(z.Monsters); dropped > 0 {
			logger.Warn("zone references unknown occupants", zap.Int("zone", rec.ID), zap.Int("dropped", dropped))
		}
		zones = append(zones, z)
	}
	sort.Slice(zones, func(i, j int) bool { return zones[i].ID < zones[j].ID })

	profiles, err := ruleset.LoadProfiles(filepath.Join(dir, ProfilesDir))
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		for _, id := range p.StarterItems {
			if _, ok := catalog.Item(id); !ok {
				return nil, fmt.Errorf("profile %s: unknown starter item %d", p.ID, id)
			}
		}
	}

	pack := &Pack{
		Items:    catalog,
		Quests:   quests,
		NPCs:     npcs,
		Monsters: monsters,
		Zones:    zones,
		Profiles: profiles,
	}
	logger.Info("content loaded",
		zap.String("dir", dir),
		zap.Int("items", catalog.Len()),
		zap.Int("quests", len(quests)),
		zap.Int("npcs", len(npcs)),
		zap.Int("monsters", len(monsters)),
		zap.Int("zones", len(zones)),
		zap.Int("profiles", len(profiles)),
	)
	return pack, nil
}

// World indexes the pack's zones for navigation.
//
// Postcondition: Returns an error wrapping world.ErrZoneNotFound when
// startZone is not part of the pack.
func (p *Pack) World(startZone int) (*world.Manager, error) {
	if len(p.Zones) == 0 {
		return nil, errors.New("content pack has no zones")
	}
	return world.NewManager(p.Zones, startZone)
}

// MonsterNames maps every monster template id to its display name.
func (p *Pack) MonsterNames() map[int]string {
	names := make(map[int]string, len(p.Monsters))
	for id, t := range p.Monsters {
		names[id] = t.Name
	}
	return names
}

// BrokenExit is a listed exit whose destination zone is not in the pack.
type BrokenExit struct {
	ZoneID      int
	Direction   world.Direction
	Destination int
}

// BrokenExits lists every exit that navigation would report as blocked
// because no zone exists at its destination, ordered by zone id.
func (p *Pack) BrokenExits() []BrokenExit {
	ids := make(map[int]bool, len(p.Zones))
	for _, z := range p.Zones {
		ids[z.ID] = true
	}
	var out []BrokenExit
	for _, z := range p.Zones {
		for _, dir := range z.Exits {
			dest := world.Destination(z.ID, dir)
			if !ids[dest] {
				out = append(out, BrokenExit{ZoneID: z.ID, Direction: dir, Destination: dest})
			}
		}
	}
	return out
}
