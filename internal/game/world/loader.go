package world

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/wayfarer/internal/game/npc"
)

// yamlZoneFile is the top-level YAML structure for the zones file.
type yamlZoneFile struct {
	Zones []Record `yaml:"zones"`
}

// Record is the content form of a zone: exits as free-form names and
// occupants as ids.
type Record struct {
	ID          int      `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Connections []string `yaml:"connections"`
	NPCs        []int    `yaml:"npcs"`
	Monsters    []int    `yaml:"monsters"`
}

// LoadRecordsFromBytes parses a YAML document with a top-level "zones" list.
//
// Postcondition: duplicate zone ids are an error.
func LoadRecordsFromBytes(data []byte) ([]Record, error) {
	var file yamlZoneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing zone YAML: %w", err)
	}
	seen := make(map[int]bool, len(file.Zones))
	for _, r := range file.Zones {
		if seen[r.ID] {
			return nil, fmt.Errorf("duplicate zone ID: %d", r.ID)
		}
		seen[r.ID] = true
	}
	return file.Zones, nil
}

// LoadRecords reads the zones file at path.
//
// Precondition: path must point to a readable YAML file.
func LoadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading zone file %s: %w", path, err)
	}
	return LoadRecordsFromBytes(data)
}

// BuildZone converts a record into a validated Zone, resolving its occupants.
//
// Connections are matched case-insensitively; unknown and repeated names are
// dropped. NPC and monster ids missing from npcs or monsters are dropped. Each
// NPC is deep-copied so quest progress stays local to this zone, and each
// monster starts at full health.
//
// Postcondition: Returns a validated Zone or a non-nil error.
func BuildZone(rec Record, npcs map[int]npc.NPC, monsters map[int]*npc.Template) (*Zone, error) {
	zone := &Zone{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: strings.TrimSpace(rec.Description),
	}
	for _, c := range rec.Connections {
		d, ok := ParseDirection(c)
		if !ok || zone.HasExit(d) {
			continue
		}
		zone.Exits = append(zone.Exits, d)
	}
	for _, id := range rec.NPCs {
		if n, ok := npcs[id]; ok {
			zone.NPCs = append(zone.NPCs, n.Clone())
		}
	}
	for _, id := range rec.Monsters {
		if tmpl, ok := monsters[id]; ok {
			zone.Monsters = append(zone.Monsters, npc.NewMonster(tmpl))
		}
	}
	if err := zone.Validate(); err != nil {
		return nil, fmt.Errorf("validating zone: %w", err)
	}
	return zone, nil
}
