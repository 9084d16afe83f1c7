package npc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/wayfarer/internal/game/quest"
)

// NPC is a non-hostile character that talks and hands out quests. Quests is
// the NPC's own copy; completing one here never touches the quest catalog.
type NPC struct {
	ID          int
	Name        string
	Description string
	Dialogue    []string
	Quests      []quest.Quest
}

// Greeting returns the NPC's opening line.
//
// Postcondition: Returns a non-empty string.
func (n *NPC) Greeting() string {
	if len(n.Dialogue) == 0 {
		return fmt.Sprintf("%s has nothing to say.", n.Name)
	}
	return fmt.Sprintf("%s says: %q", n.Name, n.Dialogue[0])
}

// Record is the content form of an NPC, with quests referenced by id.
type Record struct {
	ID          int      `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Dialogue    []string `yaml:"dialogue"`
	Quests      []int    `yaml:"quests"`
}

// Validate checks that the record satisfies basic invariants.
func (r *Record) Validate() error {
	if r.ID < 1 {
		return fmt.Errorf("npc: id must be >= 1")
	}
	if r.Name == "" {
		return fmt.Errorf("npc %d: name must not be empty", r.ID)
	}
	return nil
}

// FromRecord resolves rec's quest ids against quests.
//
// Postcondition: the NPC holds deep copies of the referenced quests in
// record order; ids not present in quests are dropped.
func FromRecord(rec Record, quests map[int]quest.Quest) NPC {
	n := NPC{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Dialogue:    append([]string(nil), rec.Dialogue...),
	}
	for _, id := range rec.Quests {
		if q, ok := quests[id]; ok {
			n.Quests = append(n.Quests, q.Clone())
		}
	}
	return n
}

// Clone returns a copy of n that shares no memory with it.
func (n NPC) Clone() NPC {
	n.Dialogue = append([]string(nil), n.Dialogue...)
	qs := make([]quest.Quest, len(n.Quests))
	for i, q := range n.Quests {
		qs[i] = q.Clone()
	}
	n.Quests = qs
	return n
}

type recordsFile struct {
	NPCs []Record `yaml:"npcs"`
}

// LoadRecordsFromBytes parses a YAML document with a top-level "npcs" list.
//
// Postcondition: every record is valid; duplicate ids are an error.
func LoadRecordsFromBytes(data []byte) ([]Record, error) {
	var f recordsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing npcs YAML: %w", err)
	}
	seen := make(map[int]bool, len(f.NPCs))
	for i := range f.NPCs {
		if err := f.NPCs[i].Validate(); err != nil {
			return nil, err
		}
		if seen[f.NPCs[i].ID] {
			return nil, fmt.Errorf("npc %d defined twice", f.NPCs[i].ID)
		}
		seen[f.NPCs[i].ID] = true
	}
	return f.NPCs, nil
}

// LoadRecords reads the npcs file at path.
func LoadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading npcs %q: %w", path, err)
	}
	return LoadRecordsFromBytes(data)
}
