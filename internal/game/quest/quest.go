// Package quest defines quests and the fulfillment check run when the player
// talks to an NPC.
package quest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Quest is a task offered by an NPC. A quest with a RequiredItemID is
// fulfilled by handing over that item; one without is fulfilled on contact.
type Quest struct {
	ID             int    `yaml:"id" json:"id"`
	Name           string `yaml:"name" json:"name"`
	Description    string `yaml:"description" json:"description"`
	RequiredItemID *int   `yaml:"required_item_id,omitempty" json:"required_item_id,omitempty"`
	Completed      bool   `yaml:"completed" json:"completed"`
}

// Clone returns a copy of q that shares no memory with it.
func (q Quest) Clone() Quest {
	if q.RequiredItemID != nil {
		id := *q.RequiredItemID
		q.RequiredItemID = &id
	}
	return q
}

// Validate checks that the Quest satisfies its invariants.
func (q *Quest) Validate() error {
	var errs []error
	if q.ID <= 0 {
		errs = append(errs, errors.New("id must be > 0"))
	}
	if q.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if q.RequiredItemID != nil && *q.RequiredItemID <= 0 {
		errs = append(errs, errors.New("required_item_id must be > 0 when set"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("quest %d validation failed: %v", q.ID, errs)
	}
	return nil
}

type questsFile struct {
	Quests []Quest `yaml:"quests"`
}

// LoadQuestsFromBytes parses a YAML document with a top-level "quests" list.
//
// Postcondition: every returned quest is valid; duplicate ids are an error.
func LoadQuestsFromBytes(data []byte) ([]Quest, error) {
	var f questsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing quests YAML: %w", err)
	}
	seen := make(map[int]bool, len(f.Quests))
	for i := range f.Quests {
		q := &f.Quests[i]
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("quest id %d defined twice", q.ID)
		}
		seen[q.ID] = true
	}
	return f.Quests, nil
}

// LoadQuests reads and parses the quests file at path.
func LoadQuests(path string) ([]Quest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading quests %q: %w", path, err)
	}
	return LoadQuestsFromBytes(data)
}
