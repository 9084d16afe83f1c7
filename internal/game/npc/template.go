// Package npc provides monster templates, per-encounter monster copies, and
// quest-giving NPCs.
package npc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Template defines a monster as stored in content and in a zone. Encounters
// never mutate a Template; they fight a Monster built from it.
type Template struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Health      int    `yaml:"health"`
	Strength    int    `yaml:"strength"`
	Defense     int    `yaml:"defense"`
	Agility     int    `yaml:"agility"`
	Loot        []int  `yaml:"loot"`
	Experience  int    `yaml:"experience"`
}

// Validate checks that the template satisfies basic invariants.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff ID >= 1, Name is non-empty, Health >= 1, and
// Experience >= 0; returns an error on the first violation otherwise.
func (t *Template) Validate() error {
	if t.ID < 1 {
		return fmt.Errorf("monster template: id must be >= 1")
	}
	if t.Name == "" {
		return fmt.Errorf("monster template %d: name must not be empty", t.ID)
	}
	if t.Health < 1 {
		return fmt.Errorf("monster template %d: health must be >= 1", t.ID)
	}
	if t.Experience < 0 {
		return fmt.Errorf("monster template %d: experience must be >= 0", t.ID)
	}
	return nil
}

type templatesFile struct {
	Monsters []*Template `yaml:"monsters"`
}

// LoadTemplatesFromBytes parses a YAML document with a top-level "monsters" list.
//
// Postcondition: Returns validated templates in document order, or an error.
// Duplicate ids are an error.
func LoadTemplatesFromBytes(data []byte) ([]*Template, error) {
	var f templatesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing monsters YAML: %w", err)
	}
	seen := make(map[int]bool, len(f.Monsters))
	for _, tmpl := range f.Monsters {
		if tmpl == nil {
			return nil, fmt.Errorf("monsters YAML: empty entry")
		}
		if err := tmpl.Validate(); err != nil {
			return nil, err
		}
		if seen[tmpl.ID] {
			return nil, fmt.Errorf("monster template %d defined twice", tmpl.ID)
		}
		seen[tmpl.ID] = true
	}
	return f.Monsters, nil
}

// LoadTemplates reads the monsters file at path.
//
// Precondition: path must be a readable file.
func LoadTemplates(path string) ([]*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading monsters %q: %w", path, err)
	}
	return LoadTemplatesFromBytes(data)
}
