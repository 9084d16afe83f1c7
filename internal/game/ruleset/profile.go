// Package ruleset holds the character-creation rules: the starting profiles a
// new character can be built from.
package ruleset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/wayfarer/internal/game/stats"
)

// Profile defines a starting attribute spread and kit for character creation.
//
// Precondition: ID and Name must be non-empty and Stats.Health > 0 after loading.
type Profile struct {
	ID           string           `yaml:"id"`
	Name         string           `yaml:"name"`
	Description  string           `yaml:"description"`
	Stats        stats.Attributes `yaml:"stats"`
	StarterItems []int            `yaml:"starter_items"`
}

// Validate checks that the Profile satisfies its invariants.
func (p *Profile) Validate() error {
	var errs []error
	if p.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if p.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if p.Stats.Health <= 0 {
		errs = append(errs, errors.New("stats.health must be > 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("profile %q validation failed: %v", p.ID, errs)
	}
	return nil
}

// LoadProfiles reads all .yaml files in dir and parses each as a Profile.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all valid profiles sorted by ID, or a non-nil error.
// Duplicate IDs are an error.
func LoadProfiles(dir string) ([]*Profile, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	profiles := make([]*Profile, 0, len(files))
	seen := make(map[string]string, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var p Profile
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parsing profile file %s: %w", path, err)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if prev, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("profile %q defined in both %s and %s", p.ID, prev, path)
		}
		seen[p.ID] = path
		profiles = append(profiles, &p)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].ID < profiles[j].ID })
	return profiles, nil
}

// FindProfile returns the profile with the given ID, case-insensitively.
func FindProfile(profiles []*Profile, id string) (*Profile, bool) {
	for _, p := range profiles {
		if strings.EqualFold(p.ID, id) {
			return p, true
		}
	}
	return nil, false
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
