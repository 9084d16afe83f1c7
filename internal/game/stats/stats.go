// Package stats defines the four-attribute model shared by characters, items,
// and monsters.
package stats

import (
	"fmt"
	"strings"
)

// Attributes is a set of the four core attributes. The same shape is used for
// a character's base stats, an item's bonus, and the derived total.
//
// Invariant: Attributes is a pure value; no operation on it clamps.
type Attributes struct {
	Health   int `yaml:"health" json:"health"`
	Strength int `yaml:"strength" json:"strength"`
	Defense  int `yaml:"defense" json:"defense"`
	Agility  int `yaml:"agility" json:"agility"`
}

// Add returns the componentwise sum of a and o.
//
// Postcondition: a.Add(o) == o.Add(a); a.Add(Attributes{}) == a.
func (a Attributes) Add(o Attributes) Attributes {
	return Attributes{
		Health:   a.Health + o.Health,
		Strength: a.Strength + o.Strength,
		Defense:  a.Defense + o.Defense,
		Agility:  a.Agility + o.Agility,
	}
}

// ApplyDelta returns base with delta added componentwise.
func ApplyDelta(base, delta Attributes) Attributes {
	return base.Add(delta)
}

// Sum folds sets with Add, starting from the zero set.
func Sum(sets ...Attributes) Attributes {
	var total Attributes
	for _, s := range sets {
		total = total.Add(s)
	}
	return total
}

// IsZero reports whether every attribute is zero.
func (a Attributes) IsZero() bool {
	return a == Attributes{}
}

// String lists the non-zero attributes as signed deltas, e.g. "+3 STR, -1 AGI".
// The zero set renders as "none".
func (a Attributes) String() string {
	var parts []string
	for _, f := range []struct {
		label string
		v     int
	}{
		{"HP", a.Health},
		{"STR", a.Strength},
		{"DEF", a.Defense},
		{"AGI", a.Agility},
	} {
		if f.v != 0 {
			parts = append(parts, fmt.Sprintf("%+d %s", f.v, f.label))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
