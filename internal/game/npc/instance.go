package npc

import (
	"strings"

	"github.com/cory-johannsen/wayfarer/internal/game/stats"
)

// Monster is a live, mutable monster. Zones hold one per placed template and
// every encounter fights a Clone, so damage never leaks back into the zone.
type Monster struct {
	ID            int
	Name          string
	Description   string
	MaxHealth     int
	CurrentHealth int
	Strength      int
	Defense       int
	Agility       int
	Loot          []int
	Experience    int
}

// NewMonster creates a full-health monster from tmpl.
//
// Precondition: tmpl must be non-nil.
// Postcondition: CurrentHealth equals tmpl.Health; Loot shares no memory with tmpl.
func NewMonster(tmpl *Template) Monster {
	return Monster{
		ID:            tmpl.ID,
		Name:          tmpl.Name,
		Description:   tmpl.Description,
		MaxHealth:     tmpl.Health,
		CurrentHealth: tmpl.Health,
		Strength:      tmpl.Strength,
		Defense:       tmpl.Defense,
		Agility:       tmpl.Agility,
		Loot:          append([]int(nil), tmpl.Loot...),
		Experience:    tmpl.Experience,
	}
}

// Clone returns an independent copy of m.
func (m Monster) Clone() Monster {
	m.Loot = append([]int(nil), m.Loot...)
	return m
}

// Attributes returns the monster's combat stats in the shared attribute shape.
func (m *Monster) Attributes() stats.Attributes {
	return stats.Attributes{
		Health:   m.CurrentHealth,
		Strength: m.Strength,
		Defense:  m.Defense,
		Agility:  m.Agility,
	}
}

// IsAlive reports whether the monster has health left.
func (m *Monster) IsAlive() bool {
	return m.CurrentHealth > 0
}

// TakeDamage subtracts amount from current health, flooring at 0, and
// returns the amount actually lost.
//
// Precondition: amount >= 0.
func (m *Monster) TakeDamage(amount int) int {
	before := m.CurrentHealth
	m.CurrentHealth -= amount
	if m.CurrentHealth < 0 {
		m.CurrentHealth = 0
	}
	return before - m.CurrentHealth
}

// HealthPercent returns current health as a whole percentage of max health.
//
// Postcondition: result is in [0, 100].
func (m *Monster) HealthPercent() int {
	if m.MaxHealth <= 0 || m.CurrentHealth <= 0 {
		return 0
	}
	pct := m.CurrentHealth * 100 / m.MaxHealth
	if pct > 100 {
		pct = 100
	}
	return pct
}

// HealthBar renders current health as a bar of width cells, e.g. "[####------]".
//
// Precondition: width >= 1.
func (m *Monster) HealthBar(width int) string {
	if width < 1 {
		width = 1
	}
	filled := m.HealthPercent() * width / 100
	if filled == 0 && m.IsAlive() {
		filled = 1
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// HealthDescription returns a visible health state string suitable for examine output.
//
// Postcondition: Returns a non-empty string.
func (m *Monster) HealthDescription() string {
	if m.CurrentHealth <= 0 {
		return "dead"
	}
	pct := float64(m.CurrentHealth) / float64(m.MaxHealth)
	switch {
	case pct >= 1.0:
		return "unharmed"
	case pct >= 0.85:
		return "barely scratched"
	case pct >= 0.60:
		return "lightly wounded"
	case pct >= 0.40:
		return "moderately wounded"
	case pct >= 0.20:
		return "heavily wounded"
	default:
		return "critically wounded"
	}
}
