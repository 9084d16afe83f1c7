// Package character defines the player record and the operations that mutate
// it: health changes, kill bookkeeping, and the equip/use engine.
package character

import (
	"github.com/cory-johannsen/wayfarer/internal/game/inventory"
	"github.com/cory-johannsen/wayfarer/internal/game/stats"
)

// Player is the single playable character and the unit of persistence.
//
// Invariant: 0 <= CurrentHealth <= MaxHealth() after every mutating method.
type Player struct {
	Name          string              `yaml:"name" json:"name"`
	BaseStats     stats.Attributes    `yaml:"base_stats" json:"base_stats"`
	CurrentHealth int                 `yaml:"current_health" json:"current_health"`
	Inventory     inventory.Backpack  `yaml:"inventory" json:"inventory"`
	Equipment     inventory.Equipment `yaml:"equipment" json:"equipment"`
	ZoneID        int                 `yaml:"current_zone_id" json:"current_zone_id"`
	Kills         map[int]int         `yaml:"monster_kills" json:"monster_kills"`
}

// TotalStats returns the base stats plus every equipped bonus.
func (p *Player) TotalStats() stats.Attributes {
	return p.BaseStats.Add(p.Equipment.AggregateBonus())
}

// MaxHealth returns the health component of TotalStats.
func (p *Player) MaxHealth() int {
	return p.TotalStats().Health
}

// IsAlive reports whether current health is above zero.
func (p *Player) IsAlive() bool {
	return p.CurrentHealth > 0
}

// ClampHealth restores the health invariant after max health may have changed.
//
// Postcondition: 0 <= CurrentHealth <= max(MaxHealth(), 0).
func (p *Player) ClampHealth() {
	if limit := p.MaxHealth(); p.CurrentHealth > limit {
		p.CurrentHealth = limit
	}
	if p.CurrentHealth < 0 {
		p.CurrentHealth = 0
	}
}

// Heal adds amount to current health, capped at MaxHealth, and returns the
// amount actually restored.
//
// Precondition: amount >= 0.
func (p *Player) Heal(amount int) int {
	before := p.CurrentHealth
	p.CurrentHealth += amount
	p.ClampHealth()
	return p.CurrentHealth - before
}

// TakeDamage subtracts amount from current health, flooring at 0, and
// returns the amount actually lost.
//
// Precondition: amount >= 0.
func (p *Player) TakeDamage(amount int) int {
	before := p.CurrentHealth
	p.CurrentHealth -= amount
	p.ClampHealth()
	return before - p.CurrentHealth
}

// Respawn revives a defeated player with 1 health in zoneID.
func (p *Player) Respawn(zoneID int) {
	p.CurrentHealth = 1
	p.ZoneID = zoneID
	p.ClampHealth()
}

// AddKill increments the kill counter for monsterID.
//
// Postcondition: KillCount(monsterID) grows by exactly one.
func (p *Player) AddKill(monsterID int) {
	if p.Kills == nil {
		p.Kills = make(map[int]int)
	}
	p.Kills[monsterID]++
}

// KillCount returns how many times monsterID has been defeated.
func (p *Player) KillCount(monsterID int) int {
	return p.Kills[monsterID]
}
