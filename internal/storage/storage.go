// Package storage defines player persistence shared by every backend.
package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/cory-johannsen/wayfarer/internal/game/character"
)

// ErrPlayerNotFound is returned when no save exists for a player name.
var ErrPlayerNotFound = errors.New("player not found")

// PlayerStore saves and restores the single player record.
type PlayerStore interface {
	// Save writes p, replacing any previous save under the same name.
	Save(ctx context.Context, p *character.Player) error
	// Load returns the player saved under name or ErrPlayerNotFound.
	Load(ctx context.Context, name string) (*character.Player, error)
	// Close releases the backend's resources.
	Close() error
}

// Lister is implemented by stores that can enumerate their saves.
type Lister interface {
	// Names returns an identifier for every saved player.
	Names(ctx context.Context) ([]string, error)
}

// Key normalizes a player name into the identifier every backend stores it
// under: lower-case, with anything outside [a-z0-9_-] replaced by '_'.
//
// Postcondition: Returns a non-empty string.
func Key(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "_"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Restore repairs invariants a save file cannot be trusted to hold.
//
// Postcondition: p.Kills is non-nil and p's health is within [0, MaxHealth].
func Restore(p *character.Player) *character.Player {
	if p.Kills == nil {
		p.Kills = make(map[int]int)
	}
	p.ClampHealth()
	return p
}
