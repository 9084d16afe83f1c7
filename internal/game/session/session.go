// Package session holds the single player's game state and dispatches each
// player intent to the component that handles it.
package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wayfarer/internal/game/character"
	"github.com/cory-johannsen/wayfarer/internal/game/combat"
	"github.com/cory-johannsen/wayfarer/internal/game/inventory"
	"github.com/cory-johannsen/wayfarer/internal/game/world"
)

var (
	// ErrNPCNotFound is returned when the current zone has no NPC with the requested id.
	ErrNPCNotFound = errors.New("npc not found")
	// ErrMonsterNotFound is returned when a monster index is outside the current zone's list.
	ErrMonsterNotFound = errors.New("monster not found")
)

// Options carries the collaborators a Session dispatches to.
type Options struct {
	World  *world.Manager
	Items  *inventory.Catalog
	Combat *combat.Engine
	// MonsterNames resolves kill counter ids for Summary.
	MonsterNames map[int]string
	Logger       *zap.Logger
}

// Session is the game loop core for one player. It is not safe for
// concurrent use.
type Session struct {
	player       *character.Player
	world        *world.Manager
	items        *inventory.Catalog
	combat       *combat.Engine
	monsterNames map[int]string
	logger       *zap.Logger
}

// New creates a Session for player.
//
// Precondition: player must be non-nil.
// Postcondition: Returns an error if any collaborator in opts is missing.
func New(player *character.Player, opts Options) (*Session, error) {
	if player == nil {
		return nil, errors.New("session: player must not be nil")
	}
	if opts.World == nil || opts.Items == nil || opts.Combat == nil {
		return nil, errors.New("session: world, items, and combat are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		player:       player,
		world:        opts.World,
		items:        opts.Items,
		combat:       opts.Combat,
		monsterNames: opts.MonsterNames,
		logger:       logger,
	}, nil
}

// Player returns the session's player.
func (s *Session) Player() *character.Player {
	return s.player
}

// CurrentZone returns the zone the player stands in.
//
// Postcondition: Returns world.ErrZoneNotFound if the player's zone id is not loaded.
func (s *Session) CurrentZone() (*world.Zone, error) {
	z, ok := s.world.Zone(s.player.ZoneID)
	if !ok {
		return nil, fmt.Errorf("current zone %d: %w", s.player.ZoneID, world.ErrZoneNotFound)
	}
	return z, nil
}

// MoveResult reports the outcome of a Move.
type MoveResult struct {
	Direction world.Direction
	From      *world.Zone
	// To is the zone the player ends in; equal to From when Blocked.
	To      *world.Zone
	Blocked bool
}

// Move walks the player out of the current zone in dir.
//
// Postcondition: a blocked move is reported with Blocked set and no state
// change. Returns world.ErrZoneNotFound if the current zone is not loaded.
func (s *Session) Move(dir world.Direction) (MoveResult, error) {
	from, err := s.CurrentZone()
	if err != nil {
		return MoveResult{}, err
	}
	to, err := s.world.Navigate(from.ID, dir)
	if errors.Is(err, world.ErrBlocked) {
		return MoveResult{Direction: dir, From: from, To: from, Blocked: true}, nil
	}
	if err != nil {
		return MoveResult{}, err
	}
	s.player.ZoneID = to.ID
	s.logger.Debug("player moved",
		zap.String("player", s.player.Name),
		zap.Int("from", from.ID),
		zap.Int("to", to.ID),
		zap.String("direction", string(dir)),
	)
	return MoveResult{Direction: dir, From: from, To: to}, nil
}

// StartCombat fights the monster at monsterIndex in the current zone until
// the encounter ends or chooser fails. The zone's monster is never damaged.
//
// Postcondition: Returns ErrMonsterNotFound for a bad index. When chooser or
// ctx fails, the partially fought encounter is returned with the error.
func (s *Session) StartCombat(ctx context.Context, monsterIndex int, chooser combat.Chooser) (*combat.Encounter, error) {
	z, err := s.CurrentZone()
	if err != nil {
		return nil, err
	}
	if monsterIndex < 0 || monsterIndex >= len(z.Monsters) {
		return nil, fmt.Errorf("monster %d in zone %d: %w", monsterIndex, z.ID, ErrMonsterNotFound)
	}
	enc := s.combat.Start(s.player, z.Monsters[monsterIndex])
	if _, err := enc.Run(ctx, chooser); err != nil {
		return enc, fmt.Errorf("encounter %s: %w", enc.ID, err)
	}
	return enc, nil
}

// UseItem consumes the backpack item at index.
func (s *Session) UseItem(index int) (character.UseResult, error) {
	return s.player.UseItem(index)
}

// Equip moves the backpack item at index into its slot.
func (s *Session) Equip(index int) (character.EquipResult, error) {
	return s.player.Equip(index)
}

// Unequip moves the item in slot back to the backpack.
func (s *Session) Unequip(slot inventory.Slot) (inventory.Item, error) {
	return s.player.Unequip(slot)
}

// Inventory returns a copy of the backpack contents in order.
func (s *Session) Inventory() []inventory.Item {
	return s.player.Inventory.Items()
}
