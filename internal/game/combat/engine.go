package combat

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/wayfarer/internal/game/character"
	"github.com/cory-johannsen/wayfarer/internal/game/npc"
	"github.com/cory-johannsen/wayfarer/internal/game/progression"
)

// Engine starts encounters and applies their consequences.
type Engine struct {
	resolver    *Resolver
	tracker     *progression.Tracker
	respawnZone int
	logger      *zap.Logger
}

// NewEngine creates an Engine. Defeated players respawn in respawnZone.
//
// Precondition: resolver, tracker, and logger must be non-nil.
func NewEngine(resolver *Resolver, tracker *progression.Tracker, respawnZone int, logger *zap.Logger) *Engine {
	return &Engine{
		resolver:    resolver,
		tracker:     tracker,
		respawnZone: respawnZone,
		logger:      logger,
	}
}

// Encounter is one fight between the player and a private copy of a monster.
type Encounter struct {
	ID      uuid.UUID
	Player  *character.Player
	Monster npc.Monster
	State   State
	// Round counts resolved player actions, starting at 1.
	Round int
	Log   []RoundEvent
	// Reward is set when the monster is defeated.
	Reward *progression.Reward

	engine *Engine
}

// Chooser supplies the player's action each turn.
type Chooser interface {
	// ChooseAction is called while enc.State is StatePlayerTurn.
	ChooseAction(ctx context.Context, enc *Encounter) (Action, error)
}

// ChooserFunc adapts a function to Chooser.
type ChooserFunc func(ctx context.Context, enc *Encounter) (Action, error)

// ChooseAction calls f.
func (f ChooserFunc) ChooseAction(ctx context.Context, enc *Encounter) (Action, error) {
	return f(ctx, enc)
}

// Start begins an encounter against a clone of monster; the caller's copy is
// never modified.
//
// Precondition: player must be non-nil.
// Postcondition: the encounter is in StatePlayerTurn with Round 0.
func (e *Engine) Start(player *character.Player, monster npc.Monster) *Encounter {
	enc := &Encounter{
		ID:      uuid.New(),
		Player:  player,
		Monster: monster.Clone(),
		State:   StatePlayerTurn,
		engine:  e,
	}
	e.logger.Info("encounter started",
		zap.String("encounter", enc.ID.String()),
		zap.String("player", player.Name),
		zap.Int("monster_id", monster.ID),
		zap.String("monster", monster.Name),
	)
	return enc
}

// LastEvent returns the most recent round, or nil before the first action.
func (enc *Encounter) LastEvent() *RoundEvent {
	if len(enc.Log) == 0 {
		return nil
	}
	return &enc.Log[len(enc.Log)-1]
}

// Step resolves one player action and, if the monster survives, its reply.
//
// Postcondition: returns ErrEncounterOver without side effects once the state
// is terminal. On a victory the kill and loot are recorded on the player; on a
// defeat the player respawns with 1 health in the respawn zone.
func (enc *Encounter) Step(action Action) (RoundEvent, error) {
	if enc.State.Terminal() {
		return RoundEvent{}, fmt.Errorf("%w: %s", ErrEncounterOver, enc.State)
	}
	if action != ActionAttack && action != ActionFlee {
		return RoundEvent{}, fmt.Errorf("combat: unknown action %d", int(action))
	}
	e := enc.engine
	enc.Round++
	ev := RoundEvent{Round: enc.Round, Action: action}

	if action == ActionFlee {
		enc.State = StateFled
		ev.State = enc.State
		enc.Log = append(enc.Log, ev)
		e.logger.Info("encounter fled",
			zap.String("encounter", enc.ID.String()),
			zap.Int("round", enc.Round),
		)
		return ev, nil
	}

	pa := e.resolver.PlayerAttack(enc.Player.Name, enc.Player.TotalStats(), enc.Monster.Name, enc.Monster.Attributes())
	if pa.Outcome == Hit {
		enc.Monster.TakeDamage(pa.Damage)
	}
	pa.TargetHealth = enc.Monster.CurrentHealth
	ev.PlayerAttack = &pa

	if !enc.Monster.IsAlive() {
		enc.State = StateMonsterDefeated
		reward := e.tracker.RecordVictory(enc.Player, &enc.Monster)
		enc.Reward = &reward
		ev.State = enc.State
		enc.Log = append(enc.Log, ev)
		return ev, nil
	}

	ma := e.resolver.MonsterAttack(enc.Monster.Name, enc.Monster.Attributes(), enc.Player.Name, enc.Player.TotalStats())
	if ma.Outcome == Hit {
		enc.Player.TakeDamage(ma.Damage)
	}
	ma.TargetHealth = enc.Player.CurrentHealth
	ev.MonsterAttack = &ma

	if !enc.Player.IsAlive() {
		enc.State = StatePlayerDefeated
		enc.Player.Respawn(e.respawnZone)
		e.logger.Info("player defeated",
			zap.String("encounter", enc.ID.String()),
			zap.String("player", enc.Player.Name),
			zap.String("monster", enc.Monster.Name),
			zap.Int("round", enc.Round),
			zap.Int("respawn_zone", e.respawnZone),
		)
	}
	ev.State = enc.State
	enc.Log = append(enc.Log, ev)
	return ev, nil
}

// Run asks chooser for actions until the encounter reaches a terminal state.
//
// Postcondition: on a nil error the returned state is terminal. A chooser or
// context error stops the loop and leaves the encounter in StatePlayerTurn.
func (enc *Encounter) Run(ctx context.Context, chooser Chooser) (State, error) {
	for !enc.State.Terminal() {
		if err := ctx.Err(); err != nil {
			return enc.State, err
		}
		action, err := chooser.ChooseAction(ctx, enc)
		if err != nil {
			return enc.State, err
		}
		if _, err := enc.Step(action); err != nil {
			return enc.State, err
		}
	}
	return enc.State, nil
}
