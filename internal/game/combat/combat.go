// Package combat implements the turn-based encounter between the player and
// one monster.
package combat

import "errors"

// ErrEncounterOver is returned when an action is submitted to a finished encounter.
var ErrEncounterOver = errors.New("encounter is over")

// State is the encounter state machine position.
type State int

const (
	// StatePlayerTurn waits for the player's next action.
	StatePlayerTurn State = iota
	// StateMonsterDefeated ends the encounter with a victory.
	StateMonsterDefeated
	// StatePlayerDefeated ends the encounter with the player respawned.
	StatePlayerDefeated
	// StateFled ends the encounter without a victor.
	StateFled
)

// String returns a human-readable state label.
func (s State) String() string {
	switch s {
	case StatePlayerTurn:
		return "player turn"
	case StateMonsterDefeated:
		return "monster defeated"
	case StatePlayerDefeated:
		return "player defeated"
	case StateFled:
		return "fled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further actions are accepted.
func (s State) Terminal() bool {
	return s != StatePlayerTurn
}

// Outcome is the result of one attack.
type Outcome int

const (
	// Hit means damage was dealt.
	Hit Outcome = iota
	// Miss means the hit check failed.
	Miss
	// Dodged means the hit landed but the defender evaded it.
	Dodged
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Dodged:
		return "dodged"
	default:
		return "unknown"
	}
}

// Action is what the player chooses on their turn.
type Action int

const (
	// ActionAttack strikes the monster.
	ActionAttack Action = iota
	// ActionFlee ends the encounter immediately.
	ActionFlee
)

// String returns a human-readable action label.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionFlee:
		return "flee"
	default:
		return "unknown"
	}
}

// Damage returns the damage an attacker with strength deals to a defender with
// defense.
//
// Postcondition: result >= 1.
func Damage(strength, defense int) int {
	if d := strength - defense; d > 1 {
		return d
	}
	return 1
}
