package combat

import "fmt"

// RoundEvent records what happened when one player action was resolved.
type RoundEvent struct {
	Round  int
	Action Action
	// PlayerAttack is nil when the player fled.
	PlayerAttack *AttackResult
	// MonsterAttack is nil when the player fled or the monster died first.
	MonsterAttack *AttackResult
	// State is the encounter state after the round.
	State State
}

// Narrative renders the round as display lines, in the order they happened.
//
// Postcondition: Returns at least one line.
func (ev RoundEvent) Narrative() []string {
	if ev.Action == ActionFlee {
		return []string{"You flee from the fight."}
	}
	var lines []string
	if a := ev.PlayerAttack; a != nil {
		lines = append(lines, describeAttack(*a))
	}
	if a := ev.MonsterAttack; a != nil {
		lines = append(lines, describeAttack(*a))
	}
	switch ev.State {
	case StateMonsterDefeated:
		if a := ev.PlayerAttack; a != nil {
			lines = append(lines, fmt.Sprintf("%s is defeated!", a.Target))
		}
	case StatePlayerDefeated:
		lines = append(lines, "You have been defeated.")
	}
	if len(lines) == 0 {
		lines = append(lines, "Nothing happens.")
	}
	return lines
}

func describeAttack(a AttackResult) string {
	switch a.Outcome {
	case Hit:
		return fmt.Sprintf("%s hits %s for %d damage (%d health left).", a.Attacker, a.Target, a.Damage, a.TargetHealth)
	case Dodged:
		return fmt.Sprintf("%s dodges %s's attack.", a.Target, a.Attacker)
	default:
		return fmt.Sprintf("%s misses %s.", a.Attacker, a.Target)
	}
}
