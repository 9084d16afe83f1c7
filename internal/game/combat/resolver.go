package combat

import (
	"fmt"

	"github.com/cory-johannsen/wayfarer/internal/game/dice"
	"github.com/cory-johannsen/wayfarer/internal/game/stats"
)

// Rules holds the tunable percentages of the attack model.
type Rules struct {
	// HitChance is the percent chance any attack connects.
	HitChance int
	// DodgePerAgility is the dodge percent granted per point of player agility.
	DodgePerAgility int
	// MaxDodge caps the player's dodge percent.
	MaxDodge int
}

// DefaultRules returns the standard attack model: 90% to hit, 2% dodge per
// agility point capped at 30%.
func DefaultRules() Rules {
	return Rules{HitChance: 90, DodgePerAgility: 2, MaxDodge: 30}
}

// Validate checks that every percentage is within [0, 100].
func (r Rules) Validate() error {
	for _, f := range []struct {
		name string
		v    int
	}{
		{"hit_chance", r.HitChance},
		{"dodge_per_agility", r.DodgePerAgility},
		{"max_dodge", r.MaxDodge},
	} {
		if f.v < 0 || f.v > dice.Percent {
			return fmt.Errorf("combat rules: %s must be in [0, %d], got %d", f.name, dice.Percent, f.v)
		}
	}
	return nil
}

// DodgeChance returns the percent chance a defender with agility evades a hit.
//
// Postcondition: result is in [0, r.MaxDodge].
func (r Rules) DodgeChance(agility int) int {
	chance := agility * r.DodgePerAgility
	if chance > r.MaxDodge {
		chance = r.MaxDodge
	}
	if chance < 0 {
		chance = 0
	}
	return chance
}

// AttackResult holds the outcome of a single attack.
type AttackResult struct {
	// Attacker and Target are display names.
	Attacker string
	Target   string
	Outcome  Outcome
	// HitCheck is the hit roll audit.
	HitCheck dice.CheckResult
	// DodgeCheck is the dodge roll audit; nil when no dodge was rolled.
	DodgeCheck *dice.CheckResult
	// Damage is the damage dealt; 0 unless Outcome is Hit.
	Damage int
	// TargetHealth is the target's health after the attack.
	TargetHealth int
}

// Resolver rolls attacks with an injected roller.
type Resolver struct {
	roller *dice.Roller
	rules  Rules
}

// NewResolver creates a Resolver.
//
// Precondition: roller must be non-nil; rules must pass Validate.
func NewResolver(roller *dice.Roller, rules Rules) *Resolver {
	return &Resolver{roller: roller, rules: rules}
}

// Rules returns the resolver's attack model.
func (r *Resolver) Rules() Rules {
	return r.rules
}

// PlayerAttack resolves the player striking the monster. Monsters never dodge.
//
// Postcondition: Damage >= 1 iff Outcome == Hit; TargetHealth is left for the caller.
func (r *Resolver) PlayerAttack(attacker string, atk stats.Attributes, target string, def stats.Attributes) AttackResult {
	res := AttackResult{Attacker: attacker, Target: target}
	res.HitCheck = r.roller.Check(attacker+" hit", r.rules.HitChance)
	if !res.HitCheck.Success() {
		res.Outcome = Miss
		return res
	}
	res.Outcome = Hit
	res.Damage = Damage(atk.Strength, def.Defense)
	return res
}

// MonsterAttack resolves the monster striking the player: a hit check, then a
// dodge check against the player's agility.
//
// Postcondition: Damage >= 1 iff Outcome == Hit; DodgeCheck is set iff the hit check succeeded.
func (r *Resolver) MonsterAttack(attacker string, atk stats.Attributes, target string, def stats.Attributes) AttackResult {
	res := AttackResult{Attacker: attacker, Target: target}
	res.HitCheck = r.roller.Check(attacker+" hit", r.rules.HitChance)
	if !res.HitCheck.Success() {
		res.Outcome = Miss
		return res
	}
	dodge := r.roller.Check(target+" dodge", r.rules.DodgeChance(def.Agility))
	res.DodgeCheck = &dodge
	if dodge.Success() {
		res.Outcome = Dodged
		return res
	}
	res.Outcome = Hit
	res.Damage = Damage(atk.Strength, def.Defense)
	return res
}
