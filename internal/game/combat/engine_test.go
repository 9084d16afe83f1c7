package combat_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/wayfarer/internal/game/character"
	"github.com/cory-johannsen/wayfarer/internal/game/combat"
	"github.com/cory-johannsen/wayfarer/internal/game/dice"
	"github.com/cory-johannsen/wayfarer/internal/game/inventory"
	"github.com/cory-johannsen/wayfarer/internal/game/npc"
	"github.com/cory-johannsen/wayfarer/internal/game/progression"
	"github.com/cory-johannsen/wayfarer/internal/game/stats"
)

const respawnZone = 1

func newEngine(t testing.TB, src dice.Source) *combat.Engine {
	t.Helper()
	logger := zaptest.NewLogger(t)
	items, err := inventory.NewCatalog([]inventory.Item{
		{ID: 1, Name: "Health Potion", Type: inventory.TypeConsumable, Usable: true, Stats: stats.Attributes{Health: 30}},
		{ID: 7, Name: "Goblin Ear", Type: inventory.TypeOther},
	})
	require.NoError(t, err)
	resolver := combat.NewResolver(dice.NewLoggedRoller(src, logger), combat.DefaultRules())
	return combat.NewEngine(resolver, progression.NewTracker(items, logger), respawnZone, logger)
}

func hero() *character.Player {
	return &character.Player{
		Name:          "Aria",
		BaseStats:     stats.Attributes{Health: 100, Strength: 20, Defense: 3, Agility: 0},
		CurrentHealth: 100,
		ZoneID:        5,
	}
}

func goblin() npc.Monster {
	return npc.NewMonster(&npc.Template{
		ID: 3, Name: "Goblin", Health: 15, Strength: 8, Defense: 5, Agility: 4,
		Loot: []int{7, 1, 99}, Experience: 10,
	})
}

func attackAlways() combat.Chooser {
	return combat.ChooserFunc(func(context.Context, *combat.Encounter) (combat.Action, error) {
		return combat.ActionAttack, nil
	})
}

func TestStep_OneHitVictory(t *testing.T) {
	src := dice.NewSequenceSource(0)
	e := newEngine(t, src)
	p := hero()
	enc := e.Start(p, goblin())

	ev, err := enc.Step(combat.ActionAttack)
	require.NoError(t, err)
	assert.Equal(t, combat.StateMonsterDefeated, enc.State)
	assert.Equal(t, 1, ev.Round)
	require.NotNil(t, ev.PlayerAttack)
	assert.Equal(t, 15, ev.PlayerAttack.Damage)
	assert.Nil(t, ev.MonsterAttack, "a dead monster does not strike back")
	assert.Equal(t, 1, src.Draws())

	require.NotNil(t, enc.Reward)
	assert.Equal(t, 10, enc.Reward.Experience)
	assert.Len(t, enc.Reward.Items, 2)
	assert.Equal(t, 1, p.KillCount(3))
	assert.Equal(t, 2, p.Inventory.Len())
	assert.Equal(t, 100, p.CurrentHealth)
	assert.Contains(t, ev.Narrative(), "Goblin is defeated!")
}

func TestStep_MonsterRepliesWhenItSurvives(t *testing.T) {
	// player hits, monster hits, player fails to dodge
	src := dice.NewSequenceSource(0, 0, 50)
	e := newEngine(t, src)
	p := hero()
	m := goblin()
	m.CurrentHealth, m.MaxHealth = 40, 40
	enc := e.Start(p, m)

	ev, err := enc.Step(combat.ActionAttack)
	require.NoError(t, err)
	assert.Equal(t, combat.StatePlayerTurn, enc.State)
	assert.Equal(t, 25, enc.Monster.CurrentHealth)
	require.NotNil(t, ev.MonsterAttack)
	assert.Equal(t, combat.Hit, ev.MonsterAttack.Outcome)
	assert.Equal(t, 5, ev.MonsterAttack.Damage)
	assert.Equal(t, 95, p.CurrentHealth)
	assert.Equal(t, 95, ev.MonsterAttack.TargetHealth)
	assert.Len(t, ev.Narrative(), 2)
}

func TestStep_DefeatRespawnsPlayer(t *testing.T) {
	e := newEngine(t, dice.NewSequenceSource(50))
	p := hero()
	p.CurrentHealth = 4
	m := goblin()
	m.CurrentHealth, m.MaxHealth = 500, 500
	enc := e.Start(p, m)

	_, err := enc.Step(combat.ActionAttack)
	require.NoError(t, err)
	assert.Equal(t, combat.StatePlayerDefeated, enc.State)
	assert.Equal(t, 1, p.CurrentHealth)
	assert.Equal(t, respawnZone, p.ZoneID)
	assert.Zero(t, p.KillCount(3))
	assert.Nil(t, enc.Reward)
}

func TestStep_FleeIsImmediate(t *testing.T) {
	src := dice.NewSequenceSource(0)
	e := newEngine(t, src)
	p := hero()
	enc := e.Start(p, goblin())

	ev, err := enc.Step(combat.ActionFlee)
	require.NoError(t, err)
	assert.Equal(t, combat.StateFled, enc.State)
	assert.Zero(t, src.Draws(), "fleeing rolls nothing")
	assert.Equal(t, []string{"You flee from the fight."}, ev.Narrative())
	assert.Equal(t, 5, p.ZoneID)
}

func TestStep_AfterTerminalReturnsErrEncounterOver(t *testing.T) {
	e := newEngine(t, dice.NewSequenceSource(0))
	enc := e.Start(hero(), goblin())
	_, err := enc.Step(combat.ActionFlee)
	require.NoError(t, err)

	_, err = enc.Step(combat.ActionAttack)
	assert.True(t, errors.Is(err, combat.ErrEncounterOver))
	assert.Equal(t, 1, enc.Round)
	assert.Len(t, enc.Log, 1)
}

func TestStep_UnknownAction(t *testing.T) {
	e := newEngine(t, dice.NewSequenceSource(0))
	enc := e.Start(hero(), goblin())
	_, err := enc.Step(combat.Action(42))
	assert.Error(t, err)
	assert.Zero(t, enc.Round)
	assert.Equal(t, combat.StatePlayerTurn, enc.State)
}

func TestStart_DoesNotMutateZoneMonster(t *testing.T) {
	e := newEngine(t, dice.NewSequenceSource(0))
	zoneMonster := goblin()
	enc := e.Start(hero(), zoneMonster)
	_, err := enc.Step(combat.ActionAttack)
	require.NoError(t, err)

	assert.Equal(t, 15, zoneMonster.CurrentHealth)
	assert.Zero(t, enc.Monster.CurrentHealth)
	assert.NotEqual(t, e.Start(hero(), zoneMonster).ID, enc.ID)
}

func TestRun_TerminatesWhenEveryAttackLands(t *testing.T) {
	e := newEngine(t, dice.NewSequenceSource(50))
	m := goblin()
	m.CurrentHealth, m.MaxHealth = 60, 60
	enc := e.Start(hero(), m)

	state, err := enc.Run(context.Background(), attackAlways())
	require.NoError(t, err)
	assert.True(t, state.Terminal())
	assert.Equal(t, combat.StateMonsterDefeated, state)
	assert.Equal(t, 4, enc.Round)
	assert.Equal(t, enc.Round, len(enc.Log))
	assert.Equal(t, enc.LastEvent().State, state)
}

func TestRun_ChooserErrorStops(t *testing.T) {
	e := newEngine(t, dice.NewSequenceSource(0))
	enc := e.Start(hero(), goblin())
	boom := errors.New("input closed")
	state, err := enc.Run(context.Background(), combat.ChooserFunc(func(context.Context, *combat.Encounter) (combat.Action, error) {
		return 0, boom
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, combat.StatePlayerTurn, state)
	assert.Nil(t, enc.LastEvent())
}

func TestRun_CancelledContext(t *testing.T) {
	e := newEngine(t, dice.NewSequenceSource(0))
	enc := e.Start(hero(), goblin())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := enc.Run(ctx, attackAlways())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, enc.Round)
}

func TestRun_Outcomes_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		e := newEngine(t, dice.NewSeededSource(seed))
		p := hero()
		p.BaseStats.Agility = rapid.IntRange(0, 30).Draw(rt, "agility")
		p.CurrentHealth = rapid.IntRange(1, 100).Draw(rt, "health")
		m := goblin()
		m.Strength = rapid.IntRange(0, 60).Draw(rt, "monster_str")
		m.CurrentHealth = rapid.IntRange(1, 200).Draw(rt, "monster_health")
		enc := e.Start(p, m)

		state, err := enc.Run(context.Background(), attackAlways())
		require.NoError(rt, err)
		switch state {
		case combat.StateMonsterDefeated:
			assert.Equal(rt, 1, p.KillCount(m.ID))
			assert.Zero(rt, enc.Monster.CurrentHealth)
			assert.Positive(rt, p.CurrentHealth)
		case combat.StatePlayerDefeated:
			assert.Equal(rt, 1, p.CurrentHealth)
			assert.Equal(rt, respawnZone, p.ZoneID)
			assert.Zero(rt, p.KillCount(m.ID))
		default:
			rt.Fatalf("unexpected terminal state %s", state)
		}
		assert.LessOrEqual(rt, p.CurrentHealth, p.MaxHealth())
	})
}
