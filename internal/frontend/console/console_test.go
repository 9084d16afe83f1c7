package console_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/wayfarer/internal/frontend/console"
	"github.com/cory-johannsen/wayfarer/internal/game/combat"
	"github.com/cory-johannsen/wayfarer/internal/game/content"
	"github.com/cory-johannsen/wayfarer/internal/game/dice"
	"github.com/cory-johannsen/wayfarer/internal/game/progression"
	"github.com/cory-johannsen/wayfarer/internal/game/session"
	"github.com/cory-johannsen/wayfarer/internal/storage"
	"github.com/cory-johannsen/wayfarer/internal/storage/savefile"
)

const contentDir = "../../../content"

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

// login builds the console for the player named in input, rolling every
// check with 0: all attacks hit and the player dodges every monster attack.
func login(t *testing.T, ctx context.Context, store storage.PlayerStore, input io.Reader) (*console.Console, *bytes.Buffer, error) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	pack, err := content.Load(contentDir, logger)
	require.NoError(t, err)
	wm, err := pack.World(1)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	conn := console.NewConn(input, out)
	t.Cleanup(conn.Close)
	render := console.NewRenderer(console.NewStyles(out))

	l := &console.Login{
		Conn:     conn,
		Render:   render,
		Store:    store,
		Profiles: pack.Profiles,
		Items:    pack.Items,
		World:    wm,
		Logger:   logger,
	}
	p, err := l.Run(ctx)
	if err != nil {
		return nil, out, err
	}

	roller := dice.NewLoggedRoller(dice.NewSequenceSource(0), logger)
	engine := combat.NewEngine(
		combat.NewResolver(roller, combat.DefaultRules()),
		progression.NewTracker(pack.Items, logger),
		wm.StartZone(),
		logger,
	)
	sess, err := session.New(p, session.Options{
		World:        wm,
		Items:        pack.Items,
		Combat:       engine,
		MonsterNames: pack.MonsterNames(),
		Logger:       logger,
	})
	require.NoError(t, err)
	return console.New(conn, sess, store, render, logger), out, nil
}

// play logs in and runs the console over input.
func play(t *testing.T, ctx context.Context, store storage.PlayerStore, input io.Reader) (string, error) {
	t.Helper()
	ui, out, err := login(t, ctx, store, input)
	if err != nil {
		return out.String(), err
	}
	err = ui.Run(ctx)
	return out.String(), err
}

func newStore(t *testing.T) *savefile.Store {
	t.Helper()
	store, err := savefile.New(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return store
}

func TestConsole_NewGameSession(t *testing.T) {
	store := newStore(t)
	input := script(
		"Hero",
		"9",
		"warrior",
		"inv",
		"equip 1",
		"talk 1",
		"fight 1",
		"attack",
		"n",
		"north",
		"go south",
		"use 9",
		"dance",
		"stats",
		"quit",
	)

	out, err := play(t, context.Background(), store, strings.NewReader(input))
	require.NoError(t, err)

	for _, want := range []string{
		"Welcome, wayfarer.",
		"No save found",
		"Invalid choice, try again.",
		"Hero the Warrior sets out.",
		"Hollowmere Village [1]",
		"1. Training Sword",
		"You equip Training Sword as your weapon.",
		"Quest complete: A Warm Welcome",
		"Bring me Lost Locket to finish this quest.",
		"You face Giant Rat!",
		"Hero hits Giant Rat for 15 damage (0 health left).",
		"Giant Rat is defeated!",
		"Victory over Giant Rat!",
		"Loot: Health Potion",
		"You walk north.",
		"Forest Edge [2]",
		"Deep Forest [3]",
		"You walk south.",
		"There is no item with that number in your backpack.",
		"You don't know how to 'dance'.",
		"Giant Rat x1",
		"Safe travels, wayfarer.",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Saved wayfarers", "an empty store lists nobody")

	saved, err := store.Load(context.Background(), "Hero")
	require.NoError(t, err)
	assert.Equal(t, 1, saved.KillCount(1))
	assert.Equal(t, 2, saved.ZoneID)
	require.NotNil(t, saved.Equipment.Weapon)
	assert.Equal(t, "Training Sword", saved.Equipment.Weapon.Name)
	assert.Equal(t, 2, saved.Inventory.Len(), "starter potion plus rat loot")
}

func TestConsole_ReturningPlayer(t *testing.T) {
	store := newStore(t)
	_, err := play(t, context.Background(), store, strings.NewReader(script("Mira", "1", "north", "quit")))
	require.NoError(t, err)

	out, err := play(t, context.Background(), store, strings.NewReader(script("mira", "look")))
	require.NoError(t, err)
	assert.Contains(t, out, "Saved wayfarers: mira")
	assert.Contains(t, out, "Welcome back, Mira.")
	assert.NotContains(t, out, "No save found")
	assert.Contains(t, out, "Forest Edge [2]")
}

func TestConsole_FleeRollsNothing(t *testing.T) {
	store := newStore(t)
	out, err := play(t, context.Background(), store, strings.NewReader(script(
		"Runner", "2", "fight 1", "look", "flee", "quit",
	)))
	require.NoError(t, err)
	assert.Contains(t, out, "In a fight you can only attack or flee.")
	assert.Contains(t, out, "You flee from the fight.")
	assert.Contains(t, out, "You escaped from Giant Rat.")

	saved, err := store.Load(context.Background(), "Runner")
	require.NoError(t, err)
	assert.Equal(t, 0, saved.KillCount(1))
}

func TestConsole_CommandErrors(t *testing.T) {
	store := newStore(t)
	out, err := play(t, context.Background(), store, strings.NewReader(script(
		"Tess", "1",
		"attack",
		"fight",
		"fight 7",
		"talk 4",
		"go",
		"go sideways",
		"east", "east", "east",
		"unequip weapon",
		"unequip boots",
		"equip 2",
		"help",
	)))
	require.NoError(t, err, "end of input ends the session cleanly")
	assert.Contains(t, out, "You are not fighting anything.")
	assert.Contains(t, out, "Fight what?")
	assert.Contains(t, out, "There is no monster with that number here.")
	assert.Contains(t, out, "There is nobody with that number here.")
	assert.Contains(t, out, "Go where?")
	assert.Contains(t, out, "'sideways' is not a direction.")
	assert.Contains(t, out, "You cannot go east from here.")
	assert.Contains(t, out, "Nothing is equipped there.")
	assert.Contains(t, out, "Slots are weapon, armor, and amulet.")
	assert.Contains(t, out, "Movement:")
	assert.Contains(t, out, "talk <number>")

	saved, err := store.Load(context.Background(), "Tess")
	require.NoError(t, err)
	assert.Equal(t, 21, saved.ZoneID, "two east moves reach the tower; the third is blocked")
}

func TestConsole_EndOfInputMidFight(t *testing.T) {
	store := newStore(t)
	out, err := play(t, context.Background(), store, strings.NewReader(script("Quinn", "1", "fight 1")))
	require.NoError(t, err)
	assert.Contains(t, out, "The fight was interrupted.")

	_, err = store.Load(context.Background(), "Quinn")
	assert.NoError(t, err)
}

func TestConsole_ContextCancelled(t *testing.T) {
	store := newStore(t)
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := play(t, ctx, store, pr)
		done <- err
	}()

	_, err := io.WriteString(pw, "Zed\n1\n")
	require.NoError(t, err)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("console did not stop after cancellation")
	}
}

func TestConsole_ServiceStopWaitsForLoop(t *testing.T) {
	store := newStore(t)
	pr, pw := io.Pipe()
	defer pw.Close()
	go func() {
		_, _ = io.WriteString(pw, "Sol\n1\n")
	}()

	ui, _, err := login(t, context.Background(), store, pr)
	require.NoError(t, err)

	svc := ui.Service(context.Background())
	finished := make(chan error, 1)
	go func() { finished <- svc.Start() }()

	svc.Stop()
	select {
	case err := <-finished:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("command loop still running after Stop")
	}

	saved, err := store.Load(context.Background(), "Sol")
	require.NoError(t, err)
	assert.Equal(t, 1, saved.ZoneID)
}
