package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wayfarer/internal/game/combat"
	"github.com/cory-johannsen/wayfarer/internal/game/command"
	"github.com/cory-johannsen/wayfarer/internal/game/inventory"
	"github.com/cory-johannsen/wayfarer/internal/game/session"
	"github.com/cory-johannsen/wayfarer/internal/game/world"
	"github.com/cory-johannsen/wayfarer/internal/server"
	"github.com/cory-johannsen/wayfarer/internal/storage"
)

// Console runs the command loop for one session.
type Console struct {
	conn     *Conn
	sess     *session.Session
	store    storage.PlayerStore
	registry *command.Registry
	render   *Renderer
	logger   *zap.Logger
}

// New creates a Console. The player is saved to store after every command.
//
// Precondition: conn, sess, store, and render must be non-nil.
func New(conn *Conn, sess *session.Session, store storage.PlayerStore, render *Renderer, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		conn:     conn,
		sess:     sess,
		store:    store,
		registry: command.DefaultRegistry(),
		render:   render,
		logger:   logger,
	}
}

// Run shows the current zone and processes commands until the player quits,
// input ends, or ctx is cancelled.
//
// Postcondition: Returns nil on quit or end of input, ctx.Err() on
// cancellation, or a wrapped I/O error.
func (c *Console) Run(ctx context.Context) error {
	if err := c.look(); err != nil {
		return err
	}
	for {
		if err := c.conn.WritePrompt(c.render.Prompt(c.sess.Player().Name)); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}
		line, err := c.conn.ReadLine(ctx)
		if err == nil {
			var quit bool
			quit, err = c.Handle(ctx, line)
			if err == nil && quit {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			_ = c.conn.WriteLine("")
			c.autosave(ctx)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Service adapts c to a lifecycle service. Start runs the command loop under
// ctx. Stop cancels the loop and returns only once Run has returned, after
// which the console no longer touches the player; it then closes the
// connection.
func (c *Console) Service(ctx context.Context) *server.FuncService {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	return &server.FuncService{
		StartFn: func() error {
			defer close(done)
			return c.Run(ctx)
		},
		StopFn: func() {
			cancel()
			<-done
			c.conn.Close()
		},
	}
}

// Handle executes one input line and autosaves afterwards.
//
// Postcondition: game-rule failures are reported to the player and never
// returned; the error result is reserved for I/O and context failures.
// quit is true when the player asked to leave.
func (c *Console) Handle(ctx context.Context, line string) (quit bool, err error) {
	inv, err := c.registry.Lookup(line)
	if errors.Is(err, command.ErrUnknownCommand) {
		return false, c.say(c.render.Error(fmt.Sprintf("You don't know how to '%s'. Type 'help' for commands.", command.Parse(line).Command)))
	}
	if err != nil {
		return false, err
	}
	if inv.Command == nil {
		return false, nil
	}

	c.logger.Debug("command",
		zap.String("player", c.sess.Player().Name),
		zap.String("command", inv.Command.Name),
		zap.Strings("args", inv.Args),
	)

	quit, err = c.dispatch(ctx, inv)
	if err != nil {
		return quit, err
	}
	c.autosave(ctx)
	if quit {
		return true, c.say(c.render.Info("Your progress is saved. Safe travels, wayfarer."))
	}
	return false, nil
}

func (c *Console) dispatch(ctx context.Context, inv command.Invocation) (bool, error) {
	switch inv.Command.Handler {
	case command.HandlerMove:
		return false, c.move(inv.Command.Name)
	case command.HandlerGo:
		arg, err := inv.Arg(0)
		if err != nil {
			return false, c.say(c.render.Error("Go where?"))
		}
		return false, c.move(arg)
	case command.HandlerLook:
		return false, c.look()
	case command.HandlerTalk:
		return false, c.talk(inv)
	case command.HandlerFight:
		return false, c.fight(ctx, inv)
	case command.HandlerAttack, command.HandlerFlee:
		return false, c.say(c.render.Error("You are not fighting anything. Use 'fight <number>' to start."))
	case command.HandlerInventory:
		return false, c.say(c.render.Inventory(c.sess.Inventory()))
	case command.HandlerUse:
		return false, c.use(inv)
	case command.HandlerEquip:
		return false, c.equip(inv)
	case command.HandlerUnequip:
		return false, c.unequip(inv)
	case command.HandlerStats:
		return false, c.say(c.render.Summary(c.sess.Summary()))
	case command.HandlerSave:
		return false, c.save(ctx)
	case command.HandlerHelp:
		return false, c.say(c.render.Help(c.registry))
	case command.HandlerQuit:
		return true, nil
	default:
		return false, c.say(c.render.Error(fmt.Sprintf("'%s' is not available here.", inv.Command.Name)))
	}
}

func (c *Console) say(text string) error {
	if err := c.conn.WriteLine(text); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func (c *Console) look() error {
	z, err := c.sess.CurrentZone()
	if err != nil {
		c.logger.Error("current zone missing", zap.Error(err))
		return c.say(c.render.Error("You are lost in the void."))
	}
	return c.say(c.render.Zone(z))
}

func (c *Console) move(token string) error {
	dir, ok := world.ParseDirection(token)
	if !ok {
		return c.say(c.render.Error(fmt.Sprintf("'%s' is not a direction.", token)))
	}
	res, err := c.sess.Move(dir)
	if err != nil {
		c.logger.Error("move failed", zap.String("direction", string(dir)), zap.Error(err))
		return c.say(c.render.Error("You are lost in the void."))
	}
	return c.say(c.render.Move(res))
}

func (c *Console) talk(inv command.Invocation) error {
	idx, err := inv.Index(0)
	if err != nil {
		return c.say(c.render.Error("Talk to whom? Use the number shown beside the name."))
	}
	z, err := c.sess.CurrentZone()
	if err != nil {
		return c.say(c.render.Error("You are lost in the void."))
	}
	if idx >= len(z.NPCs) {
		return c.say(c.render.Error("There is nobody with that number here."))
	}
	res, err := c.sess.Talk(z.NPCs[idx].ID)
	if err != nil {
		return c.say(c.render.Error(err.Error()))
	}
	return c.say(c.render.Talk(res))
}

func (c *Console) fight(ctx context.Context, inv command.Invocation) error {
	idx, err := inv.Index(0)
	if err != nil {
		return c.say(c.render.Error("Fight what? Use the number shown beside the monster."))
	}
	enc, err := c.sess.StartCombat(ctx, idx, &chooser{c: c})
	if errors.Is(err, session.ErrMonsterNotFound) {
		return c.say(c.render.Error("There is no monster with that number here."))
	}
	if enc == nil {
		if err != nil {
			return c.say(c.render.Error(err.Error()))
		}
		return nil
	}
	if ev := enc.LastEvent(); ev != nil {
		if werr := c.say(c.render.Round(*ev)); werr != nil {
			return werr
		}
	}
	if werr := c.say(c.render.EncounterEnd(enc)); werr != nil {
		return werr
	}
	// Chooser failures are input failures: end of input or cancellation.
	return err
}

func (c *Console) use(inv command.Invocation) error {
	idx, err := inv.Index(0)
	if err != nil {
		return c.say(c.render.Error("Use what? Give the backpack number."))
	}
	res, err := c.sess.UseItem(idx)
	if err != nil {
		return c.say(c.render.Error(itemError(err)))
	}
	p := c.sess.Player()
	return c.say(c.render.Use(res, p.CurrentHealth, p.MaxHealth()))
}

func (c *Console) equip(inv command.Invocation) error {
	idx, err := inv.Index(0)
	if err != nil {
		return c.say(c.render.Error("Equip what? Give the backpack number."))
	}
	res, err := c.sess.Equip(idx)
	if err != nil {
		return c.say(c.render.Error(itemError(err)))
	}
	return c.say(c.render.Equip(res))
}

func (c *Console) unequip(inv command.Invocation) error {
	arg, err := inv.Arg(0)
	if err != nil {
		return c.say(c.render.Error("Unequip which slot? weapon, armor, or amulet."))
	}
	slot, err := inventory.ParseSlot(arg)
	if err != nil {
		return c.say(c.render.Error(itemError(err)))
	}
	it, err := c.sess.Unequip(slot)
	if err != nil {
		return c.say(c.render.Error(itemError(err)))
	}
	return c.say(c.render.Unequip(it))
}

func itemError(err error) string {
	switch {
	case errors.Is(err, inventory.ErrInvalidIndex):
		return "There is no item with that number in your backpack."
	case errors.Is(err, inventory.ErrNotEquipable):
		return "You cannot equip that."
	case errors.Is(err, inventory.ErrNotUsable):
		return "You cannot use that."
	case errors.Is(err, inventory.ErrSlotEmpty):
		return "Nothing is equipped there."
	case errors.Is(err, inventory.ErrUnknownSlot):
		return "Slots are weapon, armor, and amulet."
	default:
		return err.Error()
	}
}

func (c *Console) save(ctx context.Context) error {
	if err := c.store.Save(ctx, c.sess.Player()); err != nil {
		c.logger.Error("saving player", zap.Error(err))
		return c.say(c.render.Error("Saving failed."))
	}
	return c.say(c.render.Info("Game saved."))
}

// autosave persists the player, reporting but not propagating failures.
func (c *Console) autosave(ctx context.Context) {
	if err := c.store.Save(ctx, c.sess.Player()); err != nil {
		c.logger.Warn("autosave failed", zap.String("player", c.sess.Player().Name), zap.Error(err))
		_ = c.say(c.render.Error("Autosave failed: " + err.Error()))
	}
}

// chooser asks the player for an action every combat turn.
type chooser struct {
	c *Console
}

// ChooseAction shows the previous round and both fighters' health, then reads
// commands until one is attack or flee.
func (ch *chooser) ChooseAction(ctx context.Context, enc *combat.Encounter) (combat.Action, error) {
	c := ch.c
	if ev := enc.LastEvent(); ev != nil {
		if err := c.say(c.render.Round(*ev)); err != nil {
			return 0, err
		}
	} else if err := c.say(c.render.EncounterStart(enc)); err != nil {
		return 0, err
	}
	if err := c.say(c.render.CombatStatus(enc)); err != nil {
		return 0, err
	}
	for {
		line, err := c.conn.Prompt(ctx, c.render.Prompt("attack/flee"))
		if err != nil {
			return 0, err
		}
		inv, err := c.registry.Lookup(line)
		if err == nil && inv.Command != nil {
			switch inv.Command.Handler {
			case command.HandlerAttack:
				return combat.ActionAttack, nil
			case command.HandlerFlee:
				return combat.ActionFlee, nil
			}
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := c.say(c.render.Error("In a fight you can only attack or flee.")); err != nil {
			return 0, err
		}
	}
}
