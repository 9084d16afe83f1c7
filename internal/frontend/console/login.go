package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wayfarer/internal/game/character"
	"github.com/cory-johannsen/wayfarer/internal/game/inventory"
	"github.com/cory-johannsen/wayfarer/internal/game/ruleset"
	"github.com/cory-johannsen/wayfarer/internal/game/world"
	"github.com/cory-johannsen/wayfarer/internal/storage"
)

// Login resolves the player to play: a saved player when one exists under
// the entered name, otherwise a new character built from a chosen profile
// and saved immediately.
type Login struct {
	Conn     *Conn
	Render   *Renderer
	Store    storage.PlayerStore
	Profiles []*ruleset.Profile
	Items    *inventory.Catalog
	World    *world.Manager
	Logger   *zap.Logger
}

// Run prompts for a name and returns the player.
//
// Precondition: every field except Logger must be set; Profiles must be non-empty.
// Postcondition: the returned player stands in a loaded zone. Input and
// storage failures other than a missing save are returned.
func (l *Login) Run(ctx context.Context) (*character.Player, error) {
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := l.Conn.WriteLine(l.Render.st.Title.Render("Welcome, wayfarer.")); err != nil {
		return nil, err
	}
	if lister, ok := l.Store.(storage.Lister); ok {
		names, err := lister.Names(ctx)
		if err != nil {
			logger.Warn("listing saved players", zap.Error(err))
		} else if len(names) > 0 {
			if err := l.Conn.WriteLine(l.Render.Info("Saved wayfarers: " + strings.Join(names, ", "))); err != nil {
				return nil, err
			}
		}
	}
	name, err := l.Conn.Prompt(ctx, l.Render.st.Prompt.Render("What is your name? "))
	if err != nil {
		return nil, fmt.Errorf("reading name: %w", err)
	}
	if name == "" {
		name = character.DefaultName
	}

	p, err := l.Store.Load(ctx, name)
	switch {
	case err == nil:
		logger.Info("player loaded", zap.String("player", p.Name), zap.Int("zone", p.ZoneID))
		if _, ok := l.World.Zone(p.ZoneID); !ok {
			logger.Warn("saved zone missing, moving player to start",
				zap.Int("zone", p.ZoneID),
				zap.Int("start_zone", l.World.StartZone()),
			)
			p.ZoneID = l.World.StartZone()
		}
		if err := l.Conn.WriteLine(l.Render.Info(fmt.Sprintf("Welcome back, %s.", p.Name))); err != nil {
			return nil, err
		}
		return p, nil
	case errors.Is(err, storage.ErrPlayerNotFound):
		return l.create(ctx, name, logger)
	default:
		return nil, fmt.Errorf("loading player %q: %w", name, err)
	}
}

func (l *Login) create(ctx context.Context, name string, logger *zap.Logger) (*character.Player, error) {
	if len(l.Profiles) == 0 {
		return nil, errors.New("no character profiles loaded")
	}
	if err := l.Conn.WriteLine(l.Render.Info("No save found. Let's create your character.")); err != nil {
		return nil, err
	}
	if err := l.Conn.WriteLine(l.Render.Profiles(l.Profiles)); err != nil {
		return nil, err
	}

	var profile *ruleset.Profile
	for profile == nil {
		line, err := l.Conn.Prompt(ctx, l.Render.st.Prompt.Render(fmt.Sprintf("Profile [1-%d]: ", len(l.Profiles))))
		if err != nil {
			return nil, fmt.Errorf("reading profile choice: %w", err)
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(l.Profiles) {
			profile = l.Profiles[n-1]
			break
		}
		if p, ok := ruleset.FindProfile(l.Profiles, line); ok {
			profile = p
			break
		}
		if err := l.Conn.WriteLine(l.Render.Error("Invalid choice, try again.")); err != nil {
			return nil, err
		}
	}

	p, err := character.Build(name, profile, l.Items, l.World.StartZone())
	if err != nil {
		return nil, fmt.Errorf("building character: %w", err)
	}
	if err := l.Store.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("saving new character: %w", err)
	}
	logger.Info("player created",
		zap.String("player", p.Name),
		zap.String("profile", profile.ID),
		zap.Int("zone", p.ZoneID),
	)
	if err := l.Conn.WriteLine(l.Render.st.Success.Render(fmt.Sprintf("%s the %s sets out.", p.Name, profile.Name))); err != nil {
		return nil, err
	}
	return p, nil
}
