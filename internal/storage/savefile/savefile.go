// Package savefile stores each player as a YAML document on local disk.
package savefile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/wayfarer/internal/game/character"
	"github.com/cory-johannsen/wayfarer/internal/storage"
)

// Store is a storage.PlayerStore writing one file per player under a directory.
type Store struct {
	dir    string
	logger *zap.Logger
}

// New creates a Store rooted at dir, creating the directory if needed.
//
// Precondition: dir must be non-empty.
func New(dir string, logger *zap.Logger) (*Store, error) {
	if dir == "" {
		return nil, errors.New("savefile: directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating save directory %s: %w", dir, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Path returns the file a player named name is saved to.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, storage.Key(name)+".yaml")
}

// Save writes p atomically by renaming a temporary file over the save.
func (s *Store) Save(ctx context.Context, p *character.Player) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding player %q: %w", p.Name, err)
	}
	path := s.Path(p.Name)
	tmp, err := os.CreateTemp(s.dir, ".save-*")
	if err != nil {
		return fmt.Errorf("creating temp save: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp save: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing save %s: %w", path, err)
	}
	s.logger.Debug("player saved", zap.String("player", p.Name), zap.String("path", path))
	return nil
}

// Load reads the save for name.
//
// Postcondition: Returns storage.ErrPlayerNotFound when no file exists.
func (s *Store) Load(ctx context.Context, name string) (*character.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := s.Path(name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, storage.ErrPlayerNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading save %s: %w", path, err)
	}
	var p character.Player
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing save %s: %w", path, err)
	}
	return storage.Restore(&p), nil
}

// Names returns the key of every save in the directory, sorted.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing saves in %s: %w", s.dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".yaml"))
	}
	return names, nil
}

// Close is a no-op; files are closed after every operation.
func (s *Store) Close() error { return nil }
