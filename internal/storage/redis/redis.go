// Package redis stores players as JSON values in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cory-johannsen/wayfarer/internal/config"
	"github.com/cory-johannsen/wayfarer/internal/game/character"
	"github.com/cory-johannsen/wayfarer/internal/storage"
)

// Store is a storage.PlayerStore keeping each player under
// "<prefix>:player:<key>" and every saved key in the "<prefix>:players" set.
type Store struct {
	client *goredis.Client
	prefix string
	logger *zap.Logger
}

// New connects to the Redis server described by cfg and verifies it responds.
//
// Postcondition: Returns a ready Store or a non-nil error; on error no
// connection is left open.
func New(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return NewWithClient(client, cfg.KeyPrefix, logger), nil
}

// NewWithClient wraps an existing client.
//
// Precondition: client must be non-nil; prefix must be non-empty.
func NewWithClient(client *goredis.Client, prefix string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{client: client, prefix: prefix, logger: logger}
}

// PlayerKey returns the Redis key a player named name is stored under.
func (s *Store) PlayerKey(name string) string {
	return fmt.Sprintf("%s:player:%s", s.prefix, storage.Key(name))
}

func (s *Store) indexKey() string {
	return s.prefix + ":players"
}

// Save writes p and records it in the player index in one transaction.
func (s *Store) Save(ctx context.Context, p *character.Player) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding player %q: %w", p.Name, err)
	}
	key := s.PlayerKey(p.Name)
	_, err = s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, key, data, 0)
		pipe.SAdd(ctx, s.indexKey(), storage.Key(p.Name))
		return nil
	})
	if err != nil {
		s.logger.Error("redis save failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("redis set failed: %w", err)
	}
	s.logger.Debug("player saved", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}

// Load reads the player saved under name.
//
// Postcondition: Returns an error wrapping storage.ErrPlayerNotFound when the key is absent.
func (s *Store) Load(ctx context.Context, name string) (*character.Player, error) {
	key := s.PlayerKey(name)
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("%s: %w", name, storage.ErrPlayerNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	var p character.Player
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding player %q: %w", name, err)
	}
	return storage.Restore(&p), nil
}

// Names returns the normalized keys of every saved player, sorted.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	keys, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("redis smembers failed: %w", err)
	}
	sort.Strings(keys)
	return keys, nil
}

// Close closes the Redis client.
func (s *Store) Close() error {
	if err := s.client.Close(); err != nil {
		s.logger.Error("failed to close redis connection", zap.Error(err))
		return err
	}
	return nil
}
