// Package postgres stores players in PostgreSQL using pgx v5.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/cory-johannsen/wayfarer/internal/config"
)

const (
	applicationName = "wayfarer"
	connectAttempts = 5
	connectBackoff  = 500 * time.Millisecond
	healthTimeout   = 2 * time.Second
)

// Pool wraps the pgx connection pool shared by the player repository.
type Pool struct {
	pool *pgxpool.Pool
}

// NewPool connects to the database described by cfg, retrying the first
// ping while the server comes up.
//
// Precondition: cfg must contain valid database connection parameters.
// Postcondition: Returns a pool that answered a ping, or a non-nil error
// after connectAttempts failed pings or ctx ends.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	p := &Pool{pool: pool}
	for attempt := 1; ; attempt++ {
		err = p.Health(ctx, healthTimeout)
		if err == nil {
			return p, nil
		}
		if attempt == connectAttempts {
			break
		}
		select {
		case <-ctx.Done():
			pool.Close()
			return nil, ctx.Err()
		case <-time.After(connectBackoff * time.Duration(attempt)):
		}
	}
	pool.Close()
	return nil, fmt.Errorf("pinging database %s:%d after %d attempts: %w", cfg.Host, cfg.Port, connectAttempts, err)
}

// Health pings the database within timeout.
func (p *Pool) Health(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return p.pool.Ping(ctx)
}

// Close releases all pool resources. Calling it more than once is safe.
func (p *Pool) Close() {
	p.pool.Close()
}

// DB returns the underlying pgxpool.Pool for use by repositories.
func (p *Pool) DB() *pgxpool.Pool {
	return p.pool
}

// Store adapts a Pool and PlayerRepository to storage.PlayerStore; Close
// releases the pool.
type Store struct {
	*PlayerRepository
	pool *Pool
}

// NewStore wraps pool in a storage.PlayerStore.
//
// Precondition: pool must be connected and migrated.
func NewStore(pool *Pool) *Store {
	return &Store{PlayerRepository: NewPlayerRepository(pool.DB()), pool: pool}
}

// Open connects to the configured database and returns a player store.
//
// Postcondition: the players table is reachable; the number of saved
// players is logged.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Store, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	store := NewStore(pool)
	names, err := store.Names(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("reading players table (run cmd/migrate first?): %w", err)
	}
	logger.Info("player database ready",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Name),
		zap.Int("players", len(names)),
	)
	return store, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
