package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/wayfarer/internal/game/character"
	"github.com/cory-johannsen/wayfarer/internal/storage"
)

// PlayerRepository provides player persistence in the players table. The
// full record lives in a JSONB column; zone and health are also kept in
// plain columns for querying.
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a PlayerRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Save upserts p keyed by its normalized name.
//
// Postcondition: Returns nil on success; the row's updated_at is refreshed.
func (r *PlayerRepository) Save(ctx context.Context, p *character.Player) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding player %q: %w", p.Name, err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO players (player_key, name, zone_id, current_health, data)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (player_key) DO UPDATE
		SET name = EXCLUDED.name,
		    zone_id = EXCLUDED.zone_id,
		    current_health = EXCLUDED.current_health,
		    data = EXCLUDED.data,
		    updated_at = NOW()`,
		storage.Key(p.Name), p.Name, p.ZoneID, p.CurrentHealth, data,
	)
	if err != nil {
		return fmt.Errorf("saving player: %w", err)
	}
	return nil
}

// Load retrieves the player saved under name.
//
// Postcondition: Returns the Player or an error wrapping storage.ErrPlayerNotFound.
func (r *PlayerRepository) Load(ctx context.Context, name string) (*character.Player, error) {
	var data []byte
	err := r.db.QueryRow(ctx, `
		SELECT data FROM players WHERE player_key = $1`,
		storage.Key(name),
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", name, storage.ErrPlayerNotFound)
		}
		return nil, fmt.Errorf("querying player: %w", err)
	}
	var p character.Player
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding player %q: %w", name, err)
	}
	return storage.Restore(&p), nil
}

// Names returns every saved player's display name ordered by most recent save.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *PlayerRepository) Names(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT name FROM players ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing players: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scanning player row: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
