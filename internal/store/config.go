package store

import (
	"context"
	"time"
)

// ConfigRow is one key/value row from the config table.
type ConfigRow struct {
	ID        int64
	Key       string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetConfig returns the config row for the given key.
func (q *Queries) GetConfig(ctx context.Context, key string) (ConfigRow, error) {
	var c ConfigRow
	err := q.db.QueryRowContext(ctx,
		`SELECT id, key, value, created_at, updated_at FROM config WHERE key = ?`, key,
	).Scan(&c.ID, &c.Key, &c.Value, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// SetConfig inserts or updates a config value.
func (q *Queries) SetConfig(ctx context.Context, key, value string) error {
	now := time.Now()
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO config (key, value, created_at, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now, now,
	)
	return err
}
