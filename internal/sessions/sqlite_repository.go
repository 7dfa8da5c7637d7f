package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronov/newshub/internal/common"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, CurrentSessionKey).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select session: %w", err)
	}
	return value, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, data []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		CurrentSessionKey, data)
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM kv WHERE key = ?`, CurrentSessionKey)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
