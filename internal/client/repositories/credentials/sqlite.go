package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fittlens/fittlens-cli/internal/client/models"
	"github.com/fittlens/fittlens-cli/internal/dbx"
)

// Storage keys, matching the reference app's on-device store.
const (
	keyAuthToken = "auth_token"
	keyUserData  = "user_data"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Save(ctx context.Context, token string, profile models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.set(ctx, tx, keyAuthToken, []byte(token)); err != nil {
			return err
		}
		return r.set(ctx, tx, keyUserData, data)
	})
}

func (r *SQLiteRepository) Load(ctx context.Context) (*Record, error) {
	token, err := r.get(ctx, r.db, keyAuthToken)
	if err != nil {
		return nil, err
	}
	data, err := r.get(ctx, r.db, keyUserData)
	if err != nil {
		return nil, err
	}

	// A partial record is treated as no record at all.
	if len(token) == 0 || len(data) == 0 {
		return nil, nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		// Malformed stored data must never surface as a failure.
		return nil, nil
	}

	return &Record{Token: string(token), Profile: profile}, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM credentials WHERE key IN (?, ?)`, keyAuthToken, keyUserData)
		if err != nil {
			return fmt.Errorf("failed to clear credentials: %w", err)
		}
		return nil
	})
}
