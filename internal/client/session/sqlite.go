package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/crewhive/crewhive/internal/dbx"
)

// SQLiteStore keeps the token pair in a local sqlite key-value table.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save writes both slots in one transaction so a crash between the two
// writes cannot leave a mismatched pair behind.
func (s *SQLiteStore) Save(ctx context.Context, access, refresh string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyAccessToken, access); err != nil {
			return err
		}
		return set(ctx, tx, keyRefreshToken, refresh)
	})
}

func (s *SQLiteStore) SaveAccessToken(ctx context.Context, access string) error {
	return set(ctx, s.db, keyAccessToken, access)
}

func (s *SQLiteStore) AccessToken(ctx context.Context) (string, error) {
	return get(ctx, s.db, keyAccessToken)
}

func (s *SQLiteStore) RefreshToken(ctx context.Context) (string, error) {
	return get(ctx, s.db, keyRefreshToken)
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func set(ctx context.Context, db dbx.DBTX, key, value string) error {
	if value == "" {
		_, err := db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, key)
		if err != nil {
			return fmt.Errorf("failed to clear session[%s]: %w", key, err)
		}
		return nil
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func get(ctx context.Context, db dbx.DBTX, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}
