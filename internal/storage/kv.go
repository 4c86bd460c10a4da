package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/ascend/internal/common"
	"github.com/mattn/go-sqlite3"
)

// writeRetry covers lock contention with another ascend process beyond
// the driver's busy timeout.
var writeRetry = common.RetryOptions{
	MaxAttempts:  4,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     time.Second,
}

// Get returns the value stored under key, or nil when the key is absent.
func (s *SQLiteStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(key, "key"); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, nil
}

// Put replaces the value stored under key.
func (s *SQLiteStorage) Put(ctx context.Context, key string, value []byte) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	err := common.WithRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, `
			INSERT INTO kv (key, value, updated_at, revision)
			VALUES (?, ?, ?, 1)
			ON CONFLICT(key) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at,
				revision = kv.revision + 1
		`, key, value, time.Now().UTC())
		if execErr != nil && !isBusy(execErr) {
			return common.Permanent(execErr)
		}
		return execErr
	}, writeRetry)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Revision returns how many times key has been written, 0 if never.
func (s *SQLiteStorage) Revision(ctx context.Context, key string) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var rev int
	err := s.db.QueryRowContext(ctx, `SELECT revision FROM kv WHERE key = ?`, key).Scan(&rev)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read revision for %q: %w", key, err)
	}
	return rev, nil
}

// isBusy reports whether err is SQLite lock contention.
func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
}
