// Package testutil provides shared test setup for packages that need a
// real SQLite-backed goal repository.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/ascend/internal/model"
	"github.com/Veraticus/ascend/internal/storage"
)

// TestDB represents a migrated test database.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
}

// SetupTestDB creates a new in-memory test database seeded with goals.
// It automatically handles migrations and cleanup.
func SetupTestDB(t *testing.T, goals ...model.Goal) *TestDB {
	t.Helper()
	return SetupTestDBWithOptions(t, TestDBOptions{Goals: goals})
}

// TestDBOptions provides configuration options for test database setup.
type TestDBOptions struct {
	CustomSetup func(context.Context, *storage.SQLiteStorage) error
	Goals       []model.Goal
	// OnDisk places the database in a temp dir so it can be reopened.
	OnDisk         bool
	SkipMigrations bool
}

// SetupTestDBWithOptions creates a test database with custom options.
func SetupTestDBWithOptions(t *testing.T, opts TestDBOptions) *TestDB {
	t.Helper()

	path := ":memory:"
	if opts.OnDisk {
		path = filepath.Join(t.TempDir(), "ascend.db")
	}

	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	ctx := context.Background()

	// Run migrations unless skipped
	if !opts.SkipMigrations {
		if err := store.Migrate(ctx); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
	}

	if len(opts.Goals) > 0 {
		if err := store.SaveGoals(ctx, opts.Goals); err != nil {
			t.Fatalf("failed to seed goals: %v", err)
		}
	}

	if opts.CustomSetup != nil {
		if err := opts.CustomSetup(ctx, store); err != nil {
			t.Fatalf("custom setup failed: %v", err)
		}
	}

	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	return &TestDB{
		Storage: store,
		t:       t,
	}
}

// MustLoadGoals returns what is currently persisted or fails the test.
func (db *TestDB) MustLoadGoals() []model.Goal {
	db.t.Helper()
	goals, err := db.Storage.LoadGoals(context.Background())
	if err != nil {
		db.t.Fatalf("failed to load goals: %v", err)
	}
	return goals
}
