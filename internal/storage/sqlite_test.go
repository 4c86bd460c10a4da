package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/ascend/internal/common"
	"github.com/Veraticus/ascend/internal/model"
	"github.com/mattn/go-sqlite3"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

// Helper function to create test goals.
func createTestGoals() []model.Goal {
	created := time.Date(2025, 1, 2, 3, 4, 5, 600000000, time.UTC)
	completed := created.Add(36 * time.Hour)
	return []model.Goal{
		{
			ID:          "goal-a",
			Title:       "Write the report",
			Description: "Quarterly numbers",
			Difficulty:  model.DifficultyHard,
			Weight:      0,
			Points:      90,
			Completed:   true,
			CompletedAt: &completed,
			CreatedAt:   created,
		},
		{
			ID:          "goal-b",
			Title:       "Clean the garage",
			Description: "Everything except the bikes",
			Difficulty:  model.DifficultyEasy,
			Weight:      33.333333333333336,
			Points:      53,
			CreatedAt:   created.Add(time.Hour),
		},
		{
			ID:          "goal-c",
			Title:       "Old win",
			Description: "Archived long ago",
			Difficulty:  model.DifficultyMedium,
			Points:      40,
			Completed:   true,
			Archived:    true,
			CompletedAt: &completed,
			CreatedAt:   created.Add(-time.Hour),
		},
	}
}

func assertGoalsEqual(t *testing.T, want, got []model.Goal) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d goals, want %d", len(got), len(want))
	}
	for i := range want {
		w, g := want[i], got[i]
		if w.ID != g.ID || w.Title != g.Title || w.Description != g.Description || w.Difficulty != g.Difficulty {
			t.Errorf("goal %d identity mismatch: got %+v, want %+v", i, g, w)
		}
		if w.Weight != g.Weight {
			t.Errorf("goal %s weight = %v, want %v", w.ID, g.Weight, w.Weight)
		}
		if w.Points != g.Points || w.Completed != g.Completed || w.Archived != g.Archived {
			t.Errorf("goal %s state mismatch: got %+v, want %+v", w.ID, g, w)
		}
		if !w.CreatedAt.Equal(g.CreatedAt) {
			t.Errorf("goal %s created at %v, want %v", w.ID, g.CreatedAt, w.CreatedAt)
		}
		switch {
		case w.CompletedAt == nil && g.CompletedAt != nil:
			t.Errorf("goal %s has unexpected completion time %v", w.ID, g.CompletedAt)
		case w.CompletedAt != nil && (g.CompletedAt == nil || !w.CompletedAt.Equal(*g.CompletedAt)):
			t.Errorf("goal %s completed at %v, want %v", w.ID, g.CompletedAt, w.CompletedAt)
		}
	}
}

func TestSQLiteStorage_GoalsRoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	goals := createTestGoals()
	if err := store.SaveGoals(ctx, goals); err != nil {
		t.Fatalf("SaveGoals() error = %v", err)
	}

	loaded, err := store.LoadGoals(ctx)
	if err != nil {
		t.Fatalf("LoadGoals() error = %v", err)
	}
	assertGoalsEqual(t, goals, loaded)
}

func TestSQLiteStorage_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "ascend.db")
	ctx := context.Background()

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	goals := createTestGoals()
	if err := store.SaveGoals(ctx, goals); err != nil {
		t.Fatalf("SaveGoals() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen storage: %v", err)
	}
	defer func() { _ = reopened.Close() }()
	if err := reopened.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() on existing database error = %v", err)
	}

	loaded, err := reopened.LoadGoals(ctx)
	if err != nil {
		t.Fatalf("LoadGoals() error = %v", err)
	}
	assertGoalsEqual(t, goals, loaded)

	if reopened.Path() != dbPath {
		t.Errorf("Path() = %q, want %q", reopened.Path(), dbPath)
	}
}

func TestSQLiteStorage_LoadGoalsEmpty(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	goals, err := store.LoadGoals(context.Background())
	if err != nil {
		t.Fatalf("LoadGoals() error = %v", err)
	}
	if goals == nil || len(goals) != 0 {
		t.Errorf("LoadGoals() = %v, want empty non-nil slice", goals)
	}
}

func TestSQLiteStorage_LoadGoalsMalformed(t *testing.T) {
	tests := []struct {
		name string
		blob []byte
	}{
		{name: "not json", blob: []byte("{{{")},
		{name: "wrong shape", blob: []byte(`{"id":"x"}`)},
		{name: "duplicate ids", blob: []byte(`[{"id":"a","weight":10},{"id":"a","weight":10}]`)},
		{name: "weight out of range", blob: []byte(`[{"id":"a","weight":250}]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, cleanup := createTestStorage(t)
			defer cleanup()
			ctx := context.Background()

			if err := store.Put(ctx, GoalsKey, tt.blob); err != nil {
				t.Fatalf("Put() error = %v", err)
			}

			goals, err := store.LoadGoals(ctx)
			if err != nil {
				t.Fatalf("LoadGoals() error = %v", err)
			}
			if len(goals) != 0 {
				t.Errorf("LoadGoals() returned %d goals from a malformed blob", len(goals))
			}
		})
	}
}

func TestSQLiteStorage_SaveGoalsRejectsInvalid(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	goals := createTestGoals()
	if err := store.SaveGoals(ctx, goals); err != nil {
		t.Fatalf("SaveGoals() error = %v", err)
	}

	bad := append(createTestGoals(), model.Goal{ID: "goal-a"})
	err := store.SaveGoals(ctx, bad)
	if !errors.Is(err, ErrDuplicateGoal) {
		t.Errorf("SaveGoals() error = %v, want %v", err, ErrDuplicateGoal)
	}

	loaded, err := store.LoadGoals(ctx)
	if err != nil {
		t.Fatalf("LoadGoals() error = %v", err)
	}
	assertGoalsEqual(t, goals, loaded)
}

func TestSQLiteStorage_Revision(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	rev, err := store.Revision(ctx, GoalsKey)
	if err != nil {
		t.Fatalf("Revision() error = %v", err)
	}
	if rev != 0 {
		t.Errorf("Revision() before any write = %d, want 0", rev)
	}

	for i := 0; i < 3; i++ {
		if err := store.SaveGoals(ctx, createTestGoals()); err != nil {
			t.Fatalf("SaveGoals() error = %v", err)
		}
	}

	rev, err = store.Revision(ctx, GoalsKey)
	if err != nil {
		t.Fatalf("Revision() error = %v", err)
	}
	if rev != 3 {
		t.Errorf("Revision() = %d, want 3", rev)
	}
}

func TestSQLiteStorage_SaveGoalsLogsRevision(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	if err := common.SetupLoggerTo(&buf, slog.LevelDebug, "json"); err != nil {
		t.Fatalf("SetupLoggerTo() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := store.SaveGoals(ctx, createTestGoals()); err != nil {
			t.Fatalf("SaveGoals() error = %v", err)
		}
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry struct {
		Msg      string `json:"msg"`
		Count    int    `json:"count"`
		Revision int    `json:"revision"`
	}
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &entry); err != nil {
		t.Fatalf("last log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry.Msg != "Saved goals" {
		t.Errorf("msg = %q, want %q", entry.Msg, "Saved goals")
	}
	if entry.Count != len(createTestGoals()) {
		t.Errorf("count = %d, want %d", entry.Count, len(createTestGoals()))
	}
	if entry.Revision != 2 {
		t.Errorf("revision = %d, want 2", entry.Revision)
	}
}

func TestSQLiteStorage_GetPutValidation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	//nolint:staticcheck // testing nil context handling
	if _, err := store.Get(nil, "k"); !errors.Is(err, ErrNilContext) {
		t.Errorf("Get(nil) error = %v, want %v", err, ErrNilContext)
	}
	if err := store.Put(context.Background(), "  ", []byte("v")); !errors.Is(err, ErrEmptyString) {
		t.Errorf("Put(empty key) error = %v, want %v", err, ErrEmptyString)
	}

	value, err := store.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != nil {
		t.Errorf("Get(absent) = %q, want nil", value)
	}
}

func TestSQLiteStorage_InMemory(t *testing.T) {
	store, err := NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory storage: %v", err)
	}
	defer func() { _ = store.Close() }()
	ctx := context.Background()

	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if err := store.SaveGoals(ctx, createTestGoals()); err != nil {
		t.Fatalf("SaveGoals() error = %v", err)
	}
	goals, err := store.LoadGoals(ctx)
	if err != nil {
		t.Fatalf("LoadGoals() error = %v", err)
	}
	if len(goals) != 3 {
		t.Errorf("LoadGoals() returned %d goals, want 3", len(goals))
	}
	if _, err := os.Stat(":memory:"); err == nil {
		t.Error("in-memory storage created a file on disk")
	}
}

func TestIsBusy(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: true},
		{name: "locked", err: fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrLocked}), want: true},
		{name: "constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint}, want: false},
		{name: "plain", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isBusy(tt.err); got != tt.want {
				t.Errorf("isBusy(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
