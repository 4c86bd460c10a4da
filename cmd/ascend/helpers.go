package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Veraticus/ascend/internal/catalog"
	"github.com/Veraticus/ascend/internal/common"
	"github.com/Veraticus/ascend/internal/config"
	"github.com/Veraticus/ascend/internal/engine"
	"github.com/Veraticus/ascend/internal/service"
	"github.com/Veraticus/ascend/internal/storage"
	"github.com/spf13/viper"
)

// loadSettings resolves the configuration for the current invocation.
func loadSettings() (config.Settings, error) {
	settings, err := config.FromViper(viper.GetViper())
	if err != nil {
		return config.Settings{}, common.NewUserError("invalid configuration", err)
	}
	return settings, nil
}

// initStorage opens the database and runs migrations.
func initStorage(ctx context.Context, settings config.Settings) (service.Storage, error) {
	store, err := storage.NewSQLiteStorage(settings.DatabasePath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// openGoalStore opens storage and the goal store on top of it. sink may
// be nil.
func openGoalStore(ctx context.Context, sink service.NotificationSink) (*engine.GoalStore, config.Settings, func(), error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, config.Settings{}, nil, err
	}

	cat, err := catalog.Load(settings.CatalogPath)
	if err != nil {
		return nil, config.Settings{}, nil, common.NewUserError("failed to load catalog", err)
	}

	st, err := initStorage(ctx, settings)
	if err != nil {
		return nil, config.Settings{}, nil, err
	}

	store, err := engine.Open(ctx, st, cat, sink)
	if err != nil {
		_ = st.Close()
		return nil, config.Settings{}, nil, err
	}

	return store, settings, func() { _ = st.Close() }, nil
}

// resolveGoal expands a goal id prefix given on the command line.
func resolveGoal(store *engine.GoalStore, arg string) (string, error) {
	id, err := store.ResolveID(arg)
	switch {
	case errors.Is(err, common.ErrNotFound):
		return "", common.NewUserError(fmt.Sprintf("no goal matches %q", arg), nil)
	case errors.Is(err, common.ErrAmbiguous):
		return "", common.NewUserError(fmt.Sprintf("%q matches more than one goal, use more characters", arg), nil)
	case err != nil:
		return "", err
	}
	return id, nil
}

// explain turns lifecycle errors into messages for the terminal.
func explain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, engine.ErrInvalidGoal):
		return common.NewUserError("invalid goal", err)
	case errors.Is(err, engine.ErrNotCompleted):
		return common.NewUserError("only completed goals can be archived", nil)
	case errors.Is(err, engine.ErrAlreadyArchived):
		return common.NewUserError("goal is archived", nil)
	case errors.Is(err, engine.ErrGoalNotFound):
		return common.NewUserError("goal not found", nil)
	default:
		return err
	}
}

func writeLine(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, s)
}
