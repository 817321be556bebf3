// Package store persists the app catalog in the hosted table, a local
// SQLite database, or memory.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/open-cli-collective/showcase-cli/api"
	"github.com/open-cli-collective/showcase-cli/internal/config"
	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
)

var (
	// ErrNotFound is returned when no app has the requested id.
	ErrNotFound = errors.New("app not found")
	// ErrExists is returned when an app with the id is already stored.
	ErrExists = errors.New("app already exists")
)

// Store reads and writes app records.
type Store interface {
	// Name identifies the backend in logs and messages.
	Name() string
	List(ctx context.Context) ([]catalog.App, error)
	Get(ctx context.Context, id string) (*catalog.App, error)
	Create(ctx context.Context, app catalog.App) (*catalog.App, error)
	// Update replaces the app stored under originalID. An empty originalID
	// means app.ID. A different app.ID renames the record.
	Update(ctx context.Context, app catalog.App, originalID string) (*catalog.App, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// Open returns the store described by cfg: the hosted table backed by the
// local database when a remote is configured, otherwise the local database.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	local, err := OpenLocal(ctx, cfg.LocalStorePath())
	if err != nil {
		return nil, err
	}

	if !cfg.HasRemote() {
		return local, nil
	}

	client := api.NewClient(cfg.URL, cfg.APIKey, api.WithTable(cfg.Table))
	return NewFallback(NewRemote(client), local), nil
}

// Upsert creates app, or updates it in place when the id is already stored.
func Upsert(ctx context.Context, s Store, app catalog.App) (*catalog.App, bool, error) {
	created, err := s.Create(ctx, app)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, ErrExists) {
		return nil, false, err
	}

	updated, err := s.Update(ctx, app, app.ID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update %s: %w", app.ID, err)
	}
	return updated, false, nil
}

func originalOrID(app catalog.App, originalID string) string {
	if originalID == "" {
		return app.ID
	}
	return originalID
}
