package store

import (
	"context"
	"errors"

	"github.com/open-cli-collective/showcase-cli/api"
	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
)

// Remote stores apps in the hosted table.
type Remote struct {
	client *api.Client
}

// NewRemote wraps an API client.
func NewRemote(client *api.Client) *Remote {
	return &Remote{client: client}
}

// Name implements Store.
func (r *Remote) Name() string { return "remote" }

// List implements Store.
func (r *Remote) List(ctx context.Context) ([]catalog.App, error) {
	apps, err := r.client.ListApps(ctx, nil)
	return apps, mapRemoteErr(err)
}

// Get implements Store.
func (r *Remote) Get(ctx context.Context, id string) (*catalog.App, error) {
	app, err := r.client.GetApp(ctx, id)
	return app, mapRemoteErr(err)
}

// Create implements Store.
func (r *Remote) Create(ctx context.Context, app catalog.App) (*catalog.App, error) {
	created, err := r.client.CreateApp(ctx, app)
	return created, mapRemoteErr(err)
}

// Update implements Store.
func (r *Remote) Update(ctx context.Context, app catalog.App, originalID string) (*catalog.App, error) {
	updated, err := r.client.UpdateApp(ctx, originalOrID(app, originalID), app)
	return updated, mapRemoteErr(err)
}

// Delete implements Store.
func (r *Remote) Delete(ctx context.Context, id string) error {
	return mapRemoteErr(r.client.DeleteApp(ctx, id))
}

// Ping checks the connection and key.
func (r *Remote) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

// Close implements Store.
func (r *Remote) Close() error { return nil }

func mapRemoteErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, api.ErrNotFound) {
		return ErrNotFound
	}
	var apiErr *api.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.IsConflict() {
		return errors.Join(ErrExists, err)
	}
	return err
}
