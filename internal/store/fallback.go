package store

import (
	"context"
	"errors"

	"pkt.systems/pslog"

	"github.com/open-cli-collective/showcase-cli/api"
	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
)

// Fallback sends every operation to Primary and repeats it on Secondary
// when Primary cannot be reached. Error responses from Primary are returned
// as they are.
type Fallback struct {
	Primary   Store
	Secondary Store
}

// NewFallback pairs a primary store with the one used while it is unreachable.
func NewFallback(primary, secondary Store) *Fallback {
	return &Fallback{Primary: primary, Secondary: secondary}
}

// Name implements Store.
func (f *Fallback) Name() string {
	return f.Primary.Name() + "+" + f.Secondary.Name()
}

// List implements Store.
func (f *Fallback) List(ctx context.Context) ([]catalog.App, error) {
	var apps []catalog.App
	err := f.run(ctx, "list", func(s Store) (err error) {
		apps, err = s.List(ctx)
		return err
	})
	return apps, err
}

// Get implements Store.
func (f *Fallback) Get(ctx context.Context, id string) (*catalog.App, error) {
	var app *catalog.App
	err := f.run(ctx, "get", func(s Store) (err error) {
		app, err = s.Get(ctx, id)
		return err
	})
	return app, err
}

// Create implements Store.
func (f *Fallback) Create(ctx context.Context, app catalog.App) (*catalog.App, error) {
	var created *catalog.App
	err := f.run(ctx, "create", func(s Store) (err error) {
		created, err = s.Create(ctx, app)
		return err
	})
	return created, err
}

// Update implements Store.
func (f *Fallback) Update(ctx context.Context, app catalog.App, originalID string) (*catalog.App, error) {
	var updated *catalog.App
	err := f.run(ctx, "update", func(s Store) (err error) {
		updated, err = s.Update(ctx, app, originalID)
		return err
	})
	return updated, err
}

// Delete implements Store.
func (f *Fallback) Delete(ctx context.Context, id string) error {
	return f.run(ctx, "delete", func(s Store) error {
		return s.Delete(ctx, id)
	})
}

// Close closes both stores.
func (f *Fallback) Close() error {
	return errors.Join(f.Primary.Close(), f.Secondary.Close())
}

func (f *Fallback) run(ctx context.Context, op string, fn func(Store) error) error {
	err := fn(f.Primary)
	if err == nil || !api.IsTransportError(err) {
		return err
	}

	pslog.Ctx(ctx).With("store", f.Secondary.Name()).Warn("primary store unreachable, falling back",
		"op", op, "primary", f.Primary.Name(), "err", err)
	return fn(f.Secondary)
}
