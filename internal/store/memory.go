package store

import (
	"context"
	"slices"
	"sync"

	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
)

// Memory stores apps in process memory, in insertion order.
type Memory struct {
	mu   sync.RWMutex
	apps []catalog.App
}

// NewMemory returns a store seeded with apps.
func NewMemory(apps ...catalog.App) *Memory {
	m := &Memory{}
	for _, app := range apps {
		m.apps = append(m.apps, app.Clone())
	}
	return m
}

// Name implements Store.
func (m *Memory) Name() string { return "memory" }

// List implements Store.
func (m *Memory) List(context.Context) ([]catalog.App, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	apps := make([]catalog.App, len(m.apps))
	for i, app := range m.apps {
		apps[i] = app.Clone()
	}
	return apps, nil
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, id string) (*catalog.App, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.index(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	app := m.apps[i].Clone()
	return &app, nil
}

// Create implements Store.
func (m *Memory) Create(_ context.Context, app catalog.App) (*catalog.App, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.index(app.ID) >= 0 {
		return nil, ErrExists
	}
	m.apps = append(m.apps, app.Clone())
	created := app.Clone()
	return &created, nil
}

// Update implements Store.
func (m *Memory) Update(_ context.Context, app catalog.App, originalID string) (*catalog.App, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(originalOrID(app, originalID))
	if i < 0 {
		return nil, ErrNotFound
	}
	if j := m.index(app.ID); j >= 0 && j != i {
		return nil, ErrExists
	}
	m.apps[i] = app.Clone()
	updated := app.Clone()
	return &updated, nil
}

// Delete implements Store.
func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		return ErrNotFound
	}
	m.apps = slices.Delete(m.apps, i, i+1)
	return nil
}

// Close implements Store.
func (m *Memory) Close() error { return nil }

func (m *Memory) index(id string) int {
	return slices.IndexFunc(m.apps, func(a catalog.App) bool { return a.ID == id })
}
