package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
)

// Local stores apps in a SQLite database.
type Local struct {
	db *bun.DB
}

type appModel struct {
	bun.BaseModel `bun:"table:apps,alias:a"`

	ID        string    `bun:"id,pk"`
	Name      string    `bun:"name,notnull"`
	Data      string    `bun:"data,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// OpenLocal opens or creates the database file at path.
func OpenLocal(ctx context.Context, path string) (*Local, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	sqldb, err := sql.Open("sqlite3", "file:"+path+"?_fk=1&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open local catalog: %w", err)
	}

	local := NewLocal(bun.NewDB(sqldb, sqlitedialect.New()))
	if err := local.Init(ctx); err != nil {
		_ = local.Close()
		return nil, err
	}
	return local, nil
}

// NewLocal wraps an open database. Call Init before use.
func NewLocal(db *bun.DB) *Local {
	return &Local{db: db}
}

// Init creates the apps table if it does not exist.
func (l *Local) Init(ctx context.Context) error {
	if _, err := l.db.NewCreateTable().Model((*appModel)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("failed to create apps table: %w", err)
	}
	return nil
}

// Name implements Store.
func (l *Local) Name() string { return "local" }

// List implements Store.
func (l *Local) List(ctx context.Context) ([]catalog.App, error) {
	var models []appModel
	if err := l.db.NewSelect().Model(&models).Order("updated_at DESC", "id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list apps: %w", err)
	}

	apps := make([]catalog.App, 0, len(models))
	for i := range models {
		app, err := models[i].app()
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

// Get implements Store.
func (l *Local) Get(ctx context.Context, id string) (*catalog.App, error) {
	model, err := selectApp(ctx, l.db, id)
	if err != nil {
		return nil, err
	}
	app, err := model.app()
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Create implements Store.
func (l *Local) Create(ctx context.Context, app catalog.App) (*catalog.App, error) {
	err := l.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return insertApp(ctx, tx, app)
	})
	if err != nil {
		return nil, err
	}
	return l.Get(ctx, app.ID)
}

// Update implements Store. A rename deletes the old row and inserts the new
// one in a single transaction.
func (l *Local) Update(ctx context.Context, app catalog.App, originalID string) (*catalog.App, error) {
	originalID = originalOrID(app, originalID)

	err := l.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := selectApp(ctx, tx, originalID); err != nil {
			return err
		}

		if app.ID != originalID {
			if _, err := tx.NewDelete().Model((*appModel)(nil)).Where("id = ?", originalID).Exec(ctx); err != nil {
				return fmt.Errorf("failed to rename app: %w", err)
			}
			return insertApp(ctx, tx, app)
		}

		model, err := newAppModel(app)
		if err != nil {
			return err
		}
		if _, err := tx.NewUpdate().Model(model).Column("name", "data", "updated_at").WherePK().Exec(ctx); err != nil {
			return fmt.Errorf("failed to update app: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l.Get(ctx, app.ID)
}

// Delete implements Store.
func (l *Local) Delete(ctx context.Context, id string) error {
	res, err := l.db.NewDelete().Model((*appModel)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete app: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close implements Store.
func (l *Local) Close() error {
	return l.db.Close()
}

func selectApp(ctx context.Context, db bun.IDB, id string) (*appModel, error) {
	model := new(appModel)
	if err := db.NewSelect().Model(model).Where("id = ?", id).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get app: %w", err)
	}
	return model, nil
}

func insertApp(ctx context.Context, db bun.IDB, app catalog.App) error {
	exists, err := db.NewSelect().Model((*appModel)(nil)).Where("id = ?", app.ID).Exists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check app id: %w", err)
	}
	if exists {
		return ErrExists
	}

	model, err := newAppModel(app)
	if err != nil {
		return err
	}
	if _, err := db.NewInsert().Model(model).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert app: %w", err)
	}
	return nil
}

func newAppModel(app catalog.App) (*appModel, error) {
	data, err := json.Marshal(app.Clone())
	if err != nil {
		return nil, fmt.Errorf("failed to encode app: %w", err)
	}
	return &appModel{
		ID:        app.ID,
		Name:      app.Name,
		Data:      string(data),
		UpdatedAt: time.Now().UTC(),
	}, nil
}

func (m *appModel) app() (catalog.App, error) {
	var app catalog.App
	if err := json.Unmarshal([]byte(m.Data), &app); err != nil {
		return catalog.App{}, fmt.Errorf("failed to decode app %s: %w", m.ID, err)
	}
	app.ID = m.ID
	return app, nil
}
