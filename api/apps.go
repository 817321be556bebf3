package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
)

const rowColumns = "id,data,updated_at"

// ListAppsOptions contains options for listing apps.
type ListAppsOptions struct {
	Limit int
	Order string // column and direction, e.g. "updated_at.desc"
}

// ListApps returns the stored apps, most recently updated first.
func (c *Client) ListApps(ctx context.Context, opts *ListAppsOptions) ([]catalog.App, error) {
	params := url.Values{}
	params.Set("select", rowColumns)
	params.Set("order", "updated_at.desc")

	if opts != nil {
		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.Order != "" {
			params.Set("order", opts.Order)
		}
	}

	body, err := c.Get(ctx, c.tablePath(params))
	if err != nil {
		return nil, err
	}

	rows, err := decodeRows(body, "apps")
	if err != nil {
		return nil, err
	}

	apps := make([]catalog.App, len(rows))
	for i, row := range rows {
		apps[i] = row.App()
	}
	return apps, nil
}

// GetApp returns a single app by id.
func (c *Client) GetApp(ctx context.Context, id string) (*catalog.App, error) {
	params := idFilter(id)
	params.Set("select", rowColumns)

	body, err := c.Get(ctx, c.tablePath(params))
	if err != nil {
		return nil, err
	}

	return firstApp(body, "app")
}

// CreateApp inserts a new app.
func (c *Client) CreateApp(ctx context.Context, app catalog.App) (*catalog.App, error) {
	body, err := c.Post(ctx, c.tablePath(nil), NewRow(app))
	if err != nil {
		return nil, err
	}

	return firstApp(body, "create app")
}

// UpdateApp replaces the app stored under originalID. The app's own id may
// differ from originalID, which renames the row.
func (c *Client) UpdateApp(ctx context.Context, originalID string, app catalog.App) (*catalog.App, error) {
	if originalID == "" {
		originalID = app.ID
	}

	body, err := c.Patch(ctx, c.tablePath(idFilter(originalID)), NewRow(app))
	if err != nil {
		return nil, err
	}

	return firstApp(body, "update app")
}

// DeleteApp removes an app.
func (c *Client) DeleteApp(ctx context.Context, id string) error {
	body, err := c.Delete(ctx, c.tablePath(idFilter(id)))
	if err != nil {
		return err
	}

	rows, err := decodeRows(body, "delete app")
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping checks that the table is reachable with the configured key.
func (c *Client) Ping(ctx context.Context) error {
	params := url.Values{}
	params.Set("select", "id")
	params.Set("limit", "1")

	_, err := c.Get(ctx, c.tablePath(params))
	return err
}

func idFilter(id string) url.Values {
	params := url.Values{}
	params.Set("id", "eq."+id)
	return params
}

func decodeRows(body []byte, what string) ([]Row, error) {
	if len(body) == 0 {
		return nil, nil
	}
	var rows []Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", what, err)
	}
	return rows, nil
}

func firstApp(body []byte, what string) (*catalog.App, error) {
	rows, err := decodeRows(body, what)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	app := rows[0].App()
	return &app, nil
}
