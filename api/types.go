// Package api provides the REST client for the hosted app catalog table.
package api

import (
	"errors"
	"time"

	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("app not found")

// Row is a stored catalog row. The full app record lives in Data.
type Row struct {
	ID        string      `json:"id"`
	Data      catalog.App `json:"data"`
	UpdatedAt Time        `json:"updated_at"`
}

// NewRow wraps an app in a row stamped with the current time.
func NewRow(app catalog.App) Row {
	return Row{
		ID:        app.ID,
		Data:      app.Clone(),
		UpdatedAt: Time{Time: time.Now().UTC()},
	}
}

// App returns the row's app with its id taken from the row key.
func (r Row) App() catalog.App {
	app := r.Data
	app.ID = r.ID
	return app
}

// Time is a wrapper around time.Time for custom JSON parsing.
type Time struct {
	time.Time
}

// UnmarshalJSON parses the timestamptz values returned by the server.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)

	if s == "null" || s == `""` || s == "" {
		return nil
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		// timestamp without zone
		parsed, err = time.Parse("2006-01-02T15:04:05.999999", s)
		if err != nil {
			return err
		}
	}

	t.Time = parsed
	return nil
}

// MarshalJSON formats time in RFC 3339.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339Nano) + `"`), nil
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Code       string `json:"code,omitempty"`
	Details    string `json:"details,omitempty"`
	Hint       string `json:"hint,omitempty"`
}

func (e *ErrorResponse) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// IsConflict reports whether the error is a unique key violation.
func (e *ErrorResponse) IsConflict() bool {
	return e.StatusCode == 409 || e.Code == "23505"
}
