package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed catalog.schema.json
var catalogSchemaJSON string

var catalogSchema = jsonschema.MustCompileString("catalog.schema.json", catalogSchemaJSON)

// ValidateCatalogJSON checks an exported catalog document against the
// catalog schema, decodes it and validates every app record.
func ValidateCatalogJSON(data []byte) ([]App, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := catalogSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("catalog does not match schema: %w", err)
	}

	var apps []App
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	seen := make(map[string]bool, len(apps))
	for i, app := range apps {
		if err := app.Validate(); err != nil {
			return nil, fmt.Errorf("app %d (%s): %w", i, app.ID, err)
		}
		if seen[app.ID] {
			return nil, fmt.Errorf("app %d: duplicate id %q", i, app.ID)
		}
		seen[app.ID] = true
	}

	return apps, nil
}
