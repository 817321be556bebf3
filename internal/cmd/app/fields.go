package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
)

// appFields holds the field flags that were set on the command line. Nil
// means the flag was not given.
type appFields struct {
	name            *string
	tagline         *string
	description     *string
	descriptionFile *string
	category        *string
	lastUpdated     *string
	iconURL         *string
	downloadLink    *string
	version         *string
	rating          *float64
	reviews         *int
	screenshots     *[]string
}

// fieldFlags binds the field flags shared by create and edit.
type fieldFlags struct {
	name            string
	tagline         string
	description     string
	descriptionFile string
	category        string
	lastUpdated     string
	iconURL         string
	downloadLink    string
	version         string
	rating          float64
	reviews         int
	screenshots     []string
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.name, "name", "n", "", "App name")
	fs.StringVar(&f.tagline, "tagline", "", "Tagline in --lang")
	fs.StringVar(&f.description, "description", "", "Markdown description in --lang")
	fs.StringVar(&f.descriptionFile, "description-file", "", "Read the --lang description from a markdown file ('-' for stdin)")
	fs.StringVar(&f.category, "category", "", "Category in --lang")
	fs.StringVar(&f.lastUpdated, "last-updated", "", "Last updated label in --lang")
	fs.StringVar(&f.iconURL, "icon-url", "", "Icon image URL")
	fs.StringVar(&f.downloadLink, "download-link", "", "Store download link")
	fs.StringVar(&f.version, "app-version", "", "App version, e.g. 1.2.0")
	fs.Float64Var(&f.rating, "rating", 0, "Rating between 0 and 5")
	fs.IntVar(&f.reviews, "reviews", 0, "Number of reviews")
	fs.StringSliceVar(&f.screenshots, "screenshot", nil, "Screenshot URL (repeatable, replaces the list)")

	cmd.MarkFlagsMutuallyExclusive("description", "description-file")
}

// changed returns the fields whose flags were given on cmd.
func (f *fieldFlags) changed(cmd *cobra.Command) appFields {
	fs := cmd.Flags()
	var out appFields

	str := func(flag string, v *string) *string {
		if fs.Changed(flag) {
			return v
		}
		return nil
	}
	out.name = str("name", &f.name)
	out.tagline = str("tagline", &f.tagline)
	out.description = str("description", &f.description)
	out.descriptionFile = str("description-file", &f.descriptionFile)
	out.category = str("category", &f.category)
	out.lastUpdated = str("last-updated", &f.lastUpdated)
	out.iconURL = str("icon-url", &f.iconURL)
	out.downloadLink = str("download-link", &f.downloadLink)
	out.version = str("app-version", &f.version)

	if fs.Changed("rating") {
		out.rating = &f.rating
	}
	if fs.Changed("reviews") {
		out.reviews = &f.reviews
	}
	if fs.Changed("screenshot") {
		out.screenshots = &f.screenshots
	}
	return out
}

// empty reports whether no field flag was given.
func (f appFields) empty() bool {
	return f == appFields{}
}

// apply writes the given fields onto app. Localized fields are set in lang.
func (f appFields) apply(app *catalog.App, lang catalog.Language, stdin io.Reader) error {
	if f.name != nil {
		app.Name = strings.TrimSpace(*f.name)
	}
	if f.tagline != nil {
		app.Tagline.Set(lang, *f.tagline)
	}
	if f.description != nil {
		app.Description.Set(lang, *f.description)
	}
	if f.descriptionFile != nil {
		data, err := cmdutil.ReadInput(*f.descriptionFile, stdin)
		if err != nil {
			return err
		}
		meta, text, err := cmdutil.LoadMarkdown(data, false)
		if err != nil {
			return err
		}
		if meta.App != "" && app.ID != "" && meta.App != app.ID {
			return fmt.Errorf("%s belongs to app %q, not %q", *f.descriptionFile, meta.App, app.ID)
		}
		app.Description.Set(lang, strings.TrimSpace(text))
	}
	if f.category != nil {
		app.Category.Set(lang, *f.category)
	}
	if f.lastUpdated != nil {
		app.LastUpdated.Set(lang, *f.lastUpdated)
	}
	if f.iconURL != nil {
		app.IconURL = *f.iconURL
	}
	if f.downloadLink != nil {
		app.DownloadLink = *f.downloadLink
	}
	if f.version != nil {
		app.Version = *f.version
	}
	if f.rating != nil {
		app.Rating = *f.rating
	}
	if f.reviews != nil {
		app.ReviewsCount = *f.reviews
	}
	if f.screenshots != nil {
		app.Screenshots = append([]string{}, *f.screenshots...)
	}
	return nil
}

// decodeApp decodes a YAML or JSON app document onto base.
func decodeApp(data []byte, base catalog.App) (catalog.App, error) {
	app := base
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		if err := json.Unmarshal(data, &app); err != nil {
			return catalog.App{}, fmt.Errorf("failed to parse app file: %w", err)
		}
		return app, nil
	}
	if err := yaml.Unmarshal(data, &app); err != nil {
		return catalog.App{}, fmt.Errorf("failed to parse app file: %w", err)
	}
	return app, nil
}
