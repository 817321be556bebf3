package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/internal/store"
	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
)

type createOptions struct {
	cmdutil.Global
	id     string
	file   string
	lang   string
	fields appFields
	stdin  io.Reader
	stdout io.Writer
}

// NewCmdCreate creates the app create command.
func NewCmdCreate() *cobra.Command {
	opts := &createOptions{}
	flags := &fieldFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add an app to the catalog",
		Long: `Add an app to the catalog.

The app starts from the editor defaults, is overlaid with --file (YAML or
JSON) when given, and then with the field flags. Localized fields are set
in --lang. Without --id the id is derived from the name.`,
		Example: `  # Create from flags
  showcase app create --name "FitTrack Pro" --tagline "Track every rep" --category Health

  # Create from a YAML file
  showcase app create --file fittrack.yml

  # Add the Turkish texts at creation
  showcase app create --file fittrack.yml --lang tr --tagline "Her tekrarı takip et"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Global = cmdutil.GlobalFlags(cmd)
			opts.stdout, opts.stdin = cmdutil.Streams(cmd)
			opts.fields = flags.changed(cmd)
			return runCreate(cmd.Context(), opts, nil)
		},
	}

	cmd.Flags().StringVar(&opts.id, "id", "", "App id (default: derived from the name)")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the app from a YAML or JSON file ('-' for stdin)")
	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "", "Language of localized field flags (default: configured language)")
	flags.register(cmd)

	return cmd
}

func runCreate(ctx context.Context, opts *createOptions, s store.Store) error {
	if opts.file == "" && opts.fields.name == nil {
		return fmt.Errorf("--name or --file is required")
	}

	s, cfg, closeStore, err := cmdutil.ResolveStore(ctx, opts.Global, s)
	if err != nil {
		return err
	}
	defer closeStore()

	lang, err := cmdutil.Language(opts.lang, cfg)
	if err != nil {
		return err
	}

	app := catalog.New()
	if opts.file != "" {
		data, err := cmdutil.ReadInput(opts.file, opts.stdin)
		if err != nil {
			return err
		}
		if app, err = decodeApp(data, app); err != nil {
			return err
		}
	}

	if opts.id != "" {
		app.ID = opts.id
	}
	if err := opts.fields.apply(&app, lang, opts.stdin); err != nil {
		return err
	}

	app.ID = strings.TrimSpace(app.ID)
	if app.ID == "" {
		if app.ID, err = catalog.GenerateID(app.Name); err != nil {
			return fmt.Errorf("failed to derive id from name %q: %w", app.Name, err)
		}
		pslog.Ctx(ctx).Debug("derived app id", "id", app.ID, "name", app.Name)
	}

	if err := app.Validate(); err != nil {
		return fmt.Errorf("invalid app: %w", err)
	}

	created, err := s.Create(ctx, app)
	if err != nil {
		return fmt.Errorf("failed to create app %s: %w", app.ID, err)
	}

	renderer := opts.Renderer(opts.stdout)

	if opts.Output == "json" {
		return renderer.RenderJSON(created)
	}

	renderer.Success(fmt.Sprintf("Created app: %s", created.Name))
	renderer.RenderKeyValue("ID", created.ID)
	renderer.RenderKeyValue("Store", s.Name())

	return nil
}
