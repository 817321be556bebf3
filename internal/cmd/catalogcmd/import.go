package catalogcmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/internal/store"
	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
)

type importOptions struct {
	cmdutil.Global
	dryRun bool
	stdin  io.Reader
	stdout io.Writer
}

// importResult is one row of the import report.
type importResult struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Action string `json:"action"`
}

// NewCmdImport creates the catalog import command.
func NewCmdImport() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import apps from a catalog JSON file",
		Long: `Import apps from a catalog JSON file.

The file is checked against the catalog schema and every app is validated
before anything is written. Apps whose id already exists are updated, the
rest are created. Use '-' to read from stdin.`,
		Example: `  # Import a catalog
  showcase catalog import apps.json

  # Check a catalog without writing it
  showcase catalog import apps.json --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Global = cmdutil.GlobalFlags(cmd)
			opts.stdout, opts.stdin = cmdutil.Streams(cmd)
			return runImport(cmd.Context(), args[0], opts, nil)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Validate the file without importing")

	return cmd
}

func runImport(ctx context.Context, path string, opts *importOptions, s store.Store) error {
	data, err := cmdutil.ReadInput(path, opts.stdin)
	if err != nil {
		return err
	}

	apps, err := catalog.ValidateCatalogJSON(data)
	if err != nil {
		return err
	}

	renderer := opts.Renderer(opts.stdout)

	if opts.dryRun {
		renderer.Success(fmt.Sprintf("%d apps are valid", len(apps)))
		return nil
	}

	s, _, closeStore, err := cmdutil.ResolveStore(ctx, opts.Global, s)
	if err != nil {
		return err
	}
	defer closeStore()

	logger := pslog.Ctx(ctx)
	results := make([]importResult, 0, len(apps))
	for _, app := range apps {
		saved, created, err := store.Upsert(ctx, s, app)
		if err != nil {
			return fmt.Errorf("failed to import app %s: %w", app.ID, err)
		}
		action := "updated"
		if created {
			action = "created"
		}
		logger.Debug("imported app", "id", saved.ID, "action", action, "store", s.Name())
		results = append(results, importResult{ID: saved.ID, Name: saved.Name, Action: action})
	}

	if opts.Output == "json" {
		return renderer.RenderJSON(results)
	}

	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{r.ID, r.Name, r.Action}
	}
	renderer.RenderTable([]string{"ID", "NAME", "ACTION"}, rows)

	if opts.Output != "plain" {
		renderer.Success(fmt.Sprintf("Imported %d apps into %s", len(results), s.Name()))
	}
	return nil
}
