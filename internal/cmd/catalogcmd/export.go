package catalogcmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/internal/store"
	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
)

type exportOptions struct {
	cmdutil.Global
	file   string
	stdout io.Writer
}

// NewCmdExport creates the catalog export command.
func NewCmdExport() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as JSON",
		Long: `Export every app as a JSON array that 'showcase catalog import' accepts.

Without --file the catalog is written to stdout.`,
		Example: `  # Print the catalog
  showcase catalog export

  # Write a backup
  showcase catalog export --file apps.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Global = cmdutil.GlobalFlags(cmd)
			opts.stdout, _ = cmdutil.Streams(cmd)
			return runExport(cmd.Context(), opts, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Write the catalog to this file")

	return cmd
}

func runExport(ctx context.Context, opts *exportOptions, s store.Store) error {
	s, _, closeStore, err := cmdutil.ResolveStore(ctx, opts.Global, s)
	if err != nil {
		return err
	}
	defer closeStore()

	apps, err := s.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list apps: %w", err)
	}
	if apps == nil {
		apps = []catalog.App{}
	}

	data, err := json.MarshalIndent(apps, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	data = append(data, '\n')

	if opts.file == "" {
		_, err = opts.stdout.Write(data)
		return err
	}

	if err := os.WriteFile(opts.file, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	renderer := opts.Renderer(opts.stdout)
	renderer.Success(fmt.Sprintf("Exported %d apps to %s", len(apps), opts.file))
	return nil
}
