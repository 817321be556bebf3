package app

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/internal/cmd/completion"
	"github.com/open-cli-collective/showcase-cli/internal/store"
)

type deleteOptions struct {
	cmdutil.Global
	force  bool
	stdin  io.Reader
	stdout io.Writer
}

// NewCmdDelete creates the app delete command.
func NewCmdDelete() *cobra.Command {
	opts := &deleteOptions{}

	cmd := &cobra.Command{
		Use:   "delete <app-id>",
		Short: "Delete an app",
		Long:  `Delete an app from the catalog by its id.`,
		Example: `  # Delete an app
  showcase app delete fittrack-pro

  # Delete without confirmation
  showcase app delete fittrack-pro --force`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completion.AppIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Global = cmdutil.GlobalFlags(cmd)
			opts.stdout, opts.stdin = cmdutil.Streams(cmd)
			return runDelete(cmd.Context(), args[0], opts, nil)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runDelete(ctx context.Context, appID string, opts *deleteOptions, s store.Store) error {
	s, _, closeStore, err := cmdutil.ResolveStore(ctx, opts.Global, s)
	if err != nil {
		return err
	}
	defer closeStore()

	app, err := s.Get(ctx, appID)
	if err != nil {
		return fmt.Errorf("failed to get app %s: %w", appID, err)
	}

	renderer := opts.Renderer(opts.stdout)

	if !opts.force {
		fmt.Fprintf(opts.stdout, "About to delete app: %s (ID: %s)\n", app.Name, app.ID)
		if !cmdutil.Confirm(opts.stdin, opts.stdout, "Are you sure?") {
			fmt.Fprintln(opts.stdout, "Deletion cancelled.")
			return nil
		}
	}

	if err := s.Delete(ctx, appID); err != nil {
		return fmt.Errorf("failed to delete app %s: %w", appID, err)
	}

	if opts.Output == "json" {
		return renderer.RenderJSON(map[string]string{
			"status": "deleted",
			"id":     appID,
			"name":   app.Name,
		})
	}

	renderer.Success(fmt.Sprintf("Deleted app: %s (ID: %s)", app.Name, appID))

	return nil
}
