package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/showcase-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/showcase-cli/internal/cmd/completion"
	"github.com/open-cli-collective/showcase-cli/internal/store"
	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
)

type editOptions struct {
	cmdutil.Global
	newID  string
	file   string
	editor bool
	lang   string
	fields appFields
	stdin  io.Reader
	stdout io.Writer

	// editFunc edits YAML in an external editor. Tests replace it.
	editFunc func(content []byte) ([]byte, error)
}

// NewCmdEdit creates the app edit command.
func NewCmdEdit() *cobra.Command {
	opts := &editOptions{}
	flags := &fieldFlags{}

	cmd := &cobra.Command{
		Use:   "edit <app-id>",
		Short: "Edit an existing app",
		Long: `Edit an existing app.

Changes can be provided via:
- field flags, applied to the stored app (localized fields in --lang)
- --file with a complete YAML or JSON app that replaces the stored one
- --editor to edit the app as YAML in $EDITOR

--new-id renames the app. The rename and the field changes are saved together.`,
		Example: `  # Update the version
  showcase app edit fittrack-pro --app-version 2.1.0

  # Set the Turkish tagline
  showcase app edit fittrack-pro --lang tr --tagline "Her tekrarı takip et"

  # Rename the app id
  showcase app edit fittrack-pro --new-id fittrack

  # Replace the app from a file
  showcase app edit fittrack-pro --file fittrack.yml

  # Edit in your editor
  showcase app edit fittrack-pro --editor`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completion.AppIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Global = cmdutil.GlobalFlags(cmd)
			opts.stdout, opts.stdin = cmdutil.Streams(cmd)
			opts.fields = flags.changed(cmd)
			opts.editFunc = openEditor
			return runEdit(cmd.Context(), args[0], opts, nil)
		},
	}

	cmd.Flags().StringVar(&opts.newID, "new-id", "", "Rename the app to this id")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Replace the app from a YAML or JSON file ('-' for stdin)")
	cmd.Flags().BoolVar(&opts.editor, "editor", false, "Edit the app as YAML in $EDITOR")
	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "", "Language of localized field flags (default: configured language)")
	flags.register(cmd)

	cmd.MarkFlagsMutuallyExclusive("file", "editor")

	return cmd
}

func runEdit(ctx context.Context, appID string, opts *editOptions, s store.Store) error {
	if opts.file == "" && !opts.editor && opts.newID == "" && opts.fields.empty() {
		return fmt.Errorf("nothing to update: pass field flags, --new-id, --file, or --editor")
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

	existing, err := s.Get(ctx, appID)
	if err != nil {
		return fmt.Errorf("failed to get app %s: %w", appID, err)
	}
	app := *existing

	switch {
	case opts.file != "":
		data, err := cmdutil.ReadInput(opts.file, opts.stdin)
		if err != nil {
			return err
		}
		if app, err = decodeApp(data, catalog.App{}); err != nil {
			return err
		}
		if app.ID == "" {
			app.ID = appID
		}
	case opts.editor:
		if app, err = editInEditor(app, opts.editFunc); err != nil {
			return err
		}
	}

	if err := opts.fields.apply(&app, lang, opts.stdin); err != nil {
		return err
	}
	if opts.newID != "" {
		app.ID = strings.TrimSpace(opts.newID)
	}

	if err := app.Validate(); err != nil {
		return fmt.Errorf("invalid app: %w", err)
	}

	updated, err := s.Update(ctx, app, appID)
	if err != nil {
		return fmt.Errorf("failed to update app %s: %w", appID, err)
	}

	renderer := opts.Renderer(opts.stdout)

	if opts.Output == "json" {
		return renderer.RenderJSON(updated)
	}

	renderer.Success(fmt.Sprintf("Updated app: %s", updated.Name))
	if updated.ID != appID {
		renderer.RenderKeyValue("Renamed", appID+" -> "+updated.ID)
	} else {
		renderer.RenderKeyValue("ID", updated.ID)
	}

	return nil
}

// editInEditor round-trips app through YAML in an editor.
func editInEditor(app catalog.App, edit func([]byte) ([]byte, error)) (catalog.App, error) {
	if edit == nil {
		edit = openEditor
	}

	content, err := yaml.Marshal(app)
	if err != nil {
		return catalog.App{}, fmt.Errorf("failed to marshal app: %w", err)
	}

	edited, err := edit(content)
	if err != nil {
		return catalog.App{}, err
	}
	if strings.TrimSpace(string(edited)) == "" {
		return catalog.App{}, fmt.Errorf("no content provided")
	}

	return decodeApp(edited, catalog.App{})
}

// openEditor writes content to a temp file, opens $EDITOR on it, and
// returns the saved result.
func openEditor(content []byte) ([]byte, error) {
	tmpfile, err := os.CreateTemp("", "showcase-edit-*.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()

	_, err = tmpfile.Write(content)
	if closeErr := tmpfile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vi"
	}

	cmd := exec.Command(editor, tmpfile.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("editor failed: %w", err)
	}

	data, err := os.ReadFile(tmpfile.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to read edited content: %w", err)
	}
	return data, nil
}
