package completion

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/showcase-cli/internal/store"
	"github.com/open-cli-collective/showcase-cli/pkg/catalog"
)

// createTestRootCmd creates a minimal root command for testing.
func createTestRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "showcase",
		Short: "Test CLI",
	}
	root.AddCommand(NewCmdCompletion())
	return root
}

func TestNewCmdCompletion(t *testing.T) {
	cmd := NewCmdCompletion()

	assert.Equal(t, "completion", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Len(t, cmd.Commands(), len(shells))
}

func TestCompletionScripts(t *testing.T) {
	tests := []struct {
		shell  string
		marker string
	}{
		{shell: "bash", marker: "bash completion"},
		{shell: "zsh", marker: "compdef"},
		{shell: "fish", marker: "complete -c showcase"},
		{shell: "powershell", marker: "Register-ArgumentCompleter"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			root := createTestRootCmd()

			buf := new(bytes.Buffer)
			root.SetOut(buf)
			root.SetArgs([]string{"completion", tt.shell})

			require.NoError(t, root.Execute())
			assert.Contains(t, buf.String(), tt.marker)
			assert.Contains(t, buf.String(), "showcase")
		})
	}
}

func TestCompletionRejectsExtraArgs(t *testing.T) {
	for _, sh := range shells {
		t.Run(sh.name, func(t *testing.T) {
			root := createTestRootCmd()
			root.SetOut(new(bytes.Buffer))
			root.SetErr(new(bytes.Buffer))
			root.SetArgs([]string{"completion", sh.name, "unexpected-arg"})

			err := root.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unknown command")
		})
	}
}

func TestMatchAppIDs(t *testing.T) {
	s := store.NewMemory(
		catalog.App{ID: "fittrack-pro", Name: "FitTrack Pro"},
		catalog.App{ID: "focus-timer", Name: "Focus Timer"},
		catalog.App{ID: "zen-notes", Name: "Zen Notes"},
	)

	tests := []struct {
		prefix string
		want   []string
	}{
		{prefix: "", want: []string{"fittrack-pro\tFitTrack Pro", "focus-timer\tFocus Timer", "zen-notes\tZen Notes"}},
		{prefix: "f", want: []string{"fittrack-pro\tFitTrack Pro", "focus-timer\tFocus Timer"}},
		{prefix: "zen", want: []string{"zen-notes\tZen Notes"}},
		{prefix: "x", want: nil},
	}

	for _, tt := range tests {
		t.Run("prefix "+tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchAppIDs(context.Background(), s, tt.prefix))
		})
	}
}

func TestAppIDs_OnlyFirstArgument(t *testing.T) {
	ids, directive := AppIDs(&cobra.Command{}, []string{"fittrack-pro"}, "")
	assert.Nil(t, ids)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}
