// Package completion provides shell completion generation commands.
package completion

import (
	"io"

	"github.com/spf13/cobra"
)

// shell describes one supported completion target.
type shell struct {
	name    string
	long    string
	example string
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name: "bash",
		long: `To load completions in your current shell session:

  source <(showcase completion bash)

To load completions for every new session:

  # Linux
  showcase completion bash > /etc/bash_completion.d/showcase

  # macOS (requires bash-completion)
  showcase completion bash > $(brew --prefix)/etc/bash_completion.d/showcase`,
		example: `  # Load in current session
  source <(showcase completion bash)

  # Install permanently (Linux)
  showcase completion bash | sudo tee /etc/bash_completion.d/showcase > /dev/null`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenBashCompletionV2(w, true)
		},
	},
	{
		name: "zsh",
		long: `If shell completion is not already enabled in your environment,
enable it by adding this to ~/.zshrc:

  autoload -U compinit; compinit

To load completions for every new session:

  showcase completion zsh > "${fpath[1]}/_showcase"`,
		example: `  # Load in current session
  source <(showcase completion zsh)

  # Install permanently
  showcase completion zsh > ~/.zsh/completions/_showcase`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenZshCompletion(w)
		},
	},
	{
		name: "fish",
		long: `To load completions in your current shell session:

  showcase completion fish | source

To load completions for every new session:

  showcase completion fish > ~/.config/fish/completions/showcase.fish`,
		example: `  # Install permanently
  showcase completion fish > ~/.config/fish/completions/showcase.fish`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
	},
	{
		name: "powershell",
		long: `To load completions in your current shell session:

  showcase completion powershell | Out-String | Invoke-Expression

To load completions for every new session, add the output to your profile.`,
		example: `  # Install permanently
  showcase completion powershell >> $PROFILE`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	},
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for showcase.

These scripts enable tab-completion for commands, flags, and app ids.
See each sub-command's help for installation instructions.`,
	}

	for _, sh := range shells {
		cmd.AddCommand(newCmdShell(sh))
	}

	return cmd
}

func newCmdShell(sh shell) *cobra.Command {
	return &cobra.Command{
		Use:                   sh.name,
		Short:                 "Generate " + sh.name + " completion script",
		Long:                  "Generate " + sh.name + " completion script for showcase.\n\n" + sh.long,
		Example:               sh.example,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return sh.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
