// Package policy provides privacy policy commands.
package policy

import (
	"github.com/spf13/cobra"
)

// NewCmdPolicy creates the policy command.
func NewCmdPolicy() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "policy",
		Aliases: []string{"policies"},
		Short:   "Parse and manage app privacy policies",
		Long: `Commands for splitting heading-delimited markdown into policy sections
and for viewing, replacing and exporting the bilingual policy of an app.`,
	}

	cmd.AddCommand(NewCmdParse())
	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdSet())
	cmd.AddCommand(NewCmdExport())

	return cmd
}
