// Package app provides app catalog commands.
package app

import (
	"github.com/spf13/cobra"
)

// NewCmdApp creates the app command.
func NewCmdApp() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "app",
		Aliases: []string{"apps"},
		Short:   "Manage portfolio apps",
		Long:    `Commands for listing, viewing, creating, editing, and deleting apps in the catalog.`,
	}

	cmd.AddCommand(NewCmdList())
	cmd.AddCommand(NewCmdView())
	cmd.AddCommand(NewCmdCreate())
	cmd.AddCommand(NewCmdEdit())
	cmd.AddCommand(NewCmdDelete())

	return cmd
}
