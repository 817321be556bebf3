// Package catalogcmd provides whole-catalog import and export commands.
package catalogcmd

import (
	"github.com/spf13/cobra"
)

// NewCmdCatalog creates the catalog command.
func NewCmdCatalog() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Import and export the whole catalog",
		Long: `Commands for moving the whole app catalog in and out as a JSON array,
the same document the portfolio site ships as its bundled catalog.`,
	}

	cmd.AddCommand(NewCmdImport())
	cmd.AddCommand(NewCmdExport())

	return cmd
}
