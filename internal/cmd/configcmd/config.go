// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"
)

// envVars lists the environment variables that override the config file.
var envVars = []string{
	"SHOWCASE_URL", "SHOWCASE_API_KEY", "SHOWCASE_TABLE", "SHOWCASE_LOCAL_PATH", "SHOWCASE_LANG",
	"SUPABASE_URL", "SUPABASE_ANON_KEY",
}

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage showcase configuration",
		Long:  `Commands for viewing, testing, and clearing showcase configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdTest())
	cmd.AddCommand(NewCmdClear())

	return cmd
}
