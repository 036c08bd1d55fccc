// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/adorn/internal/config"
)

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage adorn configuration",
		Long:  `Commands for viewing, checking, and clearing adorn configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdCheck())
	cmd.AddCommand(NewCmdClear())

	return cmd
}

// resolvePath returns the config path from the persistent --config flag, or
// the default location when the flag is unset.
func resolvePath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return path
}
