// Package root provides the root command for the adorn CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/adorn/internal/cmd/completion"
	"github.com/open-cli-collective/adorn/internal/cmd/configcmd"
	initcmd "github.com/open-cli-collective/adorn/internal/cmd/init"
	mdcmd "github.com/open-cli-collective/adorn/internal/cmd/md"
	"github.com/open-cli-collective/adorn/internal/cmd/palette"
	"github.com/open-cli-collective/adorn/internal/cmd/render"
	"github.com/open-cli-collective/adorn/internal/version"
)

// NewCmdRoot creates the root command for adorn.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adorn",
		Short: "Render nested-tag markup as styled terminal text",
		Long: `adorn turns text annotated with a lightweight nested-tag language
into terminal output decorated with ANSI styles.

Phrases are written between '<' and '>' markers and pick up styles from
positional --style flags, from always-bound phrase texts, or from explicit
argument specifiers written inside the phrase.

Get started by running: adorn render "<hello>" --style bold+red`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/adorn/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("adorn version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(render.NewCmdRender())
	cmd.AddCommand(palette.NewCmdPalette())
	cmd.AddCommand(mdcmd.NewCmdMd())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
