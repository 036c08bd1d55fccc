package configcmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/adorn/internal/config"
	"github.com/open-cli-collective/adorn/pkg/sgr"
)

// NewCmdCheck creates the config check command.
func NewCmdCheck() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the configured styles resolve",
		Long: `Load the configuration file and resolve every style spec against the
flag table, reporting the SGR codes each spec produces.`,
		Example: `  # Check the stored theme
  adorn config check`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runCheck(resolvePath(cmd), noColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runCheck(configPath string, noColor bool, out io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w (run 'adorn init' to configure)", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	table := sgr.Default()
	green := color.New(color.FgGreen)
	dim := color.New(color.Faint)

	for i, spec := range cfg.Positional {
		combination, _ := table.ParseSpec(spec)
		_, _ = dim.Fprintf(out, "positional %d: ", i)
		fmt.Fprintf(out, "%s (codes %s)\n", spec, table.Codify(combination))
	}
	for text, spec := range cfg.Always {
		combination, _ := table.ParseSpec(spec)
		_, _ = dim.Fprintf(out, "always %q: ", text)
		fmt.Fprintf(out, "%s (codes %s)\n", spec, table.Codify(combination))
	}

	_, _ = green.Fprintf(out, "✓ %d positional and %d always styles resolve\n",
		len(cfg.Positional), len(cfg.Always))
	return nil
}
