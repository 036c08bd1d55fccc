package configcmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/adorn/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current adorn theme configuration.`,
		Example: `  # Show current config
  adorn config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(resolvePath(cmd), noColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runShow(configPath string, noColor bool, out io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	cfg, _ := config.LoadWithEnv(configPath)

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value string) {
		_, _ = bold.Fprintf(out, "%-12s", label+":")
		if value == "" {
			_, _ = dim.Fprintln(out, "-")
			return
		}
		fmt.Fprintln(out, value)
	}

	printField("Positional", strings.Join(fileCfg.Positional, ", "))

	var bindings []string
	for text, spec := range fileCfg.Always {
		bindings = append(bindings, text+"="+spec)
	}
	printField("Always", strings.Join(bindings, ", "))

	noColorValue := fmt.Sprintf("%t", cfg.NoColor)
	if cfg.NoColor && !fileCfg.NoColor {
		noColorValue += "  (from environment)"
	}
	printField("No color", noColorValue)

	fmt.Fprintln(out)
	_, _ = dim.Fprintf(out, "Config file: %s\n", configPath)
	if errors.Is(fileErr, os.ErrNotExist) {
		_, _ = dim.Fprintln(out, "(file not found)")
	}

	return nil
}
