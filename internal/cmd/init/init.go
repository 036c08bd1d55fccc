// Package init provides the init command for adorn.
package init

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/adorn/internal/config"
	"github.com/open-cli-collective/adorn/pkg/sgr"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		positional string
		always     string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize adorn configuration",
		Long: `Initialize adorn with a default styling theme.

This command will guide you through setting up the positional styles that
phrases consume in order, and the always-styles bound to recurring phrase
texts. The configuration will be saved to ~/.config/adorn/config.yml.

Style specs combine flags with '+', for example bold+red+white-fill.
Run 'adorn palette' to see every available flag.`,
		Example: `  # Interactive setup
  adorn init

  # Pre-populate the positional styles
  adorn init --positional "bold+red, underline"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return runInit(configPath, positional, always)
		},
	}

	cmd.Flags().StringVar(&positional, "positional", "", "Comma-separated positional style specs")
	cmd.Flags().StringVar(&always, "always", "", "Comma-separated text=spec always bindings")

	return cmd
}

func runInit(configPath, prefillPositional, prefillAlways string) error {
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	positional := prefillPositional
	always := prefillAlways
	noColor := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Positional styles").
				Description("Comma-separated specs consumed by phrases in order").
				Placeholder("bold+red, underline, yellow").
				Value(&positional).
				Validate(func(s string) error {
					_, err := parseSpecList(s)
					return err
				}),

			huh.NewInput().
				Title("Always styles (optional)").
				Description("Comma-separated text=spec bindings, e.g. error=bold+red").
				Placeholder("error=bold+red, ok=green").
				Value(&always).
				Validate(func(s string) error {
					_, err := parseAlwaysList(s)
					return err
				}),

			huh.NewConfirm().
				Title("Disable colored output by default?").
				Value(&noColor),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	positionalSpecs, err := parseSpecList(positional)
	if err != nil {
		return err
	}
	alwaysSpecs, err := parseAlwaysList(always)
	if err != nil {
		return err
	}

	cfg := &config.Config{
		Positional: positionalSpecs,
		Always:     alwaysSpecs,
		NoColor:    noColor,
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println(`  adorn render "<hello> <world>"`)
	fmt.Println("  adorn palette")

	return nil
}

// parseSpecList splits a comma-separated list of style specs and checks each
// against the flag table. An empty input yields no specs.
func parseSpecList(s string) ([]string, error) {
	table := sgr.Default()

	var specs []string
	for _, spec := range strings.Split(s, ",") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		if _, err := table.ParseSpec(spec); err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// parseAlwaysList parses comma-separated text=spec bindings.
func parseAlwaysList(s string) (map[string]string, error) {
	table := sgr.Default()

	bindings := make(map[string]string)
	for _, binding := range strings.Split(s, ",") {
		binding = strings.TrimSpace(binding)
		if binding == "" {
			continue
		}
		text, spec, found := strings.Cut(binding, "=")
		text = strings.TrimSpace(text)
		spec = strings.TrimSpace(spec)
		if !found || text == "" || spec == "" {
			return nil, fmt.Errorf("invalid binding %q: expected text=spec", binding)
		}
		if _, err := table.ParseSpec(spec); err != nil {
			return nil, fmt.Errorf("binding for %q: %w", text, err)
		}
		bindings[text] = spec
	}
	if len(bindings) == 0 {
		return nil, nil
	}
	return bindings, nil
}
