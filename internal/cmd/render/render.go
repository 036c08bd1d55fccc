// Package render provides the render command for styling markup text.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/adorn/internal/config"
	"github.com/open-cli-collective/adorn/pkg/markup"
	"github.com/open-cli-collective/adorn/pkg/sgr"
)

type renderOptions struct {
	// Input
	text string // Positional arg: markup text
	file string // Read markup from a file, "-" for stdin

	// Styling
	styles []string // Positional style specs, consumed by phrases in order
	always []string // text=spec bindings applied whenever the text appears

	// Modes
	strip  bool // Remove markup instead of styling it
	escape bool // Escape metacharacters instead of rendering
	quiet  bool // Suppress parse warnings

	configPath string
	noColor    bool

	stdin io.Reader
}

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [text]",
		Short: "Render markup text with ANSI styles",
		Long: `Render text annotated with nested-tag markup as styled terminal output.

Each '<phrase>' consumes the next --style flag in order. A phrase whose text
is bound with --always gets that style wherever it appears, and an argument
specifier like '<warning<0,2>>' picks styles by position explicitly.

Backslash escapes a literal marker; a doubled backslash puts a literal
backslash in front of a genuine marker.`,
		Example: `  # Style two phrases in order
  adorn render "<error> in <file.go>" --style bold+red --style underline

  # Bind a style to a recurring word
  adorn render "<fail>: tests <fail>ed" --always fail=red

  # Pick styles by position
  adorn render "<really bad<0,1>>" --style red --style blink

  # Read markup from stdin
  cat report.txt | adorn render --file -

  # Remove markup without styling
  adorn render "<a> and <b>" --strip

  # Escape text so it renders literally
  adorn render --escape "values < 10 are > 5"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.text = args[0]
			}
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runRender(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringArrayVarP(&opts.styles, "style", "s", nil, "Positional style spec like bold+red (repeatable)")
	cmd.Flags().StringArrayVarP(&opts.always, "always", "a", nil, "Always-style binding text=spec (repeatable)")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read markup from file, '-' for stdin")
	cmd.Flags().BoolVar(&opts.strip, "strip", false, "Remove markup without applying styles")
	cmd.Flags().BoolVar(&opts.escape, "escape", false, "Escape marker characters instead of rendering")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress parse warnings")

	return cmd
}

func runRender(opts *renderOptions, out, errOut io.Writer) error {
	input, err := readInput(opts)
	if err != nil {
		return err
	}

	if opts.escape {
		fmt.Fprintln(out, markup.Escape(input))
		return nil
	}

	parser, noColor, err := buildParser(opts, errOut)
	if err != nil {
		return err
	}

	var rendered string
	if opts.strip || noColor {
		rendered, err = parser.Strip(input)
	} else {
		rendered, err = parser.Render(input)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, rendered)
	return nil
}

func readInput(opts *renderOptions) (string, error) {
	switch {
	case opts.file == "" && opts.text == "":
		return "", fmt.Errorf("render requires text or --file")
	case opts.file != "" && opts.text != "":
		return "", fmt.Errorf("cannot combine a text argument with --file")
	case opts.file == "":
		return opts.text, nil
	case opts.file == "-":
		stdin := opts.stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	default:
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", opts.file, err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}
}

// buildParser assembles a markup parser from the command-line styles, falling
// back to the config file theme when no --style or --always flags are given.
func buildParser(opts *renderOptions, errOut io.Writer) (*markup.Parser, bool, error) {
	styleSpecs := opts.styles
	alwaysSpecs := opts.always
	noColor := opts.noColor

	if len(styleSpecs) == 0 && len(alwaysSpecs) == 0 {
		configPath := opts.configPath
		if configPath == "" {
			configPath = config.DefaultConfigPath()
		}
		cfg, err := config.LoadWithEnv(configPath)
		if err != nil {
			return nil, false, err
		}
		styleSpecs = cfg.Positional
		for text, spec := range cfg.Always {
			alwaysSpecs = append(alwaysSpecs, text+"="+spec)
		}
		noColor = noColor || cfg.NoColor
	}

	table := sgr.Default()
	parserOpts := []markup.Option{}

	var positional []uint64
	for _, spec := range styleSpecs {
		combination, err := table.ParseSpec(spec)
		if err != nil {
			return nil, false, fmt.Errorf("invalid --style: %w", err)
		}
		positional = append(positional, combination)
	}
	if len(positional) > 0 {
		parserOpts = append(parserOpts, markup.WithStyles(positional...))
	}

	for _, binding := range alwaysSpecs {
		text, spec, found := strings.Cut(binding, "=")
		if !found || text == "" {
			return nil, false, fmt.Errorf("invalid --always %q: expected text=spec", binding)
		}
		combination, err := table.ParseSpec(spec)
		if err != nil {
			return nil, false, fmt.Errorf("invalid --always for %q: %w", text, err)
		}
		parserOpts = append(parserOpts, markup.WithAlways(text, combination))
	}

	if !opts.quiet {
		parserOpts = append(parserOpts, markup.WithDiagnostics(func(d markup.Diagnostic) {
			fmt.Fprintf(errOut, "warning: %s\n", d)
		}))
	}

	parser, err := markup.NewParser(parserOpts...)
	if err != nil {
		return nil, false, err
	}
	return parser, noColor, nil
}
