// Package md provides the md command for rendering Markdown in the terminal.
package md

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/adorn/pkg/markup"
	mdconv "github.com/open-cli-collective/adorn/pkg/md"
	"github.com/open-cli-collective/adorn/pkg/sgr"
)

type mdOptions struct {
	// Input
	file string // Positional arg: file path, "-" for stdin
	html bool   // Input is HTML rather than Markdown

	// Theme style specs
	heading  string
	strong   string
	emphasis string
	code     string

	raw     bool // Print the intermediate markup instead of rendering
	noColor bool

	stdin io.Reader
}

// NewCmdMd creates the md command.
func NewCmdMd() *cobra.Command {
	opts := &mdOptions{}

	cmd := &cobra.Command{
		Use:   "md <file>",
		Short: "Render a Markdown document with terminal styling",
		Long: `Render a Markdown document as styled terminal output.

Headings, bold, italic, and code spans each get a configurable style.
The document is first converted into adorn markup, then rendered; --raw
shows the intermediate markup.`,
		Example: `  # Render a file
  adorn md README.md

  # Render from stdin
  cat notes.md | adorn md -

  # Change the heading style
  adorn md README.md --heading bold+magenta

  # Render an HTML fragment
  adorn md page.html --html

  # Inspect the intermediate markup
  adorn md README.md --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.file = args[0]
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runMd(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.html, "html", false, "Treat input as HTML")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Print intermediate markup instead of rendering")
	cmd.Flags().StringVar(&opts.heading, "heading", "bold+underline", "Heading style spec")
	cmd.Flags().StringVar(&opts.strong, "strong", "bold", "Bold text style spec")
	cmd.Flags().StringVar(&opts.emphasis, "emphasis", "underline", "Italic text style spec")
	cmd.Flags().StringVar(&opts.code, "code", "cyan", "Code style spec")

	return cmd
}

func runMd(opts *mdOptions, out io.Writer) error {
	source, err := readInput(opts)
	if err != nil {
		return err
	}

	converter := mdconv.NewConverter(mdconv.DefaultTheme())

	var markupText string
	if opts.html {
		markupText, err = converter.ConvertHTML(string(source))
	} else {
		markupText, err = converter.Convert(source)
	}
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if opts.raw {
		fmt.Fprint(out, markupText)
		return nil
	}

	parser, err := themeParser(opts)
	if err != nil {
		return err
	}

	var rendered string
	if opts.noColor {
		rendered, err = parser.Strip(markupText)
	} else {
		rendered, err = parser.Render(markupText)
	}
	if err != nil {
		return err
	}

	fmt.Fprint(out, rendered)
	return nil
}

func readInput(opts *mdOptions) ([]byte, error) {
	if opts.file == "-" {
		stdin := opts.stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(opts.file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", opts.file, err)
	}
	return data, nil
}

// themeParser builds a markup parser whose positional styles line up with
// the converter's theme indices.
func themeParser(opts *mdOptions) (*markup.Parser, error) {
	table := sgr.Default()

	specs := []struct {
		flag string
		spec string
	}{
		{"--heading", opts.heading},
		{"--strong", opts.strong},
		{"--emphasis", opts.emphasis},
		{"--code", opts.code},
	}

	var styles []uint64
	for _, s := range specs {
		combination, err := table.ParseSpec(s.spec)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", s.flag, err)
		}
		styles = append(styles, combination)
	}

	return markup.NewParser(markup.WithStyles(styles...))
}
