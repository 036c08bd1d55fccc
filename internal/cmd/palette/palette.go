// Package palette provides the palette command listing available style flags.
package palette

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/adorn/internal/view"
	"github.com/open-cli-collective/adorn/pkg/markup"
	"github.com/open-cli-collective/adorn/pkg/sgr"
)

type paletteOptions struct {
	demo    bool
	output  string
	noColor bool
}

// NewCmdPalette creates the palette command.
func NewCmdPalette() *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List available style flags",
		Long: `List every style flag the markup renderer understands, with its SGR
code and category. Flags combine with '+' in style specs, for example
bold+red+white-fill.`,
		Example: `  # Show the flag table with styled samples
  adorn palette

  # Render each flag name in its own style
  adorn palette --demo

  # Machine-readable listing
  adorn palette -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runPalette(opts, nil)
		},
	}

	cmd.Flags().BoolVar(&opts.demo, "demo", false, "Render each flag name in its own style")

	return cmd
}

func runPalette(opts *paletteOptions, renderer *view.Renderer) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	if renderer == nil {
		renderer = view.NewRenderer(view.Format(opts.output), opts.noColor)
	}

	table := sgr.Default()

	if opts.demo {
		return runDemo(table, opts.noColor, renderer)
	}

	showSample := opts.output == string(view.FormatTable) && !opts.noColor

	headers := []string{"FLAG", "CODE", "CATEGORY"}
	if showSample {
		headers = append(headers, "SAMPLE")
	}

	var rows [][]string
	for _, category := range table.Categories {
		for _, flag := range category.Flags {
			row := []string{flag.Name, strconv.Itoa(flag.Code), category.Name}
			if showSample {
				row = append(row, fmt.Sprintf("\x1b[%dmsample\x1b[0m", flag.Code))
			}
			rows = append(rows, row)
		}
	}

	renderer.RenderTable(headers, rows)
	return nil
}

// runDemo renders every flag name as a phrase styled with that flag, the
// same way a theme bound with always-styles would show it.
func runDemo(table sgr.Table, noColor bool, renderer *view.Renderer) error {
	parserOpts := []markup.Option{markup.WithTable(table)}
	for _, category := range table.Categories {
		for _, flag := range category.Flags {
			parserOpts = append(parserOpts, markup.WithAlways(flag.Name, flag.Bit))
		}
	}

	parser, err := markup.NewParser(parserOpts...)
	if err != nil {
		return err
	}

	for _, category := range table.Categories {
		for _, flag := range category.Flags {
			input := "<" + flag.Name + ">"

			var line string
			if noColor {
				line, err = parser.Strip(input)
			} else {
				line, err = parser.Render(input)
			}
			if err != nil {
				return err
			}
			renderer.RenderText(line)
		}
	}
	return nil
}
