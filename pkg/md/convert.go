// Package md converts Markdown documents into adorn markup so they can be
// rendered with terminal styling.
package md

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/open-cli-collective/adorn/pkg/markup"
)

// specifierLike matches text the markup parser would mistake for an argument
// specifier if it appeared alone inside a phrase.
var specifierLike = regexp.MustCompile(`^-?\d+(,-?\d+)*!?$`)

// Theme maps Markdown constructs to positional style indices. The caller
// supplies the matching styles when rendering the produced markup.
type Theme struct {
	Heading  int
	Strong   int
	Emphasis int
	Code     int
}

// DefaultTheme returns the index assignment used by the adorn CLI.
func DefaultTheme() Theme {
	return Theme{Heading: 0, Strong: 1, Emphasis: 2, Code: 3}
}

// Converter turns Markdown into adorn markup.
type Converter struct {
	theme Theme
	gm    goldmark.Markdown
}

// NewConverter creates a converter using the given theme.
func NewConverter(theme Theme) *Converter {
	return &Converter{
		theme: theme,
		gm: goldmark.New(
			goldmark.WithExtensions(extension.Table, extension.Strikethrough),
		),
	}
}

// Convert parses the Markdown source and returns adorn markup. Literal text
// is escaped, so the output always parses cleanly.
func (c *Converter) Convert(source []byte) (string, error) {
	if len(source) == 0 {
		return "", nil
	}

	doc := c.gm.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	if err := c.renderBlocks(&b, source, doc, ""); err != nil {
		return "", err
	}
	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

// phrase writes a styled phrase around the inline content of n.
func (c *Converter) phrase(b *strings.Builder, source []byte, n ast.Node, index int) {
	var inner strings.Builder
	c.renderInline(&inner, source, n)
	b.WriteString(c.stylize(inner.String(), index))
}

// stylize wraps already-escaped content in a styled phrase. Content the
// markup language cannot carry inside a phrase, like text that reads as an
// argument specifier, is passed through unstyled.
func (c *Converter) stylize(content string, index int) string {
	if content == "" || specifierLike.MatchString(content) {
		return content
	}
	// A trailing backslash would escape the specifier's opening marker; an
	// extra backslash turns it back into a literal.
	if strings.HasSuffix(content, `\`) {
		content += `\`
	}
	return fmt.Sprintf("<%s<%d>>", content, index)
}

func (c *Converter) renderBlocks(b *strings.Builder, source []byte, parent ast.Node, indent string) error {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch t := n.(type) {
		case *ast.Heading:
			b.WriteString(indent)
			c.phrase(b, source, t, c.theme.Heading)
			b.WriteString("\n\n")

		case *ast.Paragraph, *ast.TextBlock:
			b.WriteString(indent)
			c.renderInline(b, source, n)
			b.WriteString("\n")
			if _, ok := n.(*ast.Paragraph); ok {
				b.WriteString("\n")
			}

		case *ast.FencedCodeBlock:
			c.renderCodeLines(b, source, t.Lines(), indent)
			b.WriteString("\n")

		case *ast.CodeBlock:
			c.renderCodeLines(b, source, t.Lines(), indent)
			b.WriteString("\n")

		case *ast.List:
			if err := c.renderList(b, source, t, indent); err != nil {
				return err
			}
			b.WriteString("\n")

		case *ast.Blockquote:
			var quoted strings.Builder
			if err := c.renderBlocks(&quoted, source, t, ""); err != nil {
				return err
			}
			for _, line := range strings.Split(strings.TrimRight(quoted.String(), "\n"), "\n") {
				b.WriteString(indent)
				b.WriteString("> ")
				b.WriteString(line)
				b.WriteString("\n")
			}
			b.WriteString("\n")

		case *ast.ThematicBreak:
			b.WriteString(indent)
			b.WriteString("---\n\n")

		case *ast.HTMLBlock:
			// Raw HTML blocks carry no terminal styling; skip them.

		default:
			if err := c.renderBlocks(b, source, n, indent); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Converter) renderCodeLines(b *strings.Builder, source []byte, lines *text.Segments, indent string) {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(source)), "\n")
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(c.stylize(markup.Escape(line), c.theme.Code))
		b.WriteString("\n")
	}
}

func (c *Converter) renderList(b *strings.Builder, source []byte, list *ast.List, indent string) error {
	number := list.Start
	if number == 0 {
		number = 1
	}

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		bullet := "- "
		if list.IsOrdered() {
			bullet = fmt.Sprintf("%d. ", number)
			number++
		}

		var body strings.Builder
		if err := c.renderBlocks(&body, source, item, ""); err != nil {
			return err
		}

		lines := strings.Split(strings.TrimRight(body.String(), "\n"), "\n")
		for i, line := range lines {
			b.WriteString(indent)
			if i == 0 {
				b.WriteString(bullet)
			} else if line != "" {
				b.WriteString(strings.Repeat(" ", len(bullet)))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return nil
}

func (c *Converter) renderInline(b *strings.Builder, source []byte, parent ast.Node) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch t := n.(type) {
		case *ast.Text:
			b.WriteString(markup.Escape(string(t.Segment.Value(source))))
			switch {
			case t.HardLineBreak():
				b.WriteString("\n")
			case t.SoftLineBreak():
				b.WriteString(" ")
			}

		case *ast.String:
			b.WriteString(markup.Escape(string(t.Value)))

		case *ast.Emphasis:
			index := c.theme.Emphasis
			if t.Level >= 2 {
				index = c.theme.Strong
			}
			c.phrase(b, source, t, index)

		case *ast.CodeSpan:
			c.phrase(b, source, t, c.theme.Code)

		case *ast.Link:
			c.renderInline(b, source, t)
			if dest := string(t.Destination); dest != "" {
				b.WriteString(" (")
				b.WriteString(markup.Escape(dest))
				b.WriteString(")")
			}

		case *ast.AutoLink:
			b.WriteString(markup.Escape(string(t.URL(source))))

		case *ast.Image:
			// Alt text only; terminals have nowhere to put the image.
			c.renderInline(b, source, t)

		case *ast.RawHTML:
			// Inline HTML carries no terminal styling; skip it.

		default:
			c.renderInline(b, source, n)
		}
	}
}
