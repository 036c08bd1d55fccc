// Package markup converts text annotated with a lightweight nested-tag
// language into text decorated with ANSI style codes.
//
// A phrase is a region between '<' and '>' markers. Styles come from three
// places: an explicit positional-argument specifier written inside the
// phrase ("<warning<0,2>>" combines positional styles 0 and 2), an
// always-style bound to the phrase's literal text, or, failing both, the
// next unconsumed positional style in order of appearance. Phrases nest;
// when a nested phrase ends, the enclosing phrase's style is restored
// instead of everything being reset. A backslash escapes a literal marker
// character, and a doubled backslash puts a literal backslash in front of a
// genuine marker.
//
// The package does no I/O and a Parser is safe to reuse: every Render call
// carries its own sequential-counter state.
package markup

import (
	"strings"

	"github.com/open-cli-collective/adorn/pkg/sgr"
)

// Parser renders markup against a fixed style configuration. Build one with
// NewParser; the zero value has no styles and rejects nothing.
type Parser struct {
	table      sgr.Table
	positional []uint64
	always     map[string]uint64
	diag       func(Diagnostic)
}

// Option configures a Parser.
type Option func(*Parser)

// WithTable replaces the flag table the parser validates and renders
// against. The default is sgr.Default().
func WithTable(t sgr.Table) Option {
	return func(p *Parser) { p.table = t }
}

// WithStyles appends flag combinations to the positional style list.
// Repeated options flatten in order, so a caller holding styles in groups
// can pass each group separately.
func WithStyles(combinations ...uint64) Option {
	return func(p *Parser) { p.positional = append(p.positional, combinations...) }
}

// WithStyleList appends a prebuilt slice of flag combinations to the
// positional style list.
func WithStyleList(combinations []uint64) Option {
	return func(p *Parser) { p.positional = append(p.positional, combinations...) }
}

// WithAlways binds a style permanently to a literal phrase text. A later
// binding for the same text overwrites an earlier one.
func WithAlways(text string, combination uint64) Option {
	return func(p *Parser) { p.always[text] = combination }
}

// WithAlwaysGroup binds one style to several equivalent phrase texts.
func WithAlwaysGroup(texts []string, combination uint64) Option {
	return func(p *Parser) {
		for _, t := range texts {
			p.always[t] = combination
		}
	}
}

// WithDiagnostics sets the callback that receives recoverable parse
// conditions, such as an orphan closing marker at the top level. Without it
// they are silently dropped.
func WithDiagnostics(fn func(Diagnostic)) Option {
	return func(p *Parser) { p.diag = fn }
}

// NewParser builds a Parser. Every supplied flag combination, positional or
// always-bound, is range-checked against the table; an out-of-range value
// fails with a FlagError before any input is parsed.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{
		table:  sgr.Default(),
		always: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(p)
	}

	limit := p.table.Limit()
	for _, c := range p.positional {
		if c >= limit {
			return nil, &FlagError{Value: c, Limit: limit}
		}
	}
	for _, c := range p.always {
		if c >= limit {
			return nil, &FlagError{Value: c, Limit: limit}
		}
	}
	return p, nil
}

// Parse builds the phrase tree for a markup string without rendering it.
func (p *Parser) Parse(input string) (*ParseResult, error) {
	b := &builder{buf: []byte(input), diag: p.diag}
	return b.run()
}

// Render converts a markup string into its styled form. Parse and argument
// errors fail the whole call; there is no partial output. Input without any
// phrases passes through unchanged.
func (p *Parser) Render(input string) (string, error) {
	result, err := p.Parse(input)
	if err != nil {
		return "", err
	}
	if len(result.Phrases) == 0 {
		return result.Text, nil
	}

	rc := &renderContext{
		table:      p.table,
		positional: p.positional,
		always:     p.always,
	}
	return rc.stringify(result.Text, result.Phrases, nil)
}

// Strip removes markup from input without applying any styling. Phrase
// markers and argument specifiers disappear and escaped characters become
// literal, but no control sequences are emitted and no positional styles
// are consumed.
func (p *Parser) Strip(input string) (string, error) {
	result, err := p.Parse(input)
	if err != nil {
		return "", err
	}
	if len(result.Phrases) == 0 {
		return result.Text, nil
	}
	return stripPhrases(result.Text, result.Phrases), nil
}

// Escape backslash-escapes marker characters so s renders as literal text.
// A backslash that directly precedes a marker in s cannot be represented,
// since the language resolves only one escape level per marker; such a
// backslash is dropped.
func Escape(s string) string {
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case markerOpen, markerClose:
			out.WriteByte(escapeChar)
			out.WriteByte(s[i])
		case escapeChar:
			if i+1 < len(s) && (s[i+1] == markerOpen || s[i+1] == markerClose) {
				continue
			}
			out.WriteByte(s[i])
		default:
			out.WriteByte(s[i])
		}
	}
	return out.String()
}
