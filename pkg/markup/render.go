// render.go walks the phrase tree in document order and interleaves literal
// text with style-start and style-reset control sequences.
package markup

import (
	"fmt"
	"strings"
)

// stringify renders sibling phrases against their enclosing text. Styles
// resolve parent-first, so a phrase consumes its sequential slot before any
// of its children do. The reset after each phrase restores the parent's
// style rather than clearing everything, which is what keeps an enclosing
// style alive across a nested phrase's end.
func (rc *renderContext) stringify(s string, phrases []*Phrase, parent *Phrase) (string, error) {
	last := 0
	var out strings.Builder

	for _, p := range phrases {
		out.WriteString(s[last:p.OpenIndex])

		if err := rc.resolve(p); err != nil {
			return "", err
		}

		if len(p.Children) > 0 {
			rendered, err := rc.stringify(p.Text, p.Children, p)
			if err != nil {
				return "", err
			}
			p.Text = rendered
		}

		reset := ""
		if parent != nil {
			reset = parent.StyleCode
		}
		fmt.Fprintf(&out, "\x1b[%sm%s\x1b[0;%sm", p.StyleCode, p.Text, reset)

		last = p.CloseIndex + 1
	}

	if last < len(s) {
		out.WriteString(s[last:])
	}
	return out.String(), nil
}

// stripPhrases rebuilds the literal text with phrase markers removed and no
// styling applied.
func stripPhrases(s string, phrases []*Phrase) string {
	last := 0
	var out strings.Builder

	for _, p := range phrases {
		out.WriteString(s[last:p.OpenIndex])
		if len(p.Children) > 0 {
			p.Text = stripPhrases(p.Text, p.Children)
		}
		out.WriteString(p.Text)
		last = p.CloseIndex + 1
	}

	if last < len(s) {
		out.WriteString(s[last:])
	}
	return out.String()
}
