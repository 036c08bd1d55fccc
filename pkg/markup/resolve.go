// resolve.go computes each phrase's style code from the positional styles,
// the always-styles and the per-render sequential counter.
package markup

import (
	"fmt"

	"github.com/open-cli-collective/adorn/pkg/sgr"
)

// renderContext is the per-call state of one Render invocation. A fresh one
// is built for every call, so repeated renders on the same parser are
// independent: the sequential counter always starts at zero.
type renderContext struct {
	table      sgr.Table
	positional []uint64
	always     map[string]uint64
	counter    int
}

// resolve sets p.StyleCode. Explicit argument indices win over everything
// else; they merge with an always-style bound to the same text unless the
// phrase carried the override marker. A phrase with no arguments and no
// always-style consumes the next positional style sequentially.
func (rc *renderContext) resolve(p *Phrase) error {
	switch {
	case len(p.ArgumentIndices) > 0:
		var combination uint64
		for _, i := range p.ArgumentIndices {
			if i < 0 || i >= len(rc.positional) {
				return &ArgumentError{Message: fmt.Sprintf(
					"positional argument index %d is out of range (%d positional styles supplied)",
					i, len(rc.positional))}
			}
			combination |= rc.positional[i]
		}
		if always, ok := rc.always[p.Text]; ok && !p.OverrideAlways {
			combination |= always
		}
		p.StyleCode = rc.table.Codify(combination)

	default:
		if combination, ok := rc.always[p.Text]; ok {
			p.StyleCode = rc.table.Codify(combination)
			return nil
		}
		if rc.counter >= len(rc.positional) {
			return &ArgumentError{Message: fmt.Sprintf(
				"requested %s positional style for %q but only %d were supplied",
				ordinal(rc.counter+1), p.Text, len(rc.positional))}
		}
		p.StyleCode = rc.table.Codify(rc.positional[rc.counter])
		rc.counter++
	}
	return nil
}
