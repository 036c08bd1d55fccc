// parser.go builds the phrase tree: a recursive descent over a single
// working buffer whose escape characters collapse in place as they are
// resolved.
package markup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// maxNestingDepth bounds recursion so hostile input cannot exhaust the call
// stack. Parsing fails with a ParseError beyond this depth.
const maxNestingDepth = 500

// argumentPattern matches a positional-argument specifier: comma-separated,
// possibly negative-looking integers with an optional trailing override
// marker. Negative indices parse here and are rejected with an ArgumentError
// during style resolution.
var argumentPattern = regexp.MustCompile(`^-?\d+(,-?\d+)*!?$`)

// builder holds the state of one parse call.
type builder struct {
	buf     []byte
	phrases []*Phrase
	diag    func(Diagnostic)
	depth   int
}

func (b *builder) run() (*ParseResult, error) {
	if _, err := b.parse(0, 0, nil); err != nil {
		return nil, err
	}
	return &ParseResult{Text: string(b.buf), Phrases: b.phrases}, nil
}

// parse scans the buffer from pos. With current == nil it is in top-level
// mode, collecting sibling phrases into b.phrases; otherwise it is in phrase
// mode, filling in current until its genuine closing marker. frameStart is
// the absolute index just past current's opening marker (0 at top level);
// the text classified against a closing marker always runs from frameStart.
// In phrase mode the return value is the absolute index of the consumed
// closing marker.
func (b *builder) parse(pos, frameStart int, current *Phrase) (int, error) {
	tag := nextMarker(b.buf, pos)

	for tag >= 0 {
		switch {
		case b.buf[tag] == markerOpen:
			opening := tag

			// One level of escape resolution. A single backslash makes the
			// marker literal; a double one collapses to a literal backslash
			// in front of a genuine marker.
			if opening > 0 && b.buf[opening-1] == escapeChar {
				b.buf = removeAt(b.buf, opening-1)
				opening--
				if opening == 0 || b.buf[opening-1] != escapeChar {
					tag = nextMarker(b.buf, opening+1)
					continue
				}
			}

			// Inside a phrase, a specifier like <0,2!> names the current
			// phrase's positional styles rather than opening a child. It is
			// cut out of the working text entirely.
			if current != nil {
				if end, ok := b.specifierAt(opening); ok {
					current.ArgumentIndices, current.OverrideAlways = parseSpecifier(string(b.buf[opening+1 : end]))
					b.buf = append(b.buf[:opening], b.buf[end+1:]...)
					tag = nextMarker(b.buf, opening)
					continue
				}
			}

			if b.depth >= maxNestingDepth {
				return 0, b.parseError(opening, "markup nested more than %d levels deep", maxNestingDepth)
			}

			child := &Phrase{OpenIndex: opening - frameStart}
			b.depth++
			closing, err := b.parse(opening+1, opening+1, child)
			b.depth--
			if err != nil {
				return 0, err
			}
			if current != nil {
				current.Children = append(current.Children, child)
			} else {
				b.phrases = append(b.phrases, child)
			}
			tag = nextMarker(b.buf, closing+1)

		case current != nil:
			// Closing marker in phrase mode. Classify the text scanned so
			// far: argument specifier, escaped marker, or genuine close.
			text := string(b.buf[frameStart:tag])

			switch {
			case argumentPattern.MatchString(text):
				current.ArgumentIndices, current.OverrideAlways = parseSpecifier(text)
				// The specifier consumes this marker without closing the
				// phrase; drop it from the working text and keep scanning.
				b.buf = append(b.buf[:frameStart], b.buf[tag+1:]...)
				tag = nextMarker(b.buf, frameStart)

			case strings.HasSuffix(text, string(escapeChar)):
				b.buf = removeAt(b.buf, tag-1)
				if !strings.HasSuffix(text[:len(text)-1], string(escapeChar)) {
					// Escaped closing marker: literal '>', keep scanning
					// just past it.
					tag = nextMarker(b.buf, tag)
					continue
				}
				// Double escape: a genuine close preceded by a literal
				// backslash. The marker now sits one position earlier.
				current.Text = string(b.buf[frameStart : tag-1])
				current.CloseIndex = current.OpenIndex + (tag - frameStart)
				return tag - 1, nil

			default:
				current.Text = text
				current.CloseIndex = current.OpenIndex + 1 + (tag - frameStart)
				return tag, nil
			}

		default:
			// Closing marker at top level: nothing is open, so an unescaped
			// one is an orphan. It stays in the text; only its structural
			// role is dropped.
			if tag > 0 && b.buf[tag-1] == escapeChar {
				b.buf = removeAt(b.buf, tag-1)
				tag--
				if tag == 0 || b.buf[tag-1] != escapeChar {
					tag = nextMarker(b.buf, tag+1)
					continue
				}
			}
			if err := b.warn("un-escaped '>' marker", tag); err != nil {
				return 0, err
			}
			tag = nextMarker(b.buf, tag+1)
		}
	}

	if current == nil {
		return -1, nil
	}
	return 0, b.unclosedError(frameStart - 1)
}

// specifierAt reports whether the opening marker at opening begins a
// complete argument specifier, i.e. the next marker is a closing one and
// everything between them matches the specifier pattern. end is the index
// of that closing marker.
func (b *builder) specifierAt(opening int) (end int, ok bool) {
	next := nextMarker(b.buf, opening+1)
	if next < 0 || b.buf[next] != markerClose {
		return 0, false
	}
	if !argumentPattern.Match(b.buf[opening+1 : next]) {
		return 0, false
	}
	return next, true
}

// parseSpecifier splits a matched specifier body into its argument indices
// and override flag.
func parseSpecifier(text string) (indices []int, override bool) {
	if strings.HasSuffix(text, "!") {
		override = true
		text = strings.TrimSuffix(text, "!")
	}
	for _, field := range strings.Split(text, ",") {
		n, _ := strconv.Atoi(field)
		indices = append(indices, n)
	}
	return indices, override
}

// unclosedError builds the ParseError for an opening marker whose phrase
// never closed, locating it in the current working text.
func (b *builder) unclosedError(opening int) error {
	context := string(b.buf[opening:])
	if len(context) > 24 {
		context = context[:24]
	}
	return b.parseError(opening, "no closing marker found for opening marker near %q", context)
}

// parseError builds a ParseError whose message locates index in the current
// working text.
func (b *builder) parseError(index int, format string, args ...interface{}) error {
	pos, err := Position(string(b.buf), index)
	if err != nil {
		return err
	}
	msg := fmt.Sprintf(format, args...)
	return &ParseError{Message: fmt.Sprintf("%s at position %s", msg, pos)}
}

// warn reports a recoverable condition at index through the diagnostic
// callback, if one is set.
func (b *builder) warn(message string, index int) error {
	if b.diag == nil {
		return nil
	}
	pos, err := Position(string(b.buf), index)
	if err != nil {
		return err
	}
	b.diag(Diagnostic{Message: message, Position: pos})
	return nil
}
