// phrase.go defines the phrase tree produced by parsing.
package markup

// Phrase is a parsed tagged region of text.
//
// OpenIndex and CloseIndex locate the delimiting markers relative to the
// enclosing phrase's text (or to the whole working text for a top-level
// phrase), measured against the escape-adjusted working string at the time
// the phrase closed. CloseIndex is meaningless until then.
type Phrase struct {
	// Text is the content between the markers, with this level's escapes
	// already resolved. The renderer rewrites it in place with the rendered
	// content of Children before emitting it.
	Text string

	OpenIndex  int
	CloseIndex int

	// StyleCode is the resolved render-code string, set once by the style
	// resolver during rendering.
	StyleCode string

	// Children holds nested phrases in document order. Their marker ranges
	// lie fully inside this phrase's text and do not overlap.
	Children []*Phrase

	// ArgumentIndices names the positional-style slots to combine, in the
	// order they were written. Empty when the phrase gave no specifier.
	ArgumentIndices []int

	// OverrideAlways is set when the specifier carried the '!' suffix,
	// forcing the argument-resolved style to win over an always-style bound
	// to the same text.
	OverrideAlways bool
}

// ParseResult is the outcome of parsing one markup string.
type ParseResult struct {
	// Text is the escape-adjusted working text the phrase indices refer to.
	Text string

	// Phrases holds the top-level phrases in document order.
	Phrases []*Phrase
}

// Diagnostic is a recoverable parsing condition, reported through the
// parser's diagnostic callback without interrupting processing.
type Diagnostic struct {
	Message  string
	Position string // "line:column" for multi-line input, bare index otherwise
}

func (d Diagnostic) String() string {
	return d.Message + " at position " + d.Position
}
