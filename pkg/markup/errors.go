// errors.go defines the error types reported by parsing and rendering, plus
// the ordinal wording used in argument error messages.
package markup

import (
	"fmt"
	"strconv"
	"strings"
)

// FlagError reports a style flag combination outside the table's valid range.
// It is returned from NewParser, before any parsing happens.
type FlagError struct {
	Value uint64
	Limit uint64
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("flag value %d is out of range (limit %d)", e.Value, e.Limit)
}

// ParseError reports ill-formed markup, such as an opening marker that is
// never closed.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// ArgumentError reports a positional style request that cannot be satisfied:
// an explicit argument index out of range, or more unnamed phrases than
// supplied positional styles.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

// InternalError reports a broken invariant inside the package itself. It
// signals a defect here, not bad caller input.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return "internal: " + e.Message
}

// ordinal returns a spoken-word ordinal with its article, e.g. 1 -> "a 1st",
// 8 -> "an 8th", 11 -> "an 11th".
func ordinal(n int) string {
	digits := strconv.Itoa(n)

	article := "a"
	if strings.HasPrefix(digits, "8") || digits[:len(digits)%3] == "11" {
		article = "an"
	}

	var suffix string
	switch {
	case strings.HasSuffix(digits, "1") && digits != "11":
		suffix = "st"
	case strings.HasSuffix(digits, "2") && digits != "12":
		suffix = "nd"
	case strings.HasSuffix(digits, "3") && digits != "13":
		suffix = "rd"
	default:
		suffix = "th"
	}

	return article + " " + digits + suffix
}
