// position.go maps absolute character indices to human-readable positions
// for diagnostics and error messages.
package markup

import (
	"fmt"
	"strconv"
	"strings"
)

// Position describes index within s: "line:column" (both 1-indexed) when s
// spans multiple lines, or the bare index for single-line input. An
// out-of-range index is a caller bug and yields an InternalError.
func Position(s string, index int) (string, error) {
	if index < 0 || index >= len(s) {
		return "", &InternalError{Message: fmt.Sprintf("index %d out of range for position lookup (length %d)", index, len(s))}
	}

	if !strings.Contains(s, "\n") {
		return strconv.Itoa(index), nil
	}

	line := 1
	lineStart := 0
	for i := 0; i < index; i++ {
		if s[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return fmt.Sprintf("%d:%d", line, index-lineStart+1), nil
}
