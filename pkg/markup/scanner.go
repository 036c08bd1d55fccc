// scanner.go locates markup markers and applies escape removal to the
// working buffer.
package markup

import "bytes"

const (
	markerOpen  = '<'
	markerClose = '>'
	escapeChar  = '\\'
)

// nextMarker returns the index of the next marker at or after pos, or -1.
// Escape resolution happens at the call sites, one escape per step, because
// whether a preceding backslash makes the marker literal depends on parity:
// one backslash escapes the marker, two leave a literal backslash in front
// of a genuine marker.
func nextMarker(buf []byte, pos int) int {
	if pos >= len(buf) {
		return -1
	}
	i := bytes.IndexAny(buf[pos:], "<>")
	if i < 0 {
		return -1
	}
	return pos + i
}

// removeAt deletes the byte at i, shifting the rest of the buffer left in
// place. Every index greater than i held by the caller is invalidated and
// must be recomputed against the shortened buffer.
func removeAt(buf []byte, i int) []byte {
	return append(buf[:i], buf[i+1:]...)
}
