package buf

import "bytes"

// Find returns the 1-based position of the first occurrence of pattern
// at or after position from, or 0 if there is none. The search is a
// naive byte-by-byte scan, O(n*m) in the buffer and pattern lengths.
// An empty pattern or a from outside [1, Len()] finds nothing.
func (b *Buffer) Find(pattern []byte, from int) int {
	m := len(pattern)
	if m == 0 || from < 1 || from > len(b.data) {
		return 0
	}
	for i := from; i+m-1 <= len(b.data); i++ {
		if bytes.Equal(b.data[i-1:i-1+m], pattern) {
			return i
		}
	}
	return 0
}

// Split cuts the buffer around occurrences of delim and returns the
// segments as non-owning views, in order. A nil or empty delimiter
// defaults to a single space byte. Empty segments between consecutive
// delimiters are skipped.
//
// Boundary behavior: the segment after the final delimiter is emitted
// only when it starts strictly before the last position, so a one-byte
// trailing segment ending exactly at the buffer end is dropped.
func (b *Buffer) Split(delim []byte) []*Buffer {
	if len(delim) == 0 {
		delim = []byte{' '}
	}
	var parts []*Buffer
	start := 1
	for start <= len(b.data) {
		pos := b.Find(delim, start)
		if pos == 0 {
			break
		}
		if pos > start {
			parts = append(parts, b.view(start, pos-1))
		}
		start = pos + len(delim)
	}
	if start < len(b.data) {
		parts = append(parts, b.view(start, len(b.data)))
	}
	return parts
}
