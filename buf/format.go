package buf

import "encoding/hex"

// String returns a copy of the buffer contents as a string. The result
// is independent of later buffer mutation.
func (b *Buffer) String() string {
	return string(b.data)
}

// ToString returns a copy of the 1-based inclusive range [start, last]
// as a string, subject to the same bound rule as Slice. The result is a
// genuine copy, independent of later buffer mutation.
func (b *Buffer) ToString(start, last int) (string, error) {
	if err := b.checkRange(start, last); err != nil {
		return "", err
	}
	return string(b.data[start-1 : last]), nil
}

// Hex returns the buffer contents as lowercase hexadecimal, two digits
// per byte.
func (b *Buffer) Hex() string {
	return hex.EncodeToString(b.data)
}
