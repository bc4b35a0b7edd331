package buf

import "encoding/binary"

// Typed reads decode fixed-width integers at 1-based offsets. Each read
// covers the field's full extent: a 16-bit read at offset i requires
// 1 <= i and i+1 <= Len(), failing with [ErrOutOfBounds] otherwise.
// Reads are pure functions of the buffer contents.

func (b *Buffer) field(i, width int) ([]byte, error) {
	if i < 1 || i+width-1 > len(b.data) {
		return nil, ErrOutOfBounds
	}
	return b.data[i-1 : i-1+width], nil
}

// Uint8 returns the unsigned byte at position i.
func (b *Buffer) Uint8(i int) (uint8, error) {
	return b.Get(i)
}

// Int8 returns the signed byte at position i.
func (b *Buffer) Int8(i int) (int8, error) {
	v, err := b.Get(i)
	return int8(v), err
}

// Uint16LE returns the little-endian unsigned 16-bit value at position i.
func (b *Buffer) Uint16LE(i int) (uint16, error) {
	p, err := b.field(i, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(p), nil
}

// Uint16BE returns the big-endian unsigned 16-bit value at position i.
func (b *Buffer) Uint16BE(i int) (uint16, error) {
	p, err := b.field(i, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(p), nil
}

// Int16LE returns the little-endian signed 16-bit value at position i.
func (b *Buffer) Int16LE(i int) (int16, error) {
	v, err := b.Uint16LE(i)
	return int16(v), err
}

// Int16BE returns the big-endian signed 16-bit value at position i.
func (b *Buffer) Int16BE(i int) (int16, error) {
	v, err := b.Uint16BE(i)
	return int16(v), err
}

// Uint32LE returns the little-endian unsigned 32-bit value at position i.
func (b *Buffer) Uint32LE(i int) (uint32, error) {
	p, err := b.field(i, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(p), nil
}

// Uint32BE returns the big-endian unsigned 32-bit value at position i.
func (b *Buffer) Uint32BE(i int) (uint32, error) {
	p, err := b.field(i, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(p), nil
}

// Int32LE returns the little-endian signed 32-bit value at position i.
func (b *Buffer) Int32LE(i int) (int32, error) {
	v, err := b.Uint32LE(i)
	return int32(v), err
}

// Int32BE returns the big-endian signed 32-bit value at position i.
func (b *Buffer) Int32BE(i int) (int32, error) {
	v, err := b.Uint32BE(i)
	return int32(v), err
}
