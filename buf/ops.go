package buf

// Get returns the byte at 1-based position i.
// Fails with [ErrOutOfBounds] unless 1 <= i <= Len().
func (b *Buffer) Get(i int) (byte, error) {
	if i < 1 || i > len(b.data) {
		return 0, ErrOutOfBounds
	}
	return b.data[i-1], nil
}

// Set writes v at 1-based position i.
// Fails with [ErrOutOfBounds] unless 1 <= i <= Len().
func (b *Buffer) Set(i int, v byte) error {
	if i < 1 || i > len(b.data) {
		return ErrOutOfBounds
	}
	b.data[i-1] = v
	return nil
}

// checkRange validates a 1-based inclusive range against the buffer.
// last == start-1 denotes the empty range and is accepted.
func (b *Buffer) checkRange(start, last int) error {
	if start < 1 || last > len(b.data) || last < start-1 {
		return ErrOutOfRange
	}
	return nil
}

// view returns a slice buffer without validating the range.
func (b *Buffer) view(start, last int) *Buffer {
	if b.blk != nil {
		b.blk.retain()
	}
	return &Buffer{data: b.data[start-1 : last], blk: b.blk}
}

// Slice returns a non-owning buffer over the 1-based inclusive range
// [start, last], sharing memory with the receiver: writes through the
// slice are visible at the corresponding positions of the receiver.
// Slicing never allocates. Fails with [ErrOutOfRange] unless
// 1 <= start, start <= last+1, and last <= Len().
func (b *Buffer) Slice(start, last int) (*Buffer, error) {
	if err := b.checkRange(start, last); err != nil {
		return nil, err
	}
	return b.view(start, last), nil
}

// CopyFrom overwrites the receiver's bytes with src's, byte for byte.
// Fails with [ErrLengthMismatch] unless the lengths are equal, in which
// case neither buffer is modified. This is the only bulk mutation path:
// slicing never copies, but writing through a slice does.
func (b *Buffer) CopyFrom(src *Buffer) error {
	return b.CopyFromBytes(src.data)
}

// CopyFromBytes is CopyFrom for a raw byte sequence.
func (b *Buffer) CopyFromBytes(src []byte) error {
	if len(src) != len(b.data) {
		return ErrLengthMismatch
	}
	copy(b.data, src)
	return nil
}

// SetRangeBuffer overwrites the 1-based inclusive range [start, last]
// with src's bytes. Equivalent to Slice(start, last) followed by
// CopyFrom(src); fails with [ErrOutOfRange] or [ErrLengthMismatch]
// before any byte is written.
func (b *Buffer) SetRangeBuffer(start, last int, src *Buffer) error {
	return b.SetRangeBytes(start, last, src.data)
}

// SetRangeBytes is SetRangeBuffer for a raw byte sequence.
func (b *Buffer) SetRangeBytes(start, last int, src []byte) error {
	if err := b.checkRange(start, last); err != nil {
		return err
	}
	if len(src) != last-start+1 {
		return ErrLengthMismatch
	}
	copy(b.data[start-1:last], src)
	return nil
}

// SetRangeString is SetRangeBuffer for a string.
func (b *Buffer) SetRangeString(start, last int, src string) error {
	if err := b.checkRange(start, last); err != nil {
		return err
	}
	if len(src) != last-start+1 {
		return ErrLengthMismatch
	}
	copy(b.data[start-1:last], src)
	return nil
}

// Clone returns a new owning buffer of the same length holding a copy of
// the receiver's bytes. This is the only way to obtain full memory
// isolation: mutating the clone never affects the receiver and vice
// versa.
func (b *Buffer) Clone(opts ...Option) (*Buffer, error) {
	out, err := New(len(b.data), opts...)
	if err != nil {
		return nil, err
	}
	copy(out.data, b.data)
	return out, nil
}

// Concat returns a new owning buffer holding the receiver's bytes
// followed by other's. Neither operand is modified. Fails with
// [ErrInvalidArgument] if other is nil.
func (b *Buffer) Concat(other *Buffer, opts ...Option) (*Buffer, error) {
	if other == nil {
		return nil, ErrInvalidArgument
	}
	return Join([]*Buffer{b, other}, opts...)
}

// Join returns a new owning buffer sized to the sum of the operand
// lengths, with each operand's bytes copied in order. Operands are never
// modified. Fails with [ErrInvalidArgument] for fewer than two operands
// or a nil operand.
func Join(bufs []*Buffer, opts ...Option) (*Buffer, error) {
	if len(bufs) < 2 {
		return nil, ErrInvalidArgument
	}
	total := 0
	for _, op := range bufs {
		if op == nil {
			return nil, ErrInvalidArgument
		}
		total += len(op.data)
	}
	out, err := New(total, opts...)
	if err != nil {
		return nil, err
	}
	n := 0
	for _, op := range bufs {
		n += copy(out.data[n:], op.data)
	}
	return out, nil
}
