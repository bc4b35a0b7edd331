package buf

import (
	"testing"
	"unsafe"

	"github.com/cwbudde/algo-buffer/alloc"
)

func TestNewZeroFilled(t *testing.T) {
	b, err := New(8)
	if err != nil {
		t.Fatalf("New(8) error: %v", err)
	}
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}
	for i, v := range b.Bytes() {
		if v != 0 {
			t.Fatalf("Bytes()[%d] = %d, want 0", i, v)
		}
	}
	if !b.Owns() {
		t.Fatal("New buffer should own its allocation")
	}
}

func TestNewNegativeLength(t *testing.T) {
	if _, err := New(-1); err != ErrInvalidArgument {
		t.Fatalf("New(-1) error = %v, want ErrInvalidArgument", err)
	}
}

func TestNewZeroLength(t *testing.T) {
	b, err := New(0)
	if err != nil {
		t.Fatalf("New(0) error: %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", b.Len())
	}
	if _, err := b.Get(1); err != ErrOutOfBounds {
		t.Fatalf("Get(1) on empty buffer error = %v, want ErrOutOfBounds", err)
	}
}

func TestFromBytesSharesMemory(t *testing.T) {
	s := []byte{1, 2, 3}
	b := FromBytes(s)
	if b.Owns() {
		t.Fatal("FromBytes buffer should not own the memory")
	}
	if err := b.Set(1, 99); err != nil {
		t.Fatalf("Set(1, 99) error: %v", err)
	}
	if s[0] != 99 {
		t.Fatal("FromBytes should share underlying memory")
	}
}

func TestFromStringCopies(t *testing.T) {
	b := FromString("test")
	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", b.Len())
	}
	if got := b.String(); got != "test" {
		t.Fatalf("String() = %q, want %q", got, "test")
	}
	if err := b.Set(1, 'b'); err != nil {
		t.Fatalf("Set(1, 'b') error: %v", err)
	}
	if got := b.String(); got != "best" {
		t.Fatalf("String() after write = %q, want %q", got, "best")
	}
}

func TestFromPointerAliases(t *testing.T) {
	s := []byte{10, 20, 30, 40}
	b, err := FromPointer(unsafe.Pointer(&s[0]), len(s))
	if err != nil {
		t.Fatalf("FromPointer error: %v", err)
	}
	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", b.Len())
	}
	if err := b.Set(3, 99); err != nil {
		t.Fatalf("Set(3, 99) error: %v", err)
	}
	if s[2] != 99 {
		t.Fatal("FromPointer should alias the pointed-to memory")
	}
}

func TestFromPointerInvalid(t *testing.T) {
	if _, err := FromPointer(nil, 4); err != ErrInvalidArgument {
		t.Fatalf("FromPointer(nil, 4) error = %v, want ErrInvalidArgument", err)
	}
	s := []byte{1}
	if _, err := FromPointer(unsafe.Pointer(&s[0]), -1); err != ErrInvalidArgument {
		t.Fatalf("FromPointer(p, -1) error = %v, want ErrInvalidArgument", err)
	}
	b, err := FromPointer(nil, 0)
	if err != nil {
		t.Fatalf("FromPointer(nil, 0) error: %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", b.Len())
	}
}

func TestViewAliasesWholeBuffer(t *testing.T) {
	b, err := New(4)
	if err != nil {
		t.Fatalf("New(4) error: %v", err)
	}
	v := View(b)
	if v.Len() != b.Len() {
		t.Fatalf("view Len() = %d, want %d", v.Len(), b.Len())
	}
	if v.Owns() {
		t.Fatal("view should not own the memory")
	}

	// Writes made after the view was taken must be visible through it.
	if err := b.Set(1, 10); err != nil {
		t.Fatalf("Set(1, 10) error: %v", err)
	}
	if err := b.Set(2, 20); err != nil {
		t.Fatalf("Set(2, 20) error: %v", err)
	}
	got1, _ := v.Get(1)
	got2, _ := v.Get(2)
	if got1 != 10 || got2 != 20 {
		t.Fatalf("view reads (%d, %d), want (10, 20)", got1, got2)
	}
}

func TestAdoptTransfersRelease(t *testing.T) {
	counting := alloc.NewCounting(nil)
	data := counting.Allocate(16)

	b := Adopt(data, counting)
	if !b.Owns() {
		t.Fatal("Adopt buffer should own the memory")
	}
	b.Free()
	if counting.Releases() != 1 {
		t.Fatalf("Releases() = %d, want 1 after Free", counting.Releases())
	}
}

func TestFreeReleasesExactlyOnce(t *testing.T) {
	counting := alloc.NewCounting(nil)
	b, err := New(8, WithAllocator(counting))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	v, err := b.Slice(2, 5)
	if err != nil {
		t.Fatalf("Slice error: %v", err)
	}
	w := View(b)

	b.Free()
	if counting.Releases() != 0 {
		t.Fatalf("Releases() = %d after owner Free with live views, want 0", counting.Releases())
	}
	v.Free()
	if counting.Releases() != 0 {
		t.Fatalf("Releases() = %d with one view still live, want 0", counting.Releases())
	}
	w.Free()
	if counting.Releases() != 1 {
		t.Fatalf("Releases() = %d after last view freed, want 1", counting.Releases())
	}

	// Free is idempotent per buffer.
	b.Free()
	w.Free()
	if counting.Releases() != 1 {
		t.Fatalf("Releases() = %d after repeated Free, want 1", counting.Releases())
	}
	if counting.Outstanding() != 0 {
		t.Fatalf("Outstanding() = %d, want 0", counting.Outstanding())
	}
}

func TestFreeNoopForNonOwning(t *testing.T) {
	s := []byte{1, 2, 3}
	b := FromBytes(s)
	b.Free()
	if s[0] != 1 {
		t.Fatal("Free of a non-owning buffer must not touch the memory")
	}
}

func TestPooledAllocationRoundTrip(t *testing.T) {
	pool := alloc.NewPool()
	counting := alloc.NewCounting(pool)

	b, err := New(32, WithAllocator(counting))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if err := b.Set(1, 0xff); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	b.Free()

	// A fresh allocation after the release must come back zeroed even if
	// the pool recycled the dirty region.
	c, err := New(32, WithAllocator(counting))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for i, v := range c.Bytes() {
		if v != 0 {
			t.Fatalf("recycled allocation byte %d = %d, want 0", i, v)
		}
	}
	c.Free()

	if counting.Outstanding() != 0 {
		t.Fatalf("Outstanding() = %d, want 0", counting.Outstanding())
	}
}
