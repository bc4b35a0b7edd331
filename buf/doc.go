// Package buf provides a zero-copy byte buffer with explicit ownership
// of its backing memory.
//
// A Buffer is a fixed-length window over raw bytes. Wrapping existing
// memory never copies it: slices and views share the receiver's
// backing, writes through a view are visible through the parent, and
// bytes only move in bulk via CopyFrom, Clone, or concatenation.
//
// Positions are 1-based and ranges are inclusive throughout the package:
// Get(1) reads the first byte, Slice(1, b.Len()) covers the whole buffer.
//
// Owning buffers draw their memory from an [alloc.Allocator] and return
// it with Free. Views over owned memory keep the allocation alive; the
// allocator sees exactly one Release per allocation, once the owner and
// every view have been freed. Using a buffer after its backing has been
// released to a recycling allocator is undefined behavior.
//
// Buffers are not safe for concurrent use: mutating a Buffer, or any
// Buffer sharing its backing memory, from multiple goroutines without
// external synchronization is undefined behavior.
package buf
