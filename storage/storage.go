package storage

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// Handle names a buffer held by a Storage backend. The zero Handle is never
// a live buffer.
type Handle int32

// IsValid reports whether the handle could name a live buffer.
func (h Handle) IsValid() bool {
	return h > 0
}

// Storage is a growable store of word buffers. All methods are synchronous;
// implementations are not required to be safe for concurrent use, matching
// the single-threaded formatter core.
type Storage interface {
	// Alloc creates a new empty buffer. It fails with ErrExhausted when the
	// backend has no blocks left.
	Alloc() (Handle, error)

	// Append adds one word to the end of the buffer.
	Append(h Handle, word uint32) error

	// Len returns the number of words held by the buffer.
	Len(h Handle) int

	// Each walks the buffer words in order. Walking stops at the first
	// callback error, which is returned to the caller.
	Each(h Handle, f func(word uint32) error) error

	// Free releases the buffer and its blocks.
	Free(h Handle)
}
