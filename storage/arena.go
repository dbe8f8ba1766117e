package storage

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// Arena is the in-memory Storage backend. Buffers grow in fixed-size blocks
// against a shared block budget, so that exhaustion behaves the same way it
// does for the file-backed backend.
type Arena struct {
	budget  int // blocks still available
	buffers map[Handle][]uint32
	nexth   Handle
}

// DefaultArenaBlocks is the block budget of an arena created with size 0.
const DefaultArenaBlocks = 512

// NewArena creates an in-memory storage backend with a budget of maxBlocks
// blocks of blockWords words each. A maxBlocks of 0 selects
// DefaultArenaBlocks.
func NewArena(maxBlocks int) *Arena {
	if maxBlocks <= 0 {
		maxBlocks = DefaultArenaBlocks
	}
	return &Arena{
		budget:  maxBlocks,
		buffers: make(map[Handle][]uint32),
	}
}

// blockWords is the allocation granularity, in words.
const blockWords = 128

// Alloc creates a new empty buffer.
func (a *Arena) Alloc() (Handle, error) {
	if a.budget < 1 {
		tracer().Errorf("arena out of blocks")
		return 0, ErrExhausted
	}
	a.budget--
	a.nexth++
	h := a.nexth
	a.buffers[h] = make([]uint32, 0, blockWords)
	return h, nil
}

// Append adds one word to the end of the buffer.
func (a *Arena) Append(h Handle, word uint32) error {
	buf, ok := a.buffers[h]
	if !ok {
		return ErrBadHandle
	}
	if len(buf) == cap(buf) {
		if a.budget < 1 {
			tracer().Errorf("arena out of blocks")
			return ErrExhausted
		}
		a.budget--
		grown := make([]uint32, len(buf), cap(buf)+blockWords)
		copy(grown, buf)
		buf = grown
	}
	a.buffers[h] = append(buf, word)
	return nil
}

// Len returns the number of words held by the buffer.
func (a *Arena) Len(h Handle) int {
	return len(a.buffers[h])
}

// Each walks the buffer words in order.
func (a *Arena) Each(h Handle, f func(uint32) error) error {
	buf, ok := a.buffers[h]
	if !ok {
		return ErrBadHandle
	}
	for _, w := range buf {
		if err := f(w); err != nil {
			return err
		}
	}
	return nil
}

// Free releases the buffer and returns its blocks to the budget.
func (a *Arena) Free(h Handle) {
	buf, ok := a.buffers[h]
	if !ok {
		return
	}
	a.budget += (cap(buf) + blockWords - 1) / blockWords
	delete(a.buffers, h)
}
