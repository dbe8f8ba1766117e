package storage

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"encoding/binary"
	"os"
)

// Spill is the file-backed Storage backend. Buffers are chains of fixed-size
// blocks inside a scratch file; a block table links each block to its
// successor. One block-sized write buffer and one read buffer are kept in
// memory, so the working set stays small regardless of how much text is
// diverted.
type Spill struct {
	file  *os.File
	chain []int32 // per block: chainFree, chainEnd, or index of next block
	tails map[Handle]tail

	wblock int32 // block the write buffer belongs to, chainFree when clean
	wbuf   [blockWords]uint32
	wlen   int

	rblock int32 // block the read buffer holds, chainFree when empty
	rbuf   [blockWords]uint32
}

type tail struct {
	last  int32 // last block of the chain
	used  int   // words used in the last block
	total int
}

const (
	chainFree int32 = -1
	chainEnd  int32 = -2
)

// NewSpill creates a file-backed storage backend with maxBlocks blocks. The
// scratch file is created anew and unlinked from the namespace immediately;
// it lives only as long as the Spill. A maxBlocks of 0 selects
// DefaultArenaBlocks.
func NewSpill(dir string, maxBlocks int) (*Spill, error) {
	if maxBlocks <= 0 {
		maxBlocks = DefaultArenaBlocks
	}
	f, err := os.CreateTemp(dir, "runoff-spill-*")
	if err != nil {
		return nil, err
	}
	os.Remove(f.Name())
	s := &Spill{
		file:   f,
		chain:  make([]int32, maxBlocks),
		tails:  make(map[Handle]tail),
		wblock: chainFree,
		rblock: chainFree,
	}
	for i := range s.chain {
		s.chain[i] = chainFree
	}
	return s, nil
}

// Close releases the scratch file.
func (s *Spill) Close() error {
	return s.file.Close()
}

// allocBlock grabs a free block, marking it as chain end.
func (s *Spill) allocBlock() (int32, error) {
	for i := range s.chain {
		if s.chain[i] == chainFree {
			s.chain[i] = chainEnd
			return int32(i), nil
		}
	}
	tracer().Errorf("out of scratch file space")
	return 0, ErrExhausted
}

// Alloc creates a new empty buffer.
func (s *Spill) Alloc() (Handle, error) {
	b, err := s.allocBlock()
	if err != nil {
		return 0, err
	}
	h := Handle(b + 1)
	s.tails[h] = tail{last: b}
	return h, nil
}

// Append adds one word to the end of the buffer.
func (s *Spill) Append(h Handle, word uint32) error {
	t, ok := s.tails[h]
	if !ok {
		return ErrBadHandle
	}
	if t.used == blockWords {
		next, err := s.allocBlock()
		if err != nil {
			return err
		}
		s.chain[t.last] = next
		t.last = next
		t.used = 0
	}
	if s.wblock != t.last {
		if err := s.flush(); err != nil {
			return err
		}
		if err := s.loadForWrite(t.last, t.used); err != nil {
			return err
		}
	}
	s.wbuf[t.used] = word
	if t.used+1 > s.wlen {
		s.wlen = t.used + 1
	}
	t.used++
	t.total++
	s.tails[h] = t
	return nil
}

// loadForWrite fills the write buffer with the current contents of block b.
func (s *Spill) loadForWrite(b int32, used int) error {
	if used > 0 {
		if err := s.readBlock(b, s.wbuf[:]); err != nil {
			return err
		}
	}
	s.wblock = b
	s.wlen = used
	return nil
}

// flush writes the dirty write buffer back to the scratch file.
func (s *Spill) flush() error {
	if s.wblock == chainFree {
		return nil
	}
	buf := make([]byte, blockWords*4)
	for i := 0; i < s.wlen; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:], s.wbuf[i])
	}
	if _, err := s.file.WriteAt(buf[:s.wlen*4], int64(s.wblock)*blockWords*4); err != nil {
		return err
	}
	if s.rblock == s.wblock {
		s.rblock = chainFree // read cache is stale now
	}
	s.wblock = chainFree
	s.wlen = 0
	return nil
}

// readBlock fills dst with the words of block b, going through the read
// cache.
func (s *Spill) readBlock(b int32, dst []uint32) error {
	if s.rblock != b {
		buf := make([]byte, blockWords*4)
		if _, err := s.file.ReadAt(buf, int64(b)*blockWords*4); err != nil {
			// Short blocks at the end of the file read as zeros.
			for i := range s.rbuf {
				s.rbuf[i] = 0
			}
			for i := 0; i*4+3 < len(buf); i++ {
				s.rbuf[i] = binary.LittleEndian.Uint32(buf[i*4:])
			}
		} else {
			for i := range s.rbuf {
				s.rbuf[i] = binary.LittleEndian.Uint32(buf[i*4:])
			}
		}
		s.rblock = b
	}
	copy(dst, s.rbuf[:])
	return nil
}

// Len returns the number of words held by the buffer.
func (s *Spill) Len(h Handle) int {
	return s.tails[h].total
}

// Each walks the buffer words in order.
func (s *Spill) Each(h Handle, f func(uint32) error) error {
	t, ok := s.tails[h]
	if !ok {
		return ErrBadHandle
	}
	if err := s.flush(); err != nil {
		return err
	}
	var block [blockWords]uint32
	b := int32(h - 1)
	left := t.total
	for left > 0 {
		if b < 0 || int(b) >= len(s.chain) || s.chain[b] == chainFree {
			tracer().Errorf("bad storage allocation chain for handle %d", h)
			return ErrBadChain
		}
		if err := s.readBlock(b, block[:]); err != nil {
			return err
		}
		n := blockWords
		if left < n {
			n = left
		}
		for i := 0; i < n; i++ {
			if err := f(block[i]); err != nil {
				return err
			}
		}
		left -= n
		b = s.chain[b]
	}
	return nil
}

// Free releases the buffer's block chain.
func (s *Spill) Free(h Handle) {
	if _, ok := s.tails[h]; !ok {
		return
	}
	b := int32(h - 1)
	for b >= 0 && int(b) < len(s.chain) && s.chain[b] != chainFree {
		next := s.chain[b]
		s.chain[b] = chainFree
		if next == chainEnd {
			break
		}
		b = next
	}
	delete(s.tails, h)
}
