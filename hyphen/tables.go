package hyphen

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"io"
)

// Tables holds the digram weight tables. Bxh is a single row of weights for
// breaks right after a word's first letter; the other four are 26x13
// matrices indexed by letter pairs, with two 4-bit weights nibble-packed
// per byte (the even column of a pair sits in the high nibble).
//
//	Bxh   word start | letter ^ ...
//	Bxxh  first two letters ^ ...
//	Xxh   letter pair left of the candidate ^ ...
//	Xhx   letter pair across the candidate
//	Hxx   letter pair right of the candidate
type Tables struct {
	Bxh  [tableRow]byte
	Hxx  [tableSize]byte
	Bxxh [tableSize]byte
	Xhx  [tableSize]byte
	Xxh  [tableSize]byte
}

const (
	tableRow  = 13            // one nibble-packed row of 26 weights
	tableSize = 26 * tableRow //

	loadSize = tableRow + 4*tableSize
	// Historical table files pad each matrix to 676 bytes; only the
	// first 338 carry weights.
	loadSizePadded = tableRow + 4*2*tableSize
)

// look returns the 4-bit weight for the letter pair (a, b); both must be
// lowercase letters. The table layout packs a row's 26 weights into 13
// bytes, even columns in the high nibble.
func look(t []byte, a, b byte) int {
	j := int(b - 'a')
	i := int(t[int(a-'a')*tableRow+j/2])
	if j&1 == 0 {
		i >>= 4
	}
	return i & 0o17
}

// Builtin returns the built-in English digram tables.
func Builtin() *Tables {
	t := &Tables{}
	t.Bxh = tabBxh
	t.Hxx = tabHxx
	t.Bxxh = tabBxxh
	t.Xhx = tabXhx
	t.Xxh = tabXxh
	return t
}

// LoadTables reads a binary table set: the 13 bytes of Bxh followed by the
// matrices Hxx, Bxxh, Xhx and Xxh, in this order. Both the compact layout
// (338 bytes per matrix, 1365 in total) and the historical padded layout
// (676 bytes per matrix, 2717 in total) are accepted.
func LoadTables(r io.Reader) (*Tables, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	stride := tableSize
	switch len(buf) {
	case loadSize:
	case loadSizePadded:
		stride = 2 * tableSize
	default:
		tracer().Errorf("digram tables: got %d bytes, want %d or %d",
			len(buf), loadSize, loadSizePadded)
		return nil, ErrTableFormat
	}
	t := &Tables{}
	copy(t.Bxh[:], buf)
	p := buf[tableRow:]
	copy(t.Hxx[:], p[0*stride:])
	copy(t.Bxxh[:], p[1*stride:])
	copy(t.Xhx[:], p[2*stride:])
	copy(t.Xxh[:], p[3*stride:])
	return t, nil
}
