package runoff

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"io"
)

// StringSource is a CharSource feeding the bytes of a plain string, one
// glyph cell per byte. Control cells (break hints, continuations) pass
// through untouched, so tests and simple hosts can embed them directly.
type StringSource struct {
	s string
	i int
}

// FromString wraps a string as a cell source.
func FromString(s string) *StringSource {
	return &StringSource{s: s}
}

// Next implements CharSource.
func (src *StringSource) Next() (Cell, error) {
	if src.i >= len(src.s) {
		return Cell{}, io.EOF
	}
	c := Glyph(src.s[src.i])
	src.i++
	return c, nil
}
