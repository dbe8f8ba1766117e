package sink

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/runoff"
)

// Recorder is a sink which remembers the event stream verbatim and can
// render it to a fixed-width page image. It is meant for tests and golden
// files.
type Recorder struct {
	Events []string // "G(x)", "H(n)", "V(n)"

	col   int
	line  []byte
	lines []string
}

// Glyph records a glyph cell and places it on the page image.
func (r *Recorder) Glyph(c runoff.Cell) {
	r.Events = append(r.Events, fmt.Sprintf("G(%c)", rune(c.Code)))
	if c.ZeroWidth {
		return
	}
	for len(r.line) <= r.col {
		r.line = append(r.line, ' ')
	}
	r.line[r.col] = c.Code
	r.col++
}

// HMotion records a horizontal motion.
func (r *Recorder) HMotion(units int) {
	r.Events = append(r.Events, fmt.Sprintf("H(%d)", units))
	r.col += units
	if r.col < 0 {
		r.col = 0
	}
}

// VMotion records a vertical motion and closes the current image row,
// padding with blank rows for motions over more than one unit.
func (r *Recorder) VMotion(units int) {
	r.Events = append(r.Events, fmt.Sprintf("V(%d)", units))
	r.lines = append(r.lines, strings.TrimRight(string(r.line), " "))
	for i := 1; i < units; i++ {
		r.lines = append(r.lines, "")
	}
	r.line = r.line[:0]
	r.col = 0
}

// Lines returns the page image rows rendered so far, excluding the row
// still being assembled.
func (r *Recorder) Lines() []string {
	return r.lines
}

// Reset forgets everything recorded.
func (r *Recorder) Reset() {
	r.Events = nil
	r.col = 0
	r.line = r.line[:0]
	r.lines = nil
}
