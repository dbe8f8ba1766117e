package sink

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"io"
	"strings"

	"github.com/npillmayer/runoff"
	"golang.org/x/net/html"
)

// HTML is a sink rendering the glyph stream into preformatted HTML. Lines
// become text rows inside a <pre> block; font positions are tagged with
// span classes "font0", "font1" and so on, to be styled by the embedding
// document.
type HTML struct {
	b    strings.Builder
	font int
	open bool // a span is open
	col  int
	line []runoff.Cell
}

// NewHTML creates an HTML sink.
func NewHTML() *HTML {
	h := &HTML{}
	h.b.WriteString("<pre class=\"runoff\">\n")
	return h
}

// Glyph places a glyph cell on the current line.
func (h *HTML) Glyph(c runoff.Cell) {
	if c.ZeroWidth {
		return
	}
	for len(h.line) <= h.col {
		h.line = append(h.line, runoff.Glyph(' '))
	}
	h.line[h.col] = c
	h.col++
}

// HMotion moves the output column.
func (h *HTML) HMotion(units int) {
	h.col += units
	if h.col < 0 {
		h.col = 0
	}
}

// VMotion ends the current line and moves down.
func (h *HTML) VMotion(units int) {
	if units < 0 {
		tracer().P("format", "html").Infof("dropping reverse motion of %d units", units)
		return
	}
	h.flushLine()
	for i := 1; i < units; i++ {
		h.b.WriteString("\n")
	}
}

func (h *HTML) flushLine() {
	for i := 0; i < len(h.line); {
		font := h.line[i].Font
		j := i
		for j < len(h.line) && h.line[j].Font == font {
			j++
		}
		run := make([]byte, j-i)
		for k := i; k < j; k++ {
			run[k-i] = h.line[k].Code
		}
		if font != 0 {
			h.b.WriteString("<span class=\"font")
			h.b.WriteString(string(rune('0' + font%10)))
			h.b.WriteString("\">")
		}
		h.b.WriteString(html.EscapeString(string(run)))
		if font != 0 {
			h.b.WriteString("</span>")
		}
		i = j
	}
	h.b.WriteString("\n")
	h.line = h.line[:0]
	h.col = 0
}

// WriteTo completes the document fragment and writes it out.
func (h *HTML) WriteTo(w io.Writer) (int64, error) {
	doc := h.b.String() + "</pre>\n"
	n, err := io.WriteString(w, doc)
	return int64(n), err
}

// String returns the document fragment rendered so far.
func (h *HTML) String() string {
	return h.b.String() + "</pre>\n"
}
