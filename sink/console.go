package sink

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/runoff"
	"golang.org/x/term"
)

// Console is a sink for fixed-width terminal output. Font positions are
// visualized with colors; the default palette shows font 0 plain and
// further fonts colored.
//
// Console output has no notion of negative vertical motion: upward motions
// are traced and dropped, which makes marks/returns a no-op on a terminal,
// the way line printers treated reverse line feeds they could not perform.
type Console struct {
	colors map[int]*color.Color
	out    io.Writer

	cells []runoff.Cell // current line, one cell per column
	col   int
}

// NewConsole creates a console sink writing to w; a nil w selects stdout.
// colors maps font positions to colors and may cover any subset of the
// fonts in use.
func NewConsole(w io.Writer, colors map[int]*color.Color) *Console {
	if w == nil {
		w = os.Stdout
	}
	if colors == nil {
		colors = makeDefaultPalette()
	}
	return &Console{out: w, colors: colors}
}

func makeDefaultPalette() map[int]*color.Color {
	palette := map[int]*color.Color{
		1: color.New(color.FgRed),
		2: color.New(color.FgBlue),
		3: color.New(color.FgGreen),
	}
	return palette
}

// Glyph places a glyph cell on the current line.
func (cs *Console) Glyph(c runoff.Cell) {
	if c.ZeroWidth {
		return
	}
	for len(cs.cells) <= cs.col {
		cs.cells = append(cs.cells, runoff.Glyph(' '))
	}
	cs.cells[cs.col] = c
	cs.col++
}

// HMotion moves the output column.
func (cs *Console) HMotion(units int) {
	cs.col += units
	if cs.col < 0 {
		cs.col = 0
	}
}

// VMotion ends the current line and moves down, emitting blank lines for
// motions over more than one unit.
func (cs *Console) VMotion(units int) {
	if units < 0 {
		tracer().P("format", "console").Infof("dropping reverse motion of %d units", units)
		return
	}
	cs.flushLine()
	for i := 1; i < units; i++ {
		io.WriteString(cs.out, "\n")
	}
}

// flushLine writes the assembled line with per-font coloring.
func (cs *Console) flushLine() {
	for i := 0; i < len(cs.cells); {
		font := cs.cells[i].Font
		j := i
		for j < len(cs.cells) && cs.cells[j].Font == font {
			j++
		}
		run := make([]byte, j-i)
		for k := i; k < j; k++ {
			run[k-i] = cs.cells[k].Code
		}
		if c, ok := cs.colors[font]; ok {
			c.Fprint(cs.out, string(run))
		} else {
			cs.out.Write(run)
		}
		i = j
	}
	io.WriteString(cs.out, "\n")
	cs.cells = cs.cells[:0]
	cs.col = 0
}

// LineWidthFromTerminal is a helper for sizing runoff.Params: it checks
// whether stdout is a terminal and derives a useful line length from the
// terminal's width, falling back to 65.
func LineWidthFromTerminal() int {
	width := 65
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil {
			if w > 65 {
				width = w - 10
			} else if w > 30 {
				width = w - 5
			} else if w > 10 {
				width = w
			} else {
				width = 10
			}
		}
	}
	tracer().P("format", "console").Infof("setting line length to %d en", width)
	return width
}
