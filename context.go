package runoff

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"github.com/npillmayer/runoff/storage"
)

// Buffer and table capacities, inherited from the historical formatters.
const (
	wordBufSize = 170 // cells per word buffer
	lineBufSize = 480 // cells per line buffer in fill mode
	maxBreaks   = 10  // discretionary break candidates per word

	// MaxDiversions bounds the nesting depth of diversions.
	MaxDiversions = 5

	// MaxTraps bounds the number of simultaneously planted page traps.
	MaxTraps = 20
)

// Context is the formatter: one instance owns every piece of mutable
// formatting state — the word and line buffers, the diversion stack, the
// trap table and the page position. Collaborators (input, output, macro
// execution, hyphenation) are attached as interface values.
//
// A Context is not safe for concurrent use; callers must serialize access.
type Context struct {
	Params *Params
	Source CharSource
	Out    Sink
	Macros MacroRunner
	Hyph   Hyphenator
	Store  storage.Storage

	// Read-only result registers for the host.
	DiversionHeight int // dn: vertical extent of the last closed diversion
	DiversionWidth  int // dl: maximum line width of the last closed diversion

	err error // first fatal error, sticks until the host gives up

	// --- word collector state ---
	word      wordBuffer
	pendWord  bool // an interrupted word awaits completion
	spaceFlag bool // sentence ended; double the next inter-word gap
	spcnt     int  // leading spaces of the current input line
	pushback  *Cell

	// --- line composer state ---
	line    []Cell
	lineCap int
	ne      int // effective length of the line so far
	nel     int // remaining space on the line
	un      int // left margin of the current line
	un1     int // one-shot margin for the next line, -1 when unset
	nwd     int // words placed on the line
	adsp    int // per-gap adjustment space
	adrem   int // adjustment remainder
	totout  int // output line parity counter for remainder spread
	brflg   int  // 0 plain, 1 filled break, 2 no-fill break
	over    bool // line overflow already reported
	pendt   bool
	pendnf  bool
	nlflg   bool // newline seen on input

	// --- vertical scheduler state ---
	nl       int  // page vertical position, -1 before the first page
	pn       int  // current page number
	npn      int  // pending explicit page number
	npnflg   bool //
	flss     int  // one-shot leading override
	trap     bool // a sprung trap macro took control
	noBreak  bool // suppress the next break (return-to-mark)
	printing bool
	finished bool
	traps    trapTable

	// --- diversion stack ---
	envs []environment // envs[0] is the page frame
}

// wordBuffer collects one word of input cells together with its running
// width and candidate break offsets.
type wordBuffer struct {
	cells  []Cell
	next   int   // consumption index for the line composer
	width  int   // width of the unconsumed cells
	breaks []int // candidate break offsets (cell indices)
	noHyph int   // 0 none, 1 hyphenation vetoed, 2 explicit hints given
	over   bool  // overflow already reported
}

func (w *wordBuffer) reset() {
	w.cells = w.cells[:0]
	w.next = 0
	w.width = 0
	w.breaks = w.breaks[:0]
	w.noHyph = 0
	w.over = false
}

// remaining reports the number of cells not yet moved to the line.
func (w *wordBuffer) remaining() int {
	return len(w.cells) - w.next
}

// New creates a formatter context backed by an in-memory storage arena;
// hosts replace Store before diverting if they want a different backend.
// params defaults to DefaultParams when nil. Input, output and macro
// collaborators may be attached later, but must be present before the first
// formatting operation.
func New(params *Params, source CharSource, out Sink, macros MacroRunner) *Context {
	if params == nil {
		params = DefaultParams()
	}
	ctx := &Context{
		Params:  params,
		Source:  source,
		Out:     out,
		Macros:  macros,
		Store:   storage.NewArena(0),
		lineCap: lineBufSize,
		un:      params.Indent,
		un1:     -1,
		nl:      -1, // the first output advances onto page 1
		envs:    make([]environment, 1, MaxDiversions+1),
	}
	ctx.word.cells = make([]Cell, 0, wordBufSize)
	ctx.word.breaks = make([]int, 0, maxBreaks)
	ctx.line = make([]Cell, 0, lineBufSize)
	ctx.evalPrintRange()
	return ctx
}

// Err returns the first fatal error encountered, if any. Recoverable
// conditions (buffer overflow, trap mismatches) are traced and absorbed and
// never show up here.
func (ctx *Context) Err() error {
	return ctx.err
}

func (ctx *Context) fatal(err error) {
	if ctx.err == nil {
		ctx.err = err
	}
}

// env returns the innermost environment frame.
func (ctx *Context) env() *environment {
	return &ctx.envs[len(ctx.envs)-1]
}

// diverted reports whether output is being captured by a diversion.
func (ctx *Context) diverted() bool {
	return len(ctx.envs) > 1
}

// --- Emission ---------------------------------------------------------------

// emit routes one finished cell to the current output target: the open
// diversion's storage buffer, or the sink when the page is being printed.
func (ctx *Context) emit(c Cell) {
	if ctx.diverted() {
		ctx.divAppend(c)
		return
	}
	if !ctx.printing {
		return
	}
	if c.Motion {
		if c.Vertical {
			ctx.Out.VMotion(c.Units())
		} else {
			ctx.Out.HMotion(c.Units())
		}
		return
	}
	ctx.Out.Glyph(c)
}

// horiz emits a horizontal motion of i units, suppressing empty motions.
func (ctx *Context) horiz(i int) {
	if i != 0 {
		ctx.emit(HMotion(i))
	}
}

// next pulls the next input cell, honoring a pushed-back cell. While the
// end of an input line is pending, next keeps returning the newline without
// consuming input, so that every consumer stops at the line end on its own.
func (ctx *Context) next() (Cell, error) {
	if ctx.nlflg {
		return Glyph('\n'), nil
	}
	if ctx.pushback != nil {
		c := *ctx.pushback
		ctx.pushback = nil
		return c, nil
	}
	if ctx.Source == nil {
		return Cell{}, ErrNoSource
	}
	return ctx.Source.Next()
}

// unget pushes one cell back onto the input.
func (ctx *Context) unget(c Cell) {
	ctx.pushback = &c
}
