package runoff

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// CharSource is the input collaborator: it hands the formatter the next
// attributed cell of the character stream. Next blocks until a cell is
// available and returns io.EOF (or any other error) to end the run.
// Macro expansion, escape processing and number registers all live behind
// this interface; the core only ever sees finished cells.
type CharSource interface {
	Next() (Cell, error)
}

// Sink is the output collaborator: an abstract device driver consuming
// positioned glyphs and motions. The core never formats device control
// sequences itself.
type Sink interface {
	Glyph(Cell)
	HMotion(units int)
	VMotion(units int)
}

// MacroRunner executes a trap macro on behalf of the vertical scheduler.
// Invoke is an upcall into the request interpreter; its return value reports
// whether the macro requested trap propagation (i.e. interrupted the text
// flow, typically by planting further output).
type MacroRunner interface {
	Invoke(id int) bool
}

// Hyphenator proposes candidate break offsets for a word buffer. Offsets are
// cell indices into the word; an offset k means "a break may be placed
// before cell k". Implementations must return offsets in ascending order.
//
// Package runoff/hyphen provides the digram-table implementation.
type Hyphenator interface {
	Breaks(word []Cell) []int
}

// Hyphenation mode bits, following the historical .hy request argument.
const (
	HyphOff         = 0    // no automatic hyphenation
	HyphOn          = 1    // hyphenate where the hyphenator allows
	HyphNotNearTrap = 0o2  // suppress when the next trap is imminent
	HyphNoTail      = 0o4  // never break before the last two letters
	HyphNoHead      = 0o10 // never break after the first two letters
)

// Adjustment modes for filled text.
const (
	AdjBoth   = 0 // pad inter-word gaps, both margins straight
	AdjCenter = 1 // center the line in the leftover space
	AdjRight  = 2 // shift the line right, left margin ragged
)

// Params is the set of numeric parameters the request-interpreter
// collaborator owns. The core reads them at well-defined points (line
// start, line break, page advance); the host may mutate them freely in
// between, which is how requests like .ll or .in take effect.
//
// All lengths are device-resolution units.
type Params struct {
	PageLength  int // pl: vertical extent of a page
	LineLength  int // ll: horizontal extent of a line
	Indent      int // in: persistent indent
	TempIndent  int // ti: one-shot indent, -1 when unset
	PageOffset  int // po: left margin prepended to every output line

	CharWidth   int // width of one fixed-width glyph cell
	SpaceWidth  int // sps: width of an inter-word space
	AdjustUnit  int // device quantum for justification padding

	LineSpacing int // lss: vertical lead between lines
	SpacingMult int // ls: blank lines emitted per text line (>= 1)

	Fill      bool // fill mode on/off (.fi/.nf)
	Adjust    bool // adjust filled lines (.ad/.na)
	AdjMode   int  // AdjBoth, AdjCenter or AdjRight
	Center    int  // ce: count of lines still to center
	HyphMode  int  // HyphOff or HyphOn plus policy bits

	Pages []PageRange // print-range list; empty means print everything
}

// PageRange selects pages for printing, inclusive on both ends.
type PageRange struct {
	From, To int
}

// DefaultParams returns parameters for a 66-line, 60-cell device with unit
// cell metrics, a convenient base for tests and simple line-printer hosts.
func DefaultParams() *Params {
	return &Params{
		PageLength:  66,
		LineLength:  60,
		TempIndent:  -1,
		CharWidth:   1,
		SpaceWidth:  1,
		AdjustUnit:  1,
		LineSpacing: 1,
		SpacingMult: 1,
		Fill:        true,
		Adjust:      true,
		HyphMode:    HyphOn,
	}
}

// width returns the horizontal extent of a cell under the current
// parameters. Horizontal motions count with their signed amount; vertical
// motions and zero-width glyphs count as nothing.
func (ctx *Context) width(c Cell) int {
	if c.Motion {
		if c.Vertical {
			return 0
		}
		return c.Units()
	}
	if c.ZeroWidth {
		return 0
	}
	if c.Code == ' ' {
		return ctx.Params.SpaceWidth
	}
	return ctx.Params.CharWidth
}
