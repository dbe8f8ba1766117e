/*
Package runoff implements a batch text-flow formatting core in the tradition
of the classic roff family of document formatters.

Text flow

The package consumes a stream of attributed character cells (glyph codes plus
inline font/size/motion attributes) and produces a stream of positioned glyphs
and horizontal/vertical motions for a downstream output device. In between sit
the parts of a formatter which decide every visible layout choice:

  - word collection: pulling cells from the input until whitespace,
    accumulating a bounded word buffer with a running width,
  - line composition: filling lines with words, backtracking over
    discretionary break points when a word overflows, and distributing
    leftover space over inter-word gaps for justified output,
  - vertical scheduling: advancing the page (or diversion) position,
    springing traps planted at vertical positions, and ejecting pages,
  - diversions: capturing formatted output into named buffers for later
    replay instead of sending it to the page.

The core is deliberately synchronous and single-threaded. Character input,
numeric parameters, trap macros and glyph output are contracts with
collaborators supplied by the host (see CharSource, Params, MacroRunner and
Sink); the core never performs I/O of its own. All mutable formatter state is
owned by a single Context which callers must not share between goroutines.

Units are device-resolution integers and one character occupies one
fixed-width cell; this is a line-printer model, not a shaping engine.

Hyphenation is pluggable: package runoff/hyphen provides the digram-table
hyphenator, and any Hyphenator implementation may be substituted.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package runoff

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// FormatError is an error type for the runoff module.
type FormatError string

func (e FormatError) Error() string {
	return string(e)
}

// ErrDiversionOverflow signals an attempt to nest diversions deeper than
// MaxDiversions. The diversion stack is left unchanged; the run cannot
// continue meaningfully.
const ErrDiversionOverflow = FormatError("cannot divert")

// ErrStorageExhausted signals that the backing store for diverted text has no
// blocks left. This is fatal for the run.
const ErrStorageExhausted = FormatError("out of diversion storage space")

// ErrNoSource signals a Context without an input collaborator.
const ErrNoSource = FormatError("no character source attached")

// ErrInputDone signals that the print-range list has been exhausted and the
// host should stop feeding input.
const ErrInputDone = FormatError("page range list exhausted")
