/*
Package sink provides output drivers consuming the glyph/motion stream of
package runoff.

The formatter core emits positioned glyphs and horizontal/vertical motions;
the drivers in this package turn that stream into something visible: plain
or colored fixed-width console output, HTML, a broadcast feed for
observers, or a recording for tests and golden files.

All drivers share the same fixed-width device model: one glyph cell per
column, one vertical unit per row.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package sink

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'runoff'
func tracer() tracing.Trace {
	return tracing.Select("runoff")
}
