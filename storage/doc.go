/*
Package storage provides the spillable buffer abstraction backing diversions
and other captured text in package runoff.

Buffers hold packed 32-bit cell words and are addressed by opaque handles.
Two implementations are provided: Arena keeps everything in memory, Spill
keeps a bounded working set in memory and writes block-linked chains to a
scratch file, the way the historical formatters managed their macro and
diversion space.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package storage

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'runoff'
func tracer() tracing.Trace {
	return tracing.Select("runoff")
}

// StorageError is an error type for the storage package.
type StorageError string

func (e StorageError) Error() string {
	return string(e)
}

// ErrExhausted signals that no free blocks remain. The run cannot continue.
const ErrExhausted = StorageError("out of buffer space")

// ErrBadHandle is flagged when a handle does not name a live buffer.
const ErrBadHandle = StorageError("invalid buffer handle")

// ErrBadChain is flagged on a corrupted block chain. Callers recover by
// treating the buffer as ending at the last good block.
const ErrBadChain = StorageError("bad storage allocation chain")
