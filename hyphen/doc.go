/*
Package hyphen provides the digram-table hyphenator for package runoff.

Candidate break points are found by statistical scoring of letter pairs: a
break between two letters is judged by the product of three 4-bit weights,
looked up in tables keyed by the digrams to the left, across and to the
right of the candidate position. Candidates above a threshold win, at most
one per vowel-bounded region. The tables derive from the classic Bell Labs
formatters; the built-in set covers English.

An exception-word list can be taught explicitly marked break points for
words the tables get wrong; it is consulted before any scoring happens.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package hyphen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'runoff'
func tracer() tracing.Trace {
	return tracing.Select("runoff")
}

// HyphenError is an error type for the hyphen package.
type HyphenError string

func (e HyphenError) Error() string {
	return string(e)
}

// ErrTableFormat is returned by LoadTables for truncated or oversized table
// data.
const ErrTableFormat = HyphenError("digram table data has wrong size")

// ErrExceptionsFull is returned when the exception word list budget is
// exhausted.
const ErrExceptionsFull = HyphenError("exception word list full")
