// Package scanner splits a source program into tokens using the terminal vocabulary of a
// compiled grammar, so that every token can be mapped to a column of the parsing table.
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llgram.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("llgram.scanner")
}
