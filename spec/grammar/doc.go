// Package grammar defines the compiled form of an LL(1) grammar: its symbols, rules, FIRST and
// FOLLOW sets and the parsing table, along with persistence and text dumps of it.
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llgram.spec'.
func tracer() tracing.Trace {
	return tracing.Select("llgram.spec")
}
