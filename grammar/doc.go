/*
Package grammar builds a context-free grammar from a parsed grammar description and compiles it
into an LL(1) parsing table.

The pipeline is

	ast, err := parser.Parse(src)
	b := grammar.GrammarBuilder{AST: ast, Name: "expr"}
	g, err := b.Build()
	cg, err := grammar.Compile(g)

Build resolves symbols and reports undefined non-terminals all at once. Compile computes the FIRST
and FOLLOW sets, fills the table and fails with a *ConflictError when two rules claim a cell.
*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llgram.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("llgram.grammar")
}
