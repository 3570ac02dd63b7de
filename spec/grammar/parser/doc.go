/*
Package parser reads the grammar description language.

A grammar is a list of statements, one production each:

	<expr>  ::= <term> <rest> %EOL
	<rest>  ::= + <term> @ADD <rest> %EOL
	<rest>  ::= & %EOL

Non-terminals are spelled `<name>`, `&` is epsilon, `%EOL` ends a statement and `@NAME` marks the
position of a semantic action. Line comments start with `//` or `#`, and block comments are C
style.
In a probabilistic grammar a probability follows the rule operator:

	<s> ::= 0.7 <np> <vp> %EOL
*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llgram.parser'.
func tracer() tracing.Trace {
	return tracing.Select("llgram.parser")
}
