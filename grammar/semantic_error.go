package grammar

import "fmt"

type SemanticError struct {
	message string
}

func newSemanticError(message string) *SemanticError {
	return &SemanticError{
		message: message,
	}
}

func (e *SemanticError) Error() string {
	return e.message
}

var semErrUndefinedNonTerminal = newSemanticError("undefined non-terminal")

// CompilerError is a fatal condition of the analysis phases.
type CompilerError struct {
	message string
}

func newCompilerError(message string) *CompilerError {
	return &CompilerError{
		message: message,
	}
}

func (e *CompilerError) Error() string {
	return e.message
}

var (
	cmpErrNoStartSymbol     = newCompilerError("a grammar needs a start symbol")
	cmpErrIncompleteGrammar = newCompilerError("not all grammar elements are processed")
	cmpErrAmbiguousGrammar  = newCompilerError("the grammar is not LL(1)")
)

// ConflictError reports two rules claiming the same parsing table cell.
type ConflictError struct {
	NonTerminal *NonTerminal
	Terminal    *Terminal
	Existing    *Rule
	Conflicting *Rule
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: both %v (%v) and %v (%v) apply to %v on %v",
		cmpErrAmbiguousGrammar,
		e.Existing.Abbr(), e.Existing,
		e.Conflicting.Abbr(), e.Conflicting,
		e.NonTerminal, e.Terminal)
}

func (e *ConflictError) Unwrap() error {
	return cmpErrAmbiguousGrammar
}
