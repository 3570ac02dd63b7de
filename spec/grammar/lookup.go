package grammar

import (
	"fmt"

	"github.com/nihei9/llgram/spec/grammar/parser"
)

// LexemeClass is the class a program scanner assigns to a token.
type LexemeClass string

const (
	LexemeClassLiteral    = LexemeClass("literal")
	LexemeClassIdentifier = LexemeClass("identifier")
	LexemeClassNumber     = LexemeClass("number")
)

// Terminal names standing for whole lexeme classes.
const (
	TerminalNameID      = "ID"
	TerminalNameNum     = "NUM"
	TerminalNameInteger = "INTEGER"
)

// TerminalOf resolves a program token to a terminal, that is, a column of the parsing table. An
// exact spelling wins; otherwise identifiers resolve to ID and numbers to NUM or INTEGER.
func (g *CompiledGrammar) TerminalOf(lexeme string, class LexemeClass) (*Terminal, bool) {
	if t, ok := g.Terminal(lexeme); ok && !t.synthesized() {
		return t, true
	}
	switch class {
	case LexemeClassIdentifier:
		return g.Terminal(TerminalNameID)
	case LexemeClassNumber:
		if t, ok := g.Terminal(TerminalNameNum); ok {
			return t, true
		}
		return g.Terminal(TerminalNameInteger)
	}
	return nil, false
}

// synthesized reports whether the terminal is epsilon or EOF. They never match a program token.
func (t *Terminal) synthesized() bool {
	switch parser.TerminalClass(t.Class) {
	case parser.TerminalClassEpsilon, parser.TerminalClassEOF:
		return true
	}
	return false
}

// EntryAt returns the parsing table entry for the non-terminal named nonTerminal and a program
// token. Use EOFEntry for the end of input.
func (g *CompiledGrammar) EntryAt(nonTerminal string, lexeme string, class LexemeClass) (Entry, error) {
	if g.ParsingTable == nil {
		return Entry{}, fmt.Errorf("grammar %q has no parsing table", g.Name)
	}
	n, ok := g.NonTerminal(nonTerminal)
	if !ok {
		return Entry{}, fmt.Errorf("unknown non-terminal: %v", nonTerminal)
	}
	t, ok := g.TerminalOf(lexeme, class)
	if !ok {
		return Entry{}, fmt.Errorf("no terminal matches %q (%v)", lexeme, class)
	}
	v, err := g.ParsingTable.Lookup(n.ID, t.ID)
	if err != nil {
		return Entry{}, err
	}
	return DecodeEntry(v), nil
}

// EOFEntry returns the parsing table entry for the non-terminal at the end of input.
func (g *CompiledGrammar) EOFEntry(nonTerminal string) (Entry, error) {
	if g.ParsingTable == nil {
		return Entry{}, fmt.Errorf("grammar %q has no parsing table", g.Name)
	}
	n, ok := g.NonTerminal(nonTerminal)
	if !ok {
		return Entry{}, fmt.Errorf("unknown non-terminal: %v", nonTerminal)
	}
	v, err := g.ParsingTable.Lookup(n.ID, g.ParsingTable.EOFSymbol)
	if err != nil {
		return Entry{}, err
	}
	return DecodeEntry(v), nil
}
