package grammar

import (
	"fmt"

	"github.com/nihei9/llgram/spec/grammar/parser"
)

type ElementKind string

const (
	ElementKindTerminal      = ElementKind("terminal")
	ElementKindNonTerminal   = ElementKind("non-terminal")
	ElementKindSemanticToken = ElementKind("semantic token")
)

func (k ElementKind) String() string {
	return string(k)
}

// Element is a symbol that can appear in a rule: *Terminal, *NonTerminal or *SemanticToken.
// The set of implementations is closed; callers switch on the concrete type.
type Element interface {
	fmt.Stringer

	Kind() ElementKind

	// ID is a dense index within the element's own kind.
	ID() int
	Name() string

	// Pos is the position of the token that introduced the element, or nil when the element was
	// synthesized.
	Pos() *parser.Position

	element()
}

var (
	_ Element = &Terminal{}
	_ Element = &NonTerminal{}
	_ Element = &SemanticToken{}
)

type Terminal struct {
	id    int
	name  string
	class parser.TerminalClass
	pos   *parser.Position
}

func (t *Terminal) Kind() ElementKind {
	return ElementKindTerminal
}

func (t *Terminal) ID() int {
	return t.id
}

func (t *Terminal) Name() string {
	return t.name
}

func (t *Terminal) Pos() *parser.Position {
	return t.pos
}

func (t *Terminal) String() string {
	return t.name
}

// Class is the lexical subtype derived from the spelling.
func (t *Terminal) Class() parser.TerminalClass {
	return t.class
}

func (t *Terminal) IsEpsilon() bool {
	return t.class == parser.TerminalClassEpsilon
}

func (t *Terminal) IsEOF() bool {
	return t.class == parser.TerminalClassEOF
}

func (*Terminal) element() {}

type NonTerminal struct {
	id      int
	name    string
	defined bool
	pos     *parser.Position
}

func (n *NonTerminal) Kind() ElementKind {
	return ElementKindNonTerminal
}

func (n *NonTerminal) ID() int {
	return n.id
}

func (n *NonTerminal) Name() string {
	return n.name
}

func (n *NonTerminal) Pos() *parser.Position {
	return n.pos
}

func (n *NonTerminal) String() string {
	return n.name
}

// Defined reports whether the non-terminal appears as the LHS of at least one rule.
func (n *NonTerminal) Defined() bool {
	return n.defined
}

func (*NonTerminal) element() {}

// SemanticToken marks a position in a RHS where a semantic action runs. It has no meaning for
// the FIRST/FOLLOW computation or the parsing table.
type SemanticToken struct {
	id   int
	name string
	pos  *parser.Position
}

func (s *SemanticToken) Kind() ElementKind {
	return ElementKindSemanticToken
}

func (s *SemanticToken) ID() int {
	return s.id
}

func (s *SemanticToken) Name() string {
	return s.name
}

func (s *SemanticToken) Pos() *parser.Position {
	return s.pos
}

func (s *SemanticToken) String() string {
	return s.name
}

func (*SemanticToken) element() {}

// grammarSymbols returns the elements of a RHS except for semantic tokens.
func grammarSymbols(rhs []Element) []Element {
	syms := make([]Element, 0, len(rhs))
	for _, e := range rhs {
		if _, ok := e.(*SemanticToken); ok {
			continue
		}
		syms = append(syms, e)
	}
	return syms
}
