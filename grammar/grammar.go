package grammar

import (
	"fmt"

	verr "github.com/nihei9/llgram/error"
	"github.com/nihei9/llgram/spec/grammar/parser"
)

// Grammar is a context-free grammar assembled from a grammar description. Terminals,
// non-terminals and rules are kept in insertion order, and each element's ID is its index in the
// list of its kind.
type Grammar struct {
	name          string
	probabilistic bool

	terminals      []*Terminal
	nonTerminals   []*NonTerminal
	semanticTokens []*SemanticToken
	rules          []*Rule

	epsilon *Terminal
	eof     *Terminal
	start   *NonTerminal

	name2Term    map[string]*Terminal
	name2NonTerm map[string]*NonTerminal
	name2SemTok  map[string]*SemanticToken
}

func newGrammar(name string, probabilistic bool) *Grammar {
	return &Grammar{
		name:          name,
		probabilistic: probabilistic,
		name2Term:     map[string]*Terminal{},
		name2NonTerm:  map[string]*NonTerminal{},
		name2SemTok:   map[string]*SemanticToken{},
	}
}

func (g *Grammar) Name() string {
	return g.name
}

func (g *Grammar) Probabilistic() bool {
	return g.probabilistic
}

func (g *Grammar) Terminals() []*Terminal {
	return g.terminals
}

func (g *Grammar) NonTerminals() []*NonTerminal {
	return g.nonTerminals
}

func (g *Grammar) SemanticTokens() []*SemanticToken {
	return g.semanticTokens
}

func (g *Grammar) Rules() []*Rule {
	return g.rules
}

func (g *Grammar) Epsilon() *Terminal {
	return g.epsilon
}

func (g *Grammar) EOF() *Terminal {
	return g.eof
}

// Start returns the first non-terminal that appeared as a LHS, or nil when the grammar has no rule.
func (g *Grammar) Start() *NonTerminal {
	return g.start
}

func (g *Grammar) Terminal(name string) (*Terminal, bool) {
	t, ok := g.name2Term[name]
	return t, ok
}

func (g *Grammar) NonTerminal(name string) (*NonTerminal, bool) {
	n, ok := g.name2NonTerm[name]
	return n, ok
}

// Lookup finds a terminal or a non-terminal by name. Non-terminals take priority over terminals.
func (g *Grammar) Lookup(name string) (Element, bool) {
	if n, ok := g.name2NonTerm[name]; ok {
		return n, true
	}
	if t, ok := g.name2Term[name]; ok {
		return t, true
	}
	return nil, false
}

// IndexOf returns the ID of the element named name, or -1 when no element has the name. The
// non-terminal namespace is searched first.
func (g *Grammar) IndexOf(name string) int {
	e, ok := g.Lookup(name)
	if !ok {
		return -1
	}
	return e.ID()
}

// RuleByTerminal finds the first rule of the form `L -> a` whose LHS has the ID ntIndex and whose
// only grammar symbol is the terminal spelled lexeme.
func (g *Grammar) RuleByTerminal(lexeme string, ntIndex int) (*Rule, bool) {
	if _, ok := g.name2Term[lexeme]; !ok {
		return nil, false
	}
	if ntIndex < 0 || ntIndex >= len(g.nonTerminals) {
		return nil, false
	}
	lhs := g.nonTerminals[ntIndex]
	for _, r := range g.rules {
		if r.LHS != lhs {
			continue
		}
		syms := grammarSymbols(r.RHS)
		if len(syms) != 1 {
			continue
		}
		if t, ok := syms[0].(*Terminal); ok && t.name == lexeme {
			return r, true
		}
	}
	return nil, false
}

// RuleByNonTerminals finds the rule `A -> B C` where a, b and c are non-terminal IDs. The grammar
// must be in Chomsky Normal Form: RuleByNonTerminals panics when it meets a rule of A whose RHS
// has more than two grammar symbols.
func (g *Grammar) RuleByNonTerminals(a, b, c int) (*Rule, bool) {
	nt := func(id int) *NonTerminal {
		if id < 0 || id >= len(g.nonTerminals) {
			return nil
		}
		return g.nonTerminals[id]
	}
	ntA, ntB, ntC := nt(a), nt(b), nt(c)
	if ntA == nil || ntB == nil || ntC == nil {
		return nil, false
	}
	for _, r := range g.rules {
		if r.LHS != ntA {
			continue
		}
		syms := grammarSymbols(r.RHS)
		if len(syms) > 2 {
			panic(fmt.Errorf("the grammar is not in Chomsky Normal Form: %v: %v", r.Abbr(), r))
		}
		if len(syms) != 2 {
			continue
		}
		if syms[0] == Element(ntB) && syms[1] == Element(ntC) {
			return r, true
		}
	}
	return nil, false
}

func (g *Grammar) addTerminal(name string, class parser.TerminalClass, pos *parser.Position) *Terminal {
	if t, ok := g.name2Term[name]; ok {
		return t
	}
	t := &Terminal{
		id:    len(g.terminals),
		name:  name,
		class: class,
		pos:   pos,
	}
	g.terminals = append(g.terminals, t)
	g.name2Term[name] = t
	return t
}

func (g *Grammar) addNonTerminal(name string, pos *parser.Position) *NonTerminal {
	if n, ok := g.name2NonTerm[name]; ok {
		return n
	}
	n := &NonTerminal{
		id:   len(g.nonTerminals),
		name: name,
		pos:  pos,
	}
	g.nonTerminals = append(g.nonTerminals, n)
	g.name2NonTerm[name] = n
	return n
}

func (g *Grammar) addSemanticToken(name string, pos *parser.Position) *SemanticToken {
	if s, ok := g.name2SemTok[name]; ok {
		return s
	}
	s := &SemanticToken{
		id:   len(g.semanticTokens),
		name: name,
		pos:  pos,
	}
	g.semanticTokens = append(g.semanticTokens, s)
	g.name2SemTok[name] = s
	return s
}

func (g *Grammar) addRule(r *Rule) {
	r.ID = len(g.rules)
	g.rules = append(g.rules, r)
}

// GrammarBuilder resolves the symbols of a parsed grammar description and assembles a Grammar.
type GrammarBuilder struct {
	AST  *parser.RootNode
	Name string

	errs verr.SpecErrors
}

func (b *GrammarBuilder) Build() (*Grammar, error) {
	g := newGrammar(b.Name, b.AST.Probabilistic)

	// Epsilon always has the ID 0.
	g.epsilon = g.addTerminal(parser.EpsilonText, parser.TerminalClassEpsilon, nil)

	for _, prod := range b.AST.Productions {
		g.addRule(b.genRule(g, prod))
	}

	g.eof = g.addTerminal(parser.EOFText, parser.TerminalClassEOF, nil)

	for _, n := range g.nonTerminals {
		if n.defined {
			continue
		}
		e := &verr.SpecError{
			Cause:  semErrUndefinedNonTerminal,
			Detail: n.name,
		}
		if n.pos != nil {
			e.Row = n.pos.Row
			e.Col = n.pos.Col
		}
		b.errs = append(b.errs, e)
	}
	if len(b.errs) > 0 {
		for _, err := range b.errs {
			tracer().Errorf("%v", err)
		}
		return nil, b.errs
	}

	tracer().Infof("grammar %q: %v terminals, %v non-terminals, %v semantic tokens, %v rules",
		g.name, len(g.terminals), len(g.nonTerminals), len(g.semanticTokens), len(g.rules))

	return g, nil
}

func (b *GrammarBuilder) genRule(g *Grammar, prod *parser.ProductionNode) *Rule {
	lhs := g.addNonTerminal(prod.LHS.Text, positionOf(prod.LHS))
	lhs.defined = true
	if g.start == nil {
		g.start = lhs
	}

	rhs := make([]Element, 0, len(prod.RHS))
	for _, elem := range prod.RHS {
		switch elem.Kind {
		case parser.ElementKindSemanticToken:
			rhs = append(rhs, g.addSemanticToken(elem.Text, positionOf(elem)))
		case parser.ElementKindNonTerminal:
			rhs = append(rhs, g.addNonTerminal(elem.Text, positionOf(elem)))
		case parser.ElementKindTerminal:
			rhs = append(rhs, g.addTerminal(elem.Text, elem.Class, positionOf(elem)))
		}
	}

	return &Rule{
		LHS:         lhs,
		RHS:         rhs,
		Probability: prod.Probability,
		Pos:         prod.Pos,
	}
}

func positionOf(elem *parser.ElementNode) *parser.Position {
	pos := elem.Pos
	return &pos
}
