package grammar

import (
	"github.com/nihei9/llgram/compressor"
	spec "github.com/nihei9/llgram/spec/grammar"
)

type compileConfig struct {
	disableCompression bool
}

type CompileOption func(config *compileConfig)

// DisableCompression stores the parsing table as a dense slice of cells.
func DisableCompression() CompileOption {
	return func(config *compileConfig) {
		config.disableCompression = true
	}
}

// Analysis is the result of the set computations and the table construction for a Grammar.
type Analysis struct {
	g      *Grammar
	first  *firstSet
	follow *followSet

	// Table is nil for a probabilistic grammar.
	Table *ParsingTable
}

// Analyze computes the FIRST and FOLLOW sets and, unless the grammar is probabilistic, the LL(1)
// parsing table.
func Analyze(g *Grammar) (*Analysis, error) {
	first, err := genFirstSet(g)
	if err != nil {
		return nil, err
	}
	follow, err := genFollowSet(g, first)
	if err != nil {
		return nil, err
	}
	a := &Analysis{
		g:      g,
		first:  first,
		follow: follow,
	}
	if g.probabilistic {
		return a, nil
	}
	a.Table, err = genParsingTable(g, first, follow)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// First returns FIRST of an element as ascending terminal IDs, epsilon included when the element
// derives the empty string. Semantic tokens have no FIRST set.
func (a *Analysis) First(sym Element) []int {
	e := a.first.findBySymbol(sym)
	if e == nil {
		return nil
	}
	return e.ids()
}

// Follow returns FOLLOW of a non-terminal as ascending terminal IDs.
func (a *Analysis) Follow(sym *NonTerminal) []int {
	return a.follow.findBySymbol(sym).ids()
}

// Nullable reports whether sym can derive the empty string.
func (a *Analysis) Nullable(sym Element) bool {
	e := a.first.findBySymbol(sym)
	return e != nil && e.contains(a.first.epsilon)
}

func Compile(g *Grammar, opts ...CompileOption) (*spec.CompiledGrammar, error) {
	config := &compileConfig{}
	for _, opt := range opts {
		opt(config)
	}

	a, err := Analyze(g)
	if err != nil {
		return nil, err
	}

	cg := &spec.CompiledGrammar{
		Name:          g.name,
		Probabilistic: g.probabilistic,
	}
	for _, t := range g.terminals {
		cg.Terminals = append(cg.Terminals, &spec.Terminal{
			ID:    t.id,
			Name:  t.name,
			Class: t.class.String(),
		})
	}
	for _, n := range g.nonTerminals {
		cg.NonTerminals = append(cg.NonTerminals, &spec.NonTerminal{
			ID:     n.id,
			Name:   n.name,
			First:  a.First(n),
			Follow: a.Follow(n),
		})
	}
	for _, s := range g.semanticTokens {
		cg.SemanticTokens = append(cg.SemanticTokens, s.name)
	}
	for _, r := range g.rules {
		rhs := make([]spec.SymbolRef, len(r.RHS))
		for i, e := range r.RHS {
			rhs[i] = spec.SymbolRef{
				Kind: spec.SymbolKind(e.Kind()),
				ID:   e.ID(),
			}
		}
		cg.Rules = append(cg.Rules, &spec.Rule{
			ID:          r.ID,
			LHS:         r.LHS.id,
			RHS:         rhs,
			Probability: r.Probability,
		})
	}

	if a.Table != nil {
		cg.ParsingTable, err = genSpecParsingTable(g, a.Table, config)
		if err != nil {
			return nil, err
		}
	}

	cg.Fingerprint, err = cg.ComputeFingerprint()
	if err != nil {
		return nil, err
	}

	return cg, nil
}

func genSpecParsingTable(g *Grammar, tab *ParsingTable, config *compileConfig) (*spec.ParsingTable, error) {
	errorEntry := Cell{
		Kind:      CellKindSyntaxError,
		ErrorCode: errorCodeGeneral,
	}.encode()

	st := &spec.ParsingTable{
		RowCount:      tab.nonTerminalCount,
		ColCount:      tab.terminalCount,
		EOFSymbol:     tab.EOFSymbol,
		StartSymbol:   tab.StartSymbol,
		EpsilonSymbol: g.epsilon.id,
		ErrorEntry:    errorEntry,
	}
	entries := tab.encode()
	if config.disableCompression {
		st.Cells = entries
		return st, nil
	}

	m, err := compressor.NewMatrix(entries, tab.terminalCount)
	if err != nil {
		return nil, err
	}
	ct := compressor.NewTable(errorEntry)
	err = ct.Compress(m)
	if err != nil {
		return nil, err
	}
	st.Compressed = ct
	tracer().Infof("compressed the parsing table; %v cells into %v entries", len(entries), len(ct.Unique.Entries)+len(ct.RowNums))
	return st, nil
}
