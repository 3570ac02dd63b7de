package grammar

import (
	"fmt"

	"github.com/nihei9/llgram/compressor"
)

// CompiledGrammar is the output of the grammar compiler: the analysed grammar and its LL(1)
// parsing table.
type CompiledGrammar struct {
	Name           string         `json:"name"`
	Probabilistic  bool           `json:"probabilistic"`
	Terminals      []*Terminal    `json:"terminals"`
	NonTerminals   []*NonTerminal `json:"non_terminals"`
	SemanticTokens []string       `json:"semantic_tokens"`
	Rules          []*Rule        `json:"rules"`

	// ParsingTable is nil for a probabilistic grammar.
	ParsingTable *ParsingTable `json:"parsing_table,omitempty"`

	Fingerprint string `json:"fingerprint"`
}

type Terminal struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Class string `json:"class"`
}

// NonTerminal carries the FIRST and FOLLOW sets as ascending terminal IDs. FIRST contains the
// epsilon terminal when the non-terminal can derive the empty string.
type NonTerminal struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	First  []int  `json:"first"`
	Follow []int  `json:"follow"`
}

type SymbolKind string

const (
	SymbolKindTerminal      = SymbolKind("terminal")
	SymbolKindNonTerminal   = SymbolKind("non-terminal")
	SymbolKindSemanticToken = SymbolKind("semantic token")
)

type SymbolRef struct {
	Kind SymbolKind `json:"kind"`
	ID   int        `json:"id"`
}

type Rule struct {
	ID          int         `json:"id"`
	LHS         int         `json:"lhs"`
	RHS         []SymbolRef `json:"rhs"`
	Probability float64     `json:"probability,omitempty"`
}

// ParsingTable is the LL(1) table indexed by (non-terminal ID, terminal ID). An entry is a rule
// ID when it is non-negative and a negated syntax error code otherwise. Exactly one of Cells and
// Compressed is set.
type ParsingTable struct {
	RowCount      int               `json:"row_count"`
	ColCount      int               `json:"col_count"`
	EOFSymbol     int               `json:"eof_symbol"`
	StartSymbol   int               `json:"start_symbol"`
	EpsilonSymbol int               `json:"epsilon_symbol"`
	ErrorEntry    int               `json:"error_entry"`
	Cells         []int             `json:"cells,omitempty"`
	Compressed    *compressor.Table `json:"compressed,omitempty"`
}

func (t *ParsingTable) Lookup(nonTerminal, terminal int) (int, error) {
	if nonTerminal < 0 || nonTerminal >= t.RowCount || terminal < 0 || terminal >= t.ColCount {
		return 0, fmt.Errorf("indexes are out of range: [%v, %v]", nonTerminal, terminal)
	}
	if t.Compressed != nil {
		return t.Compressed.Lookup(nonTerminal, terminal)
	}
	return t.Cells[nonTerminal*t.ColCount+terminal], nil
}

type EntryKind string

const (
	EntryKindProduction  = EntryKind("production")
	EntryKindSyntaxError = EntryKind("syntax error")
)

type Entry struct {
	Kind      EntryKind
	Rule      int
	ErrorCode int
}

func DecodeEntry(v int) Entry {
	if v >= 0 {
		return Entry{
			Kind: EntryKindProduction,
			Rule: v,
		}
	}
	return Entry{
		Kind:      EntryKindSyntaxError,
		ErrorCode: -v,
	}
}

func (e Entry) String() string {
	if e.Kind == EntryKindProduction {
		return fmt.Sprintf("R%v", e.Rule)
	}
	return "e"
}

func (g *CompiledGrammar) Terminal(name string) (*Terminal, bool) {
	for _, t := range g.Terminals {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

func (g *CompiledGrammar) NonTerminal(name string) (*NonTerminal, bool) {
	for _, n := range g.NonTerminals {
		if n.Name == name {
			return n, true
		}
	}
	return nil, false
}

func (g *CompiledGrammar) symbolName(ref SymbolRef) string {
	switch ref.Kind {
	case SymbolKindTerminal:
		return g.Terminals[ref.ID].Name
	case SymbolKindNonTerminal:
		return g.NonTerminals[ref.ID].Name
	case SymbolKindSemanticToken:
		return g.SemanticTokens[ref.ID]
	}
	return "?"
}

// RuleText renders a rule as `LHS -> RHS`.
func (g *CompiledGrammar) RuleText(r *Rule) string {
	text := g.NonTerminals[r.LHS].Name + " ->"
	for _, ref := range r.RHS {
		text += " " + g.symbolName(ref)
	}
	return text
}
