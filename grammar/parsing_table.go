package grammar

import (
	verr "github.com/nihei9/llgram/error"
	"github.com/nihei9/llgram/spec/grammar/parser"
)

type CellKind string

const (
	CellKindUnset       = CellKind("unset")
	CellKindProduction  = CellKind("production")
	CellKindSyntaxError = CellKind("syntax error")
)

// Cell is an entry of the LL(1) parsing table. A production cell tells the parser which rule to
// expand; a syntax error cell carries the diagnostic code a parser reports when it reaches the
// cell.
type Cell struct {
	Kind      CellKind
	Rule      *Rule
	ErrorCode int
}

// errorCodeGeneral is the code filled into every cell no rule claims.
const errorCodeGeneral = parser.SynErrCodeGeneral

// encode packs a cell into an int: a rule ID for a production and the negated code for a syntax
// error.
func (c Cell) encode() int {
	if c.Kind == CellKindProduction {
		return c.Rule.ID
	}
	return -c.ErrorCode
}

// ParsingTable is a total table indexed by (non-terminal ID, terminal ID).
type ParsingTable struct {
	cells            []Cell
	nonTerminalCount int
	terminalCount    int

	EOFSymbol   int
	StartSymbol int
}

func newParsingTable(nonTerminalCount, terminalCount int) *ParsingTable {
	return &ParsingTable{
		cells:            make([]Cell, nonTerminalCount*terminalCount),
		nonTerminalCount: nonTerminalCount,
		terminalCount:    terminalCount,
	}
}

func (t *ParsingTable) Size() (int, int) {
	return t.nonTerminalCount, t.terminalCount
}

func (t *ParsingTable) Cell(nonTerminal, terminal int) Cell {
	cell := t.cells[nonTerminal*t.terminalCount+terminal]
	if cell.Kind == "" {
		cell.Kind = CellKindUnset
	}
	return cell
}

func (t *ParsingTable) writeCell(nonTerminal, terminal int, cell Cell) {
	t.cells[nonTerminal*t.terminalCount+terminal] = cell
}

func (t *ParsingTable) encode() []int {
	entries := make([]int, len(t.cells))
	for i, c := range t.cells {
		entries[i] = c.encode()
	}
	return entries
}

type llTableBuilder struct {
	g      *Grammar
	first  *firstSet
	follow *followSet
	tab    *ParsingTable
}

func genParsingTable(g *Grammar, first *firstSet, follow *followSet) (*ParsingTable, error) {
	if len(g.terminals) == 0 || len(g.nonTerminals) == 0 || len(g.rules) == 0 {
		tracer().Errorf("%v; terminals: %v, non-terminals: %v, rules: %v", cmpErrIncompleteGrammar, len(g.terminals), len(g.nonTerminals), len(g.rules))
		return nil, &verr.SpecError{
			Cause: cmpErrIncompleteGrammar,
		}
	}

	b := &llTableBuilder{
		g:      g,
		first:  first,
		follow: follow,
		tab:    newParsingTable(len(g.nonTerminals), len(g.terminals)),
	}
	b.tab.EOFSymbol = g.eof.id
	b.tab.StartSymbol = g.start.id

	return b.build()
}

func (b *llTableBuilder) build() (*ParsingTable, error) {
	for _, r := range b.g.rules {
		fst, err := b.first.find(r.RHS)
		if err != nil {
			return nil, err
		}
		for _, id := range fst.ids() {
			if id == b.first.epsilon {
				continue
			}
			err := b.writeProduction(r, id)
			if err != nil {
				return nil, err
			}
		}
		if !fst.contains(b.first.epsilon) {
			continue
		}
		for _, id := range b.follow.findBySymbol(r.LHS).ids() {
			err := b.writeProduction(r, id)
			if err != nil {
				return nil, err
			}
		}
	}

	errCount := 0
	for nt := 0; nt < b.tab.nonTerminalCount; nt++ {
		for term := 0; term < b.tab.terminalCount; term++ {
			if b.tab.Cell(nt, term).Kind != CellKindUnset {
				continue
			}
			b.tab.writeCell(nt, term, Cell{
				Kind:      CellKindSyntaxError,
				ErrorCode: errorCodeGeneral,
			})
			errCount++
		}
	}
	tracer().Infof("parsing table: %vx%v, %v production cells, %v error cells",
		b.tab.nonTerminalCount, b.tab.terminalCount, len(b.tab.cells)-errCount, errCount)

	return b.tab, nil
}

func (b *llTableBuilder) writeProduction(r *Rule, term int) error {
	cell := b.tab.Cell(r.LHS.id, term)
	if cell.Kind == CellKindProduction {
		if cell.Rule == r {
			return nil
		}
		cErr := &ConflictError{
			NonTerminal: r.LHS,
			Terminal:    b.g.terminals[term],
			Existing:    cell.Rule,
			Conflicting: r,
		}
		tracer().Errorf("%v", cErr)
		return &verr.SpecError{
			Cause: cErr,
			Row:   r.Pos.Row,
			Col:   r.Pos.Col,
		}
	}
	tracer().Debugf("(%v, %v) <- %v", r.LHS, b.g.terminals[term], r.Abbr())
	b.tab.writeCell(r.LHS.id, term, Cell{
		Kind: CellKindProduction,
		Rule: r,
	})
	return nil
}
