package grammar

import (
	"errors"
	"strings"
	"testing"

	verr "github.com/nihei9/llgram/error"
	"github.com/nihei9/llgram/spec/grammar/parser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGenParsingTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgram.grammar")
	defer teardown()

	tests := []struct {
		caption string
		src     string

		// cells maps a non-terminal to the rule IDs indexed by terminal name. Every other cell must
		// be a syntax error.
		cells map[string]map[string]int
	}{
		{
			caption: "two rules starting with distinct terminals",
			src: `
<S> ::= if <S> %EOL
<S> ::= while %EOL
`,
			cells: map[string]map[string]int{
				"<S>": {"if": 0, "while": 1},
			},
		},
		{
			caption: "an epsilon rule is selected by FOLLOW",
			src: `
<E> ::= <T> <R> %EOL
<R> ::= + <T> @ADD <R> %EOL
<R> ::= & %EOL
<T> ::= ( <E> ) %EOL
<T> ::= ID %EOL
<T> ::= NUM @PUSH %EOL
`,
			cells: map[string]map[string]int{
				"<E>": {"(": 0, "ID": 0, "NUM": 0},
				"<R>": {"+": 1, ")": 2, "$": 2},
				"<T>": {"(": 3, "ID": 4, "NUM": 5},
			},
		},
		{
			caption: "an empty RHS is an epsilon rule",
			src: `
<S> ::= <A> while %EOL
<A> ::= if %EOL
<A> ::= %EOL
`,
			cells: map[string]map[string]int{
				"<S>": {"while": 0, "if": 0},
				"<A>": {"if": 1, "while": 2},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := buildGrammar(t, tt.src)
			a, err := Analyze(g)
			if err != nil {
				t.Fatal(err)
			}
			tab := a.Table
			rowCount, colCount := tab.Size()
			if rowCount != len(g.NonTerminals()) || colCount != len(g.Terminals()) {
				t.Fatalf("unexpected table size; want: %vx%v, got: %vx%v", len(g.NonTerminals()), len(g.Terminals()), rowCount, colCount)
			}
			if tab.EOFSymbol != g.EOF().ID() || tab.StartSymbol != g.Start().ID() {
				t.Fatalf("unexpected EOF or start symbol; want: %v, %v, got: %v, %v", g.EOF().ID(), g.Start().ID(), tab.EOFSymbol, tab.StartSymbol)
			}
			for _, n := range g.NonTerminals() {
				for _, term := range g.Terminals() {
					cell := tab.Cell(n.ID(), term.ID())
					ruleID, ok := tt.cells[n.Name()][term.Name()]
					if !ok {
						if cell.Kind != CellKindSyntaxError || cell.ErrorCode != errorCodeGeneral {
							t.Fatalf("(%v, %v) must be a syntax error; got: %+v", n, term, cell)
						}
						continue
					}
					if cell.Kind != CellKindProduction || cell.Rule.ID != ruleID {
						t.Fatalf("unexpected cell (%v, %v); want: R%v, got: %+v", n, term, ruleID, cell)
					}
				}
			}
		})
	}
}

func TestGenParsingTable_Conflict(t *testing.T) {
	tests := []struct {
		caption     string
		src         string
		nonTerminal string
		terminal    string
		existing    int
		conflicting int
		row         int
	}{
		{
			caption:     "two rules share a FIRST terminal",
			src:         "<S> ::= if <A> %EOL\n<S> ::= if while %EOL\n<A> ::= while %EOL",
			nonTerminal: "<S>",
			terminal:    "if",
			existing:    0,
			conflicting: 1,
			row:         2,
		},
		{
			caption:     "FIRST of one rule meets FOLLOW of an epsilon rule",
			src:         "<S> ::= <A> if %EOL\n<A> ::= if %EOL\n<A> ::= %EOL",
			nonTerminal: "<A>",
			terminal:    "if",
			existing:    1,
			conflicting: 2,
			row:         3,
		},
		{
			caption:     "left recursion",
			src:         "<E> ::= <E> + ID %EOL\n<E> ::= ID %EOL",
			nonTerminal: "<E>",
			terminal:    "ID",
			existing:    0,
			conflicting: 1,
			row:         2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := buildGrammar(t, tt.src)
			_, err := Compile(g)
			if !errors.Is(err, cmpErrAmbiguousGrammar) {
				t.Fatalf("an ambiguity error is expected; got: %v", err)
			}
			var cErr *ConflictError
			if !errors.As(err, &cErr) {
				t.Fatalf("a conflict error is expected; got: %v", err)
			}
			if cErr.NonTerminal.Name() != tt.nonTerminal || cErr.Terminal.Name() != tt.terminal {
				t.Fatalf("unexpected cell; want: (%v, %v), got: (%v, %v)", tt.nonTerminal, tt.terminal, cErr.NonTerminal, cErr.Terminal)
			}
			if cErr.Existing.ID != tt.existing || cErr.Conflicting.ID != tt.conflicting {
				t.Fatalf("unexpected rules; want: R%v and R%v, got: %v and %v", tt.existing, tt.conflicting, cErr.Existing.Abbr(), cErr.Conflicting.Abbr())
			}
			var specErr *verr.SpecError
			if !errors.As(err, &specErr) || specErr.Row != tt.row {
				t.Fatalf("the error must point at the conflicting rule; want row: %v, got: %v", tt.row, err)
			}
		})
	}
}

func TestGenParsingTable_IncompleteGrammar(t *testing.T) {
	g := newGrammar("test", false)
	_, err := genParsingTable(g, nil, nil)
	if !errors.Is(err, cmpErrIncompleteGrammar) {
		t.Fatalf("unexpected error; want: %v, got: %v", cmpErrIncompleteGrammar, err)
	}
}

func TestGenParsingTable_Totality(t *testing.T) {
	g := buildGrammar(t, `
<prog>  ::= program ID { <stats> } %EOL
<stats> ::= <stat> <stats> %EOL
<stats> ::= %EOL
<stat>  ::= if ( <expr> ) then <stat> else <stat> ; %EOL
<stat>  ::= while ( <expr> ) do <stat> ; %EOL
<stat>  ::= read ( ID ) ; %EOL
<stat>  ::= write ( <expr> ) ; %EOL
<expr>  ::= <term> <expr2> %EOL
<expr2> ::= + <term> <expr2> %EOL
<expr2> ::= %EOL
<term>  ::= ID %EOL
<term>  ::= NUM %EOL
`)
	a, err := Analyze(g)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range g.NonTerminals() {
		for _, term := range g.Terminals() {
			if a.Table.Cell(n.ID(), term.ID()).Kind == CellKindUnset {
				t.Fatalf("(%v, %v) is unset", n, term)
			}
		}
		// The epsilon column never selects a rule.
		if a.Table.Cell(n.ID(), g.Epsilon().ID()).Kind != CellKindSyntaxError {
			t.Fatalf("(%v, &) must be a syntax error", n)
		}
	}
}

// Single-letter terminals such as `a` are dictionary words. A plain grammar rejects them, and a
// probabilistic grammar accepts them but gets no parsing table.
func TestGenParsingTable_DictionaryWordTerminals(t *testing.T) {
	_, err := parser.Parse(strings.NewReader("<S> ::= a <S> %EOL\n<S> ::= b %EOL\n"))
	var lexErr *parser.LexicalError
	if !errors.As(err, &lexErr) || lexErr.Code != parser.LexErrCodeCustom {
		t.Fatalf("a lexical error on a dictionary word is expected; got: %v", err)
	}
	var specErr *verr.SpecError
	if !errors.As(err, &specErr) || specErr.Detail != "a" || specErr.Row != 1 {
		t.Fatalf("the error must point at `a`; got: %v", err)
	}

	g := buildGrammar(t, "<S> ::= 0.5 a <S> %EOL\n<S> ::= 0.5 b %EOL\n", parser.ProbabilisticGrammar())
	a, err := Analyze(g)
	if err != nil {
		t.Fatal(err)
	}
	if a.Table != nil {
		t.Fatal("a probabilistic grammar has no parsing table")
	}
	testEqualNames(t, "FIRST(<S>)", []string{"a", "b"}, testSymbolNames(g, a.First(testNonTerminal(t, g, "<S>"))))
}
