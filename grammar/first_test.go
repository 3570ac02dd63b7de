package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type first struct {
	nonTerminal string
	symbols     []string
}

func TestGenFirstSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llgram.grammar")
	defer teardown()

	tests := []struct {
		caption string
		src     string
		first   []first
	}{
		{
			caption: "a recursive rule and a terminal rule",
			src: `
<S> ::= if <S> %EOL
<S> ::= while %EOL
`,
			first: []first{
				{nonTerminal: "<S>", symbols: []string{"if", "while"}},
			},
		},
		{
			caption: "an empty RHS derives epsilon, and FIRST looks past a nullable symbol",
			src: `
<S> ::= <A> while %EOL
<A> ::= if %EOL
<A> ::= %EOL
`,
			first: []first{
				{nonTerminal: "<S>", symbols: []string{"while", "if"}},
				{nonTerminal: "<A>", symbols: []string{"&", "if"}},
			},
		},
		{
			caption: "semantic tokens are skipped and explicit epsilon is nullable",
			src: `
<E> ::= <T> <R> %EOL
<R> ::= + <T> @ADD <R> %EOL
<R> ::= & %EOL
<T> ::= ( <E> ) %EOL
<T> ::= ID %EOL
<T> ::= @PUSH NUM %EOL
`,
			first: []first{
				{nonTerminal: "<E>", symbols: []string{"(", "ID", "NUM"}},
				{nonTerminal: "<R>", symbols: []string{"&", "+"}},
				{nonTerminal: "<T>", symbols: []string{"(", "ID", "NUM"}},
			},
		},
		{
			caption: "a RHS made of nullable symbols only is nullable",
			src: `
<S> ::= <A> @MARK <B> %EOL
<A> ::= %EOL
<B> ::= & %EOL
`,
			first: []first{
				{nonTerminal: "<S>", symbols: []string{"&"}},
				{nonTerminal: "<A>", symbols: []string{"&"}},
				{nonTerminal: "<B>", symbols: []string{"&"}},
			},
		},
		{
			caption: "FIRST propagates through rules written in any order",
			src: `
<S> ::= <A> %EOL
<A> ::= <B> %EOL
<B> ::= <C> %EOL
<C> ::= do %EOL
`,
			first: []first{
				{nonTerminal: "<S>", symbols: []string{"do"}},
				{nonTerminal: "<A>", symbols: []string{"do"}},
				{nonTerminal: "<B>", symbols: []string{"do"}},
				{nonTerminal: "<C>", symbols: []string{"do"}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := buildGrammar(t, tt.src)
			fst, err := genFirstSet(g)
			if err != nil {
				t.Fatal(err)
			}
			for _, e := range tt.first {
				n := testNonTerminal(t, g, e.nonTerminal)
				actual := testSymbolNames(g, fst.findBySymbol(n).ids())
				testEqualNames(t, "FIRST("+e.nonTerminal+")", e.symbols, actual)
			}
		})
	}
}

func TestGenFirstSet_TerminalsAreThemselves(t *testing.T) {
	g := buildGrammar(t, `<S> ::= if then %EOL`)
	fst, err := genFirstSet(g)
	if err != nil {
		t.Fatal(err)
	}
	for _, term := range g.Terminals() {
		ids := fst.findBySymbol(term).ids()
		if len(ids) != 1 || ids[0] != term.ID() {
			t.Fatalf("unexpected FIRST(%v); want: [%v], got: %v", term, term.ID(), ids)
		}
	}
}

func TestGenFirstSet_Soundness(t *testing.T) {
	g := buildGrammar(t, `
<prog>  ::= program ID { <stats> } %EOL
<stats> ::= <stat> <stats> %EOL
<stats> ::= %EOL
<stat>  ::= if ( <expr> ) then <stat> else <stat> ; %EOL
<stat>  ::= while ( <expr> ) do <stat> ; %EOL
<stat>  ::= read ( ID ) ; %EOL
<stat>  ::= write ( <expr> ) ; %EOL
<stat>  ::= return ( <expr> ) ; %EOL
<expr>  ::= <term> <expr2> %EOL
<expr2> ::= + <term> <expr2> %EOL
<expr2> ::= - <term> <expr2> %EOL
<expr2> ::= %EOL
<term>  ::= ID %EOL
<term>  ::= NUM %EOL
`)
	fst, err := genFirstSet(g)
	if err != nil {
		t.Fatal(err)
	}
	eps := g.Epsilon().ID()
	for _, r := range g.Rules() {
		lhs := fst.findBySymbol(r.LHS)
		syms := grammarSymbols(r.RHS)
		allNullable := true
		for _, sym := range syms {
			e := fst.findBySymbol(sym)
			for _, id := range e.ids() {
				if id != eps && !lhs.contains(id) {
					t.Fatalf("FIRST(%v) lacks %v of FIRST(%v); rule: %v", r.LHS, g.terminals[id], sym, r)
				}
			}
			if !e.contains(eps) {
				allNullable = false
				break
			}
		}
		if allNullable && !lhs.contains(eps) {
			t.Fatalf("FIRST(%v) must contain epsilon; rule: %v", r.LHS, r)
		}
	}
	for _, n := range g.NonTerminals() {
		nullable := false
		for _, r := range g.Rules() {
			if r.LHS != n {
				continue
			}
			ok := true
			for _, sym := range grammarSymbols(r.RHS) {
				if !fst.findBySymbol(sym).contains(eps) {
					ok = false
					break
				}
			}
			if ok {
				nullable = true
			}
		}
		if fst.findBySymbol(n).contains(eps) != nullable {
			t.Fatalf("unexpected nullability of %v; want: %v", n, nullable)
		}
	}
}
