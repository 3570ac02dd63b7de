package grammar

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nihei9/llgram/compressor"
	"github.com/nihei9/llgram/spec/grammar/parser"
)

// newTestGrammar returns the compiled form of
//
//	<S> ::= if <S> @MARK %EOL
//	<S> ::= while %EOL
func newTestGrammar(t *testing.T, compress bool) *CompiledGrammar {
	t.Helper()

	cells := []int{
		-1, 0, 1, -1,
	}
	g := &CompiledGrammar{
		Name: "test",
		Terminals: []*Terminal{
			{ID: 0, Name: "&", Class: parser.TerminalClassEpsilon.String()},
			{ID: 1, Name: "if", Class: "keyword"},
			{ID: 2, Name: "while", Class: "keyword"},
			{ID: 3, Name: "$", Class: parser.TerminalClassEOF.String()},
		},
		NonTerminals: []*NonTerminal{
			{ID: 0, Name: "<S>", First: []int{1, 2}, Follow: []int{3}},
		},
		SemanticTokens: []string{"@MARK"},
		Rules: []*Rule{
			{
				ID:  0,
				LHS: 0,
				RHS: []SymbolRef{
					{Kind: SymbolKindTerminal, ID: 1},
					{Kind: SymbolKindNonTerminal, ID: 0},
					{Kind: SymbolKindSemanticToken, ID: 0},
				},
			},
			{
				ID:  1,
				LHS: 0,
				RHS: []SymbolRef{
					{Kind: SymbolKindTerminal, ID: 2},
				},
			},
		},
		ParsingTable: &ParsingTable{
			RowCount:      1,
			ColCount:      4,
			EOFSymbol:     3,
			StartSymbol:   0,
			EpsilonSymbol: 0,
			ErrorEntry:    -1,
		},
	}
	if compress {
		m, err := compressor.NewMatrix(cells, 4)
		if err != nil {
			t.Fatal(err)
		}
		ct := compressor.NewTable(-1)
		err = ct.Compress(m)
		if err != nil {
			t.Fatal(err)
		}
		g.ParsingTable.Compressed = ct
	} else {
		g.ParsingTable.Cells = cells
	}
	fp, err := g.ComputeFingerprint()
	if err != nil {
		t.Fatal(err)
	}
	g.Fingerprint = fp
	return g
}

func TestDumps(t *testing.T) {
	tests := []struct {
		caption  string
		write    func(w *bytes.Buffer, g *CompiledGrammar) error
		expected string
	}{
		{
			caption: "symbols",
			write: func(w *bytes.Buffer, g *CompiledGrammar) error {
				return WriteSymbols(w, g)
			},
			expected: `Terminals:
(0)&
(1)if
(2)while
(3)$

Non-Terminals:
(0)<S>

`,
		},
		{
			caption: "rules",
			write: func(w *bytes.Buffer, g *CompiledGrammar) error {
				return WriteRules(w, g)
			},
			expected: `R0: <S> -> if <S> @MARK
R1: <S> -> while
`,
		},
		{
			caption: "FIRST sets",
			write: func(w *bytes.Buffer, g *CompiledGrammar) error {
				return WriteFirstSets(w, g)
			},
			expected: "First set of <S>: { if while }\n",
		},
		{
			caption: "FOLLOW sets",
			write: func(w *bytes.Buffer, g *CompiledGrammar) error {
				return WriteFollowSets(w, g)
			},
			expected: "Follow set of <S>: { $ }\n",
		},
		{
			caption: "the parsing table",
			write: func(w *bytes.Buffer, g *CompiledGrammar) error {
				return WriteTable(w, g)
			},
			expected: `    & if while $
<S> e R0 R1    e
`,
		},
	}
	for _, compress := range []bool{false, true} {
		g := newTestGrammar(t, compress)
		for _, tt := range tests {
			t.Run(tt.caption, func(t *testing.T) {
				var b bytes.Buffer
				err := tt.write(&b, g)
				if err != nil {
					t.Fatal(err)
				}
				if b.String() != tt.expected {
					t.Fatalf("unexpected dump;\nwant:\n%q\ngot:\n%q", tt.expected, b.String())
				}
			})
		}
	}
}

func TestWriteRules_Probabilistic(t *testing.T) {
	g := newTestGrammar(t, false)
	g.Probabilistic = true
	g.Rules[0].Probability = 0.25
	g.Rules[1].Probability = 0.75

	var b strings.Builder
	err := WriteRules(&b, g)
	if err != nil {
		t.Fatal(err)
	}
	expected := `R0: <S> -> if <S> @MARK [0.25]
R1: <S> -> while [0.75]
`
	if b.String() != expected {
		t.Fatalf("unexpected dump;\nwant:\n%v\ngot:\n%v", expected, b.String())
	}
}

func TestSaveAndLoad(t *testing.T) {
	g := newTestGrammar(t, true)

	var buf bytes.Buffer
	err := Save(&buf, g)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	for nt := 0; nt < 1; nt++ {
		for term := 0; term < 4; term++ {
			v1, _ := g.ParsingTable.Lookup(nt, term)
			v2, err := loaded.ParsingTable.Lookup(nt, term)
			if err != nil {
				t.Fatal(err)
			}
			if v1 != v2 {
				t.Fatalf("unexpected entry (%v, %v); want: %v, got: %v", nt, term, v1, v2)
			}
		}
	}

	// A grammar whose contents do not match its fingerprint is rejected.
	g.Rules[1].RHS[0].ID = 1
	buf.Reset()
	err = Save(&buf, g)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Load(bytes.NewReader(buf.Bytes()))
	if err == nil {
		t.Fatal("a fingerprint mismatch must be an error")
	}

	_, err = Load(strings.NewReader("not gzip"))
	if err == nil {
		t.Fatal("a broken file must be an error")
	}
}

func TestTerminalOf(t *testing.T) {
	g := &CompiledGrammar{
		Terminals: []*Terminal{
			{ID: 0, Name: "&", Class: parser.TerminalClassEpsilon.String()},
			{ID: 1, Name: "if", Class: "keyword"},
			{ID: 2, Name: "ID", Class: "identifier"},
			{ID: 3, Name: "INTEGER", Class: "numeric"},
			{ID: 4, Name: "$", Class: parser.TerminalClassEOF.String()},
		},
	}
	tests := []struct {
		lexeme   string
		class    LexemeClass
		terminal string
		found    bool
	}{
		{lexeme: "if", class: LexemeClassLiteral, terminal: "if", found: true},
		{lexeme: "if", class: LexemeClassIdentifier, terminal: "if", found: true},
		{lexeme: "count", class: LexemeClassIdentifier, terminal: "ID", found: true},
		{lexeme: "42", class: LexemeClassNumber, terminal: "INTEGER", found: true},
		{lexeme: "&", class: LexemeClassLiteral, found: false},
		{lexeme: "$", class: LexemeClassLiteral, found: false},
		{lexeme: "+", class: LexemeClassLiteral, found: false},
	}
	for _, tt := range tests {
		term, ok := g.TerminalOf(tt.lexeme, tt.class)
		if ok != tt.found {
			t.Fatalf("unexpected result for %q; want: %v, got: %v", tt.lexeme, tt.found, ok)
		}
		if ok && term.Name != tt.terminal {
			t.Fatalf("unexpected terminal for %q; want: %v, got: %v", tt.lexeme, tt.terminal, term.Name)
		}
	}
}

func TestDecodeEntry(t *testing.T) {
	if e := DecodeEntry(0); e.Kind != EntryKindProduction || e.Rule != 0 || e.String() != "R0" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e := DecodeEntry(-1); e.Kind != EntryKindSyntaxError || e.ErrorCode != 1 || e.String() != "e" {
		t.Fatalf("unexpected entry: %+v", e)
	}
}

func TestEscapePattern(t *testing.T) {
	tests := []struct {
		s        string
		expected string
	}{
		{s: "if", expected: "if"},
		{s: "<=", expected: `\<\=`},
		{s: "(", expected: `\(`},
		{s: "ID_2", expected: "ID_2"},
	}
	for _, tt := range tests {
		if actual := EscapePattern(tt.s); actual != tt.expected {
			t.Fatalf("unexpected pattern of %q; want: %v, got: %v", tt.s, tt.expected, actual)
		}
	}
}
