package grammar

import (
	"strings"
	"testing"

	"github.com/nihei9/llgram/spec/grammar/parser"
)

func buildGrammar(t *testing.T, src string, opts ...parser.ParseOption) *Grammar {
	t.Helper()

	ast, err := parser.Parse(strings.NewReader(src), opts...)
	if err != nil {
		t.Fatal(err)
	}
	b := GrammarBuilder{
		AST:  ast,
		Name: "test",
	}
	g, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// testSymbolNames converts terminal IDs into names.
func testSymbolNames(g *Grammar, ids []int) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = g.terminals[id].name
	}
	return names
}

func testNonTerminal(t *testing.T, g *Grammar, name string) *NonTerminal {
	t.Helper()

	n, ok := g.NonTerminal(name)
	if !ok {
		t.Fatalf("non-terminal was not found: %v", name)
	}
	return n
}

func testEqualNames(t *testing.T, what string, expected, actual []string) {
	t.Helper()

	if len(actual) != len(expected) {
		t.Fatalf("unexpected %v; want: %v, got: %v", what, expected, actual)
	}
	for i, e := range expected {
		if actual[i] != e {
			t.Fatalf("unexpected %v; want: %v, got: %v", what, expected, actual)
		}
	}
}
