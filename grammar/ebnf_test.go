package grammar

import (
	"testing"
)

func TestGenEBNF(t *testing.T) {
	tests := []struct {
		caption    string
		src        string
		ebnf       string
		verifyFail bool
	}{
		{
			caption: "alternatives, semantic tokens and epsilon",
			src:     exprSrc,
			ebnf: `E = T R .
T = "(" E ")" | "ID" | "NUM" .
R = [ "+" T R ] .
`,
		},
		{
			caption: "a non-terminal with an empty RHS only",
			src: `
<S> ::= if <empty_stat> %EOL
<empty_stat> ::= %EOL
`,
			ebnf: `S = "if" Empty_stat .
Empty_stat = .
`,
		},
		{
			caption: "colliding names are numbered",
			src: `
<a> ::= <A> %EOL
<A> ::= do %EOL
`,
			ebnf: `A = A2 .
A2 = "do" .
`,
		},
		{
			caption: "an unreachable non-terminal fails the verification",
			src: `
<S> ::= if %EOL
<U> ::= then %EOL
`,
			ebnf: `S = "if" .
U = "then" .
`,
			verifyFail: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := buildGrammar(t, tt.src)
			e, err := GenEBNF(g)
			if err != nil {
				t.Fatal(err)
			}
			if e.Text != tt.ebnf {
				t.Fatalf("unexpected EBNF;\nwant:\n%v\ngot:\n%v", tt.ebnf, e.Text)
			}
			err = e.Verify()
			if tt.verifyFail && err == nil {
				t.Fatal("the verification must fail")
			}
			if !tt.verifyFail && err != nil {
				t.Fatal(err)
			}
		})
	}
}
