package grammar

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/ebnf"
)

// EBNF is a grammar rendered in the EBNF notation of golang.org/x/exp/ebnf. Non-terminals become
// capitalized production names and terminals become quoted tokens. Semantic tokens and epsilon
// are dropped.
type EBNF struct {
	Text  string
	Start string

	// Names maps a non-terminal name to its production name.
	Names map[string]string

	grammar ebnf.Grammar
}

func GenEBNF(g *Grammar) (*EBNF, error) {
	if g.start == nil {
		return nil, cmpErrNoStartSymbol
	}

	names := genEBNFNames(g)
	alts := make([][]*Rule, len(g.nonTerminals))
	for _, r := range g.rules {
		alts[r.LHS.id] = append(alts[r.LHS.id], r)
	}

	var b strings.Builder
	writeProd := func(n *NonTerminal) {
		var nonEmpty []string
		hasEmpty := false
		for _, r := range alts[n.id] {
			var terms []string
			for _, sym := range grammarSymbols(r.RHS) {
				switch s := sym.(type) {
				case *NonTerminal:
					terms = append(terms, names[s.name])
				case *Terminal:
					if s.IsEpsilon() {
						continue
					}
					terms = append(terms, strconv.Quote(s.name))
				}
			}
			if len(terms) == 0 {
				hasEmpty = true
				continue
			}
			nonEmpty = append(nonEmpty, strings.Join(terms, " "))
		}
		expr := strings.Join(nonEmpty, " | ")
		switch {
		case len(nonEmpty) == 0:
			fmt.Fprintf(&b, "%v = .\n", names[n.name])
		case hasEmpty:
			fmt.Fprintf(&b, "%v = [ %v ] .\n", names[n.name], expr)
		default:
			fmt.Fprintf(&b, "%v = %v .\n", names[n.name], expr)
		}
	}
	writeProd(g.start)
	for _, n := range g.nonTerminals {
		if n == g.start {
			continue
		}
		writeProd(n)
	}

	text := b.String()
	eg, err := ebnf.Parse(g.name, strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("cannot parse the generated EBNF: %w", err)
	}
	return &EBNF{
		Text:    text,
		Start:   names[g.start.name],
		Names:   names,
		grammar: eg,
	}, nil
}

// Verify checks that every production is reachable from the start production.
func (e *EBNF) Verify() error {
	return ebnf.Verify(e.grammar, e.Start)
}

// genEBNFNames derives unique production names from the non-terminal names, e.g. `<expr_list>`
// becomes `Expr_list`.
func genEBNFNames(g *Grammar) map[string]string {
	names := map[string]string{}
	used := map[string]struct{}{}
	for _, n := range g.nonTerminals {
		base := ebnfName(n.name)
		name := base
		for i := 2; ; i++ {
			if _, ok := used[name]; !ok {
				break
			}
			name = fmt.Sprintf("%v%v", base, i)
		}
		used[name] = struct{}{}
		names[n.name] = name
	}
	return names
}

func ebnfName(ntName string) string {
	s := strings.TrimSuffix(strings.TrimPrefix(ntName, "<"), ">")
	var b strings.Builder
	for _, c := range s {
		if c < unicode.MaxASCII && (unicode.IsLetter(c) || unicode.IsDigit(c)) {
			b.WriteRune(c)
			continue
		}
		b.WriteRune('_')
	}
	name := []rune(b.String())
	if len(name) == 0 || !unicode.IsLetter(name[0]) {
		return "N" + string(name)
	}
	name[0] = unicode.ToUpper(name[0])
	return string(name)
}
