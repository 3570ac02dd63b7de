package grammar

import (
	"fmt"
	"strings"

	"github.com/nihei9/llgram/spec/grammar/parser"
)

// Rule is a production `LHS -> RHS`. The RHS keeps semantic tokens at their source positions.
type Rule struct {
	ID  int
	LHS *NonTerminal
	RHS []Element

	// Probability is meaningful only in probabilistic grammars.
	Probability float64

	Pos parser.Position
}

// Abbr returns the short name used in dumps and tables, e.g. `R3`.
func (r *Rule) Abbr() string {
	return fmt.Sprintf("R%v", r.ID)
}

func (r *Rule) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v ->", r.LHS)
	for _, e := range r.RHS {
		fmt.Fprintf(&b, " %v", e)
	}
	return b.String()
}
