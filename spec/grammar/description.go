package grammar

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func WriteSymbols(w io.Writer, g *CompiledGrammar) error {
	fmt.Fprintf(w, "Terminals:\n")
	for _, t := range g.Terminals {
		fmt.Fprintf(w, "(%v)%v\n", t.ID, t.Name)
	}
	fmt.Fprintf(w, "\nNon-Terminals:\n")
	for _, n := range g.NonTerminals {
		fmt.Fprintf(w, "(%v)%v\n", n.ID, n.Name)
	}
	_, err := fmt.Fprintf(w, "\n")
	return err
}

// WriteRules writes one `R<id>: LHS -> RHS` line per rule.
func WriteRules(w io.Writer, g *CompiledGrammar) error {
	for _, r := range g.Rules {
		fmt.Fprintf(w, "R%v: %v", r.ID, g.RuleText(r))
		if g.Probabilistic {
			fmt.Fprintf(w, " [%v]", r.Probability)
		}
		_, err := fmt.Fprintf(w, "\n")
		if err != nil {
			return err
		}
	}
	return nil
}

func WriteFirstSets(w io.Writer, g *CompiledGrammar) error {
	for _, n := range g.NonTerminals {
		_, err := fmt.Fprintf(w, "First set of %v: { %v}\n", n.Name, g.terminalList(n.First))
		if err != nil {
			return err
		}
	}
	return nil
}

func WriteFollowSets(w io.Writer, g *CompiledGrammar) error {
	for _, n := range g.NonTerminals {
		_, err := fmt.Fprintf(w, "Follow set of %v: { %v}\n", n.Name, g.terminalList(n.Follow))
		if err != nil {
			return err
		}
	}
	return nil
}

func (g *CompiledGrammar) terminalList(ids []int) string {
	var b strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&b, "%v ", g.Terminals[id].Name)
	}
	return b.String()
}

// TableRows renders the parsing table as text rows. The first row is the header of terminal
// names, and each following row starts with a non-terminal name.
func TableRows(g *CompiledGrammar) ([][]string, error) {
	tab := g.ParsingTable
	if tab == nil {
		return nil, fmt.Errorf("grammar %q has no parsing table", g.Name)
	}
	header := make([]string, 0, tab.ColCount+1)
	header = append(header, "")
	for _, t := range g.Terminals {
		header = append(header, t.Name)
	}
	rows := [][]string{header}
	for _, n := range g.NonTerminals {
		row := make([]string, 0, tab.ColCount+1)
		row = append(row, n.Name)
		for _, t := range g.Terminals {
			v, err := tab.Lookup(n.ID, t.ID)
			if err != nil {
				return nil, err
			}
			row = append(row, DecodeEntry(v).String())
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteTable writes the parsing table with a column per terminal. A cell reads `R<id>` for a
// production and `e` for a syntax error.
func WriteTable(w io.Writer, g *CompiledGrammar) error {
	rows, err := TableRows(g)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	for _, row := range rows {
		fmt.Fprintf(tw, "%v\n", strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// WriteReport writes the symbols, the rules, the FIRST and FOLLOW sets and, if any, the table.
func WriteReport(w io.Writer, g *CompiledGrammar) error {
	sections := []struct {
		title string
		write func(io.Writer, *CompiledGrammar) error
	}{
		{"Symbols", WriteSymbols},
		{"Rules", WriteRules},
		{"First Sets", WriteFirstSets},
		{"Follow Sets", WriteFollowSets},
	}
	if g.ParsingTable != nil {
		sections = append(sections, struct {
			title string
			write func(io.Writer, *CompiledGrammar) error
		}{"Parsing Table", WriteTable})
	}
	for _, s := range sections {
		fmt.Fprintf(w, "# %v\n\n", s.title)
		err := s.write(w, g)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\n")
	}
	return nil
}
