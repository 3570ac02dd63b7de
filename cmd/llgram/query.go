package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/nihei9/llgram/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var queryFlags = struct {
	probabilistic *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "query",
		Short:   "Query FIRST/FOLLOW sets, table cells and rules of a grammar interactively",
		Example: `  llgram query grammar.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runQuery,
	}
	queryFlags.probabilistic = cmd.Flags().Bool("probabilistic", false, "read a probabilistic grammar")
	rootCmd.AddCommand(cmd)
}

func runQuery(cmd *cobra.Command, args []string) (retErr error) {
	src, err := openGrammarSource(args)
	if err != nil {
		return err
	}
	defer src.close()
	defer func() {
		if retErr != nil {
			src.annotate(retErr)
		}
	}()

	g, err := src.readGrammar(*queryFlags.probabilistic)
	if err != nil {
		return err
	}
	a, err := grammar.Analyze(g)
	if err != nil {
		return err
	}

	repl, err := readline.New("llgram> ")
	if err != nil {
		return err
	}
	defer repl.Close()

	initDisplay()
	pterm.Info.Printf("grammar %q: %v rules; type `help` for the commands\n", g.Name(), len(g.Rules()))
	sh := &shell{
		g: g,
		a: a,
	}
	for {
		line, err := repl.Readline()
		if err != nil {
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		res, quit, err := sh.eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
		pterm.Info.Println(res)
	}
	return nil
}

const shellHelp = `first <symbol>          FIRST set of a symbol
follow <non-terminal>   FOLLOW set of a non-terminal
cell <non-terminal> <terminal>
                        parsing table entry
rule <terminal> <non-terminal>
                        rule <non-terminal> -> <terminal>
cnf <A> <B> <C>         rule A -> B C of a grammar in Chomsky Normal Form
rules                   all rules
help                    this help
quit                    leave the shell`

// shell evaluates the commands of the query shell against an analyzed grammar.
type shell struct {
	g *grammar.Grammar
	a *grammar.Analysis
}

func (sh *shell) eval(line string) (res string, quit bool, retErr error) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("recovered: %v", r)
			retErr = fmt.Errorf("%v", r)
		}
	}()

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false, nil
	}
	cmd, args := fields[0], fields[1:]
	arity := map[string]int{
		"first":  1,
		"follow": 1,
		"cell":   2,
		"rule":   2,
		"cnf":    3,
		"rules":  0,
		"help":   0,
		"quit":   0,
	}
	n, ok := arity[cmd]
	if !ok {
		return "", false, fmt.Errorf("unknown command: %v", cmd)
	}
	if len(args) != n {
		return "", false, fmt.Errorf("%v takes %v argument(s)", cmd, n)
	}

	switch cmd {
	case "first":
		sym, ok := sh.g.Lookup(args[0])
		if !ok {
			return "", false, fmt.Errorf("unknown symbol: %v", args[0])
		}
		return sh.terminalSet(sh.a.First(sym)), false, nil
	case "follow":
		nt, err := sh.nonTerminal(args[0])
		if err != nil {
			return "", false, err
		}
		return sh.terminalSet(sh.a.Follow(nt)), false, nil
	case "cell":
		if sh.a.Table == nil {
			return "", false, fmt.Errorf("a probabilistic grammar has no parsing table")
		}
		nt, err := sh.nonTerminal(args[0])
		if err != nil {
			return "", false, err
		}
		term, ok := sh.g.Terminal(args[1])
		if !ok {
			return "", false, fmt.Errorf("unknown terminal: %v", args[1])
		}
		cell := sh.a.Table.Cell(nt.ID(), term.ID())
		if cell.Kind != grammar.CellKindProduction {
			return string(cell.Kind), false, nil
		}
		return fmt.Sprintf("%v: %v", cell.Rule.Abbr(), cell.Rule), false, nil
	case "rule":
		nt, err := sh.nonTerminal(args[1])
		if err != nil {
			return "", false, err
		}
		r, ok := sh.g.RuleByTerminal(args[0], nt.ID())
		if !ok {
			return "no such rule", false, nil
		}
		return fmt.Sprintf("%v: %v", r.Abbr(), r), false, nil
	case "cnf":
		ids := make([]int, len(args))
		for i, name := range args {
			nt, err := sh.nonTerminal(name)
			if err != nil {
				return "", false, err
			}
			ids[i] = nt.ID()
		}
		r, ok := sh.g.RuleByNonTerminals(ids[0], ids[1], ids[2])
		if !ok {
			return "no such rule", false, nil
		}
		return fmt.Sprintf("%v: %v", r.Abbr(), r), false, nil
	case "rules":
		var b strings.Builder
		for i, r := range sh.g.Rules() {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%v: %v", r.Abbr(), r)
		}
		return b.String(), false, nil
	case "help":
		return shellHelp, false, nil
	}
	return "", true, nil
}

func (sh *shell) nonTerminal(name string) (*grammar.NonTerminal, error) {
	nt, ok := sh.g.NonTerminal(name)
	if !ok {
		return nil, fmt.Errorf("unknown non-terminal: %v", name)
	}
	return nt, nil
}

func (sh *shell) terminalSet(ids []int) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = sh.g.Terminals()[id].Name()
	}
	return "{ " + strings.Join(names, " ") + " }"
}
