package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/nihei9/llgram/scanner"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tokenize <compiled grammar> [source]",
		Short: "Tokenize a source program and print the table column of each token",
		Example: `  llgram tokenize grammar.llgram prog.txt
  cat prog.txt | llgram tokenize grammar.llgram`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runTokenize,
	}
	rootCmd.AddCommand(cmd)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cg, err := readCompiledGrammar(args[0])
	if err != nil {
		return err
	}
	s, err := scanner.New(cg)
	if err != nil {
		return err
	}

	var src []byte
	if len(args) > 1 {
		src, err = os.ReadFile(args[1])
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return err
	}

	toks, tokErr := s.Tokenize(src)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "POS\tCLASS\tLEXEME\tTERMINAL\n")
	for _, tok := range toks {
		term := "-"
		if tok.Terminal != nil {
			term = fmt.Sprintf("(%v)%v", tok.Terminal.ID, tok.Terminal.Name)
		}
		fmt.Fprintf(w, "%v:%v\t%v\t%v\t%v\n", tok.Line, tok.Col, tok.Class, tok.Lexeme, term)
	}
	err = w.Flush()
	if err != nil {
		return err
	}
	return tokErr
}
