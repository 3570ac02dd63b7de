package main

import (
	"fmt"
	"os"

	"github.com/nihei9/llgram/grammar"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "ebnf",
		Short:   "Print a grammar in EBNF and check that every non-terminal is reachable",
		Example: `  llgram ebnf grammar.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runEBNF,
	}
	rootCmd.AddCommand(cmd)
}

func runEBNF(cmd *cobra.Command, args []string) (retErr error) {
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

	g, err := src.readGrammar(false)
	if err != nil {
		return err
	}
	e, err := grammar.GenEBNF(g)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, e.Text)

	err = e.Verify()
	if err != nil {
		return fmt.Errorf("EBNF verification failed: %w", err)
	}
	return nil
}
