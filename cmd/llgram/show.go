package main

import (
	"os"

	spec "github.com/nihei9/llgram/spec/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Print a compiled grammar in a readable format",
		Example: `  llgram show grammar.llgram`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cg, err := readCompiledGrammar(args[0])
	if err != nil {
		return err
	}

	initDisplay()
	pterm.Info.Printf("grammar %q, fingerprint %v\n", cg.Name, cg.Fingerprint)

	sections := []struct {
		title string
		write func() error
	}{
		{"Symbols", func() error { return spec.WriteSymbols(os.Stdout, cg) }},
		{"Rules", func() error { return spec.WriteRules(os.Stdout, cg) }},
		{"First Sets", func() error { return spec.WriteFirstSets(os.Stdout, cg) }},
		{"Follow Sets", func() error { return spec.WriteFollowSets(os.Stdout, cg) }},
	}
	for _, s := range sections {
		pterm.DefaultSection.Println(s.title)
		err := s.write()
		if err != nil {
			return err
		}
	}

	if cg.ParsingTable == nil {
		return nil
	}
	rows, err := spec.TableRows(cg)
	if err != nil {
		return err
	}
	pterm.DefaultSection.Println("Parsing Table")
	pterm.DefaultTable.WithHasHeader().WithData(rows).Render()

	return nil
}
