package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nihei9/llgram/spec/grammar/parser"
	"github.com/spf13/cobra"
)

var scanFlags = struct {
	output        *string
	probabilistic *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "scan",
		Short:   "Write the lexical analysis log of a grammar",
		Example: `  llgram scan grammar.txt -o grammar.log`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runScan,
	}
	scanFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	scanFlags.probabilistic = cmd.Flags().Bool("probabilistic", false, "read a probabilistic grammar")
	rootCmd.AddCommand(cmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	src, err := openGrammarSource(args)
	if err != nil {
		return err
	}
	defer src.close()

	f, err := os.Open(src.path)
	if err != nil {
		return fmt.Errorf("cannot open the grammar file %s: %w", src.path, err)
	}
	defer f.Close()

	var opts []parser.ParseOption
	if *scanFlags.probabilistic {
		opts = append(opts, parser.ProbabilisticGrammar())
	}
	res, err := parser.Scan(f, opts...)
	if err != nil {
		return err
	}
	for _, e := range res.Errors {
		e.SourceName = src.name
	}
	tracer().Infof("scanned %v tokens; %v errors", len(res.Tokens), len(res.Errors))

	write := func(w io.Writer) error {
		return parser.WriteScanLog(w, src.name, res)
	}
	if *scanFlags.output == "" {
		return write(os.Stdout)
	}
	return writeFile(*scanFlags.output, write)
}
