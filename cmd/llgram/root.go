package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

var traceKeys = []string{
	"llgram.parser",
	"llgram.grammar",
	"llgram.spec",
	"llgram.scanner",
	"llgram.cli",
}

// tracer traces with key 'llgram.cli'.
func tracer() tracing.Trace {
	return tracing.Select("llgram.cli")
}

var rootFlags = struct {
	trace *string
}{}

var rootCmd = &cobra.Command{
	Use:   "llgram",
	Short: "Analyze an LL(1) grammar and generate its predictive parsing table",
	Long: `llgram reads a grammar written as <LHS> ::= RHS %EOL statements and
- computes the FIRST and FOLLOW sets of every non-terminal,
- builds the LL(1) parsing table, reporting any conflict,
- saves the result as a compiled grammar for table-driven parsers.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := tracing.TraceLevelFromString(*rootFlags.trace)
		for _, key := range traceKeys {
			tracing.Select(key).SetTraceLevel(level)
		}
		return nil
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "Error", "trace level [Debug|Info|Error]")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
