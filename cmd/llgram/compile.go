package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nihei9/llgram/grammar"
	spec "github.com/nihei9/llgram/spec/grammar"
	"github.com/spf13/cobra"
)

var compileFlags = struct {
	output        *string
	probabilistic *bool
	report        *string
	noCompression *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile",
		Short:   "Compile a grammar into an LL(1) parsing table",
		Example: `  llgram compile grammar.txt -o grammar.llgram --report grammar-report.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	compileFlags.probabilistic = cmd.Flags().Bool("probabilistic", false, "read a probabilistic grammar")
	compileFlags.report = cmd.Flags().String("report", "", "write the symbols, rules, FIRST/FOLLOW sets and the table to a file")
	compileFlags.noCompression = cmd.Flags().Bool("no-compression", false, "store the parsing table uncompressed")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) (retErr error) {
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

	g, err := src.readGrammar(*compileFlags.probabilistic)
	if err != nil {
		return err
	}

	var opts []grammar.CompileOption
	if *compileFlags.noCompression {
		opts = append(opts, grammar.DisableCompression())
	}
	cg, err := grammar.Compile(g, opts...)
	if err != nil {
		return err
	}
	tracer().Infof("compiled grammar %q; fingerprint: %v", cg.Name, cg.Fingerprint)

	err = writeCompiledGrammar(cg, *compileFlags.output)
	if err != nil {
		return fmt.Errorf("cannot write the compiled grammar: %w", err)
	}
	if *compileFlags.report != "" {
		err = writeFile(*compileFlags.report, func(w io.Writer) error {
			return spec.WriteReport(w, cg)
		})
		if err != nil {
			return fmt.Errorf("cannot write the report: %w", err)
		}
	}

	return nil
}

func writeCompiledGrammar(cg *spec.CompiledGrammar, path string) error {
	if path == "" {
		return spec.Save(os.Stdout, cg)
	}
	return writeFile(path, func(w io.Writer) error {
		return spec.Save(w, cg)
	})
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	err = write(f)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func readCompiledGrammar(path string) (*spec.CompiledGrammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open the compiled grammar %s: %w", path, err)
	}
	defer f.Close()

	return spec.Load(f)
}
