package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	verr "github.com/nihei9/llgram/error"
	"github.com/nihei9/llgram/grammar"
	"github.com/nihei9/llgram/spec/grammar/parser"
)

// grammarSource is a grammar file named on the command line. Without a file argument, stdin is
// spooled to a temporary file so that diagnostics can quote source lines.
type grammarSource struct {
	path    string
	name    string
	tmpDir  string
	isStdin bool
}

func openGrammarSource(args []string) (*grammarSource, error) {
	if len(args) > 0 {
		return &grammarSource{
			path: args[0],
			name: strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0])),
		}, nil
	}

	tmpDir, err := os.MkdirTemp("", "llgram-*")
	if err != nil {
		return nil, err
	}
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		os.RemoveAll(tmpDir)
		return nil, err
	}
	path := filepath.Join(tmpDir, "stdin.llgram")
	err = os.WriteFile(path, src, 0600)
	if err != nil {
		os.RemoveAll(tmpDir)
		return nil, err
	}
	return &grammarSource{
		path:    path,
		name:    "stdin",
		tmpDir:  tmpDir,
		isStdin: true,
	}, nil
}

func (s *grammarSource) close() {
	if s.tmpDir == "" {
		return
	}
	os.RemoveAll(s.tmpDir)
}

// annotate sets the file path and the source name of the positioned errors err carries.
func (s *grammarSource) annotate(err error) {
	sourceName := s.path
	if s.isStdin {
		sourceName = "stdin"
	}
	var specErrs verr.SpecErrors
	if errors.As(err, &specErrs) {
		for _, e := range specErrs {
			e.FilePath = s.path
			e.SourceName = sourceName
		}
		return
	}
	var specErr *verr.SpecError
	if errors.As(err, &specErr) {
		specErr.FilePath = s.path
		specErr.SourceName = sourceName
	}
}

func (s *grammarSource) readGrammar(probabilistic bool) (*grammar.Grammar, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("cannot open the grammar file %s: %w", s.path, err)
	}
	defer f.Close()

	var opts []parser.ParseOption
	if probabilistic {
		opts = append(opts, parser.ProbabilisticGrammar())
	}
	ast, err := parser.Parse(f, opts...)
	if err != nil {
		return nil, err
	}

	b := grammar.GrammarBuilder{
		AST:  ast,
		Name: s.name,
	}
	return b.Build()
}
