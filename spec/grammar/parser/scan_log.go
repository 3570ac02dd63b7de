package parser

import (
	"fmt"
	"io"

	verr "github.com/nihei9/llgram/error"
)

// ScannedToken is a token as reported by Scan.
type ScannedToken struct {
	Kind  string
	Class TerminalClass
	Text  string
	Pos   Position
}

type ScanResult struct {
	Tokens []*ScannedToken
	Errors verr.SpecErrors
}

// Scan runs only the lexer over the whole source. Invalid tokens are left out of Tokens and
// reported in Errors.
func Scan(src io.Reader, opts ...ParseOption) (*ScanResult, error) {
	config := &parseConfig{}
	for _, opt := range opts {
		opt(config)
	}

	lex, err := newLexer(src, config.probabilistic)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := lex.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenKindEOF {
			break
		}
	}

	res := &ScanResult{
		Errors: lex.errs,
	}
	for _, tok := range lex.tokens {
		res.Tokens = append(res.Tokens, &ScannedToken{
			Kind:  string(tok.kind),
			Class: tok.class,
			Text:  tok.text,
			Pos:   tok.pos,
		})
	}
	return res, nil
}

// WriteScanLog writes the result of Scan in the format of a lexical analysis log.
func WriteScanLog(w io.Writer, sourceName string, res *ScanResult) error {
	fmt.Fprintf(w, "-----------------------------------\n")
	fmt.Fprintf(w, "Lexical Analysis Results\n")
	fmt.Fprintf(w, "Source file : %q\n", sourceName)
	fmt.Fprintf(w, "Total tokens: %v\n", len(res.Tokens))
	fmt.Fprintf(w, "Total errors: %v\n", len(res.Errors))
	fmt.Fprintf(w, "-----------------------------------\n\n")

	fmt.Fprintf(w, "Synopsis:\n")
	fmt.Fprintf(w, "  LINE#: TOKEN TYPE, [ lexeme ], TOKEN SUBTYPE\n\n")
	for _, tok := range res.Tokens {
		class := tok.Class.String()
		if class == "" {
			class = "-"
		}
		fmt.Fprintf(w, "%5v: %v, [ %v ], %v\n", tok.Pos.Row, tok.Kind, tok.Text, class)
	}

	if len(res.Errors) == 0 {
		return nil
	}
	fmt.Fprintf(w, "\nErrors:\n")
	for _, err := range res.Errors {
		_, err := fmt.Fprintf(w, "  %v\n", err)
		if err != nil {
			return err
		}
	}
	return nil
}
