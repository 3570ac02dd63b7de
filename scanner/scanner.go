package scanner

import (
	"errors"
	"fmt"

	verr "github.com/nihei9/llgram/error"
	"github.com/nihei9/llgram/spec/grammar/parser"
	spec "github.com/nihei9/llgram/spec/grammar"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

var errInvalidInput = errors.New("invalid input")

const (
	tokenTypeLiteral = iota
	tokenTypeIdentifier
	tokenTypeNumber
)

const (
	identifierPattern = `([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`
	numberPattern     = `[0-9]+(\.[0-9]+)?`
	whitespacePattern = `( |\t|\n|\r)+`
)

// Token is a token of a source program. Terminal is the table column the token selects, or nil
// when the grammar has no matching terminal.
type Token struct {
	Class    spec.LexemeClass
	Lexeme   string
	Line     int
	Col      int
	Terminal *spec.Terminal
}

func (t *Token) String() string {
	term := "-"
	if t.Terminal != nil {
		term = fmt.Sprintf("(%v)%v", t.Terminal.ID, t.Terminal.Name)
	}
	return fmt.Sprintf("%v:%v %v %q %v", t.Line, t.Col, t.Class, t.Lexeme, term)
}

type Scanner struct {
	g     *spec.CompiledGrammar
	lexer *lexmachine.Lexer
}

// New builds a DFA recognizing the spellings of the grammar's literal terminals, identifiers and
// numbers. Literal spellings take priority over the identifier pattern.
func New(g *spec.CompiledGrammar) (*Scanner, error) {
	lexer := lexmachine.NewLexer()
	literals := 0
	for _, t := range g.Terminals {
		if !isLiteral(t) {
			continue
		}
		lexer.Add([]byte(spec.EscapePattern(t.Name)), makeToken(tokenTypeLiteral))
		literals++
	}
	lexer.Add([]byte(identifierPattern), makeToken(tokenTypeIdentifier))
	lexer.Add([]byte(numberPattern), makeToken(tokenTypeNumber))
	lexer.Add([]byte(whitespacePattern), skip)
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("cannot compile the DFA: %v", err)
		return nil, err
	}
	tracer().Infof("scanner of grammar %q; %v literal patterns", g.Name, literals)

	return &Scanner{
		g:     g,
		lexer: lexer,
	}, nil
}

func isLiteral(t *spec.Terminal) bool {
	switch parser.TerminalClass(t.Class) {
	case parser.TerminalClassEpsilon, parser.TerminalClassEOF, parser.TerminalClassIdentifier,
		parser.TerminalClassNumeric, parser.TerminalClassErrorName:
		return false
	}
	return true
}

// Tokenize scans the whole source. Input no pattern matches is skipped and reported in the
// returned error, which is a verr.SpecErrors; the tokens scanned so far are returned anyway.
func (s *Scanner) Tokenize(src []byte) ([]*Token, error) {
	sc, err := s.lexer.Scanner(src)
	if err != nil {
		return nil, err
	}

	var toks []*Token
	var errs verr.SpecErrors
	for tok, err, eof := sc.Next(); !eof; tok, err, eof = sc.Next() {
		if err != nil {
			ui, ok := err.(*machines.UnconsumedInput)
			if !ok {
				return nil, err
			}
			errs = append(errs, &verr.SpecError{
				Cause:  errInvalidInput,
				Detail: string(ui.Text),
				Row:    ui.StartLine,
				Col:    ui.StartColumn,
			})
			sc.TC = ui.FailTC
			continue
		}
		toks = append(toks, s.newToken(tok.(*lexmachine.Token)))
	}
	tracer().Debugf("%v tokens; %v errors", len(toks), len(errs))

	if len(errs) > 0 {
		return toks, errs
	}
	return toks, nil
}

func (s *Scanner) newToken(lt *lexmachine.Token) *Token {
	var class spec.LexemeClass
	switch lt.Type {
	case tokenTypeIdentifier:
		class = spec.LexemeClassIdentifier
	case tokenTypeNumber:
		class = spec.LexemeClassNumber
	default:
		class = spec.LexemeClassLiteral
	}
	tok := &Token{
		Class:  class,
		Lexeme: string(lt.Lexeme),
		Line:   lt.StartLine,
		Col:    lt.StartColumn,
	}
	if t, ok := s.g.TerminalOf(tok.Lexeme, class); ok {
		tok.Terminal = t
	}
	return tok
}

func makeToken(typ int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(typ, string(m.Bytes), m), nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}
