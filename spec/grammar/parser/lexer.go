package parser

import (
	"fmt"
	"io"
	"strings"
	"sync"

	verr "github.com/nihei9/llgram/error"
	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

type tokenKind string

const (
	tokenKindTerminal    = tokenKind("terminal")
	tokenKindNonTerminal = tokenKind("non-terminal")
	tokenKindSemantic    = tokenKind("semantic token")
	tokenKindRuleOp      = tokenKind("::=")
	tokenKindEOL         = tokenKind("%EOL")
	tokenKindProbability = tokenKind("probability")
	tokenKindEOF         = tokenKind("eof")
	tokenKindInvalid     = tokenKind("invalid")
)

type Position struct {
	Row int
	Col int
}

func newPosition(row, col int) Position {
	return Position{
		Row: row,
		Col: col,
	}
}

type token struct {
	kind  tokenKind
	class TerminalClass
	text  string
	pos   Position
	err   *LexicalError
}

func newToken(kind tokenKind, class TerminalClass, text string, pos Position) *token {
	return &token{
		kind:  kind,
		class: class,
		text:  text,
		pos:   pos,
	}
}

func newEOFToken(pos Position) *token {
	return &token{
		kind:  tokenKindEOF,
		class: TerminalClassEOF,
		text:  EOFText,
		pos:   pos,
	}
}

func newInvalidToken(text string, pos Position, err *LexicalError) *token {
	return &token{
		kind: tokenKindInvalid,
		text: text,
		pos:  pos,
		err:  err,
	}
}

const lexSpecName = "llgram"

const (
	kindWhiteSpace      = "white_space"
	kindLineComment     = "line_comment"
	kindHashComment     = "hash_comment"
	kindBlockComment    = "block_comment"
	kindUnclosedComment = "unclosed_comment"
	kindProbability     = "probability"
	kindWord            = "word"
	kindOrdinary        = "ordinary"
)

// Words are runs of the characters between '0' and U+00A0 plus '%' and '$', except for the ones
// that always stand alone. Every other character is an ordinary one-character token.
const wordPattern = `[0-9:<-@A-Z\u{005C}\u{005E}_\u{0060}a-z~\u{007F}-\u{00A0}%$]+`

func lexEntries(probabilistic bool) []*mlspec.LexEntry {
	entry := func(kind, pattern string) *mlspec.LexEntry {
		return &mlspec.LexEntry{
			Kind:    mlspec.LexKindName(kind),
			Pattern: mlspec.LexPattern(pattern),
		}
	}

	entries := []*mlspec.LexEntry{
		entry(kindWhiteSpace, `[\u{0001}-\u{0020}]+`),
		entry(kindLineComment, `//[^\u{000A}]*`),
		entry(kindHashComment, `#[^\u{000A}]*`),
		entry(kindBlockComment, `/\*([^*]|\*+[^*/])*\*+/`),
		entry(kindUnclosedComment, `/\*([^*]|\*+[^*/])*\**`),
	}
	// A numeric literal must precede the word entry so that digits are not read as a word.
	if probabilistic {
		entries = append(entries, entry(kindProbability, `[0-9]+(\.[0-9]+)?|\.[0-9]+`))
	}
	return append(entries,
		entry(kindWord, wordPattern),
		entry(kindOrdinary, `.`),
	)
}

type compiledLexSpec struct {
	once sync.Once
	spec *mlspec.CompiledLexSpec
	err  error
}

var (
	standardLexSpec      compiledLexSpec
	probabilisticLexSpec compiledLexSpec
)

func lexSpec(probabilistic bool) (*mlspec.CompiledLexSpec, error) {
	c := &standardLexSpec
	if probabilistic {
		c = &probabilisticLexSpec
	}
	c.once.Do(func() {
		c.spec, c.err = compileLexSpec(probabilistic)
	})
	return c.spec, c.err
}

func compileLexSpec(probabilistic bool) (*mlspec.CompiledLexSpec, error) {
	s := &mlspec.LexSpec{
		Name:    lexSpecName,
		Entries: lexEntries(probabilistic),
	}
	clspec, err, cErrs := mlcompiler.Compile(s, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
	if err != nil {
		if len(cErrs) > 0 {
			var b strings.Builder
			for i, cErr := range cErrs {
				if i > 0 {
					fmt.Fprintf(&b, "\n")
				}
				fmt.Fprintf(&b, "%v: %v", cErr.Kind, cErr.Cause)
				if cErr.Detail != "" {
					fmt.Fprintf(&b, ": %v", cErr.Detail)
				}
			}
			return nil, fmt.Errorf("cannot compile the lexical specification of the grammar language: %v", b.String())
		}
		return nil, err
	}
	return clspec, nil
}

type lexer struct {
	s             *mlspec.CompiledLexSpec
	d             *mldriver.Lexer
	probabilistic bool

	// tokens holds every token handed to the parser except for EOF and invalid ones.
	tokens []*token
	errs   verr.SpecErrors
	eof    *token
}

func newLexer(src io.Reader, probabilistic bool) (*lexer, error) {
	s, err := lexSpec(probabilistic)
	if err != nil {
		return nil, err
	}
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(s), src)
	if err != nil {
		return nil, err
	}
	return &lexer{
		s:             s,
		d:             d,
		probabilistic: probabilistic,
	}, nil
}

func (l *lexer) next() (*token, error) {
	if l.eof != nil {
		return l.eof, nil
	}

	for {
		tok, err := l.d.Next()
		if err != nil {
			return nil, err
		}
		pos := newPosition(tok.Row+1, tok.Col+1)
		if tok.EOF {
			l.eof = newEOFToken(pos)
			return l.eof, nil
		}
		text := string(tok.Lexeme)
		if tok.Invalid {
			return l.invalid(text, pos, lexErrInvalidChar), nil
		}

		switch l.s.KindNames[tok.KindID].String() {
		case kindWhiteSpace, kindLineComment, kindHashComment, kindBlockComment:
			continue
		case kindUnclosedComment:
			l.recordError(lexErrUnclosedComment, "", pos)
			continue
		case kindProbability:
			return l.accept(newToken(tokenKindProbability, TerminalClassNil, text, pos)), nil
		}

		kind, class, lexErr := classifyLexeme(text, l.probabilistic)
		if lexErr != nil {
			return l.invalid(text, pos, lexErr), nil
		}
		return l.accept(newToken(kind, class, text, pos)), nil
	}
}

func (l *lexer) accept(tok *token) *token {
	tracer().Debugf("%v: %v %q %v", tok.pos.Row, tok.kind, tok.text, tok.class)
	l.tokens = append(l.tokens, tok)
	return tok
}

func (l *lexer) invalid(text string, pos Position, cause *LexicalError) *token {
	l.recordError(cause, text, pos)
	return newInvalidToken(text, pos, cause)
}

func (l *lexer) recordError(cause *LexicalError, detail string, pos Position) {
	tracer().Errorf("%v:%v: %v: %q", pos.Row, pos.Col, cause, detail)
	l.errs = append(l.errs, &verr.SpecError{
		Cause:  cause,
		Detail: detail,
		Row:    pos.Row,
		Col:    pos.Col,
	})
}
