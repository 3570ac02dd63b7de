package parser

import "fmt"

// LexicalError reports a character sequence the grammar lexer cannot classify. The lexer records
// it and keeps scanning; it becomes fatal only when the parser needs the offending token.
type LexicalError struct {
	Code    int
	message string
}

func newLexicalError(code int, message string) *LexicalError {
	return &LexicalError{
		Code:    code,
		message: message,
	}
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error: %s", e.message)
}

// SyntaxError reports a malformed production.
type SyntaxError struct {
	Code    int
	message string
}

func newSyntaxError(code int, message string) *SyntaxError {
	return &SyntaxError{
		Code:    code,
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

const (
	LexErrCodeInvalidChar   = 1
	LexErrCodeUnexpectedEOF = 6
	LexErrCodeCustom        = 8

	SynErrCodeGeneral = 1
	SynErrCodeCustom  = 5
)

var (
	// lexical errors
	lexErrInvalidChar     = newLexicalError(LexErrCodeInvalidChar, "invalid character")
	lexErrUnclosedComment = newLexicalError(LexErrCodeUnexpectedEOF, "unexpected EOF; a block comment is not closed")
	lexErrDictWord        = newLexicalError(LexErrCodeCustom, "dictionary words are supported only in probabilistic grammars")

	// syntax errors
	synErrNoLHS              = newSyntaxError(SynErrCodeCustom, "the first token must be a non-terminal")
	synErrNoRuleOp           = newSyntaxError(SynErrCodeCustom, "the rule operator ::= must follow the left-hand side")
	synErrNoProbability      = newSyntaxError(SynErrCodeCustom, "a probability must follow the rule operator")
	synErrInvalidProbability = newSyntaxError(SynErrCodeCustom, "a probability must be a number between 0 and 1")
	synErrUnexpectedToken    = newSyntaxError(SynErrCodeGeneral, "unexpected grammar token type")
)
