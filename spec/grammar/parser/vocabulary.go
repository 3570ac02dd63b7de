package parser

import "strings"

// TerminalClass is the lexical subtype of a terminal, derived from its spelling.
type TerminalClass string

const (
	TerminalClassNil         = TerminalClass("")
	TerminalClassKeyword     = TerminalClass("keyword")
	TerminalClassPunctuation = TerminalClass("punctuation")
	TerminalClassOperator    = TerminalClass("operator")
	TerminalClassBracket     = TerminalClass("bracket")
	TerminalClassNumeric     = TerminalClass("numeric")
	TerminalClassEpsilon     = TerminalClass("epsilon")
	TerminalClassEOF         = TerminalClass("eof")
	TerminalClassIdentifier  = TerminalClass("identifier")
	TerminalClassErrorName   = TerminalClass("error-name")
	TerminalClassDictWord    = TerminalClass("dictionary-word")
)

func (c TerminalClass) String() string {
	return string(c)
}

const (
	EpsilonText  = "&"
	EOFText      = "$"
	orText       = "|"
	ruleOpText   = "::="
	eolText      = "%EOL"
	semanticMark = "@"
	errNameMark  = "$"
	ntOpenMark   = "<"

	IdentifierText = "ID"
	NumText        = "NUM"
	IntegerText    = "INTEGER"
)

// keywords of the language the grammars describe.
var keywords = map[string]struct{}{
	"do":      {},
	"else":    {},
	"if":      {},
	"integer": {},
	"class":   {},
	"read":    {},
	"real":    {},
	"return":  {},
	"then":    {},
	"while":   {},
	"write":   {},
	"program": {},
	"and":     {},
	"not":     {},
	"or":      {},
	"this":    {},
}

var operators = map[string]struct{}{
	"==": {},
	"<>": {},
	"<":  {},
	">":  {},
	"<=": {},
	">=": {},
	"+":  {},
	"-":  {},
	"*":  {},
	"/":  {},
	"=":  {},
	".":  {},
}

var punctuations = map[string]struct{}{
	";": {},
	",": {},
}

var brackets = map[string]struct{}{
	"(": {},
	")": {},
	"{": {},
	"}": {},
	"[": {},
	"]": {},
}

// classifyLexeme classifies a word or an ordinary character. The order of the checks matters:
// operators such as `<=` must win over the non-terminal reference rule.
func classifyLexeme(text string, probabilistic bool) (tokenKind, TerminalClass, *LexicalError) {
	switch text {
	case EOFText:
		return tokenKindTerminal, TerminalClassEOF, nil
	case EpsilonText:
		return tokenKindTerminal, TerminalClassEpsilon, nil
	case orText:
		return tokenKindTerminal, TerminalClassKeyword, nil
	case ruleOpText:
		return tokenKindRuleOp, TerminalClassKeyword, nil
	case eolText:
		return tokenKindEOL, TerminalClassKeyword, nil
	}
	if _, ok := keywords[text]; ok {
		return tokenKindTerminal, TerminalClassKeyword, nil
	}
	if len(text) > 1 && strings.HasPrefix(text, semanticMark) {
		return tokenKindSemantic, TerminalClassNil, nil
	}
	if len(text) > 1 && strings.HasPrefix(text, errNameMark) {
		return tokenKindTerminal, TerminalClassErrorName, nil
	}
	if _, ok := operators[text]; ok {
		return tokenKindTerminal, TerminalClassOperator, nil
	}
	if _, ok := punctuations[text]; ok {
		return tokenKindTerminal, TerminalClassPunctuation, nil
	}
	if _, ok := brackets[text]; ok {
		return tokenKindTerminal, TerminalClassBracket, nil
	}
	switch text {
	case NumText, IntegerText:
		return tokenKindTerminal, TerminalClassNumeric, nil
	case IdentifierText:
		return tokenKindTerminal, TerminalClassIdentifier, nil
	}
	if strings.HasPrefix(text, ntOpenMark) {
		return tokenKindNonTerminal, TerminalClassNil, nil
	}
	if len([]rune(text)) == 1 && !isWordChar([]rune(text)[0]) {
		return tokenKindInvalid, TerminalClassNil, lexErrInvalidChar
	}
	if probabilistic {
		return tokenKindTerminal, TerminalClassDictWord, nil
	}
	return tokenKindInvalid, TerminalClassNil, lexErrDictWord
}

// isWordChar reports whether c may be a part of a multi-character word.
func isWordChar(c rune) bool {
	switch c {
	case '%', '$':
		return true
	case ';', '[', ']', '{', '|', '}':
		return false
	}
	return c >= '0' && c <= '\u00A0'
}
