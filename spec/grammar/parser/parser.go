package parser

import (
	"io"
	"strconv"

	verr "github.com/nihei9/llgram/error"
)

type RootNode struct {
	Productions   []*ProductionNode
	Probabilistic bool

	// LexicalErrors lists every lexical error found while reading the source. Errors in tokens the
	// parser never needed do not prevent parsing.
	LexicalErrors verr.SpecErrors
}

// ProductionNode is one `<LHS> ::= ... %EOL` statement. Probability is set only in probabilistic
// grammars.
type ProductionNode struct {
	LHS         *ElementNode
	Probability float64
	RHS         []*ElementNode
	Pos         Position
}

type ElementKind string

const (
	ElementKindTerminal      = ElementKind("terminal")
	ElementKindNonTerminal   = ElementKind("non-terminal")
	ElementKindSemanticToken = ElementKind("semantic token")
)

type ElementNode struct {
	Kind  ElementKind
	Class TerminalClass
	Text  string
	Pos   Position
}

type parseConfig struct {
	probabilistic bool
}

type ParseOption func(config *parseConfig)

// ProbabilisticGrammar makes the parser read a probabilistic grammar: every rule operator is
// followed by a probability, and unknown words are dictionary-word terminals.
func ProbabilisticGrammar() ParseOption {
	return func(config *parseConfig) {
		config.probabilistic = true
	}
}

func Parse(src io.Reader, opts ...ParseOption) (*RootNode, error) {
	config := &parseConfig{}
	for _, opt := range opts {
		opt(config)
	}

	p, err := newParser(src, config.probabilistic)
	if err != nil {
		return nil, err
	}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	tracer().Infof("parsed %v productions; %v tokens, %v lexical errors", len(root.Productions), len(p.lex.tokens), len(p.lex.errs))
	return root, nil
}

type parser struct {
	lex           *lexer
	probabilistic bool
	peekedTok     *token
	lastTok       *token
}

func newParser(src io.Reader, probabilistic bool) (*parser, error) {
	lex, err := newLexer(src, probabilistic)
	if err != nil {
		return nil, err
	}
	return &parser{
		lex:           lex,
		probabilistic: probabilistic,
	}, nil
}

func (p *parser) parse() (root *RootNode, retErr error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		err, ok := v.(error)
		if !ok {
			panic(v)
		}
		retErr = err
	}()
	return p.parseRoot(), nil
}

func (p *parser) parseRoot() *RootNode {
	root := &RootNode{
		Probabilistic: p.probabilistic,
	}
	for {
		prod := p.parseProduction()
		if prod == nil {
			break
		}
		root.Productions = append(root.Productions, prod)
	}
	root.LexicalErrors = p.lex.errs
	return root
}

func (p *parser) parseProduction() *ProductionNode {
	if p.consume(tokenKindEOF) {
		return nil
	}
	if !p.consume(tokenKindNonTerminal) {
		p.raiseSyntaxError(synErrNoLHS, p.peek())
	}
	lhs := p.elementNode(ElementKindNonTerminal, p.lastTok)

	if !p.consume(tokenKindRuleOp) {
		p.raiseSyntaxError(synErrNoRuleOp, p.peek())
	}

	var prob float64
	if p.probabilistic {
		if !p.consume(tokenKindProbability) {
			p.raiseSyntaxError(synErrNoProbability, p.peek())
		}
		v, err := strconv.ParseFloat(p.lastTok.text, 64)
		if err != nil || v < 0 || v > 1 {
			p.raiseSyntaxError(synErrInvalidProbability, p.lastTok)
		}
		prob = v
	}

	rhs := []*ElementNode{}
	for {
		if p.consume(tokenKindEOL) {
			break
		}
		// EOF also terminates the last statement; it is consumed by the next call.
		if p.peek().kind == tokenKindEOF {
			break
		}
		rhs = append(rhs, p.parseElement())
	}

	return &ProductionNode{
		LHS:         lhs,
		Probability: prob,
		RHS:         rhs,
		Pos:         lhs.Pos,
	}
}

func (p *parser) parseElement() *ElementNode {
	switch {
	case p.consume(tokenKindSemantic):
		return p.elementNode(ElementKindSemanticToken, p.lastTok)
	case p.consume(tokenKindNonTerminal):
		return p.elementNode(ElementKindNonTerminal, p.lastTok)
	case p.consume(tokenKindTerminal):
		return p.elementNode(ElementKindTerminal, p.lastTok)
	}
	p.raiseSyntaxError(synErrUnexpectedToken, p.peek())
	return nil
}

func (p *parser) elementNode(kind ElementKind, tok *token) *ElementNode {
	return &ElementNode{
		Kind:  kind,
		Class: tok.class,
		Text:  tok.text,
		Pos:   tok.pos,
	}
}

func (p *parser) peek() *token {
	if p.peekedTok == nil {
		tok, err := p.lex.next()
		if err != nil {
			panic(err)
		}
		p.peekedTok = tok
	}
	return p.peekedTok
}

func (p *parser) consume(expected tokenKind) bool {
	tok := p.peek()
	if tok.kind == tokenKindInvalid {
		p.raiseSyntaxError(tok.err, tok)
	}
	if tok.kind != expected {
		return false
	}
	p.peekedTok = nil
	p.lastTok = tok
	return true
}

func (p *parser) raiseSyntaxError(cause error, tok *token) {
	panic(&verr.SpecError{
		Cause:  cause,
		Detail: tok.text,
		Row:    tok.pos.Row,
		Col:    tok.pos.Col,
	})
}
