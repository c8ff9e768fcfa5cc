package lkml

import (
	"errors"
	"fmt"
	"os"
)

// ParseFile reads and parses a LookML file.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read LookML file %s: %w", path, err)
	}

	return ParseNamed(path, data)
}

// ParseNamed parses LookML source read from file. The name is recorded on
// the Document and on any *ParseError.
func ParseNamed(file string, data []byte) (*Document, error) {
	doc, err := Parse(data)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.File = file
		}

		return nil, err
	}

	doc.File = file

	return doc, nil
}

// Parse parses LookML source into a Document.
// Malformed input returns a *ParseError.
func Parse(data []byte) (*Document, error) {
	tokens, err := Lex(string(data))
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}

	nodes, err := p.parsePairs(TokEOF)
	if err != nil {
		return nil, err
	}

	return &Document{Nodes: nodes}, nil
}

type parser struct {
	tokens []Token
	pos    int
}

// parsePairs reads pairs until the closing token, which is not consumed.
func (p *parser) parsePairs(closing TokenKind) ([]*Node, error) {
	var nodes []*Node

	for !p.match(closing) {
		if p.match(TokEOF) {
			return nil, p.errorf("unexpected end of file, expected %s", closing)
		}

		node, err := p.parsePair()
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, node)
	}

	return nodes, nil
}

func (p *parser) parsePair() (*Node, error) {
	key, err := p.expect(TokLiteral)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokColon); err != nil {
		return nil, err
	}

	node := &Node{Key: key.Value, Line: key.Line, Column: key.Column}

	return node, p.parseValue(node)
}

func (p *parser) parseValue(node *Node) error {
	tok := p.current()

	switch tok.Kind {
	case TokQuoted:
		p.advance()

		node.Kind = KindQuoted
		node.Value = tok.Value

		return nil
	case TokExpression:
		p.advance()

		node.Kind = KindExpression
		node.Value = tok.Value

		return nil
	case TokLiteral:
		p.advance()

		if !p.match(TokLBrace) {
			node.Kind = KindLiteral
			node.Value = tok.Value

			return nil
		}

		node.Name = tok.Value

		return p.parseBlock(node)
	case TokLBrace:
		return p.parseBlock(node)
	case TokLBracket:
		return p.parseList(node)
	default:
		return p.errorf("unexpected %s after %q", tok.Kind, node.Key+":")
	}
}

func (p *parser) parseBlock(node *Node) error {
	if _, err := p.expect(TokLBrace); err != nil {
		return err
	}

	children, err := p.parsePairs(TokRBrace)
	if err != nil {
		return err
	}

	p.advance() // closing brace

	node.Kind = KindBlock
	node.Children = children

	return nil
}

func (p *parser) parseList(node *Node) error {
	if _, err := p.expect(TokLBracket); err != nil {
		return err
	}

	node.Kind = KindList

	for !p.match(TokRBracket) {
		item, err := p.parseItem()
		if err != nil {
			return err
		}

		node.Items = append(node.Items, item)

		if p.match(TokComma) {
			p.advance()
			continue
		}

		if !p.match(TokRBracket) {
			return p.errorf("expected ',' or ']' in list %q, got %s", node.Key, p.current().Kind)
		}
	}

	p.advance() // closing bracket

	return nil
}

func (p *parser) parseItem() (*Node, error) {
	tok := p.current()

	switch tok.Kind {
	case TokLiteral:
		if p.peek(1).Kind == TokColon {
			return p.parsePair()
		}

		p.advance()

		return &Node{Kind: KindLiteral, Value: tok.Value, Line: tok.Line, Column: tok.Column}, nil
	case TokQuoted:
		p.advance()

		return &Node{Kind: KindQuoted, Value: tok.Value, Line: tok.Line, Column: tok.Column}, nil
	case TokLBrace:
		node := &Node{Line: tok.Line, Column: tok.Column}

		return node, p.parseBlock(node)
	default:
		return nil, p.errorf("unexpected %s in list", tok.Kind)
	}
}

func (p *parser) current() Token {
	return p.peek(0)
}

func (p *parser) peek(offset int) Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}

	return p.tokens[i]
}

func (p *parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *parser) match(kind TokenKind) bool {
	return p.current().Kind == kind
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok := p.current()
	if tok.Kind != kind {
		return Token{}, p.errorf("expected %s, got %s", kind, describe(tok))
	}

	p.advance()

	return tok, nil
}

func (p *parser) errorf(format string, args ...any) *ParseError {
	tok := p.current()
	return newParseError(tok.Line, tok.Column, format, args...)
}

func describe(tok Token) string {
	if tok.Kind == TokLiteral || tok.Kind == TokQuoted {
		return fmt.Sprintf("%s %q", tok.Kind, tok.Value)
	}

	return tok.Kind.String()
}
