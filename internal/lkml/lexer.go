package lkml

import (
	"strings"
	"unicode"
)

var punctuation = map[rune]TokenKind{
	':': TokColon,
	'{': TokLBrace,
	'}': TokRBrace,
	'[': TokLBracket,
	']': TokRBracket,
	',': TokComma,
}

// Lexer tokenizes LookML source.
type Lexer struct {
	input []rune
	pos   int
	line  int
	col   int

	// lastLiteral is the most recent literal, used to spot expression keys.
	lastLiteral string
	// expectExpr is set after the colon of an expression key.
	expectExpr bool
	exprKey    string
}

// NewLexer creates a lexer for the input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input), line: 1, col: 1}
}

// Lex tokenizes the entire input. The last token is always TokEOF.
func Lex(input string) ([]Token, error) {
	lexer := NewLexer(input)

	var tokens []Token

	for {
		tok, err := lexer.Next()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
		if tok.Kind == TokEOF {
			return tokens, nil
		}
	}
}

// IsExpressionKey reports whether the value of key is read raw up to ";;".
func IsExpressionKey(key string) bool {
	return strings.HasPrefix(key, "sql") ||
		strings.HasSuffix(key, "_sql") ||
		strings.HasPrefix(key, "expression") ||
		key == "html"
}

// Next returns the next token.
func (l *Lexer) Next() (Token, error) {
	l.skipSpaceAndComments()

	if l.pos >= len(l.input) {
		if l.expectExpr {
			return Token{}, l.errorf("missing expression for %q", l.exprKey)
		}

		return Token{Kind: TokEOF, Line: l.line, Column: l.col}, nil
	}

	if l.expectExpr {
		l.expectExpr = false
		return l.lexExpression()
	}

	line, col := l.line, l.col
	ch := l.input[l.pos]

	if kind, ok := punctuation[ch]; ok {
		l.advance()

		if kind == TokColon && IsExpressionKey(l.lastLiteral) {
			l.expectExpr = true
			l.exprKey = l.lastLiteral
		}

		l.lastLiteral = ""

		return Token{Kind: kind, Value: string(ch), Line: line, Column: col}, nil
	}

	if ch == '"' {
		l.lastLiteral = ""
		return l.lexQuoted()
	}

	if !isLiteralRune(ch) {
		return Token{}, l.errorf("unexpected character %q", ch)
	}

	start := l.pos
	for l.pos < len(l.input) && isLiteralRune(l.input[l.pos]) {
		l.advance()
	}

	value := string(l.input[start:l.pos])
	l.lastLiteral = value

	return Token{Kind: TokLiteral, Value: value, Line: line, Column: col}, nil
}

func (l *Lexer) lexQuoted() (Token, error) {
	line, col := l.line, l.col

	l.advance() // opening quote

	var sb strings.Builder

	for l.pos < len(l.input) {
		ch := l.input[l.pos]

		switch ch {
		case '\\':
			if l.pos+1 < len(l.input) {
				l.advance()
				sb.WriteRune(l.input[l.pos])
				l.advance()

				continue
			}
		case '"':
			l.advance()
			return Token{Kind: TokQuoted, Value: sb.String(), Line: line, Column: col}, nil
		}

		sb.WriteRune(ch)
		l.advance()
	}

	return Token{}, &ParseError{Line: line, Column: col, Msg: "unterminated string"}
}

func (l *Lexer) lexExpression() (Token, error) {
	line, col := l.line, l.col
	start := l.pos

	for l.pos < len(l.input) {
		if l.input[l.pos] == ';' && l.pos+1 < len(l.input) && l.input[l.pos+1] == ';' {
			value := strings.TrimSpace(string(l.input[start:l.pos]))

			l.advance()
			l.advance()

			return Token{Kind: TokExpression, Value: value, Line: line, Column: col}, nil
		}

		l.advance()
	}

	return Token{}, &ParseError{Line: line, Column: col, Msg: "expression is not terminated by ';;'"}
}

func (l *Lexer) skipSpaceAndComments() {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]

		switch {
		case unicode.IsSpace(ch):
			l.advance()
		case ch == '#' && !l.expectExpr:
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) advance() {
	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	l.pos++
}

func (l *Lexer) errorf(format string, args ...any) *ParseError {
	return newParseError(l.line, l.col, format, args...)
}

func isLiteralRune(r rune) bool {
	if unicode.IsSpace(r) {
		return false
	}

	return !strings.ContainsRune(`:{}[],"#;`, r)
}
