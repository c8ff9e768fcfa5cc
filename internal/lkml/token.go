package lkml

// TokenKind is the type of a lexical token.
type TokenKind int

const (
	TokLiteral TokenKind = iota
	TokQuoted
	TokExpression
	TokColon
	TokLBrace
	TokRBrace
	TokLBracket
	TokRBracket
	TokComma
	TokEOF
)

// String returns a readable token kind name for error messages.
func (k TokenKind) String() string {
	switch k {
	case TokLiteral:
		return "literal"
	case TokQuoted:
		return "quoted string"
	case TokExpression:
		return "expression"
	case TokColon:
		return "':'"
	case TokLBrace:
		return "'{'"
	case TokRBrace:
		return "'}'"
	case TokLBracket:
		return "'['"
	case TokRBracket:
		return "']'"
	case TokComma:
		return "','"
	case TokEOF:
		return "end of file"
	default:
		return "unknown"
	}
}

// Token is a lexical token with its source position (1-based).
type Token struct {
	Kind   TokenKind
	Value  string
	Line   int
	Column int
}
