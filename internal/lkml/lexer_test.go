package lkml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Kind)
	}

	return out
}

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenKind
		values   []string
	}{
		{
			name:     "pair",
			input:    "type: number",
			expected: []TokenKind{TokLiteral, TokColon, TokLiteral, TokEOF},
			values:   []string{"type", ":", "number", ""},
		},
		{
			name:     "quoted with escape",
			input:    `label: "say \"hi\""`,
			expected: []TokenKind{TokLiteral, TokColon, TokQuoted, TokEOF},
			values:   []string{"label", ":", `say "hi"`, ""},
		},
		{
			name:     "expression keeps braces and hashes",
			input:    "sql: ${TABLE}.id # not a comment ;;",
			expected: []TokenKind{TokLiteral, TokColon, TokExpression, TokEOF},
			values:   []string{"sql", ":", "${TABLE}.id # not a comment", ""},
		},
		{
			name:     "comment skipped",
			input:    "# header\nview: +orders { }",
			expected: []TokenKind{TokLiteral, TokColon, TokLiteral, TokLBrace, TokRBrace, TokEOF},
			values:   []string{"view", ":", "+orders", "{", "}", ""},
		},
		{
			name:     "list",
			input:    "timeframes: [raw, date]",
			expected: []TokenKind{TokLiteral, TokColon, TokLBracket, TokLiteral, TokComma, TokLiteral, TokRBracket, TokEOF},
			values:   []string{"timeframes", ":", "[", "raw", ",", "date", "]", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kinds(tokens))

			values := make([]string, 0, len(tokens))
			for _, tok := range tokens {
				values = append(values, tok.Value)
			}

			assert.Equal(t, tt.values, values)
		})
	}
}

func TestLex_Positions(t *testing.T) {
	tokens, err := Lex("view: a {\n  dimension: b {}\n}")
	require.NoError(t, err)

	// "dimension" starts at line 2, column 3
	assert.Equal(t, "dimension", tokens[4].Value)
	assert.Equal(t, 2, tokens[4].Line)
	assert.Equal(t, 3, tokens[4].Column)
}

func TestLex_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"unterminated string", `label: "oops`, "unterminated string"},
		{"unterminated expression", "sql: ${TABLE}.id", "not terminated"},
		{"stray semicolons", "label: x ;;", "unexpected character"},
		{"missing expression", "sql:", "missing expression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Lex(tt.input)
			require.Error(t, err)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Contains(t, perr.Msg, tt.msg)
		})
	}
}

func TestIsExpressionKey(t *testing.T) {
	for _, key := range []string{"sql", "sql_on", "sql_table_name", "html", "expression", "filter_sql", "expression_custom_filter"} {
		assert.True(t, IsExpressionKey(key), key)
	}

	for _, key := range []string{"type", "label", "html_label", "mysql"} {
		assert.False(t, IsExpressionKey(key), key)
	}
}
