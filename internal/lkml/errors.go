package lkml

import "fmt"

// ParseError reports malformed LookML at a source position.
type ParseError struct {
	// File is the source path, empty when parsing raw bytes.
	File   string
	Line   int
	Column int
	Msg    string
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Msg)
	}

	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

func newParseError(line, col int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Column: col, Msg: fmt.Sprintf(format, args...)}
}
