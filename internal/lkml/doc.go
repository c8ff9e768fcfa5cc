// Package lkml reads LookML source into a generic node tree.
//
// The grammar covered is the structural subset every LookML file shares:
//
//	document := pair*
//	pair     := key ":" value
//	value    := "quoted" | literal | literal? "{" pair* "}" | "[" item ("," item)* "]" | expression ";;"
//	item     := pair | "quoted" | literal | "{" pair* "}"
//
// Values of keys that start with "sql" or "expression", end in "_sql", or
// equal "html" are read raw up to the closing ";;". A "#" outside strings
// and expressions starts a comment that runs to the end of the line.
//
// The parser does not validate LookML semantics: unknown keys, missing
// required parameters and invalid values are all accepted.
package lkml
