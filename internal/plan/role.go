package plan

import "lookml-builder/internal/common"

//go:generate go tool stringer -type=Role -linecomment -output=role_string.go

// Role is the semantic role assigned to a field.
type Role int

const (
	RolePrimaryKey Role = iota // primary_key
	RoleID                     // id
	RoleFlag                   // flag
	RoleDimension              // dimension
	RoleMeasure                // measure
	RoleFilter                 // filter
)

// Source indicates where a classification decision originated.
type Source int

const (
	// SourceAuto - detected by the built-in rules.
	SourceAuto Source = iota
	// SourceOverride - requested by the classification policy.
	SourceOverride
)

// String returns a human-readable source name.
func (s Source) String() string {
	switch s {
	case SourceAuto:
		return "auto"
	case SourceOverride:
		return "override"
	default:
		return common.UnknownStr
	}
}
