package plan

import (
	"lookml-builder/internal/diagnostic"
)

// MeasureType is the aggregation of every generated measure.
const MeasureType = "sum"

// MeasureSuffix is appended to a field name to form its measure name.
const MeasureSuffix = "_total"

// Result is the role assignment for one view.
type Result struct {
	ViewName string
	// PrimaryKey is the primary key field, empty when none was found.
	PrimaryKey string
	IDs        []string
	Flags      []string
	Dimensions []string
	Measures   []Measure
	Filters    []string
	// Decisions explains every role assignment, in classification order.
	Decisions []Decision
	// Diagnostics reports override names that did not fit the inventory.
	Diagnostics diagnostic.Diagnostics
}

// Measure is a generated aggregate over one field.
type Measure struct {
	// Name is "{Field}_total".
	Name string
	// Field is the base field the measure aggregates.
	Field string
	// Type is always MeasureType.
	Type string
	// SQL is the LookML reference "${Field}".
	SQL string
}

// Decision records why a field received a role.
type Decision struct {
	Field  string
	Role   Role
	Source Source
	// Rule is the match rule name that fired.
	Rule string
}

// NewMeasure builds the sum measure for a field.
func NewMeasure(field string) Measure {
	return Measure{
		Name:  field + MeasureSuffix,
		Field: field,
		Type:  MeasureType,
		SQL:   "${" + field + "}",
	}
}

// HasPrimaryKey reports whether a primary key was assigned.
func (r *Result) HasPrimaryKey() bool {
	return r.PrimaryKey != ""
}

// PrimaryKeys returns the primary key as a zero- or one-element list.
func (r *Result) PrimaryKeys() []string {
	if r.PrimaryKey == "" {
		return []string{}
	}

	return []string{r.PrimaryKey}
}

// MeasureNames returns the measure names in order.
func (r *Result) MeasureNames() []string {
	out := make([]string, 0, len(r.Measures))
	for _, m := range r.Measures {
		out = append(out, m.Name)
	}

	return out
}

// DecisionFor returns the first decision for the field with the given role.
func (r *Result) DecisionFor(field string, role Role) (Decision, bool) {
	for _, d := range r.Decisions {
		if d.Field == field && d.Role == role {
			return d, true
		}
	}

	return Decision{}, false
}
