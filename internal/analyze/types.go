package analyze

import "lookml-builder/internal/common"

// RawType is the inventory bucket of a field.
type RawType int

const (
	RawString RawType = iota
	RawNumber
	RawTime
	RawBoolean
)

// String returns the bucket name.
func (t RawType) String() string {
	switch t {
	case RawString:
		return "string"
	case RawNumber:
		return "number"
	case RawTime:
		return "time"
	case RawBoolean:
		return "boolean"
	default:
		return common.UnknownStr
	}
}

// Declaration is a field as declared in LookML, before bucketing.
type Declaration struct {
	Name string
	// Type is the declared type tag, empty when the declaration has none.
	Type string
	// IsGroup is true for dimension_group declarations.
	IsGroup bool
	// View is the position of the declaring view in its document.
	View int
}

// Field is a name with its inventory bucket.
type Field struct {
	Name string
	Type RawType
}

// Inventory holds the field names of one view, grouped by raw type.
// Each bucket preserves first-appearance order from the source.
type Inventory struct {
	ViewName string
	Strings  []string
	Numbers  []string
	Times    []string
	Booleans []string
}

// Fields returns every field in bucket order: strings, numbers, times, booleans.
func (inv *Inventory) Fields() []Field {
	out := make([]Field, 0, inv.Len())

	for _, bucket := range []struct {
		names []string
		typ   RawType
	}{
		{inv.Strings, RawString},
		{inv.Numbers, RawNumber},
		{inv.Times, RawTime},
		{inv.Booleans, RawBoolean},
	} {
		for _, name := range bucket.names {
			out = append(out, Field{Name: name, Type: bucket.typ})
		}
	}

	return out
}

// Names returns every field name in bucket order.
func (inv *Inventory) Names() []string {
	fields := inv.Fields()

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Name)
	}

	return out
}

// TypeOf returns the bucket of the named field.
func (inv *Inventory) TypeOf(name string) (RawType, bool) {
	for _, f := range inv.Fields() {
		if f.Name == name {
			return f.Type, true
		}
	}

	return 0, false
}

// Has reports whether the named field is in any bucket.
func (inv *Inventory) Has(name string) bool {
	_, ok := inv.TypeOf(name)
	return ok
}

// Len returns the total number of fields.
func (inv *Inventory) Len() int {
	return len(inv.Strings) + len(inv.Numbers) + len(inv.Times) + len(inv.Booleans)
}
