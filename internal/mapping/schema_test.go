package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatting_FormatFor(t *testing.T) {
	f := DefaultConfig().Formatting

	tests := []struct {
		field    string
		category FormatCategory
		format   string
	}{
		{"revenue", FormatCurrency, "$#,##0.00"},
		{"Unit_Price", FormatCurrency, "$#,##0.00"},
		{"conversion_rate", FormatPercentage, "0.00%"},
		{"discount_pct", FormatPercentage, "0.00%"},
		{"item_count", FormatCount, "#,##0"},
		{"weight", FormatNumber, "#,##0"},
		// currency wins over percentage
		{"cost_rate", FormatCurrency, "$#,##0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got := f.FormatFor(tt.field)
			assert.Equal(t, tt.category, got)
			assert.Equal(t, tt.format, got.ValueFormat())
		})
	}
}

func TestFormatting_EmptyCategoryNeverMatches(t *testing.T) {
	f := Formatting{CurrencyPatterns: []string{}, PercentagePatterns: []string{"rate"}}

	assert.Equal(t, FormatNumber, f.FormatFor("revenue"))
	assert.Equal(t, FormatPercentage, f.FormatFor("rate"))
}

func TestFormatCategory_String(t *testing.T) {
	assert.Equal(t, "currency", FormatCurrency.String())
	assert.Equal(t, "percentage", FormatPercentage.String())
	assert.Equal(t, "count", FormatCount.String())
	assert.Equal(t, "number", FormatNumber.String())
	assert.Equal(t, "unknown", FormatCategory(9).String())
}

func TestRelationship_Defaults(t *testing.T) {
	rel := Relationship{From: RelationshipAny, Type: "inner", Relationship: "one_to_one"}

	assert.True(t, rel.AppliesTo("anything"))
	assert.Equal(t, "inner", rel.JoinType())
	assert.Equal(t, "one_to_one", rel.Cardinality())
}
