package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *Config
		errors   []string
		warnings []string
	}{
		{
			name: "default is valid",
			cfg:  DefaultConfig(),
		},
		{
			name:   "nil config",
			cfg:    nil,
			errors: []string{"config_is_nil"},
		},
		{
			name: "relationship missing to and via",
			cfg: &Config{Ontology: Ontology{Relationships: []Relationship{
				{From: "orders"},
			}}},
			errors: []string{"invalid_relationship", "invalid_relationship"},
		},
		{
			name: "relationship without from is only a warning",
			cfg: &Config{Ontology: Ontology{Relationships: []Relationship{
				{To: "users", Via: "${a.id} = ${b.id}"},
			}}},
			warnings: []string{"unused_relationship"},
		},
		{
			name:   "empty override name",
			cfg:    &Config{Classification: Policy{ForceAsIDs: NameList{"a", ""}}},
			errors: []string{"empty_name"},
		},
		{
			name:   "empty pattern",
			cfg:    &Config{Formatting: Formatting{CountPatterns: []string{"count", ""}}},
			errors: []string{"empty_pattern"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Validate(tt.cfg)
			require.NotNil(t, diags)

			var errCodes, warnCodes []string
			for _, d := range diags.Errors {
				errCodes = append(errCodes, d.Code)
			}

			for _, d := range diags.Warnings {
				warnCodes = append(warnCodes, d.Code)
			}

			assert.Equal(t, tt.errors, errCodes)
			assert.Equal(t, tt.warnings, warnCodes)
		})
	}
}
