package mapping

import (
	"fmt"

	"lookml-builder/internal/diagnostic"
)

// Validate checks a configuration for structural problems. It does not look
// at any view: override names are checked against an inventory during
// classification.
func Validate(cfg *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError("config_is_nil", "configuration is nil", "", "")
		return res
	}

	validatePatterns(res, "formatting.currency_patterns", cfg.Formatting.CurrencyPatterns)
	validatePatterns(res, "formatting.percentage_patterns", cfg.Formatting.PercentagePatterns)
	validatePatterns(res, "formatting.count_patterns", cfg.Formatting.CountPatterns)

	for _, entry := range []struct {
		key  string
		list NameList
	}{
		{"classification.exclude_from_filters", cfg.Classification.ExcludeFromFilters},
		{"classification.force_as_measures", cfg.Classification.ForceAsMeasures},
		{"classification.force_as_flags", cfg.Classification.ForceAsFlags},
		{"classification.force_as_ids", cfg.Classification.ForceAsIDs},
	} {
		if entry.list.Contains("") {
			res.AddError("empty_name", "override lists must not contain empty names", "", entry.key)
		}
	}

	for i, rel := range cfg.Ontology.Relationships {
		path := fmt.Sprintf("ontology.relationships[%d]", i)

		if rel.To == "" {
			res.AddError("invalid_relationship", "relationship needs a 'to' view", "", path)
		}

		if rel.Via == "" {
			res.AddError("invalid_relationship", "relationship needs a 'via' join clause", "", path)
		}

		if rel.From == "" {
			res.AddWarning("unused_relationship",
				fmt.Sprintf("relationship has no 'from' view and is never joined (use %q to join from every view)", RelationshipAny),
				"", path)
		}
	}

	return res
}

func validatePatterns(res *diagnostic.Diagnostics, key string, patterns []string) {
	for _, p := range patterns {
		if p == "" {
			res.AddError("empty_pattern", "an empty pattern would match every field", "", key)
			return
		}
	}
}
