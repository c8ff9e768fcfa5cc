package mapping

import (
	"lookml-builder/internal/common"
	"lookml-builder/internal/diagnostic"
	"lookml-builder/internal/match"
)

// Config is the root of a YAML configuration file.
type Config struct {
	Classification Policy     `yaml:"classification"`
	Formatting     Formatting `yaml:"formatting"`
	Ontology       Ontology   `yaml:"ontology,omitempty"`

	// Warnings holds the non-fatal validation findings of the loaded file.
	Warnings []diagnostic.Diagnostic `yaml:"-"`
}

// Policy holds the classification overrides. It is read-only once loaded.
type Policy struct {
	// ExcludeFromFilters lists fields that never get a filter.
	ExcludeFromFilters NameList `yaml:"exclude_from_filters"`
	// ForceAsMeasures lists fields that always get a sum measure.
	ForceAsMeasures NameList `yaml:"force_as_measures"`
	// ForceAsFlags lists NUMBER fields to treat as flags.
	ForceAsFlags NameList `yaml:"force_as_flags"`
	// ForceAsIDs lists STRING fields to treat as IDs.
	ForceAsIDs NameList `yaml:"force_as_ids"`
	// PrimaryKey replaces automatic primary key detection when set.
	PrimaryKey string `yaml:"primary_key,omitempty"`
	// Strict turns override names that do not fit the view into errors.
	Strict bool `yaml:"strict,omitempty"`
}

// Formatting holds the name patterns that pick a measure's value format.
type Formatting struct {
	CurrencyPatterns   []string `yaml:"currency_patterns"`
	PercentagePatterns []string `yaml:"percentage_patterns"`
	CountPatterns      []string `yaml:"count_patterns"`
}

// Ontology describes entities and the joins between views.
type Ontology struct {
	Project       *Project          `yaml:"project,omitempty" json:"project,omitempty"`
	Entities      map[string]Entity `yaml:"entities,omitempty" json:"entities,omitempty"`
	Relationships []Relationship    `yaml:"relationships,omitempty" json:"relationships,omitempty"`
}

// Project identifies the LookML project an ontology belongs to.
type Project struct {
	Name             string `yaml:"name" json:"name"`
	GovernanceStatus string `yaml:"governance_status" json:"governance_status"`
}

// Entity is a business entity backed by one view.
type Entity struct {
	Keys       []string `yaml:"keys" json:"keys"`
	Attributes []string `yaml:"attributes" json:"attributes"`
	PIITags    []string `yaml:"pii_tags" json:"pii_tags"`
}

// RelationshipAny matches every view in Relationship.From.
const RelationshipAny = "any"

// Default join parameters.
const (
	DefaultJoinType     = "left_outer"
	DefaultRelationship = "many_to_one"
)

// Relationship is a join from one view to another.
type Relationship struct {
	From         string `yaml:"from" json:"from"`
	To           string `yaml:"to" json:"to"`
	Type         string `yaml:"type,omitempty" json:"type,omitempty"`
	Relationship string `yaml:"relationship,omitempty" json:"relationship,omitempty"`
	// Via is the sql_on clause, copied verbatim.
	Via string `yaml:"via" json:"via"`
}

// AppliesTo reports whether the relationship joins from the given view.
func (r Relationship) AppliesTo(view string) bool {
	return r.From == view || r.From == RelationshipAny
}

// JoinType returns the join type, defaulting to left_outer.
func (r Relationship) JoinType() string {
	if r.Type == "" {
		return DefaultJoinType
	}

	return r.Type
}

// Cardinality returns the relationship, defaulting to many_to_one.
func (r Relationship) Cardinality() string {
	if r.Relationship == "" {
		return DefaultRelationship
	}

	return r.Relationship
}

// Default formatting patterns.
var (
	DefaultCurrencyPatterns   = []string{"revenue", "cost", "earning", "amount", "price"}
	DefaultPercentagePatterns = []string{"rate", "percent", "pct"}
	DefaultCountPatterns      = []string{"count", "total", "num"}
)

// FormatCategory is the display format family of a measure.
type FormatCategory int

const (
	FormatNumber FormatCategory = iota
	FormatCurrency
	FormatPercentage
	FormatCount
)

// String returns the category name.
func (c FormatCategory) String() string {
	switch c {
	case FormatNumber:
		return "number"
	case FormatCurrency:
		return "currency"
	case FormatPercentage:
		return "percentage"
	case FormatCount:
		return "count"
	default:
		return common.UnknownStr
	}
}

// ValueFormat returns the LookML value_format string for the category.
func (c FormatCategory) ValueFormat() string {
	switch c {
	case FormatCurrency:
		return "$#,##0.00"
	case FormatPercentage:
		return "0.00%"
	default:
		return "#,##0"
	}
}

// Rules returns the format rules in precedence order.
func (f Formatting) Rules() match.RuleSet {
	return match.FormatRules(f.CurrencyPatterns, f.PercentagePatterns, f.CountPatterns)
}

// FormatFor returns the category of a measure's base field name.
// The first matching category wins; FormatNumber is the fallback.
func (f Formatting) FormatFor(field string) FormatCategory {
	rule, ok := f.Rules().First(field)
	if !ok {
		return FormatNumber
	}

	switch rule.Name {
	case match.RuleNameCurrency:
		return FormatCurrency
	case match.RuleNamePercentage:
		return FormatPercentage
	default:
		return FormatCount
	}
}
