package match

// Rule names, as recorded in classification decisions.
const (
	RuleNameIDString       = "name_id_string"
	RuleNameDateTime       = "name_date_time"
	RuleNamePKExact        = "pk_exact"
	RuleNamePKMarker       = "pk_marker"
	RuleNamePKViewTerm     = "pk_view_term"
	RuleNameIDMarker       = "id_marker"
	RuleNameCurrency       = "currency"
	RuleNamePercentage     = "percentage"
	RuleNameCount          = "count"
	RuleNameOverride       = "override"
	RuleNameExplicitPK     = "explicit_primary_key"
	RuleNameRawType        = "raw_type"
	RuleNameRemainder      = "remainder"
	RuleNameNumericMeasure = "numeric_measure"
)

// IDNameRule sends any declared field whose name contains "_id" to the STRING
// bucket regardless of its declared type. The check is case-sensitive.
var IDNameRule = Rule{
	Name:          RuleNameIDString,
	Kind:          Contains,
	Patterns:      []string{"_id"},
	CaseSensitive: true,
}

// DateNameRule moves STRING fields whose name contains "_date" to TIME after
// the inventory is built. The check is case-sensitive.
var DateNameRule = Rule{
	Name:          RuleNameDateTime,
	Kind:          Contains,
	Patterns:      []string{"_date"},
	CaseSensitive: true,
}

// PKExactRule matches conventional primary key names.
var PKExactRule = Rule{
	Name:     RuleNamePKExact,
	Kind:     Equals,
	Patterns: []string{"primary_key", "pk", "synthetic_key", "sk", "id"},
}

// PKMarkerRule matches names carrying a primary or synthetic key marker.
var PKMarkerRule = Rule{
	Name:     RuleNamePKMarker,
	Kind:     Contains,
	Patterns: []string{"_pk", "_sk"},
}

// IDMarkerRule matches identifier-like STRING fields.
var IDMarkerRule = Rule{
	Name:     RuleNameIDMarker,
	Kind:     Contains,
	Patterns: []string{"_id", "_krn", "realm"},
}

// PKViewTermRule matches "{term}_id" for every key term of the view.
func PKViewTermRule(viewName string) Rule {
	terms := KeyTerms(viewName)

	patterns := make([]string, 0, len(terms))
	for _, term := range terms {
		patterns = append(patterns, term+"_id")
	}

	return Rule{
		Name:     RuleNamePKViewTerm,
		Kind:     Equals,
		Patterns: patterns,
	}
}

// PrimaryKeyRules returns the automatic primary key rules for a view, in
// precedence order.
func PrimaryKeyRules(viewName string) RuleSet {
	return RuleSet{PKExactRule, PKMarkerRule, PKViewTermRule(viewName)}
}

// FormatRules builds the display-format category rules from pattern lists.
// Category order is currency, percentage, count.
func FormatRules(currency, percentage, count []string) RuleSet {
	return RuleSet{
		{Name: RuleNameCurrency, Kind: Contains, Patterns: currency},
		{Name: RuleNamePercentage, Kind: Contains, Patterns: percentage},
		{Name: RuleNameCount, Kind: Contains, Patterns: count},
	}
}
