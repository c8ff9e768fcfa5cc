package match

import "strings"

// Kind selects how a Rule compares a field name against its patterns.
type Kind int

const (
	// Contains matches when the name contains any pattern as a substring.
	Contains Kind = iota
	// Equals matches when the name equals any pattern.
	Equals
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Contains:
		return "contains"
	case Equals:
		return "equals"
	default:
		return "unknown"
	}
}

// Rule is a single name-pattern heuristic.
type Rule struct {
	// Name identifies the rule in decisions and diagnostics.
	Name string
	// Kind is the comparison applied to each pattern.
	Kind Kind
	// Patterns are compared against the field name in order.
	Patterns []string
	// CaseSensitive disables lowercasing of the field name.
	// Patterns are always used as written.
	CaseSensitive bool
}

// Match reports whether name satisfies the rule, and the pattern that matched.
func (r Rule) Match(name string) (string, bool) {
	subject := name
	if !r.CaseSensitive {
		subject = strings.ToLower(name)
	}

	for _, p := range r.Patterns {
		var ok bool

		switch r.Kind {
		case Contains:
			ok = strings.Contains(subject, p)
		case Equals:
			ok = subject == p
		}

		if ok {
			return p, true
		}
	}

	return "", false
}

// Matches is Match without the matched pattern.
func (r Rule) Matches(name string) bool {
	_, ok := r.Match(name)
	return ok
}

// RuleSet is an ordered list of rules; earlier rules take precedence.
type RuleSet []Rule

// First returns the first rule matching name.
func (rs RuleSet) First(name string) (Rule, bool) {
	for _, r := range rs {
		if r.Matches(name) {
			return r, true
		}
	}

	return Rule{}, false
}

// Any reports whether any rule matches name.
func (rs RuleSet) Any(name string) bool {
	_, ok := rs.First(name)
	return ok
}
