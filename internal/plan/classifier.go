package plan

import (
	"errors"
	"fmt"
	"slices"

	"lookml-builder/internal/analyze"
	"lookml-builder/internal/common"
	"lookml-builder/internal/diagnostic"
	"lookml-builder/internal/mapping"
	"lookml-builder/internal/match"
)

// ErrStrictPolicy is returned by Classify in strict mode when an override
// names a field that is missing from the view or has the wrong raw type.
var ErrStrictPolicy = errors.New("strict mode: classification overrides do not fit the view")

// maxSuggestions caps the "did you mean" hints per unknown override.
const maxSuggestions = 3

// Classifier assigns roles to the fields of an inventory.
type Classifier struct {
	policy mapping.Policy
}

// NewClassifier creates a Classifier for the given policy.
func NewClassifier(policy mapping.Policy) *Classifier {
	return &Classifier{policy: policy}
}

// Classify runs the classification pipeline over inv.
//
// The inventory is never modified. Unknown override names are reported as
// warnings in Result.Diagnostics and otherwise ignored; with a strict policy
// they are errors and Classify also returns an error wrapping
// ErrStrictPolicy alongside the result.
func (c *Classifier) Classify(inv *analyze.Inventory) (*Result, error) {
	res := &Result{
		ViewName:   inv.ViewName,
		IDs:        []string{},
		Flags:      []string{},
		Dimensions: []string{},
		Measures:   []Measure{},
		Filters:    []string{},
	}

	c.checkOverrides(inv, &res.Diagnostics)

	c.assignPrimaryKey(inv, res)
	c.assignIDs(inv, res)
	c.assignFlags(inv, res)
	c.assignDimensions(inv, res)
	c.assignMeasures(inv, res)
	c.assignFilters(inv, res)

	if !res.HasPrimaryKey() {
		res.Diagnostics.AddInfo("no_primary_key", "no field qualifies as the primary key", inv.ViewName, "")
	}

	if c.policy.Strict && res.Diagnostics.HasErrors() {
		return res, fmt.Errorf("%w: %w", ErrStrictPolicy, res.Diagnostics.Error())
	}

	return res, nil
}

func (c *Classifier) assignPrimaryKey(inv *analyze.Inventory, res *Result) {
	keyable := append(common.Clone(inv.Strings), inv.Numbers...)

	// An explicit key that is not a STRING or NUMBER field leaves the view
	// without a primary key; automatic detection is not attempted.
	if pk := c.policy.PrimaryKey; pk != "" {
		if slices.Contains(keyable, pk) {
			res.PrimaryKey = pk
			res.decide(pk, RolePrimaryKey, SourceOverride, match.RuleNameExplicitPK)
		}

		return
	}

	rules := match.PrimaryKeyRules(inv.ViewName)

	for _, name := range keyable {
		if rule, ok := rules.First(name); ok {
			res.PrimaryKey = name
			res.decide(name, RolePrimaryKey, SourceAuto, rule.Name)

			return
		}
	}
}

func (c *Classifier) assignIDs(inv *analyze.Inventory, res *Result) {
	pk := common.NewSet(res.PrimaryKeys())

	for _, name := range inv.Strings {
		if !pk.Has(name) && match.IDMarkerRule.Matches(name) {
			res.IDs = append(res.IDs, name)
			res.decide(name, RoleID, SourceAuto, match.RuleNameIDMarker)
		}
	}

	strs := common.NewSet(inv.Strings)
	ids := common.NewSet(res.IDs)

	for _, name := range c.policy.ForceAsIDs {
		if strs.Has(name) && !ids.Has(name) && !pk.Has(name) {
			ids.Add(name)
			res.IDs = append(res.IDs, name)
			res.decide(name, RoleID, SourceOverride, match.RuleNameOverride)
		}
	}
}

func (c *Classifier) assignFlags(inv *analyze.Inventory, res *Result) {
	for _, name := range inv.Booleans {
		res.Flags = append(res.Flags, name)
		res.decide(name, RoleFlag, SourceAuto, match.RuleNameRawType)
	}

	nums := common.NewSet(inv.Numbers)
	flags := common.NewSet(res.Flags)

	for _, name := range c.policy.ForceAsFlags {
		if nums.Has(name) && !flags.Has(name) {
			flags.Add(name)
			res.Flags = append(res.Flags, name)
			res.decide(name, RoleFlag, SourceOverride, match.RuleNameOverride)
		}
	}
}

func (c *Classifier) assignDimensions(inv *analyze.Inventory, res *Result) {
	res.Dimensions = common.Without(inv.Strings,
		common.NewSet(res.IDs),
		common.NewSet(inv.Times),
		common.NewSet(res.PrimaryKeys()),
	)

	for _, name := range res.Dimensions {
		res.decide(name, RoleDimension, SourceAuto, match.RuleNameRemainder)
	}
}

func (c *Classifier) assignMeasures(inv *analyze.Inventory, res *Result) {
	excluded := common.NewSet(res.Flags, res.IDs, res.Dimensions, res.PrimaryKeys())
	names := common.NewSet[string]()

	for _, name := range common.Without(inv.Numbers, excluded) {
		m := NewMeasure(name)
		names.Add(m.Name)
		res.Measures = append(res.Measures, m)
		res.decide(name, RoleMeasure, SourceAuto, match.RuleNameNumericMeasure)
	}

	// Forced measures bypass the exclusions above but still need a field.
	for _, name := range c.policy.ForceAsMeasures {
		m := NewMeasure(name)
		if !inv.Has(name) || names.Has(m.Name) {
			continue
		}

		names.Add(m.Name)
		res.Measures = append(res.Measures, m)
		res.decide(name, RoleMeasure, SourceOverride, match.RuleNameOverride)
	}
}

func (c *Classifier) assignFilters(inv *analyze.Inventory, res *Result) {
	candidates := append(common.Clone(res.Dimensions), inv.Times...)
	res.Filters = common.Without(candidates, common.NewSet([]string(c.policy.ExcludeFromFilters)))

	for _, name := range res.Filters {
		res.decide(name, RoleFilter, SourceAuto, match.RuleNameRemainder)
	}
}

// checkOverrides reports override names that cannot take effect.
func (c *Classifier) checkOverrides(inv *analyze.Inventory, diags *diagnostic.Diagnostics) {
	severity := diagnostic.DiagnosticWarning
	if c.policy.Strict {
		severity = diagnostic.DiagnosticError
	}

	names := inv.Names()

	unknown := func(key, name string) {
		diags.Add(diagnostic.Diagnostic{
			Severity:    severity,
			Code:        "unknown_override",
			Message:     fmt.Sprintf("%s names a field that is not in the view", key),
			View:        inv.ViewName,
			Field:       name,
			Suggestions: match.Suggest(name, names, maxSuggestions),
		})
	}

	mismatch := func(key, name string, typ analyze.RawType, want ...analyze.RawType) {
		diags.Add(diagnostic.Diagnostic{
			Severity: severity,
			Code:     "override_type_mismatch",
			Message:  fmt.Sprintf("%s expects a %s field, got %s", key, joinTypes(want), typ),
			View:     inv.ViewName,
			Field:    name,
		})
	}

	check := func(key string, list []string, want ...analyze.RawType) {
		for _, name := range list {
			typ, ok := inv.TypeOf(name)

			switch {
			case !ok:
				unknown(key, name)
			case len(want) > 0 && !slices.Contains(want, typ):
				mismatch(key, name, typ, want...)
			}
		}
	}

	if pk := c.policy.PrimaryKey; pk != "" {
		check("primary_key", []string{pk}, analyze.RawString, analyze.RawNumber)
	}

	check("force_as_ids", c.policy.ForceAsIDs, analyze.RawString)
	check("force_as_flags", c.policy.ForceAsFlags, analyze.RawNumber)
	check("force_as_measures", c.policy.ForceAsMeasures)
	check("exclude_from_filters", c.policy.ExcludeFromFilters)
}

func (r *Result) decide(field string, role Role, source Source, rule string) {
	r.Decisions = append(r.Decisions, Decision{Field: field, Role: role, Source: source, Rule: rule})
}

func joinTypes(types []analyze.RawType) string {
	out := ""

	for i, t := range types {
		if i > 0 {
			out += " or "
		}

		out += t.String()
	}

	return out
}
