// Package match provides the declarative name-pattern rules used to sort
// LookML fields into buckets and roles.
//
// Rules are data, not code paths: each Rule names a match kind (contains or
// equals), a pattern list and its case sensitivity, and a RuleSet reports the
// first rule that matches a field name. The package also owns the helpers the
// rules depend on:
//   - KeyTerms: view-name tokens and their singular forms
//   - Singular: the naive plural stripping used for key terms
//   - Levenshtein / Suggest: "did you mean" hints for unknown override names
package match
