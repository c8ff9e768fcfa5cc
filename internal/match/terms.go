package match

import "strings"

// Singular strips a naive English plural: "ies" becomes "y", otherwise a
// trailing "s" is dropped unless the word ends in "ss". Other words are
// returned unchanged.
func Singular(word string) string {
	switch {
	case strings.HasSuffix(word, "ies"):
		return strings.TrimSuffix(word, "ies") + "y"
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss"):
		return strings.TrimSuffix(word, "s")
	default:
		return word
	}
}

// KeyTerms splits a view name on "_" and returns each lowercased token
// followed by its singular form when that differs. Duplicates are dropped.
//
//	KeyTerms("customer_orders") // ["customer", "orders", "order"]
func KeyTerms(viewName string) []string {
	var terms []string

	seen := make(map[string]bool)
	add := func(term string) {
		if term == "" || seen[term] {
			return
		}

		seen[term] = true
		terms = append(terms, term)
	}

	for _, token := range strings.Split(strings.ToLower(viewName), "_") {
		add(token)
		add(Singular(token))
	}

	return terms
}
