package gen

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// timeSuffixes are removed from time field names when building labels.
var timeSuffixes = []string{"_date", "_timestamp", "_ts"}

// TimeLabel derives a display label for a time field.
//
//	TimeLabel("order_created_date") // "Order Created"
func TimeLabel(name string) string {
	for _, suffix := range timeSuffixes {
		name = strings.ReplaceAll(name, suffix, "")
	}

	return FieldLabel(name)
}

// FieldLabel derives a display label by replacing underscores with spaces
// and title-casing each word.
func FieldLabel(name string) string {
	// Casers are stateful and not safe for concurrent use.
	return cases.Title(language.Und).String(strings.ReplaceAll(name, "_", " "))
}

// JoinName returns the explore join name for a relationship target.
func JoinName(to string) string {
	return strings.ToLower(to)
}

// RenameView rewrites "view: from {" declarations to "view: to {". SQL table
// references and other occurrences of the old name are left untouched.
func RenameView(content []byte, from, to string) []byte {
	if from == "" || from == to {
		return content
	}

	re := regexp.MustCompile(`(\bview:\s+)` + regexp.QuoteMeta(from) + `(\s*\{)`)

	return re.ReplaceAll(content, []byte("${1}"+strings.ReplaceAll(to, "$", "$$")+"${2}"))
}
