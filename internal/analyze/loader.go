package analyze

import (
	"fmt"

	"lookml-builder/internal/lkml"
)

// Declarations extracts the dimensions and dimension groups of every view in
// the document, in source order.
func Declarations(doc *lkml.Document) []Declaration {
	var decls []Declaration

	for i, view := range doc.Views() {
		for _, child := range view.Children {
			switch child.Key {
			case "dimension":
				decls = append(decls, Declaration{Name: child.Name, Type: child.Str("type"), View: i})
			case "dimension_group":
				decls = append(decls, Declaration{Name: child.Name, Type: child.Str("type"), IsGroup: true, View: i})
			}
		}
	}

	return decls
}

// LoadFile parses a LookML file and builds the inventory of its fields under
// viewName.
func LoadFile(path, viewName string) (*Inventory, error) {
	doc, err := lkml.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load view %s: %w", viewName, err)
	}

	return BuildInventory(viewName, Declarations(doc)), nil
}
