package plan

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"lookml-builder/internal/lkml"
	"lookml-builder/internal/mapping"
)

// Ontology project defaults for exported skeletons.
const (
	ExportedProjectName      = "extracted_from_lookml"
	ExportedGovernanceStatus = "in_development"
)

// ExportOntology builds an ontology skeleton from the views of a LookML
// document. Each view becomes an entity named after the view with
// underscores removed and the first letter capitalised. Dimensions marked
// primary_key become keys; other dimensions and dimension groups become
// attributes. PII tags are left empty for manual review.
func ExportOntology(doc *lkml.Document) *mapping.Ontology {
	ont := &mapping.Ontology{
		Project: &mapping.Project{
			Name:             ExportedProjectName,
			GovernanceStatus: ExportedGovernanceStatus,
		},
		Entities:      map[string]mapping.Entity{},
		Relationships: []mapping.Relationship{},
	}

	for _, view := range doc.Views() {
		entity := mapping.Entity{
			Keys:       []string{},
			Attributes: []string{},
			PIITags:    []string{},
		}

		for _, child := range view.Children {
			switch child.Key {
			case "dimension":
				if child.Str("primary_key") == "yes" {
					entity.Keys = append(entity.Keys, child.Name)
				} else {
					entity.Attributes = append(entity.Attributes, child.Name)
				}
			case "dimension_group":
				entity.Attributes = append(entity.Attributes, child.Name)
			}
		}

		ont.Entities[EntityName(view.Name)] = entity
	}

	return ont
}

// ExportOntologyYAML generates the ontology skeleton as YAML, nested under
// an "ontology" key so it can be pasted into a configuration file.
func ExportOntologyYAML(doc *lkml.Document) ([]byte, error) {
	return yaml.Marshal(struct {
		Ontology *mapping.Ontology `yaml:"ontology"`
	}{ExportOntology(doc)})
}

// EntityName derives an entity name from a view name.
//
//	EntityName("customer_orders") // "Customerorders"
func EntityName(viewName string) string {
	name := strings.TrimPrefix(viewName, "+")
	name = strings.ReplaceAll(name, "_", "")

	return cases.Title(language.Und).String(name)
}
