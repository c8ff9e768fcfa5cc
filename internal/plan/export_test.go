package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"lookml-builder/internal/lkml"
	"lookml-builder/internal/mapping"
)

const ontologySource = `
view: customer_orders {
  dimension: order_id {
    primary_key: yes
    type: number
  }
  dimension: status { type: string }
  dimension_group: created { type: time }
  measure: count { type: count }
}

view: users {
  dimension: email { type: string }
}
`

func TestExportOntology(t *testing.T) {
	doc, err := lkml.Parse([]byte(ontologySource))
	require.NoError(t, err)

	ont := ExportOntology(doc)

	require.NotNil(t, ont.Project)
	assert.Equal(t, "extracted_from_lookml", ont.Project.Name)
	assert.Equal(t, "in_development", ont.Project.GovernanceStatus)
	assert.Empty(t, ont.Relationships)

	require.Len(t, ont.Entities, 2)
	assert.Equal(t, mapping.Entity{
		Keys:       []string{"order_id"},
		Attributes: []string{"status", "created"},
		PIITags:    []string{},
	}, ont.Entities["Customerorders"])
	assert.Equal(t, []string{"email"}, ont.Entities["Users"].Attributes)
	assert.Empty(t, ont.Entities["Users"].Keys)
}

func TestExportOntologyYAML(t *testing.T) {
	doc, err := lkml.Parse([]byte(ontologySource))
	require.NoError(t, err)

	data, err := ExportOntologyYAML(doc)
	require.NoError(t, err)

	// The output must load back as a configuration file.
	cfg, err := mapping.Parse(data)
	require.NoError(t, err)
	assert.Contains(t, cfg.Ontology.Entities, "Customerorders")

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Contains(t, raw, "ontology")
}

func TestEntityName(t *testing.T) {
	tests := []struct {
		view     string
		expected string
	}{
		{"customer_orders", "Customerorders"},
		{"users", "Users"},
		{"+orders", "Orders"},
		{"ORDERS", "Orders"},
	}

	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			assert.Equal(t, tt.expected, EntityName(tt.view))
		})
	}
}
