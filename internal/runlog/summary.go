package runlog

import (
	"bytes"
	"text/template"
)

var summaryTemplate = template.Must(template.New("summary").Parse(
	`# Run Summary - {{.Timestamp}}

Run ID: {{.RunID}}

## View: {{.ViewName}}

### Field Counts
- String dimensions: {{.Counts.Strings}}
- Boolean dimensions: {{.Counts.Booleans}}
- Number dimensions: {{.Counts.Numbers}}
- Time dimensions: {{.Counts.Times}}

### Semantic Classifications
- Dimensions: {{.Counts.Dimensions}}
- Filters: {{.Counts.Filters}}
- IDs: {{.Counts.IDs}}
- Primary Keys: {{.Counts.PrimaryKey}}
- Booleans: {{.Counts.Booleans}}
- Flags: {{.Counts.Flags}}
- Measures: {{.Counts.Measures}}
- Numbers: {{.Counts.Numbers}}

### Generated Files
- {{.ViewName}}.source.view.lkml
- {{.ViewName}}.semantic.view.lkml
- {{.ViewName}}.style.view.lkml
- {{.ViewName}}.explore.lkml
`))

func renderSummary(m *Metadata) ([]byte, error) {
	var buf bytes.Buffer
	if err := summaryTemplate.Execute(&buf, m); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
