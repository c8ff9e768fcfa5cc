package gen

import (
	"text/template"

	"lookml-builder/internal/plan"
)

const sectionRule = "  #########################\n"

var funcs = template.FuncMap{
	"section": func(title string) string {
		return sectionRule + "  ## " + title + "\n" + sectionRule + "\n"
	},
}

var semanticTemplate = template.Must(template.New("semantic").Parse(
	`include: "{{.View}}.source.view"

view: +{{.View}} {

  # IDs

{{range .PrimaryKeys}}  dimension: {{.}} {
    primary_key: yes
  }

{{end}}{{range .IDs}}  dimension: {{.}} {
  }

{{end}}  # METRICS

{{range .Measures}}  measure: {{.Name}} {
    type: {{.Type}}
    sql: {{.SQL}};;
  }

{{end}}}`))

var styleTemplate = template.Must(template.New("style").Funcs(funcs).Parse(
	`include: "{{.View}}.semantic.view"

view: +{{.View}} {
{{section "IDS"}}  # PRIMARY KEY

{{range .KeyFields}}  dimension: {{.}} {
    group_label: "IDs"
    # hidden: yes
  }

{{end}}{{section "DATES & TIMESTAMPS"}}{{range .Times}}  dimension_group: {{.Name}} {
    label: "{{.Label}}"
    group_label: " {{.Label}}"
    can_filter: no
{{if .Hidden}}    hidden: yes
{{end}}  }

  dimension_group: {{.Name}}_filter {
    view_label: "FILTERS"
    # view_label: ""
    label: "{{.Label}}"
    group_label: " {{.Label}}"
    type: time
    sql: ${ {{- .Name}}_raw};;
  }

{{end}}{{section "METRICS"}}{{range .Measures}}  measure: {{.Name}} {
    value_format: "{{.ValueFormat}}"
  }

{{end}}  measure: count {
    hidden: yes
  }

{{section "MEASURE DIMS"}}{{range .MeasureDims}}  dimension: {{.}} {
    group_label: "Measure Dims"
    hidden: yes
  }

{{end}}{{section "DIMENSIONS"}}  suggestions: yes

{{range .Filters}}  dimension: {{.Name}} {
    can_filter: no
  }

  dimension: {{.Name}}_filter {
    view_label: "FILTERS"
    # view_label: ""
    label: "{{.Label}}"
    type: string
    case_sensitive: no
    sql: ${ {{- .Name}}};;
  }

{{end}}}`))

var exploreTemplate = template.Must(template.New("explore").Parse(
	`explore: {{.View}} {
{{range .Joins}}  join: {{.Name}} {
    type: {{.Type}}
    relationship: {{.Relationship}}
    sql_on: {{.SQLOn}} ;;
  }

{{end}}}`))

type semanticData struct {
	View        string
	PrimaryKeys []string
	IDs         []string
	Measures    []plan.Measure
}

type styleData struct {
	View        string
	KeyFields   []string
	Times       []timeData
	Measures    []measureStyle
	MeasureDims []string
	Filters     []filterData
}

type timeData struct {
	Name   string
	Label  string
	Hidden bool
}

type measureStyle struct {
	Name        string
	ValueFormat string
}

type filterData struct {
	Name  string
	Label string
}

type exploreData struct {
	View  string
	Joins []joinData
}

type joinData struct {
	Name         string
	Type         string
	Relationship string
	SQLOn        string
}
