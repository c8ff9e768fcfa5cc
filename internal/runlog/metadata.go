package runlog

import (
	"lookml-builder/internal/analyze"
	"lookml-builder/internal/mapping"
	"lookml-builder/internal/plan"
)

// GeneratorVersion is recorded with every run.
const GeneratorVersion = "0.1.0"

// TimestampFormat names run directories and the Timestamp field.
const TimestampFormat = "2006-01-02T15-04-05"

// Counts holds the bucket and role sizes of a run.
type Counts struct {
	Strings    int `json:"strings"`
	Numbers    int `json:"numbers"`
	Times      int `json:"times"`
	Booleans   int `json:"booleans"`
	Dimensions int `json:"dimensions"`
	Filters    int `json:"filters"`
	IDs        int `json:"ids"`
	PrimaryKey int `json:"primary_key"`
	Flags      int `json:"flags"`
	Measures   int `json:"measures"`
}

// Metadata describes one generation run.
type Metadata struct {
	RunID            string           `json:"run_id"`
	Timestamp        string           `json:"timestamp"`
	ViewName         string           `json:"view_name"`
	GeneratorVersion string           `json:"generator_version"`
	Counts           Counts           `json:"counts"`
	Ontology         mapping.Ontology `json:"ontology_config"`

	// Dir is the run directory the files were written to.
	Dir string `json:"-"`
}

// CountsOf computes run counts from an inventory and its classification.
func CountsOf(inv *analyze.Inventory, res *plan.Result) Counts {
	return Counts{
		Strings:    len(inv.Strings),
		Numbers:    len(inv.Numbers),
		Times:      len(inv.Times),
		Booleans:   len(inv.Booleans),
		Dimensions: len(res.Dimensions),
		Filters:    len(res.Filters),
		IDs:        len(res.IDs),
		PrimaryKey: len(res.PrimaryKeys()),
		Flags:      len(res.Flags),
		Measures:   len(res.Measures),
	}
}
