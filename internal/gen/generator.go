package gen

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"lookml-builder/internal/analyze"
	"lookml-builder/internal/mapping"
	"lookml-builder/internal/plan"
)

// Directory layout under the output root.
const (
	ViewsDir    = "views"
	ExploresDir = "explores"
)

// GeneratorConfig holds configuration for LookML generation.
type GeneratorConfig struct {
	// Formatting selects measure value formats.
	Formatting mapping.Formatting
	// Ontology supplies explore joins.
	Ontology mapping.Ontology
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Formatting: mapping.DefaultConfig().Formatting,
	}
}

// Generator renders LookML files from a classification result.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated LookML file.
type GeneratedFile struct {
	// Filename is the path relative to the output root,
	// e.g. "views/orders/orders.semantic.view.lkml".
	Filename string
	// Content is the rendered LookML.
	Content []byte
}

// Input is everything needed to render one view.
type Input struct {
	Inventory *analyze.Inventory
	Result    *plan.Result
	// Source is the original view file content.
	Source []byte
	// SourceViewName is the view name used in Source.
	SourceViewName string
}

// SourceFile returns the source layer path for a view.
func SourceFile(view string) string {
	return filepath.Join(ViewsDir, view, view+".source.view.lkml")
}

// SemanticFile returns the semantic layer path for a view.
func SemanticFile(view string) string {
	return filepath.Join(ViewsDir, view, view+".semantic.view.lkml")
}

// StyleFile returns the style layer path for a view.
func StyleFile(view string) string {
	return filepath.Join(ViewsDir, view, view+".style.view.lkml")
}

// ExploreFile returns the explore path for a view.
func ExploreFile(view string) string {
	return filepath.Join(ExploresDir, view+".explore.lkml")
}

// Generate renders the source, semantic, style and explore files, in that
// order.
func (g *Generator) Generate(in Input) ([]GeneratedFile, error) {
	view := in.Result.ViewName

	semantic, err := g.RenderSemantic(in.Result)
	if err != nil {
		return nil, fmt.Errorf("generating semantic layer for %s: %w", view, err)
	}

	style, err := g.RenderStyle(in.Inventory, in.Result)
	if err != nil {
		return nil, fmt.Errorf("generating style layer for %s: %w", view, err)
	}

	explore, err := g.RenderExplore(view)
	if err != nil {
		return nil, fmt.Errorf("generating explore for %s: %w", view, err)
	}

	return []GeneratedFile{
		{Filename: SourceFile(view), Content: RenameView(in.Source, in.SourceViewName, view)},
		{Filename: SemanticFile(view), Content: semantic},
		{Filename: StyleFile(view), Content: style},
		{Filename: ExploreFile(view), Content: explore},
	}, nil
}

// RenderSemantic renders the semantic layer: primary key, IDs and measures.
func (g *Generator) RenderSemantic(res *plan.Result) ([]byte, error) {
	return execute(semanticTemplate, semanticData{
		View:        res.ViewName,
		PrimaryKeys: res.PrimaryKeys(),
		IDs:         res.IDs,
		Measures:    res.Measures,
	})
}

// RenderStyle renders the style layer.
func (g *Generator) RenderStyle(inv *analyze.Inventory, res *plan.Result) ([]byte, error) {
	return execute(styleTemplate, g.buildStyleData(inv, res))
}

// RenderExplore renders the explore with every relationship that applies
// to the view.
func (g *Generator) RenderExplore(view string) ([]byte, error) {
	data := exploreData{View: view}

	for _, rel := range g.config.Ontology.Relationships {
		if !rel.AppliesTo(view) {
			continue
		}

		data.Joins = append(data.Joins, joinData{
			Name:         JoinName(rel.To),
			Type:         rel.JoinType(),
			Relationship: rel.Cardinality(),
			SQLOn:        rel.Via,
		})
	}

	return execute(exploreTemplate, data)
}

func execute(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", tmpl.Name(), err)
	}

	return buf.Bytes(), nil
}
