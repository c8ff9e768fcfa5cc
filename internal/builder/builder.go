package builder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"lookml-builder/internal/analyze"
	"lookml-builder/internal/gen"
	"lookml-builder/internal/lkml"
	"lookml-builder/internal/mapping"
	"lookml-builder/internal/plan"
	"lookml-builder/internal/runlog"
)

// DefaultOutputDir is the output root when none is configured.
const DefaultOutputDir = "model_project"

// View file extensions, longest first.
var viewExtensions = []string{".view.lkml", ".view.lookml"}

// ViewNameFromPath derives a view name from a file name.
//
//	ViewNameFromPath("dir/sample_transactions.view.lkml") // "sample_transactions"
func ViewNameFromPath(path string) string {
	name := filepath.Base(path)

	for _, ext := range viewExtensions {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}

	name = strings.ReplaceAll(name, ".lkml", "")

	return strings.ReplaceAll(name, ".lookml", "")
}

// Options configures a Builder.
type Options struct {
	// OutputDir is the output root. Defaults to DefaultOutputDir.
	OutputDir string
	// ViewName renames the view. Defaults to the name derived from the file.
	ViewName string
	// Config supplies the classification policy, formatting and ontology.
	// Defaults to mapping.DefaultConfig.
	Config *mapping.Config
	// KeepOriginal leaves the input file in place after a build.
	KeepOriginal bool
	// Runs records run logs. Defaults to a Logger under <OutputDir>/runs
	// without a ledger.
	Runs *runlog.Logger
	// Log receives progress and diagnostics.
	Log *slog.Logger
}

// Output describes a completed build.
type Output struct {
	ViewName     string
	SourceFile   string
	SemanticFile string
	StyleFile    string
	ExploreFile  string
	Inventory    *analyze.Inventory
	Result       *plan.Result
	Metadata     *runlog.Metadata
	// DeletedOriginal is the removed input file, empty when it was kept.
	DeletedOriginal string
}

// Preview is a classification and rendering without writes.
type Preview struct {
	ViewName  string
	Inventory *analyze.Inventory
	Result    *plan.Result
	Files     []gen.GeneratedFile
}

// Builder generates layered LookML from view files.
type Builder struct {
	opts       Options
	classifier *plan.Classifier
	generator  *gen.Generator
	log        *slog.Logger
}

// New creates a Builder, filling defaults for unset options.
func New(opts Options) *Builder {
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}

	if opts.Config == nil {
		opts.Config = mapping.DefaultConfig()
	}

	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	if opts.Runs == nil {
		opts.Runs = runlog.New(filepath.Join(opts.OutputDir, runlog.RunsDir), runlog.WithLogger(opts.Log))
	}

	return &Builder{
		opts:       opts,
		classifier: plan.NewClassifier(opts.Config.Classification),
		generator: gen.NewGenerator(gen.GeneratorConfig{
			Formatting: opts.Config.Formatting,
			Ontology:   opts.Config.Ontology,
		}),
		log: opts.Log,
	}
}

// Build runs the pipeline for the view file at path.
func (b *Builder) Build(ctx context.Context, path string) (*Output, error) {
	p, err := b.Preview(path)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paths, err := gen.WriteFiles(p.Files, b.opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("writing view %s: %w", p.ViewName, err)
	}

	out := &Output{
		ViewName:     p.ViewName,
		SourceFile:   paths[0],
		SemanticFile: paths[1],
		StyleFile:    paths[2],
		ExploreFile:  paths[3],
		Inventory:    p.Inventory,
		Result:       p.Result,
	}

	out.Metadata, err = b.opts.Runs.Log(ctx, p.Inventory, p.Result, b.opts.Config.Ontology)
	if err != nil {
		return nil, fmt.Errorf("logging run for %s: %w", p.ViewName, err)
	}

	if !b.opts.KeepOriginal {
		removed, err := removeOriginal(path, out.SourceFile)
		if err != nil {
			return nil, err
		}

		out.DeletedOriginal = removed
	}

	b.log.Info("view generated",
		"view", out.ViewName,
		"measures", len(out.Result.Measures),
		"filters", len(out.Result.Filters),
		"run_id", out.Metadata.RunID,
	)

	return out, nil
}

// Preview parses, classifies and renders the view file at path without
// writing anything. In strict mode a policy violation returns the preview
// along with an error wrapping plan.ErrStrictPolicy.
func (b *Builder) Preview(path string) (*Preview, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read view file: %w", err)
	}

	doc, err := lkml.ParseNamed(path, data)
	if err != nil {
		return nil, err
	}

	sourceName := ViewNameFromPath(path)

	viewName := b.opts.ViewName
	if viewName == "" {
		viewName = sourceName
	}

	inv := analyze.BuildInventory(viewName, analyze.Declarations(doc))

	b.log.Debug("inventory built",
		"view", viewName,
		"strings", len(inv.Strings),
		"numbers", len(inv.Numbers),
		"times", len(inv.Times),
		"booleans", len(inv.Booleans),
	)

	res, classifyErr := b.classifier.Classify(inv)

	for _, d := range res.Diagnostics.Warnings {
		b.log.Warn("override ignored", "view", viewName, "detail", d.String())
	}

	for _, d := range res.Diagnostics.Infos {
		b.log.Debug("classification note", "view", viewName, "detail", d.String())
	}

	if d, ok := res.DecisionFor(res.PrimaryKey, plan.RolePrimaryKey); ok {
		b.log.Debug("primary key selected", "view", viewName, "field", d.Field, "rule", d.Rule, "source", d.Source)
	}

	p := &Preview{ViewName: viewName, Inventory: inv, Result: res}

	if classifyErr != nil {
		return p, fmt.Errorf("classifying view %s: %w", viewName, classifyErr)
	}

	p.Files, err = b.generator.Generate(gen.Input{
		Inventory:      inv,
		Result:         res,
		Source:         data,
		SourceViewName: sourceName,
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// removeOriginal deletes the input file unless it is the generated source
// file. It returns the removed path, or "" when nothing was removed.
func removeOriginal(path, sourceFile string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}

	if abs == sourceFile {
		return "", nil
	}

	if err := os.Remove(abs); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}

		return "", fmt.Errorf("removing original view file: %w", err)
	}

	return abs, nil
}
