package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"lookml-builder/internal/builder"
	"lookml-builder/internal/gen"
	"lookml-builder/internal/plan"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type generateFlags struct {
	globalFlags

	outputDir    string
	dryRun       bool
	dump         bool
	keepOriginal bool
}

func (a *App) runGenerate(ctx context.Context, args []string) error {
	var f generateFlags

	fs := a.newFlagSet("generate")
	f.register(fs)
	outputDirFlag(fs, &f.outputDir)
	fs.BoolVar(&f.dryRun, "dry-run", false, "preview what would be generated without writing files")
	fs.BoolVar(&f.dump, "dump", false, "dump the full classification result")
	fs.BoolVar(&f.keepOriginal, "keep-original", false, "keep the input view file after generation")

	if err := a.parse(fs, args); err != nil {
		return err
	}

	if fs.NArg() < 1 || fs.NArg() > 2 {
		return usagef("generate: expected <view_file> [new_view_name]")
	}

	if err := a.applyGlobalEnv(fs, &f.globalFlags); err != nil {
		return err
	}

	a.envString(fs, "output-dir", EnvOutputDir, &f.outputDir)

	viewFile := fs.Arg(0)
	log := a.logger(&f.globalFlags)

	cfg, err := a.loadConfig(&f.globalFlags, log)
	if err != nil {
		return err
	}

	opts := builder.Options{
		OutputDir:    f.outputDir,
		ViewName:     fs.Arg(1),
		Config:       cfg,
		KeepOriginal: f.keepOriginal,
		Log:          log,
	}

	original := builder.ViewNameFromPath(viewFile)
	if opts.ViewName != "" {
		log.Info("renaming view", "from", original, "to", opts.ViewName)
	}

	if f.dryRun {
		p, err := builder.New(opts).Preview(viewFile)
		if err != nil {
			return err
		}

		writePreview(a.stdout, f.outputDir, p.ViewName, p.Result)

		if f.dump {
			dumper.Fdump(a.stdout, p.Result)
		}

		return nil
	}

	runs, closeRuns, err := openRuns(ctx, f.outputDir, log)
	if err != nil {
		return err
	}
	defer closeRuns()

	opts.Runs = runs

	out, err := builder.New(opts).Build(ctx, viewFile)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, "Generated files:")

	for _, path := range []string{out.SourceFile, out.SemanticFile, out.StyleFile, out.ExploreFile} {
		fmt.Fprintf(a.stdout, "  %s\n", path)
	}

	fmt.Fprintf(a.stdout, "Run %s logged to %s\n", out.Metadata.RunID, out.Metadata.Dir)

	if out.DeletedOriginal != "" {
		fmt.Fprintf(a.stdout, "Removed original file: %s\n", filepath.Base(out.DeletedOriginal))
	}

	if f.dump {
		dumper.Fdump(a.stdout, out.Result)
	}

	return nil
}

func writePreview(w io.Writer, outputDir, view string, res *plan.Result) {
	fmt.Fprintln(w, "Dry run, nothing written:")
	fmt.Fprintf(w, "  source:   %s\n", filepath.Join(outputDir, gen.SourceFile(view)))
	fmt.Fprintf(w, "  semantic: %s\n", filepath.Join(outputDir, gen.SemanticFile(view)))
	fmt.Fprintf(w, "  style:    %s\n", filepath.Join(outputDir, gen.StyleFile(view)))
	fmt.Fprintf(w, "  explore:  %s\n", filepath.Join(outputDir, gen.ExploreFile(view)))
	fmt.Fprintln(w, "Field classifications:")
	fmt.Fprintf(w, "  Primary Keys: %v\n", res.PrimaryKeys())
	fmt.Fprintf(w, "  IDs: %v\n", res.IDs)
	fmt.Fprintf(w, "  Dimensions: %v\n", res.Dimensions)
	fmt.Fprintf(w, "  Filters: %v\n", res.Filters)
	fmt.Fprintf(w, "  Flags: %v\n", res.Flags)
	fmt.Fprintf(w, "  Measures: %v\n", res.MeasureNames())
}
