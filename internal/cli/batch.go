package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"lookml-builder/internal/builder"
)

// DefaultViewsDir is scanned by batch when no directory is given.
var DefaultViewsDir = filepath.Join(builder.DefaultOutputDir, "views")

const viewGlob = "*.view.lkml"

type batchFlags struct {
	globalFlags

	viewsDir  string
	outputDir string
	dryRun    bool
	exclude   []string
	jobs      int
}

// batchResult is the outcome of one view file.
type batchResult struct {
	file string
	view string
	err  error
}

func (a *App) runBatch(ctx context.Context, args []string) error {
	var f batchFlags

	fs := a.newFlagSet("batch")
	f.register(fs)
	fs.StringVarP(&f.viewsDir, "views-dir", "v", DefaultViewsDir, "views directory to scan")
	outputDirFlag(fs, &f.outputDir)
	fs.BoolVar(&f.dryRun, "dry-run", false, "preview what would be generated without writing files")
	fs.StringArrayVar(&f.exclude, "exclude", nil, "exclude files matching pattern (repeatable)")
	fs.IntVarP(&f.jobs, "jobs", "j", runtime.NumCPU(), "number of views processed concurrently")

	if err := a.parse(fs, args); err != nil {
		return err
	}

	if fs.NArg() > 0 {
		return usagef("batch: unexpected arguments %v", fs.Args())
	}

	if f.jobs < 1 {
		return usagef("batch: --jobs must be at least 1")
	}

	for _, pattern := range f.exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return usagef("batch: invalid exclude pattern %q: %v", pattern, err)
		}
	}

	if err := a.applyGlobalEnv(fs, &f.globalFlags); err != nil {
		return err
	}

	a.envString(fs, "output-dir", EnvOutputDir, &f.outputDir)

	log := a.logger(&f.globalFlags)

	cfg, err := a.loadConfig(&f.globalFlags, log)
	if err != nil {
		return err
	}

	files, err := findViews(f.viewsDir, f.exclude)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Fprintf(a.stdout, "No %s files found in %s\n", viewGlob, f.viewsDir)
		return nil
	}

	fmt.Fprintf(a.stdout, "Found %d view file(s) in %s\n", len(files), f.viewsDir)

	opts := builder.Options{OutputDir: f.outputDir, Config: cfg, Log: log}

	if f.dryRun {
		b := builder.New(opts)

		for _, file := range files {
			p, err := b.Preview(file)
			if err != nil {
				fmt.Fprintf(a.stdout, "\n%s: %v\n", filepath.Base(file), err)
				continue
			}

			fmt.Fprintf(a.stdout, "\n%s -> %s\n", filepath.Base(file), p.ViewName)
			writePreview(a.stdout, f.outputDir, p.ViewName, p.Result)
		}

		return nil
	}

	runs, closeRuns, err := openRuns(ctx, f.outputDir, log)
	if err != nil {
		return err
	}
	defer closeRuns()

	opts.Runs = runs
	b := builder.New(opts)

	results := make([]batchResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.jobs)

	for i, file := range files {
		g.Go(func() error {
			results[i] = batchResult{file: file, view: builder.ViewNameFromPath(file)}

			if _, err := b.Build(gctx, file); err != nil {
				results[i].err = err
				log.Error("view failed", "file", file, "error", err)
			}

			// Failures stay per file.
			return nil
		})
	}

	_ = g.Wait()

	return a.reportBatch(results)
}

func (a *App) reportBatch(results []batchResult) error {
	var failed []batchResult

	fmt.Fprintln(a.stdout, "\nBatch summary:")

	for _, r := range results {
		if r.err != nil {
			failed = append(failed, r)
			continue
		}

		fmt.Fprintf(a.stdout, "  ok      %s\n", r.view)
	}

	for _, r := range failed {
		fmt.Fprintf(a.stdout, "  failed  %s: %v\n", r.view, r.err)
	}

	fmt.Fprintf(a.stdout, "Successful: %d, failed: %d\n", len(results)-len(failed), len(failed))

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d views failed", len(failed), len(results))
	}

	return nil
}

// findViews lists the view files at the top level of dir, sorted by name,
// skipping names that match any exclude pattern.
func findViews(dir string, exclude []string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("views directory not found: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("views directory %s is not a directory", dir)
	}

	matches, err := filepath.Glob(filepath.Join(dir, viewGlob))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	files := slices.DeleteFunc(matches, func(path string) bool {
		name := filepath.Base(path)
		for _, pattern := range exclude {
			if ok, _ := filepath.Match(pattern, name); ok {
				return true
			}
		}

		return false
	})

	slices.Sort(files)

	return files, nil
}
