package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/tabwriter"

	"lookml-builder/internal/runlog"
)

const defaultHistoryLimit = 20

func (a *App) runHistory(ctx context.Context, args []string) error {
	var (
		outputDir string
		limit     int
		verbose   bool
	)

	flags := a.newFlagSet("history")
	outputDirFlag(flags, &outputDir)
	flags.IntVarP(&limit, "limit", "n", defaultHistoryLimit, "maximum number of runs to list (0 for all)")
	flags.BoolVar(&verbose, "verbose", false, "enable verbose (debug) logging (or set "+EnvVerbose+"=true)")

	if err := a.parse(flags, args); err != nil {
		return err
	}

	if flags.NArg() > 0 {
		return usagef("history: unexpected arguments %v", flags.Args())
	}

	a.envString(flags, "output-dir", EnvOutputDir, &outputDir)

	if err := a.envBool(flags, "verbose", EnvVerbose, &verbose); err != nil {
		return err
	}

	path := filepath.Join(outputDir, runlog.RunsDir, runlog.LedgerFile)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(a.stdout, "No runs recorded in %s\n", outputDir)
		return nil
	}

	ledger, err := runlog.OpenLedger(ctx, path, a.logger(&globalFlags{verbose: verbose}))
	if err != nil {
		return err
	}
	defer ledger.Close()

	entries, err := ledger.List(ctx, limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(a.stdout, "No runs recorded in %s\n", outputDir)
		return nil
	}

	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tVIEW\tMEASURES\tFILTERS\tIDS\tRUN ID")

	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			e.Timestamp, e.ViewName, e.Counts.Measures, e.Counts.Filters, e.Counts.IDs, e.RunID)
	}

	return w.Flush()
}
