package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"lookml-builder/internal/runlog"
)

// openRuns opens the run ledger below outputDir and returns a run logger
// recording into it. The returned close function releases the ledger.
func openRuns(ctx context.Context, outputDir string, log *slog.Logger) (*runlog.Logger, func(), error) {
	dir := filepath.Join(outputDir, runlog.RunsDir)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating runs directory: %w", err)
	}

	ledger, err := runlog.OpenLedger(ctx, filepath.Join(dir, runlog.LedgerFile), log)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if err := ledger.Close(); err != nil {
			log.Warn("failed to close run ledger", "error", err)
		}
	}

	return runlog.New(dir, runlog.WithLedger(ledger), runlog.WithLogger(log)), closeFn, nil
}
