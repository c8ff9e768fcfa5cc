package runlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"lookml-builder/internal/analyze"
	"lookml-builder/internal/mapping"
	"lookml-builder/internal/plan"
)

// RunsDir is the directory under the output root that holds run logs.
const RunsDir = "runs"

// Run log file names.
const (
	MetadataFile = "metadata.json"
	SummaryFile  = "summary.md"
	MetricsFile  = "metrics.prom"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Logger writes run logs below a runs directory.
type Logger struct {
	dir    string
	clock  clockwork.Clock
	ledger *Ledger
	log    *slog.Logger
}

// Option configures a Logger.
type Option func(*Logger)

// WithClock sets the clock used for run timestamps.
func WithClock(clock clockwork.Clock) Option {
	return func(l *Logger) { l.clock = clock }
}

// WithLedger records every run in the ledger.
func WithLedger(ledger *Ledger) Option {
	return func(l *Logger) { l.ledger = ledger }
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(l *Logger) { l.log = log }
}

// New creates a Logger writing to dir, usually <out>/runs.
func New(dir string, opts ...Option) *Logger {
	l := &Logger{
		dir:   dir,
		clock: clockwork.NewRealClock(),
		log:   slog.Default(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Dir returns the runs directory.
func (l *Logger) Dir() string {
	return l.dir
}

// Log writes the run files for one classified view and records it in the
// ledger if one is attached.
func (l *Logger) Log(
	ctx context.Context,
	inv *analyze.Inventory,
	res *plan.Result,
	ontology mapping.Ontology,
) (*Metadata, error) {
	now := l.clock.Now()

	m := &Metadata{
		RunID:            uuid.NewString(),
		Timestamp:        now.Format(TimestampFormat),
		ViewName:         res.ViewName,
		GeneratorVersion: GeneratorVersion,
		Counts:           CountsOf(inv, res),
		Ontology:         ontology,
	}
	m.Dir = filepath.Join(l.dir, m.Timestamp, m.ViewName)

	if err := os.MkdirAll(m.Dir, dirPerm); err != nil {
		return nil, fmt.Errorf("creating run directory: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding metadata: %w", err)
	}

	if err := os.WriteFile(filepath.Join(m.Dir, MetadataFile), data, filePerm); err != nil {
		return nil, fmt.Errorf("writing metadata: %w", err)
	}

	summary, err := renderSummary(m)
	if err != nil {
		return nil, fmt.Errorf("rendering summary: %w", err)
	}

	if err := os.WriteFile(filepath.Join(m.Dir, SummaryFile), summary, filePerm); err != nil {
		return nil, fmt.Errorf("writing summary: %w", err)
	}

	if err := writeMetrics(filepath.Join(m.Dir, MetricsFile), m, float64(now.Unix())); err != nil {
		return nil, err
	}

	if l.ledger != nil {
		if err := l.ledger.Record(ctx, m); err != nil {
			return nil, err
		}
	}

	l.log.Debug("run logged", "view", m.ViewName, "run_id", m.RunID, "dir", m.Dir)

	return m, nil
}
