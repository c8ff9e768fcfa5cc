package runlog

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // Register sqlite driver with database/sql
)

// LedgerFile is the ledger database name inside the runs directory.
const LedgerFile = "ledger.db"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// goose keeps its dialect and filesystem in package state.
var migrateMu sync.Mutex

// slogGooseLogger adapts slog.Logger to goose.Logger interface
type slogGooseLogger struct {
	log *slog.Logger
}

func (l *slogGooseLogger) Fatalf(format string, v ...any) {
	l.log.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *slogGooseLogger) Printf(format string, v ...any) {
	l.log.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Entry is one ledger row.
type Entry struct {
	RunID            string
	Timestamp        string
	ViewName         string
	GeneratorVersion string
	Counts           Counts
	Dir              string
}

// Ledger is the SQLite table of every run.
type Ledger struct {
	db *sql.DB
}

// OpenLedger opens or creates the ledger at path and applies pending
// migrations.
func OpenLedger(ctx context.Context, path string, log *slog.Logger) (*Ledger, error) {
	dsn := path + "?_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	// Writes from concurrent batch workers are serialized on one connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to ledger %s: %w", path, err)
	}

	if err := migrate(ctx, db, log); err != nil {
		db.Close()
		return nil, err
	}

	return &Ledger{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB, log *slog.Logger) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetLogger(&slogGooseLogger{log: log})
	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("failed to run ledger migrations: %w", err)
	}

	return nil
}

// Record inserts a run.
func (l *Ledger) Record(ctx context.Context, m *Metadata) error {
	counts, err := json.Marshal(m.Counts)
	if err != nil {
		return fmt.Errorf("encoding counts: %w", err)
	}

	_, err = l.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, timestamp, view_name, generator_version, counts, run_dir)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.RunID, m.Timestamp, m.ViewName, m.GeneratorVersion, string(counts), m.Dir,
	)
	if err != nil {
		return fmt.Errorf("recording run %s: %w", m.RunID, err)
	}

	return nil
}

// List returns the most recent runs first. A non-positive limit returns
// every run.
func (l *Ledger) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := l.db.QueryContext(ctx,
		`SELECT run_id, timestamp, view_name, generator_version, counts, run_dir
		 FROM runs ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}

	for rows.Next() {
		var (
			e      Entry
			counts string
		)

		if err := rows.Scan(&e.RunID, &e.Timestamp, &e.ViewName, &e.GeneratorVersion, &counts, &e.Dir); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}

		if err := json.Unmarshal([]byte(counts), &e.Counts); err != nil {
			return nil, fmt.Errorf("decoding counts for run %s: %w", e.RunID, err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Close closes the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}
