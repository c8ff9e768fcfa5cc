// Package runlog records one entry per generated view.
//
// Every run writes metadata.json, summary.md and metrics.prom under
// <out>/runs/<timestamp>/<view>/ and, when a Ledger is attached, appends a
// row to the SQLite ledger at <out>/runs/ledger.db.
package runlog
