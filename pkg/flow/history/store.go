// Package history provides durable storage for finished execution
// reports. Flow documents themselves are persisted elsewhere; this package
// only archives what a run produced, keyed by run id.
package history

import (
	"errors"
	"time"
)

// Store archives marshaled execution reports.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores the report for a run. Overwrites a previous report
	// archived under the same run id.
	Save(runID string, report []byte) error

	// Load retrieves a run's report.
	// Returns ErrNotFound if the run was never archived.
	Load(runID string) ([]byte, error)

	// List returns metadata for all archived runs, newest first.
	// Returns an empty slice (not an error) when nothing is archived.
	List() ([]Info, error)

	// Delete removes a run's report.
	// Returns nil if the run was never archived.
	Delete(runID string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides archive metadata without loading the full report.
type Info struct {
	RunID      string
	ArchivedAt time.Time
	Size       int64
}

// Sentinel errors for archive operations.
var (
	// ErrNotFound indicates no report is archived for the run.
	ErrNotFound = errors.New("report not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("history store closed")
)
