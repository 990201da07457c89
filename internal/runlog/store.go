package runlog

import (
	"errors"
	"slices"
)

var ErrRunNotFound = errors.New("run not found")

// Store persists run records.
type Store interface {
	// Save inserts or replaces the run with the same ID
	Save(run *Run) error
	Get(id string) (*Run, error)
	// List returns every run, oldest first
	List() ([]*Run, error)
	Close() error
}

func sortRuns(runs []*Run) {
	slices.SortStableFunc(runs, func(a, b *Run) int {
		return a.StartedAt.Compare(b.StartedAt)
	})
}
