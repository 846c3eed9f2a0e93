package hashing

import (
	"sync"

	"github.com/lgbarn/chunker-go/internal/chess"
)

// Counts is a consistent snapshot of a detector's tallies.
type Counts struct {
	Unique     int
	Duplicates int
	Full       bool
}

// ThreadSafeDuplicateDetector guards a DuplicateDetector for use by the
// workers of a batch.
type ThreadSafeDuplicateDetector struct {
	mu       sync.Mutex
	detector *DuplicateDetector
}

// NewThreadSafeDuplicateDetector creates a new thread-safe detector.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(exactMatch bool, maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{
		detector: NewDuplicateDetector(exactMatch, maxCapacity),
	}
}

// CheckAndAdd atomically checks if a position is a duplicate and records it.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(pos chess.Position, grid chess.Grid) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.CheckAndAdd(pos, grid)
}

// Counts returns the unique and duplicate tallies and whether the table
// is full, all read under one lock.
func (d *ThreadSafeDuplicateDetector) Counts() Counts {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Counts{
		Unique:     d.detector.UniqueCount(),
		Duplicates: d.detector.DuplicateCount(),
		Full:       d.detector.IsFull(),
	}
}
