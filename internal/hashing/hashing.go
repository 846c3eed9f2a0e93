// Package hashing provides duplicate detection for generated positions.
package hashing

import (
	"github.com/lgbarn/chunker-go/internal/chess"
	"github.com/lgbarn/chunker-go/internal/notation"
)

// DuplicateDetector tracks seen positions for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]PositionSignature
	// useExactMatch also compares the full placement string
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity bounds the number of stored signatures (0 = unlimited)
	maxCapacity int
	// size is the number of stored signatures
	size int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash uint64
	// Grid is the board size
	Grid chess.Grid
	// Pieces is the number of placements
	Pieces int
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
	// Placement is the encoded placement, kept only for exact matching
	Placement string
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]PositionSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of pos on grid.
func (d *DuplicateDetector) Signature(pos chess.Position, grid chess.Grid) PositionSignature {
	sig := PositionSignature{
		Hash:     GenerateZobristHash(pos, grid),
		Grid:     grid,
		Pieces:   len(pos),
		WeakHash: WeakHash(pos),
	}
	if d.useExactMatch {
		sig.Placement = notation.Encode(pos, grid)
	}
	return sig
}

// CheckAndAdd checks if a position is a duplicate and records it.
// Returns true if the position is a duplicate. Once the detector is full
// new positions are still checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(pos chess.Position, grid chess.Grid) bool {
	if len(pos) == 0 {
		return false
	}

	sig := d.Signature(pos, grid)

	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

// signaturesMatch checks if two position signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b PositionSignature) bool {
	if a.Hash != b.Hash || a.Grid != b.Grid || a.Pieces != b.Pieces {
		return false
	}
	if a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.Placement != b.Placement {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.duplicateCount = 0
	d.size = 0
}
