package chess

import (
	"sort"
	"strconv"
	"strings"
)

// Placement is a single piece standing on a square.
type Placement struct {
	Square Square `json:"index"`
	Piece  Piece  `json:"piece"`
}

// String returns the placement as "K@4".
func (p Placement) String() string {
	return string(p.Piece.Letter()) + "@" + strconv.Itoa(int(p.Square))
}

// Position is a finished arrangement for one round. Squares are unique and,
// for positions returned by the generator, sorted ascending.
type Position []Placement

// Sort orders the placements by square.
func (p Position) Sort() {
	sort.Slice(p, func(i, j int) bool { return p[i].Square < p[j].Square })
}

// PieceAt returns the piece on sq, if any.
func (p Position) PieceAt(sq Square) (Piece, bool) {
	for _, pl := range p {
		if pl.Square == sq {
			return pl.Piece, true
		}
	}
	return NoPiece, false
}

// Count returns how many copies of piece the position holds.
func (p Position) Count(piece Piece) int {
	n := 0
	for _, pl := range p {
		if pl.Piece == piece {
			n++
		}
	}
	return n
}

// Snapshot returns the position as a board snapshot.
func (p Position) Snapshot() Snapshot {
	return NewSnapshot(p...)
}

// String returns a compact listing such as "[K@0 k@8]".
func (p Position) String() string {
	parts := make([]string, len(p))
	for i, pl := range p {
		parts[i] = pl.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Snapshot is an immutable set of placements considered on the board.
// With returns a new snapshot and never touches the receiver, so a
// hypothetical placement can be tested without leaking into the caller.
type Snapshot struct {
	placements []Placement
}

// NewSnapshot builds a snapshot from placements. The input is copied.
func NewSnapshot(placements ...Placement) Snapshot {
	cp := make([]Placement, len(placements))
	copy(cp, placements)
	return Snapshot{placements: cp}
}

// Len returns the number of placements.
func (s Snapshot) Len() int {
	return len(s.placements)
}

// At returns the i-th placement in insertion order.
func (s Snapshot) At(i int) Placement {
	return s.placements[i]
}

// With returns a new snapshot with p added.
func (s Snapshot) With(p Placement) Snapshot {
	// A full slice expression forces append to copy.
	n := len(s.placements)
	return Snapshot{placements: append(s.placements[:n:n], p)}
}

// Occupied reports whether any placement stands on sq.
func (s Snapshot) Occupied(sq Square) bool {
	_, ok := s.PieceAt(sq)
	return ok
}

// PieceAt returns the piece on sq, if any.
func (s Snapshot) PieceAt(sq Square) (Piece, bool) {
	for _, p := range s.placements {
		if p.Square == sq {
			return p.Piece, true
		}
	}
	return NoPiece, false
}

// Find returns the first placement holding piece.
func (s Snapshot) Find(piece Piece) (Placement, bool) {
	for _, p := range s.placements {
		if p.Piece == piece {
			return p, true
		}
	}
	return Placement{}, false
}

// Occupancy returns a per-square occupancy table for the grid.
// Placements outside the grid are ignored.
func (s Snapshot) Occupancy(g Grid) []bool {
	occ := make([]bool, g.Cells())
	for _, p := range s.placements {
		if g.Valid(p.Square) {
			occ[p.Square] = true
		}
	}
	return occ
}

// Position returns a sorted copy of the snapshot as a Position.
func (s Snapshot) Position() Position {
	pos := make(Position, len(s.placements))
	copy(pos, s.placements)
	pos.Sort()
	return pos
}
