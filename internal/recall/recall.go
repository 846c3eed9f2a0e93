// Package recall judges a player's reconstruction of a position, either
// all at once for the reveal or one drop at a time during the recall phase.
package recall

import (
	"sort"

	"github.com/lgbarn/chunker-go/internal/chess"
)

// Mark is the verdict for a single square in a reveal.
type Mark int

const (
	Correct Mark = iota
	Wrong
	Missed
)

// String returns the string representation of a mark.
func (m Mark) String() string {
	switch m {
	case Correct:
		return "correct"
	case Wrong:
		return "wrong"
	case Missed:
		return "missed"
	}
	return "unknown"
}

// Cell describes one square of a reveal. Expected is NoPiece for a
// square the player filled that was not part of the position.
type Cell struct {
	Square   chess.Square `json:"index"`
	Expected chess.Piece  `json:"expected,omitempty"`
	Placed   chess.Piece  `json:"placed,omitempty"`
	Mark     Mark         `json:"mark"`
}

// Report is the square-by-square comparison of a position with the
// player's placements, ordered by square.
type Report struct {
	Cells   []Cell `json:"cells"`
	Correct int    `json:"correct"`
	Wrong   int    `json:"wrong"`
	Missed  int    `json:"missed"`
}

// Perfect reports whether every square was reproduced and nothing extra was placed.
func (r Report) Perfect() bool {
	return r.Wrong == 0 && r.Missed == 0
}

// Compare diffs placed against expected. A square is correct when the
// player's piece equals the expected piece, wrong when it differs or was
// not part of the position, and missed when the player left it empty.
func Compare(expected, placed chess.Position) Report {
	byPlayer := make(map[chess.Square]chess.Piece, len(placed))
	for _, p := range placed {
		byPlayer[p.Square] = p.Piece
	}

	var r Report
	inPattern := make(map[chess.Square]bool, len(expected))
	for _, e := range expected {
		inPattern[e.Square] = true
		cell := Cell{Square: e.Square, Expected: e.Piece}

		got, ok := byPlayer[e.Square]
		switch {
		case !ok:
			cell.Mark = Missed
			r.Missed++
		case got == e.Piece:
			cell.Placed = got
			cell.Mark = Correct
			r.Correct++
		default:
			cell.Placed = got
			cell.Mark = Wrong
			r.Wrong++
		}
		r.Cells = append(r.Cells, cell)
	}

	for _, p := range placed {
		if inPattern[p.Square] {
			continue
		}
		r.Cells = append(r.Cells, Cell{Square: p.Square, Placed: p.Piece, Mark: Wrong})
		r.Wrong++
	}

	sort.Slice(r.Cells, func(i, j int) bool { return r.Cells[i].Square < r.Cells[j].Square })
	return r
}
