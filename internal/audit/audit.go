// Package audit re-verifies finished positions. Check applies the
// placement rules to a whole position at once; CrossCheck asks two
// independent chess libraries for their opinion of an 8×8 position.
package audit

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chunker-go/internal/chess"
	"github.com/lgbarn/chunker-go/internal/engine"
	"github.com/lgbarn/chunker-go/internal/errors"
)

// Problem identifies the kind of violation found.
type Problem int

const (
	OffGrid Problem = iota
	SharedSquare
	KingCount
	PawnOnBackRank
	KingsAdjacent
	KingInCheck
	BishopsSameShade
	LibraryMismatch
)

// String returns the string representation of a problem.
func (p Problem) String() string {
	names := []string{
		"off grid",
		"shared square",
		"king count",
		"pawn on back rank",
		"kings adjacent",
		"king in check",
		"bishops on same shade",
		"library mismatch",
	}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "unknown"
}

// Violation is a single broken property of a position.
type Violation struct {
	Problem Problem      `json:"problem"`
	Square  chess.Square `json:"index"`
	Detail  string       `json:"detail"`
}

// String returns the string representation of a violation.
func (v Violation) String() string {
	return fmt.Sprintf("%s at %d: %s", v.Problem, v.Square, v.Detail)
}

// Check returns every violation in pos. An empty result means the
// position is one the generator could have produced.
func Check(pos chess.Position, grid chess.Grid) []Violation {
	var out []Violation
	add := func(p Problem, sq chess.Square, format string, args ...interface{}) {
		out = append(out, Violation{Problem: p, Square: sq, Detail: fmt.Sprintf(format, args...)})
	}

	seen := make(map[chess.Square]chess.Piece, len(pos))
	for _, p := range pos {
		if !grid.Valid(p.Square) {
			add(OffGrid, p.Square, "%s outside a %dx%d grid", p.Piece, grid, grid)
			continue
		}
		if prev, ok := seen[p.Square]; ok {
			add(SharedSquare, p.Square, "%s and %s", prev, p.Piece)
			continue
		}
		seen[p.Square] = p.Piece

		if p.Piece.Is(chess.Pawn) && grid.IsBackRank(p.Square) {
			add(PawnOnBackRank, p.Square, "%s", p.Piece)
		}
	}

	snap := pos.Snapshot()
	kings := [2]chess.Square{}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king := chess.MakePiece(colour, chess.King)
		if n := pos.Count(king); n != 1 {
			add(KingCount, 0, "%d %s kings, want 1", n, colour)
			continue
		}
		sq, _ := engine.FindKing(snap, colour)
		kings[colour] = sq
		if engine.IsSquareAttacked(sq, colour.Opposite(), grid, snap) {
			add(KingInCheck, sq, "%s", king)
		}

		var bishops []chess.Square
		for _, p := range pos {
			if p.Piece == chess.MakePiece(colour, chess.Bishop) {
				bishops = append(bishops, p.Square)
			}
		}
		if len(bishops) == 2 && grid.Shade(bishops[0]) == grid.Shade(bishops[1]) {
			add(BishopsSameShade, bishops[1], "%s bishops both on %s", colour, grid.Shade(bishops[0]))
		}
	}

	if pos.Count(chess.WhiteKing) == 1 && pos.Count(chess.BlackKing) == 1 &&
		grid.Adjacent(kings[chess.White], kings[chess.Black]) {
		add(KingsAdjacent, kings[chess.Black], "kings on %d and %d", kings[chess.White], kings[chess.Black])
	}

	return out
}

// Verify returns nil when pos has no violations, and otherwise an error
// wrapping ErrIllegalPosition that lists them.
func Verify(pos chess.Position, grid chess.Grid) error {
	return asError(Check(pos, grid))
}

func asError(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	parts := make([]string, len(violations))
	for i, v := range violations {
		parts[i] = v.String()
	}
	return errors.Wrap(errors.ErrIllegalPosition, strings.Join(parts, "; "))
}
