package engine

import "github.com/lgbarn/chunker-go/internal/chess"

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirs       = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// IsSquareAttacked returns true if target is attacked by any piece of
// colour byColour in the snapshot.
//
// Sliding pieces cast rays one step at a time; a ray halts at the first
// occupied square of either colour, which is itself attacked. Nothing on
// the far side of a blocker is attacked. No piece attacks its own square.
func IsSquareAttacked(target chess.Square, byColour chess.Colour, grid chess.Grid, snap chess.Snapshot) bool {
	if !grid.Valid(target) {
		return false
	}
	targetRow, targetCol := grid.RowCol(target)
	occ := snap.Occupancy(grid)

	for i := 0; i < snap.Len(); i++ {
		p := snap.At(i)
		if p.Piece.Colour() != byColour || p.Square == target || !grid.Valid(p.Square) {
			continue
		}
		row, col := grid.RowCol(p.Square)
		if attacks(p.Piece.Kind(), byColour, row, col, targetRow, targetCol, grid, occ) {
			return true
		}
	}

	return false
}

// attacks reports whether a piece of kind on (row, col) attacks (tr, tc).
func attacks(kind chess.Kind, colour chess.Colour, row, col, tr, tc int, grid chess.Grid, occ []bool) bool {
	switch kind {
	case chess.Pawn:
		return row+colour.Forward() == tr && abs(col-tc) == 1

	case chess.Knight:
		for _, off := range knightOffsets {
			if row+off[0] == tr && col+off[1] == tc {
				return true
			}
		}
		return false

	case chess.King:
		dr, dc := abs(row-tr), abs(col-tc)
		return (dr != 0 || dc != 0) && dr <= 1 && dc <= 1

	case chess.Bishop:
		return rayAttack(diagonalDirs, row, col, tr, tc, grid, occ)

	case chess.Rook:
		return rayAttack(straightDirs, row, col, tr, tc, grid, occ)

	case chess.Queen:
		return rayAttack(allDirs, row, col, tr, tc, grid, occ)
	}

	return false
}

// rayAttack walks each direction from (row, col) until it leaves the
// grid, reaches the target, or hits an occupied square.
func rayAttack(dirs [][2]int, row, col, tr, tc int, grid chess.Grid, occ []bool) bool {
	for _, dir := range dirs {
		r, c := row+dir[0], col+dir[1]
		for grid.Contains(r, c) {
			if r == tr && c == tc {
				return true
			}
			if occ[grid.Square(r, c)] {
				break // Blocked
			}
			r += dir[0]
			c += dir[1]
		}
	}
	return false
}

// FindKing returns the square of the given colour's king, if present.
func FindKing(snap chess.Snapshot, colour chess.Colour) (chess.Square, bool) {
	p, ok := snap.Find(chess.MakePiece(colour, chess.King))
	return p.Square, ok
}

// InCheck returns true if the given colour's king is on the board and
// attacked by the opposite colour.
func InCheck(snap chess.Snapshot, colour chess.Colour, grid chess.Grid) bool {
	sq, ok := FindKing(snap, colour)
	if !ok {
		return false // No king found
	}
	return IsSquareAttacked(sq, colour.Opposite(), grid, snap)
}
