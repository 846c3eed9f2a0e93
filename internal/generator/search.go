package generator

import (
	"github.com/lgbarn/chunker-go/internal/chess"
	"github.com/lgbarn/chunker-go/internal/engine"
)

// legal reports whether piece may go on sq in a generated position: the
// placement rules must pass and the piece must not check the other king,
// so that both kings are safe in the finished position.
func legal(sq chess.Square, piece chess.Piece, grid chess.Grid, snap chess.Snapshot) bool {
	return engine.IsValidPlacement(sq, piece, grid, snap) && !engine.GivesCheck(sq, piece, grid, snap)
}

// place finds a legal square for piece in two phases: up to attempts
// random probes, then a linear scan in square order. The scan is
// exhaustive, so a false result means no legal empty square exists.
func (g *Generator) place(piece chess.Piece, grid chess.Grid, snap chess.Snapshot, attempts int) (chess.Square, bool) {
	if sq, ok := g.probe(piece, grid, snap, attempts); ok {
		g.stats.RandomPlacements++
		return sq, true
	}

	sq, ok := scan(piece, grid, snap, 0)
	if ok {
		g.stats.FallbackPlacements++
		g.logger.Debug("placed by linear scan",
			"piece", piece.String(), "square", int(sq), "attempts", attempts)
	}
	return sq, ok
}

// probe draws random squares, skipping occupied ones; each draw counts
// as an attempt.
func (g *Generator) probe(piece chess.Piece, grid chess.Grid, snap chess.Snapshot, attempts int) (chess.Square, bool) {
	cells := grid.Cells()
	for i := 0; i < attempts; i++ {
		sq := chess.Square(g.rng.Intn(cells))
		if snap.Occupied(sq) {
			continue
		}
		if legal(sq, piece, grid, snap) {
			return sq, true
		}
	}
	return 0, false
}

// scan returns the first empty legal square at or after from.
func scan(piece chess.Piece, grid chess.Grid, snap chess.Snapshot, from chess.Square) (chess.Square, bool) {
	occ := snap.Occupancy(grid)
	for sq := from; int(sq) < grid.Cells(); sq++ {
		if occ[sq] {
			continue
		}
		if legal(sq, piece, grid, snap) {
			return sq, true
		}
	}
	return 0, false
}
