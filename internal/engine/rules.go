// Package engine provides the static legality checks used when pieces are
// placed on a board: attack detection and placement validation.
package engine

import (
	"github.com/lgbarn/chunker-go/internal/chess"
)

// Rule identifies a placement rule. RuleOK means every rule passed.
type Rule int

const (
	RuleOK Rule = iota
	RuleOffBoard
	RuleOccupied
	RulePawnBackRank
	RuleKingAdjacent
	RuleKingAttacked
	RuleBishopShade
	RuleSelfCheck
)

// String returns a short description of the rule.
func (r Rule) String() string {
	names := []string{
		"ok",
		"square off the board",
		"square occupied",
		"pawn on back rank",
		"king adjacent to opposing king",
		"king placed into check",
		"bishop on same shade as partner",
		"placement leaves own king in check",
	}
	if r >= 0 && int(r) < len(names) {
		return names[r]
	}
	return "unknown rule"
}

// IsValidPlacement reports whether piece may be placed on sq given the
// pieces already in snap. It never modifies snap.
func IsValidPlacement(sq chess.Square, piece chess.Piece, grid chess.Grid, snap chess.Snapshot) bool {
	return CheckPlacement(sq, piece, grid, snap) == RuleOK
}

// CheckPlacement applies the placement rules in order and returns the
// first one that fails, or RuleOK.
//
// Callers normally guarantee sq is empty and on the board; both are
// still checked so the function is safe on arbitrary input.
func CheckPlacement(sq chess.Square, piece chess.Piece, grid chess.Grid, snap chess.Snapshot) Rule {
	if !grid.Valid(sq) {
		return RuleOffBoard
	}
	if snap.Occupied(sq) {
		return RuleOccupied
	}

	switch piece.Kind() {
	case chess.Pawn:
		// Both back ranks are closed to both colours.
		if grid.IsBackRank(sq) {
			return RulePawnBackRank
		}

	case chess.King:
		if r := checkKing(sq, piece.Colour(), grid, snap); r != RuleOK {
			return r
		}

	case chess.Bishop:
		if !bishopShadeOK(sq, piece, grid, snap) {
			return RuleBishopShade
		}
	}

	hypothetical := snap.With(chess.Placement{Square: sq, Piece: piece})
	if InCheck(hypothetical, piece.Colour(), grid) {
		return RuleSelfCheck
	}
	return RuleOK
}

// GivesCheck reports whether piece on sq would attack the opposing king.
// It is not one of the placement rules: a piece may legally be placed
// giving check, but a generated position must leave both kings safe.
func GivesCheck(sq chess.Square, piece chess.Piece, grid chess.Grid, snap chess.Snapshot) bool {
	hypothetical := snap.With(chess.Placement{Square: sq, Piece: piece})
	return InCheck(hypothetical, piece.Colour().Opposite(), grid)
}

// checkKing rejects a king next to the other king or on an attacked square.
func checkKing(sq chess.Square, colour chess.Colour, grid chess.Grid, snap chess.Snapshot) Rule {
	if other, ok := FindKing(snap, colour.Opposite()); ok && grid.Adjacent(sq, other) {
		return RuleKingAdjacent
	}
	if IsSquareAttacked(sq, colour.Opposite(), grid, snap) {
		return RuleKingAttacked
	}
	return RuleOK
}

// bishopShadeOK requires a second bishop of a colour to stand on the
// opposite shade to the first one found.
func bishopShadeOK(sq chess.Square, piece chess.Piece, grid chess.Grid, snap chess.Snapshot) bool {
	partner, ok := snap.Find(piece)
	if !ok {
		return true
	}
	return grid.Shade(partner.Square) != grid.Shade(sq)
}
