package testutil

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/lgbarn/chunker-go/internal/chess"
)

// Fixture positions in the compact "K@0 k@8" form. The suffix is the grid size.
var (
	// KingsCorners3 is the smallest legal position: kings in opposite corners of a 3x3 grid.
	KingsCorners3 = "K@0 k@8"
	// RookCorner8 places a lone white rook in the top-left corner of an 8x8 grid.
	RookCorner8 = "R@0"
	// Middlegame8 is a legal 8x8 position with the white bishops on opposite shades.
	Middlegame8 = "k@4 B@16 r@21 N@27 p@33 B@44 K@60"
)

// ParsePosition parses placements written as "K@0 k@8", the same form
// chess.Position.String produces without the brackets. The result is
// sorted by square.
func ParsePosition(s string) (chess.Position, error) {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	var pos chess.Position
	for _, field := range strings.Fields(s) {
		letter, square, ok := strings.Cut(field, "@")
		if !ok || len(letter) != 1 {
			return nil, fmt.Errorf("bad placement %q", field)
		}
		piece, ok := chess.PieceFromLetter(letter[0])
		if !ok {
			return nil, fmt.Errorf("bad piece in %q", field)
		}
		sq, err := strconv.Atoi(square)
		if err != nil {
			return nil, fmt.Errorf("bad square in %q: %w", field, err)
		}
		pos = append(pos, chess.Placement{Square: chess.Square(sq), Piece: piece})
	}
	pos.Sort()
	return pos, nil
}

// MustPosition parses placements and calls t.Fatal on failure.
func MustPosition(t *testing.T, s string) chess.Position {
	t.Helper()
	pos, err := ParsePosition(s)
	if err != nil {
		t.Fatalf("failed to parse position %q: %v", s, err)
	}
	return pos
}
