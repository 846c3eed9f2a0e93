package engine

import (
	"math/rand"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chunker-go/internal/chess"
	"github.com/lgbarn/chunker-go/internal/testutil"
)

func snap(placements ...chess.Placement) chess.Snapshot {
	return chess.NewSnapshot(placements...)
}

func at(sq int, p chess.Piece) chess.Placement {
	return chess.Placement{Square: chess.Square(sq), Piece: p}
}

// TestRookFromCorner covers the documented rook scenario on an 8x8 board.
func TestRookFromCorner(t *testing.T) {
	s := testutil.MustPosition(t, testutil.RookCorner8).Snapshot()
	tests := []struct {
		target int
		want   bool
	}{
		{7, true},  // along row 0
		{8, true},  // straight down column 0
		{9, false}, // diagonal neighbour
		{56, true},
		{63, false},
		{0, false}, // own square
	}
	for _, tt := range tests {
		if got := IsSquareAttacked(chess.Square(tt.target), chess.White, 8, s); got != tt.want {
			t.Errorf("IsSquareAttacked(%d, white) = %v; want %v", tt.target, got, tt.want)
		}
	}
	if IsSquareAttacked(7, chess.Black, 8, s) {
		t.Error("black should not attack anything on a board with only a white rook")
	}
}

func TestPawnAttacks(t *testing.T) {
	tests := []struct {
		name   string
		pawn   chess.Placement
		by     chess.Colour
		target int
		want   bool
	}{
		// 5x5 grid, pawn on (2,2) = 12.
		{"white forward left", at(12, chess.WhitePawn), chess.White, 6, true},
		{"white forward right", at(12, chess.WhitePawn), chess.White, 8, true},
		{"white straight ahead", at(12, chess.WhitePawn), chess.White, 7, false},
		{"white backwards", at(12, chess.WhitePawn), chess.White, 16, false},
		{"black forward left", at(12, chess.BlackPawn), chess.Black, 16, true},
		{"black forward right", at(12, chess.BlackPawn), chess.Black, 18, true},
		{"black backwards", at(12, chess.BlackPawn), chess.Black, 6, false},
		{"no wrap across edge", at(10, chess.WhitePawn), chess.White, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSquareAttacked(chess.Square(tt.target), tt.by, 5, snap(tt.pawn)); got != tt.want {
				t.Errorf("IsSquareAttacked(%d) = %v; want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestKnightAttacks(t *testing.T) {
	// Knight on (2,2) of a 5x5 grid reaches the 8 canonical squares.
	s := snap(at(12, chess.BlackKnight))
	want := map[int]bool{1: true, 3: true, 5: true, 9: true, 15: true, 19: true, 21: true, 23: true}
	for sq := 0; sq < 25; sq++ {
		if got := IsSquareAttacked(chess.Square(sq), chess.Black, 5, s); got != want[sq] {
			t.Errorf("knight attack on %d = %v; want %v", sq, got, want[sq])
		}
	}
}

func TestKnightDoesNotWrap(t *testing.T) {
	// Knight on (0,0): (1,-2) would wrap to the previous row if indices were used naively.
	s := snap(at(0, chess.WhiteKnight))
	for sq := 0; sq < 16; sq++ {
		row, col := chess.Grid(4).RowCol(chess.Square(sq))
		want := (row == 1 && col == 2) || (row == 2 && col == 1)
		if got := IsSquareAttacked(chess.Square(sq), chess.White, 4, s); got != want {
			t.Errorf("knight attack on %d = %v; want %v", sq, got, want)
		}
	}
}

func TestKingAttacks(t *testing.T) {
	s := snap(at(4, chess.WhiteKing))
	for sq := 0; sq < 9; sq++ {
		want := sq != 4
		if got := IsSquareAttacked(chess.Square(sq), chess.White, 3, s); got != want {
			t.Errorf("king attack on %d = %v; want %v", sq, got, want)
		}
	}
}

func TestSlidersStopAtBlockers(t *testing.T) {
	// 8x8: white bishop on 0, black pawn on 18 (2,2).
	s := snap(at(0, chess.WhiteBishop), at(18, chess.BlackPawn))
	if !IsSquareAttacked(9, chess.White, 8, s) {
		t.Error("square 9 should be attacked before the blocker")
	}
	if !IsSquareAttacked(18, chess.White, 8, s) {
		t.Error("the blocking square itself should be attacked")
	}
	if IsSquareAttacked(27, chess.White, 8, s) {
		t.Error("square 27 lies behind the blocker and should not be attacked")
	}

	// Friendly blockers stop rays too.
	q := snap(at(0, chess.BlackQueen), at(2, chess.BlackKnight))
	if !IsSquareAttacked(2, chess.Black, 8, q) {
		t.Error("queen should reach the friendly blocker square")
	}
	if IsSquareAttacked(3, chess.Black, 8, q) {
		t.Error("queen ray should stop at a friendly blocker")
	}
}

func TestOffBoardTarget(t *testing.T) {
	s := snap(at(0, chess.WhiteQueen))
	if IsSquareAttacked(-1, chess.White, 3, s) || IsSquareAttacked(9, chess.White, 3, s) {
		t.Error("off-board targets are never attacked")
	}
}

func TestInCheck(t *testing.T) {
	s := snap(at(0, chess.WhiteKing), at(6, chess.BlackRook), at(8, chess.BlackKing))
	if !InCheck(s, chess.White, 3) {
		t.Error("white king on 0 should be in check from rook on 6")
	}
	if InCheck(s, chess.Black, 3) {
		t.Error("black king should not be in check")
	}
	if InCheck(snap(at(4, chess.BlackRook)), chess.White, 3) {
		t.Error("InCheck without a king should be false")
	}
}

// dtSquare maps a row-major index with row 0 at the top onto dragontoothmg's
// a1=0 square numbering.
func dtSquare(sq int) uint8 {
	row, col := sq/8, sq%8
	return uint8((7-row)*8 + col)
}

// TestSlidingAttacksMatchDragontooth cross-validates ray casting against the
// magic bitboard tables of an independent move generator.
func TestSlidingAttacksMatchDragontooth(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	kinds := []chess.Kind{chess.Bishop, chess.Rook, chess.Queen}

	for trial := 0; trial < 200; trial++ {
		kind := kinds[trial%len(kinds)]
		slider := rng.Intn(64)
		placements := []chess.Placement{at(slider, chess.MakePiece(chess.White, kind))}
		var occupancy uint64 = 1 << dtSquare(slider)
		for _, sq := range rng.Perm(64)[:rng.Intn(16)] {
			if sq == slider {
				continue
			}
			placements = append(placements, at(sq, chess.BlackKnight))
			occupancy |= 1 << dtSquare(sq)
		}
		s := snap(placements...)

		var want uint64
		from := dtSquare(slider)
		if kind == chess.Bishop || kind == chess.Queen {
			want |= dragontoothmg.CalculateBishopMoveBitboard(from, occupancy)
		}
		if kind == chess.Rook || kind == chess.Queen {
			want |= dragontoothmg.CalculateRookMoveBitboard(from, occupancy)
		}

		for target := 0; target < 64; target++ {
			if target == slider {
				continue
			}
			expected := want&(1<<dtSquare(target)) != 0
			if got := IsSquareAttacked(chess.Square(target), chess.White, 8, s); got != expected {
				t.Fatalf("trial %d: %v on %d attacking %d = %v; dragontooth says %v",
					trial, kind, slider, target, got, expected)
			}
		}
	}
}
