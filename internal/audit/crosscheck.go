package audit

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chunker-go/internal/chess"
	"github.com/lgbarn/chunker-go/internal/notation"
)

// libraryPieces maps each piece to its notnil/chess equivalent.
var libraryPieces = map[chess.Piece]notnil.Piece{
	chess.WhiteKing:   notnil.WhiteKing,
	chess.WhiteQueen:  notnil.WhiteQueen,
	chess.WhiteRook:   notnil.WhiteRook,
	chess.WhiteBishop: notnil.WhiteBishop,
	chess.WhiteKnight: notnil.WhiteKnight,
	chess.WhitePawn:   notnil.WhitePawn,
	chess.BlackKing:   notnil.BlackKing,
	chess.BlackQueen:  notnil.BlackQueen,
	chess.BlackRook:   notnil.BlackRook,
	chess.BlackBishop: notnil.BlackBishop,
	chess.BlackKnight: notnil.BlackKnight,
	chess.BlackPawn:   notnil.BlackPawn,
}

// librarySquare converts a square on an 8×8 grid to a notnil/chess
// square. Row 0 is rank 8.
func librarySquare(sq chess.Square) notnil.Square {
	row, col := chess.Grid(8).RowCol(sq)
	return notnil.NewSquare(notnil.File(col), notnil.Rank(7-row))
}

// CrossCheck verifies an 8×8 position against dragontoothmg and
// notnil/chess. dragontoothmg must agree that neither side is in check
// with either side to move; notnil/chess must decode the position's FEN
// back to the same pieces on the same squares.
//
// Positions that fail Check are reported without consulting the
// libraries, which assume exactly one king per side.
func CrossCheck(pos chess.Position) []Violation {
	if v := Check(pos, 8); len(v) > 0 {
		return v
	}

	var out []Violation
	for _, side := range []chess.Colour{chess.White, chess.Black} {
		board := dragontoothmg.ParseFen(notation.FEN(pos, side))
		if board.OurKingInCheck() {
			sq, _ := pos.Snapshot().Find(chess.MakePiece(side, chess.King))
			out = append(out, Violation{
				Problem: LibraryMismatch,
				Square:  sq.Square,
				Detail:  fmt.Sprintf("dragontoothmg sees the %s king in check", side),
			})
		}
	}

	fen := notation.FEN(pos, chess.White)
	opt, err := notnil.FEN(fen)
	if err != nil {
		return append(out, Violation{
			Problem: LibraryMismatch,
			Detail:  fmt.Sprintf("notnil/chess rejected %q: %v", fen, err),
		})
	}
	board := notnil.NewGame(opt).Position().Board()

	pieces := 0
	for sq := notnil.A1; sq <= notnil.H8; sq++ {
		if board.Piece(sq) != notnil.NoPiece {
			pieces++
		}
	}
	if pieces != len(pos) {
		out = append(out, Violation{
			Problem: LibraryMismatch,
			Detail:  fmt.Sprintf("notnil/chess decoded %d pieces, want %d", pieces, len(pos)),
		})
	}
	for _, p := range pos {
		if got := board.Piece(librarySquare(p.Square)); got != libraryPieces[p.Piece] {
			out = append(out, Violation{
				Problem: LibraryMismatch,
				Square:  p.Square,
				Detail:  fmt.Sprintf("notnil/chess has %s, want %s", got, p.Piece),
			})
		}
	}
	return out
}

// VerifyWithLibraries is CrossCheck returning an error like Verify.
func VerifyWithLibraries(pos chess.Position) error {
	return asError(CrossCheck(pos))
}
