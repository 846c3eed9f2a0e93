// Package notation converts positions to and from FEN-style piece
// placement strings on any N×N grid, and draws text diagrams.
//
// Rows are listed from row 0 (the top of the board, rank 8 on a standard
// board) separated by '/'. Pieces use FEN letters and runs of empty
// squares use decimal counts, which may exceed 9 on large grids.
package notation

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chunker-go/internal/chess"
	"github.com/lgbarn/chunker-go/internal/errors"
)

// Encode returns the piece placement string for pos on grid.
// Placements outside the grid are ignored.
func Encode(pos chess.Position, grid chess.Grid) string {
	board := make([]chess.Piece, grid.Cells())
	for _, p := range pos {
		if grid.Valid(p.Square) {
			board[p.Square] = p.Piece
		}
	}

	var sb strings.Builder
	for row := 0; row < int(grid); row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < int(grid); col++ {
			piece := board[grid.Square(row, col)]
			if piece == chess.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	return sb.String()
}

// Decode parses a piece placement string. The grid size is the number of
// rows, and every row must describe exactly that many squares. Any FEN
// fields after the placement are ignored. The result is sorted by square.
func Decode(s string) (chess.Position, chess.Grid, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, 0, errors.Wrap(errors.ErrInvalidNotation, "empty placement")
	}
	rows := strings.Split(fields[0], "/")
	grid := chess.Grid(len(rows))

	var pos chess.Position
	for row, text := range rows {
		col := 0
		for i := 0; i < len(text); {
			c := text[i]
			if c >= '0' && c <= '9' {
				j := i
				for j < len(text) && text[j] >= '0' && text[j] <= '9' {
					j++
				}
				n, err := strconv.Atoi(text[i:j])
				if err != nil {
					return nil, 0, errors.Wrapf(errors.ErrInvalidNotation, "row %d: bad run %q: %v", row, text[i:j], err)
				}
				if n == 0 {
					return nil, 0, errors.Wrapf(errors.ErrInvalidNotation, "row %d: empty run of zero", row)
				}
				if n > int(grid)-col {
					return nil, 0, errors.Wrapf(errors.ErrInvalidNotation, "row %d: run of %d overflows the row", row, n)
				}
				col += n
				i = j
				continue
			}

			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return nil, 0, errors.Wrapf(errors.ErrInvalidNotation, "row %d: unknown piece %q", row, c)
			}
			if col >= int(grid) {
				return nil, 0, errors.Wrapf(errors.ErrInvalidNotation, "row %d: too many squares", row)
			}
			pos = append(pos, chess.Placement{Square: grid.Square(row, col), Piece: piece})
			col++
			i++
		}
		if col != int(grid) {
			return nil, 0, errors.Wrapf(errors.ErrInvalidNotation, "row %d: %d squares, want %d", row, col, grid)
		}
	}

	pos.Sort()
	return pos, grid, nil
}

// FEN returns a full FEN record for an 8×8 position with the given side to
// move. Castling and en passant are never available in a generated
// position.
func FEN(pos chess.Position, sideToMove chess.Colour) string {
	side := "w"
	if sideToMove == chess.Black {
		side = "b"
	}
	return Encode(pos, 8) + " " + side + " - - 0 1"
}

// Render draws pos as a text diagram, one row per line, with '.' for
// empty squares. When unicode is set pieces are drawn as chess glyphs.
func Render(pos chess.Position, grid chess.Grid, unicode bool) string {
	board := make([]chess.Piece, grid.Cells())
	for _, p := range pos {
		if grid.Valid(p.Square) {
			board[p.Square] = p.Piece
		}
	}

	var sb strings.Builder
	for row := 0; row < int(grid); row++ {
		for col := 0; col < int(grid); col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			piece := board[grid.Square(row, col)]
			switch {
			case piece == chess.NoPiece:
				sb.WriteByte('.')
			case unicode:
				sb.WriteString(piece.Symbol())
			default:
				sb.WriteByte(piece.Letter())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
