// Package chess provides the core piece, square and position types shared by
// the generator, the legality engine and the round controller.
package chess

import "fmt"

// Colour represents the colour of a piece.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta a pawn of this colour moves by.
// White advances towards row 0, black towards the last row.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// Kind represents the type of a piece independent of its colour.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// Kinds lists every real piece kind in palette order.
var Kinds = [...]Kind{Pawn, Knight, Bishop, Rook, Queen, King}

// String returns the lower-case name of a kind.
func (k Kind) String() string {
	names := []string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Letter returns the upper-case FEN letter of a kind.
func (k Kind) Letter() byte {
	letters := []byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsSlider reports whether the kind attacks along rays.
func (k Kind) IsSlider() bool {
	return k == Bishop || k == Rook || k == Queen
}

// Piece is a coloured piece. The zero value is NoPiece.
// Every (colour, kind) pair has exactly one Piece value.
type Piece uint8

// NoPiece is the zero Piece and marks an empty square.
const NoPiece Piece = 0

// kindShift leaves the low bit for the colour.
const kindShift = 1

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	return Piece(int(kind)<<kindShift | int(colour))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// Convenience values for the twelve pieces.
var (
	WhitePawn   = W(Pawn)
	WhiteKnight = W(Knight)
	WhiteBishop = W(Bishop)
	WhiteRook   = W(Rook)
	WhiteQueen  = W(Queen)
	WhiteKing   = W(King)
	BlackPawn   = B(Pawn)
	BlackKnight = B(Knight)
	BlackBishop = B(Bishop)
	BlackRook   = B(Rook)
	BlackQueen  = B(Queen)
	BlackKing   = B(King)
)

// Colour extracts the colour of the piece.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Kind extracts the kind of the piece.
func (p Piece) Kind() Kind {
	return Kind(p >> kindShift)
}

// Valid reports whether p is one of the twelve real pieces.
func (p Piece) Valid() bool {
	k := p.Kind()
	return k > NoKind && k < NumKinds
}

// Is reports whether the piece has the given kind.
func (p Piece) Is(kind Kind) bool {
	return p.Kind() == kind
}

// Letter returns the FEN letter: upper case for white, lower case for black.
func (p Piece) Letter() byte {
	l := p.Kind().Letter()
	if p.Colour() == Black && l != '?' {
		return l + ('a' - 'A')
	}
	return l
}

// symbols holds the Unicode glyphs indexed by [colour][kind].
var symbols = [2][NumKinds]string{
	Black: {"", "♟", "♞", "♝", "♜", "♛", "♚"},
	White: {"", "♙", "♘", "♗", "♖", "♕", "♔"},
}

// Symbol returns the Unicode chess glyph for the piece.
func (p Piece) Symbol() string {
	if !p.Valid() {
		return "?"
	}
	return symbols[p.Colour()][p.Kind()]
}

// String returns a readable name such as "white knight".
func (p Piece) String() string {
	if !p.Valid() {
		return "none"
	}
	return p.Colour().String() + " " + p.Kind().String()
}

// PieceFromLetter converts a FEN letter to a piece.
func PieceFromLetter(letter byte) (Piece, bool) {
	colour := White
	if letter >= 'a' && letter <= 'z' {
		colour = Black
		letter -= 'a' - 'A'
	}
	for _, k := range Kinds {
		if k.Letter() == letter {
			return MakePiece(colour, k), true
		}
	}
	return NoPiece, false
}

// PieceFromSymbol converts a Unicode glyph or a FEN letter to a piece.
func PieceFromSymbol(s string) (Piece, bool) {
	if len(s) == 1 {
		return PieceFromLetter(s[0])
	}
	for c := range symbols {
		for k := Pawn; k < NumKinds; k++ {
			if symbols[c][k] == s {
				return MakePiece(Colour(c), k), true
			}
		}
	}
	return NoPiece, false
}

// MarshalText encodes the piece as its FEN letter.
func (p Piece) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("cannot encode piece %d", p)
	}
	return []byte{p.Letter()}, nil
}

// UnmarshalText decodes a FEN letter or Unicode glyph.
func (p *Piece) UnmarshalText(text []byte) error {
	piece, ok := PieceFromSymbol(string(text))
	if !ok {
		return fmt.Errorf("unknown piece %q", text)
	}
	*p = piece
	return nil
}
