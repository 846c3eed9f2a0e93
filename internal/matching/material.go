// Package matching selects generated positions by material.
package matching

import (
	"strings"

	"github.com/lgbarn/chunker-go/internal/chess"
)

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern     string
	exactMatch  bool
	whitePieces map[chess.Kind]int
	blackPieces map[chess.Kind]int
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces)
// Use uppercase for white, lowercase for black
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn
func NewMaterialMatcher(pattern string, exact bool) *MaterialMatcher {
	mm := &MaterialMatcher{
		pattern:     pattern,
		exactMatch:  exact,
		whitePieces: make(map[chess.Kind]int),
		blackPieces: make(map[chess.Kind]int),
	}
	mm.parsePattern(pattern)
	return mm
}

// parsePattern parses a material pattern like "QR:qrr"
func (mm *MaterialMatcher) parsePattern(pattern string) {
	white, black, _ := strings.Cut(pattern, ":")
	mm.parsePieces(white, chess.White)
	mm.parsePieces(black, chess.Black)
}

// parsePieces counts the pieces of one side. Letters of the wrong case
// and unknown characters are ignored.
func (mm *MaterialMatcher) parsePieces(s string, colour chess.Colour) {
	counts := mm.whitePieces
	if colour == chess.Black {
		counts = mm.blackPieces
	}
	for i := 0; i < len(s); i++ {
		piece, ok := chess.PieceFromLetter(s[i])
		if !ok || piece.Colour() != colour {
			continue
		}
		counts[piece.Kind()]++
	}
}

// MatchPosition checks if a position matches the material pattern.
func (mm *MaterialMatcher) MatchPosition(pos chess.Position) bool {
	whiteCounts := make(map[chess.Kind]int)
	blackCounts := make(map[chess.Kind]int)
	for _, p := range pos {
		if p.Piece.Colour() == chess.White {
			whiteCounts[p.Piece.Kind()]++
		} else {
			blackCounts[p.Piece.Kind()]++
		}
	}

	if mm.exactMatch {
		return mm.exactMaterialMatch(whiteCounts, blackCounts)
	}
	return mm.minimalMaterialMatch(whiteCounts, blackCounts)
}

// exactMaterialMatch checks for exact material match.
func (mm *MaterialMatcher) exactMaterialMatch(whiteCounts, blackCounts map[chess.Kind]int) bool {
	for _, kind := range chess.Kinds {
		if whiteCounts[kind] != mm.whitePieces[kind] || blackCounts[kind] != mm.blackPieces[kind] {
			return false
		}
	}
	return true
}

// minimalMaterialMatch checks that at least the specified pieces exist.
func (mm *MaterialMatcher) minimalMaterialMatch(whiteCounts, blackCounts map[chess.Kind]int) bool {
	// White must have at least the specified pieces
	for kind, count := range mm.whitePieces {
		if whiteCounts[kind] < count {
			return false
		}
	}

	// Black must have at least the specified pieces
	for kind, count := range mm.blackPieces {
		if blackCounts[kind] < count {
			return false
		}
	}

	return true
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}
