package generator

import (
	"github.com/lgbarn/chunker-go/internal/chess"
	"github.com/lgbarn/chunker-go/internal/config"
)

// sides lists the colours in the order the pool and the kings are filled.
var sides = [...]chess.Colour{chess.White, chess.Black}

// buildPool expands the weight table into a multiset of non-king pieces.
// Uniform draws from the pool approximate the configured frequencies.
// When every weight is zero the pool falls back to one copy of each piece.
func buildPool(weights config.PieceWeights) []chess.Piece {
	var pool []chess.Piece
	for _, colour := range sides {
		for _, kind := range chess.Kinds {
			if kind == chess.King {
				continue
			}
			for i := 0; i < weights.Weight(kind); i++ {
				pool = append(pool, chess.MakePiece(colour, kind))
			}
		}
	}
	if len(pool) > 0 {
		return pool
	}

	for _, colour := range sides {
		for _, kind := range chess.Kinds {
			if kind != chess.King {
				pool = append(pool, chess.MakePiece(colour, kind))
			}
		}
	}
	return pool
}
