package hashing

import "github.com/lgbarn/chunker-go/internal/chess"

// Zobrist keys are derived on demand from (piece, square) with splitmix64,
// so any grid size is covered without a precomputed table.
const (
	zobristSeed = 0x5eed_c4e5_b0a2_d001
	gridSalt    = 0x9e37_79b9_7f4a_7c15
)

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// zobristKey returns the key for piece standing on sq.
func zobristKey(piece chess.Piece, sq chess.Square) uint64 {
	return splitmix64(zobristSeed ^ uint64(piece)<<32 ^ uint64(uint32(sq)))
}

// GenerateZobristHash returns the Zobrist hash of pos on grid. The grid
// size is mixed in so the same placements on different boards differ.
// Placement order does not matter.
func GenerateZobristHash(pos chess.Position, grid chess.Grid) uint64 {
	hash := splitmix64(gridSalt ^ uint64(grid))
	for _, p := range pos {
		hash ^= zobristKey(p.Piece, p.Square)
	}
	return hash
}

// WeakHash is a cheap secondary hash: a weighted sum over the placements.
func WeakHash(pos chess.Position) uint32 {
	var hash uint32
	for _, p := range pos {
		hash += uint32(p.Piece) * (uint32(p.Square) + 1) * 2654435761
	}
	return hash
}
