package recall

import "github.com/lgbarn/chunker-go/internal/chess"

// Verdict is the state of an attempt.
type Verdict int

const (
	Pending Verdict = iota
	Succeeded
	Failed
)

// String returns the string representation of a verdict.
func (v Verdict) String() string {
	switch v {
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Attempt tracks a player's drops against a position during recall.
// Each drop is judged as it happens: the first wrong drop fails the
// attempt, and filling every square of the position succeeds it.
// Drops after the attempt has concluded are ignored.
type Attempt struct {
	expected chess.Position
	placed   chess.Position
	filled   map[chess.Square]bool
	verdict  Verdict
}

// NewAttempt starts an attempt at reproducing expected.
func NewAttempt(expected chess.Position) *Attempt {
	cp := make(chess.Position, len(expected))
	copy(cp, expected)
	return &Attempt{
		expected: cp,
		filled:   make(map[chess.Square]bool, len(cp)),
	}
}

// Drop records piece dropped on sq and reports whether it was correct,
// together with the verdict after the drop.
func (a *Attempt) Drop(sq chess.Square, piece chess.Piece) (bool, Verdict) {
	if a.verdict != Pending {
		return false, a.verdict
	}

	want, ok := a.expected.PieceAt(sq)
	correct := ok && want == piece

	if !correct {
		// A wrong piece replaces whatever was dropped there before.
		a.record(sq, piece)
		delete(a.filled, sq)
		a.verdict = Failed
		return false, a.verdict
	}
	if !a.filled[sq] {
		a.placed = append(a.placed, chess.Placement{Square: sq, Piece: piece})
	}

	// A repeated correct drop on the same square counts once.
	a.filled[sq] = true
	if len(a.filled) == len(a.expected) {
		a.verdict = Succeeded
	}
	return true, a.verdict
}

func (a *Attempt) record(sq chess.Square, piece chess.Piece) {
	for i := range a.placed {
		if a.placed[i].Square == sq {
			a.placed[i].Piece = piece
			return
		}
	}
	a.placed = append(a.placed, chess.Placement{Square: sq, Piece: piece})
}

// Expire concludes a pending attempt as failed, as when the recall timer runs out.
func (a *Attempt) Expire() Verdict {
	if a.verdict == Pending {
		a.verdict = Failed
	}
	return a.verdict
}

// Verdict returns the current verdict.
func (a *Attempt) Verdict() Verdict {
	return a.verdict
}

// Remaining returns how many squares of the position are still unfilled.
func (a *Attempt) Remaining() int {
	return len(a.expected) - len(a.filled)
}

// Placed returns the player's placements so far, sorted by square.
func (a *Attempt) Placed() chess.Position {
	cp := make(chess.Position, len(a.placed))
	copy(cp, a.placed)
	cp.Sort()
	return cp
}

// Report compares the placements so far with the position.
func (a *Attempt) Report() Report {
	return Compare(a.expected, a.Placed())
}
