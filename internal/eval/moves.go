package eval

import (
	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/engine"
)

// CentreBonus is added to the Easy score of a move onto a central square.
const CentreBonus = 20

// JitterRange bounds the random part of the Easy score: [0, JitterRange).
const JitterRange = 10

// Intn is the random source the Easy scorer draws jitter from.
type Intn interface {
	Intn(n int) int
}

// EasyBaseScore is the deterministic part of the Easy score: the value
// of the captured piece plus a bonus for landing on a central square.
func EasyBaseScore(m chess.Move) int {
	score := PieceValue(m.Captured)
	if m.To.IsCentral() {
		score += CentreBonus
	}
	return score
}

// EasyMoveScore adds jitter to EasyBaseScore.
func EasyMoveScore(m chess.Move, rng Intn) int {
	return EasyBaseScore(m) + rng.Intn(JitterRange)
}

// MediumMoveScore scores a move for the Medium tier: the evaluation of the
// position after the move minus the value of the best capture the
// opponent could then make.
func MediumMoveScore(board *chess.Board, m chess.Move, side chess.Colour, w Weights) int {
	after := engine.ApplyMove(*board, m)
	score := Evaluate(&after, side, w)

	aux := &chess.GameAux{LastMove: &m}
	best := 0
	for _, reply := range engine.LegalMovesForSide(&after, side.Opposite(), aux) {
		best = max(best, PieceValue(reply.Captured))
	}
	return score - best
}
