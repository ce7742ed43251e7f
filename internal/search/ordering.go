package search

import (
	"sort"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/eval"
)

// Ordering bonuses.
const (
	CheckOrderBonus  = 50
	CentreOrderBonus = 10
)

// OrderScore ranks a move for search ordering: the captured value plus
// the MVV-LVA difference, a bonus for giving check and a small bonus for
// landing in the centre.
func OrderScore(board *chess.Board, m chess.Move) int {
	score := 0
	if m.IsCapture() {
		victim := eval.PieceValue(m.Captured)
		score += victim + victim - eval.PieceValue(m.Piece)
	}
	if m.IsPromotion() {
		score += eval.PieceValue(m.Promotion)
	}
	if m.To.IsCentral() {
		score += CentreOrderBonus
	}

	mover := board.At(m.From).Colour
	after := engine.ApplyMove(*board, m)
	if engine.KingInCheck(&after, mover.Opposite()) {
		score += CheckOrderBonus
	}
	return score
}

// OrderMoves returns the moves sorted by descending OrderScore. Equal
// scores keep their generation order. The input slice is not modified.
func OrderMoves(board *chess.Board, moves []chess.Move) []chess.Move {
	type scored struct {
		move  chess.Move
		score int
	}
	ranked := make([]scored, len(moves))
	for i, m := range moves {
		ranked[i] = scored{m, OrderScore(board, m)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]chess.Move, len(ranked))
	for i, r := range ranked {
		out[i] = r.move
	}
	return out
}

// moveToFront moves the first occurrence of m to the start of moves.
func moveToFront(moves []chess.Move, m chess.Move) {
	for i := range moves {
		if moves[i] == m {
			copy(moves[1:i+1], moves[:i])
			moves[0] = m
			return
		}
	}
}
