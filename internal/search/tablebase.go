package search

import (
	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/eval"
)

// Tablebase picks moves in endgames with few pieces left.
type Tablebase interface {
	// MaxPieces is the largest total piece count the tablebase handles.
	MaxPieces() int

	// Probe returns a move for side among the legal moves, or false if
	// the position is not covered.
	Probe(board *chess.Board, side chess.Colour, legal []chess.Move) (chess.Move, bool)
}

// NoTablebase covers no positions.
type NoTablebase struct{}

// MaxPieces returns 0.
func (NoTablebase) MaxPieces() int { return 0 }

// Probe always returns false.
func (NoTablebase) Probe(*chess.Board, chess.Colour, []chess.Move) (chess.Move, bool) {
	return chess.Move{}, false
}

// HeuristicTablebase plays small endgames by rule of thumb: mate when
// possible, never stalemate while ahead, otherwise centralise the king,
// push passed pawns and drive the enemy king to the edge.
type HeuristicTablebase struct {
	Pieces int
}

// NewHeuristicTablebase creates a tablebase for up to six pieces.
func NewHeuristicTablebase() *HeuristicTablebase {
	return &HeuristicTablebase{Pieces: 6}
}

// MaxPieces returns the configured piece limit.
func (t *HeuristicTablebase) MaxPieces() int { return t.Pieces }

// Probe picks the best-scoring move, taking the first on ties.
func (t *HeuristicTablebase) Probe(board *chess.Board, side chess.Colour, legal []chess.Move) (chess.Move, bool) {
	if len(legal) == 0 || eval.CountPieces(board) > t.Pieces {
		return chess.Move{}, false
	}

	var best chess.Move
	bestScore := 0
	for i, m := range legal {
		after := engine.ApplyMove(*board, m)
		opp := side.Opposite()
		aux := &chess.GameAux{LastMove: &m}
		if !engine.HasLegalMoves(&after, opp, aux) && engine.KingInCheck(&after, opp) {
			return m, true
		}
		score := endgameScore(&after, side, aux)
		if i == 0 || score > bestScore {
			best, bestScore = m, score
		}
	}
	return best, true
}

// endgameScore scores the position after side has moved.
func endgameScore(board *chess.Board, side chess.Colour, aux *chess.GameAux) int {
	opp := side.Opposite()
	material := eval.Material(board, side) - eval.Material(board, opp)

	replies := engine.LegalMovesForSide(board, opp, aux)
	if len(replies) == 0 {
		// Stalemate: a draw is only welcome when behind.
		return -material
	}

	score := material
	threat := 0
	for _, r := range replies {
		threat = max(threat, eval.PieceValue(r.Captured))
	}
	score -= threat

	if own, ok := engine.FindKing(board, side); ok {
		score += (3 - engine.CentreDistance(own)) * 10
		if enemy, ok := engine.FindKing(board, opp); ok && material > 0 {
			score += engine.CentreDistance(enemy) * 15
			score -= engine.Distance(own, enemy) * 5
		}
	}

	board.ForEach(func(sq chess.Square, p chess.Piece) {
		if p.Kind != chess.Pawn {
			return
		}
		advance := engine.PawnAdvance(sq, p.Colour)
		if p.Colour == side {
			score += advance * 15
		} else {
			score -= advance * 15
		}
	})
	return score
}
