package search

import (
	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/eval"
	"github.com/lgbarn/chess-ai-go/internal/hashing"
)

// infinity bounds every score, mates included.
const infinity = 1 << 30

// visit counts a node and yields to other goroutines every BatchSize nodes.
func (e *Engine) visit() {
	e.stats.Nodes++
	if e.params.BatchSize > 0 && e.stats.Nodes%e.params.BatchSize == 0 && e.yield != nil {
		e.stats.Yields++
		e.yield()
	}
}

// evaluate returns the static score of board, kept below any mate score.
func (e *Engine) evaluate(board *chess.Board) int {
	limit := e.params.MateScore - 1
	return min(max(eval.Evaluate(board, e.side, e.params.Weights), -limit), limit)
}

// terminalScore scores a position where toMove has no legal move. Mates
// found with more depth remaining are nearer and score further from zero.
func (e *Engine) terminalScore(toMove chess.Colour, inCheck bool, depth int) int {
	if !inCheck {
		return 0
	}
	score := e.params.MateScore + depth
	if toMove == e.side {
		return -score
	}
	return score
}

// cacheKey extends the position key with a live en passant square, since
// that capture changes the moves available.
func (e *Engine) cacheKey(board *chess.Board, toMove chess.Colour, last *chess.Move) hashing.Key {
	key := hashing.Encode(board, toMove)
	if sq, ok := engine.EnPassantTarget(board, toMove, last); ok {
		key += hashing.Key("@" + sq.String())
	}
	return key + e.persp
}

func (e *Engine) nullMoveAllowed(depth int, inCheck bool, moves int) bool {
	return e.params.UseNullMove &&
		!inCheck &&
		depth >= e.params.NullMoveReduction &&
		moves >= e.params.NullMoveMinMoves
}

// alphaBeta returns the minimax value of the position from the AI side's
// point of view. The AI side maximises and the opponent minimises.
func (e *Engine) alphaBeta(board *chess.Board, toMove chess.Colour, last *chess.Move, depth, alpha, beta int, allowNull bool) int {
	e.visit()

	var key hashing.Key
	if e.cache != nil {
		key = e.cacheKey(board, toMove, last)
		if entry, ok := e.cache.Probe(key, depth); ok {
			switch entry.Bound {
			case Exact:
				return entry.Value
			case LowerBound:
				alpha = max(alpha, entry.Value)
			case UpperBound:
				beta = min(beta, entry.Value)
			}
			if alpha >= beta {
				return entry.Value
			}
		}
	}

	aux := &chess.GameAux{LastMove: last}
	moves := engine.LegalMovesForSide(board, toMove, aux)
	inCheck := engine.KingInCheck(board, toMove)
	if len(moves) == 0 {
		return e.terminalScore(toMove, inCheck, depth)
	}
	if depth <= 0 {
		if e.params.UseQuiescence {
			return e.quiesce(board, toMove, last, e.params.QuiescenceDepth, alpha, beta)
		}
		return e.evaluate(board)
	}

	maximizing := toMove == e.side

	if allowNull && e.nullMoveAllowed(depth, inCheck, len(moves)) {
		v := e.alphaBeta(board, toMove.Opposite(), nil, depth-e.params.NullMoveReduction, alpha, beta, false)
		if maximizing && v >= beta {
			e.stats.NullCutoffs++
			return beta
		}
		if !maximizing && v <= alpha {
			e.stats.NullCutoffs++
			return alpha
		}
	}

	if e.params.UseOrdering {
		moves = OrderMoves(board, moves)
	}

	alphaOrig, betaOrig := alpha, beta
	best := infinity
	if maximizing {
		best = -infinity
	}
	for i := range moves {
		m := moves[i]
		next := engine.ApplyMove(*board, m)
		v := e.alphaBeta(&next, toMove.Opposite(), &m, depth-1, alpha, beta, true)
		if maximizing {
			best = max(best, v)
			alpha = max(alpha, v)
		} else {
			best = min(best, v)
			beta = min(beta, v)
		}
		if alpha >= beta {
			break
		}
	}

	if e.cache != nil {
		bound := Exact
		switch {
		case best <= alphaOrig:
			bound = UpperBound
		case best >= betaOrig:
			bound = LowerBound
		}
		e.cache.Store(key, Entry{Value: best, Depth: depth, Bound: bound})
	}
	return best
}

// quiesce extends the search along captures, promotions and checks so
// that the static evaluation is not taken in the middle of an exchange.
// The side to move may stand pat on the static evaluation.
func (e *Engine) quiesce(board *chess.Board, toMove chess.Colour, last *chess.Move, depth, alpha, beta int) int {
	e.visit()
	e.stats.QuiescenceNodes++

	aux := &chess.GameAux{LastMove: last}
	moves := engine.LegalMovesForSide(board, toMove, aux)
	if len(moves) == 0 {
		return e.terminalScore(toMove, engine.KingInCheck(board, toMove), 0)
	}

	stand := e.evaluate(board)
	if depth <= 0 {
		return stand
	}

	maximizing := toMove == e.side
	if maximizing {
		if stand >= beta {
			return stand
		}
		alpha = max(alpha, stand)
	} else {
		if stand <= alpha {
			return stand
		}
		beta = min(beta, stand)
	}

	best := stand
	for i := range moves {
		m := moves[i]
		next := engine.ApplyMove(*board, m)
		if !m.IsCapture() && !m.IsPromotion() && !engine.KingInCheck(&next, toMove.Opposite()) {
			continue
		}
		v := e.quiesce(&next, toMove.Opposite(), &m, depth-1, alpha, beta)
		if maximizing {
			best = max(best, v)
			alpha = max(alpha, v)
		} else {
			best = min(best, v)
			beta = min(beta, v)
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
