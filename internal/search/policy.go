package search

import (
	"sort"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/eval"
)

// TopCapturePercent is how often the Easy policy takes its best capture
// when it has a choice of captures.
const TopCapturePercent = 70

type scoredMove struct {
	move  chess.Move
	base  int
	score int
}

// randomCapture is the Easy policy. With captures available it takes the
// best one TopCapturePercent of the time and otherwise one of the next
// two. Without captures it picks among the better half of the moves that
// score above zero, and failing that any legal move.
func (e *Engine) randomCapture(legal []chess.Move) chess.Move {
	var captures, good []scoredMove
	for _, m := range legal {
		s := scoredMove{move: m, base: eval.EasyBaseScore(m)}
		s.score = s.base + e.rng.Intn(eval.JitterRange)
		switch {
		case m.IsCapture():
			captures = append(captures, s)
		case s.base > 0:
			good = append(good, s)
		}
	}

	byScore := func(ms []scoredMove) {
		sort.SliceStable(ms, func(i, j int) bool { return ms[i].score > ms[j].score })
	}

	if len(captures) > 0 {
		byScore(captures)
		if len(captures) == 1 || e.rng.Intn(100) < TopCapturePercent {
			return captures[0].move
		}
		rest := captures[1:min(len(captures), 3)]
		return rest[e.rng.Intn(len(rest))].move
	}

	if len(good) > 0 {
		byScore(good)
		top := good[:(len(good)+1)/2]
		return top[e.rng.Intn(len(top))].move
	}

	return legal[e.rng.Intn(len(legal))]
}

// replyCheck is the Medium policy: the move with the highest
// eval.MediumMoveScore, the first such move on ties.
func (e *Engine) replyCheck(board *chess.Board, side chess.Colour, legal []chess.Move) chess.Move {
	best, bestScore := legal[0], 0
	for i, m := range legal {
		e.visit()
		score := eval.MediumMoveScore(board, m, side, e.params.Weights)
		if i == 0 || score > bestScore {
			best, bestScore = m, score
		}
	}
	e.stats.Depth, e.stats.Score = 1, bestScore
	return best
}
