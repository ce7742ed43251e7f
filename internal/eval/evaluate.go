package eval

import (
	"math"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/engine"
)

// Evaluate scores the board from side's point of view: positive favours
// side. It never modifies the board and returns a finite score for any
// board, including ones without queens, pawns or even kings.
func Evaluate(board *chess.Board, side chess.Colour, w Weights) int {
	opp := side.Opposite()

	score := float64(Material(board, side) - Material(board, opp))

	if w.needsTerms() {
		score += w.Positional * float64(positional(board, side)-positional(board, opp))
		score += w.KingSafety * float64(kingSafety(board, side)-kingSafety(board, opp))
		score += w.PawnStructure * float64(pawnStructure(board, side)-pawnStructure(board, opp))
		score += w.CenterControl * float64(centreControl(board, side)-centreControl(board, opp))
		score += w.Coordination * float64(coordination(board, side)-coordination(board, opp))
		score += w.Hanging * float64(hanging(board, side)-hanging(board, opp))
	}

	score += float64(terminalBonus(board, side, w) - terminalBonus(board, opp, w))
	score *= w.scale()

	return int(math.Round(score))
}

// terminalBonus rewards colour for checking or mating its opponent.
func terminalBonus(board *chess.Board, colour chess.Colour, w Weights) int {
	if w.CheckBonus == 0 && w.MateBonus == 0 {
		return 0
	}
	opp := colour.Opposite()
	if !engine.KingInCheck(board, opp) {
		return 0
	}
	if w.MateBonus != 0 && !engine.HasLegalMoves(board, opp, nil) {
		return w.MateBonus
	}
	return w.CheckBonus
}
