package engine

import (
	"golang.org/x/exp/constraints"

	"github.com/lgbarn/chess-ai-go/internal/chess"
)

// abs returns the absolute value of x.
func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign[T constraints.Signed](x T) T {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// Distance returns the king-move distance between two squares.
func Distance(a, b chess.Square) int {
	return max(abs(a.Row-b.Row), abs(a.Col-b.Col))
}

// CentreDistance returns the king-move distance from sq to the nearest of
// the four central squares: 0 in the centre, 3 on the edge.
func CentreDistance(sq chess.Square) int {
	best := chess.BoardSize
	for _, c := range chess.CentralSquares {
		best = min(best, Distance(sq, c))
	}
	return best
}

// PawnAdvance returns how many rows a pawn of colour on sq stands from
// its starting row.
func PawnAdvance(sq chess.Square, colour chess.Colour) int {
	return abs(sq.Row - colour.PawnRow())
}
