package eval

import (
	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/engine"
)

// Passed pawn bonus by rows advanced from the starting row.
var passedPawnBonus = [8]int{0, 10, 20, 40, 70, 120, 200, 0}

const (
	doubledPawnPenalty  = 15
	isolatedPawnPenalty = 12
	backwardPawnPenalty = 8
)

// pawnFiles counts the pawns of a colour on each file.
func pawnFiles(board *chess.Board, colour chess.Colour) [chess.BoardSize]int {
	var files [chess.BoardSize]int
	board.ForEach(func(sq chess.Square, p chess.Piece) {
		if p.Is(colour, chess.Pawn) {
			files[sq.Col]++
		}
	})
	return files
}

// isPassedPawn reports whether no enemy pawn stands ahead of the pawn on
// its own or an adjacent file.
func isPassedPawn(board *chess.Board, sq chess.Square, colour chess.Colour) bool {
	enemy := colour.Opposite()
	fwd := colour.Forward()
	for row := sq.Row + fwd; row >= 0 && row < chess.BoardSize; row += fwd {
		for col := sq.Col - 1; col <= sq.Col+1; col++ {
			s := chess.Sq(row, col)
			if s.InBounds() && board.At(s).Is(enemy, chess.Pawn) {
				return false
			}
		}
	}
	return true
}

// isBackwardPawn reports whether no friendly pawn on an adjacent file is
// level with or behind the pawn, and the square in front of it is
// covered by an enemy pawn.
func isBackwardPawn(board *chess.Board, sq chess.Square, colour chess.Colour) bool {
	fwd := colour.Forward()
	for row := 0; row < chess.BoardSize; row++ {
		// Rows level with or behind the pawn
		if (row-sq.Row)*fwd > 0 {
			continue
		}
		for _, col := range [2]int{sq.Col - 1, sq.Col + 1} {
			s := chess.Sq(row, col)
			if s.InBounds() && board.At(s).Is(colour, chess.Pawn) {
				return false
			}
		}
	}

	stop := sq.Offset(fwd, 0)
	if !stop.InBounds() {
		return false
	}
	enemy := colour.Opposite()
	for _, dc := range [2]int{-1, 1} {
		s := stop.Offset(fwd, dc)
		if s.InBounds() && board.At(s).Is(enemy, chess.Pawn) {
			return true
		}
	}
	return false
}

// pawnStructure rewards passed pawns by advancement and penalises
// doubled, isolated and backward pawns.
func pawnStructure(board *chess.Board, colour chess.Colour) int {
	files := pawnFiles(board, colour)
	score := 0

	for _, n := range files {
		if n > 1 {
			score -= (n - 1) * doubledPawnPenalty
		}
	}

	board.ForEach(func(sq chess.Square, p chess.Piece) {
		if !p.Is(colour, chess.Pawn) {
			return
		}
		if isPassedPawn(board, sq, colour) {
			advance := min(engine.PawnAdvance(sq, colour), len(passedPawnBonus)-1)
			score += passedPawnBonus[advance]
		}

		left := sq.Col > 0 && files[sq.Col-1] > 0
		right := sq.Col < chess.BoardSize-1 && files[sq.Col+1] > 0
		if !left && !right {
			score -= isolatedPawnPenalty
		} else if isBackwardPawn(board, sq, colour) {
			score -= backwardPawnPenalty
		}
	})

	return score
}
