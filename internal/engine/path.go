package engine

import "github.com/lgbarn/chess-ai-go/internal/chess"

// IsPathClear returns true if every square strictly between from and to is
// empty. The squares must share a row, column or diagonal; any other pair
// has no path and reports false.
func IsPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col
	if rowDiff != 0 && colDiff != 0 && abs(rowDiff) != abs(colDiff) {
		return false
	}

	rowDir := sign(rowDiff)
	colDir := sign(colDiff)

	sq := from.Offset(rowDir, colDir)
	for sq != to {
		if !board.At(sq).IsEmpty() {
			return false
		}
		sq = sq.Offset(rowDir, colDir)
	}

	return true
}

// isStraight reports whether two squares share a row or column.
func isStraight(rowDiff, colDiff int) bool {
	return rowDiff == 0 || colDiff == 0
}

// isDiagonal reports whether two squares share a diagonal.
func isDiagonal(rowDiff, colDiff int) bool {
	return abs(rowDiff) == abs(colDiff)
}
