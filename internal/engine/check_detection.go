package engine

import "github.com/lgbarn/chess-ai-go/internal/chess"

var (
	knightOffsets   = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalOffsets = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// FindKing returns the square of the given colour's king.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Squares[row][col].Is(colour, chess.King) {
				return chess.Sq(row, col), true
			}
		}
	}
	return chess.Square{}, false
}

// KingInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func KingInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := FindKing(board, colour)
	if !ok {
		return false
	}
	return SquareAttacked(board, kingSq, colour.Opposite())
}

// SquareAttacked returns true if any piece of the given colour attacks sq.
func SquareAttacked(board *chess.Board, sq chess.Square, by chess.Colour) bool {
	return countAttackers(board, sq, by, 1) > 0
}

// CountAttackers returns the number of pieces of the given colour that
// attack sq.
func CountAttackers(board *chess.Board, sq chess.Square, by chess.Colour) int {
	return countAttackers(board, sq, by, 16)
}

// countAttackers scans outward from sq for attackers, stopping once limit
// have been found.
func countAttackers(board *chess.Board, sq chess.Square, by chess.Colour, limit int) int {
	n := 0

	// Pawns attack from the row behind their direction of travel
	pawnRow := sq.Row - by.Forward()
	for _, dc := range [2]int{-1, 1} {
		from := chess.Sq(pawnRow, sq.Col+dc)
		if from.InBounds() && board.At(from).Is(by, chess.Pawn) {
			if n++; n >= limit {
				return n
			}
		}
	}

	for _, off := range knightOffsets {
		from := sq.Offset(off[0], off[1])
		if from.InBounds() && board.At(from).Is(by, chess.Knight) {
			if n++; n >= limit {
				return n
			}
		}
	}

	for _, off := range kingOffsets {
		from := sq.Offset(off[0], off[1])
		if from.InBounds() && board.At(from).Is(by, chess.King) {
			if n++; n >= limit {
				return n
			}
		}
	}

	for _, off := range diagonalOffsets {
		if p, ok := firstAlongRay(board, sq, off); ok && p.Colour == by &&
			(p.Kind == chess.Bishop || p.Kind == chess.Queen) {
			if n++; n >= limit {
				return n
			}
		}
	}

	for _, off := range straightOffsets {
		if p, ok := firstAlongRay(board, sq, off); ok && p.Colour == by &&
			(p.Kind == chess.Rook || p.Kind == chess.Queen) {
			if n++; n >= limit {
				return n
			}
		}
	}

	return n
}

// firstAlongRay returns the first piece met walking from sq in a direction.
func firstAlongRay(board *chess.Board, sq chess.Square, dir [2]int) (chess.Piece, bool) {
	cur := sq.Offset(dir[0], dir[1])
	for cur.InBounds() {
		if p := board.At(cur); !p.IsEmpty() {
			return p, true
		}
		cur = cur.Offset(dir[0], dir[1])
	}
	return chess.Piece{}, false
}

// WouldExposeKing reports whether moving the piece on from to to leaves
// the mover's own king in check. The board is not modified.
func WouldExposeKing(board *chess.Board, from, to chess.Square) bool {
	piece := board.At(from)
	if piece.IsEmpty() {
		return false
	}
	next := *board
	piece.HasMoved = true
	next.Clear(from)
	next.Set(to, piece)
	return KingInCheck(&next, piece.Colour)
}

// WouldExposeKingAfter reports whether applying a fully described move,
// special moves included, leaves the mover's king in check.
func WouldExposeKingAfter(board *chess.Board, m chess.Move) bool {
	colour := board.At(m.From).Colour
	next := ApplyMove(*board, m)
	return KingInCheck(&next, colour)
}
