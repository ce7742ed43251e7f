package engine

import "github.com/lgbarn/chess-ai-go/internal/chess"

// BasicMoveValid checks per-kind movement geometry from one square to
// another, ignoring check and ignoring what occupies the destination
// except where the kind depends on it (pawn advances need an empty square,
// pawn diagonals need an enemy piece).
func BasicMoveValid(board *chess.Board, from, to chess.Square) bool {
	piece := board.At(from)
	if piece.IsEmpty() || from == to || !to.InBounds() {
		return false
	}

	if piece.Kind == chess.Pawn {
		return pawnMoveValid(board, piece, from, to)
	}
	return pieceReaches(board, piece.Kind, from, to)
}

// pawnMoveValid checks single and double advances and diagonal captures.
func pawnMoveValid(board *chess.Board, pawn chess.Piece, from, to chess.Square) bool {
	forward := pawn.Colour.Forward()
	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col
	target := board.At(to)

	switch {
	case colDiff == 0 && rowDiff == forward:
		return target.IsEmpty()

	case colDiff == 0 && rowDiff == 2*forward:
		// Double advance only from the starting row, through an empty square
		if from.Row != pawn.Colour.PawnRow() {
			return false
		}
		return target.IsEmpty() && board.At(from.Offset(forward, 0)).IsEmpty()

	case abs(colDiff) == 1 && rowDiff == forward:
		return !target.IsEmpty() && target.Colour != pawn.Colour
	}

	return false
}

// pieceReaches checks the movement geometry of a non-pawn piece.
func pieceReaches(board *chess.Board, kind chess.PieceKind, from, to chess.Square) bool {
	rowDiff := to.Row - from.Row
	colDiff := to.Col - from.Col

	switch kind {
	case chess.Knight:
		return (abs(rowDiff) == 1 && abs(colDiff) == 2) || (abs(rowDiff) == 2 && abs(colDiff) == 1)

	case chess.Bishop:
		if !isDiagonal(rowDiff, colDiff) {
			return false
		}
		return IsPathClear(board, from, to)

	case chess.Rook:
		if !isStraight(rowDiff, colDiff) {
			return false
		}
		return IsPathClear(board, from, to)

	case chess.Queen:
		if !isDiagonal(rowDiff, colDiff) && !isStraight(rowDiff, colDiff) {
			return false
		}
		return IsPathClear(board, from, to)

	case chess.King:
		return abs(rowDiff) <= 1 && abs(colDiff) <= 1
	}

	return false
}

// Attacks reports whether the piece on from attacks to. Pawns attack their
// forward diagonals whatever occupies them; every other kind attacks the
// squares it could move to.
func Attacks(board *chess.Board, from, to chess.Square) bool {
	piece := board.At(from)
	if piece.IsEmpty() || from == to {
		return false
	}
	if piece.Kind == chess.Pawn {
		return to.Row-from.Row == piece.Colour.Forward() && abs(to.Col-from.Col) == 1
	}
	return pieceReaches(board, piece.Kind, from, to)
}
