package engine

import "github.com/lgbarn/chess-ai-go/internal/chess"

// CanEnPassant reports whether the pawn on from may capture en passant by
// moving to to, given the move just played.
func CanEnPassant(board *chess.Board, from, to chess.Square, last *chess.Move) bool {
	if last == nil || !last.IsDoublePawnPush() {
		return false
	}

	pawn := board.At(from)
	if pawn.Kind != chess.Pawn {
		return false
	}

	// The pawn that just advanced must stand beside the capturer
	victimSq := last.To
	if !board.At(victimSq).Is(pawn.Colour.Opposite(), chess.Pawn) {
		return false
	}
	if victimSq.Row != from.Row || abs(victimSq.Col-from.Col) != 1 {
		return false
	}

	// The capture lands on the square the victim passed over
	passed := chess.Sq((last.From.Row+last.To.Row)/2, last.To.Col)
	if to != passed || to.Row-from.Row != pawn.Colour.Forward() {
		return false
	}
	return board.At(to).IsEmpty()
}

// EnPassantTarget returns the square toMove could capture onto en passant
// after last, if any of its pawns is placed to do so.
func EnPassantTarget(board *chess.Board, toMove chess.Colour, last *chess.Move) (chess.Square, bool) {
	if last == nil || !last.IsDoublePawnPush() {
		return chess.Square{}, false
	}
	passed := chess.Sq((last.From.Row+last.To.Row)/2, last.To.Col)
	for _, dc := range []int{-1, 1} {
		from := last.To.Offset(0, dc)
		if from.InBounds() && board.At(from).Is(toMove, chess.Pawn) && CanEnPassant(board, from, passed, last) {
			return passed, true
		}
	}
	return chess.Square{}, false
}

// IsPromotion reports whether the piece on from is a pawn reaching its
// promotion row.
func IsPromotion(board *chess.Board, from chess.Square, toRow int) bool {
	p := board.At(from)
	return p.Kind == chess.Pawn && toRow == p.Colour.PromotionRow()
}

// applyEnPassant removes the pawn captured en passant.
func applyEnPassant(board *chess.Board, m chess.Move) {
	board.Clear(chess.Sq(m.From.Row, m.To.Col))
}
