package engine

import "github.com/lgbarn/chess-ai-go/internal/chess"

// Destination columns of king and rook after castling.
const (
	kingsideKingCol  = 6
	kingsideRookCol  = 5
	queensideKingCol = 2
	queensideRookCol = 3
)

// castleGeometry returns the rook's corner column, the king's destination
// column and the rook's destination column for a wing.
func castleGeometry(wing chess.CastleWing) (rookFrom, kingTo, rookTo int) {
	if wing == chess.Kingside {
		return chess.BoardSize - 1, kingsideKingCol, kingsideRookCol
	}
	return 0, queensideKingCol, queensideRookCol
}

// CanCastle reports whether the given colour may castle on a wing: king
// and rook unmoved on the home row with the rook in its corner, the squares
// between them empty, and the king neither in check nor passing through or
// landing on an attacked square.
func CanCastle(board *chess.Board, colour chess.Colour, wing chess.CastleWing) bool {
	home := colour.HomeRow()
	kingSq, ok := FindKing(board, colour)
	if !ok || kingSq.Row != home || board.At(kingSq).HasMoved {
		return false
	}

	rookCol, kingTo, _ := castleGeometry(wing)

	// The king must start on the far side of its destination from the rook
	if wing == chess.Kingside && kingSq.Col >= kingTo {
		return false
	}
	if wing == chess.Queenside && kingSq.Col <= kingTo {
		return false
	}

	rookSq := chess.Sq(home, rookCol)
	rook := board.At(rookSq)
	if !rook.Is(colour, chess.Rook) || rook.HasMoved {
		return false
	}

	step := sign(rookCol - kingSq.Col)
	for col := kingSq.Col + step; col != rookCol; col += step {
		if !board.At(chess.Sq(home, col)).IsEmpty() {
			return false
		}
	}

	enemy := colour.Opposite()
	if SquareAttacked(board, kingSq, enemy) {
		return false
	}
	for col := kingSq.Col + step; ; col += step {
		if SquareAttacked(board, chess.Sq(home, col), enemy) {
			return false
		}
		if col == kingTo {
			break
		}
	}

	return true
}

// castleMove builds the king move for castling on a wing.
func castleMove(kingSq chess.Square, wing chess.CastleWing) chess.Move {
	_, kingTo, _ := castleGeometry(wing)
	special := chess.CastleKingside
	if wing == chess.Queenside {
		special = chess.CastleQueenside
	}
	return chess.Move{
		From:    kingSq,
		To:      chess.Sq(kingSq.Row, kingTo),
		Piece:   chess.King,
		Special: special,
	}
}

// applyCastle moves king and rook for a castling move.
func applyCastle(board *chess.Board, m chess.Move) {
	wing := chess.Kingside
	if m.Special == chess.CastleQueenside {
		wing = chess.Queenside
	}
	rookFrom, _, rookTo := castleGeometry(wing)
	row := m.From.Row

	king := board.At(m.From)
	rook := board.At(chess.Sq(row, rookFrom))
	king.HasMoved = true
	rook.HasMoved = true

	board.Clear(m.From)
	board.Clear(chess.Sq(row, rookFrom))
	board.Set(m.To, king)
	board.Set(chess.Sq(row, rookTo), rook)
}
