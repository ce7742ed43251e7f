// Package eval scores chess positions for the AI tiers. Every tier shares
// one material table; the stronger tiers add weighted positional terms.
package eval

import "github.com/lgbarn/chess-ai-go/internal/chess"

// Piece values in centipawns.
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 20000
)

var pieceValues = [chess.NumPieceKinds]int{
	chess.Pawn:   PawnValue,
	chess.Knight: KnightValue,
	chess.Bishop: BishopValue,
	chess.Rook:   RookValue,
	chess.Queen:  QueenValue,
	chess.King:   KingValue,
}

// PieceValue returns the material value of a piece kind; None is worth 0.
func PieceValue(kind chess.PieceKind) int {
	if kind < 0 || kind >= chess.NumPieceKinds {
		return 0
	}
	return pieceValues[kind]
}

// Material returns the total material of one colour.
func Material(board *chess.Board, colour chess.Colour) int {
	total := 0
	board.ForEach(func(_ chess.Square, p chess.Piece) {
		if p.Colour == colour {
			total += PieceValue(p.Kind)
		}
	})
	return total
}

// CountPieces returns the number of pieces of both colours, kings included.
func CountPieces(board *chess.Board) int {
	return board.PieceCount()
}
