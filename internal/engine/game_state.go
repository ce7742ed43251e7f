package engine

import "github.com/lgbarn/chess-ai-go/internal/chess"

// Outcome is the state of a game from the point of view of the side to move.
type Outcome int

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	ThreefoldRepetition
	FiftyMoveRule
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	names := []string{"Ongoing", "Checkmate", "Stalemate", "InsufficientMaterial", "ThreefoldRepetition", "FiftyMoveRule"}
	if int(o) < len(names) {
		return names[o]
	}
	return "Unknown"
}

// IsOver returns true for every outcome that ends the game.
func (o Outcome) IsOver() bool {
	return o != Ongoing
}

// IsCheckmate returns true if the given colour is in check with no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour, aux *chess.GameAux) bool {
	return KingInCheck(board, colour) && !HasLegalMoves(board, colour, aux)
}

// IsStalemate returns true if the given colour is not in check but has no
// legal move.
func IsStalemate(board *chess.Board, colour chess.Colour, aux *chess.GameAux) bool {
	return !KingInCheck(board, colour) && !HasLegalMoves(board, colour, aux)
}

// Status classifies the position for the side to move. Checkmate and
// stalemate take precedence over the draw rules.
func Status(board *chess.Board, toMove chess.Colour, aux *chess.GameAux) Outcome {
	if !HasLegalMoves(board, toMove, aux) {
		if KingInCheck(board, toMove) {
			return Checkmate
		}
		return Stalemate
	}

	draws := AnalyzeDrawRules(board, aux)
	switch {
	case draws.InsufficientMaterial:
		return InsufficientMaterial
	case draws.ThreefoldRepetition:
		return ThreefoldRepetition
	case draws.FiftyMoveRule:
		return FiftyMoveRule
	}
	return Ongoing
}
