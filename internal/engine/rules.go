// Package engine provides chess move validation, move enumeration and
// board manipulation.
package engine

import (
	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/hashing"
)

// FiftyMoveHalfMoves is the number of half-moves without a pawn move or
// capture after which the game is drawn.
const FiftyMoveHalfMoves = 100

// IsLegalMove reports whether the piece on from may move to to: the
// geometry must fit its kind, the destination must not hold a friendly
// piece or a king, and the mover's own king must not be left in check.
// Castling and en passant are checked separately by CanCastle and
// CanEnPassant.
func IsLegalMove(board *chess.Board, from, to chess.Square) bool {
	piece := board.At(from)
	if piece.IsEmpty() || !to.InBounds() {
		return false
	}
	if !BasicMoveValid(board, from, to) {
		return false
	}

	target := board.At(to)
	if !target.IsEmpty() && (target.Colour == piece.Colour || target.Kind == chess.King) {
		return false
	}

	return !WouldExposeKing(board, from, to)
}

// DrawRuleResult contains the results of draw rule detection.
type DrawRuleResult struct {
	// ThreefoldRepetition is true if the current position has occurred
	// at least three times.
	ThreefoldRepetition bool

	// FiftyMoveRule is true if 100 half-moves have passed without a pawn
	// move or capture.
	FiftyMoveRule bool

	// InsufficientMaterial is true if neither side can deliver mate.
	InsufficientMaterial bool

	// MaterialOdds is true if the game started with unequal material.
	MaterialOdds bool
}

// IsDraw returns true if any draw rule applies.
func (r DrawRuleResult) IsDraw() bool {
	return r.ThreefoldRepetition || r.FiftyMoveRule || r.InsufficientMaterial
}

// AnalyzeDrawRules checks every draw rule for the current position.
func AnalyzeDrawRules(board *chess.Board, aux *chess.GameAux) DrawRuleResult {
	result := DrawRuleResult{
		InsufficientMaterial: HasInsufficientMaterial(board),
	}
	if aux == nil {
		return result
	}

	result.ThreefoldRepetition = IsThreefoldRepetition(aux.History)
	result.FiftyMoveRule = IsFiftyMoveRule(aux.Moves) || IsFiftyMoveClock(aux.HalfmoveClock)
	if len(aux.History) > 0 {
		result.MaterialOdds = !isStandardMaterial(&aux.History[0].Board)
	}

	return result
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same colour bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceKind
	var whiteBishopOnLight, blackBishopOnLight bool
	sufficient := false

	board.ForEach(func(sq chess.Square, p chess.Piece) {
		switch p.Kind {
		case chess.King:
			return
		case chess.Pawn, chess.Rook, chess.Queen:
			sufficient = true
			return
		}

		if p.Colour == chess.White {
			whitePieces = append(whitePieces, p.Kind)
			if p.Kind == chess.Bishop {
				whiteBishopOnLight = sq.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, p.Kind)
			if p.Kind == chess.Bishop {
				blackBishopOnLight = sq.IsLight()
			}
		}
	})
	if sufficient {
		return false
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return true
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return true
	}

	// K+B vs K+B on the same colour squares
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// IsThreefoldRepetition returns true if the last entry of the history
// has occurred at least three times. Positions are compared by their
// canonical key, so the side to move is part of the comparison.
func IsThreefoldRepetition(history []chess.Snapshot) bool {
	n := len(history)
	if n < 5 {
		return false
	}

	current := hashing.EncodeSnapshot(history[n-1])
	count := 1
	for i := n - 3; i >= 0; i -= 2 {
		if hashing.EncodeSnapshot(history[i]) == current {
			if count++; count >= 3 {
				return true
			}
		}
	}
	return false
}

// IsFiftyMoveRule returns true if the last 100 half-moves contain no pawn
// move and no capture.
func IsFiftyMoveRule(moves []chess.Move) bool {
	if len(moves) < FiftyMoveHalfMoves {
		return false
	}
	for _, m := range moves[len(moves)-FiftyMoveHalfMoves:] {
		if m.Piece == chess.Pawn || m.IsCapture() {
			return false
		}
	}
	return true
}

// IsFiftyMoveClock applies the fifty-move rule to a half-move clock, as
// read from a FEN string that carries no move list.
func IsFiftyMoveClock(halfmoveClock int) bool {
	return halfmoveClock >= FiftyMoveHalfMoves
}

// isStandardMaterial checks if the board has standard starting material.
func isStandardMaterial(board *chess.Board) bool {
	expected := [chess.NumPieceKinds]int{
		chess.Pawn:   8,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Rook:   2,
		chess.Queen:  1,
		chess.King:   1,
	}

	var actual [2][chess.NumPieceKinds]int
	board.ForEach(func(_ chess.Square, p chess.Piece) {
		actual[p.Colour][p.Kind]++
	})

	return actual[chess.White] == expected && actual[chess.Black] == expected
}
