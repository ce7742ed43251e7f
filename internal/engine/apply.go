package engine

import (
	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// ApplyMove returns the board after a move. The input board is passed by
// value and is never modified. The moved piece is marked as moved;
// castling also moves the rook, en passant removes the captured pawn and
// promotion replaces the pawn with the chosen kind (queen if unset).
func ApplyMove(board chess.Board, m chess.Move) chess.Board {
	if m.IsCastle() {
		applyCastle(&board, m)
		return board
	}

	piece := board.At(m.From)
	piece.HasMoved = true

	switch m.Special {
	case chess.EnPassant:
		applyEnPassant(&board, m)
	case chess.Promotion:
		piece.Kind = m.Promotion
		if piece.Kind == chess.None {
			piece.Kind = chess.Queen
		}
	}

	board.Clear(m.From)
	board.Set(m.To, piece)
	return board
}

// Play checks that a move is legal for the side to move, applies it and
// records it in the game context. It returns the new position.
func Play(pos *Position, m chess.Move) (*Position, error) {
	legal, ok := FindLegalMove(&pos.Board, pos.ToMove, pos.Aux, m.From, m.To, m.Promotion)
	if !ok {
		return nil, &errors.PositionError{
			Err:      errors.ErrIllegalMove,
			FEN:      pos.FEN(),
			PlyNum:   pos.Ply() + 1,
			MoveText: m.String(),
		}
	}

	next := &Position{
		Board:  ApplyMove(pos.Board, legal),
		ToMove: pos.ToMove.Opposite(),
		Aux:    pos.Aux.Clone(),
	}
	if next.Aux == nil {
		next.Aux = chess.NewGameAux(pos.Board, pos.ToMove)
	}
	next.Aux.Record(legal, next.Board, next.ToMove)
	next.FullmoveNumber = pos.FullmoveNumber
	if pos.ToMove == chess.Black {
		next.FullmoveNumber++
	}
	return next, nil
}
