package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// ParseMove parses long algebraic move text such as "e2e4" or "e7e8q".
// The returned move carries only the squares and the promotion kind; use
// ResolveMove to fill in the rest from a position.
func ParseMove(text string) (chess.Move, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}

	from, ok := chess.ParseSquare(text[0:2])
	if !ok {
		return chess.Move{}, fmt.Errorf("bad source square in %q: %w", text, errors.ErrInvalidMove)
	}
	to, ok := chess.ParseSquare(text[2:4])
	if !ok {
		return chess.Move{}, fmt.Errorf("bad destination square in %q: %w", text, errors.ErrInvalidMove)
	}

	m := chess.Move{From: from, To: to}
	if len(text) == 5 {
		kind := ConvertFENCharToPiece(text[4])
		switch kind {
		case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
			m.Special = chess.Promotion
			m.Promotion = kind
		default:
			return chess.Move{}, fmt.Errorf("bad promotion piece in %q: %w", text, errors.ErrInvalidMove)
		}
	}
	return m, nil
}

// ResolveMove parses move text and matches it against the legal moves of
// the side to move.
func ResolveMove(pos *Position, text string) (chess.Move, error) {
	parsed, err := ParseMove(text)
	if err != nil {
		return chess.Move{}, err
	}
	m, ok := FindLegalMove(&pos.Board, pos.ToMove, pos.Aux, parsed.From, parsed.To, parsed.Promotion)
	if !ok {
		return chess.Move{}, &errors.PositionError{
			Err:      errors.ErrIllegalMove,
			FEN:      pos.FEN(),
			PlyNum:   pos.Ply() + 1,
			MoveText: text,
		}
	}
	return m, nil
}
