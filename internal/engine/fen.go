package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a board with everything needed to continue the game from it.
type Position struct {
	Board          chess.Board
	ToMove         chess.Colour
	Aux            *chess.GameAux
	FullmoveNumber int
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() *Position {
	pos, _ := NewPositionFromFEN(InitialFEN)
	return pos
}

// Ply returns the number of half-moves played since the position was set up.
func (p *Position) Ply() int {
	if p.Aux == nil {
		return 0
	}
	return len(p.Aux.Moves)
}

// FEN returns the FEN string of the position.
func (p *Position) FEN() string {
	fen := boardFENFields(&p.Board, p.ToMove, p.Aux)
	halfmove := 0
	if p.Aux != nil {
		halfmove = p.Aux.HalfmoveClock
	}
	return fmt.Sprintf("%s %d %d", fen, halfmove, max(p.FullmoveNumber, 1))
}

// ConvertFENCharToPiece converts a FEN character to a piece kind.
func ConvertFENCharToPiece(c byte) chess.PieceKind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.None
	}
}

// NewPositionFromFEN creates a position from a FEN string. Castling rights
// become the moved flags of kings and rooks, and an en passant square
// becomes the previous move in the game context.
func NewPositionFromFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pos := &Position{ToMove: chess.White, FullmoveNumber: 1}

	if err := parsePiecePositions(&pos.Board, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(pos, parts); err != nil {
		return nil, err
	}

	parseCastlingRights(&pos.Board, parts)
	pos.Aux = chess.NewGameAux(pos.Board, pos.ToMove)

	if err := parseEnPassant(pos, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(pos, parts); err != nil {
		return nil, err
	}

	return pos, nil
}

// NewBoardFromFEN creates a board from a FEN string.
func NewBoardFromFEN(fen string) (chess.Board, error) {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		return chess.Board{}, err
	}
	return pos.Board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	row, col := 0, 0

	for _, c := range positions {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
			}
		default:
			kind := ConvertFENCharToPiece(byte(c))
			if kind == chess.None {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			sq := chess.Sq(row, col)
			if !sq.InBounds() {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			piece := chess.NewPiece(colour, kind)
			// Pawns off their starting row must have moved
			if kind == chess.Pawn && row != colour.PawnRow() {
				piece.HasMoved = true
			}
			board.Set(sq, piece)
			col++
		}
	}

	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return fmt.Errorf("piece placement does not cover the board: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights marks kings and rooks as moved unless a castling
// right keeps them unmoved. Without the field every piece stays unmoved.
func parseCastlingRights(board *chess.Board, parts []string) {
	if len(parts) < 3 {
		return
	}

	rights := parts[2]
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		kingside, queenside := byte('K'), byte('Q')
		if colour == chess.Black {
			kingside, queenside = 'k', 'q'
		}
		hasKingside := strings.IndexByte(rights, kingside) >= 0
		hasQueenside := strings.IndexByte(rights, queenside) >= 0

		board.ForEach(func(sq chess.Square, p chess.Piece) {
			if p.Colour != colour {
				return
			}
			switch p.Kind {
			case chess.King:
				p.HasMoved = !(hasKingside || hasQueenside) || sq.Row != colour.HomeRow()
			case chess.Rook:
				corner := sq.Row == colour.HomeRow() &&
					((sq.Col == chess.BoardSize-1 && hasKingside) || (sq.Col == 0 && hasQueenside))
				p.HasMoved = !corner
			default:
				return
			}
			board.Set(sq, p)
		})
	}
}

// parseEnPassant turns the en passant target square into the double pawn
// push that produced it.
func parseEnPassant(pos *Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}

	mover := pos.ToMove.Opposite()
	from := target.Offset(-mover.Forward(), 0)
	to := target.Offset(mover.Forward(), 0)
	if !from.InBounds() || !to.InBounds() || !pos.Board.At(to).Is(mover, chess.Pawn) {
		// A target square with no pawn behind it grants nothing
		return nil
	}

	pos.Aux.LastMove = &chess.Move{From: from, To: to, Piece: chess.Pawn}
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *Position, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		pos.Aux.HalfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		pos.FullmoveNumber = n
	}
	return nil
}

// BoardToFEN converts a board, side to move and game context to a FEN
// string. The fullmove number is derived from the moves in the context.
func BoardToFEN(board *chess.Board, toMove chess.Colour, aux *chess.GameAux) string {
	halfmove, fullmove := 0, 1
	if aux != nil {
		halfmove = aux.HalfmoveClock
		fullmove = 1 + len(aux.Moves)/2
	}
	return fmt.Sprintf("%s %d %d", boardFENFields(board, toMove, aux), halfmove, fullmove)
}

// boardFENFields writes the first four FEN fields.
func boardFENFields(board *chess.Board, toMove chess.Colour, aux *chess.GameAux) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, aux.Last())

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability implied by which
// kings and corner rooks are still unmoved.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, colour := range [2]chess.Colour{chess.White, chess.Black} {
		home := colour.HomeRow()
		kingSq, ok := FindKing(board, colour)
		if !ok || kingSq.Row != home || board.At(kingSq).HasMoved {
			continue
		}
		letters := [2]byte{'K', 'Q'}
		if colour == chess.Black {
			letters = [2]byte{'k', 'q'}
		}
		for i, col := range [2]int{chess.BoardSize - 1, 0} {
			rook := board.At(chess.Sq(home, col))
			if rook.Is(colour, chess.Rook) && !rook.HasMoved {
				sb.WriteByte(letters[i])
				hasCastling = true
			}
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the square passed over by a double pawn push.
func writeEnPassant(sb *strings.Builder, last *chess.Move) {
	if last == nil || !last.IsDoublePawnPush() {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(chess.Sq((last.From.Row+last.To.Row)/2, last.To.Col).String())
}
