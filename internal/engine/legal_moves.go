package engine

import "github.com/lgbarn/chess-ai-go/internal/chess"

// LegalMovesForPiece returns every legal move of the piece on sq,
// including castling, en passant and one move per promotion kind.
// Destinations are visited in row-major order so results are deterministic.
func LegalMovesForPiece(board *chess.Board, sq chess.Square, aux *chess.GameAux) []chess.Move {
	piece := board.At(sq)
	if piece.IsEmpty() {
		return nil
	}

	var moves []chess.Move
	targets := candidateTargets(board, sq, piece)

	for idx, ok := range targets {
		if !ok {
			continue
		}
		to := chess.Sq(idx/chess.BoardSize, idx%chess.BoardSize)

		if IsLegalMove(board, sq, to) {
			m := chess.Move{From: sq, To: to, Piece: piece.Kind, Captured: board.At(to).Kind}
			if IsPromotion(board, sq, to.Row) {
				m.Special = chess.Promotion
				for _, kind := range chess.PromotionKinds {
					m.Promotion = kind
					moves = append(moves, m)
				}
				continue
			}
			moves = append(moves, m)
			continue
		}

		switch piece.Kind {
		case chess.King:
			if m, ok := castleTo(board, sq, piece.Colour, to); ok {
				moves = append(moves, m)
			}
		case chess.Pawn:
			if CanEnPassant(board, sq, to, aux.Last()) {
				m := chess.Move{From: sq, To: to, Piece: chess.Pawn, Captured: chess.Pawn, Special: chess.EnPassant}
				if !WouldExposeKingAfter(board, m) {
					moves = append(moves, m)
				}
			}
		}
	}

	return moves
}

// castleTo returns the castling move whose king destination is to, if
// castling that way is allowed.
func castleTo(board *chess.Board, kingSq chess.Square, colour chess.Colour, to chess.Square) (chess.Move, bool) {
	if to.Row != colour.HomeRow() {
		return chess.Move{}, false
	}
	for _, wing := range [2]chess.CastleWing{chess.Kingside, chess.Queenside} {
		m := castleMove(kingSq, wing)
		if m.To == to && CanCastle(board, colour, wing) {
			return m, true
		}
	}
	return chess.Move{}, false
}

// candidateTargets marks every square the piece could conceivably reach.
// Each candidate is still checked against the full rules.
func candidateTargets(board *chess.Board, sq chess.Square, piece chess.Piece) [chess.BoardSize * chess.BoardSize]bool {
	var targets [chess.BoardSize * chess.BoardSize]bool
	mark := func(to chess.Square) bool {
		if !to.InBounds() {
			return false
		}
		targets[to.Row*chess.BoardSize+to.Col] = true
		return true
	}

	switch piece.Kind {
	case chess.Pawn:
		fwd := piece.Colour.Forward()
		mark(sq.Offset(fwd, 0))
		mark(sq.Offset(2*fwd, 0))
		mark(sq.Offset(fwd, -1))
		mark(sq.Offset(fwd, 1))

	case chess.Knight:
		for _, off := range knightOffsets {
			mark(sq.Offset(off[0], off[1]))
		}

	case chess.King:
		for _, off := range kingOffsets {
			mark(sq.Offset(off[0], off[1]))
		}
		if sq.Row == piece.Colour.HomeRow() {
			mark(chess.Sq(sq.Row, kingsideKingCol))
			mark(chess.Sq(sq.Row, queensideKingCol))
		}

	case chess.Bishop, chess.Rook, chess.Queen:
		var dirs [][2]int
		if piece.Kind != chess.Rook {
			dirs = append(dirs, diagonalOffsets[:]...)
		}
		if piece.Kind != chess.Bishop {
			dirs = append(dirs, straightOffsets[:]...)
		}
		for _, dir := range dirs {
			to := sq.Offset(dir[0], dir[1])
			for mark(to) && board.At(to).IsEmpty() {
				to = to.Offset(dir[0], dir[1])
			}
		}
	}

	return targets
}

// LegalMovesForSide returns every legal move of the given colour.
func LegalMovesForSide(board *chess.Board, colour chess.Colour, aux *chess.GameAux) []chess.Move {
	var moves []chess.Move
	board.ForEach(func(sq chess.Square, p chess.Piece) {
		if p.Colour == colour {
			moves = append(moves, LegalMovesForPiece(board, sq, aux)...)
		}
	})
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour, aux *chess.GameAux) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			p := board.At(sq)
			if p.IsEmpty() || p.Colour != colour {
				continue
			}
			if len(LegalMovesForPiece(board, sq, aux)) > 0 {
				return true
			}
		}
	}
	return false
}

// FindLegalMove looks up the legal move of the given colour between two
// squares. For promotions, promo selects the kind; None means queen.
func FindLegalMove(board *chess.Board, colour chess.Colour, aux *chess.GameAux, from, to chess.Square, promo chess.PieceKind) (chess.Move, bool) {
	p := board.At(from)
	if p.IsEmpty() || p.Colour != colour {
		return chess.Move{}, false
	}
	if promo == chess.None {
		promo = chess.Queen
	}
	for _, m := range LegalMovesForPiece(board, from, aux) {
		if m.To != to {
			continue
		}
		if m.IsPromotion() && m.Promotion != promo {
			continue
		}
		return m, true
	}
	return chess.Move{}, false
}
