package chess

// SpecialMove tags moves that need more than moving one piece.
type SpecialMove int

const (
	NoSpecial SpecialMove = iota
	CastleKingside
	CastleQueenside
	EnPassant
	Promotion
)

// String returns the string representation of a special move tag.
func (s SpecialMove) String() string {
	names := []string{"None", "CastleKingside", "CastleQueenside", "EnPassant", "Promotion"}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Move represents a single move with the data needed to apply and rank it.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The kind of piece being moved.
	Piece PieceKind

	// The kind of piece captured (None if not a capture).
	// For en passant this is Pawn even though the destination is empty.
	Captured PieceKind

	// Special move tag.
	Special SpecialMove

	// The kind promoted to when Special is Promotion.
	Promotion PieceKind
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Captured != None
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Special == Promotion
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Special {
	case CastleKingside, CastleQueenside:
		return true
	default:
		return false
	}
}

// IsDoublePawnPush returns true for a pawn advancing two rows.
func (m Move) IsDoublePawnPush() bool {
	d := m.To.Row - m.From.Row
	return m.Piece == Pawn && (d == 2 || d == -2)
}

// String returns the long algebraic form of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Special == Promotion {
		s += string(m.Promotion.Letter() + 'a' - 'A')
	}
	return s
}
