// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta a pawn of this colour moves by.
// White starts on row 6 and advances toward row 0.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow returns the back rank row for this colour.
func (c Colour) HomeRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row pawns of this colour start on.
func (c Colour) PawnRow() int {
	if c == White {
		return BoardSize - 2
	}
	return 1
}

// PromotionRow returns the row on which pawns of this colour promote.
func (c Colour) PromotionRow() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	None PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsSlider reports whether the kind moves along lines.
func (k PieceKind) IsSlider() bool {
	return k == Bishop || k == Rook || k == Queen
}

// PromotionKinds lists the kinds a pawn may promote to, strongest first.
var PromotionKinds = [...]PieceKind{Queen, Rook, Bishop, Knight}

// Piece is the content of a square. The zero value is an empty square.
type Piece struct {
	Kind     PieceKind
	Colour   Colour
	HasMoved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty returns true if no piece occupies the square.
func (p Piece) IsEmpty() bool {
	return p.Kind == None
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind PieceKind) bool {
	return p.Kind == kind && p.Colour == colour
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// Constants for board dimensions.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
)

// Square is a board coordinate. Row 0 is rank 8, row 7 is rank 1;
// column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for constructing a square.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds returns true if the square lies on the board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square displaced by the given deltas.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// IsLight returns true if the square is a light square.
func (s Square) IsLight() bool {
	return (s.Row+s.Col)%2 == 0
}

// String returns the algebraic name of the square (e.g. "e4").
func (s Square) String() string {
	if !s.InBounds() {
		return "??"
	}
	return string([]byte{byte(ColBase + s.Col), byte(RankBase + BoardSize - 1 - s.Row)})
}

// ParseSquare parses an algebraic square name.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	col := int(name[0]) - ColBase
	rank := int(name[1]) - RankBase
	sq := Square{Row: BoardSize - 1 - rank, Col: col}
	return sq, sq.InBounds()
}

// CentralSquares are d4, e4, d5 and e5.
var CentralSquares = [...]Square{{3, 3}, {3, 4}, {4, 3}, {4, 4}}

// IsCentral returns true for the four central squares.
func (s Square) IsCentral() bool {
	return (s.Row == 3 || s.Row == 4) && (s.Col == 3 || s.Col == 4)
}

// IsExtendedCentral returns true for the ring c3-f3-f6-c6 around the centre.
func (s Square) IsExtendedCentral() bool {
	if s.Row < 2 || s.Row > 5 || s.Col < 2 || s.Col > 5 {
		return false
	}
	return !s.IsCentral()
}

// CastleWing selects the side of the board for castling.
type CastleWing int

const (
	Kingside CastleWing = iota
	Queenside
)

// String returns the string representation of a wing.
func (w CastleWing) String() string {
	if w == Kingside {
		return "Kingside"
	}
	return "Queenside"
}
