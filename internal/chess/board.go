package chess

import "fmt"

// Board is an 8x8 grid of pieces. It is a value: assigning a Board copies
// every square, so search plies never share mutable state.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() Board {
	return Board{}
}

// StandardBoard returns the standard chess starting position.
func StandardBoard() Board {
	var b Board
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}
	return b
}

// mustInBounds panics on coordinates outside the board; that is a caller bug.
func mustInBounds(sq Square) {
	if !sq.InBounds() {
		panic(fmt.Sprintf("chess: square out of range: row=%d col=%d", sq.Row, sq.Col))
	}
}

// At returns the piece on the square.
func (b *Board) At(sq Square) Piece {
	mustInBounds(sq)
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece on the square.
func (b *Board) Set(sq Square, p Piece) {
	mustInBounds(sq)
	b.Squares[sq.Row][sq.Col] = p
}

// Clear empties the square.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Piece{})
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() Board {
	return *b
}

// ForEach calls fn for every occupied square in row-major order.
func (b *Board) ForEach(fn func(sq Square, p Piece)) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.Squares[row][col]; !p.IsEmpty() {
				fn(Square{Row: row, Col: col}, p)
			}
		}
	}
}

// PieceCount returns the number of pieces on the board.
func (b *Board) PieceCount() int {
	n := 0
	b.ForEach(func(Square, Piece) { n++ })
	return n
}

// String renders the board as eight lines of FEN letters, rank 8 first.
func (b *Board) String() string {
	buf := make([]byte, 0, BoardSize*(BoardSize+1))
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			buf = append(buf, b.Squares[row][col].Letter())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
