// Package hashing provides canonical position keys for chess boards.
package hashing

import (
	"github.com/lgbarn/chess-ai-go/internal/chess"
)

// Key is the canonical encoding of a position: the kind, colour and
// square of every piece in row-major order, followed by the side to move.
// Kings and rooks that have moved carry a marker since that changes the
// castling rights; other pieces' move history is ignored so that
// transposed positions share a key.
type Key string

// Encode returns the canonical key for a board and side to move.
func Encode(board *chess.Board, toMove chess.Colour) Key {
	buf := make([]byte, 0, 4*board.PieceCount()+2)
	board.ForEach(func(sq chess.Square, p chess.Piece) {
		buf = append(buf, p.Letter(), byte(chess.ColBase+sq.Col), byte('0'+sq.Row))
		if p.HasMoved && (p.Kind == chess.King || p.Kind == chess.Rook) {
			buf = append(buf, '*')
		}
	})
	buf = append(buf, ':')
	if toMove == chess.White {
		buf = append(buf, 'w')
	} else {
		buf = append(buf, 'b')
	}
	return Key(buf)
}

// EncodeSnapshot returns the canonical key for a history entry.
func EncodeSnapshot(s chess.Snapshot) Key {
	return Encode(&s.Board, s.ToMove)
}

// PositionCounter counts how often each position has been seen.
type PositionCounter struct {
	counts map[Key]int
}

// NewPositionCounter creates an empty counter.
func NewPositionCounter() *PositionCounter {
	return &PositionCounter{counts: make(map[Key]int)}
}

// Add records a position and returns how many times it has now been seen.
func (c *PositionCounter) Add(board *chess.Board, toMove chess.Colour) int {
	k := Encode(board, toMove)
	c.counts[k]++
	return c.counts[k]
}

// UniqueCount returns the number of distinct positions seen.
func (c *PositionCounter) UniqueCount() int {
	return len(c.counts)
}
