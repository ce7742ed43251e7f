package search

import (
	"fmt"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/hashing"
)

// Book suggests moves for known positions.
type Book interface {
	// Lookup returns candidate moves in long algebraic notation, most
	// preferred first. Unknown positions return nil.
	Lookup(key hashing.Key) []string
}

// EmptyBook knows no positions.
type EmptyBook struct{}

// Lookup always returns nil.
func (EmptyBook) Lookup(hashing.Key) []string { return nil }

// MapBook is a Book keyed by canonical position encoding.
type MapBook map[hashing.Key][]string

// Lookup returns the candidates stored for key.
func (b MapBook) Lookup(key hashing.Key) []string {
	return b[key]
}

// Add appends a candidate for a position, ignoring duplicates.
func (b MapBook) Add(board *chess.Board, toMove chess.Colour, move string) {
	key := hashing.Encode(board, toMove)
	for _, m := range b[key] {
		if m == move {
			return
		}
	}
	b[key] = append(b[key], move)
}

// AddLine plays a line of moves from the initial position, adding each
// move as a candidate for the position it was played from.
func (b MapBook) AddLine(moves ...string) error {
	pos := engine.NewInitialPosition()
	for _, text := range moves {
		m, err := engine.ResolveMove(pos, text)
		if err != nil {
			return fmt.Errorf("book line %v: %w", moves, err)
		}
		b.Add(&pos.Board, pos.ToMove, m.String())
		if pos, err = engine.Play(pos, m); err != nil {
			return fmt.Errorf("book line %v: %w", moves, err)
		}
	}
	return nil
}

var mainLines = [][]string{
	{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6", "b5a4", "g8f6"},
	{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5", "c2c3", "g8f6"},
	{"e2e4", "c7c5", "g1f3", "d7d6", "d2d4", "c5d4", "f3d4", "g8f6"},
	{"e2e4", "e7e6", "d2d4", "d7d5", "b1c3", "g8f6"},
	{"e2e4", "c7c6", "d2d4", "d7d5", "b1c3", "d5e4"},
	{"d2d4", "d7d5", "c2c4", "e7e6", "b1c3", "g8f6", "c1g5", "f8e7"},
	{"d2d4", "g8f6", "c2c4", "e7e6", "b1c3", "f8b4"},
	{"c2c4", "e7e5", "b1c3", "g8f6", "g1f3", "b8c6"},
	{"g1f3", "d7d5", "d2d4", "g8f6", "c2c4", "e7e6"},
}

// DefaultBook returns a small book of main-line openings.
func DefaultBook() MapBook {
	b := make(MapBook)
	for _, line := range mainLines {
		if err := b.AddLine(line...); err != nil {
			panic(err)
		}
	}
	return b
}

// bookMove returns the first candidate from the book that is legal.
func bookMove(book Book, board *chess.Board, toMove chess.Colour, legal []chess.Move) (chess.Move, bool) {
	for _, text := range book.Lookup(hashing.Encode(board, toMove)) {
		want, err := engine.ParseMove(text)
		if err != nil {
			continue
		}
		for _, m := range legal {
			if m.From == want.From && m.To == want.To && m.Promotion == want.Promotion {
				return m, true
			}
		}
	}
	return chess.Move{}, false
}
