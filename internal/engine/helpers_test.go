package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-ai-go/internal/chess"
)

// mustPosition parses a FEN string or fails the test.
func mustPosition(t testing.TB, fen string) *Position {
	t.Helper()
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error: %v", fen, err)
	}
	return pos
}

// sq parses an algebraic square name, panicking on a typo in the test.
func sq(name string) chess.Square {
	s, ok := chess.ParseSquare(name)
	if !ok {
		panic("bad square in test: " + name)
	}
	return s
}

// moveStrings returns the sorted long algebraic text of moves.
func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

// containsMove reports whether text is among the moves.
func containsMove(moves []chess.Move, text string) bool {
	for _, m := range moves {
		if m.String() == text {
			return true
		}
	}
	return false
}

// playAll plays a sequence of long algebraic moves from a position.
func playAll(t *testing.T, pos *Position, texts ...string) *Position {
	t.Helper()
	for _, text := range texts {
		m, err := ResolveMove(pos, text)
		if err != nil {
			t.Fatalf("ResolveMove(%q) error: %v", text, err)
		}
		pos, err = Play(pos, m)
		if err != nil {
			t.Fatalf("Play(%q) error: %v", text, err)
		}
	}
	return pos
}
