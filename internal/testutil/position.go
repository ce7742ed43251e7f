package testutil

import (
	"testing"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/engine"
)

// Fixture positions shared across package tests.
const (
	// White mates in one with Qh5xf7.
	MateInOneFEN = "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4"

	// Black has just been mated.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	// Black to move has no legal move and is not in check.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"

	// A black queen hangs to the e4 pawn.
	HangingQueenFEN = "rnb1kbnr/pppp1ppp/8/3q4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3"

	// Both sides without queens.
	NoQueensFEN = "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR w KQkq - 0 1"

	// A thinned-out army against a full one.
	ReducedArmyFEN = "rn2k1nr/pp3ppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// King and pawn against king.
	PawnEndgameFEN = "8/8/8/4k3/8/8/4P3/4K3 w - - 0 1"
)

// AsymmetricFENs lists positions with uneven or thinned-out material.
var AsymmetricFENs = []string{
	NoQueensFEN,
	ReducedArmyFEN,
	PawnEndgameFEN,
	"4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
	"r1b1k2r/8/8/8/8/8/PPP5/4K3 b kq - 0 1",
	"8/8/8/8/8/8/8/8 w - - 0 1",
	"4k3/8/8/8/8/8/8/8 w - - 0 1",
}

// MustPosition parses a FEN string and fails the test on error.
func MustPosition(t testing.TB, fen string) *engine.Position {
	t.Helper()
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", fen, err)
	}
	return pos
}

// MustSquare parses an algebraic square name and fails the test on error.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("invalid square %q", name)
	}
	return sq
}

// MustMove resolves long algebraic move text against a position.
func MustMove(t testing.TB, pos *engine.Position, text string) chess.Move {
	t.Helper()
	m, err := engine.ResolveMove(pos, text)
	if err != nil {
		t.Fatalf("failed to resolve move %q: %v", text, err)
	}
	return m
}

// PlayMoves plays a sequence of long algebraic moves and returns the
// resulting position.
func PlayMoves(t testing.TB, pos *engine.Position, texts ...string) *engine.Position {
	t.Helper()
	for _, text := range texts {
		next, err := engine.Play(pos, MustMove(t, pos, text))
		if err != nil {
			t.Fatalf("failed to play %q: %v", text, err)
		}
		pos = next
	}
	return pos
}
