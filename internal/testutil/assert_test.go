package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chess-ai-go/internal/chess"
)

// These tests verify the assertion helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.Sq(4, 4), chess.Sq(4, 4), "square %s", "e4")
}

func TestAssertSameMoves_IgnoresOrder(t *testing.T) {
	a := chess.Move{From: chess.Sq(6, 4), To: chess.Sq(4, 4), Piece: chess.Pawn}
	b := chess.Move{From: chess.Sq(7, 6), To: chess.Sq(5, 5), Piece: chess.Knight}
	AssertSameMoves(t, []chess.Move{a, b}, []chess.Move{b, a})
	AssertSameMoves(t, nil, []chess.Move{})
}

func TestAssertError_Helpers(t *testing.T) {
	base := errors.New("base")
	AssertNoError(t, nil)
	AssertError(t, base, "expected error from %s", "operation")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)
}

func TestAssertBooleans(t *testing.T) {
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, len("hello") == 0)
	AssertInRange(t, 5, 0, 10)
	AssertInRange(t, 0, 0, 0)
	AssertContains(t, "e2e4 e7e5", "e7e5")
}

func TestAssertNil_Success(t *testing.T) {
	var p *int
	AssertNil(t, p)
	AssertNil(t, nil)
	AssertNotNil(t, &chess.Board{})
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
