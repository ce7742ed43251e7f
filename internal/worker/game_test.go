package worker

import (
	"context"
	"testing"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/config"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-ai-go/internal/errors"
	"github.com/lgbarn/chess-ai-go/internal/testutil"
)

// kqMateFEN has White to move with several mates in one.
const kqMateFEN = "k7/8/1K6/8/8/8/7Q/8 w - - 0 1"

func testConfig() *config.Config {
	return config.NewConfigBuilder().
		WithSeed(5).
		WithDelayScale(0).
		Build()
}

func TestPlayGame_Finished(t *testing.T) {
	tests := []struct {
		name       string
		spec       GameSpec
		wantWinner chess.Colour
		wantPlies  int
	}{
		{
			name:       "already mated",
			spec:       GameSpec{White: "easy", Black: "easy", StartFEN: testutil.FoolsMateFEN},
			wantWinner: chess.Black,
			wantPlies:  0,
		},
		{
			name:       "mate in one",
			spec:       GameSpec{White: "hard", Black: "easy", StartFEN: kqMateFEN, MaxPlies: 10},
			wantWinner: chess.White,
			wantPlies:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := PlayGame(context.Background(), testConfig(), tt.spec)
			testutil.AssertNoError(t, res.Error)
			testutil.AssertEqual(t, res.Outcome, engine.Checkmate)
			testutil.AssertTrue(t, res.Decisive(), "decisive")
			testutil.AssertEqual(t, res.Winner, tt.wantWinner)
			testutil.AssertEqual(t, len(res.Moves), tt.wantPlies)
			testutil.AssertFalse(t, res.PlyLimit, "ply limit")
			testutil.AssertEqual(t, res.Positions, tt.wantPlies+1)
			testutil.AssertEqual(t, res.MaxRepeats, 1)
		})
	}
}

func TestPlayGame_Stalemate(t *testing.T) {
	res := PlayGame(context.Background(), testConfig(), GameSpec{
		White: "medium", Black: "medium", StartFEN: testutil.StalemateFEN,
	})
	testutil.AssertNoError(t, res.Error)
	testutil.AssertEqual(t, res.Outcome, engine.Stalemate)
	testutil.AssertFalse(t, res.Decisive(), "stalemate is a draw")
	testutil.AssertEqual(t, res.WinnerTier(), "")
}

func TestPlayGame_PlyLimit(t *testing.T) {
	spec := GameSpec{White: "easy", Black: "medium", MaxPlies: 6, Seed: 11}
	res := PlayGame(context.Background(), testConfig(), spec)
	testutil.AssertNoError(t, res.Error)

	if len(res.Moves) > spec.MaxPlies {
		t.Fatalf("played %d plies; limit is %d", len(res.Moves), spec.MaxPlies)
	}
	if !res.PlyLimit && !res.Outcome.IsOver() {
		t.Errorf("game stopped after %d plies with neither a result nor the limit", len(res.Moves))
	}

	// The recorded moves replay to the final position.
	pos := engine.NewInitialPosition()
	for _, m := range res.Moves {
		var err error
		pos, err = engine.Play(pos, m)
		testutil.AssertNoError(t, err)
	}
	testutil.AssertEqual(t, pos.FEN(), res.FinalFEN)
	testutil.AssertInRange(t, res.Positions, 1, len(res.Moves)+1)
}

func TestPlayGame_Reproducible(t *testing.T) {
	spec := GameSpec{White: "easy", Black: "easy", MaxPlies: 12, Seed: 3}
	first := PlayGame(context.Background(), testConfig(), spec)
	second := PlayGame(context.Background(), testConfig(), spec)
	testutil.AssertNoError(t, first.Error)
	testutil.AssertEqual(t, second.FinalFEN, first.FinalFEN)
	testutil.AssertSameMoves(t, second.Moves, first.Moves)
}

func TestPlayGame_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec GameSpec
		want error
	}{
		{"unknown tier", GameSpec{White: "easy", Black: "grandmaster"}, chesserrors.ErrUnknownTier},
		{"bad FEN", GameSpec{White: "easy", Black: "easy", StartFEN: "not a position"}, chesserrors.ErrInvalidFEN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := PlayGame(context.Background(), testConfig(), tt.spec)
			testutil.AssertErrorIs(t, res.Error, tt.want)
			testutil.AssertFalse(t, res.Decisive(), "failed game is not decisive")
		})
	}
}

func TestGameResult_WinnerTier(t *testing.T) {
	spec := GameSpec{White: "hard", Black: "easy"}
	tests := []struct {
		name string
		res  GameResult
		want string
	}{
		{"white wins", GameResult{Spec: spec, Outcome: engine.Checkmate, Winner: chess.White}, "hard"},
		{"black wins", GameResult{Spec: spec, Outcome: engine.Checkmate, Winner: chess.Black}, "easy"},
		{"draw", GameResult{Spec: spec, Outcome: engine.Stalemate}, ""},
		{"ply limit", GameResult{Spec: spec, PlyLimit: true}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.res.WinnerTier(), tt.want)
		})
	}
}
