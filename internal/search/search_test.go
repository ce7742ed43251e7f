package search

import (
	"testing"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/eval"
	"github.com/lgbarn/chess-ai-go/internal/testutil"
)

func easyParams() Params {
	return Params{Strategy: RandomCapture, Depth: 1, Weights: eval.EasyWeights}
}

func mediumParams() Params {
	return Params{Strategy: ReplyCheck, Depth: 1, Weights: eval.MediumWeights}
}

func hardParams() Params {
	return Params{
		Strategy:  AlphaBeta,
		Depth:     2,
		MateScore: DefaultMateScore,
		Weights:   eval.HardWeights,
		BatchSize: 64,
	}
}

func nightmareParams() Params {
	p := hardParams()
	p.Depth = 3
	p.Weights = eval.NightmareWeights
	p.UseOrdering = true
	p.UseCache = true
	p.CacheLimit = 10000
	return p
}

func impossibleParams() Params {
	p := nightmareParams()
	p.Depth = 5
	p.Weights = eval.ImpossibleWeights
	p.CacheLimit = 50000
	p.UseQuiescence = true
	p.QuiescenceDepth = 4
	p.UseNullMove = true
	p.NullMoveReduction = 3
	p.NullMoveMinMoves = 8
	p.IterativeDeepening = true
	p.UseOpeningBook = true
	p.UseTablebase = true
	p.TablebasePieces = 6
	return p
}

// bestMove runs a search on a FEN position and returns the move text.
func bestMove(t *testing.T, p Params, fen string, opts ...Option) (string, *Engine) {
	t.Helper()
	pos := testutil.MustPosition(t, fen)
	e := NewEngine(p, append([]Option{WithSeed(1)}, opts...)...)
	m, ok := e.BestMove(&pos.Board, pos.ToMove, pos.Aux)
	if !ok {
		t.Fatalf("BestMove(%q) found no move", fen)
	}
	return m.String(), e
}

func TestBestMove_NoLegalMoves(t *testing.T) {
	tiers := map[string]Params{
		"easy":       easyParams(),
		"medium":     mediumParams(),
		"hard":       hardParams(),
		"nightmare":  nightmareParams(),
		"impossible": impossibleParams(),
	}
	positions := map[string]string{
		"checkmate": testutil.FoolsMateFEN,
		"stalemate": testutil.StalemateFEN,
	}

	for tierName, p := range tiers {
		for posName, fen := range positions {
			t.Run(tierName+"/"+posName, func(t *testing.T) {
				pos := testutil.MustPosition(t, fen)
				e := NewEngine(p, WithSeed(1))
				if m, ok := e.BestMove(&pos.Board, pos.ToMove, pos.Aux); ok {
					t.Errorf("BestMove() = %s, true; want no move", m)
				}
			})
		}
	}
}

func TestBestMove_ReturnsLegalMove(t *testing.T) {
	tiers := map[string]Params{
		"easy":   easyParams(),
		"medium": mediumParams(),
		"hard":   hardParams(),
	}
	for tierName, p := range tiers {
		for _, fen := range []string{
			engine.InitialFEN,
			testutil.NoQueensFEN,
			testutil.ReducedArmyFEN,
			testutil.PawnEndgameFEN,
			"4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1",
		} {
			t.Run(tierName+"/"+fen, func(t *testing.T) {
				pos := testutil.MustPosition(t, fen)
				e := NewEngine(p, WithSeed(7))
				m, ok := e.BestMove(&pos.Board, pos.ToMove, pos.Aux)
				if !ok {
					t.Fatal("BestMove() found no move")
				}
				legal := engine.LegalMovesForSide(&pos.Board, pos.ToMove, pos.Aux)
				found := false
				for _, l := range legal {
					if l == m {
						found = true
					}
				}
				if !found {
					t.Errorf("BestMove() = %s, not in the legal move list", m)
				}
			})
		}
	}
}

func TestBestMove_DoesNotModifyBoard(t *testing.T) {
	pos := testutil.MustPosition(t, testutil.HangingQueenFEN)
	before := pos.Board
	e := NewEngine(nightmareParams(), WithSeed(1))
	e.BestMove(&pos.Board, pos.ToMove, pos.Aux)
	testutil.AssertEqual(t, pos.Board, before)
}

func TestBestMove_MateInOne(t *testing.T) {
	if testing.Short() {
		t.Skip("deep search in short mode")
	}
	tests := []struct {
		name   string
		params Params
	}{
		{"hard", hardParams()},
		{"nightmare", nightmareParams()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, e := bestMove(t, tt.params, testutil.MateInOneFEN)
			if got != "h5f7" {
				t.Errorf("BestMove() = %s; want h5f7", got)
			}
			if score := e.Stats().Score; score <= DefaultMateScore {
				t.Errorf("Stats().Score = %d; want a mate score above %d", score, DefaultMateScore)
			}
		})
	}
}

func TestBestMove_PrefersFasterMate(t *testing.T) {
	// Every queen mate is found at the root, so the score carries the most
	// remaining depth.
	p := hardParams()
	p.Depth = 3
	p.UseOrdering = true
	got, e := bestMove(t, p, "k7/8/1K6/8/8/8/7Q/8 w - - 0 1")

	pos := testutil.MustPosition(t, "k7/8/1K6/8/8/8/7Q/8 w - - 0 1")
	m := testutil.MustMove(t, pos, got)
	after := engine.ApplyMove(pos.Board, m)
	if !engine.IsCheckmate(&after, chess.Black, nil) {
		t.Errorf("BestMove() = %s, which does not mate", got)
	}
	testutil.AssertEqual(t, e.Stats().Score, DefaultMateScore+p.Depth-1)
}

func TestBestMove_StaticScoreBelowMate(t *testing.T) {
	// A queen up is worth far more than a mate score of 50, so the static
	// evaluation is clamped just below it.
	p := hardParams()
	p.Depth = 1
	p.MateScore = 50
	_, e := bestMove(t, p, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	testutil.AssertEqual(t, e.Stats().Score, p.MateScore-1)

	_, e = bestMove(t, p, "3qk3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertEqual(t, e.Stats().Score, -(p.MateScore - 1))
}

func TestBestMove_WinsHangingQueen(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{"medium", mediumParams()},
		{"hard", hardParams()},
		{"nightmare", nightmareParams()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if testing.Short() && tt.params.Depth > 2 {
				t.Skip("deep search in short mode")
			}
			got, _ := bestMove(t, tt.params, testutil.HangingQueenFEN)
			if got != "e4d5" {
				t.Errorf("BestMove() = %s; want e4d5", got)
			}
		})
	}
}

func TestBestMove_Deterministic(t *testing.T) {
	for name, p := range map[string]Params{
		"medium": mediumParams(),
		"hard":   hardParams(),
	} {
		t.Run(name, func(t *testing.T) {
			pos := testutil.MustPosition(t, testutil.NoQueensFEN)
			first, _ := NewEngine(p).BestMove(&pos.Board, pos.ToMove, pos.Aux)
			for i := 0; i < 3; i++ {
				again, _ := NewEngine(p).BestMove(&pos.Board, pos.ToMove, pos.Aux)
				if again != first {
					t.Fatalf("run %d: BestMove() = %s; first run gave %s", i, again, first)
				}
			}
		})
	}
}

func TestBestMove_BatchSizeDoesNotChangeResult(t *testing.T) {
	var want chess.Move
	var wantStats Stats
	for i, batch := range []int{0, 1, 7, 64, 1000} {
		p := hardParams()
		p.BatchSize = batch
		yields := 0
		pos := testutil.MustPosition(t, testutil.PawnEndgameFEN)
		e := NewEngine(p, WithYield(func() { yields++ }))
		m, ok := e.BestMove(&pos.Board, pos.ToMove, pos.Aux)
		if !ok {
			t.Fatal("BestMove() found no move")
		}
		st := e.Stats()
		if batch > 0 {
			testutil.AssertEqual(t, yields, st.Nodes/batch, "batch %d", batch)
		} else {
			testutil.AssertEqual(t, yields, 0, "batching off")
		}
		testutil.AssertEqual(t, st.Yields, yields, "batch %d", batch)

		if i == 0 {
			want, wantStats = m, st
			continue
		}
		testutil.AssertEqual(t, m, want, "batch %d", batch)
		testutil.AssertEqual(t, st.Score, wantStats.Score, "batch %d", batch)
		testutil.AssertEqual(t, st.Nodes, wantStats.Nodes, "batch %d", batch)
	}
}

func TestBestMove_QuiescenceSeesRecapture(t *testing.T) {
	// Qxd5 wins a pawn on the board but loses the queen to cxd5.
	const fen = "4k3/8/2p5/3p4/8/8/8/3QK3 w - - 0 1"
	p := Params{
		Strategy:  AlphaBeta,
		Depth:     1,
		MateScore: DefaultMateScore,
		Weights:   eval.EasyWeights,
	}

	got, _ := bestMove(t, p, fen)
	testutil.AssertEqual(t, got, "d1d5", "without quiescence")

	p.UseQuiescence = true
	p.QuiescenceDepth = 4
	got, e := bestMove(t, p, fen)
	if got == "d1d5" {
		t.Errorf("BestMove() with quiescence = d1d5; want a move that keeps the queen")
	}
	if e.Stats().QuiescenceNodes == 0 {
		t.Error("Stats().QuiescenceNodes = 0; want quiescence to run")
	}
}

func TestBestMove_NullMoveSearchStillMates(t *testing.T) {
	p := impossibleParams()
	p.Depth = 4
	p.UseOpeningBook = false
	p.UseTablebase = false
	const fen = "k7/8/1K6/8/8/8/7Q/8 w - - 0 1"

	got, e := bestMove(t, p, fen)
	pos := testutil.MustPosition(t, fen)
	after := engine.ApplyMove(pos.Board, testutil.MustMove(t, pos, got))
	if !engine.IsCheckmate(&after, chess.Black, nil) {
		t.Errorf("BestMove() = %s, which does not mate", got)
	}
	testutil.AssertEqual(t, e.Stats().Depth, 4, "deepest completed iteration")
}

func TestNullMoveAllowed(t *testing.T) {
	e := NewEngine(impossibleParams())
	tests := []struct {
		name    string
		depth   int
		inCheck bool
		moves   int
		want    bool
	}{
		{"quiet position", 4, false, 20, true},
		{"in check", 4, true, 20, false},
		{"few moves", 4, false, 7, false},
		{"exactly eight moves", 4, false, 8, true},
		{"too shallow", 2, false, 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, e.nullMoveAllowed(tt.depth, tt.inCheck, tt.moves), tt.want)
		})
	}

	off := NewEngine(nightmareParams())
	testutil.AssertFalse(t, off.nullMoveAllowed(4, false, 20), "null move disabled")
}

func TestBestMove_CacheStaysBounded(t *testing.T) {
	if testing.Short() {
		t.Skip("deep search in short mode")
	}
	p := nightmareParams()
	p.CacheLimit = 50
	pos := testutil.MustPosition(t, engine.InitialFEN)
	e := NewEngine(p)
	if _, ok := e.BestMove(&pos.Board, pos.ToMove, pos.Aux); !ok {
		t.Fatal("BestMove() found no move")
	}
	c := e.Cache()
	if c == nil {
		t.Fatal("Cache() = nil with caching on")
	}
	testutil.AssertInRange(t, c.Len(), 0, 50)
	if c.Stats().Clears == 0 {
		t.Error("cache never cleared despite exceeding its limit")
	}
}

func TestEngine_CacheOff(t *testing.T) {
	if c := NewEngine(hardParams()).Cache(); c != nil {
		t.Errorf("Cache() = %v; want nil without caching", c)
	}
}

func TestBestMove_UsesBook(t *testing.T) {
	got, e := bestMove(t, impossibleParams(), engine.InitialFEN)
	testutil.AssertEqual(t, got, "e2e4")
	testutil.AssertTrue(t, e.Stats().FromBook, "FromBook")

	pos := testutil.PlayMoves(t, testutil.MustPosition(t, engine.InitialFEN), "e2e4")
	m, ok := e.BestMove(&pos.Board, pos.ToMove, pos.Aux)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, m.String(), "e7e5")
}

func TestBestMove_UsesTablebase(t *testing.T) {
	got, e := bestMove(t, impossibleParams(), testutil.PawnEndgameFEN)
	testutil.AssertTrue(t, e.Stats().FromTablebase, "FromTablebase")
	testutil.AssertFalse(t, e.Stats().FromBook, "FromBook")

	pos := testutil.MustPosition(t, testutil.PawnEndgameFEN)
	testutil.MustMove(t, pos, got)
}

func TestBestMove_LowerTiersIgnoreBook(t *testing.T) {
	book := MapBook{}
	start := chess.StandardBoard()
	book.Add(&start, chess.White, "a2a3")

	got, e := bestMove(t, hardParams(), engine.InitialFEN, WithBook(book))
	if e.Stats().FromBook {
		t.Errorf("hard tier used the book: %s", got)
	}
}

func TestEngine_Params(t *testing.T) {
	p := nightmareParams()
	testutil.AssertEqual(t, NewEngine(p).Params(), p)
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{"valid", func(*Params) {}, false},
		{"zero depth", func(p *Params) { p.Depth = 0 }, true},
		{"no mate score", func(p *Params) { p.MateScore = 0 }, true},
		{"cache without limit", func(p *Params) { p.CacheLimit = 0 }, true},
		{"quiescence without depth", func(p *Params) { p.QuiescenceDepth = 0 }, true},
		{"null move without reduction", func(p *Params) { p.NullMoveReduction = 0 }, true},
		{"unknown strategy", func(p *Params) { p.Strategy = Strategy(9) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := impossibleParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				testutil.AssertError(t, err)
			} else {
				testutil.AssertNoError(t, err)
			}
		})
	}

	testutil.AssertNoError(t, easyParams().Validate(), "easy")
	testutil.AssertNoError(t, mediumParams().Validate(), "medium")
}

func TestStrategy_String(t *testing.T) {
	testutil.AssertEqual(t, RandomCapture.String(), "random-capture")
	testutil.AssertEqual(t, ReplyCheck.String(), "reply-check")
	testutil.AssertEqual(t, AlphaBeta.String(), "alpha-beta")
	testutil.AssertEqual(t, Strategy(9).String(), "Strategy(9)")
}

func BenchmarkBestMove(b *testing.B) {
	benchmarks := map[string]Params{
		"medium": mediumParams(),
		"hard":   hardParams(),
	}
	pos, err := engine.NewPositionFromFEN(testutil.HangingQueenFEN)
	if err != nil {
		b.Fatal(err)
	}
	for name, p := range benchmarks {
		b.Run(name, func(b *testing.B) {
			e := NewEngine(p, WithSeed(1))
			for i := 0; i < b.N; i++ {
				e.BestMove(&pos.Board, pos.ToMove, pos.Aux)
			}
		})
	}
}
