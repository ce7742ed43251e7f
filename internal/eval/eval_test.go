package eval

import (
	"math"
	"testing"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/testutil"
)

var presets = map[string]Weights{
	"Easy":       EasyWeights,
	"Medium":     MediumWeights,
	"Hard":       HardWeights,
	"Nightmare":  NightmareWeights,
	"Impossible": ImpossibleWeights,
}

func TestPieceValue(t *testing.T) {
	tests := []struct {
		kind chess.PieceKind
		want int
	}{
		{chess.None, 0},
		{chess.Pawn, 100},
		{chess.Knight, 320},
		{chess.Bishop, 330},
		{chess.Rook, 500},
		{chess.Queen, 900},
		{chess.King, 20000},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			testutil.AssertEqual(t, PieceValue(tt.kind), tt.want)
		})
	}
}

func TestEvaluate_StartIsBalanced(t *testing.T) {
	start := chess.StandardBoard()
	for name, w := range presets {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, Evaluate(&start, chess.White, w), 0)
			testutil.AssertEqual(t, Evaluate(&start, chess.Black, w), 0)
		})
	}
}

func TestEvaluate_Antisymmetric(t *testing.T) {
	fens := append([]string{testutil.HangingQueenFEN, testutil.MateInOneFEN}, testutil.AsymmetricFENs...)
	for name, w := range presets {
		for _, fen := range fens {
			t.Run(name+"/"+fen, func(t *testing.T) {
				pos := testutil.MustPosition(t, fen)
				white := Evaluate(&pos.Board, chess.White, w)
				black := Evaluate(&pos.Board, chess.Black, w)
				testutil.AssertEqual(t, white, -black)
			})
		}
	}
}

func TestEvaluate_PureAndFinite(t *testing.T) {
	fens := append([]string{testutil.FoolsMateFEN, testutil.StalemateFEN}, testutil.AsymmetricFENs...)
	for name, w := range presets {
		for _, fen := range fens {
			t.Run(name+"/"+fen, func(t *testing.T) {
				pos := testutil.MustPosition(t, fen)
				before := pos.Board

				score := Evaluate(&pos.Board, chess.White, w)

				testutil.AssertEqual(t, pos.Board, before, "board modified")
				testutil.AssertTrue(t, score > math.MinInt32 && score < math.MaxInt32, "score %d out of range", score)
			})
		}
	}
}

func TestEvaluate_MaterialAdvantage(t *testing.T) {
	pos := testutil.MustPosition(t, testutil.ReducedArmyFEN)
	for name, w := range presets {
		t.Run(name, func(t *testing.T) {
			score := Evaluate(&pos.Board, chess.White, w)
			testutil.AssertTrue(t, score > QueenValue, "score %d should reflect the extra queen", score)
		})
	}
}

func TestEvaluate_MateBonus(t *testing.T) {
	pos := testutil.MustPosition(t, testutil.FoolsMateFEN)
	hard := Evaluate(&pos.Board, chess.Black, HardWeights)
	impossible := Evaluate(&pos.Board, chess.Black, ImpossibleWeights)

	testutil.AssertTrue(t, hard > HardWeights.MateBonus/2, "hard score %d lacks the mate bonus", hard)
	testutil.AssertTrue(t, impossible > hard, "impossible %d should exceed hard %d", impossible, hard)
	testutil.AssertTrue(t, Evaluate(&pos.Board, chess.Black, MediumWeights) < 1000, "medium has no mate bonus")
}

func TestWeightsIncrease(t *testing.T) {
	order := []Weights{HardWeights, NightmareWeights, ImpossibleWeights}
	for i := 1; i < len(order); i++ {
		testutil.AssertTrue(t, order[i].MateBonus > order[i-1].MateBonus)
		testutil.AssertTrue(t, order[i].CheckBonus > order[i-1].CheckBonus)
		testutil.AssertTrue(t, order[i].KingSafety >= order[i-1].KingSafety)
	}
	testutil.AssertTrue(t, ImpossibleWeights.Scale > 1)
}

func TestPawnStructure(t *testing.T) {
	t.Run("isolated pawn", func(t *testing.T) {
		pos := testutil.MustPosition(t, "4k3/8/8/8/8/8/P7/4K3 w - - 0 1")
		testutil.AssertEqual(t, pawnStructure(&pos.Board, chess.White), -isolatedPawnPenalty)
	})

	t.Run("doubled isolated pawns", func(t *testing.T) {
		pos := testutil.MustPosition(t, "4k3/8/8/8/8/P7/P7/4K3 w - - 0 1")
		want := -doubledPawnPenalty + passedPawnBonus[1] - 2*isolatedPawnPenalty
		testutil.AssertEqual(t, pawnStructure(&pos.Board, chess.White), want)
	})

	t.Run("passed pawn", func(t *testing.T) {
		pos := testutil.MustPosition(t, "4k3/8/8/P7/8/8/8/4K3 w - - 0 1")
		testutil.AssertTrue(t, isPassedPawn(&pos.Board, testutil.MustSquare(t, "a5"), chess.White))

		blocked := testutil.MustPosition(t, "4k3/1p6/8/P7/8/8/8/4K3 w - - 0 1")
		testutil.AssertFalse(t, isPassedPawn(&blocked.Board, testutil.MustSquare(t, "a5"), chess.White))
	})

	t.Run("backward pawn", func(t *testing.T) {
		pos := testutil.MustPosition(t, "4k3/8/8/8/2P1p3/8/3P4/4K3 w - - 0 1")
		testutil.AssertTrue(t, isBackwardPawn(&pos.Board, testutil.MustSquare(t, "d2"), chess.White))
		testutil.AssertFalse(t, isBackwardPawn(&pos.Board, testutil.MustSquare(t, "c4"), chess.White))
	})
}

func TestKingSafety_PawnShield(t *testing.T) {
	sheltered := testutil.MustPosition(t, "4k3/8/8/8/8/8/5PPP/6K1 w - - 0 1")
	bare := testutil.MustPosition(t, "4k3/8/8/8/8/8/8/6K1 w - - 0 1")
	testutil.AssertTrue(t, kingSafety(&sheltered.Board, chess.White) > kingSafety(&bare.Board, chess.White))
}

func TestHanging(t *testing.T) {
	pos := testutil.MustPosition(t, testutil.HangingQueenFEN)
	testutil.AssertEqual(t, hanging(&pos.Board, chess.Black), -QueenValue/2)
}

type fixedIntn int

func (f fixedIntn) Intn(n int) int { return int(f) % n }

func TestEasyMoveScore(t *testing.T) {
	e4 := chess.Sq(4, 4)
	capture := chess.Move{From: chess.Sq(6, 4), To: e4, Piece: chess.Pawn, Captured: chess.Rook}
	quiet := chess.Move{From: chess.Sq(7, 0), To: chess.Sq(5, 0), Piece: chess.Rook}

	testutil.AssertEqual(t, EasyBaseScore(capture), RookValue+CentreBonus)
	testutil.AssertEqual(t, EasyBaseScore(quiet), 0)
	testutil.AssertEqual(t, EasyMoveScore(capture, fixedIntn(7)), RookValue+CentreBonus+7)
	testutil.AssertInRange(t, EasyMoveScore(quiet, fixedIntn(123)), 0, JitterRange-1)
}

func TestMediumMoveScore_AvoidsHangingQueen(t *testing.T) {
	pos := testutil.MustPosition(t, "4k3/8/8/2p5/8/8/8/3QK3 w - - 0 1")
	hangs := testutil.MustMove(t, pos, "d1d4")
	safe := testutil.MustMove(t, pos, "d1d3")

	hangScore := MediumMoveScore(&pos.Board, hangs, chess.White, MediumWeights)
	safeScore := MediumMoveScore(&pos.Board, safe, chess.White, MediumWeights)
	testutil.AssertTrue(t, safeScore > hangScore, "safe %d should beat hanging %d", safeScore, hangScore)
}

func TestCountPieces(t *testing.T) {
	start := chess.StandardBoard()
	testutil.AssertEqual(t, CountPieces(&start), 32)
	testutil.AssertEqual(t, Material(&start, chess.White), Material(&start, chess.Black))

	pos := testutil.MustPosition(t, testutil.PawnEndgameFEN)
	testutil.AssertEqual(t, CountPieces(&pos.Board), 3)
	testutil.AssertFalse(t, engine.HasInsufficientMaterial(&pos.Board))
}

func BenchmarkEvaluate(b *testing.B) {
	pos, _ := engine.NewPositionFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	for name, w := range presets {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Evaluate(&pos.Board, chess.White, w)
			}
		})
	}
}
