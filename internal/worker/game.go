package worker

import (
	"context"
	"fmt"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/config"
	"github.com/lgbarn/chess-ai-go/internal/difficulty"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/hashing"
)

// GameSpec describes one self-play game.
type GameSpec struct {
	Index    int    // Original index for tracking
	White    string // tier name
	Black    string // tier name
	StartFEN string // empty for the initial position
	MaxPlies int    // 0 for no limit
	Seed     uint64
}

// GameResult is the outcome of a self-play game.
type GameResult struct {
	Spec     GameSpec
	Outcome  engine.Outcome
	Winner   chess.Colour // valid when Outcome is Checkmate
	PlyLimit bool         // the game was stopped at MaxPlies
	Moves    []chess.Move
	FinalFEN string
	Error    error

	// Positions is the number of distinct positions reached, and
	// MaxRepeats the most times any one of them occurred.
	Positions  int
	MaxRepeats int
}

// Decisive reports whether the game ended in checkmate.
func (r GameResult) Decisive() bool {
	return r.Error == nil && r.Outcome == engine.Checkmate
}

// WinnerTier returns the tier name of the winner, or "" for a draw.
func (r GameResult) WinnerTier() string {
	if !r.Decisive() {
		return ""
	}
	if r.Winner == chess.White {
		return r.Spec.White
	}
	return r.Spec.Black
}

// PlayGame plays spec to the end using cfg for everything but the tiers.
// When cfg.AI is seeded, each side is seeded from spec.Seed.
func PlayGame(ctx context.Context, cfg *config.Config, spec GameSpec) GameResult {
	res := GameResult{Spec: spec}
	if err := cfg.Validate(); err != nil {
		res.Error = err
		return res
	}

	pos := engine.NewInitialPosition()
	if spec.StartFEN != "" {
		var err error
		if pos, err = engine.NewPositionFromFEN(spec.StartFEN); err != nil {
			res.Error = err
			return res
		}
	}

	players := make(map[chess.Colour]*difficulty.Controller, 2)
	for colour, tier := range map[chess.Colour]string{chess.White: spec.White, chess.Black: spec.Black} {
		ai := *cfg.AI
		ai.Tier = tier
		if ai.Seeded {
			ai.Seed = spec.Seed*2 + uint64(colour)
		}
		c := *cfg
		c.AI = &ai
		ctrl, err := difficulty.NewController(&c)
		if err != nil {
			res.Error = fmt.Errorf("game %d, %s player: %w", spec.Index, colour, err)
			return res
		}
		players[colour] = ctrl
	}

	seen := hashing.NewPositionCounter()
	res.MaxRepeats = seen.Add(&pos.Board, pos.ToMove)

	for {
		if outcome := engine.Status(&pos.Board, pos.ToMove, pos.Aux); outcome.IsOver() {
			res.Outcome = outcome
			if outcome == engine.Checkmate {
				res.Winner = pos.ToMove.Opposite()
			}
			break
		}
		if spec.MaxPlies > 0 && len(res.Moves) >= spec.MaxPlies {
			res.PlyLimit = true
			break
		}

		d, err := players[pos.ToMove].Move(ctx, &pos.Board, pos.ToMove, pos.Aux)
		if err == nil && !d.OK {
			err = fmt.Errorf("%s found no move in an unfinished game", pos.ToMove)
		}
		var next *engine.Position
		if err == nil {
			next, err = engine.Play(pos, d.Move)
		}
		if err != nil {
			res.Error = fmt.Errorf("game %d, ply %d: %w", spec.Index, len(res.Moves)+1, err)
			break
		}
		pos = next
		res.Moves = append(res.Moves, d.Move)
		res.MaxRepeats = max(res.MaxRepeats, seen.Add(&pos.Board, pos.ToMove))
	}

	res.Positions = seen.UniqueCount()
	res.FinalFEN = pos.FEN()
	return res
}
