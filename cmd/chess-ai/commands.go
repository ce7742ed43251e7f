package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/config"
	"github.com/lgbarn/chess-ai-go/internal/difficulty"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/worker"
)

// run executes one mode. fen and moves set up the start position, which
// is also where play and match games begin.
func run(ctx context.Context, cfg *config.Config, mode, fen string, moves []string) error {
	pos, err := startPosition(fen, moves)
	if err != nil {
		return err
	}
	cfg.Match.StartFEN = ""
	if fen != "" || len(moves) > 0 {
		cfg.Match.StartFEN = pos.FEN()
	}

	switch mode {
	case "bestmove":
		return runBestMove(ctx, cfg, pos)
	case "play":
		return runPlay(ctx, cfg)
	case "match":
		return runMatch(ctx, cfg)
	case "perft":
		return runPerft(cfg.OutputFile, pos, *depth, *divide)
	}
	return fmt.Errorf("unknown mode %q", mode)
}

// startPosition parses fen, or takes the initial position when it is
// empty, and plays moves from it.
func startPosition(fen string, moves []string) (*engine.Position, error) {
	pos := engine.NewInitialPosition()
	if fen != "" {
		var err error
		if pos, err = engine.NewPositionFromFEN(fen); err != nil {
			return nil, err
		}
	}
	for _, text := range moves {
		m, err := engine.ResolveMove(pos, text)
		if err != nil {
			return nil, err
		}
		if pos, err = engine.Play(pos, m); err != nil {
			return nil, err
		}
	}
	return pos, nil
}

// runBestMove prints the move cfg.AI.Tier chooses in pos.
func runBestMove(ctx context.Context, cfg *config.Config, pos *engine.Position) error {
	ctrl, err := difficulty.NewController(cfg)
	if err != nil {
		return err
	}
	d, err := ctrl.Move(ctx, &pos.Board, pos.ToMove, pos.Aux)
	if err != nil {
		return err
	}

	out := cfg.OutputFile
	if !d.OK {
		outcome := engine.Status(&pos.Board, pos.ToMove, pos.Aux)
		fmt.Fprintf(out, "bestmove (none) %s\n", strings.ToLower(outcome.String()))
		return nil
	}
	fmt.Fprintf(out, "bestmove %s\n", d.Move)
	if cfg.Verbosity > 1 {
		fmt.Fprintf(out, "info depth %d score %d nodes %d qnodes %d time %s\n",
			d.Stats.Depth, d.Stats.Score, d.Stats.Nodes, d.Stats.QuiescenceNodes, d.Elapsed)
	}
	return nil
}

// runPlay plays one game between cfg.Match.White and cfg.Match.Black.
func runPlay(ctx context.Context, cfg *config.Config) error {
	spec := worker.GameSpec{
		White:    cfg.Match.White,
		Black:    cfg.Match.Black,
		StartFEN: cfg.Match.StartFEN,
		MaxPlies: cfg.Match.MaxPlies,
		Seed:     cfg.AI.Seed,
	}
	res := worker.PlayGame(ctx, cfg, spec)
	if res.Error != nil {
		return res.Error
	}

	start, err := startPosition(spec.StartFEN, nil)
	if err != nil {
		return err
	}
	out := cfg.OutputFile
	fmt.Fprintf(out, "[White %q]\n[Black %q]\n", spec.White, spec.Black)
	if spec.StartFEN != "" {
		fmt.Fprintf(out, "[FEN %q]\n", spec.StartFEN)
	}
	fmt.Fprintf(out, "\n%s %s\n", formatMoves(start, res.Moves), resultText(res))
	fmt.Fprintf(out, "; %s after %d plies\n; %s\n", termination(res), len(res.Moves), res.FinalFEN)
	return nil
}

// runMatch plays a match and prints each tier's record.
func runMatch(ctx context.Context, cfg *config.Config) error {
	sum, err := worker.RunMatch(ctx, cfg)
	if err != nil {
		return err
	}

	out := cfg.OutputFile
	if cfg.Verbosity > 1 {
		for _, res := range sum.Results {
			fmt.Fprintf(out, "game %d: %s-%s %s (%s, %d plies)\n",
				res.Spec.Index+1, res.Spec.White, res.Spec.Black, resultText(res), termination(res), len(res.Moves))
		}
	}
	writeSummary(out, sum)
	return nil
}

// writeSummary prints the per-tier table and the outcome counts.
func writeSummary(out io.Writer, sum worker.MatchSummary) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "tier\tgames\twins\tlosses\tdraws\tunfinished")
	for _, r := range sum.Records {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\n", r.Tier, r.Games(), r.Wins, r.Losses, r.Draws, r.Unfinished)
	}
	tw.Flush()

	outcomes := make([]engine.Outcome, 0, len(sum.Outcomes))
	for o := range sum.Outcomes {
		outcomes = append(outcomes, o)
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i] < outcomes[j] })
	for _, o := range outcomes {
		fmt.Fprintf(out, "%s: %d\n", o, sum.Outcomes[o])
	}
	if sum.PlyLimit > 0 {
		fmt.Fprintf(out, "ply limit: %d\n", sum.PlyLimit)
	}
	if sum.Errors > 0 {
		fmt.Fprintf(out, "errors: %d\n", sum.Errors)
	}
}

// runPerft prints the number of leaf nodes depth plies below pos.
func runPerft(out io.Writer, pos *engine.Position, depth int, divide bool) error {
	if depth < 0 {
		return fmt.Errorf("perft depth %d is negative", depth)
	}
	last := pos.Aux.Last()
	if divide {
		counts := engine.Divide(&pos.Board, pos.ToMove, last, depth)
		moves := make([]string, 0, len(counts))
		for m := range counts {
			moves = append(moves, m)
		}
		sort.Strings(moves)
		for _, m := range moves {
			fmt.Fprintf(out, "%s: %d\n", m, counts[m])
		}
	}
	fmt.Fprintf(out, "nodes %d\n", engine.Perft(&pos.Board, pos.ToMove, last, depth))
	return nil
}

// formatMoves numbers moves the way a PGN move text does, in long
// algebraic notation.
func formatMoves(start *engine.Position, moves []chess.Move) string {
	var sb strings.Builder
	num := max(start.FullmoveNumber, 1)
	toMove := start.ToMove
	for i, m := range moves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch {
		case toMove == chess.White:
			fmt.Fprintf(&sb, "%d. ", num)
		case i == 0:
			fmt.Fprintf(&sb, "%d... ", num)
		}
		sb.WriteString(m.String())
		if toMove == chess.Black {
			num++
		}
		toMove = toMove.Opposite()
	}
	return sb.String()
}

// resultText returns the PGN result of a game.
func resultText(res worker.GameResult) string {
	switch {
	case res.Error != nil || res.PlyLimit:
		return "*"
	case res.Decisive() && res.Winner == chess.White:
		return "1-0"
	case res.Decisive():
		return "0-1"
	case res.Outcome.IsOver():
		return "1/2-1/2"
	}
	return "*"
}

// termination describes why a game stopped.
func termination(res worker.GameResult) string {
	switch {
	case res.Error != nil:
		return "error: " + res.Error.Error()
	case res.PlyLimit:
		return "ply limit"
	}
	return res.Outcome.String()
}
