package worker

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chess-ai-go/internal/config"
	"github.com/lgbarn/chess-ai-go/internal/difficulty"
	"github.com/lgbarn/chess-ai-go/internal/engine"
)

// TierRecord counts one tier's results over a match. Games stopped at the
// ply limit count as Unfinished, not as draws.
type TierRecord struct {
	Tier       string
	Wins       int
	Losses     int
	Draws      int
	Unfinished int
}

// Games returns the number of seats the tier filled in finished games.
func (r TierRecord) Games() int {
	return r.Wins + r.Losses + r.Draws
}

// MatchSummary collects the results of a match.
type MatchSummary struct {
	Results  []GameResult // ordered by game index
	Records  []TierRecord // ordered by tier name
	Outcomes map[engine.Outcome]int
	PlyLimit int
	Errors   int
}

// Specs returns the games a match configuration describes. With Alternate
// set, odd-indexed games swap colours.
func Specs(mc *config.MatchConfig, seed uint64) []GameSpec {
	specs := make([]GameSpec, mc.Games)
	for i := range specs {
		white, black := mc.White, mc.Black
		if mc.Alternate && i%2 == 1 {
			white, black = black, white
		}
		specs[i] = GameSpec{
			Index:    i,
			White:    white,
			Black:    black,
			StartFEN: mc.StartFEN,
			MaxPlies: mc.MaxPlies,
			Seed:     seed + uint64(i),
		}
	}
	return specs
}

// RunMatch plays every game of cfg.Match on a worker pool and summarises
// the results. Games are independent, so the summary does not depend on
// the number of workers when cfg.AI is seeded.
func RunMatch(ctx context.Context, cfg *config.Config) (MatchSummary, error) {
	if err := cfg.Validate(); err != nil {
		return MatchSummary{}, err
	}
	for _, name := range []string{cfg.Match.White, cfg.Match.Black} {
		if _, err := difficulty.ParseTier(name); err != nil {
			return MatchSummary{}, err
		}
	}

	specs := Specs(cfg.Match, cfg.AI.Seed)
	logger := cfg.Logger.With().Str("component", "match").Logger()
	logger.Info().
		Int("games", len(specs)).
		Int("workers", cfg.Match.Workers).
		Str("white", cfg.Match.White).
		Str("black", cfg.Match.Black).
		Msg("match-started")

	pool := NewPool(func(spec GameSpec) GameResult {
		return PlayGame(ctx, cfg, spec)
	}, WithWorkers(cfg.Match.Workers), WithBufferSize(cfg.Match.Workers*2))
	pool.Start()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer pool.Close()
		for _, spec := range specs {
			select {
			case <-gctx.Done():
				pool.Stop()
				return gctx.Err()
			default:
			}
			pool.Submit(spec)
		}
		return nil
	})

	results := make([]GameResult, 0, len(specs))
	g.Go(func() error {
		for res := range pool.Results() {
			ev := logger.Debug()
			if res.Error != nil {
				ev = logger.Warn().Err(res.Error)
			}
			ev.Int("game", res.Spec.Index).
				Str("outcome", res.Outcome.String()).
				Int("plies", len(res.Moves)).
				Str("winner", res.WinnerTier()).
				Msg("game-finished")
			results = append(results, res)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return MatchSummary{}, err
	}

	sum := Summarise(results)
	logger.Info().
		Int("finished", len(sum.Results)).
		Int("errors", sum.Errors).
		Int("ply_limit", sum.PlyLimit).
		Msg("match-finished")
	return sum, nil
}

// Summarise tallies game results per tier.
func Summarise(results []GameResult) MatchSummary {
	sum := MatchSummary{
		Results:  append([]GameResult(nil), results...),
		Outcomes: make(map[engine.Outcome]int),
	}
	sort.Slice(sum.Results, func(i, j int) bool {
		return sum.Results[i].Spec.Index < sum.Results[j].Spec.Index
	})

	records := make(map[string]*TierRecord)
	record := func(tier string) *TierRecord {
		r, ok := records[tier]
		if !ok {
			r = &TierRecord{Tier: tier}
			records[tier] = r
		}
		return r
	}

	for _, res := range sum.Results {
		if res.Error != nil {
			sum.Errors++
			continue
		}

		// With the same tier on both sides, both seats land on one record.
		white, black := record(res.Spec.White), record(res.Spec.Black)
		if res.PlyLimit {
			sum.PlyLimit++
			white.Unfinished++
			black.Unfinished++
			continue
		}
		sum.Outcomes[res.Outcome]++

		switch {
		case !res.Decisive():
			white.Draws++
			black.Draws++
		case res.WinnerTier() == res.Spec.White:
			white.Wins++
			black.Losses++
		default:
			black.Wins++
			white.Losses++
		}
	}

	for _, r := range records {
		sum.Records = append(sum.Records, *r)
	}
	sort.Slice(sum.Records, func(i, j int) bool {
		return sum.Records[i].Tier < sum.Records[j].Tier
	})
	return sum
}

// Record returns the record of the named tier.
func (s MatchSummary) Record(tier string) (TierRecord, bool) {
	for _, r := range s.Records {
		if r.Tier == tier {
			return r, true
		}
	}
	return TierRecord{}, false
}
