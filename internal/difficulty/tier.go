// Package difficulty maps the five difficulty tiers to search parameters
// and thinking delays, and delivers AI moves asynchronously.
package difficulty

import (
	"fmt"
	"strings"
	"time"

	"github.com/lgbarn/chess-ai-go/internal/errors"
	"github.com/lgbarn/chess-ai-go/internal/eval"
	"github.com/lgbarn/chess-ai-go/internal/search"
)

// Tier is a difficulty level, weakest first.
type Tier int

const (
	Easy Tier = iota
	Medium
	Hard
	Nightmare
	Impossible
)

var tierNames = [...]string{"easy", "medium", "hard", "nightmare", "impossible"}

// Tiers returns every tier, weakest first.
func Tiers() []Tier {
	return []Tier{Easy, Medium, Hard, Nightmare, Impossible}
}

// String returns the lower-case tier name.
func (t Tier) String() string {
	if t >= 0 && int(t) < len(tierNames) {
		return tierNames[t]
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// ParseTier resolves a tier name, ignoring case and surrounding space.
func ParseTier(name string) (Tier, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, n := range tierNames {
		if n == want {
			return Tier(i), nil
		}
	}
	return 0, errors.Wrapf(errors.ErrUnknownTier, "tier %q", name)
}

// ParamsFor returns the search parameters of a tier.
func ParamsFor(t Tier) search.Params {
	switch t {
	case Easy:
		return search.Params{
			Strategy:  search.RandomCapture,
			Depth:     1,
			MateScore: search.DefaultMateScore,
			Weights:   eval.EasyWeights,
		}
	case Medium:
		return search.Params{
			Strategy:  search.ReplyCheck,
			Depth:     1,
			MateScore: search.DefaultMateScore,
			Weights:   eval.MediumWeights,
		}
	case Hard:
		return search.Params{
			Strategy:  search.AlphaBeta,
			Depth:     2,
			MateScore: eval.HardWeights.MateBonus,
			Weights:   eval.HardWeights,
			BatchSize: search.DefaultBatchSize,
		}
	case Nightmare:
		return search.Params{
			Strategy:    search.AlphaBeta,
			Depth:       3,
			MateScore:   eval.NightmareWeights.MateBonus,
			Weights:     eval.NightmareWeights,
			UseOrdering: true,
			UseCache:    true,
			CacheLimit:  10000,
			BatchSize:   search.DefaultBatchSize,
		}
	case Impossible:
		return search.Params{
			Strategy:           search.AlphaBeta,
			Depth:              5,
			MateScore:          eval.ImpossibleWeights.MateBonus,
			Weights:            eval.ImpossibleWeights,
			UseOrdering:        true,
			UseCache:           true,
			CacheLimit:         50000,
			UseQuiescence:      true,
			QuiescenceDepth:    4,
			UseNullMove:        true,
			NullMoveReduction:  3,
			NullMoveMinMoves:   8,
			IterativeDeepening: true,
			UseOpeningBook:     true,
			UseTablebase:       true,
			TablebasePieces:    6,
			BatchSize:          search.DefaultBatchSize,
		}
	}
	panic(fmt.Sprintf("difficulty: unknown tier %d", int(t)))
}

// Delay is the range an AI move's delivery time is drawn from. The move
// is never delivered before Min, and the delay itself never exceeds Max;
// a slower search delivers when it finishes.
type Delay struct {
	Min time.Duration
	Max time.Duration
}

// DelayFor returns the thinking delay of a tier.
func DelayFor(t Tier) Delay {
	switch t {
	case Easy:
		return Delay{800 * time.Millisecond, 2 * time.Second}
	case Medium:
		return Delay{1500 * time.Millisecond, 3 * time.Second}
	case Hard:
		return Delay{1500 * time.Millisecond, 1500 * time.Millisecond}
	case Nightmare:
		return Delay{3 * time.Second, 5 * time.Second}
	case Impossible:
		return Delay{4 * time.Second, 7 * time.Second}
	}
	return Delay{}
}

// Uint64n is the random source a delay is drawn from.
type Uint64n interface {
	Uint64n(n uint64) uint64
}

// Pick draws a delay uniformly from the range and multiplies it by scale.
func (d Delay) Pick(rng Uint64n, scale float64) time.Duration {
	if scale <= 0 || d.Max <= 0 {
		return 0
	}
	delay := d.Min
	if span := d.Max - d.Min; span > 0 {
		delay += time.Duration(rng.Uint64n(uint64(span) + 1))
	}
	return time.Duration(float64(delay) * scale)
}
