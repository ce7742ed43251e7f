package difficulty

import (
	"context"
	"encoding/binary"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/config"
	"github.com/lgbarn/chess-ai-go/internal/errors"
	"github.com/lgbarn/chess-ai-go/internal/search"
)

// Decision is the outcome of a move request. OK is false when the side
// had no legal move; the caller tells checkmate from stalemate.
type Decision struct {
	Move    chess.Move
	OK      bool
	Elapsed time.Duration
	Stats   search.Stats
}

// Pending is a move request that has not necessarily finished.
type Pending struct {
	done     chan struct{}
	cancel   context.CancelFunc
	decision Decision
	err      error
}

// Done is closed once the decision is available.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the decision is available or ctx is done.
func (p *Pending) Wait(ctx context.Context) (Decision, error) {
	select {
	case <-p.done:
		return p.decision, p.err
	case <-ctx.Done():
		return Decision{}, ctx.Err()
	}
}

// Cancel abandons delivery. A search already running finishes in the
// background, and Wait then reports context.Canceled.
func (p *Pending) Cancel() {
	p.cancel()
}

func (p *Pending) resolve(d Decision, err error) {
	p.decision, p.err = d, err
	close(p.done)
}

// Controller produces moves for one AI player at a fixed tier. It serves
// one request at a time.
type Controller struct {
	tier   Tier
	delay  Delay
	scale  float64
	engine *search.Engine
	rng    *frand.RNG
	logger zerolog.Logger
	busy   atomic.Bool
}

// NewController creates a controller for the tier named in cfg.
func NewController(cfg *config.Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tier, err := ParseTier(cfg.AI.Tier)
	if err != nil {
		return nil, err
	}

	params := ParamsFor(tier)
	params.BatchSize = cfg.AI.BatchSize
	if !cfg.AI.OpeningBook {
		params.UseOpeningBook = false
	}
	if !cfg.AI.Tablebase {
		params.UseTablebase = false
	}
	if err := params.Validate(); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "%s tier: %v", tier, err)
	}

	logger := cfg.Logger.With().Str("tier", tier.String()).Logger()
	opts := []search.Option{search.WithLogger(logger)}

	c := &Controller{
		tier:   tier,
		delay:  DelayFor(tier),
		scale:  cfg.AI.DelayScale,
		logger: logger,
	}
	if cfg.AI.Seeded {
		opts = append(opts, search.WithSeed(cfg.AI.Seed))
		var key [32]byte
		binary.LittleEndian.PutUint64(key[:], cfg.AI.Seed)
		key[31] = 'd'
		c.rng = frand.NewCustom(key[:], 64, 8)
	} else {
		c.rng = frand.New()
	}
	c.engine = search.NewEngine(params, opts...)
	return c, nil
}

// Tier returns the controller's tier.
func (c *Controller) Tier() Tier {
	return c.tier
}

// Params returns the search parameters in use.
func (c *Controller) Params() search.Params {
	return c.engine.Params()
}

// RequestMove starts choosing a move for side and returns immediately.
// The board and game context are copied, so the caller may keep using
// them. The search and the thinking delay run concurrently; the decision
// is delivered when both are finished. A request made while another is
// still running fails with ErrSearchInProgress.
func (c *Controller) RequestMove(ctx context.Context, board *chess.Board, side chess.Colour, aux *chess.GameAux) (*Pending, error) {
	if !c.busy.CompareAndSwap(false, true) {
		return nil, errors.ErrSearchInProgress
	}

	b := *board
	a := aux.Clone()
	delay := c.delay.Pick(c.rng, c.scale)

	ctx, cancel := context.WithCancel(ctx)
	p := &Pending{done: make(chan struct{}), cancel: cancel}

	go func() {
		defer cancel()
		start := time.Now()
		var d Decision

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			d.Move, d.OK = c.engine.BestMove(&b, side, a)
			d.Stats = c.engine.Stats()
			return nil
		})
		g.Go(func() error {
			if delay <= 0 {
				return nil
			}
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-timer.C:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
		err := g.Wait()
		d.Elapsed = time.Since(start)

		if err != nil {
			c.logger.Debug().Err(err).Dur("elapsed", d.Elapsed).Msg("move-abandoned")
			d = Decision{Elapsed: d.Elapsed}
		} else {
			c.logger.Info().
				Str("side", side.String()).
				Str("move", d.Move.String()).
				Bool("ok", d.OK).
				Dur("elapsed", d.Elapsed).
				Dur("delay", delay).
				Int("nodes", d.Stats.Nodes).
				Msg("move-delivered")
		}

		c.busy.Store(false)
		p.resolve(d, err)
	}()
	return p, nil
}

// Move requests a move and waits for it.
func (c *Controller) Move(ctx context.Context, board *chess.Board, side chess.Colour, aux *chess.GameAux) (Decision, error) {
	p, err := c.RequestMove(ctx, board, side, aux)
	if err != nil {
		return Decision{}, err
	}
	return p.Wait(ctx)
}
