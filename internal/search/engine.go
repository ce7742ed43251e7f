package search

import (
	"encoding/binary"
	"runtime"

	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"github.com/lgbarn/chess-ai-go/internal/chess"
	"github.com/lgbarn/chess-ai-go/internal/engine"
	"github.com/lgbarn/chess-ai-go/internal/eval"
	"github.com/lgbarn/chess-ai-go/internal/hashing"
)

// Stats describes the most recent search.
type Stats struct {
	Nodes           int
	QuiescenceNodes int
	NullCutoffs     int
	Yields          int
	Depth           int // deepest completed iteration
	Score           int
	FromBook        bool
	FromTablebase   bool
}

// Engine chooses moves for one AI player. It is not safe for concurrent
// use; each AI instance owns its own Engine.
type Engine struct {
	params    Params
	cache     *TranspositionCache
	book      Book
	tablebase Tablebase
	rng       *frand.RNG
	logger    zerolog.Logger
	yield     func()

	// Per-search state.
	side  chess.Colour
	persp hashing.Key
	stats Stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed makes the engine's random choices reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = newRNG(seed)
	}
}

// WithBook sets the opening book consulted when the params allow it.
func WithBook(b Book) Option {
	return func(e *Engine) { e.book = b }
}

// WithTablebase sets the endgame table consulted when the params allow it.
func WithTablebase(t Tablebase) Option {
	return func(e *Engine) { e.tablebase = t }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithYield sets the hook called every BatchSize nodes.
func WithYield(fn func()) Option {
	return func(e *Engine) { e.yield = fn }
}

func newRNG(seed uint64) *frand.RNG {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return frand.NewCustom(key[:], 1024, 12)
}

// NewEngine creates an engine with the given parameters. Without options
// it draws entropy from the system, logs nothing, yields with
// runtime.Gosched and, when the params enable them, uses DefaultBook and
// a six-piece HeuristicTablebase.
func NewEngine(p Params, opts ...Option) *Engine {
	e := &Engine{
		params:    p,
		book:      EmptyBook{},
		tablebase: NoTablebase{},
		logger:    zerolog.Nop(),
		yield:     runtime.Gosched,
	}
	if p.UseOpeningBook {
		e.book = DefaultBook()
	}
	if p.UseTablebase {
		e.tablebase = NewHeuristicTablebase()
	}
	if p.UseCache {
		e.cache = NewTranspositionCache(p.CacheLimit)
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = frand.New()
	}
	return e
}

// Params returns the engine's parameters.
func (e *Engine) Params() Params {
	return e.params
}

// Stats returns statistics of the most recent search.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Cache returns the transposition cache, or nil when caching is off.
func (e *Engine) Cache() *TranspositionCache {
	return e.cache
}

// BestMove picks a move for side. It returns false when side has no legal
// move; the caller decides whether that is checkmate or stalemate.
func (e *Engine) BestMove(board *chess.Board, side chess.Colour, aux *chess.GameAux) (chess.Move, bool) {
	e.stats = Stats{}
	e.side = side
	if side == chess.White {
		e.persp = "|w"
	} else {
		e.persp = "|b"
	}

	legal := engine.LegalMovesForSide(board, side, aux)
	if len(legal) == 0 {
		e.logger.Debug().Str("side", side.String()).Msg("no-legal-moves")
		return chess.Move{}, false
	}

	var m chess.Move
	switch e.params.Strategy {
	case RandomCapture:
		m = e.randomCapture(legal)
	case ReplyCheck:
		m = e.replyCheck(board, side, legal)
	default:
		m = e.alphaBetaMove(board, side, aux, legal)
	}

	e.logger.Debug().
		Str("strategy", e.params.Strategy.String()).
		Str("move", m.String()).
		Int("nodes", e.stats.Nodes).
		Int("depth", e.stats.Depth).
		Int("score", e.stats.Score).
		Msg("best-move")
	return m, true
}

// alphaBetaMove consults the book and tablebase and otherwise searches.
func (e *Engine) alphaBetaMove(board *chess.Board, side chess.Colour, aux *chess.GameAux, legal []chess.Move) chess.Move {
	if e.params.UseOpeningBook {
		if m, ok := bookMove(e.book, board, side, legal); ok {
			e.stats.FromBook = true
			return m
		}
	}
	if e.params.UseTablebase && eval.CountPieces(board) <= min(e.params.TablebasePieces, e.tablebase.MaxPieces()) {
		if m, ok := e.tablebase.Probe(board, side, legal); ok {
			e.stats.FromTablebase = true
			return m
		}
	}

	last := aux.Last()
	if !e.params.IterativeDeepening {
		m, score := e.searchRoot(board, side, last, legal, e.params.Depth)
		e.stats.Depth, e.stats.Score = e.params.Depth, score
		return m
	}

	moves := append([]chess.Move(nil), legal...)
	var best chess.Move
	for depth := 1; depth <= e.params.Depth; depth++ {
		e.logger.Debug().Int("plies", depth).Msg("deepening-iteratively")
		m, score := e.searchRoot(board, side, last, moves, depth)
		best = m
		e.stats.Depth, e.stats.Score = depth, score
		moveToFront(moves, m)
	}
	if e.cache != nil {
		st := e.cache.Stats()
		e.logger.Debug().
			Int("entries", e.cache.Len()).
			Int("hits", st.Hits).
			Int("probes", st.Probes).
			Int("clears", st.Clears).
			Msg("cache-stats")
	}
	return best
}

// searchRoot searches every root move and returns the first with the
// highest score in the order searched.
func (e *Engine) searchRoot(board *chess.Board, side chess.Colour, last *chess.Move, legal []chess.Move, depth int) (chess.Move, int) {
	moves := legal
	if e.params.UseOrdering {
		moves = OrderMoves(board, legal)
		if e.params.IterativeDeepening && depth > 1 {
			// The previous iteration's best move is searched first.
			moveToFront(moves, legal[0])
		}
	}

	alpha, beta := -infinity, infinity
	best, bestScore := moves[0], -infinity
	for i := range moves {
		m := moves[i]
		next := engine.ApplyMove(*board, m)
		v := e.alphaBeta(&next, side.Opposite(), &m, depth-1, alpha, beta, true)
		if v > bestScore {
			best, bestScore = m, v
		}
		alpha = max(alpha, v)
	}
	return best, bestScore
}
