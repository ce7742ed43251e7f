// Package worker plays independent AI games in parallel.
package worker

import (
	"sync"
	"sync/atomic"
)

// PlayFunc plays the game described by spec.
type PlayFunc func(spec GameSpec) GameResult

// Pool manages a pool of workers, each playing one game at a time.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan GameSpec
	resultChan chan GameResult
	play       PlayFunc
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. Default: 1 worker, buffer size of 10.
func NewPool(play PlayFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		play:       play,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan GameSpec, p.bufferSize)
	p.resultChan = make(chan GameResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker plays games from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for spec := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without playing
		}
		p.resultChan <- p.play(spec)
	}
}

// Submit queues a game. This may block if the work channel buffer is full.
func (p *Pool) Submit(spec GameSpec) {
	p.workChan <- spec
}

// Stop signals workers to stop starting new games.
// Games already queued will be drained but not played.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once every worker is done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan GameResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
