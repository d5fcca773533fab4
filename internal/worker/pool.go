// Package worker runs move searches for many saved games in parallel. Every
// job loads its own session, so no game is ever shared between goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// WorkItem names a save file to analyse.
type WorkItem struct {
	Path  string
	Index int // Position in the submitted sequence
}

// Advice is the result of analysing one save file.
type Advice struct {
	Path  string
	Index int

	GameID   string
	GameName string
	ToMove   chess.Colour
	FEN      string
	Depth    int

	// Outcome is Continue when Move holds a suggestion.
	Outcome engine.Outcome
	Move    chess.Move
	Value   int
	Nodes   int
	Cached  bool // Move was found in a position cache, not searched

	Err error
}

// ProcessFunc analyses one work item.
type ProcessFunc func(item WorkItem) Advice

// Pool runs a ProcessFunc on a fixed number of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	work        chan WorkItem
	results     chan Advice
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
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

// WithBufferSize sets the size of the work and result buffers.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Defaults: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.bufferSize)
	p.results = make(chan Advice, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.work {
		if p.IsStopped() {
			continue // drain
		}
		p.results <- p.processFunc(item)
	}
}

// Submit queues a work item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.work <- item
}

// TrySubmit queues a work item without blocking. It returns false if the
// buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.work <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers skip the items still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop was called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes the result
// channel.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished items.
func (p *Pool) Results() <-chan Advice {
	return p.results
}

// NumWorkers returns the number of workers.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run analyses every path with a new pool and returns the results in input
// order.
func Run(paths []string, workers int, fn ProcessFunc) []Advice {
	p := NewPool(fn, WithWorkers(workers), WithBufferSize(len(paths)))
	p.Start()
	go func() {
		for i, path := range paths {
			p.Submit(WorkItem{Path: path, Index: i})
		}
		p.Close()
	}()

	out := make([]Advice, len(paths))
	for res := range p.Results() {
		out[res.Index] = res
	}
	return out
}
