// Package worker provides a worker pool for parallel position generation.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chunker-go/internal/audit"
	"github.com/lgbarn/chunker-go/internal/chess"
	"github.com/lgbarn/chunker-go/internal/errors"
	"github.com/lgbarn/chunker-go/internal/generator"
)

// WorkItem represents one position to be generated.
type WorkItem struct {
	Index  int        // Original index for tracking
	Grid   chess.Grid // Board size
	Pieces int        // Requested piece count
	Seed   int64      // Seed for this item's generator
}

// ProcessResult represents the result of generating one position.
type ProcessResult struct {
	Index      int
	Grid       chess.Grid
	Position   chess.Position
	Stats      generator.Stats   // Statistics of the generation run
	Violations []audit.Violation // Audit findings, when auditing is enabled
	Duplicate  bool              // Whether the position was seen before
	Error      error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed set of goroutines.
// Once the pool's context is done or Stop is called, items still queued
// come back as results carrying ErrCancelled instead of being processed,
// so every submitted item yields exactly one result.
type Pool struct {
	workers int
	buffer  int
	items   chan WorkItem
	results chan ProcessResult
	process ProcessFunc
	wg      sync.WaitGroup

	stopped   atomic.Bool
	processed atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// NewPool creates a worker pool. Defaults: 1 worker, buffer size of 10.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers: 1,
		buffer:  10,
		process: process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start starts the worker goroutines. They stop processing when ctx is done.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.items {
		if p.Stopped() || ctx.Err() != nil {
			p.results <- cancelled(item)
			continue
		}
		p.results <- p.process(item)
		p.processed.Add(1)
	}
}

func cancelled(item WorkItem) ProcessResult {
	return ProcessResult{
		Index: item.Index,
		Grid:  item.Grid,
		Error: errors.Wrapf(errors.ErrCancelled, "item %d", item.Index),
	}
}

// Submit queues an item, blocking while the buffer is full. It returns
// ctx.Err() if ctx is done first, in which case the item was not queued.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	select {
	case p.items <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop makes workers skip the items still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once they have.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Processed returns how many items have been processed so far.
func (p *Pool) Processed() int {
	return int(p.processed.Load())
}
