package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chunker-go/internal/errors"
)

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *atomic.Int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		counter.Add(1)
		return ProcessResult{Index: item.Index, Grid: item.Grid}
	}
}

// submitAll submits items 0..n-1 from a goroutine and closes the pool.
func submitAll(t *testing.T, ctx context.Context, pool *Pool, n int) {
	t.Helper()
	go func() {
		defer pool.Close()
		for i := 0; i < n; i++ {
			if err := pool.Submit(ctx, WorkItem{Index: i, Grid: 5, Pieces: 6, Seed: int64(i)}); err != nil {
				return
			}
		}
	}()
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed atomic.Int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4))
	ctx := context.Background()
	pool.Start(ctx)

	const numItems = 25
	submitAll(t, ctx, pool, numItems)

	seen := make(map[int]bool)
	for r := range pool.Results() {
		if r.Error != nil {
			t.Errorf("result %d: %v", r.Index, r.Error)
		}
		seen[r.Index] = true
	}

	if len(seen) != numItems {
		t.Errorf("results = %d; want %d", len(seen), numItems)
	}
	if got := processed.Load(); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
	if pool.Processed() != numItems {
		t.Errorf("Processed() = %d; want %d", pool.Processed(), numItems)
	}
}

// TestPoolStop tests that queued items are returned cancelled after Stop.
func TestPoolStop(t *testing.T) {
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	blocking := func(item WorkItem) ProcessResult {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(blocking, WithWorkers(1), WithBufferSize(20))
	ctx := context.Background()
	pool.Start(ctx)
	for i := 0; i < 10; i++ {
		if err := pool.Submit(ctx, WorkItem{Index: i}); err != nil {
			t.Fatalf("Submit(%d) error = %v", i, err)
		}
	}

	// Wait until the worker is processing an item, then stop and release it.
	<-started
	pool.Stop()
	close(release)
	go pool.Close()

	done, cancelled := 0, 0
	for r := range pool.Results() {
		if errors.Is(r.Error, errors.ErrCancelled) {
			cancelled++
		} else {
			done++
		}
	}
	if done+cancelled != 10 {
		t.Errorf("results = %d; want 10", done+cancelled)
	}
	if done != 1 {
		t.Errorf("processed after Stop = %d; want 1 (the item in flight)", done)
	}
	if !pool.Stopped() {
		t.Error("Stopped() = false after Stop")
	}
}

// TestPoolContextCancel tests that a done context stops processing and
// unblocks Submit.
func TestPoolContextCancel(t *testing.T) {
	var processed atomic.Int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(2), WithBufferSize(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pool.Start(ctx)

	submitted := 0
	for i := 0; i < 50; i++ {
		if err := pool.Submit(ctx, WorkItem{Index: i}); err != nil {
			if err != context.Canceled {
				t.Errorf("Submit() error = %v; want context.Canceled", err)
			}
			break
		}
		submitted++
	}
	go pool.Close()

	results := 0
	for r := range pool.Results() {
		results++
		if !errors.Is(r.Error, errors.ErrCancelled) {
			t.Errorf("result %d error = %v; want ErrCancelled", r.Index, r.Error)
		}
	}
	if results != submitted {
		t.Errorf("results = %d; want %d submitted", results, submitted)
	}
	if processed.Load() != 0 {
		t.Errorf("processed = %d after cancel; want 0", processed.Load())
	}
}

// TestPoolResultOrder tests that all results are received regardless of order.
func TestPoolResultOrder(t *testing.T) {
	variableDelayFunc := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(variableDelayFunc, WithWorkers(4), WithBufferSize(20))
	ctx := context.Background()
	pool.Start(ctx)

	const numItems = 10
	submitAll(t, ctx, pool, numItems)

	seen := make(map[int]bool)
	for result := range pool.Results() {
		seen[result.Index] = true
	}
	for i := 0; i < numItems; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter atomic.Int32
	pool := NewPool(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	ctx := context.Background()
	pool.Start(ctx)

	const numItems = 200
	submitAll(t, ctx, pool, numItems)
	for range pool.Results() {
	}

	if got := counter.Load(); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestNewPoolOptions tests the functional options.
func TestNewPoolOptions(t *testing.T) {
	noop := func(item WorkItem) ProcessResult { return ProcessResult{Index: item.Index} }

	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"buffer", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"both", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"zero workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"negative buffer ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noop, tt.opts...)
			if got := pool.Workers(); got != tt.wantWorkers {
				t.Errorf("Workers() = %d; want %d", got, tt.wantWorkers)
			}
			if got := cap(pool.items); got != tt.wantBuffer {
				t.Errorf("buffer = %d; want %d", got, tt.wantBuffer)
			}
		})
	}
}
