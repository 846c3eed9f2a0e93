package hashing

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lgbarn/chunker-go/internal/chess"
	"github.com/lgbarn/chunker-go/internal/generator"
)

func TestThreadSafeDuplicateDetector_Concurrent(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)

	const numPositions = 100
	const numWorkers = 10
	perWorker := numPositions / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				pos := chess.Position{at(0, chess.WhiteKing), at(8, chess.BlackKing)}
				detector.CheckAndAdd(pos, 3)
			}
		}(i)
	}
	wg.Wait()

	want := Counts{Unique: 1, Duplicates: 99}
	if got := detector.Counts(); got != want {
		t.Errorf("Counts() = %+v; want %+v", got, want)
	}
}

func TestThreadSafeDuplicateDetector_GeneratedPositions(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(true, 0)

	const numWorkers = 8
	const perWorker = 25
	var duplicates atomic.Int64

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			// Every worker uses the same seed, so each worker sees the same sequence.
			gen, err := generator.New(nil, generator.WithSeed(99))
			if err != nil {
				t.Errorf("generator.New() error = %v", err)
				return
			}
			for j := 0; j < perWorker; j++ {
				pos, err := gen.Generate(6, 10)
				if err != nil {
					t.Errorf("Generate() error = %v", err)
					return
				}
				if detector.CheckAndAdd(pos, 6) {
					duplicates.Add(1)
				}
			}
		}(i)
	}
	wg.Wait()

	counts := detector.Counts()
	total := numWorkers * perWorker
	if got := counts.Unique + int(duplicates.Load()); got != total {
		t.Errorf("unique + duplicates = %d; want %d", got, total)
	}
	if counts.Unique > perWorker {
		t.Errorf("Unique = %d; want at most %d", counts.Unique, perWorker)
	}
	if int(duplicates.Load()) != counts.Duplicates {
		t.Errorf("Duplicates = %d; want %d", counts.Duplicates, duplicates.Load())
	}
}

func TestThreadSafeDuplicateDetector_Full(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 2)
	detector.CheckAndAdd(kings3, 3)
	if detector.Counts().Full {
		t.Error("Full = true after one position; want false")
	}
	detector.CheckAndAdd(withRook, 3)
	if !detector.Counts().Full {
		t.Error("Full = false at capacity; want true")
	}
}
