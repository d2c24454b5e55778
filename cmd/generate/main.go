// Command generate produces a batch of puzzles with a verified unique
// solution, tags each with a google/uuid identifier, classifies its
// difficulty by the hardest technique required to finish it, and
// writes the batch out as JSON. Grounded in the teacher's
// cmd/generate/main.go worker-pool/progress-reporter shape, merged
// with its dp.CarveGivens carving and cmd/test_techniques-style
// difficulty analysis.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"sudoku-engine/internal/solver"
	"sudoku-engine/pkg/constants"
)

// Puzzle is one generated entry: a uuid-tagged grid with its verified
// difficulty classification.
type Puzzle struct {
	ID         string `json:"id"`
	Givens     []int  `json:"givens"`
	Solution   []int  `json:"solution"`
	Difficulty string `json:"difficulty"`
}

// PuzzleFile is the top-level batch output.
type PuzzleFile struct {
	Count   int      `json:"count"`
	Puzzles []Puzzle `json:"puzzles"`
}

func main() {
	count := flag.Int("n", 100, "number of puzzles to generate")
	output := flag.String("o", "puzzles.json", "output file path")
	workers := flag.Int("w", 0, "worker goroutines (default: num CPUs)")
	difficulty := flag.String("difficulty", constants.DifficultyMedium, "target difficulty")
	startSeed := flag.Int64("seed", 1, "starting seed value")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}
	target, ok := constants.TargetGivens[*difficulty]
	if !ok {
		fmt.Fprintf(os.Stderr, "generate: unknown difficulty %q\n", *difficulty)
		os.Exit(1)
	}

	fmt.Printf("generating %d puzzles with %d workers...\n", *count, *workers)
	start := time.Now()

	puzzles := make([]Puzzle, *count)
	var generated int64

	work := make(chan int, *count)
	for i := 0; i < *count; i++ {
		work <- i
	}
	close(work)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g := atomic.LoadInt64(&generated)
				elapsed := time.Since(start)
				fmt.Printf("  progress: %d/%d (%.1f/sec)\n", g, *count, float64(g)/elapsed.Seconds())
			case <-done:
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for idx := range work {
				seed := *startSeed + int64(idx)
				full := solver.GenerateFullGrid(seed)
				givens := solver.CarveGivens(full, target, seed)

				classified, err := solver.Classify(givens)
				if err != nil {
					classified = *difficulty
				}

				puzzles[idx] = Puzzle{
					ID:         uuid.NewString(),
					Givens:     givens,
					Solution:   full,
					Difficulty: classified,
				}
				atomic.AddInt64(&generated, 1)
			}
		}(w)
	}
	wg.Wait()
	close(done)

	out := PuzzleFile{Count: len(puzzles), Puzzles: puzzles}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d puzzles to %s in %s\n", len(puzzles), *output, time.Since(start).Round(time.Millisecond))
}
