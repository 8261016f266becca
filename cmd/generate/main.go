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

	"kenken-engine/internal/kenken/generator"
	"kenken-engine/internal/puzzles"
)

func main() {
	count := flag.Int("n", 1000, "Number of puzzles to generate")
	output := flag.String("o", "puzzles.json", "Output file path")
	workers := flag.Int("w", 0, "Number of worker goroutines (default: num CPUs)")
	gridSize := flag.Int("size", 6, "Grid size (n x n)")
	startSeed := flag.Uint64("seed", 1, "Starting seed value")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	fmt.Printf("Generating %d %dx%d puzzles with %d workers...\n", *count, *gridSize, *gridSize, *workers)
	start := time.Now()

	result := make([]puzzles.CompactPuzzle, *count)
	var generated int64
	var failed int64

	work := make(chan int, *count)
	for i := 0; i < *count; i++ {
		work <- i
	}
	close(work)

	done := make(chan bool)
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g := atomic.LoadInt64(&generated)
				elapsed := time.Since(start)
				rate := float64(g) / elapsed.Seconds()
				remaining := float64(*count-int(g)) / rate
				fmt.Printf("  Progress: %d/%d (%.1f/sec, ~%.0fs remaining)\n", g, *count, rate, remaining)
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
				seed := *startSeed + uint64(idx)
				puzzle, ok := generatePuzzle(*gridSize, seed)
				if !ok {
					atomic.AddInt64(&failed, 1)
					continue
				}
				result[idx] = puzzle
				atomic.AddInt64(&generated, 1)
			}
		}(w)
	}

	wg.Wait()
	done <- true

	elapsed := time.Since(start)
	fmt.Printf("Generated %d puzzles in %v (%.1f puzzles/sec), %d failed\n",
		atomic.LoadInt64(&generated), elapsed, float64(*count)/elapsed.Seconds(), atomic.LoadInt64(&failed))

	compacted := make([]puzzles.CompactPuzzle, 0, *count)
	for _, p := range result {
		if p.Cages != nil {
			compacted = append(compacted, p)
		}
	}

	fmt.Printf("Writing %d puzzles to %s...\n", len(compacted), *output)

	file := puzzles.PuzzleFile{
		Version: 1,
		Count:   len(compacted),
		Puzzles: compacted,
	}

	data, err := json.Marshal(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	info, _ := os.Stat(*output)
	sizeMB := float64(info.Size()) / 1024 / 1024
	fmt.Printf("Done! File size: %.2f MB\n", sizeMB)
}

// generatePuzzle generates one uniquely-solvable puzzle at the given
// size and seed, classifies its difficulty, and packs it into the
// loader's on-disk record shape. ok is false if generation exhausted
// its attempt budget for this seed.
func generatePuzzle(n int, seed uint64) (puzzles.CompactPuzzle, bool) {
	genCfg := generator.KeenBaselineConfig(n, seed)
	generated, err := generator.GenerateWithStats(genCfg)
	if err != nil {
		return puzzles.CompactPuzzle{}, false
	}

	return puzzles.CompactPuzzle{
		N:          n,
		Seed:       seed,
		Difficulty: generated.Difficulty.String(),
		Cages:      generated.Puzzle.Cages,
		Solution:   generated.Solution,
	}, true
}
