// Package puzzles manages a pool of pre-generated KenKen puzzles loaded
// from a JSON file, so the HTTP layer can serve a deterministic puzzle
// for a given seed or date without generating one on every request.
package puzzles

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"sync"
	"time"

	"kenken-engine/internal/core"
	"kenken-engine/pkg/constants"
)

// CompactPuzzle stores one pre-generated puzzle plus its unique solution.
type CompactPuzzle struct {
	N          int         `json:"n"`
	Seed       uint64      `json:"seed"`
	Difficulty string      `json:"difficulty"`
	Cages      []core.Cage `json:"cages"`
	Solution   []int       `json:"solution"`
}

// PuzzleFile is the top-level structure for the JSON file.
type PuzzleFile struct {
	Version int             `json:"version"`
	Count   int             `json:"count"`
	Puzzles []CompactPuzzle `json:"puzzles"`
}

// Loader manages pre-generated puzzles.
type Loader struct {
	puzzles []CompactPuzzle
	mu      sync.RWMutex
}

var (
	globalLoader *Loader
	loadOnce     sync.Once
	loadErr      error
)

// Load reads puzzles from the JSON file.
func Load(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle file: %w", err)
	}

	var file PuzzleFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse puzzle file: %w", err)
	}

	return &Loader{puzzles: file.Puzzles}, nil
}

// LoadGlobal loads puzzles into the global loader (singleton).
func LoadGlobal(path string) error {
	loadOnce.Do(func() {
		globalLoader, loadErr = Load(path)
	})
	return loadErr
}

// Global returns the global loader instance.
func Global() *Loader {
	return globalLoader
}

// SetGlobal sets the global loader instance (for testing).
func SetGlobal(l *Loader) {
	globalLoader = l
}

// NewLoaderFromPuzzles creates a loader from puzzle data (for testing).
func NewLoaderFromPuzzles(puzzles []CompactPuzzle) *Loader {
	return &Loader{puzzles: puzzles}
}

// Count returns the number of puzzles.
func (l *Loader) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.puzzles)
}

// GetPuzzle returns a puzzle by index.
func (l *Loader) GetPuzzle(index int) (CompactPuzzle, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.puzzles) {
		return CompactPuzzle{}, fmt.Errorf("puzzle index %d out of range (0-%d)", index, len(l.puzzles)-1)
	}
	return l.puzzles[index], nil
}

// GetPuzzleBySeed returns a puzzle for a given seed string, optionally
// restricted to a difficulty. It uses an FNV hash to deterministically
// map the seed to a puzzle index among the eligible candidates.
func (l *Loader) GetPuzzleBySeed(seed string, difficulty string) (CompactPuzzle, int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	candidates := make([]int, 0, len(l.puzzles))
	for i, p := range l.puzzles {
		if difficulty == "" || p.Difficulty == difficulty {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return CompactPuzzle{}, 0, fmt.Errorf("no puzzles loaded for difficulty %q", difficulty)
	}

	h := fnv.New64a()
	h.Write([]byte(seed))
	puzzleIndex := candidates[h.Sum64()%uint64(len(candidates))] //nolint:gosec // bounded by candidates length

	return l.puzzles[puzzleIndex], puzzleIndex, nil
}

// GetDailyPuzzle returns the puzzle for a given UTC date.
func (l *Loader) GetDailyPuzzle(date time.Time, difficulty string) (CompactPuzzle, int, error) {
	dateStr := date.UTC().Format(constants.DateFormat)
	seed := "daily:" + dateStr
	return l.GetPuzzleBySeed(seed, difficulty)
}

// GetTodayPuzzle returns the puzzle for today (UTC).
func (l *Loader) GetTodayPuzzle(difficulty string) (CompactPuzzle, int, error) {
	return l.GetDailyPuzzle(time.Now(), difficulty)
}
