// Package generator builds KenKen puzzles: it samples a Latin-square
// solution, partitions the grid into cages, assigns operations and
// targets from the solved values, and retries with a fresh seeded
// attempt until the result has a unique solution under the configured
// deduction tier.
package generator

import (
	"kenken-engine/internal/core"
	"kenken-engine/internal/kenken/rng"
	"kenken-engine/internal/kenken/solver"
)

// Generate produces a uniquely-solvable puzzle for the given config,
// retrying with a deterministically-derived seed per attempt until one
// validates and has exactly one solution, or MaxAttempts is exhausted.
// When cfg.TargetDifficulty is set, each unique candidate is also
// classified and accepted only if its difficulty lands within
// cfg.DifficultyTolerance ordinal steps of the target.
func Generate(cfg GenerateConfig) (*GeneratedPuzzle, error) {
	g, err := generate(cfg, false)
	if err != nil {
		return nil, err
	}
	return &g.GeneratedPuzzle, nil
}

// GenerateWithStats is Generate plus per-call statistics and the
// accepted puzzle's classified difficulty.
func GenerateWithStats(cfg GenerateConfig) (*GeneratedPuzzleWithStats, error) {
	return generate(cfg, true)
}

func generate(cfg GenerateConfig, classifyAlways bool) (*GeneratedPuzzleWithStats, error) {
	if cfg.N <= 0 || cfg.N > core.MaxDomainN {
		return nil, &GenError{
			Kind: ErrGridSizeTooLarge,
			N:    cfg.N,
			Hint: "domains are 64-bit masks; grid size must be between 1 and 63",
		}
	}

	classify := classifyAlways || cfg.TargetDifficulty != nil

	var stats GenerateStats
	var lastErr error
	for attempt := uint32(0); attempt < cfg.MaxAttempts; attempt++ {
		stats.Attempts = attempt + 1

		// Each attempt owns its whole random stream, so attempt k
		// produces the same candidate no matter how earlier attempts
		// went.
		attemptSeed := rng.DeriveAttemptSeed(cfg.Seed, attempt)
		stream := rng.New(attemptSeed)

		solution := sampleLatinSquare(cfg.N, stream)
		solution = permuteLatin(cfg.N, solution, stream)

		cages, ok := randomCagePartition(cfg.N, cfg.Rules.MaxCageSize, cfg.DominoProbability, stream)
		if !ok {
			stats.PartitionFailures++
			continue
		}
		puzzle := assignOpsAndTargets(cfg.N, solution, cages, cfg.Rules, stream)

		if err := puzzle.Validate(cfg.Rules); err != nil {
			stats.ValidationFailures++
			lastErr = err
			continue
		}

		count, solveStats := solver.CountSolutionsUpTo(&puzzle, cfg.Rules, cfg.Tier, 2)
		if count != 1 {
			stats.NonUniqueRejections++
			continue
		}

		out := &GeneratedPuzzleWithStats{
			GeneratedPuzzle: GeneratedPuzzle{Puzzle: puzzle, Solution: solution},
			Stats:           stats,
		}
		out.Stats.Solve = solveStats

		if classify {
			tier, tierStats := solver.ClassifyTierRequired(&puzzle, cfg.Rules)
			out.Tier = tier
			out.Difficulty = solver.ClassifyDifficultyFromTier(tier, tierStats)
			if cfg.TargetDifficulty != nil && ordinalDistance(out.Difficulty, *cfg.TargetDifficulty) > cfg.DifficultyTolerance {
				stats.DifficultyRejections++
				continue
			}
		}
		return out, nil
	}

	return nil, &GenError{Kind: ErrAttemptsExhausted, Attempts: cfg.MaxAttempts, Wrapped: wrapCoreErr(lastErr)}
}

func ordinalDistance(a, b core.DifficultyTier) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}
