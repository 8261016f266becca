package generator

import "kenken-engine/internal/core"

// GenerateConfig controls a single Generate call.
type GenerateConfig struct {
	N                 int
	Seed              uint64
	Rules             core.Ruleset
	Tier              core.DeductionTier
	MaxAttempts       uint32
	DominoProbability float64

	// TargetDifficulty, when non-nil, makes Generate classify each
	// unique candidate and accept it only if its difficulty is within
	// DifficultyTolerance ordinal steps of the target.
	TargetDifficulty    *core.DifficultyTier
	DifficultyTolerance int
}

// KeenBaselineConfig returns the standard generation defaults: Keen
// baseline ruleset, Hard-tier uniqueness check, 10,000 attempts, and a
// 55% chance of greedily forming a domino (2-cell cage) per cell.
func KeenBaselineConfig(n int, seed uint64) GenerateConfig {
	return GenerateConfig{
		N:                 n,
		Seed:              seed,
		Rules:             core.KeenBaseline(),
		Tier:              core.DeductionHard,
		MaxAttempts:       10_000,
		DominoProbability: 0.55,
	}
}

// GeneratedPuzzle pairs a validated, uniquely-solvable puzzle with its
// solution grid.
type GeneratedPuzzle struct {
	Puzzle   core.Puzzle
	Solution []int
}

// GenerateStats reports how much work a Generate call did before
// accepting a puzzle.
type GenerateStats struct {
	Attempts             uint32
	PartitionFailures    uint32
	ValidationFailures   uint32
	NonUniqueRejections  uint32
	DifficultyRejections uint32
	Solve                core.SolveStats // from the accepted puzzle's uniqueness check
}

// GeneratedPuzzleWithStats is a GeneratedPuzzle plus its classified
// difficulty (zero-valued unless classification ran) and generation
// statistics.
type GeneratedPuzzleWithStats struct {
	GeneratedPuzzle
	Difficulty core.DifficultyTier
	Tier       core.DeductionTier
	Stats      GenerateStats
}

// MinimizeConfig controls a single Minimize call.
type MinimizeConfig struct {
	Rules         core.Ruleset
	Tier          core.DeductionTier
	MaxIterations int
	PreferAdd     bool
}

// KeenBaselineMinimizeConfig returns the standard minimization
// defaults: Keen baseline ruleset, Hard-tier uniqueness check, 1000
// iterations, preferring Add over Mul when a merge needs an operation.
func KeenBaselineMinimizeConfig() MinimizeConfig {
	return MinimizeConfig{
		Rules:         core.KeenBaseline(),
		Tier:          core.DeductionHard,
		MaxIterations: 1000,
		PreferAdd:     true,
	}
}

// MinimizeResult reports the outcome of a Minimize call.
type MinimizeResult struct {
	Puzzle            core.Puzzle
	OriginalCageCount int
	FinalCageCount    int
	MergesPerformed   int
	MergesRejected    int
}
