package constants

// Grid constants
const (
	DefaultGridSize = 6
	MinGridSize     = 3
	MaxGridSize     = 9
)

// Cage shape defaults, matching the Keen-style baseline ruleset
// (core.KeenBaseline().MaxCageSize).
const (
	DefaultMaxCageSize       = 6
	DefaultDominoProbability = 0.55
)

// Generator limits
const (
	DefaultMaxAttempts = 10_000
	UniquenessCheckCap = 2
)

// Minimizer limits
const (
	DefaultMinimizeIterations = 1000
)

// Difficulties, ordered easiest to hardest.
const (
	DifficultyEasy         = "easy"
	DifficultyNormal       = "normal"
	DifficultyHard         = "hard"
	DifficultyExtreme      = "extreme"
	DifficultyUnreasonable = "unreasonable"
)

// DifficultyKeys maps full difficulty names to compact keys. The puzzle
// file written by cmd/generate stores the full names, not these keys.
var DifficultyKeys = map[string]string{
	DifficultyEasy:         "e",
	DifficultyNormal:       "n",
	DifficultyHard:         "h",
	DifficultyExtreme:      "x",
	DifficultyUnreasonable: "u",
}

// KeyToDifficulty is the inverse of DifficultyKeys.
var KeyToDifficulty = map[string]string{
	"e": DifficultyEasy,
	"n": DifficultyNormal,
	"h": DifficultyHard,
	"x": DifficultyExtreme,
	"u": DifficultyUnreasonable,
}

// Deduction tier names, in increasing strength.
const (
	TierNone   = "none"
	TierEasy   = "easy"
	TierNormal = "normal"
	TierHard   = "hard"
)

// API version
const APIVersion = "0.1.0"

// Default port
const DefaultPort = "8080"

// Date format used for deterministic daily-puzzle seeds.
const DateFormat = "2006-01-02"
