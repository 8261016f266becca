package config

import (
	"os"
	"strconv"

	"kenken-engine/pkg/constants"
)

type Config struct {
	Port               string
	PuzzlesFile        string
	DefaultGridSize    int
	DefaultMaxCageSize int
}

// Load loads configuration from environment variables, falling back to
// sane defaults for anything unset.
func Load() (*Config, error) {
	gridSize, err := strconv.Atoi(getEnv("DEFAULT_GRID_SIZE", strconv.Itoa(constants.DefaultGridSize)))
	if err != nil {
		return nil, err
	}

	maxCageSize, err := strconv.Atoi(getEnv("DEFAULT_MAX_CAGE_SIZE", strconv.Itoa(constants.DefaultMaxCageSize)))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:               getEnv("PORT", constants.DefaultPort),
		PuzzlesFile:        getEnv("PUZZLES_FILE", "/data/puzzles.json"),
		DefaultGridSize:    gridSize,
		DefaultMaxCageSize: maxCageSize,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
