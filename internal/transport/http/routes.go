// Package http fronts the KenKen engine with a small JSON API: generate
// a puzzle, solve or classify one, minimize its cage count, and serve
// pre-generated puzzles by seed or date.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kenken-engine/internal/core"
	"kenken-engine/internal/kenken/generator"
	"kenken-engine/internal/kenken/solver"
	"kenken-engine/internal/puzzles"
	"kenken-engine/pkg/config"
	"kenken-engine/pkg/constants"
)

var cfg *config.Config

func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.GET("/daily", dailyHandler)
		api.GET("/puzzle/:seed", puzzleHandler)
		api.POST("/generate", generateHandler)
		api.POST("/solve", solveHandler)
		api.POST("/classify", classifyHandler)
		api.POST("/minimize", minimizeHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

func dailyHandler(c *gin.Context) {
	dateUTC := time.Now().UTC().Format(constants.DateFormat)

	var puzzle *puzzles.CompactPuzzle
	puzzleIndex := -1
	if loader := puzzles.Global(); loader != nil {
		if p, idx, err := loader.GetTodayPuzzle(""); err == nil {
			puzzle = &p
			puzzleIndex = idx
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"date_utc":     dateUTC,
		"puzzle":       puzzle,
		"puzzle_index": puzzleIndex,
	})
}

func puzzleHandler(c *gin.Context) {
	seed := c.Param("seed")
	difficulty := c.Query("d")

	loader := puzzles.Global()
	if loader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "puzzles not loaded"})
		return
	}

	puzzle, idx, err := loader.GetPuzzleBySeed(seed, difficulty)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"seed":         seed,
		"puzzle":       puzzle,
		"puzzle_index": idx,
	})
}

type GenerateRequest struct {
	N                   int     `json:"n" binding:"required"`
	Seed                uint64  `json:"seed"`
	MaxCageSize         int     `json:"max_cage_size"`
	DominoProbability   float64 `json:"domino_probability"`
	Tier                string  `json:"tier"`
	MaxAttempts         uint32  `json:"max_attempts"`
	TargetDifficulty    string  `json:"target_difficulty"`
	DifficultyTolerance int     `json:"difficulty_tolerance"`
}

func generateHandler(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	genCfg := generator.KeenBaselineConfig(req.N, req.Seed)
	if cfg != nil && cfg.DefaultMaxCageSize > 0 {
		genCfg.Rules.MaxCageSize = cfg.DefaultMaxCageSize
	}
	if req.MaxCageSize > 0 {
		genCfg.Rules.MaxCageSize = req.MaxCageSize
	}
	if req.DominoProbability > 0 {
		genCfg.DominoProbability = req.DominoProbability
	}
	if req.MaxAttempts > 0 {
		genCfg.MaxAttempts = req.MaxAttempts
	}
	if tier, ok := parseTier(req.Tier); ok {
		genCfg.Tier = tier
	}
	if d, ok := parseDifficulty(req.TargetDifficulty); ok {
		genCfg.TargetDifficulty = &d
		genCfg.DifficultyTolerance = req.DifficultyTolerance
	}

	result, err := generator.GenerateWithStats(genCfg)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"puzzle":     result.Puzzle,
		"solution":   result.Solution,
		"difficulty": result.Difficulty.String(),
		"attempts":   result.Stats.Attempts,
	})
}

type SolveRequest struct {
	Puzzle core.Puzzle `json:"puzzle" binding:"required"`
	Tier   string      `json:"tier"`
}

func solveHandler(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rules := core.KeenBaseline()
	if err := req.Puzzle.Validate(rules); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tier, _ := parseTier(req.Tier)
	solution, stats, ok := solver.SolveOneWithStats(&req.Puzzle, rules, tier)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no solution"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"solution": solution,
		"stats":    stats,
	})
}

type ClassifyRequest struct {
	Puzzle core.Puzzle `json:"puzzle" binding:"required"`
}

func classifyHandler(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rules := core.KeenBaseline()
	if err := req.Puzzle.Validate(rules); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tier, stats := solver.ClassifyTierRequired(&req.Puzzle, rules)
	difficulty := solver.ClassifyDifficultyFromTier(tier, stats)

	c.JSON(http.StatusOK, gin.H{
		"deduction_tier": tier.String(),
		"difficulty":     difficulty.String(),
		"stats":          stats,
	})
}

type MinimizeRequest struct {
	Puzzle   core.Puzzle `json:"puzzle" binding:"required"`
	Solution []int       `json:"solution" binding:"required"`
	Tier     string      `json:"tier"`
}

func minimizeHandler(c *gin.Context) {
	var req MinimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mcfg := generator.KeenBaselineMinimizeConfig()
	if tier, ok := parseTier(req.Tier); ok {
		mcfg.Tier = tier
	}

	result := generator.Minimize(req.Puzzle, req.Solution, mcfg)

	c.JSON(http.StatusOK, gin.H{
		"puzzle":              result.Puzzle,
		"original_cage_count": result.OriginalCageCount,
		"final_cage_count":    result.FinalCageCount,
		"merges_performed":    result.MergesPerformed,
		"merges_rejected":     result.MergesRejected,
	})
}

// parseDifficulty maps a difficulty name to a core.DifficultyTier. The
// bool return reports whether s named a recognized difficulty.
func parseDifficulty(s string) (core.DifficultyTier, bool) {
	switch s {
	case constants.DifficultyEasy:
		return core.DifficultyEasyTier, true
	case constants.DifficultyNormal:
		return core.DifficultyNormalTier, true
	case constants.DifficultyHard:
		return core.DifficultyHardTier, true
	case constants.DifficultyExtreme:
		return core.DifficultyExtremeTier, true
	case constants.DifficultyUnreasonable:
		return core.DifficultyUnreasonableTier, true
	default:
		return core.DifficultyEasyTier, false
	}
}

// parseTier maps a difficulty-tier query string to a core.DeductionTier.
// The bool return reports whether s named a recognized, non-empty tier;
// callers treat an unrecognized or empty string as "use the caller's
// default" rather than an error.
func parseTier(s string) (core.DeductionTier, bool) {
	switch s {
	case constants.TierEasy:
		return core.DeductionEasy, true
	case constants.TierNormal:
		return core.DeductionNormal, true
	case constants.TierHard:
		return core.DeductionHard, true
	default:
		return core.DeductionHard, false
	}
}
