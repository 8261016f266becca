package solver

import "kenken-engine/internal/core"

// ClassifyTierRequired finds the weakest deduction tier that solves p
// without ever branching (i.e. propagation alone reaches the unique
// solution, with no cell ever needing more than one value tried). It
// tries Easy, then Normal, then Hard, each with a limit-1 solve; the
// first tier that succeeds without branching wins. If none do, it
// returns DeductionNone, meaning the puzzle genuinely requires search
// even with full (Hard-tier) propagation.
func ClassifyTierRequired(p *core.Puzzle, rules core.Ruleset) (core.DeductionTier, core.SolveStats) {
	for _, tier := range []core.DeductionTier{core.DeductionEasy, core.DeductionNormal, core.DeductionHard} {
		_, stats, ok := SolveOneWithStats(p, rules, tier)
		if ok && !stats.Branched {
			return tier, stats
		}
	}

	_, stats, _ := SolveOneWithStats(p, rules, core.DeductionHard)
	return core.DeductionNone, stats
}

// unreasonableNodeThreshold separates Extreme from Unreasonable when
// no deduction tier suffices: puzzles whose Hard-tier search still
// needs a very large number of nodes are Unreasonable, not merely
// Extreme.
const unreasonableNodeThreshold = 50_000

// ClassifyDifficultyFromTier maps the result of ClassifyTierRequired
// to a human-facing difficulty. This is the authoritative classifier;
// ClassifyDifficultyFromStats below is a legacy fallback and is never
// called from this path.
func ClassifyDifficultyFromTier(tier core.DeductionTier, stats core.SolveStats) core.DifficultyTier {
	switch tier {
	case core.DeductionEasy:
		return core.DifficultyEasyTier
	case core.DeductionNormal:
		return core.DifficultyNormalTier
	case core.DeductionHard:
		return core.DifficultyHardTier
	default:
		if stats.NodesVisited <= unreasonableNodeThreshold {
			return core.DifficultyExtremeTier
		}
		return core.DifficultyUnreasonableTier
	}
}

// ClassifyDifficultyFromStats is the legacy stats-only classifier,
// kept for callers that only have SolveStats (e.g. from a prior run)
// and no deduction-tier result. It is not authoritative: prefer
// ClassifyDifficultyFromTier whenever a tiered classification is
// available.
func ClassifyDifficultyFromStats(stats core.SolveStats) core.DifficultyTier {
	switch {
	case stats.Assignments <= 200:
		return core.DifficultyEasyTier
	case stats.Assignments <= 2_000:
		return core.DifficultyNormalTier
	case stats.Assignments <= 20_000:
		return core.DifficultyHardTier
	case stats.Assignments <= 200_000:
		return core.DifficultyExtremeTier
	default:
		return core.DifficultyUnreasonableTier
	}
}
