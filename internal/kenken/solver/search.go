package solver

import "kenken-engine/internal/core"

// SolveOne returns the first solution found for p under rules, if any,
// using Hard-tier deduction composed with MRV backtracking.
func SolveOne(p *core.Puzzle, rules core.Ruleset) (*core.Solution, bool) {
	sol, _, ok := SolveOneWithStats(p, rules, core.DeductionHard)
	return sol, ok
}

// SolveOneWithStats is SolveOne plus search-effort statistics at the
// given deduction tier.
func SolveOneWithStats(p *core.Puzzle, rules core.Ruleset, tier core.DeductionTier) (*core.Solution, core.SolveStats, bool) {
	s := newState(p, rules, tier)
	res := s.search(1, true, 0)
	return res.first, s.stats, res.count >= 1
}

// CountSolutionsUpTo counts solutions to p, stopping once limit is
// reached (limit=2 is the standard uniqueness check: count==1 means
// unique, count>=2 means not). Returns the count found (capped at
// limit) and the stats accumulated while searching.
func CountSolutionsUpTo(p *core.Puzzle, rules core.Ruleset, tier core.DeductionTier, limit int) (int, core.SolveStats) {
	if limit <= 0 {
		return 0, core.SolveStats{}
	}
	s := newState(p, rules, tier)
	res := s.search(limit, false, 0)
	return res.count, s.stats
}

type searchResult struct {
	count int
	first *core.Solution
}

func (s *state) search(limit int, keepFirst bool, depth int) searchResult {
	var res searchResult
	s.searchRec(limit, keepFirst, depth, &res)
	return res
}

// searchRec explores the search tree rooted at the current (possibly
// partially assigned) state. It returns true once limit solutions
// have been found, signalling every caller up the stack to stop.
func (s *state) searchRec(limit int, keepFirst bool, depth int, res *searchResult) bool {
	s.stats.NodesVisited++
	if depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}

	if !s.cagesStillFeasible() {
		return false
	}

	// At tier None the search runs on row/column masks and the cage
	// feasibility check alone; branching does all the work.
	var forced []core.CellID
	if s.tier != core.DeductionNone {
		var ok bool
		ok, forced = s.propagate()
		if !ok {
			s.unwind(forced)
			return false
		}
	}

	cell, domain, hasUnassigned := s.chooseMRVCell()
	if !hasUnassigned {
		res.count++
		if keepFirst && res.first == nil {
			res.first = s.snapshot()
		}
		s.unwind(forced)
		return res.count >= limit
	}
	if domain.IsEmpty() {
		s.unwind(forced)
		return false
	}

	stop := false
	tried := 0
	for _, v := range domain.Values() {
		tried++
		if tried > 1 {
			s.stats.Branched = true
		}
		s.stats.Assignments++
		s.assign(cell, v)
		if s.searchRec(limit, keepFirst, depth+1, res) {
			s.unassign(cell, v)
			stop = true
			break
		}
		s.unassign(cell, v)
	}

	s.unwind(forced)
	return stop
}

func (s *state) unwind(forced []core.CellID) {
	for i := len(forced) - 1; i >= 0; i-- {
		cell := forced[i]
		v := s.grid[cell]
		s.unassign(cell, v)
	}
}

func (s *state) snapshot() *core.Solution {
	grid := make([]int, len(s.grid))
	copy(grid, s.grid)
	return &core.Solution{N: s.n, Grid: grid}
}
