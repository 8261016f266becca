// Package solver implements constraint propagation and backtracking
// search over KenKen puzzles: cage tuple enumeration, tiered
// propagation, MRV search, solution counting and difficulty
// classification.
package solver

import "kenken-engine/internal/core"

// state is the mutable search state shared by a single solve or count
// call. It is never reused across calls.
type state struct {
	n         int
	rules     core.Ruleset
	cages     []core.Cage
	cageOf    []int // cell -> index into cages
	grid      []int // 0 means unassigned
	rowMask   []core.Domain
	colMask   []core.Domain
	tier      core.DeductionTier
	tupleMemo map[tupleKey]tupleResult
	stats     core.SolveStats
}

func newState(p *core.Puzzle, rules core.Ruleset, tier core.DeductionTier) *state {
	n := p.N
	total := n * n
	cageOf := make([]int, total)
	for idx, cage := range p.Cages {
		for _, cell := range cage.Cells {
			cageOf[cell] = idx
		}
	}

	full := core.FullDomain(n)
	rowMask := make([]core.Domain, n)
	colMask := make([]core.Domain, n)
	for i := 0; i < n; i++ {
		rowMask[i] = full
		colMask[i] = full
	}

	return &state{
		n:         n,
		rules:     rules,
		cages:     p.Cages,
		cageOf:    cageOf,
		grid:      make([]int, total),
		rowMask:   rowMask,
		colMask:   colMask,
		tier:      tier,
		tupleMemo: make(map[tupleKey]tupleResult),
	}
}

// assign places v at cell and updates the row/col masks used by
// domainForCell. It does not touch tuple memoization: memo entries are
// keyed on a hash of the cage's current domains, so a changed grid
// looks up a different key.
func (s *state) assign(cell core.CellID, v int) {
	s.grid[cell] = v
	row, col := core.RowOf(cell, s.n), core.ColOf(cell, s.n)
	s.rowMask[row] = s.rowMask[row].Remove(v)
	s.colMask[col] = s.colMask[col].Remove(v)
}

func (s *state) unassign(cell core.CellID, v int) {
	s.grid[cell] = 0
	row, col := core.RowOf(cell, s.n), core.ColOf(cell, s.n)
	s.rowMask[row] = s.rowMask[row].Insert(v)
	s.colMask[col] = s.colMask[col].Insert(v)
}

// domainForCell returns the candidates still available for cell given
// the row/col masks and, for single-cell Eq cages, the cage's target.
func (s *state) domainForCell(cell core.CellID) core.Domain {
	if s.grid[cell] != 0 {
		return core.EmptyDomain().Insert(s.grid[cell])
	}
	row, col := core.RowOf(cell, s.n), core.ColOf(cell, s.n)
	d := s.rowMask[row].And(s.colMask[col])

	cage := &s.cages[s.cageOf[cell]]
	if cage.Op == core.Eq && len(cage.Cells) == 1 {
		d = d.And(core.EmptyDomain().Insert(cage.Target))
	}
	return d
}
