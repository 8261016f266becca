package generator

import (
	"kenken-engine/internal/core"
	"kenken-engine/internal/kenken/solver"
)

// Minimize greedily merges adjacent cages while the puzzle remains
// uniquely solvable, to reduce the cage count (fewer, larger cages
// generally read as a "cleaner" puzzle).
//
// It only ever considers the first structurally-valid adjacent merge
// it hasn't already tried; if that merge breaks uniqueness, Minimize
// stops entirely rather than trying a different pair. This mirrors
// the reference minimizer exactly and is a known limitation, not an
// oversight: a smarter minimizer would keep searching for another
// candidate instead of giving up.
func Minimize(p core.Puzzle, solution []int, cfg MinimizeConfig) MinimizeResult {
	puzzle := core.Puzzle{N: p.N, Cages: append([]core.Cage(nil), p.Cages...)}
	res := MinimizeResult{OriginalCageCount: len(puzzle.Cages)}

	tried := map[[2]int]bool{}

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		i, j, merged, ok := findMergeCandidate(&puzzle, solution, cfg, tried)
		if !ok {
			break
		}

		candidate := applyMerge(puzzle, i, j, merged)
		count, _ := solver.CountSolutionsUpTo(&candidate, cfg.Rules, cfg.Tier, 2)
		if count == 1 {
			puzzle = candidate
			res.MergesPerformed++
			tried = map[[2]int]bool{}
			continue
		}

		res.MergesRejected++
		break
	}

	res.Puzzle = puzzle
	res.FinalCageCount = len(puzzle.Cages)
	return res
}

// findMergeCandidate scans orthogonally-adjacent cage pairs (in
// ascending cell-index order, so results are deterministic) and
// returns the first pair whose merge is structurally valid and not
// already in tried. Pairs it rejects along the way are added to tried
// so later calls don't re-check them; Minimize clears tried after each
// accepted merge, since merging renumbers the cages.
func findMergeCandidate(p *core.Puzzle, solution []int, cfg MinimizeConfig, tried map[[2]int]bool) (i, j int, merged core.Cage, ok bool) {
	n := p.N
	cageOf := make([]int, n*n)
	for idx, cage := range p.Cages {
		for _, cell := range cage.Cells {
			cageOf[cell] = idx
		}
	}

	seenPairs := map[[2]int]bool{}
	for cell := 0; cell < n*n; cell++ {
		for _, nb := range neighborsOf(n, cell) {
			a, b := cageOf[cell], cageOf[nb]
			if a == b {
				continue
			}
			key := [2]int{a, b}
			if a > b {
				key = [2]int{b, a}
			}
			if seenPairs[key] || tried[key] {
				continue
			}
			seenPairs[key] = true

			mergedCage, validShape := tryMergeCages(p, solution, key[0], key[1], cfg)
			if !validShape {
				tried[key] = true
				continue
			}
			return key[0], key[1], mergedCage, true
		}
	}
	return 0, 0, core.Cage{}, false
}

func tryMergeCages(p *core.Puzzle, solution []int, i, j int, cfg MinimizeConfig) (core.Cage, bool) {
	a, b := p.Cages[i], p.Cages[j]
	if len(a.Cells)+len(b.Cells) > cfg.Rules.MaxCageSize {
		return core.Cage{}, false
	}

	combined := append(append([]core.CellID(nil), a.Cells...), b.Cells...)
	op, target := chooseOpAndTarget(combined, solution, cfg.PreferAdd)
	merged := core.Cage{Cells: combined, Op: op, Target: target}

	if err := merged.ValidateCageShape(p.N, cfg.Rules); err != nil {
		return core.Cage{}, false
	}
	return merged, true
}

// chooseOpAndTarget picks how a merged cage is labeled: a single
// surviving cell is always Eq; everything else is Add or Mul,
// according to preferAdd. Sub/Div are never considered here, even for
// a 2-cell merge:
// the minimizer always prefers the commutative operations so a merge
// never depends on which cell came from which original cage.
func chooseOpAndTarget(cells []core.CellID, solution []int, preferAdd bool) (core.Op, int) {
	if len(cells) == 1 {
		return core.Eq, solution[cells[0]]
	}
	if preferAdd {
		sum := 0
		for _, c := range cells {
			sum += solution[c]
		}
		return core.Add, sum
	}
	prod := 1
	for _, c := range cells {
		prod *= solution[c]
	}
	return core.Mul, prod
}

func applyMerge(p core.Puzzle, i, j int, merged core.Cage) core.Puzzle {
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	out := make([]core.Cage, 0, len(p.Cages)-1)
	for idx, cage := range p.Cages {
		switch idx {
		case lo:
			out = append(out, merged)
		case hi:
			continue
		default:
			out = append(out, cage)
		}
	}
	return core.Puzzle{N: p.N, Cages: out}
}
