package solver

import (
	"testing"

	"kenken-engine/internal/core"
)

func uniqueTwoByTwo() core.Puzzle {
	// Forces grid [[1,2],[2,1]]: cell0 pinned by Eq, rest follows from
	// row/column distinctness and the Add cage.
	return core.Puzzle{N: 2, Cages: []core.Cage{
		{Cells: []core.CellID{0}, Op: core.Eq, Target: 1},
		{Cells: []core.CellID{1, 3}, Op: core.Add, Target: 3},
		{Cells: []core.CellID{2}, Op: core.Eq, Target: 2},
	}}
}

func TestSolveOneFindsTheSolution(t *testing.T) {
	p := uniqueTwoByTwo()
	sol, ok := SolveOne(&p, core.KeenBaseline())
	if !ok {
		t.Fatal("expected a solution")
	}
	want := []int{1, 2, 2, 1}
	for i, w := range want {
		if sol.Grid[i] != w {
			t.Fatalf("cell %d: expected %d, got %d", i, w, sol.Grid[i])
		}
	}
}

func TestCountSolutionsUpToReportsUnique(t *testing.T) {
	p := uniqueTwoByTwo()
	count, _ := CountSolutionsUpTo(&p, core.KeenBaseline(), core.DeductionHard, 2)
	if count != 1 {
		t.Fatalf("expected exactly 1 solution, got %d", count)
	}
}

func TestCountSolutionsUpToReportsNonUnique(t *testing.T) {
	// Two row-cages with the same sum target, no further constraint:
	// both [[1,2],[2,1]] and [[2,1],[1,2]] satisfy it.
	p := core.Puzzle{N: 2, Cages: []core.Cage{
		{Cells: []core.CellID{0, 1}, Op: core.Add, Target: 3},
		{Cells: []core.CellID{2, 3}, Op: core.Add, Target: 3},
	}}
	count, _ := CountSolutionsUpTo(&p, core.KeenBaseline(), core.DeductionHard, 2)
	if count != 2 {
		t.Fatalf("expected 2 solutions, got %d", count)
	}
}

func TestSolveOneFailsOnUnsatisfiablePuzzle(t *testing.T) {
	p := core.Puzzle{N: 2, Cages: []core.Cage{
		{Cells: []core.CellID{0}, Op: core.Eq, Target: 1},
		{Cells: []core.CellID{1}, Op: core.Eq, Target: 1},
		{Cells: []core.CellID{2}, Op: core.Eq, Target: 2},
		{Cells: []core.CellID{3}, Op: core.Eq, Target: 2},
	}}
	_, ok := SolveOne(&p, core.KeenBaseline())
	if ok {
		t.Fatal("expected no solution")
	}
}

func threeRowCages() core.Puzzle {
	// Three Add-6 cages, each spanning an entire row: any 3x3 Latin
	// square satisfies them, and there are exactly 12.
	return core.Puzzle{N: 3, Cages: []core.Cage{
		{Cells: []core.CellID{0, 1, 2}, Op: core.Add, Target: 6},
		{Cells: []core.CellID{3, 4, 5}, Op: core.Add, Target: 6},
		{Cells: []core.CellID{6, 7, 8}, Op: core.Add, Target: 6},
	}}
}

func TestCountSolutionsThreeRowCagesIsTwelve(t *testing.T) {
	p := threeRowCages()
	count, _ := CountSolutionsUpTo(&p, core.KeenBaseline(), core.DeductionNormal, 20)
	if count != 12 {
		t.Fatalf("expected 12 order-3 Latin squares, got %d", count)
	}
}

func TestCountSolutionsLimitZeroRunsNoSearch(t *testing.T) {
	p := uniqueTwoByTwo()
	count, stats := CountSolutionsUpTo(&p, core.KeenBaseline(), core.DeductionHard, 0)
	if count != 0 {
		t.Fatalf("expected count 0 with limit 0, got %d", count)
	}
	if stats.NodesVisited != 0 {
		t.Fatalf("expected no nodes visited with limit 0, got %d", stats.NodesVisited)
	}
}

func TestCountIsTheSameAtEveryTier(t *testing.T) {
	// Stronger deduction prunes the search but never changes the set of
	// solutions.
	puzzlesToCheck := []core.Puzzle{uniqueTwoByTwo(), threeRowCages()}
	tiers := []core.DeductionTier{
		core.DeductionNone, core.DeductionEasy, core.DeductionNormal, core.DeductionHard,
	}
	for _, p := range puzzlesToCheck {
		base, _ := CountSolutionsUpTo(&p, core.KeenBaseline(), core.DeductionNone, 20)
		for _, tier := range tiers[1:] {
			count, _ := CountSolutionsUpTo(&p, core.KeenBaseline(), tier, 20)
			if count != base {
				t.Fatalf("tier %v found %d solutions, tier none found %d", tier, count, base)
			}
		}
	}
}

func TestSolveOneIsDeterministic(t *testing.T) {
	p := threeRowCages()
	a, okA := SolveOne(&p, core.KeenBaseline())
	b, okB := SolveOne(&p, core.KeenBaseline())
	if !okA || !okB {
		t.Fatal("expected solutions from both calls")
	}
	for i := range a.Grid {
		if a.Grid[i] != b.Grid[i] {
			t.Fatalf("solutions differ at cell %d: %d != %d", i, a.Grid[i], b.Grid[i])
		}
	}
}

func TestSolveStatsRecordsAssignments(t *testing.T) {
	p := uniqueTwoByTwo()
	_, stats, ok := SolveOneWithStats(&p, core.KeenBaseline(), core.DeductionHard)
	if !ok {
		t.Fatal("expected a solution")
	}
	if stats.NodesVisited == 0 {
		t.Fatal("expected at least one node visited")
	}
}
