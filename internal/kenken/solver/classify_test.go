package solver

import (
	"testing"

	"kenken-engine/internal/core"
)

func TestClassifyTierRequiredEasyPuzzle(t *testing.T) {
	p := uniqueTwoByTwo()
	tier, _ := ClassifyTierRequired(&p, core.KeenBaseline())
	if tier != core.DeductionEasy {
		t.Fatalf("expected easy tier to suffice, got %v", tier)
	}
	diff := ClassifyDifficultyFromTier(tier, core.SolveStats{})
	if diff != core.DifficultyEasyTier {
		t.Fatalf("expected easy difficulty, got %v", diff)
	}
}

func TestClassifyAllEqSingletonsIsEasy(t *testing.T) {
	grid := []int{
		1, 2, 3, 4,
		2, 1, 4, 3,
		3, 4, 1, 2,
		4, 3, 2, 1,
	}
	p := core.Puzzle{N: 4}
	for i, v := range grid {
		p.Cages = append(p.Cages, core.Cage{Cells: []core.CellID{core.CellID(i)}, Op: core.Eq, Target: v})
	}

	tier, stats := ClassifyTierRequired(&p, core.KeenBaseline())
	if tier != core.DeductionEasy {
		t.Fatalf("expected easy tier, got %v", tier)
	}
	if stats.Branched {
		t.Fatal("expected no branching on a fully pinned grid")
	}
	if diff := ClassifyDifficultyFromTier(tier, stats); diff != core.DifficultyEasyTier {
		t.Fatalf("expected easy difficulty, got %v", diff)
	}

	sol, ok := SolveOne(&p, core.KeenBaseline())
	if !ok {
		t.Fatal("expected a solution")
	}
	for i, v := range grid {
		if sol.Grid[i] != v {
			t.Fatalf("cell %d: expected %d, got %d", i, v, sol.Grid[i])
		}
	}
}

func TestClassifyDifficultyFromStatsThresholds(t *testing.T) {
	cases := []struct {
		assignments uint64
		want        core.DifficultyTier
	}{
		{50, core.DifficultyEasyTier},
		{1000, core.DifficultyNormalTier},
		{10000, core.DifficultyHardTier},
		{100000, core.DifficultyExtremeTier},
		{1000000, core.DifficultyUnreasonableTier},
	}
	for _, c := range cases {
		got := ClassifyDifficultyFromStats(core.SolveStats{Assignments: c.assignments})
		if got != c.want {
			t.Fatalf("assignments=%d: expected %v, got %v", c.assignments, c.want, got)
		}
	}
}
