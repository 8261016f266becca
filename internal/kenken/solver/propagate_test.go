package solver

import (
	"testing"

	"kenken-engine/internal/core"
)

func TestPropagateSolvesAllEqCages(t *testing.T) {
	p := core.Puzzle{N: 2, Cages: []core.Cage{
		{Cells: []core.CellID{0}, Op: core.Eq, Target: 1},
		{Cells: []core.CellID{1}, Op: core.Eq, Target: 2},
		{Cells: []core.CellID{2}, Op: core.Eq, Target: 2},
		{Cells: []core.CellID{3}, Op: core.Eq, Target: 1},
	}}
	s := newState(&p, core.KeenBaseline(), core.DeductionEasy)
	ok, forced := s.propagate()
	if !ok {
		t.Fatal("expected no contradiction")
	}
	if len(forced) != 4 {
		t.Fatalf("expected all 4 cells forced, got %d", len(forced))
	}
	want := []int{1, 2, 2, 1}
	for i, w := range want {
		if s.grid[i] != w {
			t.Fatalf("cell %d: expected %d, got %d", i, w, s.grid[i])
		}
	}
}

func TestPropagateDetectsContradiction(t *testing.T) {
	// Two 1-cell Eq cages in the same row both targeting the same value
	// is impossible under the Latin-row constraint.
	p := core.Puzzle{N: 2, Cages: []core.Cage{
		{Cells: []core.CellID{0}, Op: core.Eq, Target: 1},
		{Cells: []core.CellID{1}, Op: core.Eq, Target: 1},
		{Cells: []core.CellID{2}, Op: core.Eq, Target: 2},
		{Cells: []core.CellID{3}, Op: core.Eq, Target: 2},
	}}
	s := newState(&p, core.KeenBaseline(), core.DeductionEasy)
	ok, _ := s.propagate()
	if ok {
		t.Fatal("expected contradiction")
	}
}

func TestPropagateViaUnitPropagationAcrossRow(t *testing.T) {
	// cell0 forced to 1 by Eq; row constraint then forces cell1 to 2
	// even though cell1's own cage says nothing about its value directly.
	p := core.Puzzle{N: 2, Cages: []core.Cage{
		{Cells: []core.CellID{0}, Op: core.Eq, Target: 1},
		{Cells: []core.CellID{1, 3}, Op: core.Add, Target: 3},
		{Cells: []core.CellID{2}, Op: core.Eq, Target: 2},
	}}
	s := newState(&p, core.KeenBaseline(), core.DeductionNormal)
	ok, _ := s.propagate()
	if !ok {
		t.Fatal("expected no contradiction")
	}
	if s.grid[1] != 2 {
		t.Fatalf("expected cell1 forced to 2 by row constraint, got %d", s.grid[1])
	}
}
