package solver

import (
	"testing"

	"kenken-engine/internal/core"
)

func fullDomains(n int, k int) []core.Domain {
	ds := make([]core.Domain, k)
	for i := range ds {
		ds[i] = core.FullDomain(n)
	}
	return ds
}

func TestEnumerateEqRestrictsToTarget(t *testing.T) {
	cage := &core.Cage{Cells: []core.CellID{0}, Op: core.Eq, Target: 3}
	r := enumerateEq(cage, []core.Domain{core.FullDomain(4)})
	if !r.found {
		t.Fatal("expected found")
	}
	if !r.perPos[0].Only(3) {
		t.Fatalf("expected only 3, got %v", r.perPos[0].Values())
	}
}

func TestEnumerateSubDivTwoCell(t *testing.T) {
	// 3x3 grid, cage cells (0,0) and (0,1): same row, op Sub target 2.
	cage := &core.Cage{Cells: []core.CellID{0, 1}, Op: core.Sub, Target: 2}
	r := enumerateSubDiv(cage, fullDomains(3, 2), 3, false)
	if !r.found {
		t.Fatal("expected found")
	}
	// valid pairs with |a-b|=2 from {1,2,3}, a!=b (same row): (3,1),(1,3)
	if r.perPos[0] != core.EmptyDomain().Insert(1).Insert(3) {
		t.Fatalf("unexpected perPos[0]: %v", r.perPos[0].Values())
	}
}

func TestEnumerateSubDivRejectsEqualValuesInSameRow(t *testing.T) {
	cage := &core.Cage{Cells: []core.CellID{0, 1}, Op: core.Div, Target: 1}
	r := enumerateSubDiv(cage, fullDomains(3, 2), 3, false)
	// a/b==1 only when a==b, but same-row distinctness forbids that.
	if r.found {
		t.Fatalf("expected no tuples, got %v", r.perPos)
	}
}

func TestEnumerateAddMulRespectsInCageDistinctness(t *testing.T) {
	// 3x3 grid, cage covers an entire row (cells 0,1,2), op Add target 6.
	// Only 1+2+3 reaches 6 using distinct values, and every permutation of
	// {1,2,3} is a valid tuple since the shared row already forces distinctness.
	p := core.Puzzle{N: 3, Cages: []core.Cage{{Cells: []core.CellID{0, 1, 2}, Op: core.Add, Target: 6}}}
	st := newState(&p, core.KeenBaseline(), core.DeductionNormal)
	r := st.enumerateAddMul(0, &p.Cages[0], fullDomains(3, 3))
	if !r.found {
		t.Fatal("expected at least one satisfying tuple")
	}
	if r.anyMask != core.FullDomain(3) {
		t.Fatalf("unexpected anyMask: %v", r.anyMask.Values())
	}
	for i, pp := range r.perPos {
		if pp != core.FullDomain(3) {
			t.Fatalf("expected perPos[%d] to be full, got %v", i, pp.Values())
		}
	}
}

func TestMustRowIsIntersectionNotUnion(t *testing.T) {
	// 3x3 grid, cage cells (0,0)=cell0 row0 and (1,0)=cell3 row1, op Add target 4.
	// domains full 1..3. Valid pairs (a,b) with a+b=4, a!=b when same col (col0==col0):
	// (1,3),(3,1) -- (2,2) excluded by same-column distinctness.
	cage := &core.Cage{Cells: []core.CellID{0, 3}, Op: core.Add, Target: 4}
	p := core.Puzzle{N: 3, Cages: []core.Cage{*cage}}
	st := newState(&p, core.KeenBaseline(), core.DeductionHard)
	r := st.enumerateAddMul(0, &p.Cages[0], fullDomains(3, 2))
	if !r.found {
		t.Fatal("expected found")
	}
	// row0 sees {1,3} across tuples (not the same value both times) -> intersection empty
	if r.mustRow[0] != 0 {
		t.Fatalf("expected no forced value in row0, got %v", r.mustRow[0].Values())
	}
}
