package solver

import "kenken-engine/internal/core"

// cageFeasible is a cheap existence check used during search: could
// this cage still be satisfied given the current domains, without
// fully enumerating tuples? It never reports infeasible when a
// solution actually exists (no false negatives), but may say "maybe"
// (true) when the fuller tuple enumeration would find nothing.
func (s *state) cageFeasible(cageIdx int) bool {
	cage := &s.cages[cageIdx]
	domains := make([]core.Domain, len(cage.Cells))
	for i, c := range cage.Cells {
		domains[i] = s.domainForCell(c)
		if domains[i].IsEmpty() {
			return false
		}
	}

	switch cage.Op {
	case core.Eq:
		return domains[0].Contains(cage.Target)
	case core.Sub:
		return twoCellSubFeasible(domains[0], domains[1], cage.Target)
	case core.Div:
		return twoCellDivFeasible(domains[0], domains[1], cage.Target)
	case core.Add:
		return addFeasible(domains, cage.Target)
	case core.Mul:
		return mulFeasible(domains, cage.Target)
	default:
		return true
	}
}

func twoCellSubFeasible(da, db core.Domain, target int) bool {
	for _, a := range da.Values() {
		if da.Contains(a) && (db.Contains(a+target) || db.Contains(a-target)) {
			return true
		}
	}
	return false
}

func twoCellDivFeasible(da, db core.Domain, target int) bool {
	for _, a := range da.Values() {
		if a%target == 0 && db.Contains(a/target) {
			return true
		}
		if db.Contains(a * target) {
			return true
		}
	}
	return false
}

// addFeasible checks whether target lies between the sum of every
// cell's domain minimum and the sum of every cell's domain maximum.
// Each cell's bound is taken on its own; in-cage distinctness is not
// applied to the bounds.
func addFeasible(domains []core.Domain, target int) bool {
	minSum, maxSum := 0, 0
	for _, d := range domains {
		if d.IsEmpty() {
			return false
		}
		minSum += d.Min()
		maxSum += d.Max()
	}
	return target >= minSum && target <= maxSum
}

// mulFeasible checks whether the product of min/max bounds can still
// reach target, using saturating multiplication to avoid overflow on
// pathological inputs.
func mulFeasible(domains []core.Domain, target int) bool {
	minProd, maxProd := 1, 1
	for _, d := range domains {
		if d.IsEmpty() {
			return false
		}
		minProd = satMul(minProd, d.Min())
		maxProd = satMul(maxProd, d.Max())
	}
	return target >= minProd && target <= maxProd
}

const satCap = 1 << 60

func satMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > satCap/b {
		return satCap
	}
	return a * b
}

// cagesStillFeasible is the full on-the-fly check run after each
// assignment during search: every cage must still pass cageFeasible
// given the current domains.
func (s *state) cagesStillFeasible() bool {
	for i := range s.cages {
		if !s.cageFeasible(i) {
			return false
		}
	}
	return true
}
