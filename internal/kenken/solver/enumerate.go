package solver

import "kenken-engine/internal/core"

// maxTuples bounds the work enumerateAddMul will do before giving up
// and reporting overflow. Cages this large only show up in generated
// puzzles with an unusually permissive max cage size.
const maxTuples = 200_000

// tupleKey identifies a memoized enumeration: which cage, at which
// deduction tier, over which exact per-cell domains.
type tupleKey struct {
	cageIdx int
	tier    core.DeductionTier
	domHash uint64
}

// tupleResult is the outcome of enumerating every value assignment to
// a cage's cells that satisfies its operation and target, respecting
// in-cage row/column distinctness (cells of the same cage sharing a
// row or column may not take the same value).
type tupleResult struct {
	found    bool
	overflow bool
	perPos   []core.Domain // union of values seen at each cage position
	anyMask  core.Domain   // union across all positions
	mustRow  []core.Domain // per grid-row: value(s) every satisfying tuple places somewhere in that row
	mustCol  []core.Domain // per grid-col: same, for columns
}

func hashDomains(ds []core.Domain) uint64 {
	var h uint64 = 1469598103934665603 // FNV offset basis
	for _, d := range ds {
		h ^= uint64(d)
		h *= 1099511628211 // FNV prime
	}
	return h
}

// enumerateCage computes tupleResult for a cage given the current
// per-cell domains (indexed the same as cage.Cells). tier controls
// how much of the must-row/must-col bookkeeping is performed: only
// Hard tier consumes it, so only Hard tier pays for it.
func (s *state) enumerateCage(cageIdx int, domains []core.Domain) tupleResult {
	cage := &s.cages[cageIdx]

	switch cage.Op {
	case core.Eq:
		return enumerateEq(cage, domains)
	case core.Sub, core.Div:
		return enumerateSubDiv(cage, domains, s.n, s.tier == core.DeductionHard)
	default:
		return s.enumerateAddMul(cageIdx, cage, domains)
	}
}

func enumerateEq(cage *core.Cage, domains []core.Domain) tupleResult {
	d := domains[0].And(core.EmptyDomain().Insert(cage.Target))
	if d.IsEmpty() {
		return tupleResult{found: false}
	}
	return tupleResult{
		found:   true,
		perPos:  []core.Domain{d},
		anyMask: d,
	}
}

// rowColAccumulator tracks the running intersection, across tuples, of
// the values each tuple places in each grid row/column. It starts
// "untouched" and is seeded by the first tuple, then ANDed with every
// subsequent tuple; rows/columns the cage never touches stay at zero.
type rowColAccumulator struct {
	n       int
	row     []core.Domain
	col     []core.Domain
	seeded  bool
}

func newRowColAccumulator(n int) *rowColAccumulator {
	return &rowColAccumulator{n: n, row: make([]core.Domain, n), col: make([]core.Domain, n)}
}

func (a *rowColAccumulator) add(rows, cols, values []int) {
	tupleRow := make([]core.Domain, a.n)
	tupleCol := make([]core.Domain, a.n)
	for i, v := range values {
		tupleRow[rows[i]] = tupleRow[rows[i]].Insert(v)
		tupleCol[cols[i]] = tupleCol[cols[i]].Insert(v)
	}
	if !a.seeded {
		copy(a.row, tupleRow)
		copy(a.col, tupleCol)
		a.seeded = true
		return
	}
	for i := 0; i < a.n; i++ {
		a.row[i] = a.row[i].And(tupleRow[i])
		a.col[i] = a.col[i].And(tupleCol[i])
	}
}

func enumerateSubDiv(cage *core.Cage, domains []core.Domain, n int, hard bool) tupleResult {
	da, db := domains[0], domains[1]
	perPos := []core.Domain{0, 0}
	var any core.Domain

	rowA, colA := core.RowOf(cage.Cells[0], n), core.ColOf(cage.Cells[0], n)
	rowB, colB := core.RowOf(cage.Cells[1], n), core.ColOf(cage.Cells[1], n)
	sameRow := rowA == rowB
	sameCol := colA == colB

	var acc *rowColAccumulator
	if hard {
		acc = newRowColAccumulator(n)
	}

	for _, a := range da.Values() {
		for _, b := range db.Values() {
			if a == b && (sameRow || sameCol) {
				continue
			}
			if !pairSatisfies(cage.Op, a, b, cage.Target) {
				continue
			}
			perPos[0] = perPos[0].Insert(a)
			perPos[1] = perPos[1].Insert(b)
			any = any.Insert(a).Insert(b)
			if hard {
				acc.add([]int{rowA, rowB}, []int{colA, colB}, []int{a, b})
			}
		}
	}

	if perPos[0].IsEmpty() {
		return tupleResult{found: false}
	}
	result := tupleResult{found: true, perPos: perPos, anyMask: any}
	if hard {
		result.mustRow = acc.row
		result.mustCol = acc.col
	}
	return result
}

func pairSatisfies(op core.Op, a, b, target int) bool {
	switch op {
	case core.Sub:
		diff := a - b
		if diff < 0 {
			diff = -diff
		}
		return diff == target
	case core.Div:
		if a == 0 || b == 0 {
			return false
		}
		num, den := a, b
		if num < den {
			num, den = den, num
		}
		return den != 0 && num%den == 0 && num/den == target
	default:
		return false
	}
}

// enumerateAddMul recursively assigns values to each cage position in
// turn, pruning as soon as a partial sum/product can no longer reach
// target, and enforcing in-cage row/column distinctness. On grids of
// size 6 and up, results are memoized per (cage, tier, domain
// snapshot) since the same cage is re-enumerated many times during
// search with only a handful of cells changed between calls.
func (s *state) enumerateAddMul(cageIdx int, cage *core.Cage, domains []core.Domain) tupleResult {
	if s.tier != core.DeductionHard {
		if r, hit := singletonFastPath(cage, domains, s.n); hit {
			return r
		}
	}

	useMemo := s.n >= 6
	var key tupleKey
	if useMemo {
		key = tupleKey{cageIdx: cageIdx, tier: s.tier, domHash: hashDomains(domains)}
		if r, ok := s.tupleMemo[key]; ok {
			return r
		}
	}

	n := s.n
	rows := make([]int, len(cage.Cells))
	cols := make([]int, len(cage.Cells))
	for i, c := range cage.Cells {
		rows[i] = core.RowOf(c, n)
		cols[i] = core.ColOf(c, n)
	}

	perPos := make([]core.Domain, len(cage.Cells))
	var any core.Domain
	hard := s.tier == core.DeductionHard
	var acc *rowColAccumulator
	if hard {
		acc = newRowColAccumulator(n)
	}

	assignment := make([]int, len(cage.Cells))
	found := false
	overflow := false
	tupleCount := 0

	var recurse func(pos int, runningSum, runningProd int)
	recurse = func(pos int, runningSum, runningProd int) {
		if overflow {
			return
		}
		if pos == len(cage.Cells) {
			if !leafSatisfies(cage.Op, runningSum, runningProd, cage.Target) {
				return
			}
			tupleCount++
			if tupleCount > maxTuples {
				overflow = true
				return
			}
			found = true
			for i, v := range assignment {
				perPos[i] = perPos[i].Insert(v)
				any = any.Insert(v)
			}
			if hard {
				acc.add(rows, cols, assignment)
			}
			return
		}

		for _, v := range domains[pos].Values() {
			conflict := false
			for j := 0; j < pos; j++ {
				if assignment[j] == v && (rows[j] == rows[pos] || cols[j] == cols[pos]) {
					conflict = true
					break
				}
			}
			if conflict {
				continue
			}

			newSum := runningSum + v
			newProd := satMul(runningProd, v)
			if cage.Op == core.Add && newSum > cage.Target {
				continue
			}
			if cage.Op == core.Mul && (newProd == 0 || cage.Target%newProd != 0) {
				continue
			}
			assignment[pos] = v
			recurse(pos+1, newSum, newProd)
			if overflow {
				return
			}
		}
	}

	recurse(0, 0, 1)

	result := tupleResult{found: found, overflow: overflow, perPos: perPos, anyMask: any}
	if hard {
		result.mustRow = acc.row
		result.mustCol = acc.col
	}
	if useMemo && !overflow {
		s.tupleMemo[key] = result
	}
	return result
}

// singletonFastPath handles the case where every cage cell is already
// down to one candidate: no enumeration is needed, just a direct check
// that the pinned values satisfy the arithmetic and the in-cage
// row/column distinctness. hit is false when some cell still has more
// than one candidate and the full enumeration must run. Only the
// Easy/Normal tiers take this path; Hard needs the must-row/must-col
// masks only full enumeration produces.
func singletonFastPath(cage *core.Cage, domains []core.Domain, n int) (tupleResult, bool) {
	for _, d := range domains {
		if d.Count() != 1 {
			return tupleResult{}, false
		}
	}

	values := make([]int, len(domains))
	sum, prod := 0, 1
	for i, d := range domains {
		v := d.Min()
		values[i] = v
		sum += v
		prod = satMul(prod, v)
		ri, ci := core.RowOf(cage.Cells[i], n), core.ColOf(cage.Cells[i], n)
		for j := 0; j < i; j++ {
			if values[j] != v {
				continue
			}
			rj, cj := core.RowOf(cage.Cells[j], n), core.ColOf(cage.Cells[j], n)
			if ri == rj || ci == cj {
				return tupleResult{found: false}, true
			}
		}
	}
	if !leafSatisfies(cage.Op, sum, prod, cage.Target) {
		return tupleResult{found: false}, true
	}

	perPos := append([]core.Domain(nil), domains...)
	var any core.Domain
	for _, d := range domains {
		any = any.Or(d)
	}
	return tupleResult{found: true, perPos: perPos, anyMask: any}, true
}

func leafSatisfies(op core.Op, sum, prod, target int) bool {
	switch op {
	case core.Add:
		return sum == target
	case core.Mul:
		return prod == target
	default:
		return false
	}
}
