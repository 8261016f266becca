package generator

import (
	"kenken-engine/internal/core"
	"kenken-engine/internal/kenken/rng"
)

// assignOpsAndTargets picks an operation and target for each cage from
// the solved grid values at its cells: a 1-cell cage is always Eq; a
// 2-cell cage randomly picks among Add/Mul/Sub/(Div if it divides
// evenly), weighted equally; a 3+-cell cage is Add 55% of the time,
// Mul otherwise.
func assignOpsAndTargets(n int, solution []int, cages [][]core.CellID, rules core.Ruleset, stream *rng.Stream) core.Puzzle {
	out := make([]core.Cage, 0, len(cages))
	for _, cells := range cages {
		values := make([]int, len(cells))
		for i, c := range cells {
			values[i] = solution[c]
		}

		var op core.Op
		var target int

		switch len(cells) {
		case 1:
			op, target = core.Eq, values[0]
		case 2:
			a, b := values[0], values[1]
			ops := []core.Op{core.Add, core.Mul, core.Sub}
			if a%b == 0 || b%a == 0 {
				ops = append(ops, core.Div)
			}
			shuffleOps(ops, stream)
			op = ops[0]
			target = twoCellTarget(op, a, b)
		default:
			if stream.Bool(0.55) {
				op = core.Add
				sum := 0
				for _, v := range values {
					sum += v
				}
				target = sum
			} else {
				op = core.Mul
				prod := 1
				for _, v := range values {
					prod *= v
				}
				target = prod
			}
		}

		out = append(out, core.Cage{Cells: cells, Op: op, Target: target})
	}

	return core.Puzzle{N: n, Cages: out}
}

func twoCellTarget(op core.Op, a, b int) int {
	switch op {
	case core.Add:
		return a + b
	case core.Mul:
		return a * b
	case core.Sub:
		d := a - b
		if d < 0 {
			d = -d
		}
		return d
	case core.Div:
		num, den := a, b
		if num < den {
			num, den = den, num
		}
		return num / den
	default:
		return 0
	}
}

func shuffleOps(ops []core.Op, stream *rng.Stream) {
	stream.Shuffle(len(ops), func(i, j int) { ops[i], ops[j] = ops[j], ops[i] })
}
