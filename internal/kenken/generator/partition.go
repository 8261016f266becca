package generator

import (
	"kenken-engine/internal/core"
	"kenken-engine/internal/kenken/rng"
)

// randomCagePartition splits an n*n grid into orthogonally-connected
// cages respecting maxCageSize, in two passes: first it greedily pairs
// up cells into dominoes with probability dominoProbability, then it
// absorbs every remaining singleton into a random adjacent cage that
// still has room. Every cell ends up in exactly one cage.
//
// ok is false if some singleton has no eligible neighboring cage to
// merge into (every neighbor already at maxCageSize); callers must
// treat that as a failed attempt and retry with a fresh seed rather
// than return a partition with an unplanned leftover singleton.
func randomCagePartition(n int, maxCageSize int, dominoProbability float64, stream *rng.Stream) ([][]core.CellID, bool) {
	total := n * n
	cages := make([][]core.CellID, total)
	cageOf := make([]int, total)
	for i := 0; i < total; i++ {
		cages[i] = []core.CellID{core.CellID(i)}
		cageOf[i] = i
	}

	merge := func(dst, src int) bool {
		if dst == src || len(cages[src]) == 0 {
			return false
		}
		if len(cages[dst])+len(cages[src]) > maxCageSize {
			return false
		}
		for _, cell := range cages[src] {
			cageOf[cell] = dst
			cages[dst] = append(cages[dst], cell)
		}
		cages[src] = nil
		return true
	}

	// Phase 1: opportunistically form dominoes.
	order := shuffledRange(total, stream)
	for _, cell := range order {
		cid := cageOf[cell]
		if len(cages[cid]) != 1 {
			continue
		}
		if !stream.Bool(dominoProbability) {
			continue
		}

		neighs := shuffledNeighbors(n, cell, stream)
		picked := -1
		for _, nb := range neighs {
			if len(cages[cageOf[nb]]) == 1 {
				picked = nb
				break
			}
		}
		if picked == -1 {
			continue
		}
		merge(cid, cageOf[picked])
	}

	// Phase 2: absorb remaining singletons into a neighboring cage.
	var singletons []int
	for i := 0; i < total; i++ {
		if len(cages[cageOf[i]]) == 1 {
			singletons = append(singletons, i)
		}
	}
	shuffleInts(singletons, stream)

	for _, cell := range singletons {
		cid := cageOf[cell]
		if len(cages[cid]) != 1 {
			continue
		}

		seen := map[int]bool{}
		var options []int
		for _, nb := range neighborsOf(n, cell) {
			other := cageOf[nb]
			if other == cid || len(cages[other]) == 0 || len(cages[other]) >= maxCageSize || seen[other] {
				continue
			}
			seen[other] = true
			options = append(options, other)
		}
		if len(options) == 0 {
			return nil, false
		}
		shuffleInts(options, stream)
		merge(options[0], cid)
	}

	out := make([][]core.CellID, 0, total)
	for _, c := range cages {
		if len(c) > 0 {
			out = append(out, c)
		}
	}
	return out, true
}

func neighborsOf(n, idx int) []int {
	row, col := idx/n, idx%n
	var out []int
	if row > 0 {
		out = append(out, (row-1)*n+col)
	}
	if row+1 < n {
		out = append(out, (row+1)*n+col)
	}
	if col > 0 {
		out = append(out, row*n+(col-1))
	}
	if col+1 < n {
		out = append(out, row*n+(col+1))
	}
	return out
}

func shuffledNeighbors(n, idx int, stream *rng.Stream) []int {
	nb := neighborsOf(n, idx)
	shuffleInts(nb, stream)
	return nb
}

func shuffledRange(n int, stream *rng.Stream) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	shuffleInts(out, stream)
	return out
}

func shuffleInts(s []int, stream *rng.Stream) {
	stream.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
