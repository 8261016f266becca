package generator

import "kenken-engine/internal/kenken/rng"

// sampleLatinSquare builds a random n*n Latin square (every row and
// column a permutation of 1..n) via randomized backtracking: cells
// are filled in row-major order, trying each still-possible value in
// a shuffled order and backtracking on dead ends. A solution always
// exists, so this always terminates with one.
func sampleLatinSquare(n int, stream *rng.Stream) []int {
	grid := make([]int, n*n)
	fillLatin(grid, n, 0, stream)
	return grid
}

func fillLatin(grid []int, n, pos int, stream *rng.Stream) bool {
	if pos == n*n {
		return true
	}
	row, col := pos/n, pos%n

	order := make([]int, n)
	for i := range order {
		order[i] = i + 1
	}
	stream.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, v := range order {
		if rowHasValue(grid, n, row, v) || colHasValue(grid, n, col, v) {
			continue
		}
		grid[pos] = v
		if fillLatin(grid, n, pos+1, stream) {
			return true
		}
		grid[pos] = 0
	}
	return false
}

func rowHasValue(grid []int, n, row, v int) bool {
	for c := 0; c < n; c++ {
		if grid[row*n+c] == v {
			return true
		}
	}
	return false
}

func colHasValue(grid []int, n, col, v int) bool {
	for r := 0; r < n; r++ {
		if grid[r*n+col] == v {
			return true
		}
	}
	return false
}

// permuteLatin applies a random row permutation, column permutation,
// and symbol relabeling to grid, producing a different-looking Latin
// square with the same combinatorial structure. Each generation
// attempt applies it on top of a freshly sampled square for
// additional variety.
func permuteLatin(n int, grid []int, stream *rng.Stream) []int {
	rows := identityPerm(n)
	cols := identityPerm(n)
	stream.Shuffle(n, func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
	stream.Shuffle(n, func(i, j int) { cols[i], cols[j] = cols[j], cols[i] })

	syms := identityPerm(n)
	stream.Shuffle(n, func(i, j int) { syms[i], syms[j] = syms[j], syms[i] })
	// symMap[v] = relabeled value for original value v (1-indexed)
	symMap := make([]int, n+1)
	for from0, to0 := range syms {
		symMap[from0+1] = to0 + 1
	}

	out := make([]int, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := grid[rows[r]*n+cols[c]]
			out[r*n+c] = symMap[v]
		}
	}
	return out
}

func identityPerm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}
