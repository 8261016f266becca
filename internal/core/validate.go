package core

// Validate checks a puzzle's shape against rules: every cage is
// non-empty, sized and typed consistently with its operation, every
// cell appears in exactly one cage, and (if rules requires it) every
// cage's cells are orthogonally connected.
func (p *Puzzle) Validate(rules Ruleset) error {
	if p.N <= 0 || p.N > MaxDomainN {
		return &ValidationError{Kind: ErrInvalidGridSize, N: p.N}
	}

	total := p.N * p.N
	seen := make([]bool, total)

	for idx := range p.Cages {
		cage := &p.Cages[idx]
		if err := cage.validateShape(idx, p.N, rules); err != nil {
			return err
		}
		for _, cell := range cage.Cells {
			if int(cell) < 0 || int(cell) >= total {
				return &ValidationError{Kind: ErrCellOutOfRange, N: p.N, Cell: cell}
			}
			if seen[cell] {
				return &ValidationError{Kind: ErrCellDuplicated, Cell: cell}
			}
			seen[cell] = true
		}
	}

	for i, ok := range seen {
		if !ok {
			return &ValidationError{Kind: ErrCellUncovered, Cell: CellID(i)}
		}
	}

	return nil
}

// ValidateCageShape checks a single cage's size, op/size compatibility,
// target range, and (if required) connectivity, without requiring it
// to cover or partition any particular grid. Used by callers that
// build a cage in isolation, such as a generator's merge trial, before
// splicing it into a full puzzle.
func (c *Cage) ValidateCageShape(n int, rules Ruleset) error {
	return c.validateShape(0, n, rules)
}

func (c *Cage) validateShape(idx, n int, rules Ruleset) error {
	length := len(c.Cells)
	if length == 0 {
		return &ValidationError{Kind: ErrEmptyCage, CageIdx: idx}
	}
	if rules.MaxCageSize > 0 && length > rules.MaxCageSize {
		return &ValidationError{Kind: ErrCageTooLarge, CageIdx: idx, Len: length, Max: rules.MaxCageSize}
	}

	switch {
	case length == 1 && c.Op != Eq:
		return &ValidationError{Kind: ErrInvalidOpForCageSize, CageIdx: idx, Op: c.Op, Len: length}
	case length != 1 && c.Op == Eq:
		return &ValidationError{Kind: ErrInvalidOpForCageSize, CageIdx: idx, Op: c.Op, Len: length}
	}

	if rules.SubDivTwoCellOnly && (c.Op == Sub || c.Op == Div) && length != 2 {
		return &ValidationError{Kind: ErrSubDivMustBeTwoCell, CageIdx: idx, Op: c.Op, Len: length}
	}

	if c.Target == 0 {
		return &ValidationError{Kind: ErrTargetMustBeNonZero, CageIdx: idx}
	}
	if c.Op == Eq && (c.Target < 1 || c.Target > n) {
		return &ValidationError{Kind: ErrEqTargetOutOfRange, N: n, CageIdx: idx}
	}

	for _, cell := range c.Cells {
		if int(cell) < 0 || int(cell) >= n*n {
			return &ValidationError{Kind: ErrCellOutOfRange, N: n, Cell: cell}
		}
	}

	if rules.RequireOrthogonalCageConnectivity && !isOrthogonallyConnected(c.Cells, n) {
		return &ValidationError{Kind: ErrCageNotConnected, CageIdx: idx}
	}

	return nil
}

// isOrthogonallyConnected reports whether cells form a single
// orthogonally-connected component within an n*n grid.
func isOrthogonallyConnected(cells []CellID, n int) bool {
	if len(cells) <= 1 {
		return true
	}

	member := make(map[CellID]bool, len(cells))
	for _, c := range cells {
		member[c] = true
	}

	visited := make(map[CellID]bool, len(cells))
	stack := []CellID{cells[0]}
	visited[cells[0]] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		row, col := RowOf(cur, n), ColOf(cur, n)
		neighbors := [4][2]int{
			{row - 1, col}, {row + 1, col}, {row, col - 1}, {row, col + 1},
		}
		for _, nb := range neighbors {
			nr, nc := nb[0], nb[1]
			if nr < 0 || nr >= n || nc < 0 || nc >= n {
				continue
			}
			id := CellIndex(nr, nc, n)
			if !member[id] || visited[id] {
				continue
			}
			visited[id] = true
			stack = append(stack, id)
		}
	}

	return len(visited) == len(cells)
}
