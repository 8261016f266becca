package solver

import "kenken-engine/internal/core"

// chooseMRVCell scans every unassigned cell and returns the one with
// the fewest remaining candidates, breaking ties by lowest cell index.
// It returns ok=false if every cell is already assigned.
func (s *state) chooseMRVCell() (cell core.CellID, domain core.Domain, ok bool) {
	best := -1
	bestCount := 0
	var bestDomain core.Domain

	for i := 0; i < s.n*s.n; i++ {
		c := core.CellID(i)
		if s.grid[c] != 0 {
			continue
		}
		d := s.domainForCell(c)
		count := d.Count()
		if best == -1 || count < bestCount {
			best = i
			bestCount = count
			bestDomain = d
			if count <= 1 {
				break
			}
		}
	}

	if best == -1 {
		return 0, 0, false
	}
	return core.CellID(best), bestDomain, true
}
