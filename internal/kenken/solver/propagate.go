package solver

import "kenken-engine/internal/core"

// propagate runs a tiered fixed-point pass: it recomputes per-cell
// domains from row/column constraints and cage deduction, forces any
// cell left with exactly one candidate, and repeats until nothing
// changes. It returns false the moment a cell is driven to an empty
// domain. forced lists, in assignment order, every cell propagate
// assigned on its own so the caller can unwind them on backtrack.
//
// Tiers compose rather than duplicate logic: Easy intersects each
// cage's union of satisfying values into every cage cell; Normal
// additionally restricts per cage *position*; Hard additionally
// eliminates, outside each cage, any value every satisfying tuple is
// forced to place somewhere in a touched row/column.
func (s *state) propagate() (ok bool, forced []core.CellID) {
	n := s.n
	total := n * n
	for {
		domains := make([]core.Domain, total)
		for cell := 0; cell < total; cell++ {
			if s.grid[cell] == 0 {
				domains[cell] = s.domainForCell(core.CellID(cell))
			}
		}

		if s.tier != core.DeductionNone {
			results := make([]tupleResult, len(s.cages))
			for idx := range s.cages {
				cage := &s.cages[idx]
				cellDomains := make([]core.Domain, len(cage.Cells))
				for i, c := range cage.Cells {
					if s.grid[c] == 0 {
						cellDomains[i] = domains[c]
					} else {
						cellDomains[i] = s.domainForCell(c)
					}
				}
				r := s.enumerateCage(idx, cellDomains)
				results[idx] = r
				if !r.found {
					return false, forced
				}
				if r.overflow {
					continue
				}
				for i, c := range cage.Cells {
					if s.grid[c] != 0 {
						continue
					}
					switch s.tier {
					case core.DeductionEasy:
						domains[c] = domains[c].And(r.anyMask)
					default:
						domains[c] = domains[c].And(r.perPos[i])
					}
				}
			}

			if s.tier == core.DeductionHard {
				for idx := range s.cages {
					r := results[idx]
					if r.overflow || r.mustRow == nil {
						continue
					}
					cage := &s.cages[idx]
					member := make(map[core.CellID]bool, len(cage.Cells))
					for _, c := range cage.Cells {
						member[c] = true
					}
					for row := 0; row < n; row++ {
						if r.mustRow[row].IsEmpty() {
							continue
						}
						for col := 0; col < n; col++ {
							cell := core.CellIndex(row, col, n)
							if member[cell] || s.grid[cell] != 0 {
								continue
							}
							domains[cell] = removeValues(domains[cell], r.mustRow[row])
						}
					}
					for col := 0; col < n; col++ {
						if r.mustCol[col].IsEmpty() {
							continue
						}
						for row := 0; row < n; row++ {
							cell := core.CellIndex(row, col, n)
							if member[cell] || s.grid[cell] != 0 {
								continue
							}
							domains[cell] = removeValues(domains[cell], r.mustCol[col])
						}
					}
				}
			}
		}

		for cell := 0; cell < total; cell++ {
			if s.grid[cell] == 0 && domains[cell].IsEmpty() {
				return false, forced
			}
		}

		changed := false
		for cell := 0; cell < total; cell++ {
			c := core.CellID(cell)
			if s.grid[c] != 0 || domains[cell].Count() != 1 {
				continue
			}
			v := domains[cell].Min()
			// A singleton assigned earlier in this same pass may have
			// consumed v in this row or column; the snapshot above is
			// stale for that case, so recheck before committing.
			if !s.domainForCell(c).Contains(v) {
				return false, forced
			}
			s.assign(c, v)
			forced = append(forced, c)
			changed = true
		}
		if !changed {
			break
		}
	}
	return true, forced
}

func removeValues(d, toRemove core.Domain) core.Domain {
	for _, v := range toRemove.Values() {
		d = d.Remove(v)
	}
	return d
}
