package suffixsort

// assignRanks walks a bounded-sort order and assigns each position a
// reduced-alphabet rank starting at 0: two consecutive positions receive
// the same rank when they tie on bounded content and run rank
// (compareContentAndRun == 0), and the rank advances by one on every
// other step. Positions that tie here but differ in true suffix order
// are disambiguated later by the SA-IS reduction, via the rank
// sequence's own subsequent symbols, not here.
func assignRanks(s *boundedSorter, order []uint64) (ranks map[uint64]int, numRanks int) {
	ranks = make(map[uint64]int, len(order))
	if len(order) == 0 {
		return ranks, 0
	}

	rank := 0
	ranks[order[0]] = rank
	for i := 1; i < len(order); i++ {
		if s.compareContentAndRun(order[i-1], order[i]) != 0 {
			rank++
		}
		ranks[order[i]] = rank
	}

	return ranks, rank + 1
}
