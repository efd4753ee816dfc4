package suffixsort

// insertionThreshold is the bucket size below which the MSD radix sort
// falls back to insertion sort, matching the reference's IS_THRESHOLD.
const insertionThreshold = 32

// boundedSorter sorts synchronizing-set positions by the lexicographic
// order of their length-bound prefix in text, breaking exact ties by
// runRank (if present for either position) and finally by position
// itself, per the string-sorter's tie-break rule. A position's bounded
// suffix is treated as ending once depth reaches bound or runs past the
// end of text. End-of-suffix is reported as -1, below every byte value,
// so a literal zero byte inside text stays distinct from it and sorts
// after it.
type boundedSorter struct {
	text     []byte
	runRanks map[uint64]int64
	bound    int
}

// charAt returns the byte at text[pos+depth] promoted to int, or -1 if
// depth has reached the length bound or run past the end of text.
func (s *boundedSorter) charAt(pos uint64, depth int) int {
	if depth >= s.bound {
		return -1
	}

	idx := pos + uint64(depth)
	if idx >= uint64(len(s.text)) {
		return -1
	}

	return int(s.text[idx])
}

// compare orders a and b by their full bounded suffix, then by run
// rank, then by position.
func (s *boundedSorter) compare(a, b uint64) int {
	for d := 0; d < s.bound; d++ {
		ca := s.charAt(a, d)
		cb := s.charAt(b, d)

		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}

		if ca == -1 {
			break
		}
	}

	ra := s.runRanks[a]
	rb := s.runRanks[b]
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}

	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareContentAndRun orders a and b by bounded suffix content then run
// rank only, omitting the final index tiebreak that compare applies. Two
// positions that compare equal here must receive the same reduced-alphabet
// rank: genuine suffix order between them (if any) is recovered later, by
// the SA-IS reduction recursing into the rank sequence's own subsequent
// symbols, not by an artificial distinction introduced at this stage.
func (s *boundedSorter) compareContentAndRun(a, b uint64) int {
	for d := 0; d < s.bound; d++ {
		ca := s.charAt(a, d)
		cb := s.charAt(b, d)

		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}

		if ca == -1 {
			break
		}
	}

	ra := s.runRanks[a]
	rb := s.runRanks[b]
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}

	return 0
}

// sortPositions returns positions sorted per boundedSorter.compare.
func sortPositions(text []byte, positions []uint64, runRanks map[uint64]int64, bound int) []uint64 {
	order := append([]uint64(nil), positions...)

	s := &boundedSorter{text: text, runRanks: runRanks, bound: bound}
	s.msdSort(order, 0)

	return order
}

// msdSort recursively buckets items by the byte at `depth`, matching
// the reference's msd_CE0: one bucket per byte value plus a terminator
// bucket for items that have ended (collected via charAt == -1), then
// recurses into each non-terminator bucket at depth+1. Buckets at or
// below insertionThreshold, and the terminator bucket itself (whose
// members can no longer be distinguished by further bytes), are
// resolved with a full boundedSorter.compare insertion sort.
func (s *boundedSorter) msdSort(items []uint64, depth int) {
	n := len(items)
	if n <= 1 {
		return
	}

	if n <= insertionThreshold || depth >= s.bound {
		s.insertionSort(items)
		return
	}

	const buckets = 257 // index 0 = terminator, 1..256 = byte values 0..255

	var counts [buckets]int
	for _, p := range items {
		counts[s.charAt(p, depth)+1]++
	}

	var starts [buckets]int
	sum := 0
	for i := 0; i < buckets; i++ {
		starts[i] = sum
		sum += counts[i]
	}

	sorted := make([]uint64, n)
	cursor := starts
	for _, p := range items {
		k := s.charAt(p, depth) + 1
		sorted[cursor[k]] = p
		cursor[k]++
	}
	copy(items, sorted)

	s.insertionSort(items[starts[0] : starts[0]+counts[0]])

	for k := 1; k < buckets; k++ {
		if counts[k] > 1 {
			s.msdSort(items[starts[k]:starts[k]+counts[k]], depth+1)
		}
	}
}

func (s *boundedSorter) insertionSort(items []uint64) {
	for i := 1; i < len(items); i++ {
		key := items[i]

		j := i
		for j > 0 && s.compare(items[j-1], key) > 0 {
			items[j] = items[j-1]
			j--
		}

		items[j] = key
	}
}
