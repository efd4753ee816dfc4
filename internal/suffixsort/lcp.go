package suffixsort

// naiveLCE returns the length of the longest common prefix of text[i:]
// and text[j:], scanned byte by byte over the full text. Used only to
// populate the LCP array between suffix-array-adjacent elements of a
// synchronizing set; the scan is not bounded, so its cost grows with the
// LCP values themselves (see buildISAAndLCP).
func naiveLCE(text []byte, i, j uint64) uint64 {
	n := uint64(len(text))
	var l uint64
	for i+l < n && j+l < n && text[i+l] == text[j+l] {
		l++
	}
	return l
}

// buildISAAndLCP derives, from a synchronizing set's positions and the
// suffix array saS over those positions (saS[r] = k means positions[k]
// holds rank r among the set's full-suffix order), the inverse
// permutation isaS (isaS[k] = rank of positions[k]) and the LCP array:
// lcp[r] is the longest common prefix, in text, of the suffixes at
// positions[saS[r-1]] and positions[saS[r]]; lcp[0] is always 0.
//
// Each entry costs an unbounded naiveLCE scan, O(|S|*avgLCP) overall
// rather than the amortized O(|S|+n) a PLCP-style pass achieves on a
// contiguous suffix array; unlike a contiguous array, consecutive
// positions here aren't one byte apart, so the usual "h can only drop
// by one per step" argument doesn't carry over directly. Fine for the
// sizes this index targets, but a long, highly repetitive run (e.g.
// a single byte repeated thousands of times) makes this the dominant
// construction cost.
func buildISAAndLCP(text []byte, positions []uint64, saS []int) (isaS []int, lcp []uint64) {
	n := len(saS)
	isaS = make([]int, n)
	lcp = make([]uint64, n)

	for r, k := range saS {
		isaS[k] = r
	}

	for r := 1; r < n; r++ {
		lcp[r] = naiveLCE(text, positions[saS[r-1]], positions[saS[r]])
	}

	return isaS, lcp
}
