package suffixsort

// computeSuffixArray builds the suffix array of s using SA-IS (induced
// sorting via S/L-type classification and LMS-substring naming,
// recursing on the reduced problem when LMS names collide). s must end
// with a sentinel symbol (0) that is strictly smaller than, and the only
// occurrence of, its value in s; alphabetSize is one past the largest
// symbol in s.
func computeSuffixArray(s []int, alphabetSize int) []int {
	n := len(s)
	sa := make([]int, n)
	if n == 0 {
		return sa
	}
	if n == 1 {
		sa[0] = 0
		return sa
	}

	isS := make([]bool, n)
	isS[n-1] = true
	for i := n - 2; i >= 0; i-- {
		switch {
		case s[i] < s[i+1]:
			isS[i] = true
		case s[i] > s[i+1]:
			isS[i] = false
		default:
			isS[i] = isS[i+1]
		}
	}

	isLMS := func(i int) bool { return i > 0 && isS[i] && !isS[i-1] }

	var lmsPositions []int
	for i := 1; i < n; i++ {
		if isLMS(i) {
			lmsPositions = append(lmsPositions, i)
		}
	}

	sa = induceSortLMS(s, sa, isS, alphabetSize, lmsPositions)

	var sortedLMS []int
	for _, pos := range sa {
		if pos > 0 && isLMS(pos) {
			sortedLMS = append(sortedLMS, pos)
		}
	}

	lmsNames := make([]int, n)
	for i := range lmsNames {
		lmsNames[i] = -1
	}

	name := 0
	prev := -1
	for _, pos := range sortedLMS {
		if prev != -1 && !lmsSubstringEqual(s, isS, isLMS, prev, pos) {
			name++
		}
		lmsNames[pos] = name
		prev = pos
	}
	numNames := name + 1

	reduced := make([]int, 0, len(lmsPositions))
	for _, pos := range lmsPositions {
		reduced = append(reduced, lmsNames[pos])
	}

	var reducedSA []int
	if numNames < len(reduced) {
		reducedSA = computeSuffixArray(reduced, numNames)
	} else {
		reducedSA = make([]int, len(reduced))
		for i, nm := range reduced {
			reducedSA[nm] = i
		}
	}

	orderedLMS := make([]int, len(reducedSA))
	for i, idx := range reducedSA {
		orderedLMS[i] = lmsPositions[idx]
	}

	for i := range sa {
		sa[i] = -1
	}
	sa = induceSortLMS(s, sa, isS, alphabetSize, orderedLMS)

	return sa
}

// induceSortLMS places lms (already ordered, most-significant bucket
// first) at the tails of their buckets, then induces L-type suffixes
// left to right and S-type suffixes right to left.
func induceSortLMS(s []int, sa []int, isS []bool, alphabetSize int, lms []int) []int {
	for i := range sa {
		sa[i] = -1
	}

	bucketSizes := make([]int, alphabetSize)
	for _, c := range s {
		bucketSizes[c]++
	}

	tails := bucketTails(bucketSizes)
	for i := len(lms) - 1; i >= 0; i-- {
		pos := lms[i]
		c := s[pos]
		sa[tails[c]] = pos
		tails[c]--
	}

	heads := bucketHeads(bucketSizes)
	for i := range sa {
		pos := sa[i]
		if pos > 0 && !isS[pos-1] {
			c := s[pos-1]
			sa[heads[c]] = pos - 1
			heads[c]++
		}
	}

	tails = bucketTails(bucketSizes)
	for i := len(sa) - 1; i >= 0; i-- {
		pos := sa[i]
		if pos > 0 && isS[pos-1] {
			c := s[pos-1]
			sa[tails[c]] = pos - 1
			tails[c]--
		}
	}

	return sa
}

func bucketHeads(sizes []int) []int {
	heads := make([]int, len(sizes))
	sum := 0
	for i, v := range sizes {
		heads[i] = sum
		sum += v
	}
	return heads
}

func bucketTails(sizes []int) []int {
	tails := make([]int, len(sizes))
	sum := 0
	for i, v := range sizes {
		sum += v
		tails[i] = sum - 1
	}
	return tails
}

// lmsSubstringEqual reports whether the LMS substrings starting at i and
// j (both LMS positions) are character-for-character and type-for-type
// identical up to and including the next LMS position on each side. The
// k>0 guard on the end check matters: without it, the very first offset
// (i and j themselves) always satisfies isLMS by definition of being LMS
// positions, which would make any two LMS substrings with equal first
// characters compare equal.
func lmsSubstringEqual(s []int, isS []bool, isLMS func(int) bool, i, j int) bool {
	n := len(s)
	for k := 0; ; k++ {
		iPos, jPos := i+k, j+k
		if iPos >= n || jPos >= n {
			return false
		}
		if s[iPos] != s[jPos] || isS[iPos] != isS[jPos] {
			return false
		}

		iEnd := k > 0 && isLMS(iPos)
		jEnd := k > 0 && isLMS(jPos)
		if iEnd && jEnd {
			return true
		}
		if iEnd != jEnd {
			return false
		}
	}
}
