package prezza

import "math/bits"

// naiveScanThreshold is the byte count scanned naively before switching
// to fingerprint-based exponential/binary search, matching the
// reference's t_naive_scan default (128, a power of two).
const naiveScanThreshold = 128

// lceScan compares text[i:] and text[j:] byte by byte, up to bound
// bytes, reconstructing bytes from the fingerprint array.
func (idx *Index) lceScan(i, j, bound uint64) uint64 {
	var l uint64
	for l < bound && idx.Byte(i+l) == idx.Byte(j+l) {
		l++
	}
	return l
}

// LCE returns the length of the longest common extension of the
// suffixes starting at i and j.
func (idx *Index) LCE(i, j uint64) uint64 {
	if i == j {
		return idx.length - i
	}

	hi := i
	if j > hi {
		hi = j
	}
	maxLCE := idx.length - hi

	bound := uint64(naiveScanThreshold)
	if maxLCE < bound {
		bound = maxLCE
	}

	l := idx.lceScan(i, j, bound)
	if l < naiveScanThreshold {
		return l
	}

	minExp := bits.TrailingZeros64(naiveScanThreshold)
	exp := minExp + 1
	dist := uint64(naiveScanThreshold) * 2

	fpBeforeI := idx.fingerprintBefore(i)
	fpBeforeJ := idx.fingerprintBefore(j)

	for dist <= maxLCE && idx.fingerprintExpFrom(fpBeforeI, i, exp) == idx.fingerprintExpFrom(fpBeforeJ, j, exp) {
		exp++
		dist *= 2
	}

	exp--
	dist /= 2
	add := dist

	for exp != minExp {
		exp--
		dist /= 2
		if add+dist <= maxLCE && idx.fingerprintExp(i+add, exp) == idx.fingerprintExp(j+add, exp) {
			add += dist
		}
	}

	maxLCE -= add
	return add + idx.lceScan(i+add, j+add, maxLCE)
}

// IsSmallerSuffix reports whether the suffix starting at i is
// lexicographically smaller than the suffix starting at j. LCE(i, j)
// is bounded by the shorter of the two remaining suffixes, so i+l or
// j+l reaching length means that suffix was fully consumed -- it is a
// prefix of the other and therefore the smaller one.
func (idx *Index) IsSmallerSuffix(i, j uint64) bool {
	l := idx.LCE(i, j)

	iEnd := i+l == idx.length
	jEnd := j+l == idx.length
	switch {
	case iEnd:
		return true
	case jEnd:
		return false
	default:
		return idx.Byte(i+l) < idx.Byte(j+l)
	}
}
