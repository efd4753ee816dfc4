package lce

import (
	"fmt"

	"github.com/herlez/lce-sss/internal/rmq"
	"github.com/herlez/lce-sss/internal/sss"
	"github.com/herlez/lce-sss/internal/successor"
	"github.com/herlez/lce-sss/internal/suffixsort"
)

// SSSIndex answers LCE queries via a string-synchronizing set. It
// borrows text: the caller must not mutate text for the lifetime of
// the index.
type SSSIndex struct {
	text []byte
	tau  int

	set       *sss.Set
	order     *suffixsort.Result
	successor *successor.Index
	lcpRMQ    *rmq.Table
}

// BuildSSSIndex builds a string-synchronizing-set LCE index over text.
func BuildSSSIndex(text []byte, opts Options) (*SSSIndex, error) {
	set, err := sss.Build(text, opts.Tau, opts.Parallelism, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("lce: build sss index: %w", err)
	}

	order, err := suffixsort.Build(text, set.Positions, set.RunRanks, opts.Tau)
	if err != nil {
		return nil, fmt.Errorf("lce: build sss index: %w", err)
	}

	succ, err := successor.New(set.Positions, successor.DefaultLoBits(set.Positions))
	if err != nil {
		return nil, fmt.Errorf("lce: build sss index: %w", err)
	}

	return &SSSIndex{
		text:      text,
		tau:       opts.Tau,
		set:       set,
		order:     order,
		successor: succ,
		lcpRMQ:    rmq.New(order.LCP),
	}, nil
}

// SizeBytes returns the length of the indexed text.
func (x *SSSIndex) SizeBytes() uint64 {
	return uint64(len(x.text))
}

// Byte returns the byte at position i.
func (x *SSSIndex) Byte(i uint64) (byte, error) {
	if i >= x.SizeBytes() {
		return 0, fmt.Errorf("%w: i=%d, n=%d", ErrIndexOutOfRange, i, x.SizeBytes())
	}
	return x.text[i], nil
}

// LCE returns the length of the longest common extension of the
// suffixes starting at i and j. The naive scan up to 3*tau exists so
// that the first synchronizing position after i (d_i = s_i - i <= tau,
// by the synchronizing set's own density guarantee) has its full 2*tau
// context verified equal to the corresponding context after j: that
// equality is what lets the consistency invariant conclude d_i == d_j
// and T[i..s_i) == T[j..s_j). Looking up the successor of anything
// other than i+1/j+1 breaks that argument, since s_i would then no
// longer be the synchronizing position the 3*tau scan actually vouches
// for.
func (x *SSSIndex) LCE(i, j uint64) (uint64, error) {
	n := x.SizeBytes()
	if i >= n || j >= n {
		return 0, fmt.Errorf("%w: i=%d, j=%d, n=%d", ErrIndexOutOfRange, i, j, n)
	}
	if i == j {
		return n - i, nil
	}

	hi := i
	if j > hi {
		hi = j
	}
	maxLen := n - hi

	bound := uint64(3 * x.tau)
	if maxLen < bound {
		bound = maxLen
	}

	scanned := naiveScan(x.text, i, j, bound)
	if scanned < bound {
		return scanned, nil
	}
	if bound == maxLen {
		return maxLen, nil
	}

	ip, okI := x.successor.Successor(i + 1)
	jp, okJ := x.successor.Successor(j + 1)
	if !okI || !okJ {
		iNext, jNext := i+bound, j+bound
		rest := naiveScan(x.text, iNext, jNext, maxLen-bound)
		return bound + rest, nil
	}

	if ip == jp {
		return n - i, nil
	}

	si := x.set.Positions[ip]
	di := si - i

	isaI, isaJ := x.order.ISA[ip], x.order.ISA[jp]
	lo, hiRank := isaI, isaJ
	if lo > hiRank {
		lo, hiRank = hiRank, lo
	}

	rank := x.lcpRMQ.Query(int(lo)+1, int(hiRank))
	l := x.order.LCP[rank]

	total := l + di
	if total > maxLen {
		total = maxLen
	}
	return total, nil
}

// IsSmallerSuffix reports whether the suffix starting at i is
// lexicographically smaller than the suffix starting at j. LCE(i, j)
// is bounded by the shorter of the two remaining suffixes, so i+l or
// j+l reaching n means that suffix was fully consumed -- it is a
// prefix of the other and therefore the smaller one.
func (x *SSSIndex) IsSmallerSuffix(i, j uint64) (bool, error) {
	l, err := x.LCE(i, j)
	if err != nil {
		return false, err
	}

	n := x.SizeBytes()
	switch {
	case i+l == n:
		return true, nil
	case j+l == n:
		return false, nil
	default:
		return x.text[i+l] < x.text[j+l], nil
	}
}

func naiveScan(text []byte, i, j, bound uint64) uint64 {
	var l uint64
	for l < bound && text[i+l] == text[j+l] {
		l++
	}
	return l
}
