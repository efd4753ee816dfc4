// Package successor implements a two-level predecessor/successor index
// over a strictly increasing array of positions: a high-bits lookup
// table narrows any query to a short sub-range, then a cache-bounded
// binary search (falling back to a linear scan once the range is small
// enough to fit a few cache lines) finds the exact answer. Grounded on
// the reference successor structure's index_par (high-bits table) and
// binsearch_cache (seeded low-bits search).
package successor

import (
	"fmt"

	"github.com/herlez/lce-sss/internal/bitpack"
)

// cacheNum bounds how small a binary-search range must shrink to before
// switching to a linear scan; the reference derives it from 512 bytes
// (eight 64-byte cache lines) worth of 8-byte items (512/8 = 64).
const cacheNum = 64

// Index answers predecessor/successor queries over a fixed, strictly
// increasing array of uint64 positions.
type Index struct {
	values []uint64
	min    uint64
	max    uint64
	keyMin uint64
	loBits uint
	hiIdx  *bitpack.Vector
}

// New builds an Index over values, which must be non-empty and strictly
// increasing. loBits controls the high/low split: DefaultLoBits picks a
// reasonable value when the caller has no stronger preference.
func New(values []uint64, loBits uint) (*Index, error) {
	if len(values) == 0 {
		return nil, ErrEmpty
	}

	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return nil, fmt.Errorf("%w: values[%d]=%d <= values[%d]=%d", ErrNotSorted, i, values[i], i-1, values[i-1])
		}
	}

	idx := &Index{
		values: values,
		min:    values[0],
		max:    values[len(values)-1],
		loBits: loBits,
	}

	idx.keyMin = idx.min >> loBits
	keyMax := idx.max >> loBits

	width := bitpack.WidthFor(uint64(len(values) - 1))
	idx.hiIdx = bitpack.NewVector(int(keyMax-idx.keyMin+2), width)
	idx.buildHiIndex(keyMax)

	return idx, nil
}

// DefaultLoBits picks a low/high split so the high-bits table has
// roughly as many entries as the array itself: loBits is the number of
// bits needed to express the average gap between consecutive keys.
func DefaultLoBits(values []uint64) uint {
	if len(values) < 2 {
		return 0
	}

	span := values[len(values)-1] - values[0]
	avgGap := span / uint64(len(values))

	return bitpack.WidthFor(avgGap)
}

func (idx *Index) hi(x uint64) uint64 { return x >> idx.loBits }

// buildHiIndex fills hiIdx[key-keyMin] with the last array index whose
// high part is < key, for every key in (keyMin, keyMax+1]; slot 0 (key
// keyMin, which has no smaller high part) holds 0. Built as a single
// forward sweep: the reference splits this sweep across omp threads, but
// the sweep here is O(len(values)) regardless, and a single-pass fill
// keeps the key-boundary bookkeeping (the subtle part of index_par's
// parallel version) unambiguous.
func (idx *Index) buildHiIndex(keyMax uint64) {
	idx.hiIdx.Set(0, 0)

	prevKey := idx.hi(idx.values[0])
	for i := 1; i < len(idx.values); i++ {
		curKey := idx.hi(idx.values[i])
		if curKey > prevKey {
			for key := prevKey + 1; key <= curKey; key++ {
				idx.hiIdx.Set(int(key-idx.keyMin), uint64(i-1))
			}
		}

		prevKey = curKey
	}

	idx.hiIdx.Set(int(keyMax-idx.keyMin)+1, uint64(len(idx.values)-1))
}

// Predecessor finds the greatest array index whose value is <= x.
func (idx *Index) Predecessor(x uint64) (pos uint64, ok bool) {
	if x < idx.min {
		return 0, false
	}

	if x >= idx.max {
		return uint64(len(idx.values) - 1), true
	}

	key := idx.hi(x) - idx.keyMin
	q := idx.hiIdx.Get(int(key) + 1)

	if x == idx.values[q] {
		return q, true
	}

	p := idx.hiIdx.Get(int(key))

	return idx.predecessorSeeded(x, p, q), true
}

// Successor finds the smallest array index whose value is >= x.
func (idx *Index) Successor(x uint64) (pos uint64, ok bool) {
	if x <= idx.min {
		return 0, true
	}

	if x > idx.max {
		return 0, false
	}

	key := idx.hi(x) - idx.keyMin
	q := idx.hiIdx.Get(int(key)+1) + 1
	if q >= uint64(len(idx.values)) {
		q = uint64(len(idx.values)) - 1
	}

	if x == idx.values[q] {
		return q, true
	}

	p := idx.hiIdx.Get(int(key)) + 1

	return idx.successorSeeded(x, p, q), true
}

// predecessorSeeded binary-searches [p, q] for the greatest index whose
// value is <= x, given that the answer is known to lie in that range.
func (idx *Index) predecessorSeeded(x, p, q uint64) uint64 {
	for q-p > cacheNum {
		m := (p + q) >> 1
		if idx.values[m] <= x {
			p = m
		} else {
			q = m
		}
	}

	for idx.values[p] <= x {
		p++
	}

	return p - 1
}

// successorSeeded binary-searches [p, q] for the smallest index whose
// value is >= x, given that the answer is known to lie in that range.
func (idx *Index) successorSeeded(x, p, q uint64) uint64 {
	for q-p > cacheNum {
		m := (p + q) >> 1
		if idx.values[m] < x {
			p = m
		} else {
			q = m
		}
	}

	for idx.values[p] < x {
		p++
	}

	return p
}
