package rmq

import "fmt"

// blockSize is the partition size used for the first level of the
// two-level scheme (spec's "c, e.g., 256").
const blockSize = 256

// Table answers Query(l, r) -- the index of a minimum value in
// values[l:r+1] -- in O(1) after construction, for a fixed backing
// slice of values that Table does not copy.
type Table struct {
	values []uint64

	blockArgmin []int // blockArgmin[b] = argmin index within block b
	sparse      [][]int
	logTable    []int
}

// New builds a Table over values. values must not be mutated afterward;
// Table holds a reference, not a copy.
func New(values []uint64) *Table {
	t := &Table{values: values}
	if len(values) == 0 {
		return t
	}

	nBlocks := (len(values) + blockSize - 1) / blockSize
	t.blockArgmin = make([]int, nBlocks)
	for b := 0; b < nBlocks; b++ {
		start := b * blockSize
		end := start + blockSize
		if end > len(values) {
			end = len(values)
		}
		t.blockArgmin[b] = linearArgmin(values, start, end-1)
	}

	t.logTable = make([]int, nBlocks+1)
	for i := 2; i <= nBlocks; i++ {
		t.logTable[i] = t.logTable[i/2] + 1
	}

	levels := t.logTable[nBlocks] + 1
	t.sparse = make([][]int, levels)
	t.sparse[0] = append([]int(nil), t.blockArgmin...)
	for k := 1; k < levels; k++ {
		span := 1 << uint(k)
		half := span / 2
		row := make([]int, nBlocks-span+1)
		for i := range row {
			row[i] = argminIdx(values, t.sparse[k-1][i], t.sparse[k-1][i+half])
		}
		t.sparse[k] = row
	}

	return t
}

// blockRangeArgmin returns the argmin index (into values) over the
// inclusive block range [bl, br], using the sparse table.
func (t *Table) blockRangeArgmin(bl, br int) int {
	span := br - bl + 1
	k := t.logTable[span]
	half := 1 << uint(k)
	return argminIdx(t.values, t.sparse[k][bl], t.sparse[k][br-half+1])
}

// Query returns the index of a minimum value in values[l:r+1]. Panics
// if l > r or the range falls outside the backing slice, matching
// normal Go slice-bound conventions.
func (t *Table) Query(l, r int) int {
	if l > r || l < 0 || r >= len(t.values) {
		panic(fmt.Sprintf("rmq: invalid range [%d, %d] over %d values", l, r, len(t.values)))
	}

	if l == r {
		return l
	}

	if r-l+1 <= blockSize {
		return linearArgmin(t.values, l, r)
	}

	blockL := l / blockSize
	blockR := r / blockSize

	headEnd := (blockL+1)*blockSize - 1
	tailStart := blockR * blockSize

	best := linearArgmin(t.values, l, headEnd)
	best = argminIdx(t.values, best, linearArgmin(t.values, tailStart, r))

	if blockL+1 <= blockR-1 {
		best = argminIdx(t.values, best, t.blockRangeArgmin(blockL+1, blockR-1))
	}

	return best
}

func linearArgmin(values []uint64, l, r int) int {
	best := l
	for i := l + 1; i <= r; i++ {
		if values[i] < values[best] {
			best = i
		}
	}
	return best
}

func argminIdx(values []uint64, a, b int) int {
	if values[b] < values[a] {
		return b
	}
	return a
}
