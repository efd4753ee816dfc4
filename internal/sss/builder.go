package sss

import (
	"fmt"
	"runtime"

	"github.com/herlez/lce-sss/internal/rollinghash"
)

// buildBase seeds the fixed-window rolling hasher shared by every
// partition of a build. The reference builder passes a literal base
// (296813) to its rk_prime rather than drawing one per text; here the
// caller's seed plays that role, kept separate from 0 so the zero value
// of Options.Seed still produces a deterministic, non-degenerate base.
const buildBase = 296813

// Set is a built string-synchronizing set: positions (strictly
// increasing, with a trailing sentinel at n-2*tau+1 when HasRuns) plus
// the run_rank annotations needed to order adjacent sync positions that
// sit inside the same long run.
type Set struct {
	Positions []uint64
	RunRanks  map[uint64]int64
	HasRuns   bool
	Tau       int
}

// RunRank returns the run_rank recorded for position p, and whether one
// was recorded at all (most positions have none).
func (s *Set) RunRank(p uint64) (int64, bool) {
	rank, ok := s.RunRanks[p]
	return rank, ok
}

// Build computes the string-synchronizing set of text for window length
// tau, splitting the work across parallelism goroutines (GOMAXPROCS when
// parallelism <= 0). seed makes the build's rolling-hash base
// deterministic across runs.
func Build(text []byte, tau int, parallelism int, seed uint64) (*Set, error) {
	if tau <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTau, tau)
	}

	n := uint64(len(text))
	twoTau := uint64(2 * tau)

	if n < twoTau {
		return nil, fmt.Errorf("%w: text length %d, 2*tau=%d", ErrTextTooShort, n, twoTau)
	}

	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	sssEnd := n - twoTau + 1
	parts := partitionRange(sssEnd, parallelism)

	h := rollinghash.New(seed^buildBase, tau)

	positions := buildPass(parts, func(p partition) []uint64 {
		return fillSynchronizingSet(text, p.start, p.end, uint64(tau), h)
	})

	hasRuns := uint64(len(positions)) > n*6/uint64(tau)
	runRanks := newShardedRunRanks()

	if hasRuns {
		smallWindow := tau / 3
		if smallWindow < 1 {
			smallWindow = 1
		}
		hSmall := rollinghash.New(seed^buildBase, smallWindow)

		positions = buildPass(parts, func(p partition) []uint64 {
			qset := calculateQ(text, p.start, p.end, uint64(tau), hSmall, runRanks)
			qset = append(qset, qSentinel)
			return fillSynchronizingSetRuns(text, p.start, p.end, uint64(tau), h, qset)
		})
		positions = append(positions, sssEnd)
	}

	return &Set{Positions: positions, RunRanks: runRanks.snapshot(), HasRuns: hasRuns, Tau: tau}, nil
}

func buildPass[T any](parts []partition, fn func(partition) []T) []T {
	perPart := make([][]T, len(parts))
	runPartitions(len(parts), func(i int) {
		perPart[i] = fn(parts[i])
	})

	var total int
	for _, p := range perPart {
		total += len(p)
	}

	out := make([]T, 0, total)
	for _, p := range perPart {
		out = append(out, p...)
	}

	return out
}
