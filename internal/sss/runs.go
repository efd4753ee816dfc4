package sss

import (
	"math"

	"github.com/herlez/lce-sss/internal/rollinghash"
)

// qRange is a closed position range [start, end] (inclusive, as in the
// reference) recorded by calculateQ for a run text[runStart..runEnd] of
// length >= tau: start = runStart and end = runEnd-tau+1, so every
// tau-window anchored in [start, end] lies entirely inside the run.
type qRange struct {
	start, end uint64
}

var qSentinel = qRange{start: math.MaxUint64, end: math.MaxUint64}

// calculateQ scans text[from:to+tau] for runs of period < tau/3 long
// enough to inflate the synchronizing set, recording each as a qRange and,
// for runs long enough to guarantee a sync position at their boundary,
// writing its run_rank into runRanks. Grounded on the reference builder's
// calculate_q: it finds the first pair of equal tau/3-fingerprints inside
// a tau/3 lookahead window, then extends the implied run naively byte by
// byte in both directions.
func calculateQ(text []byte, from, to, tau uint64, hSmall *rollinghash.Hasher, runRanks *shardedRunRanks) []qRange {
	smallTau := tau / 3

	win := hSmall.NewWindow(text, int(from))
	fps := newRingBuffer(4 * tau)
	fps.resize(from)
	fps.pushBack(win.Fingerprint())

	var qset []qRange

	limit := to + tau
	for i := from; i < limit; i++ {
		for j := fps.len(); j < i+tau; j++ {
			fps.pushBack(win.Roll())
		}

		firstMin := i
		for j := firstMin; j < i+smallTau; j++ {
			if fps.get(j).Less(fps.get(firstMin)) {
				firstMin = j
			}
		}

		nextMin := firstMin + 1
		for j := nextMin; j < firstMin+smallTau; j++ {
			if fps.get(j).Less(fps.get(firstMin)) {
				nextMin = j
			}
		}

		if !fps.get(nextMin).Equal(fps.get(firstMin)) {
			i = nextMin - 1
			continue
		}

		period := nextMin - firstMin

		runStart := firstMin
		for runStart > from && text[runStart-1] == text[runStart+period-1] {
			runStart--
		}

		runEnd := nextMin
		for runEnd < to+2*tau-2 && text[runEnd+1] == text[runEnd-period+1] {
			runEnd++
		}

		if runEnd-runStart+1 >= tau {
			qset = append(qset, qRange{start: runStart, end: runEnd - tau + 1})
			i = runEnd - smallTau

			if runEnd-runStart+1 >= 3*tau-1 {
				sssPos1 := runStart - 1
				sssPos2 := runEnd - 2*tau + 2
				runInfo := int64(len(text)) - int64(sssPos2) + int64(sssPos1)
				if runEnd+1 >= uint64(len(text)) || text[runEnd+1] <= text[runEnd-period+1] {
					runInfo = -runInfo
				}
				runRanks.set(sssPos1, runInfo)
			}
		} else {
			i = nextMin - 1
		}
	}

	return qset
}

// fillSynchronizingSetRuns is fillSynchronizingSet's runs-aware sibling:
// positions covered by a qRange never compete for the tau-window minimum,
// so a run of period < tau/3 no longer forces one synchronizing position
// per period.
func fillSynchronizingSetRuns(text []byte, from, to, tau uint64, h *rollinghash.Hasher, qset []qRange) []uint64 {
	const minUnknown = math.MaxUint64

	itQ := 0

	win := h.NewWindow(text, int(from))
	fps := newRingBuffer(4 * tau)
	fps.resize(from)
	fps.pushBack(win.Fingerprint())

	firstMin := uint64(minUnknown)

	var sss []uint64

	for i := from; i < to; i++ {
		for j := fps.len(); j <= i+tau; j++ {
			fps.pushBack(win.Roll())
		}

		for qset[itQ].end < i {
			itQ++
		}

		if firstMin == minUnknown || firstMin < i {
			itQt := itQ

			j := i
			for ; j <= i+tau; j++ {
				if qset[itQt].end < j {
					itQt++
				}

				if qset[itQt].start <= j {
					j = qset[itQt].end
					continue
				}

				if firstMin == minUnknown || firstMin < i {
					firstMin = j
				}

				if fps.get(j).Less(fps.get(firstMin)) {
					firstMin = j
				}
			}

			if firstMin == minUnknown || firstMin < i {
				i = qset[itQt].end - tau
				continue
			}
		} else if firstMin <= i+tau {
			itQt := itQ
			for qset[itQt].end < i+tau {
				itQt++
			}

			if qset[itQt].start > i+tau && fps.get(i+tau).Less(fps.get(firstMin)) {
				firstMin = i + tau
			}
		}

		if fps.get(firstMin).Equal(fps.get(i)) || fps.get(firstMin).Equal(fps.get(i+tau)) {
			sss = append(sss, i)
		}
	}

	return sss
}
