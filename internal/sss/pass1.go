package sss

import "github.com/herlez/lce-sss/internal/rollinghash"

// fillSynchronizingSet computes the non-runs-aware synchronizing set over
// text[from:to+tau] (the last position compared is to+tau-1, one
// tau-window past `to`), following the reference builder's sliding
// first-minimum technique: a position i belongs to the set iff the
// minimum tau-fingerprint in [i, i+tau] occurs at i or at i+tau.
func fillSynchronizingSet(text []byte, from, to, tau uint64, h *rollinghash.Hasher) []uint64 {
	win := h.NewWindow(text, int(from))
	fps := newRingBuffer(4 * tau)
	fps.resize(from)
	fps.pushBack(win.Fingerprint())

	var sss []uint64

	var firstMin uint64
	haveMin := false

	for i := from; i < to; i++ {
		for j := fps.len(); j <= i+tau; j++ {
			fps.pushBack(win.Roll())
		}

		if !haveMin || firstMin < i {
			firstMin = i
			haveMin = true
			for j := i; j <= i+tau; j++ {
				if fps.get(j).Less(fps.get(firstMin)) {
					firstMin = j
				}
			}
		} else if fps.get(i + tau).Less(fps.get(firstMin)) {
			firstMin = i + tau
		}

		if fps.get(firstMin).Equal(fps.get(i)) || fps.get(firstMin).Equal(fps.get(i+tau)) {
			sss = append(sss, i)
		}
	}

	return sss
}
