package sss

import "github.com/herlez/lce-sss/internal/rollinghash"

// ringBuffer is a fixed-capacity circular buffer of fingerprints, indexed
// by absolute position rather than by slot: callers push fingerprints in
// increasing position order and read them back by the same position, as
// long as the read position is no more than capacity entries behind the
// last push. Capacity is rounded up to a power of two so indexing is a
// mask instead of a modulo.
type ringBuffer struct {
	data []rollinghash.Fp127
	mask uint64
	size uint64
}

func newRingBuffer(capacity uint64) *ringBuffer {
	return &ringBuffer{data: make([]rollinghash.Fp127, roundUpPow2(capacity)), mask: roundUpPow2(capacity) - 1}
}

func roundUpPow2(v uint64) uint64 {
	if v <= 1 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return v + 1
}

// resize fast-forwards the buffer's logical size without writing entries,
// used to align the buffer's position space with a partition's start
// offset before the first push.
func (r *ringBuffer) resize(size uint64) { r.size = size }

func (r *ringBuffer) pushBack(v rollinghash.Fp127) {
	r.data[r.size&r.mask] = v
	r.size++
}

func (r *ringBuffer) len() uint64 { return r.size }

func (r *ringBuffer) get(i uint64) rollinghash.Fp127 { return r.data[i&r.mask] }
