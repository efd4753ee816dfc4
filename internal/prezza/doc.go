// Package prezza implements Prezza's fingerprint-based LCE index: a
// prefix Rabin-Karp fingerprint array over a fixed 64-bit prime plus a
// table of base powers, answering LCE(i, j) in O(log n) via a short
// naive scan followed by exponential then binary search over
// power-of-two-length fingerprint comparisons.
//
// Grounded on the reference's LcePrezza (lce_prezza.hpp): same prime
// (0x800000000000001d), same naive-scan threshold (128 bytes), same
// exponential-then-binary-search query shape. The reference overwrites
// the input text in place, packing 8 bytes per fingerprint word and
// reconstructing original bytes through bit-level block arithmetic
// (getBlock); this port keeps the "doesn't retain a text copy" property
// -- Build drops its reference to the input after computing fingerprints,
// and Byte/RetransformText recover bytes algebraically from the
// fingerprint array -- but stores one fingerprint per byte rather than
// per 8-byte word, trading the reference's memory packing for an
// implementation whose correctness doesn't depend on untestable
// bit-shift and endianness bookkeeping.
package prezza
