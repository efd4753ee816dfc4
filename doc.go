// Package lce answers Longest Common Extension queries lce(i, j) on a
// static byte string via two interchangeable indexes: SSSIndex, built
// over a string-synchronizing set for sublinear space and expected
// O(log n) query time on repetitive inputs, and PrezzaIndex, a
// fingerprint-based index with O(log n) worst-case query time that keeps
// one 64-bit prefix fingerprint per text byte instead of the text. It
// does not reuse or overwrite the input text's storage.
//
// Grounded on the reference's LceSemiSyncSetsPar (query composition:
// short-range naive scan, successor-index lookup, RMQ over the
// synchronizing set's LCP array) and LcePrezza (exponential/binary
// search over fingerprints).
package lce
