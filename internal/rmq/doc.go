// Package rmq answers static range-minimum queries over an integer
// array in O(1) time after a preprocessing step that keeps one argmin
// per block plus an O((n/c) log(n/c))-space sparse table over them, for
// block size c. Grounded on the reference's RMQRMM64 use
// inside Lce_rmq, generalized here to the explicit two-level sparse
// table over block minima that the synchronizing-set LCE query needs.
package rmq
