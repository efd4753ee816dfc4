// Package suffixsort ranks a string-synchronizing set by the
// lexicographic order of each member's bounded-length suffix, then
// derives a longest-common-prefix array over that order. Grounded on
// the reference's Lce_rmq construction pipeline (bounded-suffix radix
// sort -> rank collapsing -> SA-IS over the rank alphabet -> LCP
// derivation via a direct full-text LCE scan for each pair of
// suffix-array neighbors).
package suffixsort
