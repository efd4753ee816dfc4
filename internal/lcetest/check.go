package lcetest

import "testing"

// Index is the minimal surface checked against the naive oracle; both
// SSSIndex and PrezzaIndex satisfy it.
type Index interface {
	SizeBytes() uint64
	LCE(i, j uint64) (uint64, error)
}

// CheckAgainstOracle runs pairs through idx and text's naive oracle and
// fails t on the first disagreement.
func CheckAgainstOracle(t *testing.T, idx Index, text []byte, pairs []QueryPair) {
	t.Helper()

	for _, p := range pairs {
		got, err := idx.LCE(p.I, p.J)
		if err != nil {
			t.Fatalf("LCE(%d, %d): unexpected error: %v", p.I, p.J, err)
		}

		want := NaiveLCE(text, p.I, p.J)
		if got != want {
			t.Fatalf("LCE(%d, %d) = %d, want %d (naive oracle)", p.I, p.J, got, want)
		}
	}
}

// CheckUniversalInvariants checks the two index-independent LCE
// invariants from spec.md §8: lce(i, i) == size-i, and lce is
// symmetric.
func CheckUniversalInvariants(t *testing.T, idx Index, pairs []QueryPair) {
	t.Helper()

	n := idx.SizeBytes()

	for _, p := range pairs {
		self, err := idx.LCE(p.I, p.I)
		if err != nil {
			t.Fatalf("LCE(%d, %d): unexpected error: %v", p.I, p.I, err)
		}

		if want := n - p.I; self != want {
			t.Fatalf("LCE(%d, %d) = %d, want %d (= size - i)", p.I, p.I, self, want)
		}

		forward, err := idx.LCE(p.I, p.J)
		if err != nil {
			t.Fatalf("LCE(%d, %d): unexpected error: %v", p.I, p.J, err)
		}

		backward, err := idx.LCE(p.J, p.I)
		if err != nil {
			t.Fatalf("LCE(%d, %d): unexpected error: %v", p.J, p.I, err)
		}

		if forward != backward {
			t.Fatalf("LCE(%d, %d) = %d != LCE(%d, %d) = %d (not symmetric)", p.I, p.J, forward, p.J, p.I, backward)
		}
	}
}
