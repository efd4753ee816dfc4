package sss

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildInvalidTau(t *testing.T) {
	t.Parallel()

	_, err := Build([]byte("abcdefgh"), 0, 1, 1)
	require.ErrorIs(t, err, ErrInvalidTau)
}

func TestBuildTextTooShort(t *testing.T) {
	t.Parallel()

	_, err := Build([]byte("ab"), 4, 1, 1)
	require.ErrorIs(t, err, ErrTextTooShort)
}

func TestBuildConsistencyInvariant(t *testing.T) {
	t.Parallel()

	const tau = 4

	rng := rand.New(rand.NewPCG(5, 9))
	text := make([]byte, 400)
	for i := range text {
		text[i] = byte('a' + rng.IntN(4))
	}

	set, err := Build(text, tau, 3, 1)
	require.NoError(t, err)

	inSet := make(map[uint64]bool, len(set.Positions))
	for _, p := range set.Positions {
		inSet[p] = true
	}

	sssEnd := uint64(len(text)) - 2*tau + 1

	for i := uint64(0); i < sssEnd; i++ {
		for j := i + 1; j < sssEnd; j++ {
			if bytes.Equal(text[i:i+2*tau], text[j:j+2*tau]) {
				require.Equalf(t, inSet[i], inSet[j],
					"consistency invariant violated for equal 2*tau-grams at %d and %d", i, j)
			}
		}
	}
}

func TestBuildDensityInvariantNoRuns(t *testing.T) {
	t.Parallel()

	const tau = 4

	rng := rand.New(rand.NewPCG(11, 17))
	text := make([]byte, 300)
	for i := range text {
		text[i] = byte(rng.Uint32())
	}

	set, err := Build(text, tau, 2, 2)
	require.NoError(t, err)
	require.False(t, set.HasRuns)
	require.NotEmpty(t, set.Positions)

	sssEnd := uint64(len(text)) - 2*tau + 1

	require.Less(t, set.Positions[0], sssEnd)
	require.LessOrEqual(t, set.Positions[0], uint64(tau-1))

	for k := 1; k < len(set.Positions); k++ {
		gap := set.Positions[k] - set.Positions[k-1]
		require.LessOrEqualf(t, gap, uint64(tau), "gap too large between positions %d and %d", set.Positions[k-1], set.Positions[k])
	}
}

func TestBuildDeterministicAcrossParallelism(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4))
	text := make([]byte, 500)
	for i := range text {
		text[i] = byte(rng.Uint32())
	}

	s1, err := Build(text, 6, 1, 42)
	require.NoError(t, err)
	s2, err := Build(text, 6, 7, 42)
	require.NoError(t, err)

	require.Equal(t, s1.Positions, s2.Positions)
	require.Equal(t, s1.HasRuns, s2.HasRuns)
	require.Equal(t, s1.RunRanks, s2.RunRanks)
}

func TestBuildDetectsRuns(t *testing.T) {
	t.Parallel()

	text := append(bytes.Repeat([]byte("a"), 1024), append([]byte("b"), bytes.Repeat([]byte("a"), 1024)...)...)

	set, err := Build(text, 16, 4, 1)
	require.NoError(t, err)
	require.True(t, set.HasRuns)

	sssEnd := uint64(len(text)) - 2*16 + 1
	require.Equal(t, sssEnd, set.Positions[len(set.Positions)-1], "runs-aware build appends the sentinel position")

	for k := 1; k < len(set.Positions); k++ {
		require.Greater(t, set.Positions[k], set.Positions[k-1], "positions must stay strictly increasing")
	}
}

func TestBuildRunRankSignMatchesBoundaryOrder(t *testing.T) {
	t.Parallel()

	// "a" repeated past the 3*tau-1 run-length cutoff, followed by a byte
	// that is lexicographically larger at the run boundary, forces a
	// positive run_rank per calculate_q's sign rule.
	text := append(bytes.Repeat([]byte("a"), 600), []byte("zzzzzzzzzzzzzzzzzzzz")...)

	set, err := Build(text, 6, 2, 1)
	require.NoError(t, err)

	if !set.HasRuns {
		t.Skip("input did not inflate the sync set enough to trigger run detection")
	}

	for _, rank := range set.RunRanks {
		require.NotZero(t, rank)
	}
}
