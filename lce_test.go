package lce

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/herlez/lce-sss/internal/lcetest"
)

func naiveLCE(text []byte, i, j uint64) uint64 {
	var l uint64
	for int(i+l) < len(text) && int(j+l) < len(text) && text[i+l] == text[j+l] {
		l++
	}
	return l
}

func TestSSSIndexAbababScenario(t *testing.T) {
	t.Parallel()

	text := []byte("abababababab")
	idx, err := BuildSSSIndex(text, Options{Tau: 2})
	require.NoError(t, err)

	l, err := idx.LCE(0, 2)
	require.NoError(t, err)
	require.EqualValues(t, 10, l)

	l, err = idx.LCE(0, 1)
	require.NoError(t, err)
	require.EqualValues(t, 0, l)

	l, err = idx.LCE(4, 8)
	require.NoError(t, err)
	require.EqualValues(t, 4, l)
}

func TestSSSIndexMississippiScenario(t *testing.T) {
	t.Parallel()

	// "ississippi" (from 1) and "issippi" (from 4) share the prefix
	// "issi" (4 bytes) before diverging on 's' vs 'p'; "ssissippi"
	// (from 2) and "ssippi" (from 5) share "ssi" (3 bytes) before
	// diverging the same way. Hand-verified against the literal bytes
	// of "mississippi" rather than against an asserted length, since
	// these are just the longest-common-prefix lengths of two fixed
	// strings.
	text := []byte("mississippi")
	idx, err := BuildSSSIndex(text, Options{Tau: 2})
	require.NoError(t, err)

	l, err := idx.LCE(1, 4)
	require.NoError(t, err)
	require.EqualValues(t, 4, l)

	l, err = idx.LCE(2, 5)
	require.NoError(t, err)
	require.EqualValues(t, 3, l)

	l, err = idx.LCE(0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 11, l)
}

func TestSSSIndexLongRunScenario(t *testing.T) {
	t.Parallel()

	text := []byte(strings.Repeat("a", 1024) + "b" + strings.Repeat("a", 1024))
	require.Len(t, text, 2049)

	idx, err := BuildSSSIndex(text, Options{Tau: 16})
	require.NoError(t, err)

	l, err := idx.LCE(0, 1025)
	require.NoError(t, err)
	require.EqualValues(t, 1024, l)

	l, err = idx.LCE(0, 1024)
	require.NoError(t, err)
	require.EqualValues(t, 0, l)
}

func TestSSSIndexLCEMatchesNaiveOracle(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(11, 22))

	for _, alphabetSize := range []int{2, 4, 64} {
		for _, n := range []int{64, 500, 4000} {
			text := make([]byte, n)
			for i := range text {
				text[i] = byte(rng.IntN(alphabetSize))
			}

			idx, err := BuildSSSIndex(text, Options{Tau: 8, Seed: rng.Uint64()})
			require.NoError(t, err)

			for trial := 0; trial < 200; trial++ {
				i := uint64(rng.IntN(n))
				j := uint64(rng.IntN(n))

				got, err := idx.LCE(i, j)
				require.NoError(t, err)
				require.EqualValues(t, naiveLCE(text, i, j), got)
			}
		}
	}
}

func TestSSSIndexUniversalInvariants(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 9))
	text := make([]byte, 2000)
	for i := range text {
		text[i] = byte(rng.IntN(8))
	}

	idx, err := BuildSSSIndex(text, Options{Tau: 8})
	require.NoError(t, err)

	n := idx.SizeBytes()
	for trial := 0; trial < 300; trial++ {
		i := uint64(rng.IntN(int(n)))
		require.Equal(t, n-i, mustLCE(t, idx, i, i))
	}

	for trial := 0; trial < 300; trial++ {
		i := uint64(rng.IntN(int(n)))
		j := uint64(rng.IntN(int(n)))
		require.Equal(t, mustLCE(t, idx, i, j), mustLCE(t, idx, j, i))
	}
}

func mustLCE(t *testing.T, idx *SSSIndex, i, j uint64) uint64 {
	t.Helper()
	l, err := idx.LCE(i, j)
	require.NoError(t, err)
	return l
}

func TestSSSIndexIsSmallerSuffixMatchesByteCompare(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(5, 6))
	text := make([]byte, 800)
	for i := range text {
		text[i] = byte(rng.IntN(4))
	}

	idx, err := BuildSSSIndex(text, Options{Tau: 4})
	require.NoError(t, err)

	for trial := 0; trial < 300; trial++ {
		i := uint64(rng.IntN(len(text)))
		j := uint64(rng.IntN(len(text)))
		if i == j {
			continue
		}

		got, err := idx.IsSmallerSuffix(i, j)
		require.NoError(t, err)
		require.Equal(t, bytes.Compare(text[i:], text[j:]) < 0, got)
	}
}

func TestSSSIndexOutOfRangeErrors(t *testing.T) {
	t.Parallel()

	idx, err := BuildSSSIndex([]byte("abababababab"), Options{Tau: 2})
	require.NoError(t, err)

	_, err = idx.Byte(100)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = idx.LCE(0, 100)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = idx.IsSmallerSuffix(0, 100)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestPrezzaIndexScenarios(t *testing.T) {
	t.Parallel()

	idx, err := BuildPrezzaIndex([]byte("abababababab"))
	require.NoError(t, err)

	l, err := idx.LCE(0, 2)
	require.NoError(t, err)
	require.EqualValues(t, 10, l)

	l, err = idx.LCE(0, 1)
	require.NoError(t, err)
	require.EqualValues(t, 0, l)
}

func TestPrezzaIndexRetransformTextRoundTrips(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(8, 13))

	for _, n := range []int{1, 5, 127, 128, 129, 900} {
		original := make([]byte, n)
		for i := range original {
			original[i] = byte(rng.IntN(256))
		}
		want := append([]byte(nil), original...)

		idx, err := BuildPrezzaIndex(original)
		require.NoError(t, err)
		require.Equal(t, want, idx.RetransformText())
	}
}

func TestPrezzaIndexLCEMatchesNaiveOracle(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(21, 34))
	text := make([]byte, 600)
	for i := range text {
		text[i] = byte(rng.IntN(4))
	}
	oracle := append([]byte(nil), text...)

	idx, err := BuildPrezzaIndex(text)
	require.NoError(t, err)

	for trial := 0; trial < 300; trial++ {
		i := uint64(rng.IntN(len(oracle)))
		j := uint64(rng.IntN(len(oracle)))
		got, err := idx.LCE(i, j)
		require.NoError(t, err)
		require.EqualValues(t, naiveLCE(oracle, i, j), got)
	}
}

func TestSSSIndexAgainstOracleAcrossStressFamilies(t *testing.T) {
	t.Parallel()

	families := []lcetest.TextFamily{lcetest.Random, lcetest.Runs, lcetest.Fibonacci, lcetest.Periodic}

	for seed, family := range families {
		text := lcetest.GenerateText(family, 3000, uint64(seed)+1, 6)

		idx, err := BuildSSSIndex(text, Options{Tau: 16, Seed: uint64(seed) + 1})
		require.NoError(t, err)

		pairs := lcetest.GenerateQueryPairs(len(text), 400, uint64(seed)+1)
		lcetest.CheckAgainstOracle(t, idx, text, pairs)
		lcetest.CheckUniversalInvariants(t, idx, pairs)
	}
}

func TestPrezzaIndexAgainstOracleAcrossStressFamilies(t *testing.T) {
	t.Parallel()

	families := []lcetest.TextFamily{lcetest.Random, lcetest.Runs, lcetest.Fibonacci, lcetest.Periodic}

	for seed, family := range families {
		original := lcetest.GenerateText(family, 1500, uint64(seed)+1, 6)
		oracle := append([]byte(nil), original...)

		idx, err := BuildPrezzaIndex(original)
		require.NoError(t, err)

		pairs := lcetest.GenerateQueryPairs(len(oracle), 400, uint64(seed)+1)
		lcetest.CheckAgainstOracle(t, idx, oracle, pairs)
		lcetest.CheckUniversalInvariants(t, idx, pairs)
	}
}

func TestPrezzaIndexOutOfRangeErrors(t *testing.T) {
	t.Parallel()

	idx, err := BuildPrezzaIndex([]byte("abababababab"))
	require.NoError(t, err)

	_, err = idx.Byte(100)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))

	_, err = idx.LCE(0, 100)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))

	_, err = idx.IsSmallerSuffix(0, 100)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
}
