package lcetest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateTextIsDeterministic(t *testing.T) {
	t.Parallel()

	for _, family := range []TextFamily{Random, Runs, Fibonacci, Periodic} {
		a := GenerateText(family, 500, 42, 8)
		b := GenerateText(family, 500, 42, 8)
		require.Equal(t, a, b)
		require.Len(t, a, 500)
	}
}

func TestGenerateTextDiffersAcrossSeeds(t *testing.T) {
	t.Parallel()

	a := GenerateText(Random, 500, 1, 256)
	b := GenerateText(Random, 500, 2, 256)
	require.NotEqual(t, a, b)
}

func TestRunsTextContainsMultipleDistinctBytes(t *testing.T) {
	t.Parallel()

	text := GenerateText(Runs, 400, 0, 0)

	seen := map[byte]bool{}
	for _, b := range text {
		seen[b] = true
	}

	require.GreaterOrEqual(t, len(seen), 2)
}

func TestFibonacciTextMatchesKnownPrefix(t *testing.T) {
	t.Parallel()

	text := GenerateText(Fibonacci, 13, 0, 0)
	require.Equal(t, []byte("0100101001001"), text)
}
