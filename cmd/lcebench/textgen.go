package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var errUnknownMode = errors.New("lcebench: unknown mode")

// generateText builds n bytes of synthetic text in the given mode,
// matching the stress-text families exercised by the property tests in
// internal/lcetest: "random" is uniform bytes, "runs" is a long
// repeated-byte run split at its midpoint by one differing byte (the kind of input
// that forces run detection during synchronizing-set construction),
// and "fibonacci" is the Fibonacci word over {0, 1}, truncated/padded
// to length n.
func generateText(mode string, n int, seed uint64) ([]byte, error) {
	switch mode {
	case "random":
		return randomText(n, seed), nil
	case "runs":
		return runText(n), nil
	case "fibonacci":
		return fibonacciText(n), nil
	default:
		return nil, fmt.Errorf("%w: %q (want random, runs, or fibonacci)", errUnknownMode, mode)
	}
}

func randomText(n int, seed uint64) []byte {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	text := make([]byte, n)
	for i := range text {
		text[i] = byte(rng.IntN(256))
	}

	return text
}

// runText places a single differing byte at the midpoint of an
// otherwise constant run, the shape of spec.md's long-run LCE scenario.
func runText(n int) []byte {
	text := make([]byte, n)
	for i := range text {
		text[i] = 'a'
	}

	if n > 0 {
		text[n/2] = 'b'
	}

	return text
}

func fibonacciText(n int) []byte {
	a, b := []byte{'1'}, []byte{'0'}
	for len(b) < n {
		a, b = b, append(append([]byte{}, b...), a...)
	}

	if len(b) > n {
		b = b[:n]
	}

	return b
}
