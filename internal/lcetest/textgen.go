package lcetest

// TextFamily names a stress-text generation strategy.
type TextFamily int

const (
	// Random is uniform bytes over a configurable alphabet size.
	Random TextFamily = iota
	// Runs is a text made of a few long constant-byte runs separated
	// by single differing bytes, forcing the synchronizing-set
	// builder's run-detection path.
	Runs
	// Fibonacci is the Fibonacci word over {'0', '1'}, a classic
	// highly-repetitive low-entropy stress input.
	Fibonacci
	// Periodic repeats a short random block until it reaches length n,
	// a simple exact-period stress input distinct from Fibonacci's
	// unbounded period growth.
	Periodic
)

// GenerateText builds n bytes of text in the given family, deterministic
// in (family, n, seed, alphabetSize).
func GenerateText(family TextFamily, n int, seed uint64, alphabetSize int) []byte {
	switch family {
	case Runs:
		return runsText(n)
	case Fibonacci:
		return fibonacciText(n)
	case Periodic:
		return periodicText(n, seed, alphabetSize)
	default:
		return randomText(n, seed, alphabetSize)
	}
}

func randomText(n int, seed uint64, alphabetSize int) []byte {
	if alphabetSize <= 0 {
		alphabetSize = 256
	}

	stream := newByteStream(expandSeed(seed, n))

	text := make([]byte, n)
	for i := range text {
		text[i] = byte(int(stream.nextByte()) % alphabetSize)
	}

	return text
}

// expandSeed derives len bytes deterministically from a uint64 seed via
// a small xorshift-style expansion, avoiding math/rand so callers who
// want a raw byte budget (rather than a *rand.Rand) get one directly.
func expandSeed(seed uint64, length int) []byte {
	out := make([]byte, length)
	state := seed ^ 0x9e3779b97f4a7c15

	for i := range out {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		out[i] = byte(state)
	}

	return out
}

// runsText places several long constant-byte runs (alternating 'a' and
// 'c', each about n/4 long) back to back, each separated by one 'b', matching
// spec.md's "a"*k + "b" + "a"*k long-run LCE scenario shape.
func runsText(n int) []byte {
	text := make([]byte, n)

	runLen := n / 4
	if runLen < 1 {
		runLen = 1
	}

	pos := 0
	fillByte := byte('a')

	for pos < n {
		end := pos + runLen
		if end > n {
			end = n
		}

		for i := pos; i < end; i++ {
			text[i] = fillByte
		}

		pos = end
		if pos < n {
			text[pos] = 'b'
			pos++
		}

		if fillByte == 'a' {
			fillByte = 'c'
		} else {
			fillByte = 'a'
		}
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

func periodicText(n int, seed uint64, alphabetSize int) []byte {
	if alphabetSize <= 0 {
		alphabetSize = 4
	}

	period := 1 + int(seed%31)
	block := expandSeed(seed, period)

	text := make([]byte, n)
	for i := range text {
		text[i] = byte(int(block[i%period]) % alphabetSize)
	}

	return text
}
