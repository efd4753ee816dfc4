package prezza

import "math/bits"

// prime is the reference's fixed constant, just above 2^63.
const prime uint64 = 0x800000000000001d

// base is the per-byte radix: each byte extends the fingerprint as if
// it were a base-256 digit.
const base uint64 = 256

func addmod(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry == 1 {
		// true value is 2^64 + sum; since prime < 2^64, a single
		// wrapping subtraction recovers (2^64 + sum) mod prime.
		return sum - prime
	}
	if sum >= prime {
		return sum - prime
	}
	return sum
}

func submod(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return prime - (b - a)
}

func mulmod(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	// a, b < prime = 2^63+29 < 2^64, so a*b < prime^2 < prime*2^64 and
	// hi < prime, which Div64 requires to avoid overflow.
	_, rem := bits.Div64(hi, lo, prime)
	return rem
}
