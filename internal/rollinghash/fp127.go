package rollinghash

import "math/big"

// Fp127 is a fingerprint value in [0, 2^127-1), split across two uint64
// limbs so ring buffers of fingerprints (the SSS builder keeps up to 4*tau
// of them live) don't pay big.Int's allocation cost per entry.
//
// Hi never uses more than 63 bits: Modulus-1 is 127 ones, so the top limb
// tops out at 0x7FFFFFFFFFFFFFFF.
type Fp127 struct {
	Hi uint64
	Lo uint64
}

// Less reports whether f < other, ordering by Hi then Lo.
func (f Fp127) Less(other Fp127) bool {
	if f.Hi != other.Hi {
		return f.Hi < other.Hi
	}

	return f.Lo < other.Lo
}

// Equal reports whether f and other hold the same value.
func (f Fp127) Equal(other Fp127) bool {
	return f.Hi == other.Hi && f.Lo == other.Lo
}

func (f Fp127) bigInt() *big.Int {
	x := new(big.Int).SetUint64(f.Hi)
	x.Lsh(x, 64)
	x.Or(x, new(big.Int).SetUint64(f.Lo))

	return x
}

func fp127FromBigInt(x *big.Int) Fp127 {
	lo := new(big.Int).And(x, maskLo64)
	hi := new(big.Int).Rsh(x, 64)

	return Fp127{Hi: hi.Uint64(), Lo: lo.Uint64()}
}

var maskLo64 = new(big.Int).SetUint64(^uint64(0))
