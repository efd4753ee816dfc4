// Package rollinghash implements the rolling Rabin-Karp fingerprint over
// the Mersenne modulus q = 2^127-1 described by the synchronizing-set
// construction: a window of w bytes hashes to a value in [0, q), and
// sliding the window by one byte costs one multiply, one table lookup,
// and one reduction.
package rollinghash

import (
	"math/big"
	"math/rand/v2"
)

var mersenne127 = func() *big.Int {
	x := new(big.Int).Lsh(big.NewInt(1), 127)
	return x.Sub(x, big.NewInt(1))
}()

// Hasher holds the base and precomputed correction table for a given
// window length. A single Hasher can open many independent Windows over
// the same or different texts; Windows are not safe for concurrent use,
// but distinct Windows from the same Hasher are.
type Hasher struct {
	w         int
	base      *big.Int
	baseToW   *big.Int
	influence [256][256]Fp127
}

// New builds a Hasher for window length w, deriving the Rabin-Karp base
// from seed. The same seed always yields the same base, so builds are
// reproducible (spec.md §9 flags base selection via time(nullptr) as an
// open question; this always takes an explicit seed).
func New(seed uint64, w int) *Hasher {
	if w <= 0 {
		panic("rollinghash: window length must be positive")
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	base := randomBase(rng)
	baseToW := new(big.Int).Exp(base, big.NewInt(int64(w)), mersenne127)

	h := &Hasher{w: w, base: base, baseToW: baseToW}
	h.buildInfluenceTable()

	return h
}

// Window returns the window length this hasher was built for.
func (h *Hasher) Window() int { return h.w }

func (h *Hasher) buildInfluenceTable() {
	for oldByte := 0; oldByte < 256; oldByte++ {
		oldTerm := new(big.Int).Mul(big.NewInt(int64(oldByte)), h.baseToW)
		oldTerm.Mod(oldTerm, mersenne127)

		for newByte := 0; newByte < 256; newByte++ {
			x := new(big.Int).Sub(big.NewInt(int64(newByte)), oldTerm)
			x.Mod(x, mersenne127)
			h.influence[oldByte][newByte] = fp127FromBigInt(x)
		}
	}
}

// randomBase draws a uniform value in [1, q) by rejection sampling 127
// random bits at a time; rejection is negligibly rare since q is within
// one unit of 2^127.
func randomBase(rng *rand.Rand) *big.Int {
	for {
		hi := rng.Uint64() & 0x7FFFFFFFFFFFFFFF
		lo := rng.Uint64()
		x := fp127FromParts(hi, lo).bigInt()

		if x.Sign() != 0 && x.Cmp(mersenne127) < 0 {
			return x
		}
	}
}

func fp127FromParts(hi, lo uint64) Fp127 {
	return Fp127{Hi: hi, Lo: lo}
}

// FingerprintAt computes the fingerprint of text[start:start+w] from
// scratch in O(w) time, via Horner's rule: the first value a Window
// needs before it can start rolling.
func (h *Hasher) FingerprintAt(text []byte, start int) Fp127 {
	x := new(big.Int)
	for k := 0; k < h.w; k++ {
		x.Mul(x, h.base)
		x.Add(x, big.NewInt(int64(text[start+k])))
		x.Mod(x, mersenne127)
	}

	return fp127FromBigInt(x)
}

// roll advances a fingerprint by one byte: oldByte leaves the window,
// newByte enters it. fp_new = fp_old*base + (newByte - oldByte*base^w) mod q.
func (h *Hasher) roll(fp Fp127, oldByte, newByte byte) Fp127 {
	x := fp.bigInt()
	x.Mul(x, h.base)
	x.Add(x, h.influence[oldByte][newByte].bigInt())
	x.Mod(x, mersenne127)

	return fp127FromBigInt(x)
}

// Window is a positioned, rolling fingerprint handle.
type Window struct {
	h    *Hasher
	text []byte
	pos  int
	fp   Fp127
}

// NewWindow opens a Window at text[start:start+w], computing its initial
// fingerprint.
func (h *Hasher) NewWindow(text []byte, start int) *Window {
	return &Window{h: h, text: text, pos: start, fp: h.FingerprintAt(text, start)}
}

// Pos returns the window's current start position.
func (w *Window) Pos() int { return w.pos }

// Fingerprint returns the fingerprint of the current window without
// advancing it.
func (w *Window) Fingerprint() Fp127 { return w.fp }

// Roll advances the window by one byte and returns the new fingerprint.
// The caller must ensure pos+w stays within text.
func (w *Window) Roll() Fp127 {
	oldByte := w.text[w.pos]
	newByte := w.text[w.pos+w.h.w]
	w.fp = w.h.roll(w.fp, oldByte, newByte)
	w.pos++

	return w.fp
}
