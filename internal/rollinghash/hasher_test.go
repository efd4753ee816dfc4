package rollinghash

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRollMatchesFromScratch(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))
	text := make([]byte, 4096)
	for i := range text {
		text[i] = byte(rng.Uint32())
	}

	const w = 64
	h := New(42, w)
	win := h.NewWindow(text, 0)

	for pos := 0; pos+w < len(text); pos++ {
		want := h.FingerprintAt(text, pos)
		require.True(t, want.Equal(win.Fingerprint()), "pos=%d", pos)
		win.Roll()
	}
}

func TestFingerprintDeterministicAcrossHashers(t *testing.T) {
	t.Parallel()

	text := []byte("abababababababab")
	h1 := New(123, 4)
	h2 := New(123, 4)

	require.True(t, h1.FingerprintAt(text, 0).Equal(h2.FingerprintAt(text, 0)))
}

func TestFingerprintDistinguishesDifferentWindows(t *testing.T) {
	t.Parallel()

	h := New(1, 8)
	a := h.FingerprintAt([]byte("aaaaaaaaxxxxxxxx"), 0)
	b := h.FingerprintAt([]byte("aaaaaaaaxxxxxxxx"), 8)
	require.False(t, a.Equal(b))

	c := h.FingerprintAt([]byte("aaaaaaaaaaaaaaaa"), 0)
	d := h.FingerprintAt([]byte("aaaaaaaaaaaaaaaa"), 8)
	require.True(t, c.Equal(d))
}

func TestFp127Less(t *testing.T) {
	t.Parallel()

	require.True(t, Fp127{Hi: 1, Lo: 0}.Less(Fp127{Hi: 2, Lo: 0}))
	require.True(t, Fp127{Hi: 1, Lo: 5}.Less(Fp127{Hi: 1, Lo: 6}))
	require.False(t, Fp127{Hi: 1, Lo: 6}.Less(Fp127{Hi: 1, Lo: 6}))
}
