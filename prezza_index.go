package lce

import (
	"fmt"

	"github.com/herlez/lce-sss/internal/prezza"
)

// PrezzaIndex answers LCE queries via a fingerprint-based index. It
// takes ownership of the text passed to BuildPrezzaIndex: the caller
// must not read or mutate that slice afterward. The original bytes can
// be recovered with RetransformText.
type PrezzaIndex struct {
	idx *prezza.Index
}

// BuildPrezzaIndex builds a Prezza fingerprint LCE index over text.
func BuildPrezzaIndex(text []byte) (*PrezzaIndex, error) {
	idx, err := prezza.Build(text)
	if err != nil {
		return nil, fmt.Errorf("lce: build prezza index: %w", err)
	}
	return &PrezzaIndex{idx: idx}, nil
}

// SizeBytes returns the length of the indexed text.
func (x *PrezzaIndex) SizeBytes() uint64 {
	return x.idx.SizeBytes()
}

// Byte returns the byte at position i, reconstructed from fingerprints.
func (x *PrezzaIndex) Byte(i uint64) (byte, error) {
	if i >= x.SizeBytes() {
		return 0, fmt.Errorf("%w: i=%d, n=%d", ErrIndexOutOfRange, i, x.SizeBytes())
	}
	return x.idx.Byte(i), nil
}

// LCE returns the length of the longest common extension of the
// suffixes starting at i and j.
func (x *PrezzaIndex) LCE(i, j uint64) (uint64, error) {
	n := x.SizeBytes()
	if i >= n || j >= n {
		return 0, fmt.Errorf("%w: i=%d, j=%d, n=%d", ErrIndexOutOfRange, i, j, n)
	}
	return x.idx.LCE(i, j), nil
}

// IsSmallerSuffix reports whether the suffix starting at i is
// lexicographically smaller than the suffix starting at j.
func (x *PrezzaIndex) IsSmallerSuffix(i, j uint64) (bool, error) {
	n := x.SizeBytes()
	if i >= n || j >= n {
		return false, fmt.Errorf("%w: i=%d, j=%d, n=%d", ErrIndexOutOfRange, i, j, n)
	}
	return x.idx.IsSmallerSuffix(i, j), nil
}

// RetransformText reconstructs the original text that BuildPrezzaIndex
// consumed.
func (x *PrezzaIndex) RetransformText() []byte {
	return x.idx.RetransformText()
}
