package sss

import "errors"

// ErrInvalidTau is returned when tau is not a positive integer.
var ErrInvalidTau = errors.New("sss: tau must be positive")

// ErrTextTooShort is returned when the text is shorter than 2*tau, the
// minimum length a synchronizing set can be computed over.
var ErrTextTooShort = errors.New("sss: text shorter than 2*tau")
