package lce

import "errors"

// ErrIndexOutOfRange is returned by a query when i or j is not a valid
// position in the indexed text (i >= n or j >= n).
var ErrIndexOutOfRange = errors.New("lce: index out of range")
