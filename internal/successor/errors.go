package successor

import "errors"

// ErrEmpty is returned when an Index is built over an empty array.
var ErrEmpty = errors.New("successor: array must be non-empty")

// ErrNotSorted is returned when the array passed to New is not strictly
// increasing, a precondition of the two-level index.
var ErrNotSorted = errors.New("successor: array must be strictly increasing")
