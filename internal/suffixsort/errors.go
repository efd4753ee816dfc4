package suffixsort

import "errors"

// ErrEmptySet is returned when Build is called with an empty synchronizing set.
var ErrEmptySet = errors.New("suffixsort: synchronizing set must be non-empty")
