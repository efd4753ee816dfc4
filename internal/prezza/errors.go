package prezza

import "errors"

// ErrEmptyText is returned when Build is called with zero-length text.
var ErrEmptyText = errors.New("prezza: text must be non-empty")
