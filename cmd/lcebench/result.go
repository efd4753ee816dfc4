package main

import (
	"bytes"

	"github.com/natefinch/atomic"
)

// atomicWriteFile writes data to path without risking a partially
// written file if the process is interrupted mid-write.
func atomicWriteFile(path string, data []byte) error {
	return atomic.WriteFile(path, bytes.NewReader(data))
}
