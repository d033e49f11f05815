// Package rng provides the default source of cryptographically secure randomness for callers
// which don't inject their own.
package rng

import (
	"crypto/rand"
	"io"
)

// Reader is the default source of cryptographically secure randomness.
//
//nolint:gochecknoglobals // shared source
var Reader io.Reader = rand.Reader

// Read fills b with random data from Reader.
func Read(b []byte) (int, error) {
	return io.ReadFull(Reader, b)
}
