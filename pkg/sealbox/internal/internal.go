// Package internal contains shared constants and helper functions for the
// sealbox protocols and encodings.
//
// The subpackages of internal contain the STROBE protocols sealbox uses.
package internal

import (
	"github.com/mr-tron/base58"
)

const (
	ElementSize = 32 // ElementSize is the length of an encoded ristretto255 element.
	ScalarSize  = 32 // ScalarSize is the length of an encoded ristretto255 scalar.
	MACSize     = 16 // MACSize is the authentication tag size in bytes.

	// UniformBytestringSize is the length of a uniform bytestring which can be mapped to either a
	// ristretto255 element or scalar.
	UniformBytestringSize = 64

	// ChunkSize is the number of plaintext bytes packed into each scalar. A 31-byte little-endian
	// value is always canonical, since it is smaller than the group order.
	ChunkSize = 31
)

// ASCIIEncode returns the given data, encoded as base58 text.
func ASCIIEncode(data []byte) []byte {
	return []byte(base58.Encode(data))
}

// ASCIIDecode decodes the given base58 text and returns the result.
func ASCIIDecode(text []byte) ([]byte, error) {
	return base58.Decode(string(text))
}

// Must panics if the given error is not nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// SliceForAppend extends the input slice by n bytes and returns both the extended slice and the
// newly appended portion.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}

	tail = head[len(in):]

	return
}
