package sealbox

import (
	"crypto/subtle"
	"encoding"
	"fmt"
	"io"
	"strings"

	"github.com/sealbox/sealbox/pkg/sealbox/internal"
	"github.com/sealbox/sealbox/pkg/sealbox/internal/scaldf"
)

// PrivateKey is the root of an account's key material. All other key material is deterministically
// derivable from it.
//
// It should never be transmitted. It can be marshalled and unmarshalled as a base58 string with
// the `sbsk1` prefix.
type PrivateKey struct {
	r [internal.UniformBytestringSize]byte
}

// GeneratePrivateKey creates a new private key using the given source of randomness.
func GeneratePrivateKey(rand io.Reader) (*PrivateKey, error) {
	var sk PrivateKey

	if _, err := io.ReadFull(rand, sk.r[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
	}

	return &sk, nil
}

// ViewKey derives the view key for the receiver. The derivation is deterministic and one-way.
func (sk *PrivateKey) ViewKey() *ViewKey {
	return &ViewKey{d: scaldf.ViewScalar(&sk.r)}
}

// Address derives the address for the receiver.
func (sk *PrivateKey) Address() *Address {
	return sk.ViewKey().Address()
}

// Equals returns true if the given PrivateKey is equal to the receiver.
func (sk *PrivateKey) Equals(other *PrivateKey) bool {
	return subtle.ConstantTimeCompare(sk.r[:], other.r[:]) == 1
}

// String returns the private key as prefixed base58 text.
func (sk *PrivateKey) String() string {
	text, err := sk.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

// MarshalBinary encodes the private key into a 64-byte slice.
func (sk *PrivateKey) MarshalBinary() (data []byte, err error) {
	data = make([]byte, internal.UniformBytestringSize)
	copy(data, sk.r[:])

	return
}

// UnmarshalBinary decodes the private key from a 64-byte slice.
func (sk *PrivateKey) UnmarshalBinary(data []byte) error {
	if len(data) != internal.UniformBytestringSize {
		return fmt.Errorf("invalid private key: %w", ErrInvalidKeyEncoding)
	}

	copy(sk.r[:], data)

	return nil
}

// MarshalText encodes the private key into prefixed base58 text and returns the result.
func (sk *PrivateKey) MarshalText() (text []byte, err error) {
	return append([]byte(privateKeyPrefix), internal.ASCIIEncode(sk.r[:])...), nil
}

// UnmarshalText decodes the results of MarshalText and updates the receiver to contain the decoded
// private key.
func (sk *PrivateKey) UnmarshalText(text []byte) error {
	s := string(text)
	if !strings.HasPrefix(s, privateKeyPrefix) {
		return fmt.Errorf("invalid private key prefix: %w", ErrMalformedInput)
	}

	data, err := internal.ASCIIDecode([]byte(strings.TrimPrefix(s, privateKeyPrefix)))
	if err != nil {
		return fmt.Errorf("invalid private key: %w", ErrMalformedInput)
	}

	return sk.UnmarshalBinary(data)
}

var (
	_ encoding.BinaryMarshaler   = &PrivateKey{}
	_ encoding.BinaryUnmarshaler = &PrivateKey{}
	_ encoding.TextMarshaler     = &PrivateKey{}
	_ encoding.TextUnmarshaler   = &PrivateKey{}
	_ fmt.Stringer               = &PrivateKey{}
)
