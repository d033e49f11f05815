package sealbox

import (
	"encoding"
	"fmt"
	"strings"

	"github.com/gtank/ristretto255"
	"github.com/sealbox/sealbox/pkg/sealbox/internal"
)

// Address is the public encryption target for an account. It is safe to publish.
//
// It is a ristretto255 element, derived from a ViewKey. It can be marshalled and unmarshalled as
// a base58 string with the `sbox1` prefix.
type Address struct {
	q *ristretto255.Element
}

// Equals returns true if the given Address is equal to the receiver.
func (a *Address) Equals(other *Address) bool {
	return a.q.Equal(other.q) == 1
}

// String returns the address as prefixed base58 text.
func (a *Address) String() string {
	text, err := a.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

// MarshalBinary encodes the address into a 32-byte slice.
func (a *Address) MarshalBinary() (data []byte, err error) {
	return a.q.Encode(nil), nil
}

// UnmarshalBinary decodes the address from a 32-byte canonical element encoding.
func (a *Address) UnmarshalBinary(data []byte) error {
	q := ristretto255.NewElement()
	if err := q.Decode(data); err != nil {
		return fmt.Errorf("invalid address: %w", ErrInvalidKeyEncoding)
	}

	a.q = q

	return nil
}

// MarshalText encodes the address into prefixed base58 text and returns the result.
func (a *Address) MarshalText() (text []byte, err error) {
	return append([]byte(addressPrefix), internal.ASCIIEncode(a.q.Encode(nil))...), nil
}

// UnmarshalText decodes the results of MarshalText and updates the receiver to contain the decoded
// address.
func (a *Address) UnmarshalText(text []byte) error {
	s := string(text)
	if !strings.HasPrefix(s, addressPrefix) {
		return fmt.Errorf("invalid address prefix: %w", ErrMalformedInput)
	}

	data, err := internal.ASCIIDecode([]byte(strings.TrimPrefix(s, addressPrefix)))
	if err != nil {
		return fmt.Errorf("invalid address: %w", ErrMalformedInput)
	}

	return a.UnmarshalBinary(data)
}

var (
	_ encoding.BinaryMarshaler   = &Address{}
	_ encoding.BinaryUnmarshaler = &Address{}
	_ encoding.TextMarshaler     = &Address{}
	_ encoding.TextUnmarshaler   = &Address{}
	_ fmt.Stringer               = &Address{}
)
