package sealbox

import (
	"encoding"
	"fmt"
	"strings"

	"github.com/gtank/ristretto255"
	"github.com/sealbox/sealbox/pkg/sealbox/internal"
)

// ViewKey is the decryption capability for messages sent to the corresponding Address.
//
// It is a ristretto255 scalar, derived one-way from a PrivateKey. It can be marshalled and
// unmarshalled as a base58 string with the `sbvk1` prefix.
type ViewKey struct {
	d *ristretto255.Scalar
}

// Address derives the address for the receiver by multiplying the view-key scalar with the
// ristretto255 generator.
func (vk *ViewKey) Address() *Address {
	return &Address{q: ristretto255.NewElement().ScalarBaseMult(vk.d)}
}

// Equals returns true if the given ViewKey is equal to the receiver.
func (vk *ViewKey) Equals(other *ViewKey) bool {
	return vk.d.Equal(other.d) == 1
}

// String returns the view key as prefixed base58 text.
func (vk *ViewKey) String() string {
	text, err := vk.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

// MarshalBinary encodes the view key into a 32-byte slice.
func (vk *ViewKey) MarshalBinary() (data []byte, err error) {
	return vk.d.Encode(nil), nil
}

// UnmarshalBinary decodes the view key from a 32-byte canonical scalar encoding.
func (vk *ViewKey) UnmarshalBinary(data []byte) error {
	d := ristretto255.NewScalar()
	if err := d.Decode(data); err != nil {
		return fmt.Errorf("invalid view key: %w", ErrInvalidKeyEncoding)
	}

	vk.d = d

	return nil
}

// MarshalText encodes the view key into prefixed base58 text and returns the result.
func (vk *ViewKey) MarshalText() (text []byte, err error) {
	return append([]byte(viewKeyPrefix), internal.ASCIIEncode(vk.d.Encode(nil))...), nil
}

// UnmarshalText decodes the results of MarshalText and updates the receiver to contain the decoded
// view key.
func (vk *ViewKey) UnmarshalText(text []byte) error {
	s := string(text)
	if !strings.HasPrefix(s, viewKeyPrefix) {
		return fmt.Errorf("invalid view key prefix: %w", ErrMalformedInput)
	}

	data, err := internal.ASCIIDecode([]byte(strings.TrimPrefix(s, viewKeyPrefix)))
	if err != nil {
		return fmt.Errorf("invalid view key: %w", ErrMalformedInput)
	}

	return vk.UnmarshalBinary(data)
}

var (
	_ encoding.BinaryMarshaler   = &ViewKey{}
	_ encoding.BinaryUnmarshaler = &ViewKey{}
	_ encoding.TextMarshaler     = &ViewKey{}
	_ encoding.TextUnmarshaler   = &ViewKey{}
	_ fmt.Stringer               = &ViewKey{}
)
