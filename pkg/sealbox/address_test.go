package sealbox

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAddress_UnmarshalText(t *testing.T) {
	t.Parallel()

	sk, err := GeneratePrivateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	addr := sk.Address()

	var in Address
	if err := in.UnmarshalText([]byte(addr.String())); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "round trip", addr.String(), in.String())

	if !addr.Equals(&in) {
		t.Fatal("round-tripped address is not equal")
	}
}

func TestAddress_UnmarshalText_generator(t *testing.T) {
	t.Parallel()

	var in Address
	if err := in.UnmarshalText([]byte(addressGenerator)); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "round trip", addressGenerator, in.String())
}

func TestAddress_UnmarshalText_badPrefix(t *testing.T) {
	t.Parallel()

	var in Address
	err := in.UnmarshalText([]byte(viewKeyOne))

	assert.Equal(t, "error", ErrMalformedInput, err, cmpopts.EquateErrors())
}

func TestAddress_UnmarshalBinary_nonCanonical(t *testing.T) {
	t.Parallel()

	var in Address
	err := in.UnmarshalBinary(bytes.Repeat([]byte{0xff}, 32))

	assert.Equal(t, "error", ErrInvalidKeyEncoding, err, cmpopts.EquateErrors())
}
