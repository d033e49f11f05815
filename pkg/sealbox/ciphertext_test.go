package sealbox

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func testCiphertext(t *testing.T) (*Ciphertext, *ViewKey) {
	t.Helper()

	sk, err := GeneratePrivateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	ct, err := Encrypt(rand.Reader, []byte("a boring static message"), sk.Address())
	if err != nil {
		t.Fatal(err)
	}

	return ct, sk.ViewKey()
}

func TestCiphertext_UnmarshalText(t *testing.T) {
	t.Parallel()

	ct, vk := testCiphertext(t)

	var in Ciphertext
	if err := in.UnmarshalText([]byte(ct.String())); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "round trip", ct.String(), in.String())

	plaintext, err := Decrypt(&in, vk)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "plaintext", []byte("a boring static message"), plaintext)
}

func TestCiphertext_MarshalBinary_zeroValue(t *testing.T) {
	t.Parallel()

	var in Ciphertext
	_, err := in.MarshalBinary()

	assert.Equal(t, "error", ErrMalformedCiphertext, err, cmpopts.EquateErrors())
}

func TestCiphertext_UnmarshalText_badHex(t *testing.T) {
	t.Parallel()

	var in Ciphertext
	err := in.UnmarshalText([]byte("this is not hex"))

	assert.Equal(t, "error", ErrMalformedCiphertext, err, cmpopts.EquateErrors())
}

func TestCiphertext_UnmarshalBinary_truncated(t *testing.T) {
	t.Parallel()

	ct, _ := testCiphertext(t)

	data, err := ct.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	var in Ciphertext
	err = in.UnmarshalBinary(data[:len(data)-1])

	assert.Equal(t, "error", ErrMalformedCiphertext, err, cmpopts.EquateErrors())
}

func TestCiphertext_UnmarshalBinary_badLength(t *testing.T) {
	t.Parallel()

	ct, _ := testCiphertext(t)

	data, err := ct.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	// A claimed plaintext length beyond the maximum must be rejected outright.
	binary.LittleEndian.PutUint32(data[32:], uint32(MaxPlaintextSize+1))

	var in Ciphertext
	err = in.UnmarshalBinary(data)

	assert.Equal(t, "error", ErrMalformedCiphertext, err, cmpopts.EquateErrors())
}

func TestCiphertext_UnmarshalBinary_badElement(t *testing.T) {
	t.Parallel()

	ct, _ := testCiphertext(t)

	data, err := ct.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	// All ones is not a canonical element encoding.
	for i := 0; i < 32; i++ {
		data[i] = 0xff
	}

	var in Ciphertext
	err = in.UnmarshalBinary(data)

	assert.Equal(t, "error", ErrMalformedCiphertext, err, cmpopts.EquateErrors())
}
