package sealbox

import (
	"bytes"
	"crypto/rand"
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"
)

// FuzzCiphertext_UnmarshalBinary feeds arbitrary bytes to the ciphertext decoder. Anything the
// decoder accepts must re-encode to the same bytes and must decrypt without panicking.
func FuzzCiphertext_UnmarshalBinary(f *testing.F) {
	sk, err := GeneratePrivateKey(rand.Reader)
	if err != nil {
		f.Fatal(err)
	}

	vk := sk.ViewKey()

	ct, err := Encrypt(rand.Reader, []byte("seed corpus message"), sk.Address())
	if err != nil {
		f.Fatal(err)
	}

	seed, err := ct.MarshalBinary()
	if err != nil {
		f.Fatal(err)
	}

	f.Add(seed)
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		var in Ciphertext
		if err := in.UnmarshalBinary(data); err != nil {
			t.Skip()
		}

		out, err := in.MarshalBinary()
		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(data, out) {
			t.Fatalf("re-encoded ciphertext differs: %x != %x", data, out)
		}

		// Almost certainly fails to authenticate; it must never panic.
		_, _ = Decrypt(&in, vk)
	})
}

// FuzzRoundTrip derives plaintexts and ephemeral randomness from the fuzzer and checks that
// decryption inverts encryption for all of them.
func FuzzRoundTrip(f *testing.F) {
	sk, err := GeneratePrivateKey(rand.Reader)
	if err != nil {
		f.Fatal(err)
	}

	f.Add([]byte("sealbox round trip"))

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		plaintext, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		if len(plaintext) > MaxPlaintextSize {
			plaintext = plaintext[:MaxPlaintextSize]
		}

		seedByte, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}

		seed := bytes.Repeat([]byte{seedByte}, 64)

		ct, err := Encrypt(bytes.NewReader(seed), plaintext, sk.Address())
		if err != nil {
			t.Fatal(err)
		}

		got, err := Decrypt(ct, sk.ViewKey())
		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(plaintext, got) {
			t.Fatalf("round trip failed: %x != %x", plaintext, got)
		}
	})
}
