package sealbox

import (
	"github.com/gtank/ristretto255"
)

// Decrypt decrypts the given ciphertext with the given view key, returning the original plaintext.
//
// The authentication tag is verified in constant time before any unmasking; if the view key does
// not match the address the ciphertext was encrypted to, or if any part of the ciphertext has been
// altered, Decrypt returns ErrAuthenticationFailed and nothing else about the failure.
func Decrypt(ct *Ciphertext, vk *ViewKey) ([]byte, error) {
	// A zero-value ciphertext carries no ephemeral element.
	if ct.r == nil {
		return nil, ErrMalformedCiphertext
	}

	// Recompute the shared secret: d*R == d*(r*G) == r*(d*G) == r*A.
	s := ristretto255.NewElement().ScalarMult(vk.d, ct.r)
	q := ristretto255.NewElement().ScalarBaseMult(vk.d)

	// Verify the tag before touching the masked scalars.
	if err := authProtocol(s, ct.r, q, ct.size, ct.c).RecvMAC(ct.mac[:]); err != nil {
		return nil, ErrAuthenticationFailed
	}

	// Regenerate the mask stream and unmask the plaintext scalars.
	masks := maskStream(s, ct.r, q, len(ct.c))

	m := make([]*ristretto255.Scalar, len(ct.c))
	for i := range m {
		m[i] = ristretto255.NewScalar().Subtract(ct.c[i], masks[i])
	}

	return unpackScalars(m, ct.size), nil
}
