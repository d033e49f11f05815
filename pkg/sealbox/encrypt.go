package sealbox

import (
	"fmt"
	"io"

	"github.com/gtank/ristretto255"
	"github.com/sealbox/sealbox/pkg/sealbox/internal"
	"github.com/sealbox/sealbox/pkg/sealbox/internal/scaldf"
)

// Encrypt encrypts the given plaintext for the given address, drawing ephemeral randomness from
// the given source. The source must be cryptographically secure; reusing its output for the same
// plaintext and address breaks confidentiality.
func Encrypt(rand io.Reader, plaintext []byte, addr *Address) (*Ciphertext, error) {
	if len(plaintext) > MaxPlaintextSize {
		return nil, fmt.Errorf("plaintext of %d bytes: %w", len(plaintext), ErrPlaintextTooLong)
	}

	// Draw a uniform bytestring and map it to an ephemeral scalar.
	var seed [internal.UniformBytestringSize]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
	}

	r := scaldf.EphemeralScalar(&seed)

	// Calculate the ephemeral element and the shared secret.
	rG := ristretto255.NewElement().ScalarBaseMult(r)
	s := ristretto255.NewElement().ScalarMult(r, addr.q)

	// Pack the plaintext into scalars and mask each with the derived stream.
	m := packScalars(plaintext)
	masks := maskStream(s, rG, addr.q, len(m))

	c := make([]*ristretto255.Scalar, len(m))
	for i := range c {
		c[i] = ristretto255.NewScalar().Add(m[i], masks[i])
	}

	// Authenticate the ephemeral element, the address, the length, and the masked scalars.
	ct := &Ciphertext{r: rG, c: c, size: len(plaintext)}
	copy(ct.mac[:], authProtocol(s, rG, addr.q, ct.size, c).SendMAC(nil))

	return ct, nil
}
