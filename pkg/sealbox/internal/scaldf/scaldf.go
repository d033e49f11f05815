// Package scaldf provides the underlying STROBE protocols for sealbox's scalar derivation
// functions, which derive ristretto255 scalars from other pieces of data.
//
// Scalars are generated as follows, given a protocol name P and datum D:
//
//	INIT(P, level=256)
//	KEY(D)
//	PRF(64)
//
// The two recognized protocol identifiers are:
//
// * `sealbox.scaldf.view`, used to derive view-key scalars from private-key seeds
// * `sealbox.scaldf.ephemeral`, used to derive ephemeral scalars from caller-supplied randomness
package scaldf

import (
	"github.com/gtank/ristretto255"
	"github.com/sealbox/sealbox/pkg/sealbox/internal"
	"github.com/sealbox/sealbox/pkg/sealbox/internal/protocol"
)

// ViewScalar derives a view-key scalar from the given private-key seed. The transform is one-way:
// the seed cannot be recovered from the scalar.
func ViewScalar(seed *[internal.UniformBytestringSize]byte) *ristretto255.Scalar {
	return scalarDF("sealbox.scaldf.view", seed[:])
}

// EphemeralScalar derives an ephemeral scalar from the given uniform bytestring.
func EphemeralScalar(r *[internal.UniformBytestringSize]byte) *ristretto255.Scalar {
	return scalarDF("sealbox.scaldf.ephemeral", r[:])
}

func scalarDF(proto string, data []byte) *ristretto255.Scalar {
	var buf [internal.UniformBytestringSize]byte

	// Initialize the protocol.
	df := protocol.New(proto)

	// Key the protocol with a copy of the given data.
	df.KEY(data)

	// Generate 64 bytes of PRF output and map it to a scalar.
	return ristretto255.NewScalar().FromUniformBytes(df.PRF(buf[:0], internal.UniformBytestringSize))
}
