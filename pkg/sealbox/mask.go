package sealbox

import (
	"github.com/gtank/ristretto255"
	"github.com/sealbox/sealbox/pkg/sealbox/internal/protocol"
)

// maskStream derives n masking scalars from the shared secret s via the `sealbox.mask` protocol,
// bound to the ephemeral element r and the recipient address q. Each PRF output advances the
// protocol state, so the stream never repeats within a ciphertext.
func maskStream(s, r, q *ristretto255.Element, n int) []*ristretto255.Scalar {
	p := protocol.New("sealbox.mask")
	p.KEY(s.Encode(nil))
	p.AD(r.Encode(nil))
	p.AD(q.Encode(nil))

	masks := make([]*ristretto255.Scalar, n)
	for i := range masks {
		masks[i] = p.PRFScalar()
	}

	return masks
}

// authProtocol returns the `sealbox.mac` protocol keyed with the shared secret s and bound to the
// ephemeral element r, the recipient address q, the plaintext byte length, and every masked
// scalar. The tag it produces detects tampering with any of them, as well as a wrong view key.
func authProtocol(s, r, q *ristretto255.Element, size int, c []*ristretto255.Scalar) *protocol.Protocol {
	p := protocol.New("sealbox.mac")
	p.KEY(s.Encode(nil))
	p.AD(r.Encode(nil))
	p.AD(q.Encode(nil))
	p.MetaAD(protocol.LittleEndianU32(size))

	for _, ci := range c {
		p.AD(ci.Encode(nil))
	}

	return p
}
