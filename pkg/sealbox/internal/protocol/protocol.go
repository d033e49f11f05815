// Package protocol provides a thin wrapper around STROBE for the domain-separated protocols
// sealbox uses: scalar derivation, mask generation, and authentication.
//
// Each protocol is initialized with its own name at the 256-bit security level, so output from
// one protocol can never be confused with output from another.
package protocol

import (
	"encoding/binary"

	"github.com/gtank/ristretto255"
	"github.com/sammyne/strobe"
	"github.com/sealbox/sealbox/pkg/sealbox/internal"
)

// Protocol is a STROBE protocol instance.
type Protocol struct {
	s *strobe.Strobe
}

// New instantiates a new protocol with the given name.
func New(name string) *Protocol {
	s, err := strobe.New(name, strobe.Bit256)
	if err != nil {
		panic(err)
	}

	return &Protocol{s: s}
}

// MetaAD includes the given data in the protocol transcript as metadata.
func (p *Protocol) MetaAD(data []byte) {
	if err := p.s.AD(data, metaOpts); err != nil {
		panic(err)
	}
}

// AD includes the given data in the protocol transcript.
func (p *Protocol) AD(data []byte) {
	if err := p.s.AD(data, defaultOpts); err != nil {
		panic(err)
	}
}

// KEY keys the protocol with a copy of the given key.
func (p *Protocol) KEY(key []byte) {
	k := make([]byte, len(key))
	copy(k, key)

	if err := p.s.KEY(k, false); err != nil {
		panic(err)
	}
}

// PRF appends n bytes of PRF output to dst and returns the result.
func (p *Protocol) PRF(dst []byte, n int) []byte {
	ret, out := internal.SliceForAppend(dst, n)

	if err := p.s.PRF(out, false); err != nil {
		panic(err)
	}

	return ret
}

// PRFScalar returns a ristretto255 scalar mapped from 64 bytes of PRF output.
func (p *Protocol) PRFScalar() *ristretto255.Scalar {
	var buf [internal.UniformBytestringSize]byte

	return ristretto255.NewScalar().FromUniformBytes(p.PRF(buf[:0], internal.UniformBytestringSize))
}

// SendMAC appends a MAC of the protocol transcript to dst and returns the result.
func (p *Protocol) SendMAC(dst []byte) []byte {
	ret, out := internal.SliceForAppend(dst, internal.MACSize)

	if err := p.s.SendMAC(out, defaultOpts); err != nil {
		panic(err)
	}

	return ret
}

// RecvMAC compares the given MAC against the protocol transcript in constant time, returning an
// error if the two do not match.
func (p *Protocol) RecvMAC(mac []byte) error {
	m := make([]byte, len(mac))
	copy(m, mac)

	return p.s.RecvMAC(m, defaultOpts)
}

// Clone returns an exact copy of the protocol's current state.
func (p *Protocol) Clone() *Protocol {
	return &Protocol{s: p.s.Clone()}
}

// LittleEndianU32 returns n as a 32-bit little endian bit string.
func LittleEndianU32(n int) []byte {
	var b [4]byte

	binary.LittleEndian.PutUint32(b[:], uint32(n))

	return b[:]
}

//nolint:gochecknoglobals // constants
var (
	defaultOpts = &strobe.Options{}
	metaOpts    = &strobe.Options{Meta: true}
)
