package sealbox

import (
	"encoding"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/gtank/ristretto255"
	"github.com/sealbox/sealbox/pkg/sealbox/internal"
)

const (
	// MaxPlaintextElements is the maximum number of masked scalars in a single ciphertext.
	MaxPlaintextElements = 128

	// MaxPlaintextSize is the maximum plaintext length in bytes for a single ciphertext.
	MaxPlaintextSize = MaxPlaintextElements * internal.ChunkSize

	ciphertextOverhead = internal.ElementSize + 4 + internal.MACSize
)

// Ciphertext is the self-contained output of Encrypt: an ephemeral element, a masked scalar per
// plaintext chunk, and an authentication tag bound to the recipient address and the message.
//
// Its binary form is `R || len(u32, little-endian) || c_1 .. c_n || tag`; its text form is the
// binary form, hex-encoded.
type Ciphertext struct {
	r    *ristretto255.Element
	c    []*ristretto255.Scalar
	size int
	mac  [internal.MACSize]byte
}

// Equals returns true if the given Ciphertext is equal to the receiver.
func (ct *Ciphertext) Equals(other *Ciphertext) bool {
	a, _ := ct.MarshalBinary()
	b, _ := other.MarshalBinary()

	return string(a) == string(b)
}

// String returns the ciphertext as hex text.
func (ct *Ciphertext) String() string {
	text, err := ct.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

// MarshalBinary encodes the ciphertext into its binary form.
func (ct *Ciphertext) MarshalBinary() (data []byte, err error) {
	if ct.r == nil {
		return nil, ErrMalformedCiphertext
	}

	data = make([]byte, 0, ciphertextOverhead+len(ct.c)*internal.ScalarSize)
	data = ct.r.Encode(data)
	data = binary.LittleEndian.AppendUint32(data, uint32(ct.size))

	for _, ci := range ct.c {
		data = ci.Encode(data)
	}

	return append(data, ct.mac[:]...), nil
}

// UnmarshalBinary decodes the ciphertext from its binary form.
func (ct *Ciphertext) UnmarshalBinary(data []byte) error {
	if len(data) < ciphertextOverhead || (len(data)-ciphertextOverhead)%internal.ScalarSize != 0 {
		return fmt.Errorf("invalid ciphertext length: %w", ErrMalformedCiphertext)
	}

	r := ristretto255.NewElement()
	if err := r.Decode(data[:internal.ElementSize]); err != nil {
		return fmt.Errorf("invalid ephemeral element: %w", ErrMalformedCiphertext)
	}

	size := int(binary.LittleEndian.Uint32(data[internal.ElementSize:]))
	n := (len(data) - ciphertextOverhead) / internal.ScalarSize

	if size > MaxPlaintextSize || chunkCount(size) != n {
		return fmt.Errorf("invalid plaintext length: %w", ErrMalformedCiphertext)
	}

	c := make([]*ristretto255.Scalar, n)
	rest := data[internal.ElementSize+4:]

	for i := range c {
		c[i] = ristretto255.NewScalar()
		if err := c[i].Decode(rest[:internal.ScalarSize]); err != nil {
			return fmt.Errorf("invalid masked element: %w", ErrMalformedCiphertext)
		}

		rest = rest[internal.ScalarSize:]
	}

	ct.r = r
	ct.c = c
	ct.size = size
	copy(ct.mac[:], rest)

	return nil
}

// MarshalText encodes the ciphertext into hex text and returns the result.
func (ct *Ciphertext) MarshalText() (text []byte, err error) {
	data, err := ct.MarshalBinary()
	if err != nil {
		return nil, err
	}

	text = make([]byte, hex.EncodedLen(len(data)))
	hex.Encode(text, data)

	return
}

// UnmarshalText decodes the results of MarshalText and updates the receiver to contain the decoded
// ciphertext.
func (ct *Ciphertext) UnmarshalText(text []byte) error {
	data := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(data, text); err != nil {
		return fmt.Errorf("invalid ciphertext hex: %w", ErrMalformedCiphertext)
	}

	return ct.UnmarshalBinary(data)
}

// chunkCount returns the number of scalars required to pack size bytes of plaintext.
func chunkCount(size int) int {
	return (size + internal.ChunkSize - 1) / internal.ChunkSize
}

// packScalars packs the plaintext into scalars, 31 little-endian bytes per scalar. All resulting
// values are smaller than the group order and thus canonical.
func packScalars(plaintext []byte) []*ristretto255.Scalar {
	m := make([]*ristretto255.Scalar, 0, chunkCount(len(plaintext)))

	for len(plaintext) > 0 {
		n := internal.ChunkSize
		if len(plaintext) < n {
			n = len(plaintext)
		}

		var buf [internal.ScalarSize]byte
		copy(buf[:], plaintext[:n])

		s := ristretto255.NewScalar()
		internal.Must(s.Decode(buf[:]))

		m = append(m, s)
		plaintext = plaintext[n:]
	}

	return m
}

// unpackScalars reverses packScalars, recovering size bytes of plaintext.
func unpackScalars(m []*ristretto255.Scalar, size int) []byte {
	plaintext := make([]byte, 0, len(m)*internal.ChunkSize)

	for _, s := range m {
		plaintext = append(plaintext, s.Encode(nil)[:internal.ChunkSize]...)
	}

	return plaintext[:size]
}

var (
	_ encoding.BinaryMarshaler   = &Ciphertext{}
	_ encoding.BinaryUnmarshaler = &Ciphertext{}
	_ encoding.TextMarshaler     = &Ciphertext{}
	_ encoding.TextUnmarshaler   = &Ciphertext{}
	_ fmt.Stringer               = &Ciphertext{}
)
