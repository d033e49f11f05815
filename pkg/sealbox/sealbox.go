// Package sealbox implements an address-keyed authenticated encryption scheme.
//
// A PrivateKey is a 64-byte uniform seed. From it, a ViewKey scalar is derived via the
// `sealbox.scaldf.view` STROBE protocol, and an Address is the view-key scalar multiplied by the
// ristretto255 generator. Anyone holding an Address can encrypt a message to it; only the holder
// of the matching ViewKey can decrypt.
//
// Encryption draws a fresh ephemeral scalar r, publishes R = r*G, and computes the shared secret
// S = r*A. The plaintext is packed into scalars, 31 bytes per scalar, and each is masked by adding
// a scalar from the `sealbox.mask` protocol keyed with S and bound to R and A. An authentication
// tag over R, A, the plaintext length, and every masked scalar is produced by the `sealbox.mac`
// protocol, also keyed with S. Decryption recomputes S = d*R, verifies the tag in constant time
// before unmasking anything, and rejects with a single generic error on any mismatch.
//
// All operations are pure functions over immutable inputs and are safe for concurrent use; the
// only shared resource is the randomness source passed to Encrypt.
package sealbox

import (
	"errors"
)

var (
	// ErrInvalidKeyEncoding is returned when a decoded scalar or group element is out of range.
	ErrInvalidKeyEncoding = errors.New("invalid key encoding")

	// ErrMalformedInput is returned when an externally supplied key string cannot be decoded.
	ErrMalformedInput = errors.New("malformed input")

	// ErrMalformedCiphertext is returned when a ciphertext cannot be parsed into valid field and
	// group elements.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrPlaintextTooLong is returned when a plaintext exceeds MaxPlaintextSize.
	ErrPlaintextTooLong = errors.New("plaintext too long")

	// ErrRandomnessUnavailable is returned when the supplied randomness source fails.
	ErrRandomnessUnavailable = errors.New("randomness unavailable")

	// ErrAuthenticationFailed is returned when a ciphertext cannot be decrypted, either due to an
	// incorrect view key or tampering. It is the only rejection reason for authenticated data.
	ErrAuthenticationFailed = errors.New("authentication failed")
)

const (
	privateKeyPrefix = "sbsk1"
	viewKeyPrefix    = "sbvk1"
	addressPrefix    = "sbox1"
)
