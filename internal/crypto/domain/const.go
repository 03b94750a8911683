// Package domain defines cryptographic domain types and errors for the
// secret payload envelope.
package domain

// Algorithm represents the AEAD algorithm used for secret payload encryption.
//
// Both supported algorithms use a 256-bit key, a 12-byte nonce, and a 16-byte
// authentication tag, so envelopes produced by either share the exact same
// layout. AES-GCM is the default; ChaCha20-Poly1305 is preferred on hosts
// without AES-NI hardware acceleration.
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// ParseAlgorithm maps a configuration string onto the closed Algorithm set.
func ParseAlgorithm(s string) (Algorithm, bool) {
	switch Algorithm(s) {
	case AESGCM, ChaCha20:
		return Algorithm(s), true
	default:
		return "", false
	}
}
