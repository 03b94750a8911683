// Package service provides the cryptographic services behind secret storage:
// the AEAD envelope used for payloads at rest and the process-wide key provider.
package service

// Envelope defines authenticated encryption of a single opaque payload into a
// self-contained, text-safe blob and the inverse operation.
//
// Implementations are stateless after construction and safe for unlimited
// concurrent use.
type Envelope interface {
	// Encrypt seals plaintext under the envelope key with a fresh random
	// nonce and returns the base64-encoded blob nonce(12) || tag(16) || data.
	// Encrypting the same plaintext twice produces different blobs.
	Encrypt(plaintext []byte) (string, error)

	// Decrypt opens a blob produced by Encrypt and returns the exact original
	// plaintext. Returns domain.ErrDecryptionFailed if the blob is malformed,
	// was tampered with, or was sealed under a different key.
	Decrypt(blob string) ([]byte, error)
}
