package domain

import (
	"github.com/controleapp/inventory/internal/errors"
)

// Cryptographic error definitions.
var (
	// ErrInvalidKeySize indicates the encryption key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.New("key must be exactly 32 bytes")

	// ErrUnsupportedAlgorithm indicates an unknown encryption algorithm was requested.
	ErrUnsupportedAlgorithm = errors.New("unsupported encryption algorithm")

	// ErrDecryptionFailed indicates the envelope failed authentication during
	// decryption: the blob was tampered with, truncated, or encrypted under a
	// different key. No plaintext is ever returned alongside this error.
	ErrDecryptionFailed = errors.Wrap(errors.ErrIntegrity, "decryption failed")
)
