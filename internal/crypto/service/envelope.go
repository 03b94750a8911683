package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/controleapp/inventory/internal/crypto/domain"
)

const (
	// nonceSize is the AEAD nonce length shared by both supported algorithms.
	nonceSize = 12
	// tagSize is the authentication tag length shared by both supported algorithms.
	tagSize = 16
)

// EnvelopeCipher implements the Envelope interface over an AEAD primitive
// (AES-256-GCM or ChaCha20-Poly1305).
//
// The wire layout is nonce(12) || tag(16) || ciphertext, base64-encoded for
// storage as a single string field. Note the tag precedes the ciphertext in
// the blob while Go's AEAD Seal appends it after; Encrypt and Decrypt reorder
// the segments accordingly.
type EnvelopeCipher struct {
	aead cipher.AEAD
}

// NewEnvelope creates an EnvelopeCipher for the given 32-byte key and algorithm.
// Returns ErrInvalidKeySize if the key is not 32 bytes or ErrUnsupportedAlgorithm
// if the algorithm is unknown.
func NewEnvelope(key []byte, alg cryptoDomain.Algorithm) (*EnvelopeCipher, error) {
	if len(key) != 32 {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	var aead cipher.AEAD
	var err error

	switch alg {
	case cryptoDomain.AESGCM:
		var block cipher.Block
		block, err = aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create AES cipher: %w", err)
		}
		aead, err = cipher.NewGCM(block)
		if err != nil {
			return nil, fmt.Errorf("failed to create GCM: %w", err)
		}
	case cryptoDomain.ChaCha20:
		aead, err = chacha20poly1305.New(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
		}
	default:
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}

	return &EnvelopeCipher{aead: aead}, nil
}

// Encrypt seals plaintext with a fresh 12-byte random nonce and returns the
// base64-encoded envelope blob. Nonces are never reused under the same key.
func (e *EnvelopeCipher) Encrypt(plaintext []byte) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	// sealed = ciphertext || tag
	sealed := e.aead.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - tagSize

	blob := make([]byte, 0, nonceSize+len(sealed))
	blob = append(blob, nonce...)
	blob = append(blob, sealed[split:]...)
	blob = append(blob, sealed[:split]...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt splits a blob at the fixed offsets (12, 28, remainder), verifies the
// authentication tag, and returns the original plaintext. Any failure
// (malformed encoding, truncated blob, tag mismatch) yields ErrDecryptionFailed.
func (e *EnvelopeCipher) Decrypt(blob string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	if len(raw) < nonceSize+tagSize {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	nonce := raw[:nonceSize]
	tag := raw[nonceSize : nonceSize+tagSize]
	data := raw[nonceSize+tagSize:]

	// Reassemble the ciphertext || tag order expected by Open.
	sealed := make([]byte, 0, len(data)+tagSize)
	sealed = append(sealed, data...)
	sealed = append(sealed, tag...)

	plaintext, err := e.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	return plaintext, nil
}
