package service

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/controleapp/inventory/internal/errors"

	cryptoDomain "github.com/controleapp/inventory/internal/crypto/domain"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestNewEnvelope(t *testing.T) {
	t.Run("InvalidKeySize", func(t *testing.T) {
		_, err := NewEnvelope(make([]byte, 16), cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})

	t.Run("UnsupportedAlgorithm", func(t *testing.T) {
		_, err := NewEnvelope(testKey(t), cryptoDomain.Algorithm("des"))
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
	})
}

func TestEnvelopeCipher_RoundTrip(t *testing.T) {
	for _, alg := range []cryptoDomain.Algorithm{cryptoDomain.AESGCM, cryptoDomain.ChaCha20} {
		t.Run(string(alg), func(t *testing.T) {
			envelope, err := NewEnvelope(testKey(t), alg)
			require.NoError(t, err)

			plaintexts := [][]byte{
				[]byte("sk-test-123"),
				[]byte(""),
				[]byte("multi\nline\npayload with spaces"),
				make([]byte, 4096),
			}

			for _, plaintext := range plaintexts {
				blob, err := envelope.Encrypt(plaintext)
				require.NoError(t, err)

				decrypted, err := envelope.Decrypt(blob)
				require.NoError(t, err)
				assert.Equal(t, plaintext, decrypted)
			}
		})
	}
}

func TestEnvelopeCipher_NonceFreshness(t *testing.T) {
	envelope, err := NewEnvelope(testKey(t), cryptoDomain.AESGCM)
	require.NoError(t, err)

	plaintext := []byte("same plaintext")
	first, err := envelope.Encrypt(plaintext)
	require.NoError(t, err)
	second, err := envelope.Encrypt(plaintext)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestEnvelopeCipher_BlobLayout(t *testing.T) {
	envelope, err := NewEnvelope(testKey(t), cryptoDomain.AESGCM)
	require.NoError(t, err)

	plaintext := []byte("layout-check")
	blob, err := envelope.Encrypt(plaintext)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)

	// nonce(12) || tag(16) || ciphertext(len(plaintext))
	assert.Len(t, raw, nonceSize+tagSize+len(plaintext))
}

func TestEnvelopeCipher_TamperDetection(t *testing.T) {
	envelope, err := NewEnvelope(testKey(t), cryptoDomain.AESGCM)
	require.NoError(t, err)

	blob, err := envelope.Encrypt([]byte("tamper-me"))
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)

	// Flipping any single bit anywhere in the blob must fail decryption.
	for byteIdx := 0; byteIdx < len(raw); byteIdx++ {
		for bit := 0; bit < 8; bit++ {
			tampered := make([]byte, len(raw))
			copy(tampered, raw)
			tampered[byteIdx] ^= 1 << bit

			_, err := envelope.Decrypt(base64.StdEncoding.EncodeToString(tampered))
			assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
			assert.ErrorIs(t, err, apperrors.ErrIntegrity)
		}
	}
}

func TestEnvelopeCipher_WrongKey(t *testing.T) {
	first, err := NewEnvelope(testKey(t), cryptoDomain.AESGCM)
	require.NoError(t, err)
	second, err := NewEnvelope(testKey(t), cryptoDomain.AESGCM)
	require.NoError(t, err)

	blob, err := first.Encrypt([]byte("wrong-key-check"))
	require.NoError(t, err)

	_, err = second.Decrypt(blob)
	assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
}

func TestEnvelopeCipher_MalformedBlob(t *testing.T) {
	envelope, err := NewEnvelope(testKey(t), cryptoDomain.AESGCM)
	require.NoError(t, err)

	cases := []string{
		"",
		"not-base64!!!",
		base64.StdEncoding.EncodeToString([]byte("short")),
	}

	for _, blob := range cases {
		_, err := envelope.Decrypt(blob)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	}
}
