package service

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync"
)

// fallbackKeyMaterial seeds the derived key used when no operator-supplied
// key is configured. Deployments sharing this fallback share the same key.
const fallbackKeyMaterial = "dev-key-change-me"

// KeyProvider resolves the single 256-bit key used by the payload envelope.
//
// The key is resolved exactly once on first access and is immutable for the
// process lifetime; resolution is safe under concurrent first access. The key
// value itself is never logged.
type KeyProvider struct {
	hexKey string
	logger *slog.Logger

	once sync.Once
	key  []byte
}

// NewKeyProvider creates a KeyProvider from the operator-supplied hex key
// configuration value, which may be empty.
func NewKeyProvider(hexKey string, logger *slog.Logger) *KeyProvider {
	return &KeyProvider{
		hexKey: hexKey,
		logger: logger,
	}
}

// Key returns the resolved 32-byte encryption key.
//
// A configuration value of exactly 64 hexadecimal characters is decoded
// directly. Anything else falls back to a key derived from a fixed string,
// which is predictable across deployments and only acceptable outside
// production; the fallback is logged as insecure.
func (p *KeyProvider) Key() []byte {
	p.once.Do(func() {
		if len(p.hexKey) == 64 {
			decoded, err := hex.DecodeString(p.hexKey)
			if err == nil {
				p.key = decoded
				return
			}
			p.logger.Warn("SECRETS_ENCRYPTION_KEY_HEX is not valid hex, falling back to derived key")
		}

		sum := sha256.Sum256([]byte(fallbackKeyMaterial))
		p.key = sum[:]
		p.logger.Warn("using insecure derived encryption key; " +
			"set SECRETS_ENCRYPTION_KEY_HEX to a 64-hex-character value for production")
	})
	return p.key
}
