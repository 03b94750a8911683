package app

import (
	"fmt"

	cryptoDomain "github.com/controleapp/inventory/internal/crypto/domain"
	cryptoService "github.com/controleapp/inventory/internal/crypto/service"
)

// KeyProvider returns the encryption key provider.
func (c *Container) KeyProvider() *cryptoService.KeyProvider {
	c.keyProviderInit.Do(func() {
		c.keyProvider = cryptoService.NewKeyProvider(c.config.EncryptionKeyHex, c.Logger())
	})
	return c.keyProvider
}

// Envelope returns the payload envelope built from the configured algorithm
// and the resolved encryption key.
func (c *Container) Envelope() (cryptoService.Envelope, error) {
	var err error
	c.envelopeInit.Do(func() {
		c.envelope, err = c.initEnvelope()
		if err != nil {
			c.initErrors["envelope"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["envelope"]; exists {
		return nil, storedErr
	}
	return c.envelope, nil
}

// initEnvelope creates the payload envelope cipher.
func (c *Container) initEnvelope() (cryptoService.Envelope, error) {
	algorithm, ok := cryptoDomain.ParseAlgorithm(c.config.EncryptionAlgorithm)
	if !ok {
		return nil, fmt.Errorf("unsupported encryption algorithm: %s", c.config.EncryptionAlgorithm)
	}

	envelope, err := cryptoService.NewEnvelope(c.KeyProvider().Key(), algorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to create envelope cipher: %w", err)
	}

	return envelope, nil
}
