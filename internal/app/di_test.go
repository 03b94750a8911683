package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/controleapp/inventory/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:          "127.0.0.1",
		ServerPort:          3333,
		LogLevel:            "error",
		EncryptionAlgorithm: "aes-gcm",
		TokenSecret:         "test-secret",
		TokenTTL:            8 * time.Hour,
		AuthProvider:        "local",
		StoreDriver:         "memory",
		AuditBufferSize:     16,
		AuditHistorySize:    100,
		MetricsNamespace:    "inventory",
		MetricsPort:         3334,
	}
}

func TestContainer(t *testing.T) {
	t.Run("builds the full http server with the memory driver", func(t *testing.T) {
		container := NewContainer(testConfig())
		defer func() {
			require.NoError(t, container.Shutdown(context.Background()))
		}()

		server, err := container.HTTPServer()
		require.NoError(t, err)
		require.NotNil(t, server)
		assert.NotNil(t, server.GetHandler())
	})

	t.Run("returns the same instance on repeated access", func(t *testing.T) {
		container := NewContainer(testConfig())
		defer func() {
			require.NoError(t, container.Shutdown(context.Background()))
		}()

		first, err := container.Recorder()
		require.NoError(t, err)
		second, err := container.Recorder()
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("seeds the development users", func(t *testing.T) {
		container := NewContainer(testConfig())

		userRepo, err := container.UserRepository()
		require.NoError(t, err)

		credential, err := userRepo.GetByEmail(context.Background(), "admin@controle.local")
		require.NoError(t, err)
		assert.Equal(t, "usr_admin", credential.User.ID)
		assert.True(t, container.PasswordService().Compare("Admin@123", credential.PasswordHash))
	})

	t.Run("rejects an unsupported store driver", func(t *testing.T) {
		cfg := testConfig()
		cfg.StoreDriver = "cassandra"
		container := NewContainer(cfg)

		_, err := container.SecretRepository()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported store driver")
	})

	t.Run("rejects an unsupported auth provider", func(t *testing.T) {
		cfg := testConfig()
		cfg.AuthProvider = "saml"
		container := NewContainer(cfg)

		_, err := container.TokenAuthority()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported auth provider")
	})

	t.Run("requires a provider url in delegated mode", func(t *testing.T) {
		cfg := testConfig()
		cfg.AuthProvider = "delegated"
		container := NewContainer(cfg)

		_, err := container.TokenAuthority()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AUTH_PROVIDER_URL")
	})

	t.Run("rejects an unsupported encryption algorithm", func(t *testing.T) {
		cfg := testConfig()
		cfg.EncryptionAlgorithm = "des"
		container := NewContainer(cfg)

		_, err := container.Envelope()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported encryption algorithm")
	})

	t.Run("metrics disabled yields no metrics server", func(t *testing.T) {
		container := NewContainer(testConfig())

		metricsServer, err := container.MetricsServer()
		require.NoError(t, err)
		assert.Nil(t, metricsServer)
	})

	t.Run("metrics enabled yields a metrics server", func(t *testing.T) {
		cfg := testConfig()
		cfg.MetricsEnabled = true
		container := NewContainer(cfg)
		defer func() {
			require.NoError(t, container.Shutdown(context.Background()))
		}()

		metricsServer, err := container.MetricsServer()
		require.NoError(t, err)
		require.NotNil(t, metricsServer)
		assert.NotNil(t, metricsServer.GetHandler())
	})
}
