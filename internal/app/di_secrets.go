package app

import (
	"fmt"

	"github.com/controleapp/inventory/internal/inventory"
	secretsHTTP "github.com/controleapp/inventory/internal/secrets/http"
	secretsRepository "github.com/controleapp/inventory/internal/secrets/repository"
	secretsUseCase "github.com/controleapp/inventory/internal/secrets/usecase"
)

// devApps are the applications registered in the in-process directory at
// startup. Secret writes are refused for unregistered applications.
var devApps = []inventory.App{
	{ID: "app_controle", Name: "Controle"},
	{ID: "app_demo", Name: "Demo"},
}

// AppDirectory returns the application directory used for secret owner checks.
func (c *Container) AppDirectory() *inventory.MemoryDirectory {
	c.appDirectoryInit.Do(func() {
		c.appDirectory = inventory.NewMemoryDirectory()
		for _, app := range devApps {
			c.appDirectory.Register(app)
		}
	})
	return c.appDirectory
}

// SecretRepository returns the secret record repository based on the store driver.
func (c *Container) SecretRepository() (secretsUseCase.SecretRepository, error) {
	var err error
	c.secretRepoInit.Do(func() {
		c.secretRepository, err = c.initSecretRepository()
		if err != nil {
			c.initErrors["secretRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["secretRepository"]; exists {
		return nil, storedErr
	}
	return c.secretRepository, nil
}

// SecretUseCase returns the secret use case.
func (c *Container) SecretUseCase() (secretsUseCase.SecretUseCase, error) {
	var err error
	c.secretUseCaseInit.Do(func() {
		c.secretUseCase, err = c.initSecretUseCase()
		if err != nil {
			c.initErrors["secretUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["secretUseCase"]; exists {
		return nil, storedErr
	}
	return c.secretUseCase, nil
}

// SecretHandler returns the HTTP handler for secret record operations.
func (c *Container) SecretHandler() (*secretsHTTP.SecretHandler, error) {
	var err error
	c.secretHandlerInit.Do(func() {
		c.secretHandler, err = c.initSecretHandler()
		if err != nil {
			c.initErrors["secretHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["secretHandler"]; exists {
		return nil, storedErr
	}
	return c.secretHandler, nil
}

// initSecretRepository creates the secret record repository based on the store driver.
func (c *Container) initSecretRepository() (secretsUseCase.SecretRepository, error) {
	switch c.config.StoreDriver {
	case "memory":
		return secretsRepository.NewMemorySecretRepository(), nil
	case "postgres":
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for secret repository: %w", err)
		}
		return secretsRepository.NewPostgreSQLSecretRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", c.config.StoreDriver)
	}
}

// initSecretUseCase creates the secret use case with all its dependencies.
func (c *Container) initSecretUseCase() (secretsUseCase.SecretUseCase, error) {
	repository, err := c.SecretRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret repository for secret use case: %w", err)
	}

	envelope, err := c.Envelope()
	if err != nil {
		return nil, fmt.Errorf("failed to get envelope for secret use case: %w", err)
	}

	baseUseCase := secretsUseCase.NewSecretUseCase(repository, c.AppDirectory(), envelope)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for secret use case: %w", err)
		}
		return secretsUseCase.NewSecretUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initSecretHandler creates the secret HTTP handler with all its dependencies.
func (c *Container) initSecretHandler() (*secretsHTTP.SecretHandler, error) {
	secretUC, err := c.SecretUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret use case for secret handler: %w", err)
	}

	recorder, err := c.Recorder()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit recorder for secret handler: %w", err)
	}

	return secretsHTTP.NewSecretHandler(secretUC, recorder, c.Logger()), nil
}
