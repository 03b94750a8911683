package app

import (
	"fmt"

	authDomain "github.com/controleapp/inventory/internal/auth/domain"
	authHTTP "github.com/controleapp/inventory/internal/auth/http"
	authRepository "github.com/controleapp/inventory/internal/auth/repository"
	authService "github.com/controleapp/inventory/internal/auth/service"
	authUseCase "github.com/controleapp/inventory/internal/auth/usecase"
)

// devUser is a development credential seeded into the in-process user
// directory at startup.
type devUser struct {
	id       string
	email    string
	name     string
	role     authDomain.Role
	password string
}

// devUsers are the development accounts available in local auth mode.
var devUsers = []devUser{
	{id: "usr_admin", email: "admin@controle.local", name: "Administrador", role: authDomain.RoleAdmin, password: "Admin@123"},
	{id: "usr_editor", email: "editor@controle.local", name: "Editor", role: authDomain.RoleEditor, password: "Editor@123"},
	{id: "usr_reader", email: "leitor@controle.local", name: "Leitor", role: authDomain.RoleReader, password: "Leitor@123"},
}

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// TokenAuthority returns the token authority selected by AUTH_PROVIDER.
func (c *Container) TokenAuthority() (authService.TokenAuthority, error) {
	var err error
	c.tokenAuthorityInit.Do(func() {
		c.tokenAuthority, err = c.initTokenAuthority()
		if err != nil {
			c.initErrors["tokenAuthority"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenAuthority"]; exists {
		return nil, storedErr
	}
	return c.tokenAuthority, nil
}

// UserRepository returns the user repository seeded with the development accounts.
func (c *Container) UserRepository() (authUseCase.UserRepository, error) {
	var err error
	c.userRepositoryInit.Do(func() {
		c.userRepository, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepository"]; exists {
		return nil, storedErr
	}
	return c.userRepository, nil
}

// AuthUseCase returns the authentication use case.
func (c *Container) AuthUseCase() (*authUseCase.AuthUseCase, error) {
	var err error
	c.authUseCaseInit.Do(func() {
		c.authUseCase, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// AuthHandler returns the HTTP handler for authentication operations.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	var err error
	c.authHandlerInit.Do(func() {
		c.authHandler, err = c.initAuthHandler()
		if err != nil {
			c.initErrors["authHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.authHandler, nil
}

// initTokenAuthority creates the token authority based on the configured provider.
func (c *Container) initTokenAuthority() (authService.TokenAuthority, error) {
	switch c.config.AuthProvider {
	case "local":
		return authService.NewHMACTokenService(c.config.TokenSecret), nil
	case "delegated":
		if c.config.AuthProviderURL == "" {
			return nil, fmt.Errorf("AUTH_PROVIDER_URL is required when AUTH_PROVIDER is delegated")
		}
		return authService.NewDelegatedTokenService(
			c.config.AuthProviderURL,
			c.config.AuthProviderAPIKey,
			c.Logger(),
		), nil
	default:
		return nil, fmt.Errorf("unsupported auth provider: %s", c.config.AuthProvider)
	}
}

// initUserRepository creates the in-process user repository with the
// development accounts hashed at startup.
func (c *Container) initUserRepository() (authUseCase.UserRepository, error) {
	passwords := c.PasswordService()

	credentials := make([]authDomain.Credential, 0, len(devUsers))
	for _, user := range devUsers {
		hash, err := passwords.Hash(user.password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", user.email, err)
		}

		credentials = append(credentials, authDomain.Credential{
			User: authDomain.User{
				ID:    user.id,
				Email: user.email,
				Name:  user.name,
				Role:  user.role,
			},
			PasswordHash: hash,
		})
	}

	return authRepository.NewMemoryUserRepository(credentials), nil
}

// initAuthUseCase creates the authentication use case with all its dependencies.
func (c *Container) initAuthUseCase() (*authUseCase.AuthUseCase, error) {
	userRepository, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for auth use case: %w", err)
	}

	tokenAuthority, err := c.TokenAuthority()
	if err != nil {
		return nil, fmt.Errorf("failed to get token authority for auth use case: %w", err)
	}

	recorder, err := c.Recorder()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit recorder for auth use case: %w", err)
	}

	return authUseCase.NewAuthUseCase(
		userRepository,
		c.PasswordService(),
		tokenAuthority,
		recorder,
		c.config.TokenTTL,
	), nil
}

// initAuthHandler creates the authentication HTTP handler.
func (c *Container) initAuthHandler() (*authHTTP.AuthHandler, error) {
	authUC, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for auth handler: %w", err)
	}

	return authHTTP.NewAuthHandler(authUC, c.Logger()), nil
}
