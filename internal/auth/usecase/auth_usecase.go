// Package usecase implements the authentication business logic: credential
// login and bearer token authentication.
package usecase

import (
	"context"
	"strings"
	"time"

	auditDomain "github.com/controleapp/inventory/internal/audit/domain"
	auditUseCase "github.com/controleapp/inventory/internal/audit/usecase"
	"github.com/controleapp/inventory/internal/auth/domain"
	authService "github.com/controleapp/inventory/internal/auth/service"
	apperrors "github.com/controleapp/inventory/internal/errors"
)

// UserRepository provides credential lookup for login.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Credential, error)
}

// AuthUseCase handles login and token authentication.
type AuthUseCase struct {
	userRepo  UserRepository
	passwords authService.PasswordService
	tokens    authService.TokenAuthority
	recorder  auditUseCase.Recorder
	tokenTTL  time.Duration
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(
	userRepo UserRepository,
	passwords authService.PasswordService,
	tokens authService.TokenAuthority,
	recorder auditUseCase.Recorder,
	tokenTTL time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		passwords: passwords,
		tokens:    tokens,
		recorder:  recorder,
		tokenTTL:  tokenTTL,
	}
}

// Login exchanges credentials for an access token. Unknown emails and wrong
// passwords both yield ErrInvalidCredentials, and every attempt is recorded
// in the audit trail as login_success or login_failed.
func (uc *AuthUseCase) Login(ctx context.Context, email string, password string) (*domain.LoginOutput, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	credential, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			uc.recordLoginFailed(email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !uc.passwords.Compare(password, credential.PasswordHash) {
		uc.recordLoginFailed(email)
		return nil, domain.ErrInvalidCredentials
	}

	user := credential.User
	token, err := uc.tokens.Issue(&user, uc.tokenTTL)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue access token")
	}

	uc.recorder.Record(auditDomain.Event{
		ActorID:    user.ID,
		ActorEmail: user.Email,
		Action:     auditDomain.ActionLoginSuccess,
		Resource:   "/v1/auth/login",
	})

	return &domain.LoginOutput{
		AccessToken: token,
		ExpiresIn:   int(uc.tokenTTL.Seconds()),
		User:        user,
	}, nil
}

// Authenticate resolves a bearer token into its user. Any verification
// failure yields ErrUnauthorized without detail.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims := uc.tokens.Verify(ctx, token)
	if claims == nil {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "invalid or expired token")
	}
	return claims.User(), nil
}

func (uc *AuthUseCase) recordLoginFailed(email string) {
	uc.recorder.Record(auditDomain.Event{
		ActorEmail: email,
		Action:     auditDomain.ActionLoginFailed,
		Resource:   "/v1/auth/login",
	})
}
