package domain

import "github.com/controleapp/inventory/internal/errors"

var (
	// ErrInvalidCredentials is returned for any login failure, without
	// distinguishing unknown emails from wrong passwords.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrIssueNotSupported is returned when token issuance is requested from an
	// authority that only verifies externally issued tokens.
	ErrIssueNotSupported = errors.New("token issuance is not supported by the delegated authority")
)
