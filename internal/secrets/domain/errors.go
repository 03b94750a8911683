package domain

import "github.com/controleapp/inventory/internal/errors"

var (
	// ErrSecretNotFound indicates the secret record does not exist.
	ErrSecretNotFound = errors.Wrap(errors.ErrNotFound, "secret not found")

	// ErrAppNotFound indicates the owning application is not registered.
	ErrAppNotFound = errors.Wrap(errors.ErrNotFound, "application not found")
)
