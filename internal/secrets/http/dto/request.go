// Package dto contains request and response payloads for secret endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	secretsDomain "github.com/controleapp/inventory/internal/secrets/domain"
	appValidation "github.com/controleapp/inventory/internal/validation"
)

// kindRule validates that a string is one of the known secret kinds.
var kindRule = validation.By(func(value any) error {
	raw, _ := value.(string)
	if raw == "" {
		// Required handles the empty case with a clearer message.
		return nil
	}
	if _, err := secretsDomain.ParseKind(raw); err != nil {
		return validation.NewError("validation_secret_kind", "must be one of: ssh, domain, api_key")
	}
	return nil
})

// CreateSecretRequest is the payload for POST /v1/secrets.
type CreateSecretRequest struct {
	AppID      string         `json:"appId"`
	Kind       string         `json:"kind"`
	Label      string         `json:"label"`
	PlainValue string         `json:"plainValue"`
	Metadata   map[string]any `json:"metadata"`
}

// Validate checks the create request fields.
func (r CreateSecretRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.AppID,
			validation.Required.Error("appId is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.Kind,
			validation.Required.Error("kind is required"),
			kindRule,
		),
		validation.Field(&r.Label,
			validation.Required.Error("label is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("label must be between 1 and 255 characters"),
		),
		validation.Field(&r.PlainValue,
			validation.Required.Error("plainValue is required"),
			appValidation.NotBlank,
		),
	)
	return appValidation.WrapValidationError(err)
}

// RotateSecretRequest is the payload for PUT /v1/secrets/:id.
type RotateSecretRequest struct {
	PlainValue string `json:"plainValue"`
}

// Validate checks the rotate request fields.
func (r RotateSecretRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.PlainValue,
			validation.Required.Error("plainValue is required"),
			appValidation.NotBlank,
		),
	)
	return appValidation.WrapValidationError(err)
}
