package dto

import (
	authDomain "github.com/controleapp/inventory/internal/auth/domain"
)

// UserResponse is the public representation of an authenticated user.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResponse is the payload returned by POST /v1/auth/login.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresIn   int          `json:"expiresIn"`
	User        UserResponse `json:"user"`
}

// MapUserToResponse converts a domain user to its response representation.
func MapUserToResponse(user *authDomain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	}
}

// MapLoginOutputToResponse converts a login result to its response representation.
func MapLoginOutputToResponse(output *authDomain.LoginOutput) LoginResponse {
	return LoginResponse{
		AccessToken: output.AccessToken,
		ExpiresIn:   output.ExpiresIn,
		User:        MapUserToResponse(&output.User),
	}
}
