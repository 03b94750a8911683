// Package domain defines the authentication and authorization model: users,
// roles, token claims and the static access policy.
package domain

// User is an authenticated principal as seen by handlers and the audit trail.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Claims is the payload carried inside an access token. Exp is a Unix epoch
// timestamp in milliseconds.
type Claims struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
	Exp   int64  `json:"exp"`
}

// User projects the claims back into the principal they describe.
func (c *Claims) User() *User {
	return &User{
		ID:    c.Sub,
		Email: c.Email,
		Name:  c.Name,
		Role:  c.Role,
	}
}

// Credential pairs a user with its stored password hash for login checks.
type Credential struct {
	User         User
	PasswordHash string
}

// LoginOutput is the result of a successful credential exchange.
type LoginOutput struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
	User        User   `json:"user"`
}
