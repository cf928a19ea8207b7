package dto

import "github.com/lyzehq/auth-service/internal/auth/domain"

// AuthResponse is the uniform response shape for login, signup and logout.
// User and Token are present only on success.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *domain.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
}

// SignupResponse adds the persistence outcome of the best-effort remote
// write, so a signup that was issued a token without durable storage is
// distinguishable from a fully persisted one.
type SignupResponse struct {
	AuthResponse
	Persisted bool `json:"persisted"`
}
