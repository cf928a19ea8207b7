package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInvalidToken       = errors.New("invalid token")
)

// User-facing message strings. Handlers and the auth service return these
// verbatim; clients only ever see plain messages, never error codes.
const (
	MsgInvalidEmail       = "Please provide a valid email address"
	MsgPasswordRequired   = "Password is required"
	MsgNameTooShort       = "Name must be at least 2 characters long"
	MsgPasswordTooShort   = "Password must be at least 6 characters long"
	MsgInvalidCredentials = "Invalid email or password"
	MsgEmailAlreadyInUse  = "User with this email already exists"
	MsgLoginSuccess       = "Login successful!"
	MsgSignupSuccess      = "Account created successfully!"
	MsgLogoutSuccess      = "Logged out successfully"
	MsgInternalError      = "Internal server error. Please try again later."
	MsgNetworkError       = "Network error. Please try again."
)
