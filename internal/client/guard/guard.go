// Package guard decides whether a protected view may render or must bounce
// to the login page.
package guard

import "github.com/lyzehq/auth-service/internal/auth/domain"

// Session is the slice of the session manager the guard needs.
type Session interface {
	IsLoading() bool
	CurrentUser() (*domain.User, bool)
}

// Check returns the redirect target for a protected page. While the session
// is still hydrating it stays put, so a cached user never sees a
// flash-redirect; once hydrated, a missing user means the login page.
func Check(s Session) (target string, redirect bool) {
	if s.IsLoading() {
		return "", false
	}
	if _, ok := s.CurrentUser(); !ok {
		return "/login", true
	}
	return "", false
}
