package validation

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const specialChars = `!@#$%^&*(),.?":{}|<>`

// ValidateEmail reports whether s looks like local@domain.tld. It checks
// shape only; no DNS or mailbox verification.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePassword is the server-side check: any non-empty password passes.
// Signup additionally enforces a minimum length; the full policy below is a
// client-side concern.
func ValidatePassword(s string) bool {
	return len(s) >= 1
}

// PasswordCheck reports how a candidate password fares against the signup
// form's policy. Score counts satisfied rules (0-5); IsValid requires all
// five.
type PasswordCheck struct {
	Length    bool
	Uppercase bool
	Lowercase bool
	Number    bool
	Special   bool
	IsValid   bool
	Score     int
}

// CheckPassword evaluates the 5-rule policy: length >= 8, at least one
// uppercase letter, lowercase letter, digit, and special character. The
// character classes are ASCII only; accented letters and non-Latin digits
// satisfy no rule.
func CheckPassword(s string) PasswordCheck {
	c := PasswordCheck{Length: len(s) >= 8}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			c.Uppercase = true
		case r >= 'a' && r <= 'z':
			c.Lowercase = true
		case r >= '0' && r <= '9':
			c.Number = true
		case strings.ContainsRune(specialChars, r):
			c.Special = true
		}
	}

	for _, ok := range []bool{c.Length, c.Uppercase, c.Lowercase, c.Number, c.Special} {
		if ok {
			c.Score++
		}
	}
	c.IsValid = c.Score == 5

	return c
}
