package domain

import "context"

// UserStore abstracts the remote credential store. Fetch never fails: the
// adapter absorbs upstream errors and falls back to its built-in record.
type UserStore interface {
	Fetch(ctx context.Context) []CredentialRecord
	Create(ctx context.Context, rec *CredentialRecord) error
}
