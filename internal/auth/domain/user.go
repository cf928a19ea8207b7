package domain

// User is the public account record. It never carries the password hash;
// handlers and the client see only this shape.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Plan      string `json:"plan"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// CredentialRecord is a User plus its bcrypt password hash. It lives only in
// the credential store and must be sanitized before leaving the auth service.
type CredentialRecord struct {
	User
	Password string `json:"password"`
}

// Sanitized returns the public view of the record.
func (r *CredentialRecord) Sanitized() User {
	return r.User
}

// SignupData is the transient record the client keeps for the post-signup
// confirmation page.
type SignupData struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Timestamp string `json:"timestamp"`
}
