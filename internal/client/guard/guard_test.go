package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lyzehq/auth-service/internal/auth/domain"
	"github.com/lyzehq/auth-service/internal/client/guard"
)

type fakeSession struct {
	loading bool
	user    *domain.User
}

func (f *fakeSession) IsLoading() bool { return f.loading }

func (f *fakeSession) CurrentUser() (*domain.User, bool) {
	return f.user, f.user != nil
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name         string
		session      *fakeSession
		wantTarget   string
		wantRedirect bool
	}{
		{
			name:         "still hydrating never redirects",
			session:      &fakeSession{loading: true},
			wantTarget:   "",
			wantRedirect: false,
		},
		{
			name:         "hydrating with no user still waits",
			session:      &fakeSession{loading: true, user: nil},
			wantTarget:   "",
			wantRedirect: false,
		},
		{
			name:         "unauthenticated redirects to login",
			session:      &fakeSession{},
			wantTarget:   "/login",
			wantRedirect: true,
		},
		{
			name:         "authenticated stays put",
			session:      &fakeSession{user: &domain.User{ID: "1"}},
			wantTarget:   "",
			wantRedirect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, redirect := guard.Check(tt.session)

			assert.Equal(t, tt.wantTarget, target)
			assert.Equal(t, tt.wantRedirect, redirect)
		})
	}
}
