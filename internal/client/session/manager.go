// Package session is the client-side auth state holder. It mirrors what the
// site's browser tier does: keep the current user in memory, call the auth
// endpoints, and cache the sanitized user record locally across restarts.
//
// The session token itself is never held here. It travels in the HTTP-only
// auth-token cookie inside the client's cookie jar, out of reach of calling
// code; only the server can read it back.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lyzehq/auth-service/internal/auth/domain"
	"github.com/lyzehq/auth-service/internal/auth/dto"
	"github.com/lyzehq/auth-service/internal/client/localstore"
	autherror "github.com/lyzehq/auth-service/internal/errors"
)

// LoginPath is where unauthenticated flows end up.
const LoginPath = "/login"

// Outcome is the simplified result handed to UI code. Expected failures
// (bad credentials, validation) come back as Success=false with the server's
// message; only transport errors collapse to the generic network message.
type Outcome struct {
	Success bool
	Message string
}

type Manager struct {
	baseURL string
	http    *http.Client
	cache   *localstore.Store
	log     *zap.SugaredLogger

	mu      sync.Mutex
	user    *domain.User
	loading bool
}

func NewManager(baseURL string, cache *localstore.Store, log *zap.SugaredLogger) (*Manager, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &Manager{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar, Timeout: 15 * time.Second},
		cache:   cache,
		log:     log,
		loading: true,
	}, nil
}

// Hydrate restores the cached user record, if any. Until it has run the
// manager reports itself as loading and the route guard holds off.
func (m *Manager) Hydrate(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	raw, err := m.cache.Get(ctx, localstore.KeyAuthUser)
	if err != nil {
		m.log.Warnw("failed to read cached user", "error", err)
		return
	}
	if raw == nil {
		return
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		m.log.Warnw("cached user record is malformed, discarding", "error", err)
		_ = m.cache.Delete(ctx, localstore.KeyAuthUser)
		return
	}

	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()
}

func (m *Manager) Login(ctx context.Context, email, password string) Outcome {
	body := map[string]string{"email": email, "password": password}

	var resp dto.AuthResponse
	ok := m.post(ctx, "/api/login", body, &resp)
	if !ok {
		return Outcome{Success: false, Message: autherror.MsgNetworkError}
	}

	if !resp.Success || resp.User == nil {
		return Outcome{Success: false, Message: failureMessage(resp.Message, "Login failed")}
	}

	m.mu.Lock()
	m.user = resp.User
	m.mu.Unlock()
	m.cacheUser(ctx, resp.User)

	return Outcome{Success: true, Message: "Login successful"}
}

func (m *Manager) Signup(ctx context.Context, name, email, password string) Outcome {
	body := map[string]string{"name": name, "email": email, "password": password}

	var resp dto.SignupResponse
	ok := m.post(ctx, "/api/signup", body, &resp)
	if !ok {
		return Outcome{Success: false, Message: autherror.MsgNetworkError}
	}

	if !resp.Success {
		return Outcome{Success: false, Message: failureMessage(resp.Message, "Signup failed")}
	}

	data := domain.SignupData{
		Name:      name,
		Email:     email,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if raw, err := json.Marshal(data); err == nil {
		if err := m.cache.Set(ctx, localstore.KeySignupData, raw); err != nil {
			m.log.Warnw("failed to cache signup data", "error", err)
		}
	}

	if resp.Token != "" && resp.User != nil {
		m.mu.Lock()
		m.user = resp.User
		m.mu.Unlock()
		m.cacheUser(ctx, resp.User)
	}

	return Outcome{Success: true, Message: resp.Message}
}

// Logout clears local state first, then tells the server to drop the cookie.
// The endpoint call is best-effort: the user is logged out locally whatever
// it returns, and the answer is always the login page.
func (m *Manager) Logout(ctx context.Context) string {
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()

	if err := m.cache.Delete(ctx, localstore.KeyAuthUser); err != nil {
		m.log.Warnw("failed to clear cached user", "error", err)
	}
	if err := m.cache.Delete(ctx, localstore.KeySignupData); err != nil {
		m.log.Warnw("failed to clear signup data", "error", err)
	}

	var resp dto.AuthResponse
	if !m.post(ctx, "/api/logout", nil, &resp) {
		m.log.Warnw("logout endpoint unreachable, session cleared locally only")
	}

	return LoginPath
}

// CurrentUser returns the signed-in user, if any.
func (m *Manager) CurrentUser() (*domain.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil, false
	}
	u := *m.user
	return &u, true
}

// IsLoading reports whether the initial hydration is still pending.
func (m *Manager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// SignupData returns the transient post-signup record, or nil once cleared.
func (m *Manager) SignupData(ctx context.Context) (*domain.SignupData, error) {
	raw, err := m.cache.Get(ctx, localstore.KeySignupData)
	if err != nil || raw == nil {
		return nil, err
	}

	var data domain.SignupData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (m *Manager) cacheUser(ctx context.Context, user *domain.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := m.cache.Set(ctx, localstore.KeyAuthUser, raw); err != nil {
		m.log.Warnw("failed to cache user record", "error", err)
	}
}

// post sends a JSON POST and decodes the response body into out. It returns
// false only on transport-level failure; HTTP-level failures decode fine and
// surface through the response shape.
func (m *Manager) post(ctx context.Context, path string, body any, out any) bool {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return false
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+path, &buf)
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		m.log.Warnw("auth endpoint call failed", "path", path, "error", err)
		return false
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		m.log.Warnw("auth endpoint returned malformed body", "path", path, "error", err)
		return false
	}

	return true
}

func failureMessage(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
