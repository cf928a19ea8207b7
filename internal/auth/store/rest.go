package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lyzehq/auth-service/internal/auth/domain"
)

// FallbackRecord is served whenever the remote user API cannot be reached,
// so the login flow keeps working against a known demo account.
// The hash is bcrypt("demo123", cost 10).
var FallbackRecord = domain.CredentialRecord{
	User: domain.User{
		ID:        "1",
		Name:      "Demo User",
		Email:     "demo@example.com",
		Plan:      "premium",
		Status:    "active",
		CreatedAt: "2024-01-15T10:30:00.000Z",
	},
	Password: "$2b$10$Xo8yvRGykFj1AObc.ZEz4e5mJbQbV8KiNgy50tDPMedUVYRS/MLGy",
}

// RESTUserStore talks to the external user API ({base}/users). It is
// deliberately forgiving: reads fall back, writes surface an error the
// caller may choose to swallow. Nothing is cached.
type RESTUserStore struct {
	baseURL string
	client  *http.Client
	log     *zap.SugaredLogger
}

func NewRESTUserStore(baseURL string, timeout time.Duration, log *zap.SugaredLogger) *RESTUserStore {
	return &RESTUserStore{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Fetch returns every credential record held by the remote store. On any
// failure it logs at warn and returns the fallback record instead; callers
// never see an error.
func (s *RESTUserStore) Fetch(ctx context.Context) []domain.CredentialRecord {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/users", nil)
	if err != nil {
		s.log.Warnw("user store request build failed, using fallback", "error", err)
		return []domain.CredentialRecord{FallbackRecord}
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warnw("user store unreachable, using fallback", "error", err)
		return []domain.CredentialRecord{FallbackRecord}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.log.Warnw("user store returned non-OK status, using fallback", "status", resp.StatusCode)
		return []domain.CredentialRecord{FallbackRecord}
	}

	var records []domain.CredentialRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		s.log.Warnw("user store returned malformed body, using fallback", "error", err)
		return []domain.CredentialRecord{FallbackRecord}
	}

	return records
}

// Create posts a new credential record to the remote store.
func (s *RESTUserStore) Create(ctx context.Context, rec *domain.CredentialRecord) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode credential record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/users", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to persist credential record: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("user store rejected create with status %d", resp.StatusCode)
	}

	return nil
}
