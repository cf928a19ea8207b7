package service

//go:generate mockgen -destination=../../mocks/mock_user_store.go -package=mocks github.com/lyzehq/auth-service/internal/auth/domain UserStore

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/lyzehq/auth-service/internal/auth/domain"
	"github.com/lyzehq/auth-service/internal/auth/dto"
	"github.com/lyzehq/auth-service/internal/auth/validation"
	autherror "github.com/lyzehq/auth-service/internal/errors"
)

// AuthService orchestrates the credential flow: validate input, look up the
// store, compare or create a hash, issue a token. Each call is a single
// request-scoped computation; no state survives between calls.
type AuthService struct {
	store      domain.UserStore
	tokens     TokenGenerator
	bcryptCost int
	log        *zap.SugaredLogger
}

func NewAuthService(store domain.UserStore, tokens TokenGenerator, bcryptCost int, log *zap.SugaredLogger) *AuthService {
	return &AuthService{
		store:      store,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		log:        log,
	}
}

// Login validates the credentials against the store. Unknown email and wrong
// password produce the same generic message so callers cannot enumerate
// accounts.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) *dto.AuthResponse {
	var errs []string
	if !validation.ValidateEmail(input.Email) {
		errs = append(errs, autherror.MsgInvalidEmail)
	}
	if !validation.ValidatePassword(input.Password) {
		errs = append(errs, autherror.MsgPasswordRequired)
	}
	if len(errs) > 0 {
		return &dto.AuthResponse{Success: false, Message: strings.Join(errs, ", ")}
	}

	records := s.store.Fetch(ctx)
	rec := findByEmail(records, input.Email)
	if rec == nil {
		return &dto.AuthResponse{Success: false, Message: autherror.MsgInvalidCredentials}
	}

	if bcrypt.CompareHashAndPassword([]byte(rec.Password), []byte(input.Password)) != nil {
		return &dto.AuthResponse{Success: false, Message: autherror.MsgInvalidCredentials}
	}

	user := rec.Sanitized()
	token, err := s.tokens.Generate(&user)
	if err != nil {
		s.log.Errorw("token generation failed", "userId", user.ID, "error", err)
		return &dto.AuthResponse{Success: false, Message: autherror.MsgInternalError}
	}

	return &dto.AuthResponse{
		Success: true,
		Message: autherror.MsgLoginSuccess,
		User:    &user,
		Token:   token,
	}
}

// Signup creates a new credential record and issues a token. The remote
// write is best-effort: its failure is logged and reported through
// Persisted, never by failing the signup.
func (s *AuthService) Signup(ctx context.Context, input dto.SignupInput) *dto.SignupResponse {
	var errs []string
	if len(strings.TrimSpace(input.Name)) < 2 {
		errs = append(errs, autherror.MsgNameTooShort)
	}
	if !validation.ValidateEmail(input.Email) {
		errs = append(errs, autherror.MsgInvalidEmail)
	}
	if len(input.Password) < 6 {
		errs = append(errs, autherror.MsgPasswordTooShort)
	}
	if len(errs) > 0 {
		return &dto.SignupResponse{
			AuthResponse: dto.AuthResponse{Success: false, Message: strings.Join(errs, ", ")},
		}
	}

	records := s.store.Fetch(ctx)
	if findByEmail(records, input.Email) != nil {
		return &dto.SignupResponse{
			AuthResponse: dto.AuthResponse{Success: false, Message: autherror.MsgEmailAlreadyInUse},
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		s.log.Errorw("password hashing failed", "error", err)
		return &dto.SignupResponse{
			AuthResponse: dto.AuthResponse{Success: false, Message: autherror.MsgInternalError},
		}
	}

	rec := &domain.CredentialRecord{
		User: domain.User{
			ID:        strconv.Itoa(len(records) + 1),
			Name:      strings.TrimSpace(input.Name),
			Email:     strings.ToLower(input.Email),
			Plan:      "starter",
			Status:    "active",
			CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
		},
		Password: string(hashed),
	}

	persisted := true
	if err := s.store.Create(ctx, rec); err != nil {
		s.log.Warnw("signup persisted locally only, remote write failed", "email", rec.Email, "error", err)
		persisted = false
	}

	user := rec.Sanitized()
	token, err := s.tokens.Generate(&user)
	if err != nil {
		s.log.Errorw("token generation failed", "userId", user.ID, "error", err)
		return &dto.SignupResponse{
			AuthResponse: dto.AuthResponse{Success: false, Message: autherror.MsgInternalError},
		}
	}

	return &dto.SignupResponse{
		AuthResponse: dto.AuthResponse{
			Success: true,
			Message: autherror.MsgSignupSuccess,
			User:    &user,
			Token:   token,
		},
		Persisted: persisted,
	}
}

func findByEmail(records []domain.CredentialRecord, email string) *domain.CredentialRecord {
	for i := range records {
		if strings.EqualFold(records[i].Email, email) {
			return &records[i]
		}
	}
	return nil
}
