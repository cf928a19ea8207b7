package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/lyzehq/auth-service/internal/auth/domain"
	"github.com/lyzehq/auth-service/internal/auth/dto"
	"github.com/lyzehq/auth-service/internal/auth/handler"
	"github.com/lyzehq/auth-service/internal/auth/service"
	autherror "github.com/lyzehq/auth-service/internal/errors"
	"github.com/lyzehq/auth-service/internal/mocks"
)

const cookieMaxAge = 7 * 24 * time.Hour

func newApp(t *testing.T, mockStore *mocks.MockUserStore) *fiber.App {
	t.Helper()

	tokenService := service.NewTokenService("test-secret", 168)
	authService := service.NewAuthService(mockStore, tokenService, bcrypt.MinCost, zap.NewNop().Sugar())
	authHandler := handler.NewAuthHandler(authService, cookieMaxAge, false)

	app := handler.NewApp()
	handler.RegisterRoutes(app, authHandler)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == handler.CookieName {
			return c
		}
	}
	return nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockUserStore(ctrl)
	app := newApp(t, mockStore)

	records := []domain.CredentialRecord{{
		User:     domain.User{ID: "1", Name: "Alice", Email: "alice@example.com", Plan: "starter", Status: "active"},
		Password: hashPassword(t, "correct-horse"),
	}}

	t.Run("success sets session cookie", func(t *testing.T) {
		mockStore.EXPECT().Fetch(gomock.Any()).Return(records)

		resp := postJSON(t, app, "/api/login", dto.LoginInput{Email: "alice@example.com", Password: "correct-horse"})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body dto.AuthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.NotEmpty(t, body.Token)
		require.NotNil(t, body.User)
		assert.Equal(t, "alice@example.com", body.User.Email)

		cookie := sessionCookie(resp)
		require.NotNil(t, cookie)
		assert.Equal(t, body.Token, cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.Equal(t, int(cookieMaxAge.Seconds()), cookie.MaxAge)
	})

	t.Run("unauthorized on wrong password", func(t *testing.T) {
		mockStore.EXPECT().Fetch(gomock.Any()).Return(records)

		resp := postJSON(t, app, "/api/login", dto.LoginInput{Email: "alice@example.com", Password: "wrong"})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		var body dto.AuthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Success)
		assert.Equal(t, autherror.MsgInvalidCredentials, body.Message)
		assert.Nil(t, sessionCookie(resp))
	})

	t.Run("unauthorized on validation failure", func(t *testing.T) {
		resp := postJSON(t, app, "/api/login", dto.LoginInput{Email: "bad", Password: ""})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed body hits the failure boundary", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		var body dto.AuthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Success)
		assert.Equal(t, autherror.MsgInternalError, body.Message)
	})
}

func TestSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockUserStore(ctrl)
	app := newApp(t, mockStore)

	t.Run("created with persisted flag", func(t *testing.T) {
		mockStore.EXPECT().Fetch(gomock.Any()).Return(nil)
		mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp := postJSON(t, app, "/api/signup", dto.SignupInput{
			Name:     "Carol New",
			Email:    "carol@example.com",
			Password: "secret123",
		})
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var body dto.SignupResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.True(t, body.Persisted)
		require.NotNil(t, sessionCookie(resp))
	})

	t.Run("bad request on duplicate email", func(t *testing.T) {
		mockStore.EXPECT().Fetch(gomock.Any()).Return([]domain.CredentialRecord{{
			User: domain.User{ID: "1", Email: "carol@example.com"},
		}})

		resp := postJSON(t, app, "/api/signup", dto.SignupInput{
			Name:     "Carol New",
			Email:    "carol@example.com",
			Password: "secret123",
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body dto.SignupResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, autherror.MsgEmailAlreadyInUse, body.Message)
		assert.Nil(t, sessionCookie(resp))
	})

	t.Run("malformed body hits the failure boundary", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("bad request lists every violation", func(t *testing.T) {
		resp := postJSON(t, app, "/api/signup", dto.SignupInput{
			Name:     "A",
			Email:    "new@x.com",
			Password: "short",
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body dto.SignupResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body.Message, autherror.MsgNameTooShort)
		assert.Contains(t, body.Message, autherror.MsgPasswordTooShort)
	})
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := newApp(t, mocks.NewMockUserStore(ctrl))

	// No session required: logout always succeeds and expires the cookie.
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, autherror.MsgLogoutSuccess, body.Message)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	// Epoch Expires is the wire form of immediate deletion here; Max-Age
	// must never extend the cookie's life.
	assert.True(t, cookie.Expires.Before(time.Now()))
	assert.LessOrEqual(t, cookie.MaxAge, 0)
}
