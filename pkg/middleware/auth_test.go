package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	apperrors "reference-service/pkg/errors"
)

type stubSessions struct {
	valid map[string]bool
	err   error
}

func (s stubSessions) Authenticate(ctx context.Context, token string) error {
	if s.err != nil {
		return s.err
	}
	if token == "" {
		return apperrors.ErrSessionMissing
	}
	if !s.valid[token] {
		return apperrors.ErrInvalidSession
	}
	return nil
}

func serve(m *AuthMiddleware, cookie *http.Cookie) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/ref/objects", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	handler := m.Auth(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	_ = handler(c)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	m := NewAuthMiddleware(stubSessions{valid: map[string]bool{"good": true}}, "session", zap.NewNop())

	rec := serve(m, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Session token missing")

	rec = serve(m, &http.Cookie{Name: "session", Value: "bad"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid session")

	rec = serve(m, &http.Cookie{Name: "other", Value: "good"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(m, &http.Cookie{Name: "session", Value: "good"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestAuthMiddleware_StoreFailureIs500(t *testing.T) {
	m := NewAuthMiddleware(stubSessions{err: errors.New("auth db down")}, "session", zap.NewNop())

	rec := serve(m, &http.Cookie{Name: "session", Value: "good"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
