package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "reference-service/pkg/errors"
	"reference-service/pkg/utils"
)

// SessionChecker проверяет сырой токен сессии по базе авторизации.
type SessionChecker interface {
	Authenticate(ctx context.Context, token string) error
}

type AuthMiddleware struct {
	sessions   SessionChecker
	cookieName string
	logger     *zap.Logger
}

func NewAuthMiddleware(sessions SessionChecker, cookieName string, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:   sessions,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Auth пропускает запрос дальше только с действующей сессией.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := ""
		if cookie, err := c.Cookie(m.cookieName); err == nil {
			token = cookie.Value
		}

		err := m.sessions.Authenticate(c.Request().Context(), token)
		switch {
		case err == nil:
			return next(c)
		case errors.Is(err, apperrors.ErrSessionMissing):
			m.logger.Warn("AuthMiddleware: отсутствует cookie сессии", zap.String("path", c.Path()))
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, "Session token missing", err, nil), m.logger)
		case errors.Is(err, apperrors.ErrInvalidSession):
			m.logger.Warn("AuthMiddleware: недействительная сессия", zap.String("path", c.Path()))
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusUnauthorized, "Invalid session", nil, nil), m.logger)
		default:
			return utils.ErrorResponse(c, err, m.logger)
		}
	}
}
