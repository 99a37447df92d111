package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.uber.org/zap"

	"reference-service/internal/repositories"
	apperrors "reference-service/pkg/errors"
)

type SessionServiceInterface interface {
	IsValid(ctx context.Context, token string) (bool, error)
	Authenticate(ctx context.Context, token string) error
}

type SessionService struct {
	sessionRepository repositories.SessionRepositoryInterface
	logger            *zap.Logger
	now               func() time.Time
}

func NewSessionService(sessionRepository repositories.SessionRepositoryInterface, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessionRepository: sessionRepository,
		logger:            logger,
		now:               time.Now,
	}
}

// HashToken - в базе авторизации хранится только SHA-256 токена в hex.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// IsValid: пустой токен недействителен без обращения к хранилищу.
// Ошибка хранилища возвращается наружу, а не превращается в false.
func (s *SessionService) IsValid(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	ok, err := s.sessionRepository.ExistsActive(ctx, HashToken(token), s.now().UTC())
	if err != nil {
		s.logger.Error("Ошибка проверки сессии", zap.Error(err))
		return false, err
	}
	return ok, nil
}

func (s *SessionService) Authenticate(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrSessionMissing
	}
	ok, err := s.IsValid(ctx, token)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrInvalidSession
	}
	return nil
}
