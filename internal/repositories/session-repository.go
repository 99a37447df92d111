package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const sessionTable = "sessions"

type SessionRepositoryInterface interface {
	ExistsActive(ctx context.Context, tokenHash string, now time.Time) (bool, error)
}

// SessionRepository работает с базой авторизации, а не со справочной.
type SessionRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewSessionRepository(storage Querier, logger *zap.Logger) SessionRepositoryInterface {
	return &SessionRepository{storage: storage, logger: logger}
}

// ExistsActive не различает "не найдена" и "истекла": в обоих случаях false.
func (r *SessionRepository) ExistsActive(ctx context.Context, tokenHash string, now time.Time) (bool, error) {
	query, args, err := psql.Select("1").
		From(sessionTable).
		Where(sq.Eq{"token_hash": tokenHash}).
		Where(sq.Gt{"expires_at": now}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.storage.QueryRow(ctx, query, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("ошибка проверки сессии: %w", err)
	}
	return true, nil
}
