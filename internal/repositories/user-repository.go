package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"reference-service/internal/entities"
)

const authUserTable = "users"

type UserRepositoryInterface interface {
	FindUsersByIDs(ctx context.Context, ids []string) (map[string]entities.AuthUser, error)
}

// UserRepository читает справочник пользователей из базы авторизации.
type UserRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewUserRepository(storage Querier, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func (r *UserRepository) FindUsersByIDs(ctx context.Context, ids []string) (map[string]entities.AuthUser, error) {
	users := make(map[string]entities.AuthUser, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	query, args, err := psql.Select("id", "surname", "name", "patronymic").
		From(authUserTable).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var u entities.AuthUser
		if err := rows.Scan(&u.ID, &u.Surname, &u.Name, &u.Patronymic); err != nil {
			return nil, fmt.Errorf("ошибка сканирования user: %w", err)
		}
		users[u.ID] = u
	}
	return users, rows.Err()
}
