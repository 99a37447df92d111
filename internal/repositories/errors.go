package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "reference-service/pkg/errors"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translatePgError превращает нарушения ключей в ошибку клиента.
// Остальные ошибки хранилища возвращаются как есть.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	field := pgErr.ColumnName
	if field == "" {
		field = pgErr.ConstraintName
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return apperrors.NewInvalidInputError(field, "запись с таким ключом уже существует (%s)", pgErr.ConstraintName)
	case pgForeignKeyViolation:
		return apperrors.NewInvalidInputError(field, "ссылка на несуществующую запись (%s)", pgErr.ConstraintName)
	}
	return err
}
