package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"reference-service/internal/entities"
	bd "reference-service/internal/infrastructure/bd"
	apperrors "reference-service/pkg/errors"
)

const personTable = "persons"

// Колонка фамилии в схеме называется last_naem.
var personColumns = []string{"id", "name", "last_naem", "middle_name", "phone_personal", "email_personal", "birth_date"}

type PersonRepositoryInterface interface {
	GetPersons(ctx context.Context, search string) ([]entities.Person, error)
	FindPerson(ctx context.Context, id string) (*entities.Person, error)
	FindPersonsByIDs(ctx context.Context, ids []string) (map[string]entities.Person, error)
	CreatePerson(ctx context.Context, person entities.Person) error
}

type PersonRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewPersonRepository(storage Querier, logger *zap.Logger) PersonRepositoryInterface {
	return &PersonRepository{storage: storage, logger: logger}
}

func scanPerson(row pgx.Row) (*entities.Person, error) {
	var p entities.Person
	err := row.Scan(&p.ID, &p.Name, &p.LastName, &p.MiddleName, &p.Phone, &p.Email, &p.BirthDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования person: %w", err)
	}
	return &p, nil
}

func (r *PersonRepository) queryPersons(ctx context.Context, builder sq.SelectBuilder) ([]entities.Person, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения persons: %w", err)
	}
	defer rows.Close()

	persons := make([]entities.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		persons = append(persons, *p)
	}
	return persons, rows.Err()
}

// GetPersons - поиск без учёта регистра по ФИО, телефону и почте (ИЛИ по полям).
func (r *PersonRepository) GetPersons(ctx context.Context, search string) ([]entities.Person, error) {
	builder := psql.Select(personColumns...).From(personTable)
	if search != "" {
		builder = builder.Where(bd.ContainsAny(search,
			"name", "last_naem", "middle_name", "phone_personal", "email_personal",
		))
	}
	return r.queryPersons(ctx, builder)
}

func (r *PersonRepository) FindPerson(ctx context.Context, id string) (*entities.Person, error) {
	query, args, err := psql.Select(personColumns...).From(personTable).Where(sq.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}
	return scanPerson(r.storage.QueryRow(ctx, query, args...))
}

func (r *PersonRepository) FindPersonsByIDs(ctx context.Context, ids []string) (map[string]entities.Person, error) {
	result := make(map[string]entities.Person, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	persons, err := r.queryPersons(ctx, psql.Select(personColumns...).From(personTable).Where(sq.Eq{"id": ids}))
	if err != nil {
		return nil, err
	}
	for _, p := range persons {
		result[p.ID] = p
	}
	return result, nil
}

func (r *PersonRepository) CreatePerson(ctx context.Context, p entities.Person) error {
	query, args, err := psql.Insert(personTable).
		Columns(personColumns...).
		Values(p.ID, p.Name, p.LastName, p.MiddleName, p.Phone, p.Email, p.BirthDate).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return translatePgError(fmt.Errorf("ошибка создания person: %w", err))
	}
	return nil
}
