package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"reference-service/internal/entities"
	apperrors "reference-service/pkg/errors"
)

const employeeTable = "employees"

var employeeColumns = []string{
	"e.id", "e.counterparty_id", "e.person_id", "e.position", "e.phone_work", "e.phone_extra",
	"e.email_work", "e.email_extra", "e.role_type", "e.comment",
}

var employeeWithPersonColumns = append(append([]string{}, employeeColumns...),
	"p.name", "p.last_naem", "p.middle_name", "p.phone_personal", "p.email_personal", "p.birth_date",
	"c.short_name",
)

type EmployeeRepositoryInterface interface {
	GetEmployees(ctx context.Context) ([]entities.EmployeeWithPerson, error)
	FindEmployee(ctx context.Context, id string) (*entities.EmployeeWithPerson, error)
	GetEmployeesByCounterparty(ctx context.Context, counterpartyID string) ([]entities.EmployeeWithPerson, error)
	FindEmployeeAt(ctx context.Context, counterpartyID, personID string) (*entities.Employee, error)
	GetEmploymentsByPersons(ctx context.Context, personIDs []string) ([]entities.Employment, error)
	CreateEmployee(ctx context.Context, employee entities.Employee) error
}

type EmployeeRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewEmployeeRepository(storage Querier, logger *zap.Logger) EmployeeRepositoryInterface {
	return &EmployeeRepository{storage: storage, logger: logger}
}

func employeeScanTargets(e *entities.Employee) []interface{} {
	return []interface{}{
		&e.ID, &e.CounterpartyID, &e.PersonID, &e.Position, &e.PhoneWork, &e.PhoneExtra,
		&e.EmailWork, &e.EmailExtra, &e.RoleType, &e.Comment,
	}
}

func scanEmployeeWithPerson(row pgx.Row) (*entities.EmployeeWithPerson, error) {
	var e entities.EmployeeWithPerson
	targets := append(employeeScanTargets(&e.Employee),
		&e.Person.Name, &e.Person.LastName, &e.Person.MiddleName, &e.Person.Phone, &e.Person.Email, &e.Person.BirthDate,
		&e.CompanyName,
	)
	err := row.Scan(targets...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования employee: %w", err)
	}
	e.Person.ID = e.PersonID
	return &e, nil
}

func (r *EmployeeRepository) selectWithPerson() sq.SelectBuilder {
	return psql.Select(employeeWithPersonColumns...).
		From(employeeTable + " e").
		Join("persons p ON e.person_id = p.id").
		Join("counterparties c ON e.counterparty_id = c.id")
}

func (r *EmployeeRepository) queryWithPerson(ctx context.Context, builder sq.SelectBuilder) ([]entities.EmployeeWithPerson, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения employees: %w", err)
	}
	defer rows.Close()

	employees := make([]entities.EmployeeWithPerson, 0)
	for rows.Next() {
		e, err := scanEmployeeWithPerson(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

func (r *EmployeeRepository) GetEmployees(ctx context.Context) ([]entities.EmployeeWithPerson, error) {
	return r.queryWithPerson(ctx, r.selectWithPerson())
}

func (r *EmployeeRepository) FindEmployee(ctx context.Context, id string) (*entities.EmployeeWithPerson, error) {
	query, args, err := r.selectWithPerson().Where(sq.Eq{"e.id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}
	return scanEmployeeWithPerson(r.storage.QueryRow(ctx, query, args...))
}

func (r *EmployeeRepository) GetEmployeesByCounterparty(ctx context.Context, counterpartyID string) ([]entities.EmployeeWithPerson, error) {
	return r.queryWithPerson(ctx, r.selectWithPerson().Where(sq.Eq{"e.counterparty_id": counterpartyID}))
}

// FindEmployeeAt ищет запись сотрудника персоны у конкретного контрагента.
// Если записей несколько, берётся первая.
func (r *EmployeeRepository) FindEmployeeAt(ctx context.Context, counterpartyID, personID string) (*entities.Employee, error) {
	query, args, err := psql.Select(employeeColumns...).
		From(employeeTable + " e").
		Where(sq.Eq{"e.counterparty_id": counterpartyID, "e.person_id": personID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}
	var e entities.Employee
	err = r.storage.QueryRow(ctx, query, args...).Scan(employeeScanTargets(&e)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования employee: %w", err)
	}
	return &e, nil
}

func (r *EmployeeRepository) GetEmploymentsByPersons(ctx context.Context, personIDs []string) ([]entities.Employment, error) {
	employments := make([]entities.Employment, 0)
	if len(personIDs) == 0 {
		return employments, nil
	}
	query, args, err := psql.Select(append(append([]string{}, employeeColumns...), "c.short_name")...).
		From(employeeTable + " e").
		Join("counterparties c ON e.counterparty_id = c.id").
		Where(sq.Eq{"e.person_id": personIDs}).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения employments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var em entities.Employment
		if err := rows.Scan(append(employeeScanTargets(&em.Employee), &em.CompanyName)...); err != nil {
			return nil, fmt.Errorf("ошибка сканирования employment: %w", err)
		}
		employments = append(employments, em)
	}
	return employments, rows.Err()
}

func (r *EmployeeRepository) CreateEmployee(ctx context.Context, e entities.Employee) error {
	query, args, err := psql.Insert(employeeTable).
		Columns("id", "counterparty_id", "person_id", "position", "phone_work", "phone_extra",
			"email_work", "email_extra", "role_type", "comment").
		Values(e.ID, e.CounterpartyID, e.PersonID, e.Position, e.PhoneWork, e.PhoneExtra,
			e.EmailWork, e.EmailExtra, e.RoleType, e.Comment).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return translatePgError(fmt.Errorf("ошибка создания employee: %w", err))
	}
	return nil
}
