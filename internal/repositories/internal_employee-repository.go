package repositories

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"reference-service/internal/entities"
)

const internalEmployeeTable = "internal_employees"

type InternalEmployeeRepositoryInterface interface {
	GetInternalEmployees(ctx context.Context) ([]entities.InternalEmployee, error)
	GetDepartments(ctx context.Context) ([]*string, error)
}

type InternalEmployeeRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewInternalEmployeeRepository(storage Querier, logger *zap.Logger) InternalEmployeeRepositoryInterface {
	return &InternalEmployeeRepository{storage: storage, logger: logger}
}

func (r *InternalEmployeeRepository) GetInternalEmployees(ctx context.Context) ([]entities.InternalEmployee, error) {
	query, args, err := psql.Select(
		"ie.id", "ie.counterparty_id", "c.short_name", "ie.user_id", "ie.department", "ie.position",
	).From(internalEmployeeTable + " ie").
		Join("counterparties c ON ie.counterparty_id = c.id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения internal_employees: %w", err)
	}
	defer rows.Close()

	employees := make([]entities.InternalEmployee, 0)
	for rows.Next() {
		var ie entities.InternalEmployee
		if err := rows.Scan(&ie.ID, &ie.CounterpartyID, &ie.CounterpartyName, &ie.UserID, &ie.Department, &ie.Position); err != nil {
			return nil, fmt.Errorf("ошибка сканирования internal_employee: %w", err)
		}
		employees = append(employees, ie)
	}
	return employees, rows.Err()
}

// GetDepartments возвращает различные значения отдела, включая NULL.
func (r *InternalEmployeeRepository) GetDepartments(ctx context.Context) ([]*string, error) {
	query, args, err := psql.Select("department").Distinct().From(internalEmployeeTable).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения отделов: %w", err)
	}
	defer rows.Close()

	departments := make([]*string, 0)
	for rows.Next() {
		var department *string
		if err := rows.Scan(&department); err != nil {
			return nil, fmt.Errorf("ошибка сканирования отдела: %w", err)
		}
		departments = append(departments, department)
	}
	return departments, rows.Err()
}
