package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"reference-service/internal/dto"
	"reference-service/internal/entities"
	apperrors "reference-service/pkg/errors"
)

const objectTable = "objects"

var objectWithManagerColumns = []string{
	"o.id", "o.short_name", "o.full_name", "o.address", "o.is_active", "o.manager_id", "o.created_at", "o.updated_at",
	"e.id", "e.position", "p.name", "p.last_naem",
}

type ObjectRepositoryInterface interface {
	GetObjects(ctx context.Context) ([]entities.ObjectWithManager, error)
	FindObject(ctx context.Context, id string) (*entities.ObjectWithManager, error)
	GetObjectsByManager(ctx context.Context, employeeID string) ([]entities.Object, error)
	CreateObject(ctx context.Context, object entities.Object) error
	UpdateObject(ctx context.Context, id string, patch dto.UpdateObjectDTO) error
}

type ObjectRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewObjectRepository(storage Querier, logger *zap.Logger) ObjectRepositoryInterface {
	return &ObjectRepository{storage: storage, logger: logger}
}

func scanObjectWithManager(row pgx.Row) (*entities.ObjectWithManager, error) {
	var o entities.ObjectWithManager
	var isActive *bool
	var employeeID, position, personName, personLastName *string

	err := row.Scan(
		&o.ID, &o.ShortName, &o.FullName, &o.Address, &isActive, &o.ManagerID, &o.CreatedAt, &o.UpdatedAt,
		&employeeID, &position, &personName, &personLastName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования object: %w", err)
	}

	o.IsActive = isActive != nil && *isActive
	// Менеджер есть только если нашлись и сотрудник, и его персона
	if employeeID != nil && personName != nil {
		o.Manager = &entities.ObjectManager{
			EmployeeID: *employeeID,
			Position:   position,
			Name:       *personName,
		}
		if personLastName != nil {
			o.Manager.LastName = *personLastName
		}
	}
	return &o, nil
}

func (r *ObjectRepository) selectWithManager() sq.SelectBuilder {
	return psql.Select(objectWithManagerColumns...).
		From(objectTable + " o").
		LeftJoin("employees e ON o.manager_id = e.id").
		LeftJoin("persons p ON e.person_id = p.id")
}

func (r *ObjectRepository) GetObjects(ctx context.Context) ([]entities.ObjectWithManager, error) {
	query, args, err := r.selectWithManager().ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения objects: %w", err)
	}
	defer rows.Close()

	objects := make([]entities.ObjectWithManager, 0)
	for rows.Next() {
		o, err := scanObjectWithManager(rows)
		if err != nil {
			return nil, err
		}
		objects = append(objects, *o)
	}
	return objects, rows.Err()
}

func (r *ObjectRepository) FindObject(ctx context.Context, id string) (*entities.ObjectWithManager, error) {
	query, args, err := r.selectWithManager().Where(sq.Eq{"o.id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}
	return scanObjectWithManager(r.storage.QueryRow(ctx, query, args...))
}

func (r *ObjectRepository) GetObjectsByManager(ctx context.Context, employeeID string) ([]entities.Object, error) {
	query, args, err := psql.
		Select("id", "short_name", "full_name", "address", "is_active", "created_at", "updated_at").
		From(objectTable).
		Where(sq.Eq{"manager_id": employeeID}).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения objects менеджера: %w", err)
	}
	defer rows.Close()

	objects := make([]entities.Object, 0)
	for rows.Next() {
		var o entities.Object
		var isActive *bool
		if err := rows.Scan(&o.ID, &o.ShortName, &o.FullName, &o.Address, &isActive, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ошибка сканирования object: %w", err)
		}
		o.IsActive = isActive != nil && *isActive
		o.ManagerID = &employeeID
		objects = append(objects, o)
	}
	return objects, rows.Err()
}

func (r *ObjectRepository) CreateObject(ctx context.Context, object entities.Object) error {
	query, args, err := psql.Insert(objectTable).
		Columns("id", "short_name", "full_name", "address", "is_active", "manager_id", "created_at", "updated_at").
		Values(object.ID, object.ShortName, object.FullName, object.Address, object.IsActive, object.ManagerID, object.CreatedAt, object.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return translatePgError(fmt.Errorf("ошибка создания object: %w", err))
	}
	return nil
}

func (r *ObjectRepository) UpdateObject(ctx context.Context, id string, patch dto.UpdateObjectDTO) error {
	updateBuilder := psql.Update(objectTable).
		Where(sq.Eq{"id": id}).
		Set("updated_at", time.Now().UTC())

	if patch.Sent("short_name") {
		updateBuilder = updateBuilder.Set("short_name", patch.ShortName.Ptr())
	}
	if patch.Sent("full_name") {
		updateBuilder = updateBuilder.Set("full_name", patch.FullName.Ptr())
	}
	if patch.Sent("address") {
		updateBuilder = updateBuilder.Set("address", patch.Address.Ptr())
	}
	if patch.Sent("is_active") {
		updateBuilder = updateBuilder.Set("is_active", patch.IsActive.Ptr())
	}
	if patch.Sent("manager_id") {
		updateBuilder = updateBuilder.Set("manager_id", patch.ManagerID.Ptr())
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return err
	}
	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return translatePgError(fmt.Errorf("ошибка обновления object: %w", err))
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	r.logger.Debug("object обновлён", zap.String("id", id), zap.Any("fields", patch.SentFields))
	return nil
}
