package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"reference-service/internal/dto"
	"reference-service/internal/entities"
	"reference-service/internal/repositories"
	"reference-service/pkg/types"
)

type ObjectServiceInterface interface {
	GetObjects(ctx context.Context) ([]dto.ObjectDTO, error)
	FindObject(ctx context.Context, id string) (*dto.ObjectDTO, error)
	GetObjectsByEmployee(ctx context.Context, employeeID string) ([]dto.ShortObjectDTO, error)
	CreateObject(ctx context.Context, payload dto.CreateObjectDTO) (*dto.ObjectDTO, error)
	UpdateObject(ctx context.Context, id string, patch dto.UpdateObjectDTO) (*dto.ObjectDTO, error)
}

type ObjectService struct {
	objectRepository repositories.ObjectRepositoryInterface
	logger           *zap.Logger
}

func NewObjectService(objectRepository repositories.ObjectRepositoryInterface, logger *zap.Logger) *ObjectService {
	return &ObjectService{objectRepository: objectRepository, logger: logger}
}

func objectToDTO(o entities.ObjectWithManager) dto.ObjectDTO {
	result := dto.ObjectDTO{
		ID:        o.ID,
		ShortName: o.ShortName,
		FullName:  o.FullName,
		Address:   o.Address,
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	if o.Manager != nil {
		result.Manager = &dto.ObjectManagerDTO{
			ID:       o.Manager.EmployeeID,
			Name:     o.Manager.Name,
			LastName: o.Manager.LastName,
			Position: o.Manager.Position,
		}
	}
	return result
}

func (s *ObjectService) GetObjects(ctx context.Context) ([]dto.ObjectDTO, error) {
	objects, err := s.objectRepository.GetObjects(ctx)
	if err != nil {
		s.logger.Error("Ошибка при получении списка объектов", zap.Error(err))
		return nil, err
	}
	result := make([]dto.ObjectDTO, 0, len(objects))
	for _, o := range objects {
		result = append(result, objectToDTO(o))
	}
	return result, nil
}

func (s *ObjectService) FindObject(ctx context.Context, id string) (*dto.ObjectDTO, error) {
	object, err := s.objectRepository.FindObject(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при поиске объекта", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	result := objectToDTO(*object)
	return &result, nil
}

func (s *ObjectService) GetObjectsByEmployee(ctx context.Context, employeeID string) ([]dto.ShortObjectDTO, error) {
	objects, err := s.objectRepository.GetObjectsByManager(ctx, employeeID)
	if err != nil {
		s.logger.Error("Ошибка при получении объектов менеджера", zap.String("employeeID", employeeID), zap.Error(err))
		return nil, err
	}
	result := make([]dto.ShortObjectDTO, 0, len(objects))
	for _, o := range objects {
		result = append(result, dto.ShortObjectDTO{
			ID:        o.ID,
			ShortName: o.ShortName,
			FullName:  o.FullName,
			Address:   o.Address,
			IsActive:  o.IsActive,
			CreatedAt: o.CreatedAt,
			UpdatedAt: o.UpdatedAt,
		})
	}
	return result, nil
}

func (s *ObjectService) CreateObject(ctx context.Context, payload dto.CreateObjectDTO) (*dto.ObjectDTO, error) {
	createdAt := time.Now().UTC()
	if payload.CreatedAt != nil {
		createdAt = *payload.CreatedAt
	}
	updatedAt := createdAt
	if payload.UpdatedAt != nil {
		updatedAt = *payload.UpdatedAt
	}
	isActive := true
	if payload.IsActive != nil {
		isActive = *payload.IsActive
	}

	object := entities.Object{
		ID:         idOrNew(payload.ID, uuid.NewString),
		ShortName:  payload.ShortName,
		FullName:   payload.FullName,
		Address:    payload.Address,
		IsActive:   isActive,
		ManagerID:  payload.ManagerID,
		BaseEntity: types.BaseEntity{CreatedAt: &createdAt, UpdatedAt: &updatedAt},
	}
	if err := s.objectRepository.CreateObject(ctx, object); err != nil {
		s.logger.Error("Ошибка при создании объекта", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Объект успешно создан", zap.String("id", object.ID))
	return s.FindObject(ctx, object.ID)
}

func (s *ObjectService) UpdateObject(ctx context.Context, id string, patch dto.UpdateObjectDTO) (*dto.ObjectDTO, error) {
	if err := s.objectRepository.UpdateObject(ctx, id, patch); err != nil {
		s.logger.Error("Ошибка при обновлении объекта", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Объект обновлён", zap.String("id", id))
	return s.FindObject(ctx, id)
}
