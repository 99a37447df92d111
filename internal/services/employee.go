package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"reference-service/internal/dto"
	"reference-service/internal/entities"
	"reference-service/internal/repositories"
)

type EmployeeServiceInterface interface {
	GetEmployees(ctx context.Context) ([]dto.EmployeeDTO, error)
	FindEmployee(ctx context.Context, id string) (*dto.EmployeeDTO, error)
	GetCounterpartyEmployees(ctx context.Context, counterpartyID string) ([]dto.CounterpartyEmployeeDTO, error)
	CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*dto.EmployeeDTO, error)
}

type EmployeeService struct {
	employeeRepository repositories.EmployeeRepositoryInterface
	logger             *zap.Logger
}

func NewEmployeeService(employeeRepository repositories.EmployeeRepositoryInterface, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{employeeRepository: employeeRepository, logger: logger}
}

func employeeToDTO(e entities.EmployeeWithPerson) dto.EmployeeDTO {
	return dto.EmployeeDTO{
		ID:             e.ID,
		CounterpartyID: e.CounterpartyID,
		CompanyName:    e.CompanyName,
		PersonID:       e.PersonID,
		FullName:       e.Person.FullName(),
		Position:       e.Position,
		Role:           e.RoleType,
		PhoneWork:      e.PhoneWork,
		PhoneExtra:     e.PhoneExtra,
		EmailWork:      e.EmailWork,
		EmailExtra:     e.EmailExtra,
		Comment:        e.Comment,
	}
}

func (s *EmployeeService) GetEmployees(ctx context.Context) ([]dto.EmployeeDTO, error) {
	employees, err := s.employeeRepository.GetEmployees(ctx)
	if err != nil {
		s.logger.Error("Ошибка при получении списка сотрудников", zap.Error(err))
		return nil, err
	}
	result := make([]dto.EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		result = append(result, employeeToDTO(e))
	}
	return result, nil
}

func (s *EmployeeService) FindEmployee(ctx context.Context, id string) (*dto.EmployeeDTO, error) {
	employee, err := s.employeeRepository.FindEmployee(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при поиске сотрудника", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	result := employeeToDTO(*employee)
	return &result, nil
}

func (s *EmployeeService) GetCounterpartyEmployees(ctx context.Context, counterpartyID string) ([]dto.CounterpartyEmployeeDTO, error) {
	employees, err := s.employeeRepository.GetEmployeesByCounterparty(ctx, counterpartyID)
	if err != nil {
		s.logger.Error("Ошибка при получении сотрудников контрагента", zap.String("counterpartyID", counterpartyID), zap.Error(err))
		return nil, err
	}
	result := make([]dto.CounterpartyEmployeeDTO, 0, len(employees))
	for _, e := range employees {
		result = append(result, dto.CounterpartyEmployeeDTO{
			ID:         e.ID,
			PersonID:   e.PersonID,
			Name:       e.Person.Name,
			LastName:   e.Person.LastName,
			MiddleName: e.Person.MiddleName,
			Position:   e.Position,
			Role:       e.RoleType,
			PhoneWork:  e.PhoneWork,
			EmailWork:  e.EmailWork,
		})
	}
	return result, nil
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*dto.EmployeeDTO, error) {
	employee := entities.Employee{
		ID:             idOrNew(payload.ID, uuid.NewString),
		CounterpartyID: payload.CounterpartyID,
		PersonID:       payload.PersonID,
		Position:       payload.Position,
		PhoneWork:      payload.PhoneWork,
		PhoneExtra:     payload.PhoneExtra,
		EmailWork:      payload.EmailWork,
		EmailExtra:     payload.EmailExtra,
		RoleType:       payload.RoleType,
		Comment:        payload.Comment,
	}
	if err := s.employeeRepository.CreateEmployee(ctx, employee); err != nil {
		s.logger.Error("Ошибка при создании сотрудника", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Сотрудник успешно создан", zap.String("id", employee.ID), zap.String("counterpartyID", employee.CounterpartyID))
	return s.FindEmployee(ctx, employee.ID)
}
