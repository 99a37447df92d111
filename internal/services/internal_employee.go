package services

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"reference-service/internal/dto"
	"reference-service/internal/repositories"
)

type InternalEmployeeServiceInterface interface {
	GetGroupedByDepartment(ctx context.Context) ([]dto.DepartmentGroupDTO, error)
	GetDepartments(ctx context.Context) ([]string, error)
}

// InternalEmployeeService склеивает данные двух независимых баз:
// сотрудников из справочной и ФИО пользователей из базы авторизации.
type InternalEmployeeService struct {
	internalEmployeeRepository repositories.InternalEmployeeRepositoryInterface
	userRepository             repositories.UserRepositoryInterface
	logger                     *zap.Logger
}

func NewInternalEmployeeService(
	internalEmployeeRepository repositories.InternalEmployeeRepositoryInterface,
	userRepository repositories.UserRepositoryInterface,
	logger *zap.Logger,
) *InternalEmployeeService {
	return &InternalEmployeeService{
		internalEmployeeRepository: internalEmployeeRepository,
		userRepository:             userRepository,
		logger:                     logger,
	}
}

func (s *InternalEmployeeService) GetGroupedByDepartment(ctx context.Context) ([]dto.DepartmentGroupDTO, error) {
	employees, err := s.internalEmployeeRepository.GetInternalEmployees(ctx)
	if err != nil {
		s.logger.Error("Ошибка при получении внутренних сотрудников", zap.Error(err))
		return nil, err
	}

	seen := make(map[string]struct{}, len(employees))
	userIDs := make([]string, 0, len(employees))
	for _, e := range employees {
		if _, ok := seen[e.UserID]; ok {
			continue
		}
		seen[e.UserID] = struct{}{}
		userIDs = append(userIDs, e.UserID)
	}

	users, err := s.userRepository.FindUsersByIDs(ctx, userIDs)
	if err != nil {
		s.logger.Error("Ошибка при получении пользователей из базы авторизации", zap.Error(err))
		return nil, err
	}

	groups := make(map[string][]dto.InternalEmployeeDTO)
	for _, e := range employees {
		fullName := ""
		if u, ok := users[e.UserID]; ok {
			fullName = u.FullName()
		} else {
			s.logger.Warn("Пользователь не найден в базе авторизации", zap.String("userID", e.UserID))
		}
		label := departmentLabel(e.Department)
		groups[label] = append(groups[label], dto.InternalEmployeeDTO{
			ID:               e.ID,
			UserID:           e.UserID,
			FullName:         fullName,
			Position:         e.Position,
			CounterpartyID:   e.CounterpartyID,
			CounterpartyName: e.CounterpartyName,
		})
	}

	labels := make([]string, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	result := make([]dto.DepartmentGroupDTO, 0, len(labels))
	for _, label := range labels {
		result = append(result, dto.DepartmentGroupDTO{Department: label, Employees: groups[label]})
	}
	return result, nil
}

func (s *InternalEmployeeService) GetDepartments(ctx context.Context) ([]string, error) {
	departments, err := s.internalEmployeeRepository.GetDepartments(ctx)
	if err != nil {
		s.logger.Error("Ошибка при получении отделов", zap.Error(err))
		return nil, err
	}
	unique := make(map[string]struct{}, len(departments))
	for _, d := range departments {
		unique[departmentLabel(d)] = struct{}{}
	}
	result := make([]string, 0, len(unique))
	for label := range unique {
		result = append(result, label)
	}
	sort.Strings(result)
	return result, nil
}
