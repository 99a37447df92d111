package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"reference-service/internal/dto"
	"reference-service/internal/entities"
	"reference-service/internal/repositories"
)

type PersonServiceInterface interface {
	GetPersons(ctx context.Context, search string) ([]dto.PersonDTO, error)
	FindPerson(ctx context.Context, id string) (*dto.PersonDTO, error)
	CreatePerson(ctx context.Context, payload dto.CreatePersonDTO) (*dto.PersonDTO, error)
}

type PersonService struct {
	personRepository   repositories.PersonRepositoryInterface
	employeeRepository repositories.EmployeeRepositoryInterface
	logger             *zap.Logger
}

func NewPersonService(
	personRepository repositories.PersonRepositoryInterface,
	employeeRepository repositories.EmployeeRepositoryInterface,
	logger *zap.Logger,
) *PersonService {
	return &PersonService{
		personRepository:   personRepository,
		employeeRepository: employeeRepository,
		logger:             logger,
	}
}

func personToDTO(p entities.Person, companies []dto.PersonCompanyDTO) dto.PersonDTO {
	if companies == nil {
		companies = []dto.PersonCompanyDTO{}
	}
	return dto.PersonDTO{
		ID:         p.ID,
		Name:       p.Name,
		LastName:   p.LastName,
		MiddleName: p.MiddleName,
		FullName:   p.FullName(),
		Phone:      p.Phone,
		Email:      p.Email,
		BirthDate:  formatDay(p.BirthDate),
		Companies:  companies,
	}
}

// companiesByPerson одним запросом подтягивает места работы для всех персон.
func (s *PersonService) companiesByPerson(ctx context.Context, personIDs []string) (map[string][]dto.PersonCompanyDTO, error) {
	employments, err := s.employeeRepository.GetEmploymentsByPersons(ctx, personIDs)
	if err != nil {
		return nil, err
	}
	result := make(map[string][]dto.PersonCompanyDTO, len(personIDs))
	for _, em := range employments {
		result[em.PersonID] = append(result[em.PersonID], dto.PersonCompanyDTO{
			CompanyID:   em.CounterpartyID,
			CompanyName: em.CompanyName,
			Role:        em.RoleType,
			Position:    em.Position,
			PhoneWork:   em.PhoneWork,
			EmailWork:   em.EmailWork,
		})
	}
	return result, nil
}

func (s *PersonService) GetPersons(ctx context.Context, search string) ([]dto.PersonDTO, error) {
	persons, err := s.personRepository.GetPersons(ctx, search)
	if err != nil {
		s.logger.Error("Ошибка при получении списка лиц", zap.String("search", search), zap.Error(err))
		return nil, err
	}
	if len(persons) == 0 {
		return []dto.PersonDTO{}, nil
	}

	ids := make([]string, 0, len(persons))
	for _, p := range persons {
		ids = append(ids, p.ID)
	}
	companies, err := s.companiesByPerson(ctx, ids)
	if err != nil {
		s.logger.Error("Ошибка при получении мест работы", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PersonDTO, 0, len(persons))
	for _, p := range persons {
		result = append(result, personToDTO(p, companies[p.ID]))
	}
	return result, nil
}

func (s *PersonService) FindPerson(ctx context.Context, id string) (*dto.PersonDTO, error) {
	person, err := s.personRepository.FindPerson(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при поиске лица", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	companies, err := s.companiesByPerson(ctx, []string{id})
	if err != nil {
		s.logger.Error("Ошибка при получении мест работы", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	result := personToDTO(*person, companies[id])
	return &result, nil
}

func (s *PersonService) CreatePerson(ctx context.Context, payload dto.CreatePersonDTO) (*dto.PersonDTO, error) {
	birthDate, err := parseDate("birth_date", payload.BirthDate)
	if err != nil {
		return nil, err
	}
	person := entities.Person{
		ID:         idOrNew(payload.ID, uuid.NewString),
		Name:       payload.Name,
		LastName:   payload.LastName,
		MiddleName: payload.MiddleName,
		Phone:      payload.Phone,
		Email:      payload.Email,
		BirthDate:  birthDate,
	}
	if err := s.personRepository.CreatePerson(ctx, person); err != nil {
		s.logger.Error("Ошибка при создании лица", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Лицо успешно создано", zap.String("id", person.ID))
	return s.FindPerson(ctx, person.ID)
}
