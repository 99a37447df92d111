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

type CounterpartyServiceInterface interface {
	GetCounterparties(ctx context.Context, filter dto.CounterpartyFilter) ([]dto.CounterpartyDTO, error)
	FindCounterparty(ctx context.Context, id string) (*dto.CounterpartyDTO, error)
	SearchCounterparties(ctx context.Context, q string) ([]dto.CounterpartyDTO, error)
	CreateCounterparty(ctx context.Context, payload dto.CreateCounterpartyDTO) (*dto.CounterpartyDTO, error)
	CreateDetailsLLC(ctx context.Context, payload dto.CreateDetailsLLCDTO) (*dto.DetailsLLCCreatedDTO, error)
	CreateDetailsIP(ctx context.Context, payload dto.CreateDetailsIPDTO) (*dto.DetailsIPCreatedDTO, error)
	CreateDetailsPhys(ctx context.Context, payload dto.CreateDetailsPhysDTO) (*dto.DetailsPhysCreatedDTO, error)
	CreateAdditional(ctx context.Context, payload dto.CreateCounterpartyAdditionalDTO) (*dto.CounterpartyAdditionalDTO, error)
}

type CounterpartyService struct {
	counterpartyRepository repositories.CounterpartyRepositoryInterface
	detailsRepository      repositories.DetailsRepositoryInterface
	logger                 *zap.Logger
}

func NewCounterpartyService(
	counterpartyRepository repositories.CounterpartyRepositoryInterface,
	detailsRepository repositories.DetailsRepositoryInterface,
	logger *zap.Logger,
) *CounterpartyService {
	return &CounterpartyService{
		counterpartyRepository: counterpartyRepository,
		detailsRepository:      detailsRepository,
		logger:                 logger,
	}
}

func counterpartyToDTO(c entities.Counterparty) dto.CounterpartyDTO {
	return dto.CounterpartyDTO{
		ID:             c.ID,
		Type:           string(c.Type),
		ShortName:      c.ShortName,
		FullName:       c.FullName,
		IsInternal:     c.IsInternal,
		ContractPrefix: c.ContractPrefix,
		CreatedAt:      c.CreatedAt,
	}
}

func counterpartiesToDTO(list []entities.Counterparty) []dto.CounterpartyDTO {
	result := make([]dto.CounterpartyDTO, 0, len(list))
	for _, c := range list {
		result = append(result, counterpartyToDTO(c))
	}
	return result
}

func (s *CounterpartyService) GetCounterparties(ctx context.Context, filter dto.CounterpartyFilter) ([]dto.CounterpartyDTO, error) {
	list, err := s.counterpartyRepository.GetCounterparties(ctx, filter)
	if err != nil {
		s.logger.Error("Ошибка при получении списка контрагентов", zap.Error(err))
		return nil, err
	}
	return counterpartiesToDTO(list), nil
}

func (s *CounterpartyService) FindCounterparty(ctx context.Context, id string) (*dto.CounterpartyDTO, error) {
	c, err := s.counterpartyRepository.FindCounterparty(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при поиске контрагента", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	result := counterpartyToDTO(*c)
	return &result, nil
}

func (s *CounterpartyService) SearchCounterparties(ctx context.Context, q string) ([]dto.CounterpartyDTO, error) {
	list, err := s.counterpartyRepository.SearchCounterparties(ctx, q)
	if err != nil {
		s.logger.Error("Ошибка при поиске контрагентов", zap.String("q", q), zap.Error(err))
		return nil, err
	}
	return counterpartiesToDTO(list), nil
}

func (s *CounterpartyService) CreateCounterparty(ctx context.Context, payload dto.CreateCounterpartyDTO) (*dto.CounterpartyDTO, error) {
	createdAt := time.Now().UTC()
	if payload.CreatedAt != nil {
		createdAt = *payload.CreatedAt
	}
	updatedAt := createdAt
	if payload.UpdatedAt != nil {
		updatedAt = *payload.UpdatedAt
	}

	c := entities.Counterparty{
		ID:             idOrNew(payload.ID, uuid.NewString),
		Type:           entities.CounterpartyType(payload.Type),
		ShortName:      payload.ShortName,
		FullName:       payload.FullName,
		IsInternal:     payload.IsInternal != nil && *payload.IsInternal,
		ContractPrefix: payload.ContractPrefix,
		BaseEntity:     types.BaseEntity{CreatedAt: &createdAt, UpdatedAt: &updatedAt},
	}
	if err := s.counterpartyRepository.CreateCounterparty(ctx, c); err != nil {
		s.logger.Error("Ошибка при создании контрагента", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Контрагент успешно создан", zap.String("id", c.ID), zap.String("type", string(c.Type)))
	return s.FindCounterparty(ctx, c.ID)
}

func (s *CounterpartyService) CreateDetailsLLC(ctx context.Context, payload dto.CreateDetailsLLCDTO) (*dto.DetailsLLCCreatedDTO, error) {
	dateRegister, err := parseOptionalDate("date_register", payload.DateRegister)
	if err != nil {
		return nil, err
	}
	details := entities.DetailsLLC{
		CounterpartyID:   payload.CounterpartiesID,
		INN:              payload.INN,
		KPP:              payload.KPP,
		OGRN:             payload.OGRN,
		OKPO:             payload.OKPO,
		OKOGU:            payload.OKOGU,
		OKATO:            payload.OKATO,
		OKTMO:            payload.OKTMO,
		OKFS:             payload.OKFS,
		OKOPF:            payload.OKOPF,
		TaxSystem:        payload.TaxSystem,
		OKVED:            payload.OKVED,
		LegalAddress:     payload.LegalAddress,
		ActualAddress:    payload.ActualAddress,
		PostalAddress:    payload.PostalAddress,
		DirectorPersonID: payload.DirectorPersonID,
		DirectorBasis:    payload.DirectorBasis,
		DateRegister:     dateRegister,
	}
	if payload.ID != nil {
		details.ID = *payload.ID
	}

	id, err := s.detailsRepository.CreateDetailsLLC(ctx, details)
	if err != nil {
		s.logger.Error("Ошибка при создании реквизитов ООО", zap.String("counterpartyID", details.CounterpartyID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Реквизиты ООО созданы", zap.Int64("id", id), zap.String("counterpartyID", details.CounterpartyID))
	return &dto.DetailsLLCCreatedDTO{ID: id, CounterpartiesID: details.CounterpartyID}, nil
}

func (s *CounterpartyService) CreateDetailsIP(ctx context.Context, payload dto.CreateDetailsIPDTO) (*dto.DetailsIPCreatedDTO, error) {
	dateRegister, err := parseOptionalDate("date_register", payload.DateRegister)
	if err != nil {
		return nil, err
	}
	details := entities.DetailsIP{
		CounterpartyID: payload.CounterpartyID,
		INN:            payload.INN,
		OGRNIP:         payload.OGRNIP,
		OKPO:           payload.OKPO,
		OKVED:          payload.OKVED,
		OKOPF:          payload.OKOPF,
		OKFS:           payload.OKFS,
		OKOGU:          payload.OKOGU,
		OKATO:          payload.OKATO,
		OKTMO:          payload.OKTMO,
		PersonID:       payload.PersonID,
		DateRegister:   dateRegister,
	}
	if payload.ID != nil {
		details.ID = *payload.ID
	}

	id, err := s.detailsRepository.CreateDetailsIP(ctx, details)
	if err != nil {
		s.logger.Error("Ошибка при создании реквизитов ИП", zap.String("counterpartyID", details.CounterpartyID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Реквизиты ИП созданы", zap.Int64("id", id), zap.String("counterpartyID", details.CounterpartyID))
	return &dto.DetailsIPCreatedDTO{ID: id, CounterpartyID: details.CounterpartyID}, nil
}

func (s *CounterpartyService) CreateDetailsPhys(ctx context.Context, payload dto.CreateDetailsPhysDTO) (*dto.DetailsPhysCreatedDTO, error) {
	dateIssued, err := parseDate("passport_date_issued", payload.PassportDateIssued)
	if err != nil {
		return nil, err
	}
	passportDate, err := parseDate("passport_date", payload.PassportDate)
	if err != nil {
		return nil, err
	}
	details := entities.DetailsPhys{
		CounterpartyID:      payload.CounterpartyID,
		PersonID:            payload.PersonID,
		PassportSeries:      payload.PassportSeries,
		PassportNumber:      payload.PassportNumber,
		PassportIssuedBy:    payload.PassportIssuedBy,
		PassportDateIssued:  dateIssued,
		PassportDate:        passportDate,
		DepartmentCode:      payload.DepartmentCode,
		INN:                 payload.INN,
		AddressRegistration: payload.AddressRegistration,
		AddressLiving:       payload.AddressLiving,
	}
	if err := s.detailsRepository.CreateDetailsPhys(ctx, details); err != nil {
		s.logger.Error("Ошибка при создании данных физлица", zap.String("counterpartyID", details.CounterpartyID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Данные физлица созданы", zap.String("counterpartyID", details.CounterpartyID))
	return &dto.DetailsPhysCreatedDTO{CounterpartyID: details.CounterpartyID, PersonID: details.PersonID}, nil
}

func (s *CounterpartyService) CreateAdditional(ctx context.Context, payload dto.CreateCounterpartyAdditionalDTO) (*dto.CounterpartyAdditionalDTO, error) {
	additional := entities.CounterpartyAdditional{
		CounterpartyID:  payload.CounterpartyID,
		AdditionalOkved: payload.AdditionalOkved,
	}
	if err := s.counterpartyRepository.CreateAdditional(ctx, additional); err != nil {
		s.logger.Error("Ошибка при добавлении ОКВЭД", zap.String("counterpartyID", additional.CounterpartyID), zap.Error(err))
		return nil, err
	}
	return &dto.CounterpartyAdditionalDTO{
		CounterpartyID:  additional.CounterpartyID,
		AdditionalOkved: additional.AdditionalOkved,
	}, nil
}
