package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"reference-service/internal/dto"
	"reference-service/internal/entities"
	"reference-service/internal/repositories"
	apperrors "reference-service/pkg/errors"
	"reference-service/pkg/utils"
)

type ProfileServiceInterface interface {
	GetLLC(ctx context.Context, id string) (*dto.CounterpartyLLCDTO, error)
	GetIP(ctx context.Context, id string) (*dto.CounterpartyIPDTO, error)
	GetPhys(ctx context.Context, id string) (*dto.CounterpartyPhysDTO, error)
	GetFullProfile(ctx context.Context, id string) (dto.FullProfileDTO, error)
	GetSummaries(ctx context.Context) ([]dto.CounterpartySummaryDTO, error)
}

// ProfileService собирает профили контрагентов из нескольких таблиц.
type ProfileService struct {
	counterpartyRepository repositories.CounterpartyRepositoryInterface
	detailsRepository      repositories.DetailsRepositoryInterface
	personRepository       repositories.PersonRepositoryInterface
	employeeRepository     repositories.EmployeeRepositoryInterface
	bankAccountRepository  repositories.BankAccountRepositoryInterface
	logger                 *zap.Logger
}

func NewProfileService(
	counterpartyRepository repositories.CounterpartyRepositoryInterface,
	detailsRepository repositories.DetailsRepositoryInterface,
	personRepository repositories.PersonRepositoryInterface,
	employeeRepository repositories.EmployeeRepositoryInterface,
	bankAccountRepository repositories.BankAccountRepositoryInterface,
	logger *zap.Logger,
) *ProfileService {
	return &ProfileService{
		counterpartyRepository: counterpartyRepository,
		detailsRepository:      detailsRepository,
		personRepository:       personRepository,
		employeeRepository:     employeeRepository,
		bankAccountRepository:  bankAccountRepository,
		logger:                 logger,
	}
}

// findTyped: контрагент другого типа для типизированного профиля считается ненайденным.
func (s *ProfileService) findTyped(ctx context.Context, id string, want entities.CounterpartyType) (*entities.Counterparty, error) {
	c, err := s.counterpartyRepository.FindCounterparty(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Type != want {
		s.logger.Debug("Тип контрагента не совпадает", zap.String("id", id), zap.String("type", string(c.Type)), zap.String("want", string(want)))
		return nil, apperrors.ErrNotFound
	}
	return c, nil
}

// optionalPerson: отсутствие персоны не ошибка, возвращается nil.
func (s *ProfileService) optionalPerson(ctx context.Context, id string) (*entities.Person, error) {
	p, err := s.personRepository.FindPerson(ctx, id)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

func (s *ProfileService) optionalEmployee(ctx context.Context, counterpartyID, personID string) (*entities.Employee, error) {
	e, err := s.employeeRepository.FindEmployeeAt(ctx, counterpartyID, personID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	return e, err
}

func basicInfo(c *entities.Counterparty) dto.BasicInfoDTO {
	return dto.BasicInfoDTO{
		ShortName:      c.ShortName,
		FullName:       c.FullName,
		IsInternal:     c.IsInternal,
		ContractPrefix: c.ContractPrefix,
	}
}

func (s *ProfileService) GetLLC(ctx context.Context, id string) (*dto.CounterpartyLLCDTO, error) {
	result, err := s.buildLLC(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при получении профиля ООО", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (s *ProfileService) buildLLC(ctx context.Context, id string) (*dto.CounterpartyLLCDTO, error) {
	c, err := s.findTyped(ctx, id, entities.CounterpartyTypeLLC)
	if err != nil {
		return nil, err
	}
	details, err := s.detailsRepository.FindDetailsLLC(ctx, id)
	if err != nil {
		return nil, err
	}
	okved, err := s.counterpartyRepository.GetAdditionalOkved(ctx, id)
	if err != nil {
		return nil, err
	}
	person, err := s.optionalPerson(ctx, details.DirectorPersonID)
	if err != nil {
		return nil, err
	}

	var director *dto.LLCDirectorDTO
	if person != nil {
		employee, err := s.optionalEmployee(ctx, id, person.ID)
		if err != nil {
			return nil, err
		}
		phone, email := PickContact(employee, person)
		director = &dto.LLCDirectorDTO{
			ID:         person.ID,
			Name:       person.Name,
			LastName:   person.LastName,
			MiddleName: person.MiddleName,
			Phone:      phone,
			Email:      email,
		}
		if employee != nil {
			director.Position = employee.Position
		}
	}

	accounts, err := s.bankAccountRepository.GetBankAccounts(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.CounterpartyLLCDTO{
		ID:        c.ID,
		BasicInfo: basicInfo(c),
		Details: dto.LLCDetailsDTO{
			INN:           details.INN,
			KPP:           details.KPP,
			OGRN:          details.OGRN,
			OKPO:          details.OKPO,
			OKVED:         details.OKVED,
			TaxSystem:     details.TaxSystem,
			LegalAddress:  details.LegalAddress,
			ActualAddress: details.ActualAddress,
			PostalAddress: details.PostalAddress,
			DateRegister:  formatDate(details.DateRegister),
		},
		AdditionalOkved: okved,
		Director:        director,
		BankAccounts:    bankAccountsToDTO(accounts),
	}, nil
}

func (s *ProfileService) GetIP(ctx context.Context, id string) (*dto.CounterpartyIPDTO, error) {
	result, err := s.buildIP(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при получении профиля ИП", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (s *ProfileService) buildIP(ctx context.Context, id string) (*dto.CounterpartyIPDTO, error) {
	c, err := s.findTyped(ctx, id, entities.CounterpartyTypeIP)
	if err != nil {
		return nil, err
	}
	details, err := s.detailsRepository.FindDetailsIP(ctx, id)
	if err != nil {
		return nil, err
	}
	okved, err := s.counterpartyRepository.GetAdditionalOkved(ctx, id)
	if err != nil {
		return nil, err
	}
	person, err := s.optionalPerson(ctx, details.PersonID)
	if err != nil {
		return nil, err
	}

	var owner *dto.IPOwnerDTO
	if person != nil {
		owner = &dto.IPOwnerDTO{
			ID:         person.ID,
			Name:       person.Name,
			LastName:   person.LastName,
			MiddleName: person.MiddleName,
			BirthDate:  formatDay(person.BirthDate),
			Phone:      person.Phone,
			Email:      person.Email,
		}
	}

	return &dto.CounterpartyIPDTO{
		ID:        c.ID,
		BasicInfo: basicInfo(c),
		Details: dto.IPDetailsDTO{
			INN:          details.INN,
			OGRNIP:       details.OGRNIP,
			OKPO:         details.OKPO,
			OKVED:        details.OKVED,
			OKOPF:        details.OKOPF,
			OKFS:         details.OKFS,
			OKOGU:        details.OKOGU,
			OKATO:        details.OKATO,
			OKTMO:        details.OKTMO,
			DateRegister: formatDate(details.DateRegister),
		},
		AdditionalOkved: okved,
		Owner:           owner,
	}, nil
}

func (s *ProfileService) GetPhys(ctx context.Context, id string) (*dto.CounterpartyPhysDTO, error) {
	result, err := s.buildPhys(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при получении профиля физлица", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// buildPhys строже ООО и ИП: без персоны профиль физлица не отдаётся.
func (s *ProfileService) buildPhys(ctx context.Context, id string) (*dto.CounterpartyPhysDTO, error) {
	c, err := s.findTyped(ctx, id, entities.CounterpartyTypePhysic)
	if err != nil {
		return nil, err
	}
	details, err := s.detailsRepository.FindDetailsPhys(ctx, id)
	if err != nil {
		return nil, err
	}
	person, err := s.personRepository.FindPerson(ctx, details.PersonID)
	if err != nil {
		return nil, err
	}
	employee, err := s.optionalEmployee(ctx, id, details.PersonID)
	if err != nil {
		return nil, err
	}

	var employment dto.EmploymentDTO
	if employee != nil {
		employment = dto.EmploymentDTO{
			Position:  employee.Position,
			PhoneWork: employee.PhoneWork,
			EmailWork: employee.EmailWork,
		}
	}

	return &dto.CounterpartyPhysDTO{
		ID: c.ID,
		BasicInfo: dto.PhysBasicInfoDTO{
			ShortName:  c.ShortName,
			FullName:   c.FullName,
			IsInternal: c.IsInternal,
		},
		PersonalData: dto.PersonalDataDTO{
			Name:       person.Name,
			LastName:   person.LastName,
			MiddleName: person.MiddleName,
			BirthDate:  formatDay(person.BirthDate),
			Phone:      person.Phone,
			Email:      person.Email,
		},
		Passport: dto.PassportDTO{
			Series:         details.PassportSeries,
			Number:         details.PassportNumber,
			IssuedBy:       details.PassportIssuedBy,
			DateIssued:     formatDay(details.PassportDateIssued),
			DepartmentCode: details.DepartmentCode,
		},
		Addresses: dto.AddressesDTO{
			Registration: details.AddressRegistration,
			Living:       details.AddressLiving,
		},
		Employment: employment,
	}, nil
}

func (s *ProfileService) GetFullProfile(ctx context.Context, id string) (dto.FullProfileDTO, error) {
	c, err := s.counterpartyRepository.FindCounterparty(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при получении полного профиля", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	var profile dto.FullProfileDTO
	switch c.Type {
	case entities.CounterpartyTypeLLC:
		profile, err = s.GetLLC(ctx, id)
	case entities.CounterpartyTypeIP:
		profile, err = s.GetIP(ctx, id)
	case entities.CounterpartyTypePhysic:
		profile, err = s.GetPhys(ctx, id)
	default:
		s.logger.Warn("Неизвестный тип контрагента", zap.String("id", id), zap.String("type", string(c.Type)))
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

type employmentKey struct {
	counterpartyID string
	personID       string
}

func (s *ProfileService) GetSummaries(ctx context.Context) ([]dto.CounterpartySummaryDTO, error) {
	sources, err := s.counterpartyRepository.GetSummarySources(ctx)
	if err != nil {
		s.logger.Error("Ошибка при получении сводки контрагентов", zap.Error(err))
		return nil, err
	}

	personIDs := make([]string, 0, len(sources))
	for _, src := range sources {
		if id := contactPersonID(src); id != "" {
			personIDs = append(personIDs, id)
		}
	}

	persons, err := s.personRepository.FindPersonsByIDs(ctx, personIDs)
	if err != nil {
		s.logger.Error("Ошибка при получении контактных лиц", zap.Error(err))
		return nil, err
	}
	employments, err := s.employeeRepository.GetEmploymentsByPersons(ctx, personIDs)
	if err != nil {
		s.logger.Error("Ошибка при получении сотрудников контактных лиц", zap.Error(err))
		return nil, err
	}
	byKey := make(map[employmentKey]entities.Employee, len(employments))
	for _, em := range employments {
		key := employmentKey{counterpartyID: em.CounterpartyID, personID: em.PersonID}
		if _, ok := byKey[key]; !ok {
			byKey[key] = em.Employee
		}
	}

	result := make([]dto.CounterpartySummaryDTO, 0, len(sources))
	for _, src := range sources {
		row := summaryRow(src)
		if id := contactPersonID(src); id != "" {
			if person, ok := persons[id]; ok {
				var employee *entities.Employee
				if e, ok := byKey[employmentKey{counterpartyID: src.ID, personID: id}]; ok {
					employee = &e
				}
				row.ContactName = utils.ToPtr(person.FullName())
				row.ContactPhone, row.ContactEmail = PickContact(employee, &person)
			}
		}
		result = append(result, row)
	}
	return result, nil
}

// contactPersonID - директор для ООО, владелец для ИП, сама персона для физлица.
func contactPersonID(src entities.CounterpartySummarySource) string {
	switch src.Type {
	case entities.CounterpartyTypeLLC:
		if src.LLC != nil {
			return src.LLC.DirectorPersonID
		}
	case entities.CounterpartyTypeIP:
		if src.IP != nil {
			return src.IP.PersonID
		}
	case entities.CounterpartyTypePhysic:
		if src.Phys != nil {
			return src.Phys.PersonID
		}
	}
	return ""
}

func summaryRow(src entities.CounterpartySummarySource) dto.CounterpartySummaryDTO {
	row := dto.CounterpartySummaryDTO{
		ID:         src.ID,
		Type:       string(src.Type),
		TypeLabel:  TypeLabel(src.Type),
		ShortName:  src.ShortName,
		FullName:   src.FullName,
		IsInternal: src.IsInternal,
		InnOgrnKpp: FormatIdentifiers(nil, nil, nil),
	}
	switch {
	case src.Type == entities.CounterpartyTypeLLC && src.LLC != nil:
		row.Address = utils.EmptyToNil(utils.ToPtr(src.LLC.LegalAddress))
		row.InnOgrnKpp = FormatIdentifiers(&src.LLC.INN, &src.LLC.OGRN, &src.LLC.KPP)
	case src.Type == entities.CounterpartyTypeIP && src.IP != nil:
		row.InnOgrnKpp = FormatIdentifiers(&src.IP.INN, src.IP.OGRNIP, nil)
	case src.Type == entities.CounterpartyTypePhysic && src.Phys != nil:
		row.Address = utils.EmptyToNil(utils.ToPtr(src.Phys.AddressRegistration))
		row.InnOgrnKpp = FormatIdentifiers(src.Phys.INN, nil, nil)
	}
	return row
}
