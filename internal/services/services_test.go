package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"reference-service/internal/dto"
	"reference-service/internal/entities"
	apperrors "reference-service/pkg/errors"
	"reference-service/pkg/utils"
)

func newProfileService(m *memStore) *ProfileService {
	return NewProfileService(m, m, m, m, m, zap.NewNop())
}

func seedLLC(m *memStore) {
	m.counterparties["cp-llc"] = entities.Counterparty{ID: "cp-llc", Type: entities.CounterpartyTypeLLC, ShortName: "Ромашка", FullName: "ООО Ромашка"}
	m.llc["cp-llc"] = entities.DetailsLLC{
		ID: 1, CounterpartyID: "cp-llc", INN: "7701000000", KPP: "770101001", OGRN: "1027700000000",
		LegalAddress: "Москва", DirectorPersonID: "p-dir",
	}
	m.persons["p-dir"] = entities.Person{ID: "p-dir", Name: "Ivan", LastName: "Ivanov", Phone: "+7000", Email: "ivan@home.ru"}
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "ООО", TypeLabel(entities.CounterpartyTypeLLC))
	assert.Equal(t, "ИП", TypeLabel(entities.CounterpartyTypeIP))
	assert.Equal(t, "Физлицо", TypeLabel(entities.CounterpartyTypePhysic))
	assert.Equal(t, "GOV", TypeLabel("GOV"))
}

func TestFormatIdentifiers(t *testing.T) {
	assert.Equal(t, "-/-/-", FormatIdentifiers(nil, nil, nil))
	assert.Equal(t, "7701/-/-", FormatIdentifiers(utils.ToPtr("7701"), utils.ToPtr(""), nil))
	assert.Equal(t, "1/2/3", FormatIdentifiers(utils.ToPtr("1"), utils.ToPtr("2"), utils.ToPtr("3")))
}

func TestPickContact(t *testing.T) {
	person := &entities.Person{Phone: "+7000", Email: "home@mail.ru"}
	employee := &entities.Employee{PhoneWork: utils.ToPtr("+7111"), EmailWork: utils.ToPtr("work@corp.ru")}

	phone, email := PickContact(employee, person)
	assert.Equal(t, "+7111", *phone)
	assert.Equal(t, "work@corp.ru", *email)

	phone, email = PickContact(nil, person)
	assert.Equal(t, "+7000", *phone)
	assert.Equal(t, "home@mail.ru", *email)

	phone, email = PickContact(nil, nil)
	assert.Nil(t, phone)
	assert.Nil(t, email)
}

func TestFullNameOmitsEmptyParts(t *testing.T) {
	assert.Equal(t, "Ivanov Ivan", entities.Person{Name: "Ivan", LastName: "Ivanov"}.FullName())
	assert.Equal(t, "Ivan Sergeevich", entities.Person{Name: "Ivan", MiddleName: utils.ToPtr("Sergeevich")}.FullName())
	assert.Equal(t, "Petrov Petr", entities.AuthUser{Surname: "Petrov", Name: "Petr", Patronymic: utils.ToPtr("")}.FullName())
}

func TestSessionService_IsValid(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeSessionRepo{sessions: map[string]time.Time{
		HashToken("alive"):   now.Add(time.Hour),
		HashToken("expired"): now.Add(-time.Second),
		HashToken("edge"):    now,
	}}
	svc := NewSessionService(repo, zap.NewNop())
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	ok, err := svc.IsValid(ctx, "alive")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = svc.IsValid(ctx, "expired")
	assert.False(t, ok)

	// expires_at == now уже недействителен
	ok, _ = svc.IsValid(ctx, "edge")
	assert.False(t, ok)

	ok, _ = svc.IsValid(ctx, "unknown")
	assert.False(t, ok)
	assert.Equal(t, now, repo.lastNow)
}

func TestSessionService_EmptyTokenSkipsStore(t *testing.T) {
	repo := &fakeSessionRepo{}
	svc := NewSessionService(repo, zap.NewNop())

	ok, err := svc.IsValid(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, repo.calls)
	assert.ErrorIs(t, svc.Authenticate(context.Background(), ""), apperrors.ErrSessionMissing)
}

func TestSessionService_StoreFailureIsNotFalse(t *testing.T) {
	repo := &fakeSessionRepo{err: errors.New("auth db down")}
	svc := NewSessionService(repo, zap.NewNop())

	_, err := svc.IsValid(context.Background(), "token")
	assert.Error(t, err)
	err = svc.Authenticate(context.Background(), "token")
	assert.Error(t, err)
	assert.False(t, apperrors.IsUnauthorized(err))
}

func TestHashToken(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", HashToken(""))
	assert.Len(t, HashToken("abc"), 64)
}

func TestObjectService_GetObjectIsIdempotent(t *testing.T) {
	m := newMemStore()
	m.persons["p-1"] = entities.Person{ID: "p-1", Name: "Ivan", LastName: "Ivanov"}
	m.employees = append(m.employees, entities.Employee{ID: "e-1", PersonID: "p-1", Position: utils.ToPtr("Прораб")})
	svc := NewObjectService(m, zap.NewNop())

	created, err := svc.CreateObject(context.Background(), dto.CreateObjectDTO{ShortName: utils.ToPtr("Склад"), ManagerID: utils.ToPtr("e-1")})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	require.NotNil(t, created.Manager)
	assert.Equal(t, "Ivanov", created.Manager.LastName)

	first, err := svc.FindObject(context.Background(), created.ID)
	require.NoError(t, err)
	second, err := svc.FindObject(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestObjectService_ManagerWithoutPersonIsNull(t *testing.T) {
	m := newMemStore()
	m.employees = append(m.employees, entities.Employee{ID: "e-1", PersonID: "p-missing"})
	svc := NewObjectService(m, zap.NewNop())

	obj, err := svc.CreateObject(context.Background(), dto.CreateObjectDTO{ID: utils.ToPtr("obj-1"), ManagerID: utils.ToPtr("e-1")})
	require.NoError(t, err)
	assert.Equal(t, "obj-1", obj.ID)
	assert.Nil(t, obj.Manager)
}

func TestObjectService_UpdateObject(t *testing.T) {
	m := newMemStore()
	svc := NewObjectService(m, zap.NewNop())
	_, err := svc.CreateObject(context.Background(), dto.CreateObjectDTO{ID: utils.ToPtr("obj-1"), ShortName: utils.ToPtr("Склад"), Address: utils.ToPtr("Тверь")})
	require.NoError(t, err)

	updated, err := svc.UpdateObject(context.Background(), "obj-1", dto.UpdateObjectDTO{
		Address:    null.StringFromPtr(nil),
		SentFields: map[string]bool{"address": true},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Address)
	assert.Equal(t, "Склад", *updated.ShortName)

	_, err = svc.UpdateObject(context.Background(), "missing", dto.UpdateObjectDTO{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestObjectService_StoreFailurePropagates(t *testing.T) {
	m := newMemStore()
	m.failWith = errors.New("connection reset")
	svc := NewObjectService(m, zap.NewNop())

	_, err := svc.CreateObject(context.Background(), dto.CreateObjectDTO{})
	assert.EqualError(t, err, "connection reset")
}

func TestProfileService_LLC(t *testing.T) {
	m := newMemStore()
	seedLLC(m)
	m.additional = append(m.additional, entities.CounterpartyAdditional{CounterpartyID: "cp-llc", AdditionalOkved: "62.01"})
	m.accounts = append(m.accounts,
		entities.BankAccount{ID: "ba-1", CounterpartyID: "cp-llc", IsMain: true},
		entities.BankAccount{ID: "ba-2", CounterpartyID: "cp-llc", IsMain: true},
	)
	m.employees = append(m.employees, entities.Employee{
		ID: "e-dir", CounterpartyID: "cp-llc", PersonID: "p-dir",
		Position: utils.ToPtr("Генеральный директор"), PhoneWork: utils.ToPtr("+7999"), EmailWork: utils.ToPtr("dir@romashka.ru"),
	})

	profile, err := newProfileService(m).GetLLC(context.Background(), "cp-llc")
	require.NoError(t, err)
	assert.Equal(t, "7701000000", profile.Details.INN)
	assert.Equal(t, []string{"62.01"}, profile.AdditionalOkved)
	assert.Len(t, profile.BankAccounts, 2)
	require.NotNil(t, profile.Director)
	assert.Equal(t, "Генеральный директор", *profile.Director.Position)
	assert.Equal(t, "+7999", *profile.Director.Phone)
	assert.Equal(t, "dir@romashka.ru", *profile.Director.Email)
}

func TestProfileService_LLCDirectorFallsBackToPersonalContact(t *testing.T) {
	m := newMemStore()
	seedLLC(m)

	profile, err := newProfileService(m).GetLLC(context.Background(), "cp-llc")
	require.NoError(t, err)
	require.NotNil(t, profile.Director)
	assert.Nil(t, profile.Director.Position)
	assert.Equal(t, "+7000", *profile.Director.Phone)
	assert.Equal(t, "ivan@home.ru", *profile.Director.Email)
	assert.Empty(t, profile.BankAccounts)
}

func TestProfileService_LLCWithoutDetailsIsNotFound(t *testing.T) {
	m := newMemStore()
	m.counterparties["cp-1"] = entities.Counterparty{ID: "cp-1", Type: entities.CounterpartyTypeLLC}

	_, err := newProfileService(m).GetLLC(context.Background(), "cp-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = newProfileService(m).GetFullProfile(context.Background(), "cp-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProfileService_WrongTypeIsNotFound(t *testing.T) {
	m := newMemStore()
	seedLLC(m)

	_, err := newProfileService(m).GetIP(context.Background(), "cp-llc")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = newProfileService(m).GetPhys(context.Background(), "cp-llc")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProfileService_IPOwnerMissingIsNull(t *testing.T) {
	m := newMemStore()
	m.counterparties["cp-ip"] = entities.Counterparty{ID: "cp-ip", Type: entities.CounterpartyTypeIP, ShortName: "ИП Петров"}
	m.ip["cp-ip"] = entities.DetailsIP{ID: 5, CounterpartyID: "cp-ip", INN: "500100", PersonID: "p-missing"}

	profile, err := newProfileService(m).GetIP(context.Background(), "cp-ip")
	require.NoError(t, err)
	assert.Nil(t, profile.Owner)
	assert.Equal(t, "500100", profile.Details.INN)
}

func TestProfileService_PhysRequiresPerson(t *testing.T) {
	m := newMemStore()
	m.counterparties["cp-ph"] = entities.Counterparty{ID: "cp-ph", Type: entities.CounterpartyTypePhysic}
	m.phys["cp-ph"] = entities.DetailsPhys{CounterpartyID: "cp-ph", PersonID: "p-1", AddressRegistration: "Казань"}

	_, err := newProfileService(m).GetPhys(context.Background(), "cp-ph")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	m.persons["p-1"] = entities.Person{ID: "p-1", Name: "Anna", LastName: "Smirnova", BirthDate: time.Date(1991, 3, 4, 0, 0, 0, 0, time.UTC)}
	profile, err := newProfileService(m).GetPhys(context.Background(), "cp-ph")
	require.NoError(t, err)
	assert.Equal(t, "1991-03-04", profile.PersonalData.BirthDate)
	assert.Equal(t, "Казань", profile.Addresses.Registration)
	assert.Nil(t, profile.Employment.Position)
	assert.Nil(t, profile.Employment.PhoneWork)
}

func TestProfileService_FullProfileDispatch(t *testing.T) {
	m := newMemStore()
	seedLLC(m)
	m.counterparties["cp-gov"] = entities.Counterparty{ID: "cp-gov", Type: "GOV"}
	svc := newProfileService(m)

	profile, err := svc.GetFullProfile(context.Background(), "cp-llc")
	require.NoError(t, err)
	assert.Equal(t, "LLC", profile.CounterpartyType())
	_, ok := profile.(*dto.CounterpartyLLCDTO)
	assert.True(t, ok)

	_, err = svc.GetFullProfile(context.Background(), "cp-gov")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.GetFullProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProfileService_Summaries(t *testing.T) {
	m := newMemStore()
	seedLLC(m)
	m.employees = append(m.employees, entities.Employee{
		ID: "e-dir", CounterpartyID: "cp-llc", PersonID: "p-dir", PhoneWork: utils.ToPtr("+7999"), EmailWork: utils.ToPtr("dir@romashka.ru"),
	})
	m.counterparties["cp-empty"] = entities.Counterparty{ID: "cp-empty", Type: entities.CounterpartyTypeIP, ShortName: "Без реквизитов"}
	m.counterparties["cp-ip"] = entities.Counterparty{ID: "cp-ip", Type: entities.CounterpartyTypeIP}
	m.ip["cp-ip"] = entities.DetailsIP{CounterpartyID: "cp-ip", INN: "500100", OGRNIP: utils.ToPtr("304500"), PersonID: "p-own"}
	m.persons["p-own"] = entities.Person{ID: "p-own", Name: "Petr", LastName: "Petrov", Phone: "+7222", Email: "petr@mail.ru"}

	rows, err := newProfileService(m).GetSummaries(context.Background())
	require.NoError(t, err)
	byID := map[string]dto.CounterpartySummaryDTO{}
	for _, r := range rows {
		byID[r.ID] = r
	}
	require.Len(t, byID, 3)

	llc := byID["cp-llc"]
	assert.Equal(t, "ООО", llc.TypeLabel)
	assert.Equal(t, "7701000000/1027700000000/770101001", llc.InnOgrnKpp)
	assert.Equal(t, "Москва", *llc.Address)
	assert.Equal(t, "Ivanov Ivan", *llc.ContactName)
	assert.Equal(t, "+7999", *llc.ContactPhone)

	ip := byID["cp-ip"]
	assert.Equal(t, "500100/304500/-", ip.InnOgrnKpp)
	assert.Nil(t, ip.Address)
	assert.Equal(t, "+7222", *ip.ContactPhone)

	empty := byID["cp-empty"]
	assert.Equal(t, "-/-/-", empty.InnOgrnKpp)
	assert.Nil(t, empty.Address)
	assert.Nil(t, empty.ContactName)
	assert.Nil(t, empty.ContactPhone)
}

func TestPersonService_CreateRoundTrip(t *testing.T) {
	m := newMemStore()
	svc := NewPersonService(m, m, zap.NewNop())

	payload := dto.CreatePersonDTO{
		Name: "Ivan", LastName: "Ivanov", MiddleName: utils.ToPtr("Sergeevich"),
		Phone: "+79990001122", Email: "ivan@example.com", BirthDate: "1990-05-01",
	}
	created, err := svc.CreatePerson(context.Background(), payload)
	require.NoError(t, err)

	got, err := svc.FindPerson(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, payload.Name, got.Name)
	assert.Equal(t, payload.LastName, got.LastName)
	assert.Equal(t, payload.MiddleName, got.MiddleName)
	assert.Equal(t, payload.Phone, got.Phone)
	assert.Equal(t, payload.Email, got.Email)
	assert.Equal(t, payload.BirthDate, got.BirthDate)
	assert.Equal(t, "Ivanov Ivan Sergeevich", got.FullName)
	assert.Empty(t, got.Companies)
}

func TestPersonService_ListAttachesCompanies(t *testing.T) {
	m := newMemStore()
	m.counterparties["cp-1"] = entities.Counterparty{ID: "cp-1", ShortName: "Ромашка"}
	m.persons["p-1"] = entities.Person{ID: "p-1", Name: "Ivan", LastName: "Ivanov"}
	m.persons["p-2"] = entities.Person{ID: "p-2", Name: "Olga", LastName: "Orlova"}
	m.employees = append(m.employees, entities.Employee{ID: "e-1", CounterpartyID: "cp-1", PersonID: "p-1", RoleType: "director"})
	svc := NewPersonService(m, m, zap.NewNop())

	persons, err := svc.GetPersons(context.Background(), "ivan")
	require.NoError(t, err)
	require.Len(t, persons, 1)
	require.Len(t, persons[0].Companies, 1)
	assert.Equal(t, "Ромашка", persons[0].Companies[0].CompanyName)
	assert.Equal(t, "director", persons[0].Companies[0].Role)

	_, err = svc.FindPerson(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPersonService_CreateRejectsBadDate(t *testing.T) {
	svc := NewPersonService(newMemStore(), newMemStore(), zap.NewNop())
	_, err := svc.CreatePerson(context.Background(), dto.CreatePersonDTO{BirthDate: "01.05.1990"})
	var invalid *apperrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "birth_date", invalid.Field)
}

func TestBankAccountService_DefaultsTreasuryAndAllowsManyMain(t *testing.T) {
	m := newMemStore()
	svc := NewBankAccountService(m, zap.NewNop())
	isMain := true

	first, err := svc.CreateBankAccount(context.Background(), dto.CreateBankAccountDTO{CounterpartyID: "cp-1", IsMain: &isMain})
	require.NoError(t, err)
	assert.False(t, first.IsTreasury)
	_, err = svc.CreateBankAccount(context.Background(), dto.CreateBankAccountDTO{CounterpartyID: "cp-1", IsMain: &isMain})
	require.NoError(t, err)

	accounts, err := svc.GetBankAccounts(context.Background(), "cp-1")
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestEmployeeService_CreateReadsBack(t *testing.T) {
	m := newMemStore()
	m.counterparties["cp-1"] = entities.Counterparty{ID: "cp-1", ShortName: "Ромашка"}
	m.persons["p-1"] = entities.Person{ID: "p-1", Name: "Ivan", LastName: "Ivanov"}
	svc := NewEmployeeService(m, zap.NewNop())

	created, err := svc.CreateEmployee(context.Background(), dto.CreateEmployeeDTO{CounterpartyID: "cp-1", PersonID: "p-1", RoleType: "manager"})
	require.NoError(t, err)
	assert.Equal(t, "Ivanov Ivan", created.FullName)
	assert.Equal(t, "Ромашка", created.CompanyName)

	list, err := svc.GetCounterpartyEmployees(context.Background(), "cp-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ivan", list[0].Name)
}

func TestCounterpartyService_CreateAndDetails(t *testing.T) {
	m := newMemStore()
	svc := NewCounterpartyService(m, m, zap.NewNop())
	internal := true

	created, err := svc.CreateCounterparty(context.Background(), dto.CreateCounterpartyDTO{
		Type: "LLC", ShortName: "Ромашка", FullName: "ООО Ромашка", IsInternal: &internal,
	})
	require.NoError(t, err)
	assert.Equal(t, "LLC", created.Type)
	assert.NotNil(t, created.CreatedAt)

	llc, err := svc.CreateDetailsLLC(context.Background(), dto.CreateDetailsLLCDTO{
		CounterpartiesID: created.ID, INN: "7701", KPP: "7701", OGRN: "1027", DirectorPersonID: "p-1",
		DateRegister: utils.ToPtr("2010-02-03"),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, llc.CounterpartiesID)
	assert.NotZero(t, llc.ID)
	assert.Equal(t, 3, m.llc[created.ID].DateRegister.Day())

	phys, err := svc.CreateDetailsPhys(context.Background(), dto.CreateDetailsPhysDTO{
		CounterpartyID: "cp-ph", PersonID: "p-1", PassportDateIssued: "2015-01-01", PassportDate: "2015-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "p-1", phys.PersonID)

	_, err = svc.CreateDetailsIP(context.Background(), dto.CreateDetailsIPDTO{CounterpartyID: "cp-ip", DateRegister: utils.ToPtr("bad")})
	assert.Error(t, err)

	additional, err := svc.CreateAdditional(context.Background(), dto.CreateCounterpartyAdditionalDTO{CounterpartyID: created.ID, AdditionalOkved: "62.01"})
	require.NoError(t, err)
	assert.Equal(t, "62.01", additional.AdditionalOkved)
}

func TestInternalEmployeeService_GroupsByDepartment(t *testing.T) {
	m := newMemStore()
	m.internal = []entities.InternalEmployee{
		{ID: "ie-1", UserID: "u-1", Department: utils.ToPtr("Бухгалтерия"), CounterpartyID: "cp-1", CounterpartyName: "Ромашка"},
		{ID: "ie-2", UserID: "u-2", CounterpartyID: "cp-1"},
		{ID: "ie-3", UserID: "u-3", Department: utils.ToPtr("Бухгалтерия")},
	}
	m.users["u-1"] = entities.AuthUser{ID: "u-1", Surname: "Ivanov", Name: "Ivan"}
	m.users["u-2"] = entities.AuthUser{ID: "u-2", Name: "Ivan", Patronymic: utils.ToPtr("Sergeevich")}
	svc := NewInternalEmployeeService(m, m, zap.NewNop())

	groups, err := svc.GetGroupedByDepartment(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Бухгалтерия", groups[1].Department)
	assert.Len(t, groups[1].Employees, 2)
	assert.Equal(t, NoDepartment, groups[0].Department)
	assert.Equal(t, "Ivan Sergeevich", groups[0].Employees[0].FullName)

	departments, err := svc.GetDepartments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{NoDepartment, "Бухгалтерия"}, departments)
}
