package services

import (
	"context"
	"strings"
	"time"

	"reference-service/internal/dto"
	"reference-service/internal/entities"
	apperrors "reference-service/pkg/errors"
)

// memStore - справочная база в памяти, реализует интерфейсы репозиториев.
type memStore struct {
	objects        map[string]entities.Object
	counterparties map[string]entities.Counterparty
	additional     []entities.CounterpartyAdditional
	llc            map[string]entities.DetailsLLC
	ip             map[string]entities.DetailsIP
	phys           map[string]entities.DetailsPhys
	persons        map[string]entities.Person
	employees      []entities.Employee
	accounts       []entities.BankAccount
	internal       []entities.InternalEmployee
	users          map[string]entities.AuthUser
	nextDetailsID  int64
	failWith       error
}

func newMemStore() *memStore {
	return &memStore{
		objects:        map[string]entities.Object{},
		counterparties: map[string]entities.Counterparty{},
		llc:            map[string]entities.DetailsLLC{},
		ip:             map[string]entities.DetailsIP{},
		phys:           map[string]entities.DetailsPhys{},
		persons:        map[string]entities.Person{},
		users:          map[string]entities.AuthUser{},
		nextDetailsID:  1,
	}
}

// --- objects ---

func (m *memStore) withManager(o entities.Object) entities.ObjectWithManager {
	res := entities.ObjectWithManager{Object: o}
	if o.ManagerID == nil {
		return res
	}
	for _, e := range m.employees {
		if e.ID != *o.ManagerID {
			continue
		}
		if p, ok := m.persons[e.PersonID]; ok {
			res.Manager = &entities.ObjectManager{EmployeeID: e.ID, Position: e.Position, Name: p.Name, LastName: p.LastName}
		}
	}
	return res
}

func (m *memStore) GetObjects(ctx context.Context) ([]entities.ObjectWithManager, error) {
	res := []entities.ObjectWithManager{}
	for _, o := range m.objects {
		res = append(res, m.withManager(o))
	}
	return res, m.failWith
}

func (m *memStore) FindObject(ctx context.Context, id string) (*entities.ObjectWithManager, error) {
	o, ok := m.objects[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	res := m.withManager(o)
	return &res, nil
}

func (m *memStore) GetObjectsByManager(ctx context.Context, employeeID string) ([]entities.Object, error) {
	res := []entities.Object{}
	for _, o := range m.objects {
		if o.ManagerID != nil && *o.ManagerID == employeeID {
			res = append(res, o)
		}
	}
	return res, nil
}

func (m *memStore) CreateObject(ctx context.Context, o entities.Object) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.objects[o.ID] = o
	return nil
}

func (m *memStore) UpdateObject(ctx context.Context, id string, patch dto.UpdateObjectDTO) error {
	o, ok := m.objects[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if patch.Sent("short_name") {
		o.ShortName = patch.ShortName.Ptr()
	}
	if patch.Sent("full_name") {
		o.FullName = patch.FullName.Ptr()
	}
	if patch.Sent("address") {
		o.Address = patch.Address.Ptr()
	}
	if patch.Sent("is_active") {
		o.IsActive = patch.IsActive.Bool
	}
	if patch.Sent("manager_id") {
		o.ManagerID = patch.ManagerID.Ptr()
	}
	now := time.Now().UTC()
	o.UpdatedAt = &now
	m.objects[id] = o
	return nil
}

// --- counterparties ---

func (m *memStore) GetCounterparties(ctx context.Context, filter dto.CounterpartyFilter) ([]entities.Counterparty, error) {
	res := []entities.Counterparty{}
	for _, c := range m.counterparties {
		if filter.Type != nil && string(c.Type) != *filter.Type {
			continue
		}
		if filter.IsInternal != nil && c.IsInternal != *filter.IsInternal {
			continue
		}
		res = append(res, c)
	}
	return res, nil
}

func (m *memStore) FindCounterparty(ctx context.Context, id string) (*entities.Counterparty, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	c, ok := m.counterparties[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (m *memStore) SearchCounterparties(ctx context.Context, search string) ([]entities.Counterparty, error) {
	q := strings.ToLower(search)
	res := []entities.Counterparty{}
	for _, c := range m.counterparties {
		if strings.Contains(strings.ToLower(c.ShortName), q) || strings.Contains(strings.ToLower(c.FullName), q) {
			res = append(res, c)
		}
	}
	return res, nil
}

func (m *memStore) GetAdditionalOkved(ctx context.Context, counterpartyID string) ([]string, error) {
	res := []string{}
	for _, a := range m.additional {
		if a.CounterpartyID == counterpartyID {
			res = append(res, a.AdditionalOkved)
		}
	}
	return res, nil
}

func (m *memStore) GetSummarySources(ctx context.Context) ([]entities.CounterpartySummarySource, error) {
	res := []entities.CounterpartySummarySource{}
	for id, c := range m.counterparties {
		src := entities.CounterpartySummarySource{Counterparty: c}
		if d, ok := m.llc[id]; ok {
			src.LLC = &d
		}
		if d, ok := m.ip[id]; ok {
			src.IP = &d
		}
		if d, ok := m.phys[id]; ok {
			src.Phys = &d
		}
		res = append(res, src)
	}
	return res, nil
}

func (m *memStore) CreateCounterparty(ctx context.Context, c entities.Counterparty) error {
	m.counterparties[c.ID] = c
	return nil
}

func (m *memStore) CreateAdditional(ctx context.Context, a entities.CounterpartyAdditional) error {
	m.additional = append(m.additional, a)
	return nil
}

// --- details ---

func (m *memStore) FindDetailsLLC(ctx context.Context, id string) (*entities.DetailsLLC, error) {
	d, ok := m.llc[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &d, nil
}

func (m *memStore) FindDetailsIP(ctx context.Context, id string) (*entities.DetailsIP, error) {
	d, ok := m.ip[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &d, nil
}

func (m *memStore) FindDetailsPhys(ctx context.Context, id string) (*entities.DetailsPhys, error) {
	d, ok := m.phys[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &d, nil
}

func (m *memStore) CreateDetailsLLC(ctx context.Context, d entities.DetailsLLC) (int64, error) {
	if d.ID == 0 {
		d.ID = m.nextDetailsID
		m.nextDetailsID++
	}
	m.llc[d.CounterpartyID] = d
	return d.ID, nil
}

func (m *memStore) CreateDetailsIP(ctx context.Context, d entities.DetailsIP) (int64, error) {
	if d.ID == 0 {
		d.ID = m.nextDetailsID
		m.nextDetailsID++
	}
	m.ip[d.CounterpartyID] = d
	return d.ID, nil
}

func (m *memStore) CreateDetailsPhys(ctx context.Context, d entities.DetailsPhys) error {
	m.phys[d.CounterpartyID] = d
	return nil
}

// --- persons ---

func (m *memStore) GetPersons(ctx context.Context, search string) ([]entities.Person, error) {
	q := strings.ToLower(search)
	res := []entities.Person{}
	for _, p := range m.persons {
		fields := []string{p.Name, p.LastName, p.Phone, p.Email}
		if p.MiddleName != nil {
			fields = append(fields, *p.MiddleName)
		}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), q) {
				res = append(res, p)
				break
			}
		}
	}
	return res, nil
}

func (m *memStore) FindPerson(ctx context.Context, id string) (*entities.Person, error) {
	p, ok := m.persons[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (m *memStore) FindPersonsByIDs(ctx context.Context, ids []string) (map[string]entities.Person, error) {
	res := map[string]entities.Person{}
	for _, id := range ids {
		if p, ok := m.persons[id]; ok {
			res[id] = p
		}
	}
	return res, nil
}

func (m *memStore) CreatePerson(ctx context.Context, p entities.Person) error {
	m.persons[p.ID] = p
	return nil
}

// --- employees ---

func (m *memStore) employeeWithPerson(e entities.Employee) entities.EmployeeWithPerson {
	return entities.EmployeeWithPerson{
		Employee:    e,
		Person:      m.persons[e.PersonID],
		CompanyName: m.counterparties[e.CounterpartyID].ShortName,
	}
}

func (m *memStore) GetEmployees(ctx context.Context) ([]entities.EmployeeWithPerson, error) {
	res := []entities.EmployeeWithPerson{}
	for _, e := range m.employees {
		res = append(res, m.employeeWithPerson(e))
	}
	return res, nil
}

func (m *memStore) FindEmployee(ctx context.Context, id string) (*entities.EmployeeWithPerson, error) {
	for _, e := range m.employees {
		if e.ID == id {
			res := m.employeeWithPerson(e)
			return &res, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStore) GetEmployeesByCounterparty(ctx context.Context, counterpartyID string) ([]entities.EmployeeWithPerson, error) {
	res := []entities.EmployeeWithPerson{}
	for _, e := range m.employees {
		if e.CounterpartyID == counterpartyID {
			res = append(res, m.employeeWithPerson(e))
		}
	}
	return res, nil
}

func (m *memStore) FindEmployeeAt(ctx context.Context, counterpartyID, personID string) (*entities.Employee, error) {
	for _, e := range m.employees {
		if e.CounterpartyID == counterpartyID && e.PersonID == personID {
			res := e
			return &res, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStore) GetEmploymentsByPersons(ctx context.Context, personIDs []string) ([]entities.Employment, error) {
	wanted := map[string]bool{}
	for _, id := range personIDs {
		wanted[id] = true
	}
	res := []entities.Employment{}
	for _, e := range m.employees {
		if wanted[e.PersonID] {
			res = append(res, entities.Employment{Employee: e, CompanyName: m.counterparties[e.CounterpartyID].ShortName})
		}
	}
	return res, nil
}

func (m *memStore) CreateEmployee(ctx context.Context, e entities.Employee) error {
	m.employees = append(m.employees, e)
	return nil
}

// --- bank accounts ---

func (m *memStore) GetBankAccounts(ctx context.Context, counterpartyID string) ([]entities.BankAccount, error) {
	res := []entities.BankAccount{}
	for _, a := range m.accounts {
		if a.CounterpartyID == counterpartyID {
			res = append(res, a)
		}
	}
	return res, nil
}

func (m *memStore) FindBankAccount(ctx context.Context, id string) (*entities.BankAccount, error) {
	for _, a := range m.accounts {
		if a.ID == id {
			res := a
			return &res, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStore) CreateBankAccount(ctx context.Context, a entities.BankAccount) error {
	m.accounts = append(m.accounts, a)
	return nil
}

// --- internal employees и база авторизации ---

func (m *memStore) GetInternalEmployees(ctx context.Context) ([]entities.InternalEmployee, error) {
	return m.internal, nil
}

func (m *memStore) GetDepartments(ctx context.Context) ([]*string, error) {
	res := []*string{}
	for _, ie := range m.internal {
		res = append(res, ie.Department)
	}
	return res, nil
}

func (m *memStore) FindUsersByIDs(ctx context.Context, ids []string) (map[string]entities.AuthUser, error) {
	res := map[string]entities.AuthUser{}
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			res[id] = u
		}
	}
	return res, nil
}

type fakeSessionRepo struct {
	sessions map[string]time.Time
	err      error
	calls    int
	lastNow  time.Time
}

func (f *fakeSessionRepo) ExistsActive(ctx context.Context, tokenHash string, now time.Time) (bool, error) {
	f.calls++
	f.lastNow = now
	if f.err != nil {
		return false, f.err
	}
	expires, ok := f.sessions[tokenHash]
	return ok && expires.After(now), nil
}
