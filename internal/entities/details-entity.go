package entities

import "time"

// DetailsLLC - реквизиты ООО. В таблице ключевая колонка исторически называется counterparties_id.
type DetailsLLC struct {
	ID               int64
	CounterpartyID   string
	INN              string
	KPP              string
	OGRN             string
	OKPO             *string
	OKOGU            *string
	OKATO            *string
	OKTMO            *string
	OKFS             *string
	OKOPF            *string
	TaxSystem        *string
	OKVED            *string
	LegalAddress     string
	ActualAddress    string
	PostalAddress    string
	DirectorPersonID string
	DirectorBasis    *string
	DateRegister     *time.Time
}

type DetailsIP struct {
	ID             int64
	CounterpartyID string
	INN            string
	OGRNIP         *string
	OKPO           *string
	OKVED          *string
	OKOPF          *string
	OKFS           *string
	OKOGU          *string
	OKATO          *string
	OKTMO          *string
	PersonID       string
	DateRegister   *time.Time
}

type DetailsPhys struct {
	CounterpartyID      string
	PersonID            string
	PassportSeries      string
	PassportNumber      string
	PassportIssuedBy    string
	PassportDateIssued  time.Time
	PassportDate        time.Time
	DepartmentCode      string
	INN                 *string
	AddressRegistration string
	AddressLiving       string
}
