package dto

type CreateDetailsLLCDTO struct {
	ID               *int64  `json:"id" validate:"omitempty,gt=0"`
	CounterpartiesID string  `json:"counterparties_id" validate:"required,max=36"`
	INN              string  `json:"inn" validate:"required,digits,max=50"`
	KPP              string  `json:"kpp" validate:"required,max=50"`
	OGRN             string  `json:"ogrn" validate:"required,digits,max=50"`
	OKPO             *string `json:"okpo" validate:"omitempty,max=200"`
	OKOGU            *string `json:"okogu" validate:"omitempty,max=200"`
	OKATO            *string `json:"okato" validate:"omitempty,max=200"`
	OKTMO            *string `json:"oktmo" validate:"omitempty,max=200"`
	OKFS             *string `json:"okfs" validate:"omitempty,max=200"`
	OKOPF            *string `json:"okopf" validate:"omitempty,max=200"`
	TaxSystem        *string `json:"tax_system" validate:"omitempty,max=200"`
	OKVED            *string `json:"okved" validate:"omitempty,max=200"`
	LegalAddress     string  `json:"legal_address" validate:"required"`
	ActualAddress    string  `json:"actual_address" validate:"required"`
	PostalAddress    string  `json:"postal_address" validate:"required"`
	DirectorPersonID string  `json:"director_person_id" validate:"required,max=36"`
	DirectorBasis    *string `json:"director_basis" validate:"omitempty,max=100"`
	DateRegister     *string `json:"date_register" validate:"omitempty,datetime=2006-01-02"`
}

type DetailsLLCCreatedDTO struct {
	ID               int64  `json:"id"`
	CounterpartiesID string `json:"counterparties_id"`
}

type CreateDetailsIPDTO struct {
	ID             *int64  `json:"id" validate:"omitempty,gt=0"`
	CounterpartyID string  `json:"counterparty_id" validate:"required,max=36"`
	INN            string  `json:"inn" validate:"required,digits,max=200"`
	OGRNIP         *string `json:"ogrnip" validate:"omitempty,digits,max=200"`
	OKPO           *string `json:"okpo" validate:"omitempty,max=200"`
	OKVED          *string `json:"okved" validate:"omitempty,max=200"`
	OKOPF          *string `json:"okopf" validate:"omitempty,max=200"`
	OKFS           *string `json:"okfs" validate:"omitempty,max=200"`
	OKOGU          *string `json:"okogu" validate:"omitempty,max=200"`
	OKATO          *string `json:"okato" validate:"omitempty,max=200"`
	OKTMO          *string `json:"oktmo" validate:"omitempty,max=200"`
	PersonID       string  `json:"person_id" validate:"required,max=36"`
	DateRegister   *string `json:"date_register" validate:"omitempty,datetime=2006-01-02"`
}

type DetailsIPCreatedDTO struct {
	ID             int64  `json:"id"`
	CounterpartyID string `json:"counterparty_id"`
}

type CreateDetailsPhysDTO struct {
	CounterpartyID      string  `json:"counterparty_id" validate:"required,max=36"`
	PersonID            string  `json:"person_id" validate:"required,max=36"`
	PassportSeries      string  `json:"passport_series" validate:"required,max=200"`
	PassportNumber      string  `json:"passport_number" validate:"required,max=200"`
	PassportIssuedBy    string  `json:"passport_issued_by" validate:"required"`
	PassportDateIssued  string  `json:"passport_date_issued" validate:"required,datetime=2006-01-02"`
	PassportDate        string  `json:"passport_date" validate:"required,datetime=2006-01-02"`
	DepartmentCode      string  `json:"department_code" validate:"required,max=7"`
	INN                 *string `json:"inn" validate:"omitempty,digits,max=200"`
	AddressRegistration string  `json:"address_registration" validate:"required"`
	AddressLiving       string  `json:"address_living" validate:"required"`
}

type DetailsPhysCreatedDTO struct {
	CounterpartyID string `json:"counterparty_id"`
	PersonID       string `json:"person_id"`
}
