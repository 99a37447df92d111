package dto

// FullProfileDTO - закрытый набор профилей контрагента, различаемых по типу.
type FullProfileDTO interface {
	CounterpartyType() string
}

type BasicInfoDTO struct {
	ShortName      string  `json:"short_name"`
	FullName       string  `json:"full_name"`
	IsInternal     bool    `json:"is_internal"`
	ContractPrefix *string `json:"contract_prefix"`
}

type BankAccountDTO struct {
	ID                   string `json:"id"`
	CounterpartyID       string `json:"counterparty_id"`
	BankName             string `json:"bank_name"`
	BIK                  string `json:"bik"`
	CorrespondentAccount string `json:"correspondent_account"`
	AccountNumber        string `json:"account_number"`
	AccountName          string `json:"account_name"`
	IsMain               bool   `json:"is_main"`
	IsTreasury           bool   `json:"is_treasury"`
}

// --- ООО ---

type LLCDetailsDTO struct {
	INN           string  `json:"inn"`
	KPP           string  `json:"kpp"`
	OGRN          string  `json:"ogrn"`
	OKPO          *string `json:"okpo"`
	OKVED         *string `json:"okved"`
	TaxSystem     *string `json:"tax_system"`
	LegalAddress  string  `json:"legal_address"`
	ActualAddress string  `json:"actual_address"`
	PostalAddress string  `json:"postal_address"`
	DateRegister  *string `json:"date_register"`
}

type LLCDirectorDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	LastName   string  `json:"last_name"`
	MiddleName *string `json:"middle_name"`
	Position   *string `json:"position"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
}

type CounterpartyLLCDTO struct {
	ID              string           `json:"id"`
	BasicInfo       BasicInfoDTO     `json:"basic_info"`
	Details         LLCDetailsDTO    `json:"details"`
	AdditionalOkved []string         `json:"additional_okved"`
	Director        *LLCDirectorDTO  `json:"director"`
	BankAccounts    []BankAccountDTO `json:"bank_accounts"`
}

func (CounterpartyLLCDTO) CounterpartyType() string { return "LLC" }

// --- ИП ---

type IPDetailsDTO struct {
	INN          string  `json:"inn"`
	OGRNIP       *string `json:"ogrnip"`
	OKPO         *string `json:"okpo"`
	OKVED        *string `json:"okved"`
	OKOPF        *string `json:"okopf"`
	OKFS         *string `json:"okfs"`
	OKOGU        *string `json:"okogu"`
	OKATO        *string `json:"okato"`
	OKTMO        *string `json:"oktmo"`
	DateRegister *string `json:"date_register"`
}

type IPOwnerDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	LastName   string  `json:"last_name"`
	MiddleName *string `json:"middle_name"`
	BirthDate  string  `json:"birth_date"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
}

type CounterpartyIPDTO struct {
	ID              string       `json:"id"`
	BasicInfo       BasicInfoDTO `json:"basic_info"`
	Details         IPDetailsDTO `json:"details"`
	AdditionalOkved []string     `json:"additional_okved"`
	Owner           *IPOwnerDTO  `json:"owner"`
}

func (CounterpartyIPDTO) CounterpartyType() string { return "IP" }

// --- Физлицо ---

type PhysBasicInfoDTO struct {
	ShortName  string `json:"short_name"`
	FullName   string `json:"full_name"`
	IsInternal bool   `json:"is_internal"`
}

type PersonalDataDTO struct {
	Name       string  `json:"name"`
	LastName   string  `json:"last_name"`
	MiddleName *string `json:"middle_name"`
	BirthDate  string  `json:"birth_date"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
}

type PassportDTO struct {
	Series         string `json:"series"`
	Number         string `json:"number"`
	IssuedBy       string `json:"issued_by"`
	DateIssued     string `json:"date_issued"`
	DepartmentCode string `json:"department_code"`
}

type AddressesDTO struct {
	Registration string `json:"registration"`
	Living       string `json:"living"`
}

// EmploymentDTO заполнен null-ами, если у физлица нет записи сотрудника.
type EmploymentDTO struct {
	Position  *string `json:"position"`
	PhoneWork *string `json:"phone_work"`
	EmailWork *string `json:"email_work"`
}

type CounterpartyPhysDTO struct {
	ID           string           `json:"id"`
	BasicInfo    PhysBasicInfoDTO `json:"basic_info"`
	PersonalData PersonalDataDTO  `json:"personal_data"`
	Passport     PassportDTO      `json:"passport"`
	Addresses    AddressesDTO     `json:"addresses"`
	Employment   EmploymentDTO    `json:"employment"`
}

func (CounterpartyPhysDTO) CounterpartyType() string { return "PHYSIC" }
