package dto

import "time"

type CreateCounterpartyDTO struct {
	ID             *string    `json:"id" validate:"omitempty,max=36"`
	Type           string     `json:"type" validate:"required,counterparty_type"`
	ShortName      string     `json:"short_name" validate:"required,max=100"`
	FullName       string     `json:"full_name" validate:"required,max=200"`
	IsInternal     *bool      `json:"is_internal" validate:"required"`
	ContractPrefix *string    `json:"contract_prefix" validate:"omitempty,max=10"`
	CreatedAt      *time.Time `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type CounterpartyFilter struct {
	Type       *string
	IsInternal *bool
}

type CounterpartyDTO struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"`
	ShortName      string     `json:"short_name"`
	FullName       string     `json:"full_name"`
	IsInternal     bool       `json:"is_internal"`
	ContractPrefix *string    `json:"contract_prefix"`
	CreatedAt      *time.Time `json:"created_at"`
}

type CreateCounterpartyAdditionalDTO struct {
	CounterpartyID  string `json:"counterparty_id" validate:"required,max=36"`
	AdditionalOkved string `json:"additional_okved" validate:"required"`
}

type CounterpartyAdditionalDTO struct {
	CounterpartyID  string `json:"counterparty_id"`
	AdditionalOkved string `json:"additional_okved"`
}

// CounterpartySummaryDTO - строка сводной таблицы по всем контрагентам.
type CounterpartySummaryDTO struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	TypeLabel    string  `json:"type_label"`
	ShortName    string  `json:"short_name"`
	FullName     string  `json:"full_name"`
	IsInternal   bool    `json:"is_internal"`
	Address      *string `json:"address"`
	InnOgrnKpp   string  `json:"inn_ogrn_kpp"`
	ContactName  *string `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
	ContactEmail *string `json:"contact_email"`
}
