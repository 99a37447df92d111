package dto

type CreateBankAccountDTO struct {
	ID                   *string `json:"id" validate:"omitempty,max=36"`
	CounterpartyID       string  `json:"counterparty_id" validate:"required,max=36"`
	BankName             string  `json:"bank_name" validate:"required"`
	BIK                  string  `json:"bik" validate:"required"`
	CorrespondentAccount string  `json:"correspondent_account" validate:"required"`
	AccountNumber        string  `json:"account_number" validate:"required"`
	AccountName          string  `json:"account_name" validate:"required"`
	IsTreasury           *bool   `json:"is_treasury"`
	IsMain               *bool   `json:"is_main" validate:"required"`
}
