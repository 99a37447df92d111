package entities

import "reference-service/pkg/types"

type CounterpartyType string

const (
	CounterpartyTypeLLC    CounterpartyType = "LLC"
	CounterpartyTypeIP     CounterpartyType = "IP"
	CounterpartyTypePhysic CounterpartyType = "PHYSIC"
)

type Counterparty struct {
	ID             string           `json:"id"`
	Type           CounterpartyType `json:"type"`
	ShortName      string           `json:"short_name"`
	FullName       string           `json:"full_name"`
	IsInternal     bool             `json:"is_internal"`
	ContractPrefix *string          `json:"contract_prefix"`

	types.BaseEntity
}

type CounterpartyAdditional struct {
	CounterpartyID  string `json:"counterparty_id"`
	AdditionalOkved string `json:"additional_okved"`
}
