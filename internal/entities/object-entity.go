package entities

import "reference-service/pkg/types"

type Object struct {
	ID        string  `json:"id"`
	ShortName *string `json:"short_name"`
	FullName  *string `json:"full_name"`
	Address   *string `json:"address"`
	IsActive  bool    `json:"is_active"`
	ManagerID *string `json:"manager_id"`

	types.BaseEntity
}

// ObjectManager - сотрудник-менеджер объекта вместе с его персоной.
// Заполняется только когда найдены обе строки.
type ObjectManager struct {
	EmployeeID string
	Position   *string
	Name       string
	LastName   string
}

type ObjectWithManager struct {
	Object
	Manager *ObjectManager
}
