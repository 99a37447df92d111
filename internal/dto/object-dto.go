package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CreateObjectDTO struct {
	ID        *string    `json:"id" validate:"omitempty,max=36"`
	ShortName *string    `json:"short_name" validate:"omitempty,max=255"`
	FullName  *string    `json:"full_name" validate:"omitempty,max=500"`
	Address   *string    `json:"address"`
	IsActive  *bool      `json:"is_active"`
	ManagerID *string    `json:"manager_id" validate:"omitempty,max=36"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// UpdateObjectDTO - частичное обновление. SentFields заполняет контроллер
// по сырому телу запроса: отсутствующее поле не трогаем, явный null очищает.
type UpdateObjectDTO struct {
	ShortName null.String `json:"short_name" validate:"omitempty,max=255"`
	FullName  null.String `json:"full_name" validate:"omitempty,max=500"`
	Address   null.String `json:"address"`
	IsActive  null.Bool   `json:"is_active"`
	ManagerID null.String `json:"manager_id" validate:"omitempty,max=36"`

	SentFields map[string]bool `json:"-"`
}

func (d UpdateObjectDTO) Sent(field string) bool {
	return d.SentFields[field]
}

type ObjectManagerDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	LastName string  `json:"last_name"`
	Position *string `json:"position"`
}

type ObjectDTO struct {
	ID        string            `json:"id"`
	ShortName *string           `json:"short_name"`
	FullName  *string           `json:"full_name"`
	Address   *string           `json:"address"`
	IsActive  bool              `json:"is_active"`
	Manager   *ObjectManagerDTO `json:"manager"`
	CreatedAt *time.Time        `json:"created_at"`
	UpdatedAt *time.Time        `json:"updated_at"`
}

// ShortObjectDTO - объект без блока менеджера (список объектов сотрудника).
type ShortObjectDTO struct {
	ID        string     `json:"id"`
	ShortName *string    `json:"short_name"`
	FullName  *string    `json:"full_name"`
	Address   *string    `json:"address"`
	IsActive  bool       `json:"is_active"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
