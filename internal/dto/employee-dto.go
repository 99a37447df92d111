package dto

type CreateEmployeeDTO struct {
	ID             *string `json:"id" validate:"omitempty,max=36"`
	CounterpartyID string  `json:"counterparty_id" validate:"required,max=36"`
	PersonID       string  `json:"person_id" validate:"required,max=36"`
	Position       *string `json:"position" validate:"omitempty,max=100"`
	PhoneWork      *string `json:"phone_work" validate:"omitempty,max=18"`
	PhoneExtra     *string `json:"phone_extra" validate:"omitempty,max=18"`
	EmailWork      *string `json:"email_work" validate:"omitempty,email,max=100"`
	EmailExtra     *string `json:"email_extra" validate:"omitempty,email,max=100"`
	RoleType       string  `json:"role_type" validate:"required,max=20"`
	Comment        *string `json:"comment"`
}

type EmployeeDTO struct {
	ID             string  `json:"id"`
	CounterpartyID string  `json:"counterparty_id"`
	CompanyName    string  `json:"company_name"`
	PersonID       string  `json:"person_id"`
	FullName       string  `json:"full_name"`
	Position       *string `json:"position"`
	Role           string  `json:"role"`
	PhoneWork      *string `json:"phone_work"`
	PhoneExtra     *string `json:"phone_extra"`
	EmailWork      *string `json:"email_work"`
	EmailExtra     *string `json:"email_extra"`
	Comment        *string `json:"comment"`
}

// CounterpartyEmployeeDTO - сотрудник в списке сотрудников одного контрагента.
type CounterpartyEmployeeDTO struct {
	ID         string  `json:"id"`
	PersonID   string  `json:"person_id"`
	Name       string  `json:"name"`
	LastName   string  `json:"last_name"`
	MiddleName *string `json:"middle_name"`
	Position   *string `json:"position"`
	Role       string  `json:"role"`
	PhoneWork  *string `json:"phone_work"`
	EmailWork  *string `json:"email_work"`
}

type InternalEmployeeDTO struct {
	ID               string  `json:"id"`
	UserID           string  `json:"user_id"`
	FullName         string  `json:"full_name"`
	Position         *string `json:"position"`
	CounterpartyID   string  `json:"counterparty_id"`
	CounterpartyName string  `json:"counterparty_name"`
}

type DepartmentGroupDTO struct {
	Department string                `json:"department"`
	Employees  []InternalEmployeeDTO `json:"employees"`
}
