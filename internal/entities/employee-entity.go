package entities

type Employee struct {
	ID             string
	CounterpartyID string
	PersonID       string
	Position       *string
	PhoneWork      *string
	PhoneExtra     *string
	EmailWork      *string
	EmailExtra     *string
	RoleType       string
	Comment        *string
}

// Employment - трудовая связь персоны с контрагентом, вместе с названием компании.
type Employment struct {
	Employee
	CompanyName string
}

// EmployeeWithPerson - сотрудник, его персона и компания.
type EmployeeWithPerson struct {
	Employee
	Person      Person
	CompanyName string
}
