package dto

type CreatePersonDTO struct {
	ID         *string `json:"id" validate:"omitempty,max=36"`
	Name       string  `json:"name" validate:"required,max=100"`
	LastName   string  `json:"last_name" validate:"required,max=100"`
	MiddleName *string `json:"middle_name" validate:"omitempty,max=100"`
	Phone      string  `json:"phone" validate:"required,max=18"`
	Email      string  `json:"email" validate:"required,email,max=200"`
	BirthDate  string  `json:"birth_date" validate:"required,datetime=2006-01-02"`
}

type PersonCompanyDTO struct {
	CompanyID   string  `json:"company_id"`
	CompanyName string  `json:"company_name"`
	Role        string  `json:"role"`
	Position    *string `json:"position"`
	PhoneWork   *string `json:"phone_work"`
	EmailWork   *string `json:"email_work"`
}

type PersonDTO struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	LastName   string             `json:"last_name"`
	MiddleName *string            `json:"middle_name"`
	FullName   string             `json:"full_name"`
	Phone      string             `json:"phone"`
	Email      string             `json:"email"`
	BirthDate  string             `json:"birth_date"`
	Companies  []PersonCompanyDTO `json:"companies"`
}
