package entities

type InternalEmployee struct {
	ID               string
	CounterpartyID   string
	CounterpartyName string
	UserID           string
	Department       *string
	Position         *string
}
