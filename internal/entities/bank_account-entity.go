package entities

type BankAccount struct {
	ID                   string
	CounterpartyID       string
	BankName             string
	BIK                  string
	CorrespondentAccount string
	AccountNumber        string
	AccountName          string
	IsTreasury           bool
	IsMain               bool
}
