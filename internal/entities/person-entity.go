package entities

import (
	"strings"
	"time"
)

type Person struct {
	ID         string
	Name       string
	LastName   string
	MiddleName *string
	Phone      string
	Email      string
	BirthDate  time.Time
}

func (p Person) FullName() string {
	middle := ""
	if p.MiddleName != nil {
		middle = *p.MiddleName
	}
	return JoinName(p.LastName, p.Name, middle)
}

// JoinName склеивает части ФИО через один пробел, пропуская пустые.
func JoinName(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}
