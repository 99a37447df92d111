package entities

import "time"

// Session хранится в базе авторизации. Создаётся внешним сервисом логина,
// здесь только читается.
type Session struct {
	ID        string
	TokenHash string
	ExpiresAt time.Time
}

// AuthUser - пользователь из справочника базы авторизации.
type AuthUser struct {
	ID         string
	Surname    string
	Name       string
	Patronymic *string
}

func (u AuthUser) FullName() string {
	patronymic := ""
	if u.Patronymic != nil {
		patronymic = *u.Patronymic
	}
	return JoinName(u.Surname, u.Name, patronymic)
}
