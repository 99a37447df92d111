package services

import (
	"strings"
	"time"

	"reference-service/internal/entities"
	apperrors "reference-service/pkg/errors"
)

const (
	dateLayout   = "2006-01-02"
	missingValue = "-"
	NoDepartment = "No department"
)

var typeLabels = map[entities.CounterpartyType]string{
	entities.CounterpartyTypeLLC:    "ООО",
	entities.CounterpartyTypeIP:     "ИП",
	entities.CounterpartyTypePhysic: "Физлицо",
}

// TypeLabel возвращает подпись типа контрагента, неизвестный тип отдаётся как есть.
func TypeLabel(t entities.CounterpartyType) string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return string(t)
}

// FormatIdentifiers собирает "ИНН/ОГРН/КПП", пустые части заменяются на "-".
func FormatIdentifiers(inn, ogrn, kpp *string) string {
	parts := []*string{inn, ogrn, kpp}
	out := make([]string, len(parts))
	for i, p := range parts {
		if p == nil || strings.TrimSpace(*p) == "" {
			out[i] = missingValue
			continue
		}
		out[i] = *p
	}
	return strings.Join(out, "/")
}

// PickContact выбирает телефон и почту: если у персоны есть запись сотрудника
// у этого контрагента, берётся рабочий контакт, иначе личный.
func PickContact(employee *entities.Employee, person *entities.Person) (phone, email *string) {
	if employee != nil {
		return employee.PhoneWork, employee.EmailWork
	}
	if person != nil {
		p, e := person.Phone, person.Email
		return &p, &e
	}
	return nil, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewInvalidInputError(field, "неверный формат даты %q, ожидается %s", value, dateLayout)
	}
	return t, nil
}

func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func departmentLabel(department *string) string {
	if department == nil || strings.TrimSpace(*department) == "" {
		return NoDepartment
	}
	return *department
}

func idOrNew(id *string, generate func() string) string {
	if id != nil && *id != "" {
		return *id
	}
	return generate()
}
