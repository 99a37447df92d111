package db

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// ApplyFilters добавляет условия равенства только для разрешённых полей.
// Значение "a,b" превращается в IN (a, b); nil-значения пропускаются.
func ApplyFilters(builder sq.SelectBuilder, filters map[string]interface{}, allowedMap map[string]string) sq.SelectBuilder {
	for jsonField, val := range filters {
		dbCol, ok := allowedMap[jsonField]
		if !ok || val == nil {
			continue
		}

		if s, ok := val.(string); ok && strings.Contains(s, ",") {
			builder = builder.Where(sq.Eq{dbCol: strings.Split(s, ",")})
		} else {
			builder = builder.Where(sq.Eq{dbCol: val})
		}
	}
	return builder
}

// ContainsAny - регистронезависимый поиск подстроки по любому из столбцов.
func ContainsAny(search string, columns ...string) sq.Or {
	pattern := "%" + search + "%"
	cond := make(sq.Or, 0, len(columns))
	for _, col := range columns {
		cond = append(cond, sq.ILike{col: pattern})
	}
	return cond
}
