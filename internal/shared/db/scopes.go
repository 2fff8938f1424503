package db

import (
	"strings"

	"gorm.io/gorm"
)

// Contains is a GORM scope for a substring match on column. A blank value
// leaves the query unchanged. column must come from a fixed whitelist.
// "!" is the escape character because MySQL and SQLite disagree on backslash.
func Contains(column, value string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		value = strings.TrimSpace(value)
		if value == "" {
			return db
		}
		return db.Where(column+" LIKE ? ESCAPE '!'", "%"+escapeLike(value)+"%")
	}
}

// ContainsAny matches value as a substring of any of columns.
func ContainsAny(columns []string, value string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		value = strings.TrimSpace(value)
		if value == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + escapeLike(value) + "%"
		clauses := make([]string, len(columns))
		args := make([]any, len(columns))
		for i, col := range columns {
			clauses[i] = col + " LIKE ? ESCAPE '!'"
			args[i] = pattern
		}
		return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
}

// Equals is a GORM scope for an exact match that is skipped when value is nil.
func Equals[T comparable](column string, value *T) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == nil {
			return db
		}
		return db.Where(column+" = ?", *value)
	}
}

// Limit caps the result size, substituting def for non-positive values.
func Limit(n, def, max int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case n <= 0:
			n = def
		case n > max:
			n = max
		}
		return db.Limit(n)
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
