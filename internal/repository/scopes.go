package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Column names passed to these scopes come from code, never from request input.

func Eq(column string, value any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

func NotEq(column string, value any) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" <> ?", value)
	}
}

// InIDs filters by membership; an empty set means "no filter".
func InIDs(column string, ids []uint) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if len(ids) == 0 {
			return db
		}
		return db.Where(column+" IN ?", ids)
	}
}

// InInts filters by membership; an empty set means "no filter".
func InInts(column string, values []int) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if len(values) == 0 {
			return db
		}
		return db.Where(column+" IN ?", values)
	}
}

// Between filters column to [from, to]; nil bounds are open.
func Between(column string, from, to *time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if from != nil {
			db = db.Where(column+" >= ?", *from)
		}
		if to != nil {
			db = db.Where(column+" <= ?", *to)
		}
		return db
	}
}

// Contains matches term case-insensitively in any of the columns.
func Contains(term string, columns ...string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + strings.ToLower(likeEscaper.Replace(term)) + "%"
		parts := make([]string, 0, len(columns))
		args := make([]any, 0, len(columns))
		for _, c := range columns {
			parts = append(parts, "LOWER("+c+") LIKE ? ESCAPE '\\'")
			args = append(args, pattern)
		}
		return db.Where("("+strings.Join(parts, " OR ")+")", args...)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// InSubquery filters column by the ids returned from a subquery built on a fresh session.
func InSubquery(column string, build func(db *gorm.DB) *gorm.DB) Scope {
	return func(db *gorm.DB) *gorm.DB {
		sub := build(db.Session(&gorm.Session{NewDB: true}))
		return db.Where(column+" IN (?)", sub)
	}
}
