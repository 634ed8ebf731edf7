package repository

import (
	"context"
	"time"

	"autoservice/internal/model"
	"autoservice/pkg/pagination"

	"gorm.io/gorm"
)

// LogFilter narrows the audit trail. Zero values mean "no filter".
type LogFilter struct {
	From    *time.Time
	To      *time.Time
	UserIDs []uint
	Search  string
}

type AuditRepository interface {
	Log(ctx context.Context, entry *model.Log) error
	List(ctx context.Context, filter LogFilter, page pagination.Params) ([]model.Log, int64, error)
}

type auditRepository struct {
	store *Store[model.Log]
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{store: NewStore[model.Log](db, EntityLogs, nil)}
}

func (r *auditRepository) Log(ctx context.Context, entry *model.Log) error {
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	return r.store.Create(ctx, entry)
}

func (r *auditRepository) List(ctx context.Context, filter LogFilter, page pagination.Params) ([]model.Log, int64, error) {
	return r.store.List(ctx, page, []Scope{
		Between("date", filter.From, filter.To),
		InIDs("user_id", filter.UserIDs),
		Contains(filter.Search, "description"),
	}, "User")
}
