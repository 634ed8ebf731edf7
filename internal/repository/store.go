package repository

import (
	"context"
	"errors"
	"fmt"

	"autoservice/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a row with the requested id does not exist.
var ErrNotFound = errors.New("record not found")

// ErrInUse is returned when a hard delete would orphan rows that reference the record.
var ErrInUse = errors.New("record is still referenced")

// Scope is a reusable query predicate.
type Scope = func(*gorm.DB) *gorm.DB

// Store implements the CRUD shape shared by every back-office table.
type Store[T any] struct {
	db     *gorm.DB
	entity string
	policy DeletePolicy
}

func NewStore[T any](db *gorm.DB, entity string, policy DeletePolicy) *Store[T] {
	return &Store[T]{db: db, entity: entity, policy: policy}
}

// DB returns the connection bound to ctx (the running transaction if any).
func (s *Store[T]) DB(ctx context.Context) *gorm.DB {
	return GetDB(ctx, s.db)
}

// List returns one page ordered by id together with the total number of matching rows.
func (s *Store[T]) List(ctx context.Context, page pagination.Params, filters []Scope, preloads ...string) ([]T, int64, error) {
	var total int64
	if err := s.DB(ctx).Model(new(T)).Scopes(filters...).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", s.entity, err)
	}

	q := s.DB(ctx).Model(new(T)).Scopes(filters...)
	for _, p := range preloads {
		q = q.Preload(p)
	}

	items := make([]T, 0, page.Limit)
	if err := q.Order("id ASC").Offset(page.Offset).Limit(page.Limit).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list %s: %w", s.entity, err)
	}
	return items, total, nil
}

// Get loads one row by id, mapping a missing row to ErrNotFound.
func (s *Store[T]) Get(ctx context.Context, id uint, preloads ...string) (*T, error) {
	return s.First(ctx, []Scope{Eq("id", id)}, preloads...)
}

// First loads the first row matching filters.
func (s *Store[T]) First(ctx context.Context, filters []Scope, preloads ...string) (*T, error) {
	q := s.DB(ctx).Scopes(filters...)
	for _, p := range preloads {
		q = q.Preload(p)
	}

	var item T
	if err := q.Order("id ASC").First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load %s: %w", s.entity, err)
	}
	return &item, nil
}

// Exists reports whether any row matches filters. Soft-deleted rows count when unscoped is set.
func (s *Store[T]) Exists(ctx context.Context, unscoped bool, filters ...Scope) (bool, error) {
	q := s.DB(ctx)
	if unscoped {
		q = q.Unscoped()
	}
	var count int64
	if err := q.Model(new(T)).Scopes(filters...).Limit(1).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check %s: %w", s.entity, err)
	}
	return count > 0, nil
}

// Create inserts the row together with any nested associations it carries.
func (s *Store[T]) Create(ctx context.Context, item *T) error {
	if err := s.DB(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", s.entity, err)
	}
	return nil
}

// Save updates every column of the row, leaving associations untouched.
func (s *Store[T]) Save(ctx context.Context, item *T) error {
	if err := s.DB(ctx).Omit(clause.Associations).Save(item).Error; err != nil {
		return fmt.Errorf("failed to update %s: %w", s.entity, err)
	}
	return nil
}

// Update sets the given columns on one row.
func (s *Store[T]) Update(ctx context.Context, id uint, values map[string]any) error {
	if err := s.DB(ctx).Model(new(T)).Where("id = ?", id).Updates(values).Error; err != nil {
		return fmt.Errorf("failed to update %s: %w", s.entity, err)
	}
	return nil
}

// UpdateWhere applies values to id only while the filters still match, and reports whether
// the row was changed. It backs compare-and-set status transitions.
func (s *Store[T]) UpdateWhere(ctx context.Context, id uint, filters []Scope, values map[string]any) (bool, error) {
	res := s.DB(ctx).Model(new(T)).Scopes(filters...).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return false, fmt.Errorf("failed to update %s: %w", s.entity, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteMany removes the ids according to the entity's delete policy. Unknown ids are ignored.
func (s *Store[T]) DeleteMany(ctx context.Context, ids []uint, filters ...Scope) error {
	if len(ids) == 0 {
		return nil
	}
	q := s.policy.Apply(s.entity, s.DB(ctx)).Scopes(filters...)
	if err := q.Where("id IN ?", ids).Delete(new(T)).Error; err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.entity, err)
	}
	return nil
}

// Increment adds delta to an integer column unless the result would drop below zero.
// It reports false when no row was changed.
func (s *Store[T]) Increment(ctx context.Context, id uint, column string, delta int) (bool, error) {
	res := s.DB(ctx).Model(new(T)).
		Where("id = ? AND "+column+" + ? >= 0", id, delta).
		Update(column, gorm.Expr(column+" + ?", delta))
	if res.Error != nil {
		return false, fmt.Errorf("failed to update %s.%s: %w", s.entity, column, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// HardDeletes reports whether DeleteMany removes rows for this entity.
func (s *Store[T]) HardDeletes() bool {
	return !s.policy.Soft(s.entity)
}
