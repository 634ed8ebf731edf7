package repository

import (
	"context"
	"fmt"

	"autoservice/internal/model"
	"autoservice/pkg/pagination"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Create(ctx context.Context, d *model.Department) error
	Update(ctx context.Context, d *model.Department) error
	GetByID(ctx context.Context, id uint, preloads ...string) (*model.Department, error)
	List(ctx context.Context, search string, ids []uint, page pagination.Params) ([]model.Department, int64, error)
	Exists(ctx context.Context, id uint) (bool, error)
	DeleteMany(ctx context.Context, ids []uint) error
	AddUsers(ctx context.Context, id uint, userIDs []uint) error
	RemoveUsers(ctx context.Context, id uint, userIDs []uint) error
	ReplaceUserDepartments(ctx context.Context, userID uint, departmentIDs []uint) error
}

type departmentRepository struct {
	store *Store[model.Department]
}

func NewDepartmentRepository(db *gorm.DB, policy DeletePolicy) DepartmentRepository {
	return &departmentRepository{store: NewStore[model.Department](db, EntityDepartments, policy)}
}

func (r *departmentRepository) Create(ctx context.Context, d *model.Department) error {
	return r.store.Create(ctx, d)
}

func (r *departmentRepository) Update(ctx context.Context, d *model.Department) error {
	return r.store.Save(ctx, d)
}

func (r *departmentRepository) GetByID(ctx context.Context, id uint, preloads ...string) (*model.Department, error) {
	return r.store.Get(ctx, id, preloads...)
}

func (r *departmentRepository) List(ctx context.Context, search string, ids []uint, page pagination.Params) ([]model.Department, int64, error) {
	return r.store.List(ctx, page, []Scope{
		Contains(search, "name", "city", "street"),
		InIDs("id", ids),
	})
}

func (r *departmentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	return r.store.Exists(ctx, false, Eq("id", id))
}

// departmentOwners are the records that cannot exist without their department.
var departmentOwners = []any{&model.Order{}, &model.WarehouseItem{}, &model.Demand{}}

// DeleteMany drops the departments. A hard delete also drops their user links and detaches
// air conditioning records, and fails with ErrInUse while orders, stock or demands point at them.
func (r *departmentRepository) DeleteMany(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if r.store.policy.Soft(EntityDepartments) {
		return r.store.DeleteMany(ctx, ids)
	}

	db := r.store.DB(ctx)
	for _, owner := range departmentOwners {
		var n int64
		if err := db.Unscoped().Model(owner).Where("department_id IN ?", ids).Count(&n).Error; err != nil {
			return fmt.Errorf("failed to count department references: %w", err)
		}
		if n > 0 {
			return ErrInUse
		}
	}
	err := db.Unscoped().Model(&model.AirConditioningRecord{}).
		Where("department_id IN ?", ids).
		Update("department_id", nil).Error
	if err != nil {
		return fmt.Errorf("failed to detach air conditioning records: %w", err)
	}
	if err := db.Exec("DELETE FROM users_departments WHERE department_id IN ?", ids).Error; err != nil {
		return fmt.Errorf("failed to delete department links: %w", err)
	}
	return r.store.DeleteMany(ctx, ids)
}

// AddUsers links existing users to the department, skipping links already present.
func (r *departmentRepository) AddUsers(ctx context.Context, id uint, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}
	db := r.store.DB(ctx)

	var existing []uint
	if err := db.Model(&model.User{}).Where("id IN ?", userIDs).Pluck("id", &existing).Error; err != nil {
		return fmt.Errorf("failed to resolve users: %w", err)
	}
	var linked []uint
	if err := db.Table("users_departments").Where("department_id = ?", id).Pluck("user_id", &linked).Error; err != nil {
		return fmt.Errorf("failed to load department links: %w", err)
	}
	already := make(map[uint]bool, len(linked))
	for _, u := range linked {
		already[u] = true
	}

	for _, userID := range existing {
		if already[userID] {
			continue
		}
		if err := db.Exec("INSERT INTO users_departments (user_id, department_id) VALUES (?, ?)", userID, id).Error; err != nil {
			return fmt.Errorf("failed to link user %d: %w", userID, err)
		}
		already[userID] = true
	}
	return nil
}

func (r *departmentRepository) RemoveUsers(ctx context.Context, id uint, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}
	err := r.store.DB(ctx).Exec("DELETE FROM users_departments WHERE department_id = ? AND user_id IN ?", id, userIDs).Error
	if err != nil {
		return fmt.Errorf("failed to unlink users: %w", err)
	}
	return nil
}

// ReplaceUserDepartments rewrites the department links of one user. Unknown departments are skipped.
func (r *departmentRepository) ReplaceUserDepartments(ctx context.Context, userID uint, departmentIDs []uint) error {
	db := r.store.DB(ctx)
	if err := db.Exec("DELETE FROM users_departments WHERE user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to clear user departments: %w", err)
	}
	if len(departmentIDs) == 0 {
		return nil
	}

	var existing []uint
	if err := db.Model(&model.Department{}).Where("id IN ?", departmentIDs).Pluck("id", &existing).Error; err != nil {
		return fmt.Errorf("failed to resolve departments: %w", err)
	}
	for _, depID := range existing {
		if err := db.Exec("INSERT INTO users_departments (user_id, department_id) VALUES (?, ?)", userID, depID).Error; err != nil {
			return fmt.Errorf("failed to link department %d: %w", depID, err)
		}
	}
	return nil
}
