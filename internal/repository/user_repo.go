package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"autoservice/internal/model"
	"autoservice/pkg/pagination"

	"gorm.io/gorm"
)

// UserFilter narrows user lists. Zero values mean "no filter".
type UserFilter struct {
	AppRole       string
	Search        string
	DepartmentIDs []uint
}

// UserRepository defines the interface for data access of User entities
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uint, preloads ...string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error)
	List(ctx context.Context, filter UserFilter, page pagination.Params) ([]model.User, int64, error)
	Update(ctx context.Context, user *model.User) error
	UpdateFields(ctx context.Context, id uint, values map[string]any) error
	DeleteMany(ctx context.Context, appRole string, ids []uint) error
	ReplaceRoles(ctx context.Context, userID uint, roleIDs []uint) error
	FindByIDs(ctx context.Context, ids []uint) ([]model.User, error)
}

type userRepository struct {
	store *Store[model.User]
}

// NewUserRepository returns a new instance of UserRepository
func NewUserRepository(db *gorm.DB, policy DeletePolicy) UserRepository {
	return &userRepository{store: NewStore[model.User](db, EntityUsers, policy)}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.store.Create(ctx, user)
}

func (r *userRepository) GetByID(ctx context.Context, id uint, preloads ...string) (*model.User, error) {
	return r.store.Get(ctx, id, preloads...)
}

// GetByEmail looks the address up case-insensitively, including soft-deleted accounts.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.store.DB(ctx).Unscoped().
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user by email: %w", err)
	}
	return &user, nil
}

// EmailTaken checks the unique index the same way the database will, soft-deleted rows included.
func (r *userRepository) EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error) {
	return r.store.Exists(ctx, true,
		Eq("LOWER(email)", strings.ToLower(strings.TrimSpace(email))),
		NotEq("id", exceptID),
	)
}

func (r *userRepository) List(ctx context.Context, filter UserFilter, page pagination.Params) ([]model.User, int64, error) {
	scopes := []Scope{Contains(filter.Search, "first_name", "last_name", "email", "phone", "company_name")}
	if len(filter.DepartmentIDs) > 0 {
		scopes = append(scopes, InSubquery("id", func(db *gorm.DB) *gorm.DB {
			return db.Table("users_departments").Select("user_id").Where("department_id IN ?", filter.DepartmentIDs)
		}))
	}
	if filter.AppRole != "" {
		scopes = append(scopes, Eq("app_role", filter.AppRole))
	}
	return r.store.List(ctx, page, scopes)
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.store.Save(ctx, user)
}

func (r *userRepository) UpdateFields(ctx context.Context, id uint, values map[string]any) error {
	return r.store.Update(ctx, id, values)
}

// DeleteMany removes users of one app role. Hard deletes also drop sessions and link rows.
func (r *userRepository) DeleteMany(ctx context.Context, appRole string, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	var matched []uint
	if err := r.store.DB(ctx).Model(&model.User{}).
		Where("id IN ? AND app_role = ?", ids, appRole).
		Pluck("id", &matched).Error; err != nil {
		return fmt.Errorf("failed to resolve users: %w", err)
	}
	if len(matched) == 0 {
		return nil
	}
	ids = matched
	if !r.store.policy.Soft(EntityUsers) {
		db := r.store.DB(ctx)
		for _, table := range []string{"session_tokens", "users_roles", "users_departments"} {
			if err := db.Exec("DELETE FROM "+table+" WHERE user_id IN ?", ids).Error; err != nil {
				return fmt.Errorf("failed to delete user links from %s: %w", table, err)
			}
		}
		// the audit trail outlives its authors
		if err := db.Exec("UPDATE logs SET user_id = NULL WHERE user_id IN ?", ids).Error; err != nil {
			return fmt.Errorf("failed to detach audit rows: %w", err)
		}
	} else {
		if err := r.store.DB(ctx).Where("user_id IN ?", ids).Delete(&model.SessionToken{}).Error; err != nil {
			return fmt.Errorf("failed to delete sessions: %w", err)
		}
	}
	return r.store.DeleteMany(ctx, ids)
}

// ReplaceRoles rewrites the users_roles links of one user.
func (r *userRepository) ReplaceRoles(ctx context.Context, userID uint, roleIDs []uint) error {
	db := r.store.DB(ctx)
	if err := db.Exec("DELETE FROM users_roles WHERE user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to clear user roles: %w", err)
	}
	for _, roleID := range roleIDs {
		if err := db.Exec("INSERT INTO users_roles (user_id, role_id) VALUES (?, ?)", userID, roleID).Error; err != nil {
			return fmt.Errorf("failed to link role %d: %w", roleID, err)
		}
	}
	return nil
}

func (r *userRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.User, error) {
	var users []model.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.store.DB(ctx).Where("id IN ?", ids).Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}
