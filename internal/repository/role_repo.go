package repository

import (
	"context"
	"fmt"

	"autoservice/internal/model"
	"autoservice/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	Update(ctx context.Context, role *model.Role) error
	DeleteMany(ctx context.Context, ids []uint) error
	FindByID(ctx context.Context, id uint) (*model.Role, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.Role, error)
	NameTaken(ctx context.Context, name string, exceptID uint) (bool, error)
	List(ctx context.Context, search string, page pagination.Params) ([]model.Role, int64, error)
	ListPermissions(ctx context.Context) ([]model.Permission, error)
	ReplacePermissions(ctx context.Context, roleID uint, keys []model.PermissionKey) error
	PermissionCodesForUser(ctx context.Context, userID uint) ([]string, error)
	SeedPermissions(ctx context.Context) error
}

type roleRepository struct {
	store *Store[model.Role]
}

func NewRoleRepository(db *gorm.DB, policy DeletePolicy) RoleRepository {
	return &roleRepository{store: NewStore[model.Role](db, EntityRoles, policy)}
}

func (r *roleRepository) Create(ctx context.Context, role *model.Role) error {
	return r.store.DB(ctx).Omit("Permissions").Create(role).Error
}

func (r *roleRepository) Update(ctx context.Context, role *model.Role) error {
	return r.store.Save(ctx, role)
}

// DeleteMany drops the roles together with their permission and user links.
func (r *roleRepository) DeleteMany(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	db := r.store.DB(ctx)
	if err := db.Exec("DELETE FROM role_permissions WHERE role_id IN ?", ids).Error; err != nil {
		return fmt.Errorf("failed to delete role permissions: %w", err)
	}
	if err := db.Exec("DELETE FROM users_roles WHERE role_id IN ?", ids).Error; err != nil {
		return fmt.Errorf("failed to delete role users: %w", err)
	}
	return r.store.DeleteMany(ctx, ids)
}

func (r *roleRepository) FindByID(ctx context.Context, id uint) (*model.Role, error) {
	return r.store.Get(ctx, id, "Permissions")
}

func (r *roleRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Role, error) {
	var roles []model.Role
	if len(ids) == 0 {
		return roles, nil
	}
	if err := r.store.DB(ctx).Where("id IN ?", ids).Order("id ASC").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	return roles, nil
}

func (r *roleRepository) NameTaken(ctx context.Context, name string, exceptID uint) (bool, error) {
	return r.store.Exists(ctx, false, Eq("name", name), NotEq("id", exceptID))
}

func (r *roleRepository) List(ctx context.Context, search string, page pagination.Params) ([]model.Role, int64, error) {
	return r.store.List(ctx, page, []Scope{Contains(search, "name", "description")}, "Permissions")
}

func (r *roleRepository) ListPermissions(ctx context.Context) ([]model.Permission, error) {
	var perms []model.Permission
	if err := r.store.DB(ctx).Order("id ASC").Find(&perms).Error; err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	return perms, nil
}

// ReplacePermissions rewrites the role_permissions rows of one role. Keys must already be validated.
func (r *roleRepository) ReplacePermissions(ctx context.Context, roleID uint, keys []model.PermissionKey) error {
	db := r.store.DB(ctx)
	if err := db.Exec("DELETE FROM role_permissions WHERE role_id = ?", roleID).Error; err != nil {
		return fmt.Errorf("failed to clear role permissions: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	perms, err := r.ListPermissions(ctx)
	if err != nil {
		return err
	}
	byKey := make(map[model.PermissionKey]uint, len(perms))
	for _, p := range perms {
		byKey[model.PermissionKey{Resource: p.Resource, Action: p.Action}] = p.ID
	}

	seen := make(map[uint]bool, len(keys))
	for _, k := range keys {
		permID, ok := byKey[k]
		if !ok {
			return fmt.Errorf("permission %s is not seeded", k.Code())
		}
		if seen[permID] {
			continue
		}
		seen[permID] = true
		if err := db.Exec("INSERT INTO role_permissions (role_id, permission_id) VALUES (?, ?)", roleID, permID).Error; err != nil {
			return fmt.Errorf("failed to link permission %s: %w", k.Code(), err)
		}
	}
	return nil
}

// PermissionCodesForUser returns the union of permission codes over every role of the user.
func (r *roleRepository) PermissionCodesForUser(ctx context.Context, userID uint) ([]string, error) {
	var perms []model.Permission
	err := r.store.DB(ctx).Raw(`
		SELECT DISTINCT p.id, p.resource, p.action
		FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.id
		JOIN users_roles ur ON ur.role_id = rp.role_id
		WHERE ur.user_id = ?
		ORDER BY p.id`, userID).Scan(&perms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve permissions: %w", err)
	}
	codes := make([]string, 0, len(perms))
	for _, p := range perms {
		codes = append(codes, p.Code())
	}
	return codes, nil
}

// SeedPermissions inserts any catalogue entry missing from the permissions table.
func (r *roleRepository) SeedPermissions(ctx context.Context) error {
	catalogue := model.Catalogue()
	perms := make([]model.Permission, 0, len(catalogue))
	for _, k := range catalogue {
		perms = append(perms, model.Permission{Resource: k.Resource, Action: k.Action})
	}
	err := r.store.DB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&perms).Error
	if err != nil {
		return fmt.Errorf("failed to seed permissions: %w", err)
	}
	return nil
}
