package service

import (
	"context"
	"strings"

	"autoservice/internal/model"
	"autoservice/internal/repository"
	"autoservice/pkg/pagination"
)

const (
	ResultInvalidPermission = "invalid_permission"
	ResultSystemRole        = "system_role"
)

// --- DTOs ---

// RoleRequest carries permissions as "<resource>_<action>" codes, e.g. "clients_view".
type RoleRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

type RoleResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	IsSystem    bool     `json:"isSystem"`
	Permissions []string `json:"permissions"`
}

type PermissionResponse struct {
	Code     string `json:"code"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// --- Interface ---

type RoleService interface {
	List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[RoleResponse], error)
	Get(ctx context.Context, id uint) (*RoleResponse, error)
	Add(ctx context.Context, req RoleRequest) (*RoleResponse, error)
	Edit(ctx context.Context, id uint, req RoleRequest) (*RoleResponse, error)
	DeleteMany(ctx context.Context, ids []uint) error
	ListPermissions() []PermissionResponse
}

type roleService struct {
	repo      repository.RoleRepository
	txManager repository.TransactionManager
	perms     PermissionPurger
}

func NewRoleService(repo repository.RoleRepository, txManager repository.TransactionManager, perms PermissionPurger) RoleService {
	return &roleService{repo: repo, txManager: txManager, perms: perms}
}

// --- Implementation ---

func toRoleResponse(r model.Role) RoleResponse {
	return RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		IsSystem:    r.IsSystem,
		Permissions: r.PermissionCodes(),
	}
}

// parsePermissions validates every code against the catalogue before anything is written.
func parsePermissions(codes []string) ([]model.PermissionKey, error) {
	keys := make([]model.PermissionKey, 0, len(codes))
	for _, code := range codes {
		key, err := model.ParsePermissionCode(code)
		if err != nil {
			return nil, invalid(ResultInvalidPermission)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (s *roleService) validate(ctx context.Context, req RoleRequest, exceptID uint) ([]model.PermissionKey, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid(ResultNoName)
	}
	keys, err := parsePermissions(req.Permissions)
	if err != nil {
		return nil, err
	}
	taken, err := s.repo.NameTaken(ctx, name, exceptID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrExists
	}
	return keys, nil
}

func (s *roleService) List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[RoleResponse], error) {
	roles, total, err := s.repo.List(ctx, filter.Search, page)
	if err != nil {
		return Page[RoleResponse]{}, err
	}
	res := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		res = append(res, toRoleResponse(r))
	}
	return Page[RoleResponse]{Items: res, Total: total}, nil
}

func (s *roleService) Get(ctx context.Context, id uint) (*RoleResponse, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toRoleResponse(*role)
	return &resp, nil
}

func (s *roleService) Add(ctx context.Context, req RoleRequest) (*RoleResponse, error) {
	keys, err := s.validate(ctx, req, 0)
	if err != nil {
		return nil, err
	}

	role := model.Role{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
	}
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Create(txCtx, &role); err != nil {
			return err
		}
		return s.repo.ReplacePermissions(txCtx, role.ID, keys)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, role.ID)
}

// Edit renames the role and replaces its permission set in one transaction.
// System roles are read-only.
func (s *roleService) Edit(ctx context.Context, id uint, req RoleRequest) (*RoleResponse, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role.IsSystem {
		return nil, invalid(ResultSystemRole)
	}
	keys, err := s.validate(ctx, req, id)
	if err != nil {
		return nil, err
	}

	role.Name = strings.TrimSpace(req.Name)
	role.Description = strings.TrimSpace(req.Description)
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Update(txCtx, role); err != nil {
			return err
		}
		return s.repo.ReplacePermissions(txCtx, role.ID, keys)
	})
	if err != nil {
		return nil, err
	}
	s.perms.InvalidatePermissions()
	return s.Get(ctx, id)
}

// DeleteMany removes custom roles. A batch naming a system role is rejected as a whole.
func (s *roleService) DeleteMany(ctx context.Context, ids []uint) error {
	roles, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	deletable := make([]uint, 0, len(roles))
	for _, r := range roles {
		if r.IsSystem {
			return invalid(ResultSystemRole)
		}
		deletable = append(deletable, r.ID)
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteMany(txCtx, deletable)
	})
	if err != nil {
		return err
	}
	s.perms.InvalidatePermissions()
	return nil
}

func (s *roleService) ListPermissions() []PermissionResponse {
	catalogue := model.Catalogue()
	res := make([]PermissionResponse, 0, len(catalogue))
	for _, k := range catalogue {
		res = append(res, PermissionResponse{Code: k.Code(), Resource: k.Resource, Action: k.Action})
	}
	return res
}
