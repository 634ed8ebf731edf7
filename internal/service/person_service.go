package service

import (
	"context"
	"strings"

	"autoservice/internal/auth"
	"autoservice/internal/model"
	"autoservice/internal/repository"
	"autoservice/pkg/pagination"
)

// DTOs for Request validation
type PersonRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	CompanyName   string `json:"companyName"`
	TaxID         string `json:"taxId"`
	Password      string `json:"password"`
	RoleIDs       []uint `json:"roleIds"`
	DepartmentIDs []uint `json:"departmentIds"`
}

type SetRolesRequest struct {
	RoleIDs []uint `json:"roleIds"`
}

// PersonService manages the users of one app role (clients or employees).
type PersonService interface {
	List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.User], error)
	Get(ctx context.Context, id uint) (*model.User, error)
	Add(ctx context.Context, req PersonRequest) (*model.User, error)
	Edit(ctx context.Context, id uint, req PersonRequest) (*model.User, error)
	DeleteMany(ctx context.Context, ids []uint) error
}

type EmployeeService interface {
	PersonService
	SetRoles(ctx context.Context, id uint, roleIDs []uint) error
}

type personService struct {
	appRole     string
	preloads    []string
	users       repository.UserRepository
	roles       repository.RoleRepository
	departments repository.DepartmentRepository
	txManager   repository.TransactionManager
	perms       PermissionPurger
}

func NewClientService(users repository.UserRepository, txManager repository.TransactionManager) PersonService {
	return &personService{
		appRole:   model.AppRoleClient,
		preloads:  []string{"Vehicles"},
		users:     users,
		txManager: txManager,
	}
}

func NewEmployeeService(
	users repository.UserRepository,
	roles repository.RoleRepository,
	departments repository.DepartmentRepository,
	txManager repository.TransactionManager,
	perms PermissionPurger,
) EmployeeService {
	return &personService{
		appRole:     model.AppRoleEmployee,
		preloads:    []string{"Roles", "Departments"},
		users:       users,
		roles:       roles,
		departments: departments,
		txManager:   txManager,
		perms:       perms,
	}
}

// newUser builds a user with a fresh salt. Without a password a random one is generated;
// either way the user must change it on first login.
func newUser(appRole string, req PersonRequest) (*model.User, error) {
	password := req.Password
	if password == "" {
		generated, err := auth.RandomPassword()
		if err != nil {
			return nil, err
		}
		password = generated
	}
	salt, err := auth.NewSalt()
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(password, salt)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		AppRole:      appRole,
		Salt:         salt,
		Password:     hash,
		IsFirstLogin: true,
	}
	applyPerson(user, req)
	return user, nil
}

func applyPerson(user *model.User, req PersonRequest) {
	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	user.Phone = strings.TrimSpace(req.Phone)
	user.Address = strings.TrimSpace(req.Address)
	user.CompanyName = strings.TrimSpace(req.CompanyName)
	user.TaxID = strings.TrimSpace(req.TaxID)
}

func (s *personService) validate(ctx context.Context, req PersonRequest, exceptID uint) error {
	if strings.TrimSpace(req.FirstName) == "" {
		return invalid(ResultNoName)
	}
	if strings.TrimSpace(req.Email) == "" {
		return invalid(ResultNoEmail)
	}
	taken, err := s.users.EmailTaken(ctx, req.Email, exceptID)
	if err != nil {
		return err
	}
	if taken {
		return ErrExists
	}
	return nil
}

func (s *personService) List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.User], error) {
	users, total, err := s.users.List(ctx, repository.UserFilter{
		AppRole:       s.appRole,
		Search:        filter.Search,
		DepartmentIDs: filter.DepartmentIDs,
	}, page)
	if err != nil {
		return Page[model.User]{}, err
	}
	return Page[model.User]{Items: users, Total: total}, nil
}

func (s *personService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id, s.preloads...)
	if err != nil {
		return nil, err
	}
	if user.AppRole != s.appRole {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *personService) Add(ctx context.Context, req PersonRequest) (*model.User, error) {
	if err := s.validate(ctx, req, 0); err != nil {
		return nil, err
	}
	user, err := newUser(s.appRole, req)
	if err != nil {
		return nil, err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Create(txCtx, user); err != nil {
			return err
		}
		return s.link(txCtx, user.ID, req)
	})
	if err != nil {
		return nil, err
	}
	if req.RoleIDs != nil {
		s.purgePermissions()
	}
	return s.Get(ctx, user.ID)
}

func (s *personService) Edit(ctx context.Context, id uint, req PersonRequest) (*model.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, req, id); err != nil {
		return nil, err
	}
	applyPerson(user, req)

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Update(txCtx, user); err != nil {
			return err
		}
		return s.link(txCtx, user.ID, req)
	})
	if err != nil {
		return nil, err
	}
	if req.RoleIDs != nil {
		s.purgePermissions()
	}
	return s.Get(ctx, id)
}

// link applies role and department assignments carried by an employee request.
// Nil slices leave existing links untouched.
func (s *personService) link(ctx context.Context, userID uint, req PersonRequest) error {
	if s.appRole != model.AppRoleEmployee {
		return nil
	}
	if req.RoleIDs != nil {
		if err := s.replaceRoles(ctx, userID, req.RoleIDs); err != nil {
			return err
		}
	}
	if req.DepartmentIDs != nil {
		if err := s.departments.ReplaceUserDepartments(ctx, userID, req.DepartmentIDs); err != nil {
			return err
		}
	}
	return nil
}

func (s *personService) replaceRoles(ctx context.Context, userID uint, roleIDs []uint) error {
	roles, err := s.roles.FindByIDs(ctx, roleIDs)
	if err != nil {
		return err
	}
	ids := make([]uint, 0, len(roles))
	for _, r := range roles {
		ids = append(ids, r.ID)
	}
	return s.users.ReplaceRoles(ctx, userID, ids)
}

func (s *personService) purgePermissions() {
	if s.perms != nil {
		s.perms.InvalidatePermissions()
	}
}

func (s *personService) DeleteMany(ctx context.Context, ids []uint) error {
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return s.users.DeleteMany(txCtx, s.appRole, ids)
	})
	if err != nil {
		return err
	}
	if s.appRole == model.AppRoleEmployee {
		s.purgePermissions()
	}
	return nil
}

// SetRoles replaces every role of the employee. Unknown role ids are ignored.
func (s *personService) SetRoles(ctx context.Context, id uint, roleIDs []uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return s.replaceRoles(txCtx, id, roleIDs)
	})
	if err != nil {
		return err
	}
	s.purgePermissions()
	return nil
}
