package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"autoservice/internal/auth"
	"autoservice/internal/cache"
	"autoservice/internal/model"
	"autoservice/internal/repository"

	"go.uber.org/zap"
)

const (
	ResultNoLoginData  = "no_login_data"
	ResultBadLogin     = "bad_login"
	ResultBadPassword  = "bad_password"
	ResultWeakPassword = "weak_password"

	minPasswordLength = 8
	adminRoleName     = "Administrator"
)

// --- DTOs ---

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries the new session; the token itself only ever travels in the cookie.
type LoginResult struct {
	Token        string
	Expire       time.Time
	IsFirstLogin bool
	IsDeleted    bool
	AppRole      string
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type MeResponse struct {
	User        *model.User `json:"user"`
	Permissions []string    `json:"permissions"`
}

// --- Interface ---

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	ValidateSession(ctx context.Context, token string) (*model.SessionToken, error)
	IsAuthorized(ctx context.Context, userID uint, resource, action string) (bool, error)
	PermissionCodes(ctx context.Context, userID uint) ([]string, error)
	Me(ctx context.Context, userID uint) (*MeResponse, error)
	ChangePassword(ctx context.Context, userID uint, req ChangePasswordRequest) error
	InvalidatePermissions()
	SeedAdmin(ctx context.Context, email, password string) error
}

type authService struct {
	users     repository.UserRepository
	sessions  repository.SessionRepository
	roles     repository.RoleRepository
	txManager repository.TransactionManager
	cache     cache.PermissionCache
	ttl       time.Duration
	log       *zap.SugaredLogger
	now       func() time.Time
}

// NewAuthService builds the session and permission service. permCache may be nil.
func NewAuthService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	roles repository.RoleRepository,
	txManager repository.TransactionManager,
	permCache cache.PermissionCache,
	sessionTTL time.Duration,
	log *zap.SugaredLogger,
) AuthService {
	return &authService{
		users:     users,
		sessions:  sessions,
		roles:     roles,
		txManager: txManager,
		cache:     permCache,
		ttl:       sessionTTL,
		log:       log,
		now:       time.Now,
	}
}

// --- Implementation ---

func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, invalid(ResultNoLoginData)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, invalid(ResultBadLogin)
		}
		return nil, err
	}
	if user.IsDeleted != 0 || !auth.CheckPassword(user.Password, req.Password, user.Salt) {
		return nil, invalid(ResultBadLogin)
	}

	token := auth.NewSessionToken()
	expire := s.now().Add(s.ttl)
	if err := s.sessions.Upsert(ctx, user.ID, token, expire); err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:        token,
		Expire:       expire,
		IsFirstLogin: user.IsFirstLogin,
		IsDeleted:    user.IsDeleted != 0,
		AppRole:      user.AppRole,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteByToken(ctx, token)
}

// ValidateSession accepts only a known, unexpired token and slides its expiry forward.
func (s *authService) ValidateSession(ctx context.Context, token string) (*model.SessionToken, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	now := s.now()
	if session.Expired(now) {
		return nil, ErrNoSession
	}

	session.Expire = now.Add(s.ttl)
	if err := s.sessions.Touch(ctx, session.ID, session.Expire); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *authService) IsAuthorized(ctx context.Context, userID uint, resource, action string) (bool, error) {
	codes, err := s.PermissionCodes(ctx, userID)
	if err != nil {
		return false, err
	}
	return slices.Contains(codes, model.PermissionKey{Resource: resource, Action: action}.Code()), nil
}

// PermissionCodes returns the union of the user's role permissions, served from the cache when possible.
func (s *authService) PermissionCodes(ctx context.Context, userID uint) ([]string, error) {
	if s.cache != nil {
		if codes, ok := s.cache.Get(ctx, userID); ok {
			return codes, nil
		}
	}

	codes, err := s.roles.PermissionCodesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, userID, codes)
	}
	return codes, nil
}

func (s *authService) Me(ctx context.Context, userID uint) (*MeResponse, error) {
	user, err := s.users.GetByID(ctx, userID, "Roles", "Departments")
	if err != nil {
		return nil, err
	}
	codes, err := s.PermissionCodes(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &MeResponse{User: user, Permissions: codes}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uint, req ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.Password, req.OldPassword, user.Salt) {
		return invalid(ResultBadPassword)
	}
	if len(req.NewPassword) < minPasswordLength {
		return invalid(ResultWeakPassword)
	}

	salt, err := auth.NewSalt()
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(req.NewPassword, salt)
	if err != nil {
		return err
	}
	return s.users.UpdateFields(ctx, user.ID, map[string]any{
		"salt":           salt,
		"password":       hash,
		"is_first_login": false,
	})
}

func (s *authService) InvalidatePermissions() {
	if s.cache != nil {
		s.cache.Purge(context.Background())
	}
}

// SeedAdmin seeds the permission catalogue and makes sure an administrator account holding
// every permission exists. With an empty email only the catalogue is seeded.
func (s *authService) SeedAdmin(ctx context.Context, email, password string) error {
	if err := s.roles.SeedPermissions(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(email) == "" {
		return nil
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		role, err := s.ensureAdminRole(txCtx)
		if err != nil {
			return err
		}

		existing, err := s.users.GetByEmail(txCtx, email)
		switch {
		case errors.Is(err, ErrNotFound):
			if password == "" {
				return fmt.Errorf("seed admin %s: password is required", email)
			}
			user, err := newUser(model.AppRoleEmployee, PersonRequest{FirstName: adminRoleName, Email: email, Password: password})
			if err != nil {
				return err
			}
			if err := s.users.Create(txCtx, user); err != nil {
				return err
			}
			s.log.Infow("seeded administrator", "email", email)
			return s.users.ReplaceRoles(txCtx, user.ID, []uint{role.ID})
		case err != nil:
			return err
		}

		user, err := s.users.GetByID(txCtx, existing.ID, "Roles")
		if err != nil {
			return err
		}
		roleIDs := []uint{role.ID}
		for _, r := range user.Roles {
			if r.ID == role.ID {
				return nil
			}
			roleIDs = append(roleIDs, r.ID)
		}
		return s.users.ReplaceRoles(txCtx, user.ID, roleIDs)
	})
}

func (s *authService) ensureAdminRole(ctx context.Context) (*model.Role, error) {
	roles, _, err := s.roles.List(ctx, adminRoleName, pageAll)
	if err != nil {
		return nil, err
	}
	for i := range roles {
		if roles[i].Name == adminRoleName {
			return &roles[i], s.roles.ReplacePermissions(ctx, roles[i].ID, model.Catalogue())
		}
	}

	role := &model.Role{Name: adminRoleName, Description: "Full access", IsSystem: true}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, s.roles.ReplacePermissions(ctx, role.ID, model.Catalogue())
}
