package service

import (
	"context"
	"errors"
	"strings"

	"autoservice/internal/model"
	"autoservice/internal/repository"
	"autoservice/pkg/pagination"
)

const ResultDepartmentInUse = "department_in_use"

type DepartmentRequest struct {
	Name       string `json:"name"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

type DepartmentUsersRequest struct {
	UserIDs []uint `json:"userIds"`
}

type DepartmentService interface {
	List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.Department], error)
	Get(ctx context.Context, id uint) (*model.Department, error)
	Add(ctx context.Context, req DepartmentRequest) (*model.Department, error)
	Edit(ctx context.Context, id uint, req DepartmentRequest) (*model.Department, error)
	DeleteMany(ctx context.Context, ids []uint) error
	AddUsers(ctx context.Context, id uint, userIDs []uint) error
	RemoveUsers(ctx context.Context, id uint, userIDs []uint) error
}

type departmentService struct {
	repo      repository.DepartmentRepository
	txManager repository.TransactionManager
}

func NewDepartmentService(repo repository.DepartmentRepository, txManager repository.TransactionManager) DepartmentService {
	return &departmentService{repo: repo, txManager: txManager}
}

func applyDepartment(d *model.Department, req DepartmentRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return invalid(ResultNoName)
	}
	d.Name = name
	d.City = strings.TrimSpace(req.City)
	d.Street = strings.TrimSpace(req.Street)
	d.PostalCode = strings.TrimSpace(req.PostalCode)
	d.Phone = strings.TrimSpace(req.Phone)
	return nil
}

func (s *departmentService) List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.Department], error) {
	items, total, err := s.repo.List(ctx, filter.Search, filter.DepartmentIDs, page)
	if err != nil {
		return Page[model.Department]{}, err
	}
	return Page[model.Department]{Items: items, Total: total}, nil
}

func (s *departmentService) Get(ctx context.Context, id uint) (*model.Department, error) {
	return s.repo.GetByID(ctx, id, "Users")
}

func (s *departmentService) Add(ctx context.Context, req DepartmentRequest) (*model.Department, error) {
	var d model.Department
	if err := applyDepartment(&d, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *departmentService) Edit(ctx context.Context, id uint, req DepartmentRequest) (*model.Department, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyDepartment(d, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// DeleteMany answers department_in_use while orders, stock or demands still belong to a department.
func (s *departmentService) DeleteMany(ctx context.Context, ids []uint) error {
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteMany(txCtx, ids)
	})
	if errors.Is(err, repository.ErrInUse) {
		return invalid(ResultDepartmentInUse)
	}
	return err
}

func (s *departmentService) AddUsers(ctx context.Context, id uint, userIDs []uint) error {
	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.GetByID(txCtx, id); err != nil {
			return err
		}
		return s.repo.AddUsers(txCtx, id, userIDs)
	})
}

func (s *departmentService) RemoveUsers(ctx context.Context, id uint, userIDs []uint) error {
	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.GetByID(txCtx, id); err != nil {
			return err
		}
		return s.repo.RemoveUsers(txCtx, id, userIDs)
	})
}
