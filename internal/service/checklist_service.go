package service

import (
	"context"
	"strings"

	"autoservice/internal/model"
	"autoservice/internal/repository"
	"autoservice/pkg/pagination"
)

type CheckListRequest struct {
	OrderID   uint   `json:"orderId"`
	Name      string `json:"name"`
	IsChecked bool   `json:"isChecked"`
	Comment   string `json:"comment"`
}

type CheckListService interface {
	List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.CheckList], error)
	Get(ctx context.Context, id uint) (*model.CheckList, error)
	Add(ctx context.Context, req CheckListRequest) (*model.CheckList, error)
	Edit(ctx context.Context, id uint, req CheckListRequest) (*model.CheckList, error)
	DeleteMany(ctx context.Context, ids []uint) error
}

type checkListService struct {
	repo *repository.OrderRepository
}

func NewCheckListService(repo *repository.OrderRepository) CheckListService {
	return &checkListService{repo: repo}
}

func buildCheckList(req CheckListRequest) (*model.CheckList, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid(ResultNoName)
	}
	return &model.CheckList{
		OrderID:   req.OrderID,
		Name:      name,
		IsChecked: req.IsChecked,
		Comment:   strings.TrimSpace(req.Comment),
	}, nil
}

func (s *checkListService) List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.CheckList], error) {
	scopes := []repository.Scope{repository.Contains(filter.Search, "name", "comment")}
	if filter.OrderID != 0 {
		scopes = append(scopes, repository.Eq("order_id", filter.OrderID))
	}
	items, total, err := s.repo.CheckLists.List(ctx, page, scopes)
	if err != nil {
		return Page[model.CheckList]{}, err
	}
	return Page[model.CheckList]{Items: items, Total: total}, nil
}

func (s *checkListService) Get(ctx context.Context, id uint) (*model.CheckList, error) {
	return s.repo.CheckLists.Get(ctx, id)
}

func (s *checkListService) Add(ctx context.Context, req CheckListRequest) (*model.CheckList, error) {
	item, err := buildCheckList(req)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.Orders.Get(ctx, req.OrderID); err != nil {
		return nil, err
	}
	if err := s.repo.CheckLists.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Edit updates the item in place; an item never moves to another order.
func (s *checkListService) Edit(ctx context.Context, id uint, req CheckListRequest) (*model.CheckList, error) {
	item, err := s.repo.CheckLists.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := buildCheckList(req)
	if err != nil {
		return nil, err
	}
	item.Name = updated.Name
	item.IsChecked = updated.IsChecked
	item.Comment = updated.Comment
	if err := s.repo.CheckLists.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *checkListService) DeleteMany(ctx context.Context, ids []uint) error {
	return s.repo.CheckLists.DeleteMany(ctx, ids)
}
