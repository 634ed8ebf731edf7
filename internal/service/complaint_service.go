package service

import (
	"context"
	"strings"

	"autoservice/internal/model"
	"autoservice/internal/repository"
	"autoservice/pkg/pagination"
)

const ResultNoDescription = "no_description"

type ComplaintRequest struct {
	OrderID     uint   `json:"orderId"`
	Description string `json:"description"`
}

type ComplaintService interface {
	List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.OrdersComplaint], error)
	Get(ctx context.Context, id uint) (*model.OrdersComplaint, error)
	Add(ctx context.Context, req ComplaintRequest) (*model.OrdersComplaint, error)
	Edit(ctx context.Context, id uint, req ComplaintRequest) (*model.OrdersComplaint, error)
	ChangeStatus(ctx context.Context, id uint, status int) (*model.OrdersComplaint, error)
	DeleteMany(ctx context.Context, ids []uint) error
}

type complaintService struct {
	repo *repository.OrderRepository
}

func NewComplaintService(repo *repository.OrderRepository) ComplaintService {
	return &complaintService{repo: repo}
}

func (s *complaintService) List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.OrdersComplaint], error) {
	scopes := []repository.Scope{
		repository.InInts("status", filter.Statuses),
		repository.Between("created_at", filter.From, filter.To),
		repository.Contains(filter.Search, "description"),
	}
	if filter.OrderID != 0 {
		scopes = append(scopes, repository.Eq("order_id", filter.OrderID))
	}
	items, total, err := s.repo.Complaints.List(ctx, page, scopes)
	if err != nil {
		return Page[model.OrdersComplaint]{}, err
	}
	return Page[model.OrdersComplaint]{Items: items, Total: total}, nil
}

func (s *complaintService) Get(ctx context.Context, id uint) (*model.OrdersComplaint, error) {
	return s.repo.Complaints.Get(ctx, id)
}

// Add files the complaint of an order; an order carries at most one.
func (s *complaintService) Add(ctx context.Context, req ComplaintRequest) (*model.OrdersComplaint, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, invalid(ResultNoDescription)
	}
	if _, err := s.repo.Orders.Get(ctx, req.OrderID); err != nil {
		return nil, err
	}
	exists, err := s.repo.Complaints.Exists(ctx, false, repository.Eq("order_id", req.OrderID))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrExists
	}

	c := &model.OrdersComplaint{OrderID: req.OrderID, Description: description, Status: model.ComplaintStatusOpen}
	if err := s.repo.Complaints.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *complaintService) Edit(ctx context.Context, id uint, req ComplaintRequest) (*model.OrdersComplaint, error) {
	c, err := s.repo.Complaints.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, invalid(ResultNoDescription)
	}
	c.Description = description
	if err := s.repo.Complaints.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *complaintService) ChangeStatus(ctx context.Context, id uint, status int) (*model.OrdersComplaint, error) {
	if !model.ComplaintStatuses.Valid(status) {
		return nil, invalid(ResultBadStatus)
	}
	c, err := s.repo.Complaints.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !model.ComplaintStatuses.CanChange(c.Status, status) {
		return nil, invalid(ResultBadStatus)
	}
	if err := s.repo.Complaints.Update(ctx, id, map[string]any{"status": status}); err != nil {
		return nil, err
	}
	c.Status = status
	return c, nil
}

func (s *complaintService) DeleteMany(ctx context.Context, ids []uint) error {
	return s.repo.Complaints.DeleteMany(ctx, ids)
}
