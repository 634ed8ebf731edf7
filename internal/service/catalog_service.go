package service

import (
	"context"
	"strings"

	"autoservice/internal/model"
	"autoservice/internal/repository"
	"autoservice/pkg/pagination"

	"github.com/shopspring/decimal"
)

const ResultNoPrice = "no_price"

type RepairServiceRequest struct {
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	DurationMinutes int              `json:"durationMinutes"`
}

// CatalogService manages the priced list of repair services offered by the workshop.
type CatalogService interface {
	List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.RepairService], error)
	Get(ctx context.Context, id uint) (*model.RepairService, error)
	Add(ctx context.Context, req RepairServiceRequest) (*model.RepairService, error)
	Edit(ctx context.Context, id uint, req RepairServiceRequest) (*model.RepairService, error)
	DeleteMany(ctx context.Context, ids []uint) error
}

type catalogService struct {
	store *repository.Store[model.RepairService]
}

func NewCatalogService(store *repository.Store[model.RepairService]) CatalogService {
	return &catalogService{store: store}
}

func applyRepairService(rs *model.RepairService, req RepairServiceRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return invalid(ResultNoName)
	}
	if req.Price == nil || req.Price.IsNegative() {
		return invalid(ResultNoPrice)
	}
	rs.Name = name
	rs.Description = strings.TrimSpace(req.Description)
	rs.Price = req.Price.Round(2)
	rs.DurationMinutes = req.DurationMinutes
	return nil
}

func (s *catalogService) List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.RepairService], error) {
	items, total, err := s.store.List(ctx, page, []repository.Scope{
		repository.Contains(filter.Search, "name", "description"),
	})
	if err != nil {
		return Page[model.RepairService]{}, err
	}
	return Page[model.RepairService]{Items: items, Total: total}, nil
}

func (s *catalogService) Get(ctx context.Context, id uint) (*model.RepairService, error) {
	return s.store.Get(ctx, id)
}

func (s *catalogService) Add(ctx context.Context, req RepairServiceRequest) (*model.RepairService, error) {
	var rs model.RepairService
	if err := applyRepairService(&rs, req); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, &rs); err != nil {
		return nil, err
	}
	return &rs, nil
}

func (s *catalogService) Edit(ctx context.Context, id uint, req RepairServiceRequest) (*model.RepairService, error) {
	rs, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyRepairService(rs, req); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, rs); err != nil {
		return nil, err
	}
	return rs, nil
}

func (s *catalogService) DeleteMany(ctx context.Context, ids []uint) error {
	return s.store.DeleteMany(ctx, ids)
}
