package service

import (
	"context"
	"errors"
	"strings"

	"autoservice/internal/model"
	"autoservice/internal/repository"
	"autoservice/pkg/pagination"

	"github.com/shopspring/decimal"
)

const ResultBadItem = "bad_item"

// EstimateLineRequest is one part or service line. When it references a warehouse item or
// a catalogue service, a missing name or unit price is taken from there.
type EstimateLineRequest struct {
	WarehouseItemID *uint            `json:"warehouseItemId"`
	ServiceID       *uint            `json:"serviceId"`
	Name            string           `json:"name"`
	Quantity        int              `json:"quantity"`
	UnitPrice       *decimal.Decimal `json:"unitPrice"`
}

type EstimateRequest struct {
	OrderID  uint                  `json:"orderId"`
	Name     string                `json:"name"`
	Parts    []EstimateLineRequest `json:"parts"`
	Services []EstimateLineRequest `json:"services"`
}

type EstimateService interface {
	List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.Estimate], error)
	Get(ctx context.Context, id uint) (*model.Estimate, error)
	Add(ctx context.Context, req EstimateRequest) (*model.Estimate, error)
	Edit(ctx context.Context, id uint, req EstimateRequest) (*model.Estimate, error)
	DeleteMany(ctx context.Context, ids []uint) error
}

type estimateService struct {
	repo      *repository.OrderRepository
	lines     *lineResolver
	txManager repository.TransactionManager
}

func NewEstimateService(
	repo *repository.OrderRepository,
	warehouse *repository.Store[model.WarehouseItem],
	catalog *repository.Store[model.RepairService],
	txManager repository.TransactionManager,
) EstimateService {
	return &estimateService{
		repo:      repo,
		lines:     &lineResolver{warehouse: warehouse, catalog: catalog},
		txManager: txManager,
	}
}

// lineResolver turns estimate requests into priced estimates.
type lineResolver struct {
	warehouse *repository.Store[model.WarehouseItem]
	catalog   *repository.Store[model.RepairService]
}

func (r *lineResolver) build(ctx context.Context, req EstimateRequest) (*model.Estimate, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid(ResultNoName)
	}
	e := &model.Estimate{Name: name}

	for _, line := range req.Parts {
		lineName, price, err := r.resolvePart(ctx, line)
		if err != nil {
			return nil, err
		}
		e.Parts = append(e.Parts, model.EstimatePart{
			WarehouseItemID: line.WarehouseItemID,
			Name:            lineName,
			Quantity:        line.Quantity,
			UnitPrice:       price,
		})
	}
	for _, line := range req.Services {
		lineName, price, err := r.resolveService(ctx, line)
		if err != nil {
			return nil, err
		}
		e.Services = append(e.Services, model.EstimateService{
			ServiceID: line.ServiceID,
			Name:      lineName,
			Quantity:  line.Quantity,
			UnitPrice: price,
		})
	}

	e.Recalculate()
	return e, nil
}

func (r *lineResolver) resolvePart(ctx context.Context, line EstimateLineRequest) (string, decimal.Decimal, error) {
	name, price := strings.TrimSpace(line.Name), line.UnitPrice
	if line.WarehouseItemID != nil {
		item, err := r.warehouse.Get(ctx, *line.WarehouseItemID)
		if errors.Is(err, ErrNotFound) {
			return "", decimal.Zero, invalid(ResultBadItem)
		}
		if err != nil {
			return "", decimal.Zero, err
		}
		if name == "" {
			name = item.Name
		}
		if price == nil {
			price = &item.UnitPrice
		}
	}
	return checkLine(name, line.Quantity, price)
}

func (r *lineResolver) resolveService(ctx context.Context, line EstimateLineRequest) (string, decimal.Decimal, error) {
	name, price := strings.TrimSpace(line.Name), line.UnitPrice
	if line.ServiceID != nil {
		rs, err := r.catalog.Get(ctx, *line.ServiceID)
		if errors.Is(err, ErrNotFound) {
			return "", decimal.Zero, invalid(ResultBadItem)
		}
		if err != nil {
			return "", decimal.Zero, err
		}
		if name == "" {
			name = rs.Name
		}
		if price == nil {
			price = &rs.Price
		}
	}
	return checkLine(name, line.Quantity, price)
}

func checkLine(name string, quantity int, price *decimal.Decimal) (string, decimal.Decimal, error) {
	if name == "" {
		return "", decimal.Zero, invalid(ResultNoName)
	}
	if quantity <= 0 {
		return "", decimal.Zero, invalid(ResultNoQuantity)
	}
	if price == nil || price.IsNegative() {
		return "", decimal.Zero, invalid(ResultNoPrice)
	}
	return name, price.Round(2), nil
}

func (s *estimateService) List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.Estimate], error) {
	scopes := []repository.Scope{repository.Contains(filter.Search, "name")}
	if filter.OrderID != 0 {
		scopes = append(scopes, repository.Eq("order_id", filter.OrderID))
	}
	items, total, err := s.repo.Estimates.List(ctx, page, scopes, "Parts", "Services")
	if err != nil {
		return Page[model.Estimate]{}, err
	}
	return Page[model.Estimate]{Items: items, Total: total}, nil
}

func (s *estimateService) Get(ctx context.Context, id uint) (*model.Estimate, error) {
	return s.repo.Estimates.Get(ctx, id, "Parts", "Services")
}

func (s *estimateService) Add(ctx context.Context, req EstimateRequest) (*model.Estimate, error) {
	if _, err := s.repo.Orders.Get(ctx, req.OrderID); err != nil {
		return nil, err
	}
	e, err := s.lines.build(ctx, req)
	if err != nil {
		return nil, err
	}
	e.OrderID = req.OrderID

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return s.repo.Estimates.Create(txCtx, e)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, e.ID)
}

// Edit renames the estimate and replaces all of its lines.
func (s *estimateService) Edit(ctx context.Context, id uint, req EstimateRequest) (*model.Estimate, error) {
	current, err := s.repo.Estimates.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	e, err := s.lines.build(ctx, req)
	if err != nil {
		return nil, err
	}
	e.ID = current.ID
	e.OrderID = current.OrderID
	e.CreatedAt = current.CreatedAt

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Estimates.Save(txCtx, e); err != nil {
			return err
		}
		return s.repo.ReplaceEstimateLines(txCtx, e)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *estimateService) DeleteMany(ctx context.Context, ids []uint) error {
	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteEstimates(txCtx, ids)
	})
}
