package service

import (
	"context"
	"strings"

	"autoservice/internal/model"
	"autoservice/internal/repository"
	"autoservice/pkg/pagination"

	"github.com/shopspring/decimal"
)

const (
	ResultInsufficientQuantity = "insufficient_quantity"

	EventStockChanged = "warehouse.stock"
)

type WarehouseItemRequest struct {
	Name         string           `json:"name"`
	EAN          string           `json:"ean"`
	Quantity     int              `json:"quantity"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
	Location     string           `json:"location"`
	DepartmentID uint             `json:"departmentId"`
}

type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

// StockEvent is broadcast whenever an item's quantity changes.
type StockEvent struct {
	ItemID       uint `json:"itemId"`
	DepartmentID uint `json:"departmentId"`
	Quantity     int  `json:"quantity"`
}

type WarehouseService interface {
	List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.WarehouseItem], error)
	Get(ctx context.Context, id uint) (*model.WarehouseItem, error)
	Add(ctx context.Context, req WarehouseItemRequest) (*model.WarehouseItem, error)
	Edit(ctx context.Context, id uint, req WarehouseItemRequest) (*model.WarehouseItem, error)
	DeleteMany(ctx context.Context, ids []uint) error
	AdjustQuantity(ctx context.Context, id uint, delta int) (*model.WarehouseItem, error)
}

type warehouseService struct {
	store       *repository.Store[model.WarehouseItem]
	departments repository.DepartmentRepository
	events      EventPublisher
}

// NewWarehouseService builds the stock service. events may be nil.
func NewWarehouseService(
	store *repository.Store[model.WarehouseItem],
	departments repository.DepartmentRepository,
	events EventPublisher,
) WarehouseService {
	return &warehouseService{store: store, departments: departments, events: publisherOrNop(events)}
}

func (s *warehouseService) apply(ctx context.Context, item *model.WarehouseItem, req WarehouseItemRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return invalid(ResultNoName)
	}
	ok, err := s.departments.Exists(ctx, req.DepartmentID)
	if err != nil {
		return err
	}
	if !ok {
		return invalid(ResultNoDepartment)
	}
	if req.Quantity < 0 {
		return invalid(ResultNoQuantity)
	}

	ean := strings.TrimSpace(req.EAN)
	if ean != "" {
		dup, err := s.store.Exists(ctx, false,
			repository.Eq("ean", ean),
			repository.Eq("department_id", req.DepartmentID),
			repository.NotEq("id", item.ID),
		)
		if err != nil {
			return err
		}
		if dup {
			return ErrExists
		}
	}

	item.Name = name
	item.EAN = ean
	item.Quantity = req.Quantity
	item.Location = strings.TrimSpace(req.Location)
	item.DepartmentID = req.DepartmentID
	if req.UnitPrice != nil {
		item.UnitPrice = req.UnitPrice.Round(2)
	}
	return nil
}

func (s *warehouseService) List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.WarehouseItem], error) {
	items, total, err := s.store.List(ctx, page, []repository.Scope{
		repository.Contains(filter.Search, "name", "ean", "location"),
		repository.InIDs("department_id", filter.DepartmentIDs),
	})
	if err != nil {
		return Page[model.WarehouseItem]{}, err
	}
	return Page[model.WarehouseItem]{Items: items, Total: total}, nil
}

func (s *warehouseService) Get(ctx context.Context, id uint) (*model.WarehouseItem, error) {
	return s.store.Get(ctx, id, "Department")
}

func (s *warehouseService) Add(ctx context.Context, req WarehouseItemRequest) (*model.WarehouseItem, error) {
	var item model.WarehouseItem
	if err := s.apply(ctx, &item, req); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, &item); err != nil {
		return nil, err
	}
	s.publish(&item)
	return &item, nil
}

func (s *warehouseService) Edit(ctx context.Context, id uint, req WarehouseItemRequest) (*model.WarehouseItem, error) {
	item, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	before := item.Quantity
	if err := s.apply(ctx, item, req); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, item); err != nil {
		return nil, err
	}
	if item.Quantity != before {
		s.publish(item)
	}
	return item, nil
}

func (s *warehouseService) DeleteMany(ctx context.Context, ids []uint) error {
	return s.store.DeleteMany(ctx, ids)
}

// AdjustQuantity adds delta (negative to take stock out) without letting stock go below zero.
func (s *warehouseService) AdjustQuantity(ctx context.Context, id uint, delta int) (*model.WarehouseItem, error) {
	changed, err := s.store.Increment(ctx, id, "quantity", delta)
	if err != nil {
		return nil, err
	}
	item, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, invalid(ResultInsufficientQuantity)
	}
	s.publish(item)
	return item, nil
}

func (s *warehouseService) publish(item *model.WarehouseItem) {
	s.events.Publish(EventStockChanged, StockEvent{
		ItemID:       item.ID,
		DepartmentID: item.DepartmentID,
		Quantity:     item.Quantity,
	}, stockAudience)
}
