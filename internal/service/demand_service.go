package service

import (
	"context"
	"errors"
	"strings"

	"autoservice/internal/model"
	"autoservice/internal/repository"
	"autoservice/pkg/pagination"
)

const ResultNoItems = "no_items"

type DemandItemRequest struct {
	WarehouseItemID *uint  `json:"warehouseItemId"`
	Name            string `json:"name"`
	EAN             string `json:"ean"`
	Quantity        int    `json:"quantity"`
}

type DemandRequest struct {
	DepartmentID uint                `json:"departmentId"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Items        []DemandItemRequest `json:"items"`
}

type DemandService interface {
	List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.Demand], error)
	Get(ctx context.Context, id uint) (*model.Demand, error)
	Add(ctx context.Context, userID uint, req DemandRequest) (*model.Demand, error)
	Edit(ctx context.Context, id uint, req DemandRequest) (*model.Demand, error)
	ChangeStatus(ctx context.Context, id uint, status int) (*model.Demand, error)
	ChangeItemStatus(ctx context.Context, itemID uint, status int) (*model.DemandsItem, error)
	DeleteMany(ctx context.Context, ids []uint) error
}

type demandService struct {
	repo        *repository.DemandRepository
	departments repository.DepartmentRepository
	warehouse   *repository.Store[model.WarehouseItem]
	txManager   repository.TransactionManager
	events      EventPublisher
}

func NewDemandService(
	repo *repository.DemandRepository,
	departments repository.DepartmentRepository,
	warehouse *repository.Store[model.WarehouseItem],
	txManager repository.TransactionManager,
	events EventPublisher,
) DemandService {
	return &demandService{
		repo:        repo,
		departments: departments,
		warehouse:   warehouse,
		txManager:   txManager,
		events:      publisherOrNop(events),
	}
}

func (s *demandService) apply(ctx context.Context, d *model.Demand, req DemandRequest) error {
	ok, err := s.departments.Exists(ctx, req.DepartmentID)
	if err != nil {
		return err
	}
	if !ok {
		return invalid(ResultNoDepartment)
	}
	if len(req.Items) == 0 {
		return invalid(ResultNoItems)
	}

	items := make([]model.DemandsItem, 0, len(req.Items))
	for _, ir := range req.Items {
		item, err := s.buildItem(ctx, ir)
		if err != nil {
			return err
		}
		items = append(items, *item)
	}

	d.DepartmentID = req.DepartmentID
	d.Title = strings.TrimSpace(req.Title)
	d.Description = strings.TrimSpace(req.Description)
	d.Items = items
	return nil
}

// buildItem fills name and EAN from the referenced warehouse item when they are left empty.
func (s *demandService) buildItem(ctx context.Context, req DemandItemRequest) (*model.DemandsItem, error) {
	item := &model.DemandsItem{
		WarehouseItemID: req.WarehouseItemID,
		Name:            strings.TrimSpace(req.Name),
		EAN:             strings.TrimSpace(req.EAN),
		Quantity:        req.Quantity,
		Status:          model.DemandItemPending,
	}
	if req.WarehouseItemID != nil {
		stock, err := s.warehouse.Get(ctx, *req.WarehouseItemID)
		if errors.Is(err, ErrNotFound) {
			return nil, invalid(ResultBadItem)
		}
		if err != nil {
			return nil, err
		}
		if item.Name == "" {
			item.Name = stock.Name
		}
		if item.EAN == "" {
			item.EAN = stock.EAN
		}
	}
	if item.Name == "" {
		return nil, invalid(ResultNoName)
	}
	if item.Quantity <= 0 {
		return nil, invalid(ResultNoQuantity)
	}
	return item, nil
}

func (s *demandService) List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.Demand], error) {
	items, total, err := s.repo.Demands.List(ctx, page, []repository.Scope{
		repository.Between("created_at", filter.From, filter.To),
		repository.InInts("status", filter.Statuses),
		repository.InIDs("department_id", filter.DepartmentIDs),
		repository.InIDs("created_by", filter.UserIDs),
		repository.Contains(filter.Search, "title", "description"),
	}, "Items")
	if err != nil {
		return Page[model.Demand]{}, err
	}
	return Page[model.Demand]{Items: items, Total: total}, nil
}

func (s *demandService) Get(ctx context.Context, id uint) (*model.Demand, error) {
	return s.repo.Demands.Get(ctx, id, "Items", "Department")
}

func (s *demandService) Add(ctx context.Context, userID uint, req DemandRequest) (*model.Demand, error) {
	d := model.Demand{CreatedBy: userID, Status: model.DemandStatusNew}
	if err := s.apply(ctx, &d, req); err != nil {
		return nil, err
	}
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return s.repo.Demands.Create(txCtx, &d)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, d.ID)
}

// Edit replaces the demand header and all of its items. Final demands cannot be edited.
func (s *demandService) Edit(ctx context.Context, id uint, req DemandRequest) (*model.Demand, error) {
	d, err := s.repo.Demands.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if model.DemandStatuses.IsTerminal(d.Status) {
		return nil, invalid(ResultBadStatus)
	}
	if err := s.apply(ctx, d, req); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Demands.Save(txCtx, d); err != nil {
			return err
		}
		return s.repo.ReplaceItems(txCtx, d)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *demandService) ChangeStatus(ctx context.Context, id uint, status int) (*model.Demand, error) {
	if !model.DemandStatuses.Valid(status) {
		return nil, invalid(ResultBadStatus)
	}
	d, err := s.repo.Demands.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !model.DemandStatuses.CanChange(d.Status, status) {
		return nil, invalid(ResultBadStatus)
	}
	if err := s.repo.Demands.Update(ctx, id, map[string]any{"status": status}); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// ChangeItemStatus updates one demand line. Delivering a line linked to a warehouse item
// books its quantity into stock in the same transaction. The status is compared and set in
// one statement, so a line is never booked twice.
func (s *demandService) ChangeItemStatus(ctx context.Context, itemID uint, status int) (*model.DemandsItem, error) {
	if !model.DemandItemStatuses.Valid(status) {
		return nil, invalid(ResultBadStatus)
	}
	item, err := s.repo.Items.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !model.DemandItemStatuses.CanChange(item.Status, status) {
		return nil, invalid(ResultBadStatus)
	}

	var stock *model.WarehouseItem
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		changed, err := s.repo.Items.UpdateWhere(txCtx, item.ID,
			[]repository.Scope{repository.Eq("status", item.Status)}, map[string]any{"status": status})
		if err != nil {
			return err
		}
		if !changed {
			return invalid(ResultBadStatus)
		}
		if status != model.DemandItemDelivered || item.WarehouseItemID == nil {
			return nil
		}
		if _, err := s.warehouse.Increment(txCtx, *item.WarehouseItemID, "quantity", item.Quantity); err != nil {
			return err
		}
		stock, err = s.warehouse.Get(txCtx, *item.WarehouseItemID)
		if errors.Is(err, ErrNotFound) {
			err = nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	if stock != nil {
		s.events.Publish(EventStockChanged, StockEvent{
			ItemID:       stock.ID,
			DepartmentID: stock.DepartmentID,
			Quantity:     stock.Quantity,
		}, stockAudience)
	}
	item.Status = status
	return item, nil
}

func (s *demandService) DeleteMany(ctx context.Context, ids []uint) error {
	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteDemands(txCtx, ids)
	})
}
