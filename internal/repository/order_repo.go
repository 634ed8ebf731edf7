package repository

import (
	"context"
	"fmt"

	"autoservice/internal/model"

	"gorm.io/gorm"
)

// OrderRepository groups the stores of an order aggregate and the writes that span them.
type OrderRepository struct {
	Orders     *Store[model.Order]
	Estimates  *Store[model.Estimate]
	CheckLists *Store[model.CheckList]
	Complaints *Store[model.OrdersComplaint]
}

func NewOrderRepository(db *gorm.DB, policy DeletePolicy) *OrderRepository {
	return &OrderRepository{
		Orders:     NewStore[model.Order](db, EntityOrders, policy),
		Estimates:  NewStore[model.Estimate](db, EntityEstimates, policy),
		CheckLists: NewStore[model.CheckList](db, EntityCheckLists, policy),
		Complaints: NewStore[model.OrdersComplaint](db, "orders_complaints", policy),
	}
}

// DeleteOrders removes orders. Hard deletes take estimates, check lists and complaints with them.
// Must run inside a transaction.
func (r *OrderRepository) DeleteOrders(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if r.Orders.HardDeletes() {
		var estimateIDs []uint
		if err := r.Estimates.DB(ctx).Model(&model.Estimate{}).Where("order_id IN ?", ids).Pluck("id", &estimateIDs).Error; err != nil {
			return fmt.Errorf("failed to resolve estimates: %w", err)
		}
		if err := r.DeleteEstimates(ctx, estimateIDs); err != nil {
			return err
		}
		db := r.Orders.DB(ctx)
		if err := db.Where("order_id IN ?", ids).Delete(&model.CheckList{}).Error; err != nil {
			return fmt.Errorf("failed to delete check lists: %w", err)
		}
		if err := db.Where("order_id IN ?", ids).Delete(&model.OrdersComplaint{}).Error; err != nil {
			return fmt.Errorf("failed to delete complaints: %w", err)
		}
	}
	return r.Orders.DeleteMany(ctx, ids)
}

// DeleteEstimates removes estimates with their line items. Must run inside a transaction.
func (r *OrderRepository) DeleteEstimates(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.deleteLines(ctx, ids); err != nil {
		return err
	}
	return r.Estimates.DeleteMany(ctx, ids)
}

// ReplaceEstimateLines swaps the stored parts and services of e for the ones it carries now.
func (r *OrderRepository) ReplaceEstimateLines(ctx context.Context, e *model.Estimate) error {
	if err := r.deleteLines(ctx, []uint{e.ID}); err != nil {
		return err
	}
	db := r.Estimates.DB(ctx)
	for i := range e.Parts {
		e.Parts[i].ID = 0
		e.Parts[i].EstimateID = e.ID
	}
	for i := range e.Services {
		e.Services[i].ID = 0
		e.Services[i].EstimateID = e.ID
	}
	if len(e.Parts) > 0 {
		if err := db.Create(&e.Parts).Error; err != nil {
			return fmt.Errorf("failed to store estimate parts: %w", err)
		}
	}
	if len(e.Services) > 0 {
		if err := db.Create(&e.Services).Error; err != nil {
			return fmt.Errorf("failed to store estimate services: %w", err)
		}
	}
	return nil
}

func (r *OrderRepository) deleteLines(ctx context.Context, estimateIDs []uint) error {
	db := r.Estimates.DB(ctx)
	if err := db.Where("estimate_id IN ?", estimateIDs).Delete(&model.EstimatePart{}).Error; err != nil {
		return fmt.Errorf("failed to delete estimate parts: %w", err)
	}
	if err := db.Where("estimate_id IN ?", estimateIDs).Delete(&model.EstimateService{}).Error; err != nil {
		return fmt.Errorf("failed to delete estimate services: %w", err)
	}
	return nil
}
