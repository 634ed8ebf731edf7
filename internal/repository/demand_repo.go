package repository

import (
	"context"
	"fmt"

	"autoservice/internal/model"

	"gorm.io/gorm"
)

// DemandRepository groups demands and their item lines.
type DemandRepository struct {
	Demands *Store[model.Demand]
	Items   *Store[model.DemandsItem]
}

func NewDemandRepository(db *gorm.DB, policy DeletePolicy) *DemandRepository {
	return &DemandRepository{
		Demands: NewStore[model.Demand](db, EntityDemands, policy),
		Items:   NewStore[model.DemandsItem](db, "demands_items", policy),
	}
}

// DeleteDemands removes demands; hard deletes take their items with them. Must run inside a transaction.
func (r *DemandRepository) DeleteDemands(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if r.Demands.HardDeletes() {
		if err := r.Items.DB(ctx).Where("demand_id IN ?", ids).Delete(&model.DemandsItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete demand items: %w", err)
		}
	}
	return r.Demands.DeleteMany(ctx, ids)
}

// ReplaceItems swaps the stored items of d for the ones it carries now.
func (r *DemandRepository) ReplaceItems(ctx context.Context, d *model.Demand) error {
	db := r.Items.DB(ctx)
	if err := db.Where("demand_id = ?", d.ID).Delete(&model.DemandsItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear demand items: %w", err)
	}
	if len(d.Items) == 0 {
		return nil
	}
	for i := range d.Items {
		d.Items[i].ID = 0
		d.Items[i].DemandID = d.ID
	}
	if err := db.Create(&d.Items).Error; err != nil {
		return fmt.Errorf("failed to store demand items: %w", err)
	}
	return nil
}
