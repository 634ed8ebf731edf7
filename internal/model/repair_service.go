package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/plugin/soft_delete"
)

// RepairService is an entry of the workshop's priced service catalogue.
type RepairService struct {
	ID              uint                  `gorm:"primaryKey" json:"id"`
	Name            string                `gorm:"type:varchar(255);not null" json:"name"`
	Description     string                `gorm:"type:text" json:"description"`
	Price           decimal.Decimal       `gorm:"type:decimal(14,2);not null" json:"price"`
	DurationMinutes int                   `json:"durationMinutes"`
	IsDeleted       soft_delete.DeletedAt `gorm:"softDelete:flag;index" json:"-"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

func (RepairService) TableName() string {
	return "services"
}
