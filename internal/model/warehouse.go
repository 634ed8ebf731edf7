package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/plugin/soft_delete"
)

// WarehouseItem is a stocked part in a department's warehouse.
type WarehouseItem struct {
	ID           uint                  `gorm:"primaryKey" json:"id"`
	Name         string                `gorm:"type:varchar(255);not null;index" json:"name"`
	EAN          string                `gorm:"column:ean;type:varchar(32);index" json:"ean"`
	Quantity     int                   `gorm:"not null;default:0" json:"quantity"`
	UnitPrice    decimal.Decimal       `gorm:"type:decimal(14,2);not null;default:0" json:"unitPrice"`
	Location     string                `gorm:"type:varchar(100)" json:"location"`
	DepartmentID uint                  `gorm:"not null;index" json:"departmentId"`
	Department   *Department           `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	IsDeleted    soft_delete.DeletedAt `gorm:"softDelete:flag;index" json:"-"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}
