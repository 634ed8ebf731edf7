package model

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

// Demand statuses
const (
	DemandStatusNew = iota
	DemandStatusApproved
	DemandStatusOrdered
	DemandStatusDelivered
	DemandStatusRejected
)

var DemandStatuses = newStatusMachine(map[int]string{
	DemandStatusNew:       "new",
	DemandStatusApproved:  "approved",
	DemandStatusOrdered:   "ordered",
	DemandStatusDelivered: "delivered",
	DemandStatusRejected:  "rejected",
}, DemandStatusDelivered, DemandStatusRejected)

// Demand item statuses
const (
	DemandItemPending = iota
	DemandItemOrdered
	DemandItemDelivered
	DemandItemUnavailable
)

var DemandItemStatuses = newStatusMachine(map[int]string{
	DemandItemPending:     "pending",
	DemandItemOrdered:     "ordered",
	DemandItemDelivered:   "delivered",
	DemandItemUnavailable: "unavailable",
}, DemandItemDelivered)

// Demand is an internal procurement request for warehouse stock.
type Demand struct {
	ID           uint                  `gorm:"primaryKey" json:"id"`
	DepartmentID uint                  `gorm:"not null;index" json:"departmentId"`
	Department   *Department           `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	CreatedBy    uint                  `gorm:"not null;index" json:"createdBy"`
	Title        string                `gorm:"type:varchar(255)" json:"title"`
	Description  string                `gorm:"type:text" json:"description"`
	Status       int                   `gorm:"not null;default:0;index" json:"status"`
	Items        []DemandsItem         `gorm:"foreignKey:DemandID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	IsDeleted    soft_delete.DeletedAt `gorm:"softDelete:flag;index" json:"-"`
	CreatedAt    time.Time             `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

type DemandsItem struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	DemandID        uint   `gorm:"not null;index" json:"demandId"`
	WarehouseItemID *uint  `gorm:"index" json:"warehouseItemId"`
	Name            string `gorm:"type:varchar(255);not null" json:"name"`
	EAN             string `gorm:"column:ean;type:varchar(32)" json:"ean"`
	Quantity        int    `gorm:"not null" json:"quantity"`
	Status          int    `gorm:"not null;default:0" json:"status"`
}
