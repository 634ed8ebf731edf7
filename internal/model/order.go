package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/plugin/soft_delete"
)

// Order statuses
const (
	OrderStatusNew = iota
	OrderStatusInProgress
	OrderStatusWaitingForParts
	OrderStatusDone
	OrderStatusReleased
	OrderStatusCancelled
)

var OrderStatuses = newStatusMachine(map[int]string{
	OrderStatusNew:             "new",
	OrderStatusInProgress:      "in_progress",
	OrderStatusWaitingForParts: "waiting_for_parts",
	OrderStatusDone:            "done",
	OrderStatusReleased:        "released",
	OrderStatusCancelled:       "cancelled",
}, OrderStatusReleased, OrderStatusCancelled)

// Order is a repair work order for one client vehicle in one department.
type Order struct {
	ID                    uint                  `gorm:"primaryKey" json:"id"`
	ClientID              uint                  `gorm:"not null;index" json:"clientId"`
	Client                *User                 `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	VehicleID             uint                  `gorm:"not null;index" json:"vehicleId"`
	Vehicle               *Vehicle              `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	DepartmentID          uint                  `gorm:"not null;index" json:"departmentId"`
	Department            *Department           `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Status                int                   `gorm:"not null;default:0;index" json:"status"`
	Description           string                `gorm:"type:text" json:"description"`
	StartDate             time.Time             `gorm:"index" json:"startDate"`
	EndDate               *time.Time            `json:"endDate"`
	StartNotificationSent bool                  `gorm:"default:false" json:"startNotificationSent"`
	EndNotificationSent   bool                  `gorm:"default:false" json:"endNotificationSent"`
	Estimates             []Estimate            `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"estimates,omitempty"`
	CheckLists            []CheckList           `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"checkLists,omitempty"`
	Complaint             *OrdersComplaint      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"complaint,omitempty"`
	IsDeleted             soft_delete.DeletedAt `gorm:"softDelete:flag;index" json:"-"`
	CreatedAt             time.Time             `json:"createdAt"`
	UpdatedAt             time.Time             `json:"updatedAt"`
}

// Estimate is a parts + services cost breakdown attached to an order.
type Estimate struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	OrderID       uint              `gorm:"not null;index" json:"orderId"`
	Name          string            `gorm:"type:varchar(255);not null" json:"name"`
	PartsTotal    decimal.Decimal   `gorm:"type:decimal(14,2);not null;default:0" json:"partsTotal"`
	ServicesTotal decimal.Decimal   `gorm:"type:decimal(14,2);not null;default:0" json:"servicesTotal"`
	Total         decimal.Decimal   `gorm:"type:decimal(14,2);not null;default:0" json:"total"`
	Parts         []EstimatePart    `gorm:"foreignKey:EstimateID;constraint:OnDelete:CASCADE" json:"parts"`
	Services      []EstimateService `gorm:"foreignKey:EstimateID;constraint:OnDelete:CASCADE" json:"services"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// Recalculate sets line totals and the estimate totals from quantities and unit prices.
func (e *Estimate) Recalculate() {
	parts := decimal.Zero
	for i := range e.Parts {
		e.Parts[i].Total = e.Parts[i].UnitPrice.Mul(decimal.NewFromInt(int64(e.Parts[i].Quantity))).Round(2)
		parts = parts.Add(e.Parts[i].Total)
	}
	services := decimal.Zero
	for i := range e.Services {
		e.Services[i].Total = e.Services[i].UnitPrice.Mul(decimal.NewFromInt(int64(e.Services[i].Quantity))).Round(2)
		services = services.Add(e.Services[i].Total)
	}
	e.PartsTotal = parts
	e.ServicesTotal = services
	e.Total = parts.Add(services)
}

type EstimatePart struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	EstimateID      uint            `gorm:"not null;index" json:"estimateId"`
	WarehouseItemID *uint           `gorm:"index" json:"warehouseItemId"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"unitPrice"`
	Total           decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total"`
}

type EstimateService struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	EstimateID uint            `gorm:"not null;index" json:"estimateId"`
	ServiceID  *uint           `gorm:"index" json:"serviceId"`
	Name       string          `gorm:"type:varchar(255);not null" json:"name"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"unitPrice"`
	Total      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total"`
}

// CheckList is one inspection line on an order.
type CheckList struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"orderId"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	IsChecked bool      `gorm:"default:false" json:"isChecked"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Complaint statuses
const (
	ComplaintStatusOpen = iota
	ComplaintStatusInReview
	ComplaintStatusAccepted
	ComplaintStatusRejected
)

var ComplaintStatuses = newStatusMachine(map[int]string{
	ComplaintStatusOpen:     "open",
	ComplaintStatusInReview: "in_review",
	ComplaintStatusAccepted: "accepted",
	ComplaintStatusRejected: "rejected",
}, ComplaintStatusAccepted, ComplaintStatusRejected)

// OrdersComplaint is a client complaint about a finished order. At most one per order.
type OrdersComplaint struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     uint      `gorm:"uniqueIndex;not null" json:"orderId"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Status      int       `gorm:"not null;default:0" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
