package model

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

// AirConditioningRecord documents an A/C service (refrigerant recovery/refill) on a vehicle.
type AirConditioningRecord struct {
	ID           uint                  `gorm:"primaryKey" json:"id"`
	VehicleID    uint                  `gorm:"not null;index" json:"vehicleId"`
	Vehicle      *Vehicle              `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	DepartmentID *uint                 `gorm:"index" json:"departmentId"`
	Refrigerant  string                `gorm:"type:varchar(20)" json:"refrigerant"`
	AmountGrams  int                   `json:"amountGrams"`
	OilMl        int                   `json:"oilMl"`
	Technician   string                `gorm:"type:varchar(255)" json:"technician"`
	Notes        string                `gorm:"type:text" json:"notes"`
	PerformedAt  time.Time             `gorm:"index" json:"performedAt"`
	IsDeleted    soft_delete.DeletedAt `gorm:"softDelete:flag;index" json:"-"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

func (AirConditioningRecord) TableName() string {
	return "air_conditioning_records"
}
