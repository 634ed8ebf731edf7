package model

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

// Absence request statuses
const (
	RequestStatusPending  = 0
	RequestStatusAccepted = 1
	RequestStatusRejected = 2
)

var RequestStatuses = newStatusMachine(map[int]string{
	RequestStatusPending:  "pending",
	RequestStatusAccepted: "accepted",
	RequestStatusRejected: "rejected",
}, RequestStatusAccepted, RequestStatusRejected)

// Absence types
const (
	AbsenceTypeVacation  = "vacation"
	AbsenceTypeSickLeave = "sick_leave"
	AbsenceTypeDayOff    = "day_off"
	AbsenceTypeOther     = "other"
)

// AbsenceRequest is an employee's leave request.
type AbsenceRequest struct {
	ID        uint                  `gorm:"primaryKey" json:"id"`
	UserID    uint                  `gorm:"not null;index" json:"userId"`
	User      *User                 `gorm:"foreignKey:UserID" json:"user,omitempty"`
	StartDate time.Time             `gorm:"not null" json:"startDate"`
	EndDate   time.Time             `gorm:"not null" json:"endDate"`
	Type      string                `gorm:"type:varchar(20);not null" json:"type"`
	Reason    string                `gorm:"type:text" json:"reason"`
	Status    int                   `gorm:"not null;default:0;index" json:"status"`
	DecidedBy *uint                 `json:"decidedBy"`
	DecidedAt *time.Time            `json:"decidedAt"`
	IsDeleted soft_delete.DeletedAt `gorm:"softDelete:flag;index" json:"-"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

func (AbsenceRequest) TableName() string {
	return "absence_requests"
}
