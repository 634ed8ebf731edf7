package model

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

// Department is a workshop branch; orders, stock and demands are scoped to one.
type Department struct {
	ID         uint                  `gorm:"primaryKey" json:"id"`
	Name       string                `gorm:"type:varchar(255);not null" json:"name"`
	City       string                `gorm:"type:varchar(100)" json:"city"`
	Street     string                `gorm:"type:varchar(255)" json:"street"`
	PostalCode string                `gorm:"type:varchar(20)" json:"postalCode"`
	Phone      string                `gorm:"type:varchar(30)" json:"phone"`
	Users      []User                `gorm:"many2many:users_departments;" json:"users,omitempty"`
	IsDeleted  soft_delete.DeletedAt `gorm:"softDelete:flag;index" json:"-"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}
