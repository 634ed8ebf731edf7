package model

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

// AppRole values
const (
	AppRoleEmployee = "Employee"
	AppRoleClient   = "Client"
)

// User is both a back-office employee and a workshop client, told apart by AppRole.
type User struct {
	ID           uint                  `gorm:"primaryKey" json:"id"`
	FirstName    string                `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName     string                `gorm:"type:varchar(100)" json:"lastName"`
	Email        string                `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone        string                `gorm:"type:varchar(30)" json:"phone"`
	Address      string                `gorm:"type:varchar(255)" json:"address"`
	CompanyName  string                `gorm:"type:varchar(255)" json:"companyName"`
	TaxID        string                `gorm:"type:varchar(30)" json:"taxId"`
	AppRole      string                `gorm:"type:varchar(20);not null;index" json:"appRole"`
	Salt         string                `gorm:"type:varchar(64);not null" json:"-"`
	Password     string                `gorm:"type:varchar(255);not null" json:"-"`
	IsFirstLogin bool                  `gorm:"default:true" json:"isFirstLogin"`
	IsDeleted    soft_delete.DeletedAt `gorm:"softDelete:flag;index" json:"-"`
	Vehicles     []Vehicle             `gorm:"foreignKey:UserID" json:"vehicles,omitempty"`
	Roles        []Role                `gorm:"many2many:users_roles;" json:"roles,omitempty"`
	Departments  []Department          `gorm:"many2many:users_departments;" json:"departments,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// FullName joins first and last name for audit descriptions.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Vehicle belongs to a client.
type Vehicle struct {
	ID           uint                  `gorm:"primaryKey" json:"id"`
	UserID       uint                  `gorm:"not null;index" json:"userId"`
	Brand        string                `gorm:"type:varchar(100)" json:"brand"`
	Model        string                `gorm:"type:varchar(100)" json:"model"`
	Registration string                `gorm:"type:varchar(20);not null;index" json:"registration"`
	VIN          string                `gorm:"column:vin;type:varchar(17)" json:"vin"`
	Year         int                   `json:"year"`
	Mileage      int                   `json:"mileage"`
	IsDeleted    soft_delete.DeletedAt `gorm:"softDelete:flag;index" json:"-"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// SessionToken is the server side of the sessionToken cookie. One row per user.
type SessionToken struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"uniqueIndex;not null" json:"userId"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Token  string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"-"`
	Expire time.Time `gorm:"not null" json:"expire"`
}

// Expired reports whether the session is no longer valid at now.
func (s SessionToken) Expired(now time.Time) bool {
	return !now.Before(s.Expire)
}
