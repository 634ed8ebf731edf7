package model

import "time"

// Log is an audit-trail row: who did what, when, as human-readable text.
type Log struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      *uint     `gorm:"index" json:"userId"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Description string    `gorm:"type:text;not null" json:"description"`
}
