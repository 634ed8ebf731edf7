package model

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

// Ticket statuses
const (
	TicketStatusOpen = iota
	TicketStatusInProgress
	TicketStatusClosed
)

var TicketStatuses = newStatusMachine(map[int]string{
	TicketStatusOpen:       "open",
	TicketStatusInProgress: "in_progress",
	TicketStatusClosed:     "closed",
})

// Ticket is a support thread. Tickets live in the tickets database, so UserID is not a foreign key.
type Ticket struct {
	ID        uint                  `gorm:"primaryKey" json:"id"`
	UserID    uint                  `gorm:"not null;index" json:"userId"`
	Title     string                `gorm:"type:varchar(255);not null" json:"title"`
	Status    int                   `gorm:"not null;default:0;index" json:"status"`
	Messages  []TicketsMessage      `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
	Files     []TicketsFile         `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"files,omitempty"`
	IsDeleted soft_delete.DeletedAt `gorm:"softDelete:flag;index" json:"-"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

type TicketsMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TicketID  uint      `gorm:"not null;index" json:"ticketId"`
	UserID    uint      `gorm:"not null" json:"userId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type TicketsFile struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TicketID    uint      `gorm:"not null;index" json:"ticketId"`
	MessageID   *uint     `json:"messageId"`
	FileName    string    `gorm:"type:varchar(255);not null" json:"fileName"`
	StoredName  string    `gorm:"type:varchar(255);not null" json:"-"`
	Size        int64     `json:"size"`
	ContentType string    `gorm:"type:varchar(100)" json:"contentType"`
	CreatedAt   time.Time `json:"createdAt"`
}
