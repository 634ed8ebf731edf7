package repository

import (
	"context"
	"fmt"

	"autoservice/internal/model"

	"gorm.io/gorm"
)

// TicketRepository works on the tickets database, which may differ from the main one.
type TicketRepository struct {
	Tickets  *Store[model.Ticket]
	Messages *Store[model.TicketsMessage]
	Files    *Store[model.TicketsFile]
}

func NewTicketRepository(ticketsDB *gorm.DB, policy DeletePolicy) *TicketRepository {
	return &TicketRepository{
		Tickets:  NewStore[model.Ticket](ticketsDB, EntityTickets, policy),
		Messages: NewStore[model.TicketsMessage](ticketsDB, "tickets_messages", policy),
		Files:    NewStore[model.TicketsFile](ticketsDB, "tickets_files", policy),
	}
}

// DeleteTickets removes tickets. Hard deletes also drop messages and file rows and return the
// stored names of the removed files so the caller can clean up storage.
func (r *TicketRepository) DeleteTickets(ctx context.Context, ids []uint) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var stored []string
	if r.Tickets.HardDeletes() {
		db := r.Files.DB(ctx)
		if err := db.Model(&model.TicketsFile{}).Where("ticket_id IN ?", ids).Pluck("stored_name", &stored).Error; err != nil {
			return nil, fmt.Errorf("failed to resolve ticket files: %w", err)
		}
		if err := db.Where("ticket_id IN ?", ids).Delete(&model.TicketsFile{}).Error; err != nil {
			return nil, fmt.Errorf("failed to delete ticket files: %w", err)
		}
		if err := db.Where("ticket_id IN ?", ids).Delete(&model.TicketsMessage{}).Error; err != nil {
			return nil, fmt.Errorf("failed to delete ticket messages: %w", err)
		}
	}
	if err := r.Tickets.DeleteMany(ctx, ids); err != nil {
		return nil, err
	}
	return stored, nil
}
