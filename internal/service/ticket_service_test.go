package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"autoservice/internal/model"
	"autoservice/internal/websocket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketService_Visibility(t *testing.T) {
	f := newFixture(t)
	owner := TicketViewer{UserID: 1}
	stranger := TicketViewer{UserID: 2}
	support := TicketViewer{UserID: 3, CanManage: true}

	_, err := f.tickets.Add(f.ctx, owner.UserID, TicketRequest{Message: "help"})
	requireResult(t, err, ResultNoTitle)
	_, err = f.tickets.Add(f.ctx, owner.UserID, TicketRequest{Title: "Printer"})
	requireResult(t, err, ResultNoMessage)

	ticket, err := f.tickets.Add(f.ctx, owner.UserID, TicketRequest{Title: "Printer", Message: "It jams"})
	require.NoError(t, err)
	assert.Equal(t, model.TicketStatusOpen, ticket.Status)

	got, err := f.tickets.Get(f.ctx, owner, ticket.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)

	_, err = f.tickets.Get(f.ctx, stranger, ticket.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.tickets.AddMessage(f.ctx, stranger, ticket.ID, "me too")
	assert.ErrorIs(t, err, ErrNotFound)

	page, err := f.tickets.List(f.ctx, stranger, ListFilter{}, pageAll)
	require.NoError(t, err)
	assert.Zero(t, page.Total)

	page, err = f.tickets.List(f.ctx, support, ListFilter{}, pageAll)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	msg, err := f.tickets.AddMessage(f.ctx, support, ticket.ID, "On it")
	require.NoError(t, err)
	assert.Equal(t, support.UserID, msg.UserID)

	closed, err := f.tickets.ChangeStatus(f.ctx, ticket.ID, model.TicketStatusClosed)
	require.NoError(t, err)
	assert.Equal(t, model.TicketStatusClosed, closed.Status)
	_, err = f.tickets.ChangeStatus(f.ctx, ticket.ID, 9)
	requireResult(t, err, ResultBadStatus)

	assert.Equal(t, []string{EventTicketMessage, EventTicketStatus}, f.events.events)
	// a reply by support still goes to the owner, never to every client
	for _, to := range f.events.audiences {
		assert.Equal(t, websocket.Audience{UserID: owner.UserID, Resource: model.ResourceTickets, Action: model.ActionManage}, to)
	}
}

func TestTicketService_Files(t *testing.T) {
	f := newFixture(t)
	owner := TicketViewer{UserID: 1}

	ticket, err := f.tickets.Add(f.ctx, owner.UserID, TicketRequest{Title: "Invoice", Message: "Attached"})
	require.NoError(t, err)

	_, err = f.tickets.AddFile(f.ctx, owner, ticket.ID, Upload{})
	requireResult(t, err, ResultNoFile)
	_, err = f.tickets.AddFile(f.ctx, owner, ticket.ID, Upload{Name: "big.bin", Size: MaxUploadBytes + 1, Body: strings.NewReader("x")})
	requireResult(t, err, ResultFileTooLarge)

	file, err := f.tickets.AddFile(f.ctx, owner, ticket.ID, Upload{
		Name:        "../scan.PDF",
		ContentType: "application/pdf",
		Body:        strings.NewReader("%PDF-1.4"),
	})
	require.NoError(t, err)
	assert.Equal(t, "scan.PDF", file.FileName)
	assert.EqualValues(t, 8, file.Size)
	assert.True(t, strings.HasSuffix(file.StoredName, ".pdf"))

	_, path, err := f.tickets.OpenFile(f.ctx, owner, file.ID)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.uploadDir, file.StoredName), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(content))

	_, _, err = f.tickets.OpenFile(f.ctx, TicketViewer{UserID: 2}, file.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, f.tickets.DeleteMany(f.ctx, []uint{ticket.ID}))
	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
