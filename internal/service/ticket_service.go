package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"autoservice/internal/model"
	"autoservice/internal/repository"
	"autoservice/pkg/pagination"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ResultNoTitle      = "no_title"
	ResultNoFile       = "no_file"
	ResultFileTooLarge = "file_too_large"

	EventTicketMessage = "tickets.message"
	EventTicketStatus  = "tickets.status"

	MaxUploadBytes = 10 << 20
)

// --- DTOs ---

type TicketRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type TicketMessageRequest struct {
	Content string `json:"content"`
}

// Upload is a file received from a client.
type Upload struct {
	Name        string
	Size        int64
	ContentType string
	Body        io.Reader
}

// TicketViewer identifies the caller. Without CanManage a user only sees their own tickets.
type TicketViewer struct {
	UserID    uint
	CanManage bool
}

type TicketEvent struct {
	TicketID  uint `json:"ticketId"`
	UserID    uint `json:"userId"`
	MessageID uint `json:"messageId,omitempty"`
	Status    int  `json:"status"`
}

// --- Interface ---

type TicketService interface {
	List(ctx context.Context, viewer TicketViewer, filter ListFilter, page pagination.Params) (Page[model.Ticket], error)
	Get(ctx context.Context, viewer TicketViewer, id uint) (*model.Ticket, error)
	Add(ctx context.Context, userID uint, req TicketRequest) (*model.Ticket, error)
	AddMessage(ctx context.Context, viewer TicketViewer, id uint, content string) (*model.TicketsMessage, error)
	AddFile(ctx context.Context, viewer TicketViewer, id uint, upload Upload) (*model.TicketsFile, error)
	OpenFile(ctx context.Context, viewer TicketViewer, fileID uint) (*model.TicketsFile, string, error)
	ChangeStatus(ctx context.Context, id uint, status int) (*model.Ticket, error)
	DeleteMany(ctx context.Context, ids []uint) error
}

type ticketService struct {
	repo      *repository.TicketRepository
	txManager repository.TransactionManager
	uploadDir string
	events    EventPublisher
	log       *zap.SugaredLogger
}

// NewTicketService expects txManager to be bound to the tickets database.
func NewTicketService(
	repo *repository.TicketRepository,
	txManager repository.TransactionManager,
	uploadDir string,
	events EventPublisher,
	log *zap.SugaredLogger,
) TicketService {
	return &ticketService{
		repo:      repo,
		txManager: txManager,
		uploadDir: uploadDir,
		events:    publisherOrNop(events),
		log:       log,
	}
}

// --- Implementation ---

func ownTickets(viewer TicketViewer) repository.Scope {
	if viewer.CanManage {
		return repository.InIDs("user_id", nil)
	}
	return repository.Eq("user_id", viewer.UserID)
}

func (s *ticketService) List(ctx context.Context, viewer TicketViewer, filter ListFilter, page pagination.Params) (Page[model.Ticket], error) {
	items, total, err := s.repo.Tickets.List(ctx, page, []repository.Scope{
		ownTickets(viewer),
		repository.InInts("status", filter.Statuses),
		repository.InIDs("user_id", filter.UserIDs),
		repository.Between("created_at", filter.From, filter.To),
		repository.Contains(filter.Search, "title"),
	})
	if err != nil {
		return Page[model.Ticket]{}, err
	}
	return Page[model.Ticket]{Items: items, Total: total}, nil
}

func (s *ticketService) Get(ctx context.Context, viewer TicketViewer, id uint) (*model.Ticket, error) {
	return s.repo.Tickets.First(ctx, []repository.Scope{repository.Eq("id", id), ownTickets(viewer)}, "Messages", "Files")
}

// Add opens a ticket together with its first message.
func (s *ticketService) Add(ctx context.Context, userID uint, req TicketRequest) (*model.Ticket, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalid(ResultNoTitle)
	}
	content := strings.TrimSpace(req.Message)
	if content == "" {
		return nil, invalid(ResultNoMessage)
	}

	t := model.Ticket{
		UserID:   userID,
		Title:    title,
		Status:   model.TicketStatusOpen,
		Messages: []model.TicketsMessage{{UserID: userID, Content: content}},
	}
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return s.repo.Tickets.Create(txCtx, &t)
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *ticketService) AddMessage(ctx context.Context, viewer TicketViewer, id uint, content string) (*model.TicketsMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, invalid(ResultNoMessage)
	}
	t, err := s.Get(ctx, viewer, id)
	if err != nil {
		return nil, err
	}

	msg := model.TicketsMessage{TicketID: t.ID, UserID: viewer.UserID, Content: content}
	if err := s.repo.Messages.Create(ctx, &msg); err != nil {
		return nil, err
	}
	s.events.Publish(EventTicketMessage, TicketEvent{TicketID: t.ID, UserID: viewer.UserID, MessageID: msg.ID, Status: t.Status}, ticketAudience(t.UserID))
	return &msg, nil
}

// AddFile stores the upload under the upload directory with a generated name and records it.
func (s *ticketService) AddFile(ctx context.Context, viewer TicketViewer, id uint, upload Upload) (*model.TicketsFile, error) {
	if upload.Body == nil || upload.Name == "" {
		return nil, invalid(ResultNoFile)
	}
	if upload.Size > MaxUploadBytes {
		return nil, invalid(ResultFileTooLarge)
	}
	t, err := s.Get(ctx, viewer, id)
	if err != nil {
		return nil, err
	}

	stored := uuid.NewString() + strings.ToLower(filepath.Ext(upload.Name))
	size, err := s.write(stored, upload.Body)
	if err != nil {
		return nil, err
	}

	f := model.TicketsFile{
		TicketID:    t.ID,
		FileName:    filepath.Base(upload.Name),
		StoredName:  stored,
		Size:        size,
		ContentType: upload.ContentType,
	}
	if err := s.repo.Files.Create(ctx, &f); err != nil {
		s.remove(stored)
		return nil, err
	}
	return &f, nil
}

func (s *ticketService) write(stored string, body io.Reader) (int64, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create upload dir: %w", err)
	}
	out, err := os.Create(filepath.Join(s.uploadDir, stored))
	if err != nil {
		return 0, fmt.Errorf("failed to create upload: %w", err)
	}
	size, err := io.Copy(out, io.LimitReader(body, MaxUploadBytes+1))
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		s.remove(stored)
		return 0, fmt.Errorf("failed to write upload: %w", err)
	}
	if size > MaxUploadBytes {
		s.remove(stored)
		return 0, invalid(ResultFileTooLarge)
	}
	return size, nil
}

func (s *ticketService) remove(stored string) {
	if err := os.Remove(filepath.Join(s.uploadDir, stored)); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warnw("failed to remove ticket upload", "file", stored, "error", err)
	}
}

// OpenFile resolves a file the viewer may read and returns its path on disk.
func (s *ticketService) OpenFile(ctx context.Context, viewer TicketViewer, fileID uint) (*model.TicketsFile, string, error) {
	f, err := s.repo.Files.Get(ctx, fileID)
	if err != nil {
		return nil, "", err
	}
	if _, err := s.Get(ctx, viewer, f.TicketID); err != nil {
		return nil, "", err
	}
	return f, filepath.Join(s.uploadDir, f.StoredName), nil
}

func (s *ticketService) ChangeStatus(ctx context.Context, id uint, status int) (*model.Ticket, error) {
	if !model.TicketStatuses.Valid(status) {
		return nil, invalid(ResultBadStatus)
	}
	t, err := s.repo.Tickets.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Tickets.Update(ctx, id, map[string]any{"status": status}); err != nil {
		return nil, err
	}
	t.Status = status
	s.events.Publish(EventTicketStatus, TicketEvent{TicketID: t.ID, UserID: t.UserID, Status: status}, ticketAudience(t.UserID))
	return t, nil
}

func (s *ticketService) DeleteMany(ctx context.Context, ids []uint) error {
	var stored []string
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		stored, err = s.repo.DeleteTickets(txCtx, ids)
		return err
	})
	if err != nil {
		return err
	}
	for _, name := range stored {
		s.remove(name)
	}
	return nil
}
