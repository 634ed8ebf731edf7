package service

import (
	"context"
	"strings"
	"time"

	"autoservice/internal/model"
	"autoservice/internal/repository"
	"autoservice/pkg/pagination"
)

const (
	ResultCanNotAcceptOwnRequest = "can_not_accept_own_request"
	ResultAlreadyDecided         = "already_decided"
	ResultBadType                = "bad_type"
)

type AbsenceRequestRequest struct {
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Type      string     `json:"type"`
	Reason    string     `json:"reason"`
}

var absenceTypes = map[string]bool{
	model.AbsenceTypeVacation:  true,
	model.AbsenceTypeSickLeave: true,
	model.AbsenceTypeDayOff:    true,
	model.AbsenceTypeOther:     true,
}

// RequestService handles employee absence requests and their approval.
type RequestService interface {
	List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.AbsenceRequest], error)
	Get(ctx context.Context, id uint) (*model.AbsenceRequest, error)
	Add(ctx context.Context, userID uint, req AbsenceRequestRequest) (*model.AbsenceRequest, error)
	Edit(ctx context.Context, id uint, req AbsenceRequestRequest) (*model.AbsenceRequest, error)
	ChangeStatus(ctx context.Context, deciderID, id uint, status int) (*model.AbsenceRequest, error)
	DeleteMany(ctx context.Context, ids []uint) error
}

type requestService struct {
	store *repository.Store[model.AbsenceRequest]
	now   func() time.Time
}

func NewRequestService(store *repository.Store[model.AbsenceRequest]) RequestService {
	return &requestService{store: store, now: time.Now}
}

func applyAbsence(r *model.AbsenceRequest, req AbsenceRequestRequest) error {
	if req.StartDate == nil || req.EndDate == nil {
		return invalid(ResultNoDates)
	}
	if req.EndDate.Before(*req.StartDate) {
		return invalid(ResultBadDates)
	}
	kind := strings.TrimSpace(req.Type)
	if kind == "" {
		kind = model.AbsenceTypeOther
	}
	if !absenceTypes[kind] {
		return invalid(ResultBadType)
	}

	r.StartDate = *req.StartDate
	r.EndDate = *req.EndDate
	r.Type = kind
	r.Reason = strings.TrimSpace(req.Reason)
	return nil
}

func (s *requestService) List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.AbsenceRequest], error) {
	items, total, err := s.store.List(ctx, page, []repository.Scope{
		repository.InInts("status", filter.Statuses),
		repository.InIDs("user_id", filter.UserIDs),
		repository.Between("start_date", filter.From, filter.To),
	}, "User")
	if err != nil {
		return Page[model.AbsenceRequest]{}, err
	}
	return Page[model.AbsenceRequest]{Items: items, Total: total}, nil
}

func (s *requestService) Get(ctx context.Context, id uint) (*model.AbsenceRequest, error) {
	return s.store.Get(ctx, id, "User")
}

// Add files a pending request on behalf of the calling user.
func (s *requestService) Add(ctx context.Context, userID uint, req AbsenceRequestRequest) (*model.AbsenceRequest, error) {
	r := model.AbsenceRequest{UserID: userID, Status: model.RequestStatusPending}
	if err := applyAbsence(&r, req); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *requestService) Edit(ctx context.Context, id uint, req AbsenceRequestRequest) (*model.AbsenceRequest, error) {
	r, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status != model.RequestStatusPending {
		return nil, invalid(ResultAlreadyDecided)
	}
	if err := applyAbsence(r, req); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ChangeStatus accepts or rejects a pending request. Nobody may accept their own request.
// Of two concurrent decisions only the first is stored; the other gets already_decided.
func (s *requestService) ChangeStatus(ctx context.Context, deciderID, id uint, status int) (*model.AbsenceRequest, error) {
	if status != model.RequestStatusAccepted && status != model.RequestStatusRejected {
		return nil, invalid(ResultBadStatus)
	}
	r, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if status == model.RequestStatusAccepted && r.UserID == deciderID {
		return nil, invalid(ResultCanNotAcceptOwnRequest)
	}
	if model.RequestStatuses.IsTerminal(r.Status) {
		return nil, invalid(ResultAlreadyDecided)
	}

	now := s.now()
	changed, err := s.store.UpdateWhere(ctx, id, []repository.Scope{repository.Eq("status", r.Status)}, map[string]any{
		"status":     status,
		"decided_by": deciderID,
		"decided_at": now,
	})
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, invalid(ResultAlreadyDecided)
	}
	r.Status = status
	r.DecidedBy = &deciderID
	r.DecidedAt = &now
	return r, nil
}

func (s *requestService) DeleteMany(ctx context.Context, ids []uint) error {
	return s.store.DeleteMany(ctx, ids)
}
