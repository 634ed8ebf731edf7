package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"autoservice/internal/model"
	"autoservice/internal/repository"
	"autoservice/pkg/pagination"
)

type AirconRequest struct {
	VehicleID    uint       `json:"vehicleId"`
	DepartmentID *uint      `json:"departmentId"`
	Refrigerant  string     `json:"refrigerant"`
	AmountGrams  int        `json:"amountGrams"`
	OilMl        int        `json:"oilMl"`
	Technician   string     `json:"technician"`
	Notes        string     `json:"notes"`
	PerformedAt  *time.Time `json:"performedAt"`
}

// AirconService keeps the air-conditioning service register per vehicle.
type AirconService interface {
	List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.AirConditioningRecord], error)
	Get(ctx context.Context, id uint) (*model.AirConditioningRecord, error)
	Add(ctx context.Context, req AirconRequest) (*model.AirConditioningRecord, error)
	Edit(ctx context.Context, id uint, req AirconRequest) (*model.AirConditioningRecord, error)
	DeleteMany(ctx context.Context, ids []uint) error
}

type airconService struct {
	store       *repository.Store[model.AirConditioningRecord]
	vehicles    *repository.Store[model.Vehicle]
	departments repository.DepartmentRepository
	now         func() time.Time
}

func NewAirconService(
	store *repository.Store[model.AirConditioningRecord],
	vehicles *repository.Store[model.Vehicle],
	departments repository.DepartmentRepository,
) AirconService {
	return &airconService{store: store, vehicles: vehicles, departments: departments, now: time.Now}
}

func (s *airconService) apply(ctx context.Context, r *model.AirConditioningRecord, req AirconRequest) error {
	if req.VehicleID == 0 {
		return invalid(ResultNoVehicle)
	}
	if _, err := s.vehicles.Get(ctx, req.VehicleID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return invalid(ResultNoVehicle)
		}
		return err
	}
	if req.DepartmentID != nil {
		ok, err := s.departments.Exists(ctx, *req.DepartmentID)
		if err != nil {
			return err
		}
		if !ok {
			return invalid(ResultNoDepartment)
		}
	}
	if req.AmountGrams < 0 || req.OilMl < 0 {
		return invalid(ResultNoQuantity)
	}

	r.VehicleID = req.VehicleID
	r.DepartmentID = req.DepartmentID
	r.Refrigerant = strings.ToUpper(strings.TrimSpace(req.Refrigerant))
	r.AmountGrams = req.AmountGrams
	r.OilMl = req.OilMl
	r.Technician = strings.TrimSpace(req.Technician)
	r.Notes = strings.TrimSpace(req.Notes)
	switch {
	case req.PerformedAt != nil:
		r.PerformedAt = *req.PerformedAt
	case r.PerformedAt.IsZero():
		r.PerformedAt = s.now()
	}
	return nil
}

func (s *airconService) List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.AirConditioningRecord], error) {
	items, total, err := s.store.List(ctx, page, []repository.Scope{
		repository.Between("performed_at", filter.From, filter.To),
		repository.InIDs("department_id", filter.DepartmentIDs),
		repository.Contains(filter.Search, "refrigerant", "technician", "notes"),
	}, "Vehicle")
	if err != nil {
		return Page[model.AirConditioningRecord]{}, err
	}
	return Page[model.AirConditioningRecord]{Items: items, Total: total}, nil
}

func (s *airconService) Get(ctx context.Context, id uint) (*model.AirConditioningRecord, error) {
	return s.store.Get(ctx, id, "Vehicle")
}

func (s *airconService) Add(ctx context.Context, req AirconRequest) (*model.AirConditioningRecord, error) {
	var r model.AirConditioningRecord
	if err := s.apply(ctx, &r, req); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *airconService) Edit(ctx context.Context, id uint, req AirconRequest) (*model.AirConditioningRecord, error) {
	r, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, r, req); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *airconService) DeleteMany(ctx context.Context, ids []uint) error {
	return s.store.DeleteMany(ctx, ids)
}
