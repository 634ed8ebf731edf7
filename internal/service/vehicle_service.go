package service

import (
	"context"
	"errors"
	"strings"

	"autoservice/internal/model"
	"autoservice/internal/repository"
	"autoservice/pkg/pagination"
)

const ResultNoRegistration = "no_registration"

type VehicleRequest struct {
	UserID       uint   `json:"userId"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Registration string `json:"registration"`
	VIN          string `json:"vin"`
	Year         int    `json:"year"`
	Mileage      int    `json:"mileage"`
}

type VehicleService interface {
	List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.Vehicle], error)
	Get(ctx context.Context, id uint) (*model.Vehicle, error)
	Add(ctx context.Context, req VehicleRequest) (*model.Vehicle, error)
	Edit(ctx context.Context, id uint, req VehicleRequest) (*model.Vehicle, error)
	DeleteMany(ctx context.Context, ids []uint) error
}

type vehicleService struct {
	store *repository.Store[model.Vehicle]
	users repository.UserRepository
}

func NewVehicleService(store *repository.Store[model.Vehicle], users repository.UserRepository) VehicleService {
	return &vehicleService{store: store, users: users}
}

func (s *vehicleService) apply(ctx context.Context, v *model.Vehicle, req VehicleRequest) error {
	registration := strings.ToUpper(strings.TrimSpace(req.Registration))
	if registration == "" {
		return invalid(ResultNoRegistration)
	}
	if req.UserID == 0 {
		return invalid(ResultNoClient)
	}
	owner, err := s.users.GetByID(ctx, req.UserID)
	if errors.Is(err, ErrNotFound) || (err == nil && owner.AppRole != model.AppRoleClient) {
		return invalid(ResultNoClient)
	}
	if err != nil {
		return err
	}

	v.UserID = owner.ID
	v.Registration = registration
	v.Brand = strings.TrimSpace(req.Brand)
	v.Model = strings.TrimSpace(req.Model)
	v.VIN = strings.ToUpper(strings.TrimSpace(req.VIN))
	v.Year = req.Year
	v.Mileage = req.Mileage
	return nil
}

func (s *vehicleService) List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.Vehicle], error) {
	items, total, err := s.store.List(ctx, page, []repository.Scope{
		repository.InIDs("user_id", filter.UserIDs),
		repository.Contains(filter.Search, "brand", "model", "registration", "vin"),
	})
	if err != nil {
		return Page[model.Vehicle]{}, err
	}
	return Page[model.Vehicle]{Items: items, Total: total}, nil
}

func (s *vehicleService) Get(ctx context.Context, id uint) (*model.Vehicle, error) {
	return s.store.Get(ctx, id)
}

func (s *vehicleService) Add(ctx context.Context, req VehicleRequest) (*model.Vehicle, error) {
	var v model.Vehicle
	if err := s.apply(ctx, &v, req); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *vehicleService) Edit(ctx context.Context, id uint, req VehicleRequest) (*model.Vehicle, error) {
	v, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, v, req); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *vehicleService) DeleteMany(ctx context.Context, ids []uint) error {
	return s.store.DeleteMany(ctx, ids)
}
