package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"autoservice/internal/model"
	"autoservice/internal/repository"
	"autoservice/pkg/pagination"

	"gorm.io/gorm"
)

const ResultBadVehicle = "bad_vehicle"

// --- DTOs ---

type OrderRequest struct {
	ClientID     uint       `json:"clientId"`
	VehicleID    uint       `json:"vehicleId"`
	DepartmentID uint       `json:"departmentId"`
	Description  string     `json:"description"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	// Estimates and CheckLists are only read on Add and are stored in the same transaction.
	Estimates  []EstimateRequest  `json:"estimates"`
	CheckLists []CheckListRequest `json:"checkLists"`
}

type StatusRequest struct {
	Status *int `json:"status"`
}

// --- Interface ---

type OrderService interface {
	List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.Order], error)
	Get(ctx context.Context, id uint) (*model.Order, error)
	Add(ctx context.Context, req OrderRequest) (*model.Order, error)
	Edit(ctx context.Context, id uint, req OrderRequest) (*model.Order, error)
	ChangeStatus(ctx context.Context, id uint, status int) (*model.Order, error)
	DeleteMany(ctx context.Context, ids []uint) error
}

type orderService struct {
	repo        *repository.OrderRepository
	users       repository.UserRepository
	vehicles    *repository.Store[model.Vehicle]
	departments repository.DepartmentRepository
	lines       *lineResolver
	txManager   repository.TransactionManager
	now         func() time.Time
}

func NewOrderService(
	repo *repository.OrderRepository,
	users repository.UserRepository,
	vehicles *repository.Store[model.Vehicle],
	departments repository.DepartmentRepository,
	warehouse *repository.Store[model.WarehouseItem],
	catalog *repository.Store[model.RepairService],
	txManager repository.TransactionManager,
) OrderService {
	return &orderService{
		repo:        repo,
		users:       users,
		vehicles:    vehicles,
		departments: departments,
		lines:       &lineResolver{warehouse: warehouse, catalog: catalog},
		txManager:   txManager,
		now:         time.Now,
	}
}

var orderDetails = []string{
	"Client", "Vehicle", "Department",
	"Estimates.Parts", "Estimates.Services", "CheckLists", "Complaint",
}

// --- Implementation ---

func (s *orderService) apply(ctx context.Context, o *model.Order, req OrderRequest) error {
	if req.ClientID == 0 {
		return invalid(ResultNoClient)
	}
	client, err := s.users.GetByID(ctx, req.ClientID)
	if errors.Is(err, ErrNotFound) || (err == nil && client.AppRole != model.AppRoleClient) {
		return invalid(ResultNoClient)
	}
	if err != nil {
		return err
	}

	if req.VehicleID == 0 {
		return invalid(ResultNoVehicle)
	}
	vehicle, err := s.vehicles.Get(ctx, req.VehicleID)
	if errors.Is(err, ErrNotFound) {
		return invalid(ResultNoVehicle)
	}
	if err != nil {
		return err
	}
	if vehicle.UserID != client.ID {
		return invalid(ResultBadVehicle)
	}

	ok, err := s.departments.Exists(ctx, req.DepartmentID)
	if err != nil {
		return err
	}
	if !ok {
		return invalid(ResultNoDepartment)
	}

	start := s.now()
	if req.StartDate != nil {
		start = *req.StartDate
	} else if !o.StartDate.IsZero() {
		start = o.StartDate
	}
	if req.EndDate != nil && req.EndDate.Before(start) {
		return invalid(ResultBadDates)
	}

	o.ClientID = client.ID
	o.VehicleID = vehicle.ID
	o.DepartmentID = req.DepartmentID
	o.Description = strings.TrimSpace(req.Description)
	o.StartDate = start
	o.EndDate = req.EndDate
	return nil
}

func (s *orderService) List(ctx context.Context, filter ListFilter, page pagination.Params) (Page[model.Order], error) {
	scopes := []repository.Scope{
		repository.Between("start_date", filter.From, filter.To),
		repository.InInts("status", filter.Statuses),
		repository.InIDs("department_id", filter.DepartmentIDs),
		repository.InIDs("client_id", filter.UserIDs),
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		scopes = append(scopes, repository.InSubquery("client_id", func(db *gorm.DB) *gorm.DB {
			return db.Model(&model.User{}).Select("id").
				Scopes(repository.Contains(term, "first_name", "last_name", "company_name"))
		}))
	}

	items, total, err := s.repo.Orders.List(ctx, page, scopes, "Client", "Vehicle")
	if err != nil {
		return Page[model.Order]{}, err
	}
	return Page[model.Order]{Items: items, Total: total}, nil
}

func (s *orderService) Get(ctx context.Context, id uint) (*model.Order, error) {
	return s.repo.Orders.Get(ctx, id, orderDetails...)
}

// Add stores the order and any nested estimates and check list items in one transaction.
func (s *orderService) Add(ctx context.Context, req OrderRequest) (*model.Order, error) {
	var o model.Order
	if err := s.apply(ctx, &o, req); err != nil {
		return nil, err
	}
	o.Status = model.OrderStatusNew

	for _, er := range req.Estimates {
		e, err := s.lines.build(ctx, er)
		if err != nil {
			return nil, err
		}
		o.Estimates = append(o.Estimates, *e)
	}
	for _, cr := range req.CheckLists {
		c, err := buildCheckList(cr)
		if err != nil {
			return nil, err
		}
		o.CheckLists = append(o.CheckLists, *c)
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return s.repo.Orders.Create(txCtx, &o)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, o.ID)
}

func (s *orderService) Edit(ctx context.Context, id uint, req OrderRequest) (*model.Order, error) {
	o, err := s.repo.Orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, o, req); err != nil {
		return nil, err
	}
	if err := s.repo.Orders.Save(ctx, o); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// ChangeStatus moves the order through its workflow. Released and cancelled orders are final.
func (s *orderService) ChangeStatus(ctx context.Context, id uint, status int) (*model.Order, error) {
	if !model.OrderStatuses.Valid(status) {
		return nil, invalid(ResultBadStatus)
	}
	o, err := s.repo.Orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !model.OrderStatuses.CanChange(o.Status, status) {
		return nil, invalid(ResultBadStatus)
	}

	values := map[string]any{"status": status}
	if status == model.OrderStatusReleased && o.EndDate == nil {
		values["end_date"] = s.now()
	}
	if err := s.repo.Orders.Update(ctx, id, values); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *orderService) DeleteMany(ctx context.Context, ids []uint) error {
	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteOrders(txCtx, ids)
	})
}
