package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"autoservice/internal/cache"
	"autoservice/internal/database"
	"autoservice/internal/model"
	"autoservice/internal/repository"
	"autoservice/internal/websocket"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fixture holds a freshly migrated sqlite database and the services built on it.
type fixture struct {
	ctx       context.Context
	db        *gorm.DB
	auth      *authService
	roles     RoleService
	employees EmployeeService
	clients   PersonService
	vehicles  VehicleService
	depts     DepartmentService
	warehouse WarehouseService
	catalog   CatalogService
	orders    OrderService
	estimates EstimateService
	requests  RequestService
	checks    CheckListService
	complaint ComplaintService
	demands   DemandService
	tickets   TicketService
	aircon    AirconService
	uploadDir string
	events    *recordingPublisher
}

type recordingPublisher struct {
	events    []string
	audiences []websocket.Audience
}

func (p *recordingPublisher) Publish(event string, _ any, to websocket.Audience) {
	p.events = append(p.events, event)
	p.audiences = append(p.audiences, to)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := database.NewConnection("sqlite", filepath.Join(t.TempDir(), "service.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.MigrateTickets(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	log := zap.NewNop().Sugar()
	policy := repository.NewDeletePolicy([]string{repository.EntityUsers, repository.EntityVehicles})
	txManager := repository.NewTransactionManager(db)

	users := repository.NewUserRepository(db, policy)
	roles := repository.NewRoleRepository(db, policy)
	departments := repository.NewDepartmentRepository(db, policy)
	orderRepo := repository.NewOrderRepository(db, policy)
	vehicles := repository.NewStore[model.Vehicle](db, repository.EntityVehicles, policy)
	warehouse := repository.NewStore[model.WarehouseItem](db, repository.EntityWarehouse, policy)
	catalog := repository.NewStore[model.RepairService](db, repository.EntityServices, policy)
	requests := repository.NewStore[model.AbsenceRequest](db, repository.EntityRequests, policy)
	aircon := repository.NewStore[model.AirConditioningRecord](db, repository.EntityAircon, policy)
	demandRepo := repository.NewDemandRepository(db, policy)
	ticketRepo := repository.NewTicketRepository(db, policy)
	uploadDir := t.TempDir()

	ctx := context.Background()
	require.NoError(t, roles.SeedPermissions(ctx))

	auth := NewAuthService(users, repository.NewSessionRepository(db), roles, txManager,
		cache.NewMemoryCache(time.Minute), time.Hour, log).(*authService)
	events := &recordingPublisher{}

	return &fixture{
		ctx:       ctx,
		db:        db,
		auth:      auth,
		roles:     NewRoleService(roles, txManager, auth),
		employees: NewEmployeeService(users, roles, departments, txManager, auth),
		clients:   NewClientService(users, txManager),
		vehicles:  NewVehicleService(vehicles, users),
		depts:     NewDepartmentService(departments, txManager),
		warehouse: NewWarehouseService(warehouse, departments, events),
		catalog:   NewCatalogService(catalog),
		orders:    NewOrderService(orderRepo, users, vehicles, departments, warehouse, catalog, txManager),
		estimates: NewEstimateService(orderRepo, warehouse, catalog, txManager),
		requests:  NewRequestService(requests),
		checks:    NewCheckListService(orderRepo),
		complaint: NewComplaintService(orderRepo),
		demands:   NewDemandService(demandRepo, departments, warehouse, txManager, events),
		tickets:   NewTicketService(ticketRepo, txManager, uploadDir, events, log),
		aircon:    NewAirconService(aircon, vehicles, departments),
		uploadDir: uploadDir,
		events:    events,
	}
}

func (f *fixture) department(t *testing.T) *model.Department {
	t.Helper()
	d, err := f.depts.Add(f.ctx, DepartmentRequest{Name: "Main workshop", City: "Gdansk"})
	require.NoError(t, err)
	return d
}

func (f *fixture) employee(t *testing.T, email string, roleIDs ...uint) *model.User {
	t.Helper()
	u, err := f.employees.Add(f.ctx, PersonRequest{
		FirstName: "Anna",
		Email:     email,
		Password:  "secret-password",
		RoleIDs:   roleIDs,
	})
	require.NoError(t, err)
	return u
}

// order creates a client, their vehicle and an order in a new department.
func (f *fixture) order(t *testing.T) *model.Order {
	t.Helper()
	client, err := f.clients.Add(f.ctx, PersonRequest{FirstName: "Jan", Email: "jan@example.com"})
	require.NoError(t, err)
	vehicle, err := f.vehicles.Add(f.ctx, VehicleRequest{UserID: client.ID, Brand: "Skoda", Registration: "gd 12345"})
	require.NoError(t, err)
	o, err := f.orders.Add(f.ctx, OrderRequest{
		ClientID:     client.ID,
		VehicleID:    vehicle.ID,
		DepartmentID: f.department(t).ID,
		Description:  "Brake pads",
	})
	require.NoError(t, err)
	return o
}

func requireResult(t *testing.T, err error, result string) {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, result, verr.Result)
}
